package store

import (
	"time"

	"newsletter/internal/platform/config"
)

// Config lists the backends Open may connect
type Config struct {
	// AppName shows up as application_name in pg_stat_activity
	AppName string
	PG      PGConfig
}

// PGConfig tunes the postgres pool
type PGConfig struct {
	Enabled     bool
	URL         string
	MaxConns    int32
	LogSQL      bool
	SlowQueryMs int

	// zero means connectRetries / pingTimeout
	ConnectRetries int
	PingTimeout    time.Duration
}

const (
	connectRetries = 20
	pingTimeout    = 3 * time.Second
)

// PGFromEnv builds a PGConfig for url, reading pool knobs from SERVICE_PGSQL_*
func PGFromEnv(url string) PGConfig {
	env := config.New().Prefix("SERVICE_PGSQL_")
	return PGConfig{
		Enabled:        true,
		URL:            url,
		MaxConns:       int32(env.MayInt("MAX_CONNS", 10)),
		LogSQL:         env.MayBool("LOG_SQL", false),
		SlowQueryMs:    env.MayInt("SLOW_MS", 250),
		ConnectRetries: env.MayInt("CONNECT_RETRIES", connectRetries),
		PingTimeout:    env.MayDuration("PING_TIMEOUT", pingTimeout),
	}
}

func orDefault[T int | time.Duration](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}

package pg

import (
	"context"
	"strings"

	"newsletter/internal/platform/logger"

	"github.com/rs/zerolog"
)

// QueryEvent is one finished statement
type QueryEvent struct {
	SQL       string
	Args      []any
	ElapsedUS int64
	Err       error
	Slow      bool
}

// QueryTracer is told about every statement the store runs
type QueryTracer interface {
	OnQuery(ctx context.Context, ev QueryEvent)
}

// Tracer returns a QueryTracer that writes to log under component=pg
// args hold subscriber data, so only their count is written
func Tracer(log logger.Logger) QueryTracer {
	return logTracer(log.Level(zerolog.DebugLevel).With().Str("component", "pg").Logger())
}

type logTracer zerolog.Logger

func (lt logTracer) OnQuery(ctx context.Context, ev QueryEvent) {
	log := zerolog.Logger(lt)
	lvl := zerolog.DebugLevel
	if ev.Slow {
		lvl = zerolog.WarnLevel
	}
	if ev.Err != nil {
		lvl = zerolog.ErrorLevel
	}

	e := log.WithLevel(lvl)
	if id := logger.RequestID(ctx); id != "" {
		e = e.Str("request_id", id)
	}
	e.Float64("elapsed_ms", float64(ev.ElapsedUS)/1e3).
		Bool("slow", ev.Slow).
		Str("sql", strings.Join(strings.Fields(ev.SQL), " ")).
		Int("args", len(ev.Args)).
		Err(ev.Err).
		Msg("pg query")
}

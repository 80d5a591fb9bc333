package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Environment selects the settings overlay file
type Environment string

// Supported environments
const (
	EnvLocal      Environment = "local"
	EnvProduction Environment = "production"
)

// ParseEnvironment accepts local or production, case-insensitively
func ParseEnvironment(s string) (Environment, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EnvLocal):
		return EnvLocal, nil
	case string(EnvProduction):
		return EnvProduction, nil
	default:
		return "", fmt.Errorf("unknown environment %q: must be %q or %q", s, EnvLocal, EnvProduction)
	}
}

// Settings is the typed application configuration
type Settings struct {
	Environment Environment         `yaml:"-"`
	Application ApplicationSettings `yaml:"application"`
	Database    DatabaseSettings    `yaml:"database"`
}

// ApplicationSettings is the HTTP bind address
type ApplicationSettings struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

// Addr returns host:port for net.Listen
func (a ApplicationSettings) Addr() string {
	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// DatabaseSettings describes the postgres connection
type DatabaseSettings struct {
	Host         string `yaml:"host"`
	Port         int    `yaml:"port"`
	Username     string `yaml:"username"`
	Password     Secret `yaml:"password"`
	DatabaseName string `yaml:"database_name"`
	RequireSSL   bool   `yaml:"require_ssl"`
}

// ConnectionString returns a postgres URL for the configured database
// The result embeds the password and must not be logged
func (d DatabaseSettings) ConnectionString() string {
	u := d.url()
	u.Path = "/" + d.DatabaseName
	return u.String()
}

// ConnectionStringWithoutDB targets the server only, for tooling that creates databases
func (d DatabaseSettings) ConnectionStringWithoutDB() string {
	return d.url().String()
}

func (d DatabaseSettings) url() *url.URL {
	u := &url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(d.Username, d.Password.Expose()),
		Host:   net.JoinHostPort(d.Host, strconv.Itoa(d.Port)),
	}
	mode := "prefer"
	if d.RequireSSL {
		mode = "require"
	}
	u.RawQuery = url.Values{"sslmode": {mode}}.Encode()
	return u
}

// MarshalZerologObject logs everything except the password value
func (d DatabaseSettings) MarshalZerologObject(e *zerolog.Event) {
	e.Str("host", d.Host).
		Int("port", d.Port).
		Str("username", d.Username).
		Object("password", d.Password).
		Str("database_name", d.DatabaseName).
		Bool("require_ssl", d.RequireSSL)
}

// MarshalZerologObject lets main log the effective settings in one field
func (s Settings) MarshalZerologObject(e *zerolog.Event) {
	e.Str("environment", string(s.Environment)).
		Str("addr", s.Application.Addr()).
		Object("database", s.Database)
}

// Validate reports settings the server cannot start with
func (s Settings) Validate() error {
	var errs []error
	if s.Application.Port < 0 || s.Application.Port > 65535 {
		errs = append(errs, fmt.Errorf("application.port %d out of range", s.Application.Port))
	}
	if strings.TrimSpace(s.Database.Host) == "" {
		errs = append(errs, errors.New("database.host is required"))
	}
	if s.Database.Port < 1 || s.Database.Port > 65535 {
		errs = append(errs, fmt.Errorf("database.port %d out of range", s.Database.Port))
	}
	if strings.TrimSpace(s.Database.DatabaseName) == "" {
		errs = append(errs, errors.New("database.database_name is required"))
	}
	return errors.Join(errs...)
}

// SettingsDir is the default location of base.yaml and the environment overlays
const SettingsDir = "configuration"

// LoadSettings reads base.yaml then <APP_ENVIRONMENT>.yaml from dir and applies APP_ env overrides
// Keys use a double underscore between sections, e.g. APP_DATABASE__PASSWORD
func LoadSettings(dir string) (Settings, error) {
	env := New().Prefix("APP_")

	environment, err := ParseEnvironment(env.MayString("ENVIRONMENT", string(EnvLocal)))
	if err != nil {
		return Settings{}, err
	}

	var s Settings
	if err := decodeFile(filepath.Join(dir, "base.yaml"), &s); err != nil {
		return Settings{}, err
	}
	if err := decodeFile(filepath.Join(dir, string(environment)+".yaml"), &s); err != nil {
		return Settings{}, err
	}
	if err := applyOverrides(env, &s); err != nil {
		return Settings{}, err
	}
	s.Environment = environment

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// decodeFile overlays the YAML document at path onto out; keys absent from the file keep their value
func decodeFile(path string, out *Settings) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read settings %s: %w", path, err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse settings %s: %w", path, err)
	}
	return nil
}

func applyOverrides(env Conf, s *Settings) error {
	strs := map[string]*string{
		"APPLICATION__HOST":       &s.Application.Host,
		"DATABASE__HOST":          &s.Database.Host,
		"DATABASE__USERNAME":      &s.Database.Username,
		"DATABASE__DATABASE_NAME": &s.Database.DatabaseName,
	}
	for k, dst := range strs {
		if v, ok := env.Lookup(k); ok {
			*dst = v
		}
	}

	ints := map[string]*int{
		"APPLICATION__PORT": &s.Application.Port,
		"DATABASE__PORT":    &s.Database.Port,
	}
	for k, dst := range ints {
		if v, ok := env.Lookup(k); ok {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("APP_%s: %q is not a number", k, v)
			}
			*dst = n
		}
	}

	if v, ok := env.Lookup("DATABASE__REQUIRE_SSL"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("APP_DATABASE__REQUIRE_SSL: %q is not a bool", v)
		}
		s.Database.RequireSSL = b
	}

	// passwords may legitimately carry surrounding spaces, read untrimmed
	if v, ok := os.LookupEnv(env.key("DATABASE__PASSWORD")); ok && v != "" {
		s.Database.Password = Secret(v)
	}
	return nil
}

// Package logger owns the process zerolog logger and its request-scoped children
package logger

import (
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"newsletter/internal/platform/config/raw"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// Logger is zerolog's logger; packages take *Logger
type Logger = zerolog.Logger

// Options shape the root logger
type Options struct {
	Level   string
	Format  string // json or console
	Service string
	Caller  bool
	// SampleEvery keeps one in N debug and info lines; 0 and 1 keep all
	SampleEvery int
	Writer      io.Writer         // stdout when nil
	Fields      map[string]string // added to every line
}

// FromEnv reads LOG_LEVEL, LOG_FORMAT, LOG_SERVICE, LOG_CALLER and LOG_SAMPLE_EVERY
// it goes through raw so reading config never logs
func FromEnv() Options {
	env := raw.Env("LOG_")
	return Options{
		Level:   env.String("LEVEL", "info"),
		Format:  strings.ToLower(env.String("FORMAT", "json")),
		Service: env.String("SERVICE", "newsletter"),
		Caller:  env.Bool("CALLER", false),

		SampleEvery: env.Int("SAMPLE_EVERY", 0),
	}
}

var (
	initOnce sync.Once
	root     atomic.Pointer[Logger]
)

// Init builds the root logger; calls after the first are ignored
func Init(opt Options) {
	initOnce.Do(func() {
		l := New(opt)
		root.Store(&l)
	})
}

// Get returns the root logger, building it from the environment if Init was never called
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	Init(FromEnv())
	return root.Load()
}

// New builds a standalone logger from opt
func New(opt Options) Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	w := opt.Writer
	if w == nil {
		w = os.Stdout
	}
	if opt.Format == "console" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: !isTerminal(w)}
	}

	c := zerolog.New(w).Level(Level(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		c = c.Str("service", opt.Service)
	}
	if bi, ok := debug.ReadBuildInfo(); ok {
		c = c.Str("go_version", bi.GoVersion)
	}
	for k, v := range opt.Fields {
		c = c.Str(k, v)
	}
	if opt.Caller {
		c = c.Caller()
	}
	l := c.Logger()
	if opt.SampleEvery > 1 {
		every := &zerolog.BasicSampler{N: uint32(opt.SampleEvery)}
		l = l.Sample(zerolog.LevelSampler{DebugSampler: every, InfoSampler: every})
	}
	return l
}

// isTerminal reports whether w is a tty; colour codes only go to terminals
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Level parses a level name; "warning" is accepted and anything unknown is info
func Level(s string) zerolog.Level {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "warning" {
		s = "warn"
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || s == "" {
		return zerolog.InfoLevel
	}
	return lvl
}

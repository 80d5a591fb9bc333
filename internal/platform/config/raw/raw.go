// Package raw reads environment variables before logging exists
// it must not import the logger, which depends on it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Env reads variables under a fixed prefix such as "LOG_"
type Env string

// Sub returns Env for a longer prefix
func (e Env) Sub(p string) Env { return e + Env(p) }

func (e Env) lookup(key string) string {
	return strings.TrimSpace(os.Getenv(string(e) + key))
}

// String is the trimmed value, or def when unset or blank
func (e Env) String(key, def string) string {
	if v := e.lookup(key); v != "" {
		return v
	}
	return def
}

// Bool accepts strconv.ParseBool values plus yes/no, anything else yields def
func (e Env) Bool(key string, def bool) bool {
	switch v := strings.ToLower(e.lookup(key)); v {
	case "":
		return def
	case "yes", "y", "on":
		return true
	case "no", "n", "off":
		return false
	default:
		b, err := strconv.ParseBool(v)
		if err != nil {
			return def
		}
		return b
	}
}

// Int accepts a non-negative decimal, anything else yields def
func (e Env) Int(key string, def int) int {
	n, err := strconv.Atoi(e.lookup(key))
	if err != nil || n < 0 {
		return def
	}
	return n
}

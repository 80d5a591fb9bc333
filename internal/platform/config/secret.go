package config

import "github.com/rs/zerolog"

const redacted = "[REDACTED]"

// Secret holds a sensitive string such as a database password
// Every rendering path redacts; call Expose to get the raw value
type Secret string

// Expose returns the raw value; only connection builders should call it
func (s Secret) Expose() string { return string(s) }

// IsZero reports whether no value was configured
func (s Secret) IsZero() bool { return s == "" }

// String implements fmt.Stringer, so %v and %s never print the value
func (s Secret) String() string { return redacted }

// GoString covers %#v
func (s Secret) GoString() string { return redacted }

// MarshalText redacts in JSON and YAML output
func (s Secret) MarshalText() ([]byte, error) { return []byte(redacted), nil }

// MarshalZerologObject redacts when the secret is logged as an object
func (s Secret) MarshalZerologObject(e *zerolog.Event) {
	e.Bool("set", !s.IsZero()).Str("value", redacted)
}

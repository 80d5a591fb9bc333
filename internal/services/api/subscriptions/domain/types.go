// Package domain holds the subscriber value types and the intake conversion
package domain

import (
	"strings"
	"unicode/utf8"

	perr "newsletter/internal/platform/errors"
	"newsletter/internal/platform/validate"

	"github.com/rivo/uniseg"
)

// MaxNameGraphemes bounds a subscriber name in user-perceived characters
const MaxNameGraphemes = 255

// ForbiddenNameChars may not appear anywhere in a subscriber name
const ForbiddenNameChars = `/()"<>\{}`

// SubscriberName is a display name that passed ParseSubscriberName
// the zero value is invalid
type SubscriberName struct{ value string }

// ParseSubscriberName accepts raw when it is valid UTF-8, its trimmed form is non-empty,
// it has at most MaxNameGraphemes grapheme clusters and none of ForbiddenNameChars
// the value is kept exactly as given, untrimmed
func ParseSubscriberName(raw string) (SubscriberName, error) {
	if !utf8.ValidString(raw) {
		return SubscriberName{}, nameErr("name is not valid UTF-8")
	}
	if strings.TrimSpace(raw) == "" {
		return SubscriberName{}, nameErr("name is empty")
	}
	if n := uniseg.GraphemeClusterCount(raw); n > MaxNameGraphemes {
		return SubscriberName{}, nameErr("name is %d graphemes long, max %d", n, MaxNameGraphemes)
	}
	if i := strings.IndexAny(raw, ForbiddenNameChars); i >= 0 {
		return SubscriberName{}, nameErr("name contains forbidden character %q", raw[i])
	}
	return SubscriberName{value: raw}, nil
}

func nameErr(format string, a ...any) error {
	return perr.WithField(perr.Validationf(format, a...), "name")
}

// String returns the name exactly as parsed
func (n SubscriberName) String() string { return n.value }

// IsZero reports whether n was never parsed
func (n SubscriberName) IsZero() bool { return n.value == "" }

// SubscriberEmail is an address that passed ParseSubscriberEmail
// the zero value is invalid
type SubscriberEmail struct{ value string }

// ParseSubscriberEmail accepts raw when it is valid UTF-8 and a syntactically valid
// address with a local part, an @ and a domain
func ParseSubscriberEmail(raw string) (SubscriberEmail, error) {
	if !utf8.ValidString(raw) || validate.Var(raw, "required,email") != nil {
		return SubscriberEmail{}, perr.WithField(perr.Validationf("email is not a valid address"), "email")
	}
	return SubscriberEmail{value: raw}, nil
}

// String returns the address exactly as parsed
func (e SubscriberEmail) String() string { return e.value }

// IsZero reports whether e was never parsed
func (e SubscriberEmail) IsZero() bool { return e.value == "" }

package domain

import (
	"strings"
	"testing"

	perr "newsletter/internal/platform/errors"
)

func TestParseSubscriberName_Accepts(t *testing.T) {
	cases := map[string]string{
		"plain":           "Ursula Le Guin",
		"single rune":     "a",
		"max graphemes":   strings.Repeat("ё", MaxNameGraphemes),
		"combining marks": strings.Repeat("e\u0301", MaxNameGraphemes),
		"padded":          "  le guin  ",
		"emoji":           "👩‍🔬 Ada",
		"punctuation":     "O'Brien-Smith, Jr.",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := ParseSubscriberName(raw)
			if err != nil {
				t.Fatalf("ParseSubscriberName(%q) err = %v", raw, err)
			}
			if got.String() != raw {
				t.Fatalf("String() = %q, want %q", got.String(), raw)
			}
			if got.IsZero() {
				t.Fatalf("parsed name reports zero")
			}
		})
	}
}

func TestParseSubscriberName_Rejects(t *testing.T) {
	cases := map[string]string{
		"empty":          "",
		"whitespace":     " \t\n ",
		"too long":       strings.Repeat("a", MaxNameGraphemes+1),
		"too long runes": strings.Repeat("ё", MaxNameGraphemes+1),
		"invalid utf8":   "\xff\xfe",
		"truncated rune": "le gui\xd0",
	}
	for _, c := range ForbiddenNameChars {
		cases["forbidden "+string(c)] = "ur" + string(c) + "sula"
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseSubscriberName(raw)
			if err == nil {
				t.Fatalf("ParseSubscriberName(%q) accepted", raw)
			}
			e, ok := perr.As(err)
			if !ok {
				t.Fatalf("want *perr.Error, got %T", err)
			}
			if e.Code() != perr.ErrorCodeValidation {
				t.Fatalf("code = %v, want validation", e.Code())
			}
			if e.Field() != "name" {
				t.Fatalf("field = %q, want name", e.Field())
			}
		})
	}
}

func TestParseSubscriberName_ErrorDoesNotEchoInput(t *testing.T) {
	raw := "secret-name-" + strings.Repeat("x", MaxNameGraphemes)
	_, err := ParseSubscriberName(raw)
	if err == nil {
		t.Fatalf("expected error")
	}
	if strings.Contains(err.Error(), "secret-name") {
		t.Fatalf("error leaks input: %v", err)
	}
}

func TestParseSubscriberEmail(t *testing.T) {
	good := []string{
		"ursula@example.com",
		"le.guin+news@mail.example.org",
	}
	for _, raw := range good {
		got, err := ParseSubscriberEmail(raw)
		if err != nil {
			t.Fatalf("ParseSubscriberEmail(%q) err = %v", raw, err)
		}
		if got.String() != raw || got.IsZero() {
			t.Fatalf("unexpected value %+v", got)
		}
	}

	bad := []string{
		"",
		"   ",
		"ursuladomain.com",
		"@domain.com",
		"ursula@",
		"ursula@@domain.com",
		"urs\xffula@domain.com",
	}
	for _, raw := range bad {
		_, err := ParseSubscriberEmail(raw)
		if err == nil {
			t.Fatalf("ParseSubscriberEmail(%q) accepted", raw)
		}
		e, ok := perr.As(err)
		if !ok || e.Code() != perr.ErrorCodeValidation || e.Field() != "email" {
			t.Fatalf("ParseSubscriberEmail(%q) err = %v", raw, err)
		}
	}
}

func TestZeroValuesAreInvalid(t *testing.T) {
	if !(SubscriberName{}).IsZero() {
		t.Fatalf("zero name should report zero")
	}
	if !(SubscriberEmail{}).IsZero() {
		t.Fatalf("zero email should report zero")
	}
	if !(NewSubscriber{}).IsZero() {
		t.Fatalf("zero subscriber should report zero")
	}
}

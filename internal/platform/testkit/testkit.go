// Package testkit holds small helpers shared by package tests
package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

// MustPanic fails t unless fn panics
func MustPanic(t *testing.T, fn func()) {
	t.Helper()
	if !panics(fn) {
		t.Fatalf("expected panic, got none")
	}
}

// MustNotPanic fails t if fn panics
func MustNotPanic(t *testing.T, fn func()) {
	t.Helper()
	var rec any
	func() {
		defer func() { rec = recover() }()
		fn()
	}()
	if rec != nil {
		t.Fatalf("unexpected panic: %v", rec)
	}
}

func panics(fn func()) (did bool) {
	defer func() { did = recover() != nil }()
	fn()
	return false
}

// MustContain fails t when out lacks want; long output is dumped to a temp file
func MustContain(t *testing.T, out, want string) {
	t.Helper()
	if strings.Contains(out, want) {
		return
	}
	if len(out) < 512 {
		t.Fatalf("expected %q in output:\n%s", want, out)
	}
	dump := filepath.Join(t.TempDir(), "output.txt")
	_ = os.WriteFile(dump, []byte(out), 0o600)
	t.Fatalf("expected %q in output, full output at %s", want, dump)
}

// Logger returns a zerolog logger writing JSON into the returned buffer
func Logger(t *testing.T) (*zerolog.Logger, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	l := zerolog.New(buf)
	return &l, buf
}

// FormRequest builds an urlencoded request with body as the raw encoded form
func FormRequest(method, target, body string) *http.Request {
	var rd io.Reader = http.NoBody
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

package testkit

import (
	"sync"
	"testing"
)

// seams are package globals, so tests that swap them share one lock
var seams sync.Mutex

// Swap sets *target to v and puts the old value back when t finishes
func Swap[T any](t *testing.T, target *T, v T) {
	t.Helper()
	old := *target
	t.Cleanup(func() { *target = old })
	*target = v
}

// Serial holds the seam lock until t finishes
func Serial(t *testing.T) {
	t.Helper()
	seams.Lock()
	t.Cleanup(seams.Unlock)
}

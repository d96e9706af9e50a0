// Package leaktest checks that long-running components leave no goroutines
// behind once they are shut down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultTimeout bounds how long Verify waits for goroutines to exit
const DefaultTimeout = time.Second

// Tracker remembers the goroutine count at the start of a test
type Tracker struct {
	before int
	t      testing.TB
}

// Track records the current goroutine count
func Track(t testing.TB) *Tracker {
	t.Helper()
	runtime.Gosched()
	return &Tracker{before: runtime.NumGoroutine(), t: t}
}

// Verify polls until the goroutine count drops back to within tolerance of
// the tracked count, failing the test if that does not happen in time.
func (tr *Tracker) Verify(tolerance int, timeout time.Duration) {
	tr.t.Helper()

	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		after := runtime.NumGoroutine()
		if after-tr.before <= tolerance {
			return
		}
		if time.Now().After(deadline) {
			tr.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d", tr.before, after, tolerance)
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// Check runs fn and verifies it leaves no goroutines running
func Check(t testing.TB, fn func()) {
	t.Helper()
	tr := Track(t)
	fn()
	tr.Verify(0, DefaultTimeout)
}

package testutil

import (
	"runtime"
	"testing"
	"time"
)

// GoroutineBaseline settles the runtime and returns the goroutine count to
// compare against later.
func GoroutineBaseline() int {
	runtime.GC()
	time.Sleep(100 * time.Millisecond)
	return runtime.NumGoroutine()
}

// AssertNoGoroutineLeaks waits up to ten seconds for the goroutine count to
// fall back within margin of baseline.
func AssertNoGoroutineLeaks(t *testing.T, baseline, margin int) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if runtime.NumGoroutine() <= baseline+margin {
			return
		}
		time.Sleep(200 * time.Millisecond)
	}
	t.Errorf("goroutine leak: baseline=%d, current=%d, margin=%d", baseline, runtime.NumGoroutine(), margin)
}

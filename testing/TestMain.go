package testing

import (
	"os"
	"sync"
	stdtesting "testing"
)

var once sync.Once

// ensureTestMode marks the process as a test run before any package reads
// TRACKER_TEST_MODE.
func ensureTestMode() {
	once.Do(func() {
		_ = os.Setenv("TRACKER_TEST_MODE", "1")
	})
}

func init() {
	ensureTestMode()
}

func TestMain(m *stdtesting.M) {
	ensureTestMode()
	os.Exit(m.Run())
}

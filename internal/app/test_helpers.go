package app

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/vk/gridnodes/internal/registry"
)

// SafeBuffer is a thread-safe buffer for capturing log output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// SetupAppTest creates an App that logs at debug level into a buffer. Set
// GRIDNODES_TEST_LOGS=true to dump the logs after the test.
func SetupAppTest(t *testing.T, cfg Config, modules ...registry.Module) (*App, *SafeBuffer) {
	t.Helper()

	cfg.LogLevel = "debug"
	if cfg.LogFormat == "" {
		cfg.LogFormat = "text"
	}
	if cfg.WorkerCount == 0 {
		cfg.WorkerCount = 2
	}

	logBuffer := &SafeBuffer{}
	testApp := NewApp(logBuffer, &cfg, modules...)

	t.Cleanup(func() {
		if os.Getenv("GRIDNODES_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})
	return testApp, logBuffer
}

package app

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/vk/depgraph/internal/testutil"
)

// setupAppTest creates a new app instance reading manifests from files.
func setupAppTest(t *testing.T, cfg Config, files map[string]string) (*App, *bytes.Buffer, *testutil.SafeBuffer) {
	t.Helper()

	if len(cfg.Paths) == 0 {
		cfg.Paths = []string{testutil.WriteFiles(t, files)}
	}
	cfg.LogLevel = "debug"
	validated, err := NewConfig(cfg)
	require.NoError(t, err)

	out := &bytes.Buffer{}
	logs := &testutil.SafeBuffer{}
	testApp := NewApp(out, logs, validated)

	t.Cleanup(func() {
		if os.Getenv("DEPGRAPH_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return testApp, out, logs
}

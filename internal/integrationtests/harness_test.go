package integration_tests

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/vk/depgraph/internal/cli"
	"github.com/vk/depgraph/internal/testutil"
)

// HarnessResult holds the outcomes of a CLI run.
type HarnessResult struct {
	Out       string
	LogOutput string
	Err       error
}

// runCLI writes files into a temporary directory and runs the CLI with args.
// The placeholder {dir} in any argument is replaced with that directory.
func runCLI(t *testing.T, files map[string]string, args ...string) *HarnessResult {
	t.Helper()

	dir := testutil.WriteFiles(t, files)
	expanded := make([]string, len(args))
	for i, arg := range args {
		expanded[i] = strings.ReplaceAll(arg, "{dir}", dir)
	}

	var out bytes.Buffer
	logs := &testutil.SafeBuffer{}
	err := cli.Execute(context.Background(), expanded, &out, logs)

	t.Cleanup(func() {
		if t.Failed() {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return &HarnessResult{Out: out.String(), LogOutput: logs.String(), Err: err}
}

package integrationtests

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/capigen/internal/cli"
	"github.com/specialistvlad/capigen/internal/testutil"
	"github.com/stretchr/testify/require"
)

// result holds everything a capigen run produced.
type result struct {
	Err       error
	Stdout    string
	LogOutput string
	Root      string
}

// runIntegrationTest writes files and capigen.yaml into a temporary project
// and runs the command line against it.
func runIntegrationTest(t *testing.T, files map[string]string, configYAML string, args ...string) *result {
	t.Helper()

	root := testutil.WriteFiles(t, files)
	configPath := filepath.Join(root, "capigen.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte(configYAML), 0o644))

	stdout := &testutil.SafeBuffer{}
	logs := &testutil.SafeBuffer{}
	args = append(args, "--config", configPath, "--log-level", "debug", "--log-format", "text")
	err := cli.Execute(context.Background(), args, stdout, logs)

	t.Cleanup(func() {
		if os.Getenv("CAPIGEN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logs.String())
		}
	})
	return &result{Err: err, Stdout: stdout.String(), LogOutput: logs.String(), Root: root}
}

// output reads a generated file below the project root.
func (r *result) output(t *testing.T, name string) string {
	t.Helper()
	return testutil.ReadFile(t, r.Root, name)
}

package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/specialistvlad/capigen/internal/testutil"
	"github.com/stretchr/testify/require"
)

// setupAppTest writes files into a temporary project directory, reads
// capigen.yaml from it and returns an app whose summary and logs are captured.
func setupAppTest(t *testing.T, files map[string]string, configYAML string) (*App, *testutil.SafeBuffer, *testutil.SafeBuffer) {
	t.Helper()

	root := testutil.WriteFiles(t, files)
	path := filepath.Join(root, DefaultConfigFile)
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o644))

	raw, err := ReadConfig(path)
	require.NoError(t, err)
	raw.LogLevel = "debug"
	cfg, err := NewConfig(raw)
	require.NoError(t, err)

	outBuffer := &testutil.SafeBuffer{}
	logBuffer := &testutil.SafeBuffer{}
	testApp := NewApp(outBuffer, logBuffer, cfg)

	t.Cleanup(func() {
		if os.Getenv("CAPIGEN_TEST_LOGS") == "true" {
			t.Logf("--- Full Log Output for %s ---\n%s", t.Name(), logBuffer.String())
		}
	})
	return testApp, outBuffer, logBuffer
}

package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))
	}
}

func TestFindFiles_WalksInLexicalOrder(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "b/two.json", "a/one.json", "a/skip.txt", "c.hcl")

	files, err := FindFiles([]string{root}, ".json", ".hcl")
	require.NoError(t, err)

	assert.Equal(t, []string{
		filepath.Join(root, "a", "one.json"),
		filepath.Join(root, "b", "two.json"),
		filepath.Join(root, "c.hcl"),
	}, files)
}

func TestFindFiles_DeduplicatesAcrossRoots(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "apis/v0.1.0.json", "apis/exclusion_list.json")

	exclusion := filepath.Join(root, "apis", "exclusion_list.json")
	files, err := FindFiles([]string{exclusion, filepath.Join(root, "apis")}, ".json")
	require.NoError(t, err)

	assert.Equal(t, []string{exclusion, filepath.Join(root, "apis", "v0.1.0.json")}, files)
}

func TestFindFiles_Errors(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	writeFiles(t, root, "notes.txt")

	_, err := FindFiles([]string{filepath.Join(root, "missing")}, ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error accessing path")

	_, err = FindFiles([]string{filepath.Join(root, "notes.txt")}, ".json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file type")
}

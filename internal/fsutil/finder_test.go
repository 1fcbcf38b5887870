package fsutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o600))
}

func TestFindFilesByExtension_Directory(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, "b.hcl"))
	writeFile(t, filepath.Join(dir, "a.YAML"))
	writeFile(t, filepath.Join(dir, "nested", "c.hcl"))
	writeFile(t, filepath.Join(dir, "README.md"))

	// --- Act ---
	files, err := FindFilesByExtension(dir, ".hcl", ".yaml")

	// --- Assert ---
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.YAML"),
		filepath.Join(dir, "b.hcl"),
		filepath.Join(dir, "nested", "c.hcl"),
	}, files)
}

func TestFindFilesByExtension_SingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "deps.txt")
	writeFile(t, path)

	files, err := FindFilesByExtension(path, ".hcl")

	require.NoError(t, err)
	assert.Equal(t, []string{path}, files)
}

func TestFindFilesByExtension_Missing(t *testing.T) {
	_, err := FindFilesByExtension(filepath.Join(t.TempDir(), "missing"), ".hcl")

	assert.ErrorContains(t, err, "error accessing path")
}

func TestFindFilesByExtension_PanicsWithoutExtensions(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = FindFilesByExtension(t.TempDir())
	})
}

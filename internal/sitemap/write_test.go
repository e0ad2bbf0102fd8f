package sitemap

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteCreatesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sitemap.xml")

	require.NoError(t, Write([]byte("first"), path))
	require.NoError(t, Write([]byte("second"), path))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "sitemap.xml")

	err := Write([]byte("doc"), path)

	var wErr *WriteError
	require.ErrorAs(t, err, &wErr)
	assert.Equal(t, path, wErr.Path)
	assert.NoFileExists(t, path)
}

func TestWriteOntoDirectoryKeepsNothingBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sitemap.xml")
	require.NoError(t, os.Mkdir(path, 0755))

	err := Write([]byte("doc"), path)

	var wErr *WriteError
	require.ErrorAs(t, err, &wErr)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.DirExists(t, path)
}

package utils

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewWriterLogger(&buf, false)

	l.LogInfo("found %d items", 3)
	l.LogError("boom: %v", "disk full")
	l.LogDebug("hidden")

	out := buf.String()
	assert.Contains(t, out, "[INFO] found 3 items")
	assert.Contains(t, out, "[ERROR] boom: disk full")
	assert.NotContains(t, out, "hidden")

	buf.Reset()
	NewWriterLogger(&buf, true).LogDebug("shown %s", "now")
	assert.Contains(t, buf.String(), "[DEBUG] shown now")
}

func TestRunLoggerFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sitemap.log")

	l, err := NewRunLogger(path, false)
	require.NoError(t, err)
	l.LogInfo("written to file")
	require.NoError(t, l.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[INFO] written to file")
}

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewEntries(t *testing.T) {
	doc := []byte("<urlset>\n  <url>a</url>\n\n  <url>b</url>\n\n  <url>c</url>\n\n</urlset>")

	head, shown := previewEntries(doc, 2)
	assert.Equal(t, 2, shown)
	assert.Equal(t, "<urlset>\n  <url>a</url>\n\n  <url>b</url>", string(head))

	head, shown = previewEntries(doc, 10)
	assert.Equal(t, 3, shown)
	assert.Equal(t, "<urlset>\n  <url>a</url>\n\n  <url>b</url>\n\n  <url>c</url>", string(head))

	head, shown = previewEntries(doc, 0)
	assert.Zero(t, shown)
	assert.Empty(t, head)
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data-embedded.js")
	out := filepath.Join(dir, "sitemap.xml")
	require.NoError(t, os.WriteFile(data, []byte(`const ITEMS_DATA = [{"id": 1, "name": "Nail Clippers (Small)"}];`), 0644))

	var cli CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)
	ctx, err := parser.Parse([]string{"--site-url", "https://www.example.com/", "--data", data, "--output", out, "generate", "-q"})
	require.NoError(t, err)
	require.NoError(t, ctx.Run(&cli))

	content, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(content), "<loc>https://www.example.com/?item=nail-clippers-small</loc>")
}

func TestGenerateCommandMissingData(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "sitemap.xml")

	var cli CLI
	parser, err := kong.New(&cli)
	require.NoError(t, err)
	ctx, err := parser.Parse([]string{"--data", filepath.Join(dir, "missing.js"), "--output", out})
	require.NoError(t, err)

	assert.Error(t, ctx.Run(&cli))
	assert.NoFileExists(t, out)
}

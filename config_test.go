package bible_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bible "github.com/MasterTemple/bible-lsp"
)

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, filepath.Join(dir, ".bible-lsp.yaml"),
		"translation: /data/esv.json\nlog_level: debug\n")

	cfg, err := bible.LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/data/esv.json", cfg.Translation)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestFindConfigWalksUp(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "notes", "daily")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeFile(t, filepath.Join(root, "bible-lsp.yml"), "translation: kjv.json\n")

	path, err := bible.FindConfig(nested)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "bible-lsp.yml"), path)
}

func TestFindConfigPrefersNearest(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	nested := filepath.Join(root, "notes")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	writeFile(t, filepath.Join(root, ".bible-lsp.yaml"), "translation: outer.json\n")
	writeFile(t, filepath.Join(nested, ".bible-lsp.yaml"), "translation: inner.json\n")

	path, err := bible.FindConfig(nested)
	require.NoError(t, err)

	cfg, err := bible.LoadConfigFile(path)
	require.NoError(t, err)
	assert.Equal(t, "inner.json", cfg.Translation)
}

func TestFindConfigNotFound(t *testing.T) {
	t.Parallel()

	_, err := bible.FindConfig(t.TempDir())
	require.ErrorIs(t, err, bible.ErrConfigNotFound)
}

func TestLoadConfigFileBadYAML(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".bible-lsp.yaml")
	writeFile(t, path, "translation: [unclosed\n")

	_, err := bible.LoadConfigFile(path)
	require.Error(t, err)
}

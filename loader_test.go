package bible_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bible "github.com/MasterTemple/bible-lsp"
)

func TestLoadCorpus(t *testing.T) {
	t.Parallel()

	c, err := bible.LoadCorpus(filepath.Join("testdata", "mini.json"))
	require.NoError(t, err)

	assert.Equal(t, "Mini Standard Version", c.Translation().Name)
	assert.Equal(t, "MSV", c.Translation().Abbreviation)
	assert.Equal(t, 2, c.BookCount())

	id, ok := c.BookID("ge")
	require.True(t, ok)
	assert.Equal(t, 1, id)

	chapters, ok := c.ChapterCount(1)
	require.True(t, ok)
	assert.Equal(t, 2, chapters)

	text, ok := c.VerseText(2, 1, 1)
	require.True(t, ok)
	assert.Equal(t, "In the beginning was the Word.", text)
}

func TestLoadCorpusMissingFile(t *testing.T) {
	t.Parallel()

	_, err := bible.LoadCorpus(filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading translation dataset")
}

func TestLoadCorpusBadJSON(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.json")
	writeFile(t, path, "{not json")

	_, err := bible.LoadCorpus(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing translation dataset")
}

package bible_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bible "github.com/MasterTemple/bible-lsp"
)

func TestCandidatesBooks(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)
	st := bible.InferState(c, "I was reading ")

	cands := st.Candidates(c)
	require.Len(t, cands, 4)
	assert.Equal(t, "Genesis", cands[0].Label(c))
	assert.Equal(t, "Ephesians", cands[3].Label(c))
	assert.Equal(t, "### Genesis", cands[0].Preview(c))
}

func TestCandidatesChapters(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)
	st := bible.InferState(c, "Ephesians ")

	cands := st.Candidates(c)
	require.Len(t, cands, 6)
	assert.Equal(t, "Ephesians 1", cands[0].Label(c))
	assert.Equal(t, "Ephesians 6", cands[5].Label(c))

	preview := cands[0].Preview(c)
	assert.True(t, strings.HasPrefix(preview, "### Ephesians 1\n\n[1:1] "), "preview %q", preview)
	assert.Contains(t, preview, "[1:23] Ephesians 1:23 text")
}

func TestCandidatesVerses(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)
	st := bible.InferState(c, "Ephesians 3:")

	cands := st.Candidates(c)
	require.Len(t, cands, 21) // chapter 3 has 21 verses

	assert.Equal(t, "Ephesians 3:1", cands[0].Label(c))
	assert.Equal(t, "Ephesians 3:21", cands[20].Label(c))
	assert.Equal(t,
		"### Ephesians 3:1\n\n[3:1] Ephesians 3:1 text",
		cands[0].Preview(c))
}

func TestCandidatesAfterRangeDash(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)
	st := bible.InferState(c, "Ephesians 1:2-")

	cands := st.Candidates(c)
	// Verses 3..23 of chapter 1, then chapters 2..6.
	require.Len(t, cands, 21+5)

	assert.Equal(t, "Ephesians 1:2-3", cands[0].Label(c))
	assert.Equal(t, "Ephesians 1:2-23", cands[20].Label(c))
	assert.Equal(t, "Ephesians 2", cands[21].Label(c))
	assert.Equal(t, "Ephesians 6", cands[25].Label(c))
}

func TestCandidatesAfterBreak(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)
	st := bible.InferState(c, "Ephesians 1:2-5, ")

	cands := st.Candidates(c)
	require.NotEmpty(t, cands)

	// The break appends a fresh verse segment after the typed range.
	assert.Equal(t, "Ephesians 1:2-5,6", cands[0].Label(c))
	assert.Equal(t,
		"### Ephesians 1:2-5,6\n\n[1:2] Ephesians 1:2 text",
		cands[0].Preview(c)[:strings.Index(cands[0].Preview(c), "\n[1:3]")])
}

func TestCandidatesMidNumberKeepBareLabels(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)
	st := bible.InferState(c, "Ephesians 1:2")

	cands := st.Candidates(c)
	require.NotEmpty(t, cands)

	// The user may still be typing digits, so only bare numbers are
	// offered and the client's prefix filter narrows them.
	assert.Equal(t, "3", cands[0].Label(c))
	assert.Equal(t, bible.OpNone, cands[0].Operator)
}

func TestCandidatesOutOfRangeChapterIsSilent(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)

	st := bible.InferState(c, "Ephesians 9:")
	assert.Empty(t, st.Candidates(c))
}

func TestCandidatesDoNotMutateState(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)
	st := bible.InferState(c, "Ephesians 1:2-")
	require.Len(t, st.Segments, 1)

	cands := st.Candidates(c)
	for _, cand := range cands[:5] {
		cand.Label(c)
		cand.Preview(c)
	}

	// Replaying the operator clones the typed segments per candidate.
	assert.Equal(t,
		bible.Segments{bible.ChapterVerse{Chapter: 1, Verse: 2}},
		st.Segments)
	assert.Equal(t, "Ephesians 1:2-4", cands[1].Label(c))
}

func TestSortKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "00000", bible.SortKey(0))
	assert.Equal(t, "00042", bible.SortKey(42))
	assert.True(t, bible.SortKey(9) < bible.SortKey(10))
}

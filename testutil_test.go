package bible_test

import (
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	bible "github.com/MasterTemple/bible-lsp"
)

// writeFile writes a test fixture, failing the test on error.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

// makeBook builds a SourceBook with one synthetic verse text per slot so
// content assertions can predict the exact string.
func makeBook(id int, name string, abbrevs []string, verseCounts []int) bible.SourceBook {
	content := make([][]string, len(verseCounts))
	for c, n := range verseCounts {
		verses := make([]string, n)
		for v := range verses {
			verses[v] = fmt.Sprintf("%s %d:%d text", name, c+1, v+1)
		}
		content[c] = verses
	}

	return bible.SourceBook{ID: id, Name: name, Abbreviations: abbrevs, Content: content}
}

// testCorpus builds a small corpus. Ephesians carries its real verse
// counts so bounds tests line up with familiar references; "1 John"
// exists to prove numbered books win over their plain suffix.
func testCorpus(t *testing.T) *bible.Corpus {
	t.Helper()

	src := &bible.SourceBible{
		Translation: bible.SourceTranslation{Name: "Test Standard Version", Language: "en", Abbreviation: "TSV"},
		Books: []bible.SourceBook{
			makeBook(1, "Genesis", []string{"gen", "ge"}, []int{31, 25, 24}),
			makeBook(2, "John", []string{"jn"}, []int{51, 25}),
			makeBook(3, "1 John", []string{"1 jn"}, []int{10, 29}),
			makeBook(4, "Ephesians", []string{"eph"}, []int{23, 22, 21, 32, 33, 24}),
		},
	}

	c, err := bible.NewCorpus(src)
	require.NoError(t, err)

	return c
}

package bible

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"sync"
)

// Translation identifies the dataset a Corpus was built from.
type Translation struct {
	Name         string
	Language     string
	Abbreviation string
}

// Corpus is the immutable in-memory dataset the whole server works
// against: book names and abbreviations, per-chapter verse counts
// bounding what references are valid, and the verse text itself.
//
// Every bounds query reports absence with a bool instead of an error; a
// reference past the end of a book is ordinary user input, not a failure.
// A Corpus is safe for concurrent readers.
type Corpus struct {
	translation Translation
	bookIDs     map[string]int // lowercase name/abbreviation -> 1-based id
	bookNames   map[int]string
	verseCounts [][]int      // [book-1][chapter-1] = verse count
	contents    [][][]string // [book-1][chapter-1][verse-1] = verse text

	// The compiled book-matching pattern is derived from the abbreviation
	// table, built at most once per translation and rebuilt only if the
	// translation is hot-swapped. Guarded so concurrent requests share a
	// single build.
	patternMu  sync.Mutex
	patternKey string
	pattern    *regexp.Regexp
}

// NewCorpus builds a Corpus from loaded source data. It fails if the data
// is internally inconsistent; the server cannot run without a coherent
// dataset, so callers treat an error here as fatal.
func NewCorpus(src *SourceBible) (*Corpus, error) {
	c := &Corpus{
		translation: Translation(src.Translation),
		bookIDs:     make(map[string]int),
		bookNames:   make(map[int]string, len(src.Books)),
		verseCounts: make([][]int, 0, len(src.Books)),
		contents:    make([][][]string, 0, len(src.Books)),
	}

	for _, book := range src.Books {
		if book.ID != len(c.verseCounts)+1 {
			return nil, fmt.Errorf("%w: book %q has id %d, want %d",
				ErrInvalidCorpus, book.Name, book.ID, len(c.verseCounts)+1)
		}
		if book.Name == "" || len(book.Content) == 0 {
			return nil, fmt.Errorf("%w: book %d is empty", ErrInvalidCorpus, book.ID)
		}

		c.bookNames[book.ID] = book.Name
		c.bookIDs[strings.ToLower(book.Name)] = book.ID
		for _, abbrev := range book.Abbreviations {
			c.bookIDs[strings.ToLower(abbrev)] = book.ID
		}

		counts := make([]int, len(book.Content))
		for i, verses := range book.Content {
			counts[i] = len(verses)
		}
		c.verseCounts = append(c.verseCounts, counts)
		c.contents = append(c.contents, book.Content)
	}

	return c, nil
}

// Translation returns the dataset metadata.
func (c *Corpus) Translation() Translation { return c.translation }

// BookCount returns the number of books in the corpus.
func (c *Corpus) BookCount() int { return len(c.verseCounts) }

// BookID resolves a book name or abbreviation, case-insensitively and
// with a trailing period stripped (`eph.` resolves like `eph`).
func (c *Corpus) BookID(name string) (int, bool) {
	id, ok := c.bookIDs[strings.TrimSuffix(strings.ToLower(name), ".")]

	return id, ok
}

// BookName returns the canonical display name of a book.
func (c *Corpus) BookName(id int) (string, bool) {
	name, ok := c.bookNames[id]

	return name, ok
}

// ChapterCount returns the number of chapters in a book.
func (c *Corpus) ChapterCount(book int) (int, bool) {
	if book < 1 || book > len(c.verseCounts) {
		return 0, false
	}

	return len(c.verseCounts[book-1]), true
}

// VerseCount returns the number of verses in a chapter.
func (c *Corpus) VerseCount(book, chapter int) (int, bool) {
	if book < 1 || book > len(c.verseCounts) {
		return 0, false
	}
	counts := c.verseCounts[book-1]
	if chapter < 1 || chapter > len(counts) {
		return 0, false
	}

	return counts[chapter-1], true
}

// IsValidBookChapter reports whether a chapter exists in a book.
func (c *Corpus) IsValidBookChapter(book, chapter int) bool {
	n, ok := c.ChapterCount(book)

	return ok && chapter >= 1 && chapter <= n
}

// IsValidReference reports whether a verse exists.
func (c *Corpus) IsValidReference(book, chapter, verse int) bool {
	n, ok := c.VerseCount(book, chapter)

	return ok && verse >= 1 && verse <= n
}

// VerseText returns the text of a single verse.
func (c *Corpus) VerseText(book, chapter, verse int) (string, bool) {
	if !c.IsValidReference(book, chapter, verse) {
		return "", false
	}

	return c.contents[book-1][chapter-1][verse-1], true
}

// RangeText collects the verse texts covered by an inclusive
// chapter/verse range, in order. Verses outside the corpus bounds
// contribute nothing.
func (c *Corpus) RangeText(book, startChapter, startVerse, endChapter, endVerse int) []string {
	var texts []string
	for chapter := startChapter; chapter <= endChapter; chapter++ {
		for verse := startVerse; verse <= endVerse; verse++ {
			if text, ok := c.VerseText(book, chapter, verse); ok {
				texts = append(texts, text)
			}
		}
	}

	return texts
}

// BookPattern returns the compiled pattern matching any known book name
// or abbreviation as a whole word, case-insensitively, with an optional
// trailing period (so `eph.` matches without the period leaking into the
// name). Longer alternatives are tried first so `1 john` wins over `john`.
func (c *Corpus) BookPattern() *regexp.Regexp {
	c.patternMu.Lock()
	defer c.patternMu.Unlock()

	if c.pattern != nil && c.patternKey == c.translation.Abbreviation {
		return c.pattern
	}

	names := make([]string, 0, len(c.bookIDs))
	for name := range c.bookIDs {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if len(names[i]) != len(names[j]) {
			return len(names[i]) > len(names[j])
		}

		return names[i] < names[j]
	})
	for i, name := range names {
		names[i] = regexp.QuoteMeta(name)
	}

	c.pattern = regexp.MustCompile(`(?i)\b(?:` + strings.Join(names, "|") + `)\b\.?`)
	c.patternKey = c.translation.Abbreviation

	return c.pattern
}

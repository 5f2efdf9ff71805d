package bible

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// CandidateKind names the three kinds of completion candidates.
type CandidateKind int

const (
	// CandidateBook suggests a book name.
	CandidateBook CandidateKind = iota
	// CandidateChapter suggests a chapter of a book.
	CandidateChapter
	// CandidateVerse suggests a verse, carrying the segments typed so far
	// and the operator deciding how the verse folds into them.
	CandidateVerse
)

// Candidate is one concrete completion suggestion.
type Candidate struct {
	Kind     CandidateKind
	BookID   int
	Chapter  int
	Verse    int
	Segments Segments
	Operator Operator
}

// Candidates enumerates the suggestions for a state, bounded by the
// corpus. The order is meaningful: continuations of the current chapter
// sort before later chapters. Out-of-range chapters typed by the user
// yield an empty list rather than an error; the user sees silence, not a
// crash. Generation is a pure function of the state and corpus.
func (st State) Candidates(c *Corpus) []Candidate {
	switch st.Kind {
	case StateBooks:
		books := make([]Candidate, 0, c.BookCount())
		for id := 1; id <= c.BookCount(); id++ {
			books = append(books, Candidate{Kind: CandidateBook, BookID: id})
		}

		return books

	case StateChapters:
		chapterCount, ok := c.ChapterCount(st.BookID)
		if !ok {
			return nil
		}
		chapters := make([]Candidate, 0, chapterCount)
		for chapter := 1; chapter <= chapterCount; chapter++ {
			chapters = append(chapters, Candidate{Kind: CandidateChapter, BookID: st.BookID, Chapter: chapter})
		}

		return chapters

	case StateVerses:
		verseCount, ok := c.VerseCount(st.BookID, st.Chapter)
		if !ok {
			return nil
		}
		verses := make([]Candidate, 0, verseCount)
		for verse := 1; verse <= verseCount; verse++ {
			verses = append(verses, Candidate{
				Kind:     CandidateVerse,
				BookID:   st.BookID,
				Chapter:  st.Chapter,
				Verse:    verse,
				Operator: OpChapterColon,
			})
		}

		return verses

	case StateChaptersOrVerses:
		verseCount, ok := c.VerseCount(st.BookID, st.Chapter)
		if !ok {
			return nil
		}
		chapterCount, _ := c.ChapterCount(st.BookID)

		out := make([]Candidate, 0, verseCount+chapterCount)
		for verse := st.Verse + 1; verse <= verseCount; verse++ {
			out = append(out, Candidate{
				Kind:     CandidateVerse,
				BookID:   st.BookID,
				Chapter:  st.Chapter,
				Verse:    verse,
				Segments: st.Segments,
				Operator: st.Operator,
			})
		}
		for chapter := st.Chapter + 1; chapter <= chapterCount; chapter++ {
			out = append(out, Candidate{Kind: CandidateChapter, BookID: st.BookID, Chapter: chapter})
		}

		return out
	}

	return nil
}

// resolvedSegments replays the ending operator against the typed
// segments: Through turns the last segment into a range ending at this
// verse, Break and ChapterColon append a standalone verse, and None
// leaves the segments untouched since the user is mid-number.
func (cand Candidate) resolvedSegments() Segments {
	segs := slices.Clone(cand.Segments)

	switch cand.Operator {
	case OpNone:
	case OpChapterColon, OpBreak:
		segs = append(segs, ChapterVerse{Chapter: cand.Chapter, Verse: cand.Verse})
	case OpThrough:
		if n := len(segs); n > 0 {
			// The last segment parsed as a single verse but is really the
			// open start of a range.
			start := segs[n-1].EndingVerse()
			segs[n-1] = ChapterRange{Chapter: cand.Chapter, StartVerse: start, EndVerse: cand.Verse}
		} else {
			segs = append(segs, ChapterVerse{Chapter: cand.Chapter, Verse: cand.Verse})
		}
	}

	return segs
}

// Label renders the display text of a candidate. Book and chapter
// candidates read `Ephesians` and `Ephesians 2`; verse candidates render
// the whole reference with the candidate verse folded in, except when
// the user is mid-number (Operator None), where a bare number is offered
// and the editor's prefix filter does the narrowing.
func (cand Candidate) Label(c *Corpus) string {
	name, ok := c.BookName(cand.BookID)
	if !ok {
		panic(fmt.Sprintf("bible: completion candidate holds unknown book id %d", cand.BookID))
	}

	switch cand.Kind {
	case CandidateBook:
		return name
	case CandidateChapter:
		return name + " " + strconv.Itoa(cand.Chapter)
	case CandidateVerse:
		if cand.Operator == OpNone {
			return strconv.Itoa(cand.Verse)
		}

		return name + " " + cand.resolvedSegments().Label()
	}

	return name
}

// Preview renders the markdown documentation shown next to a candidate.
func (cand Candidate) Preview(c *Corpus) string {
	name, _ := c.BookName(cand.BookID)

	switch cand.Kind {
	case CandidateBook:
		return "### " + name

	case CandidateChapter:
		verseCount, ok := c.VerseCount(cand.BookID, cand.Chapter)
		if !ok {
			return "### " + name + " " + strconv.Itoa(cand.Chapter)
		}
		lines := make([]string, 0, verseCount)
		for verse := 1; verse <= verseCount; verse++ {
			if text, ok := c.VerseText(cand.BookID, cand.Chapter, verse); ok {
				lines = append(lines, fmt.Sprintf("[%d:%d] %s", cand.Chapter, verse, text))
			}
		}

		return fmt.Sprintf("### %s %d\n\n%s", name, cand.Chapter, strings.Join(lines, "\n"))

	case CandidateVerse:
		ref := Reference{BookID: cand.BookID, Segments: cand.resolvedSegments()}

		return ref.Hover(c)
	}

	return ""
}

// SortKey encodes a candidate's ordinal position so the generator's
// ordering survives clients that re-sort completion items
// alphabetically.
func SortKey(index int) string {
	return fmt.Sprintf("%05d", index)
}

package bible

import (
	"sort"
	"strings"
)

// Position is a 0-based line/character location in a document.
type Position struct {
	Line      uint32
	Character uint32
}

// Span is a half-open line/character range in a document.
type Span struct {
	Start Position
	End   Position
}

// Reference is one recognized Scripture reference: the book, the span of
// the full reference text in the source document, and the parsed
// segments. References are recomputed per request against the current
// document text, never cached across edits.
type Reference struct {
	BookID   int
	Span     Span
	Segments Segments
}

// FindReferences scans a document for Scripture references. A book-name
// mention only becomes a reference when valid segment characters follow
// immediately; `the gospel of John` on its own produces nothing. The
// text is treated as an immutable snapshot for the duration of the scan.
func FindReferences(c *Corpus, text string) []Reference {
	// Carriage returns are stripped up front so offsets count the same
	// on CRLF and LF documents.
	text = strings.ReplaceAll(text, "\r", "")
	newlines := newlineOffsets(text)

	matches := c.BookPattern().FindAllStringIndex(text, -1)

	refs := make([]Reference, 0, len(matches))
	for i, match := range matches {
		// The segment window runs from the end of this book name to the
		// start of the next one (or the end of the document).
		windowEnd := len(text)
		if i+1 < len(matches) {
			windowEnd = matches[i+1][0]
		}
		window := text[match[1]:windowEnd]

		loc := postBookSegmentRe.FindStringIndex(window)
		if loc == nil {
			// A plain-text mention of the name, not a reference.
			continue
		}

		name := text[match[0]:match[1]]
		bookID, ok := c.BookID(name)
		if !ok {
			// The pattern is built from the same table BookID reads, so
			// a miss here is a programming error.
			panic("bible: book pattern matched unknown name " + name)
		}

		refs = append(refs, Reference{
			BookID:   bookID,
			Span:     spanAt(newlines, match[0], match[1]+loc[1]),
			Segments: ParseSegments(window[:loc[1]]),
		})
	}

	return refs
}

// newlineOffsets returns the offsets of every newline in text, sorted.
func newlineOffsets(text string) []int {
	var offsets []int
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			offsets = append(offsets, i)
		}
	}

	return offsets
}

// spanAt converts flat start/end offsets into a line/character span.
// Binary search keeps this cheap on documents with many lines.
func spanAt(newlines []int, start, end int) Span {
	return Span{
		Start: positionAt(newlines, start),
		End:   positionAt(newlines, end),
	}
}

func positionAt(newlines []int, offset int) Position {
	// line = number of newlines strictly before offset.
	line := sort.SearchInts(newlines, offset)

	lineStart := 0
	if line > 0 {
		lineStart = newlines[line-1] + 1
	}

	return Position{
		Line:      uint32(line),
		Character: uint32(offset - lineStart),
	}
}

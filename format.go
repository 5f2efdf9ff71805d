package bible

import (
	"fmt"
	"strings"
)

// Label formats the full written form of a reference, e.g.
// `Ephesians 1:1-4,5-7; 2:2-3:4,6`.
func (r Reference) Label(c *Corpus) string {
	name, ok := c.BookName(r.BookID)
	if !ok {
		// References are only constructed from pattern matches, so an
		// unknown id here is a programming error.
		panic(fmt.Sprintf("bible: reference holds unknown book id %d", r.BookID))
	}

	return name + " " + r.Segments.Label()
}

// ContentBlock renders the verse text covered by the reference, one
// `[chapter:verse] text` line per verse, with a blank line between
// segments. Verses outside the corpus bounds are skipped silently.
func (r Reference) ContentBlock(c *Corpus) string {
	blocks := make([]string, 0, len(r.Segments))
	for _, seg := range r.Segments {
		var lines []string
		for chapter := seg.StartingChapter(); chapter <= seg.EndingChapter(); chapter++ {
			for verse := seg.StartingVerse(); verse <= seg.EndingVerse(); verse++ {
				if text, ok := c.VerseText(r.BookID, chapter, verse); ok {
					lines = append(lines, fmt.Sprintf("[%d:%d] %s", chapter, verse, text))
				}
			}
		}
		blocks = append(blocks, strings.Join(lines, "\n"))
	}

	return strings.Join(blocks, "\n\n")
}

// Hover renders the markdown shown when hovering the reference.
func (r Reference) Hover(c *Corpus) string {
	return "### " + r.Label(c) + "\n\n" + r.ContentBlock(c)
}

// InsertText renders the passage for the "insert below" code action. The
// leading newline makes the edit well-formed when appended to the last
// line of a document.
func (r Reference) InsertText(c *Corpus) string {
	return "\n" + r.ContentBlock(c)
}

// ReplaceText renders the passage as a one-line quotation for the
// "replace line" code action.
func (r Reference) ReplaceText(c *Corpus) string {
	content := r.ContentBlock(c)
	content = strings.ReplaceAll(content, "\n\n", "\n")
	content = strings.ReplaceAll(content, "\n", " ")

	return "> " + content + " - " + r.Label(c)
}

// DiagnosticText returns the text of the first verse of the reference,
// used as an inline diagnostic preview. It reports false when the first
// verse is out of the corpus bounds.
func (r Reference) DiagnosticText(c *Corpus) (string, bool) {
	if len(r.Segments) == 0 {
		return "", false
	}
	first := r.Segments[0]

	return c.VerseText(r.BookID, first.StartingChapter(), first.StartingVerse())
}

// Package bible implements recognition of Scripture references in plain
// text: a tolerant grammar for verse-reference segments, a scanner that
// finds positioned references in documents, and an autocompletion engine
// that infers what the user is typing from the text before the cursor.
package bible

import (
	"strconv"
	"strings"
)

// Segment is one parsed chapter/verse unit of a reference. It is either a
// ChapterVerse, a ChapterRange, or a BookRange; consumers dispatch with a
// type switch and every case must be handled.
type Segment interface {
	// StartingChapter is the chapter the segment begins in.
	StartingChapter() int
	// StartingVerse is the first verse covered by the segment.
	StartingVerse() int
	// EndingChapter is the chapter the segment ends in.
	EndingChapter() int
	// EndingVerse is the last verse covered by the segment.
	EndingVerse() int

	segment()
}

// ChapterVerse is a single verse, the `1:2` in `John 1:2`.
type ChapterVerse struct {
	Chapter int
	Verse   int
}

// ChapterRange is an inclusive verse range within one chapter, the `1:2-3`
// in `John 1:2-3`.
type ChapterRange struct {
	Chapter    int
	StartVerse int
	EndVerse   int
}

// BookRange is an inclusive range spanning chapters, the `1:2-3:4` in
// `John 1:2-3:4`.
type BookRange struct {
	StartChapter int
	StartVerse   int
	EndChapter   int
	EndVerse     int
}

func (s ChapterVerse) StartingChapter() int { return s.Chapter }
func (s ChapterVerse) StartingVerse() int   { return s.Verse }
func (s ChapterVerse) EndingChapter() int   { return s.Chapter }
func (s ChapterVerse) EndingVerse() int     { return s.Verse }
func (s ChapterVerse) segment()             {}

func (s ChapterRange) StartingChapter() int { return s.Chapter }
func (s ChapterRange) StartingVerse() int   { return s.StartVerse }
func (s ChapterRange) EndingChapter() int   { return s.Chapter }
func (s ChapterRange) EndingVerse() int     { return s.EndVerse }
func (s ChapterRange) segment()             {}

func (s BookRange) StartingChapter() int { return s.StartChapter }
func (s BookRange) StartingVerse() int   { return s.StartVerse }
func (s BookRange) EndingChapter() int   { return s.EndChapter }
func (s BookRange) EndingVerse() int     { return s.EndVerse }
func (s BookRange) segment()             {}

// Segments is an ordered sequence of reference segments, in textual order.
type Segments []Segment

// Label renders the segments back into their written form, e.g.
// `1:1-4,5-7; 2:2-3:4,6`. A segment that stays within the chapter the
// previous segment ended in drops the explicit chapter number, mirroring
// how these references are abbreviated by hand.
func (segs Segments) Label() string {
	var b strings.Builder

	prevChapter := 0
	for _, seg := range segs {
		if prevChapter != 0 {
			if seg.EndingChapter() == prevChapter {
				b.WriteString(",")
			} else {
				b.WriteString("; ")
			}
		}

		sameChapter := prevChapter == seg.StartingChapter()
		switch s := seg.(type) {
		case ChapterVerse:
			if sameChapter {
				b.WriteString(strconv.Itoa(s.Verse))
			} else {
				b.WriteString(strconv.Itoa(s.Chapter) + ":" + strconv.Itoa(s.Verse))
			}
		case ChapterRange:
			if sameChapter {
				b.WriteString(strconv.Itoa(s.StartVerse) + "-" + strconv.Itoa(s.EndVerse))
			} else {
				b.WriteString(strconv.Itoa(s.Chapter) + ":" + strconv.Itoa(s.StartVerse) + "-" + strconv.Itoa(s.EndVerse))
			}
		case BookRange:
			if sameChapter {
				b.WriteString(strconv.Itoa(s.StartVerse) + "-" + strconv.Itoa(s.EndChapter) + ":" + strconv.Itoa(s.EndVerse))
			} else {
				b.WriteString(strconv.Itoa(s.StartChapter) + ":" + strconv.Itoa(s.StartVerse) + "-" + strconv.Itoa(s.EndChapter) + ":" + strconv.Itoa(s.EndVerse))
			}
		}

		prevChapter = seg.EndingChapter()
	}

	return b.String()
}

// ParseSegments parses the reference-segment portion of a reference, the
// `1:1-4,5-7,2:2-3:4,6` in `Ephesians 1:1-4,5-7,2:2-3:4,6`.
//
// The caller must guarantee the input contains at least one complete
// `chapter:verse` pair; handing it arbitrary text is a bug in the caller
// and panics. The parser is deliberately tolerant of everything else:
// en dashes, stray prose punctuation, spaces, and a dangling separator at
// the end of partial input are all stripped before tokenizing.
func ParseSegments(input string) Segments {
	input = strings.ReplaceAll(input, "–", "-")
	input = nonSegmentRe.ReplaceAllString(input, "")
	input = trailingNonDigitsRe.ReplaceAllString(input, "")

	// `,` and `;` split identically: there is no uniform standard for
	// which one separates segments, so no meaning is assigned to either.
	tokens := splitterRe.Split(input, -1)

	// Tracks the chapter supplied by the most recent explicit chapter
	// number so bare-verse tokens (the `6` in `...3:4,6`) inherit it.
	chapter := 1

	segs := make(Segments, 0, len(tokens))
	for _, token := range tokens {
		left, right, isRange := strings.Cut(token, "-")
		if !isRange {
			if ch, v, ok := strings.Cut(token, ":"); ok {
				chapter = mustAtoi(ch)
				segs = append(segs, ChapterVerse{Chapter: chapter, Verse: mustAtoi(v)})
			} else {
				segs = append(segs, ChapterVerse{Chapter: chapter, Verse: mustAtoi(token)})
			}

			continue
		}

		ch1, v1, leftPair := strings.Cut(left, ":")
		ch2, v2, rightPair := strings.Cut(right, ":")

		switch {
		case leftPair && rightPair: // ch1:v1 - ch2:v2
			chapter = mustAtoi(ch2)
			segs = append(segs, BookRange{
				StartChapter: mustAtoi(ch1),
				StartVerse:   mustAtoi(v1),
				EndChapter:   chapter,
				EndVerse:     mustAtoi(v2),
			})
		case leftPair: // ch1:v1 - v2
			chapter = mustAtoi(ch1)
			segs = append(segs, ChapterRange{
				Chapter:    chapter,
				StartVerse: mustAtoi(v1),
				EndVerse:   mustAtoi(right),
			})
		case rightPair: // v1 - ch2:v2
			start := chapter
			chapter = mustAtoi(ch2)
			segs = append(segs, BookRange{
				StartChapter: start,
				StartVerse:   mustAtoi(left),
				EndChapter:   chapter,
				EndVerse:     mustAtoi(v2),
			})
		default: // v1 - v2
			segs = append(segs, ChapterRange{
				Chapter:    chapter,
				StartVerse: mustAtoi(left),
				EndVerse:   mustAtoi(right),
			})
		}
	}

	return segs
}

// mustAtoi converts a digit run that earlier stripping guarantees to be
// numeric. A failure here means a caller violated the parse contract, not
// bad user input.
func mustAtoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic("bible: non-digit token in reference segment: " + strconv.Quote(s))
	}

	return n
}

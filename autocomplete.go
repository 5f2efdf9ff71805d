package bible

import "strings"

// Operator classifies the trailing punctuation of partially typed
// reference text. It decides how the next number the user picks should
// be folded into the reference.
type Operator int

const (
	// OpNone: the input ends on a digit the user may still be extending.
	OpNone Operator = iota
	// OpChapterColon: a `:` confirmed the chapter, verse entry began.
	OpChapterColon
	// OpBreak: a `,` or `;` ended the previous segment.
	OpBreak
	// OpThrough: a `-` or en dash opened a range.
	OpThrough
)

// StateKind names the four completion states.
type StateKind string

const (
	// StateBooks: no book typed yet, suggest book names.
	StateBooks StateKind = "books"
	// StateChapters: a book is typed, the chapter number is not confirmed.
	StateChapters StateKind = "chapters"
	// StateVerses: a chapter was confirmed by a colon, suggest verses.
	StateVerses StateKind = "verses"
	// StateChaptersOrVerses: at least one complete segment is typed; both
	// later verses of the current chapter and later chapters apply.
	StateChaptersOrVerses StateKind = "chapters_or_verses"
)

// State is the inferred completion context at the cursor. It is computed
// fresh per completion request and never persisted.
//
// Chapter and Verse anchor the suggestions: for `Ephesians 1:2-` they are
// 1 and 2, telling us to suggest verses 3..23 and chapters 2..6.
type State struct {
	Kind     StateKind
	BookID   int
	Chapter  int
	Verse    int
	Segments Segments
	Operator Operator
}

// InferState determines the completion state from the text strictly
// before the cursor. The number the user is actively typing is left
// alone on purpose: the editor's own prefix filtering narrows
// suggestions against it, and second-guessing it here would exclude the
// right answer whenever the user is about to type another digit.
func InferState(c *Corpus, textBeforeCursor string) State {
	matches := c.BookPattern().FindAllStringIndex(textBeforeCursor, -1)
	if len(matches) == 0 {
		return State{Kind: StateBooks}
	}
	last := matches[len(matches)-1]

	bookID, ok := c.BookID(textBeforeCursor[last[0]:last[1]])
	if !ok {
		return State{Kind: StateBooks}
	}

	// An empty tail or a single space after the book: the book name is
	// done and the chapter is about to be typed.
	tail := textBeforeCursor[last[1]:]
	if tail == "" || tail == " " {
		return State{Kind: StateChapters, BookID: bookID}
	}

	run := segmentRunRe.FindString(tail)
	if run == "" {
		return State{Kind: StateChapters, BookID: bookID}
	}

	// A lone chapter number, confirmed by a colon or not. The parser must
	// not see these: a partial segment like `1` or `1:` would parse into
	// a bogus 1:1.
	if groups := incompleteStartRe.FindStringSubmatch(tail); groups != nil {
		if groups[2] == ":" {
			return State{Kind: StateVerses, BookID: bookID, Chapter: mustAtoi(groups[1])}
		}

		// No colon means the chapter digits may still be growing; keep
		// suggesting chapters rather than committing to one.
		return State{Kind: StateChapters, BookID: bookID}
	}

	// The run is more than an incomplete start but may still lack a
	// complete chapter:verse (e.g. `5, 6` after a book mention in prose).
	// Without one the parser contract is unmet, so fall back to chapters.
	if !completePairRe.MatchString(run) {
		return State{Kind: StateChapters, BookID: bookID}
	}

	segments := ParseSegments(run)

	var op Operator
	trimmed := strings.TrimSpace(run)
	switch rune(trimmed[len(trimmed)-1]) {
	case ':':
		op = OpChapterColon
	case ',', ';':
		op = OpBreak
	case '-':
		op = OpThrough
	default:
		op = OpNone
	}
	if strings.HasSuffix(trimmed, "–") {
		op = OpThrough
	}

	chapter, verse := lastChapterAndVerse(run, segments)

	return State{
		Kind:     StateChaptersOrVerses,
		BookID:   bookID,
		Chapter:  chapter,
		Verse:    verse,
		Segments: segments,
		Operator: op,
	}
}

// lastChapterAndVerse extracts the anchoring chapter and verse from the
// textually last chapter-bearing and verse-bearing matches in the run.
// Two independent patterns are used instead of the parsed structure: the
// anchors must agree with the *textually* last occurrence, which can
// diverge from the parser's structural last segment in adversarial
// input. That divergence is an accepted limitation, kept as is.
func lastChapterAndVerse(run string, segments Segments) (int, int) {
	chapterMatches := lastChapterRe.FindAllStringSubmatchIndex(run, -1)
	verseMatches := lastVerseRe.FindAllStringSubmatchIndex(run, -1)
	if len(chapterMatches) == 0 {
		// A complete chapter:verse was verified before calling; its
		// chapter matches the pattern.
		panic("bible: no chapter in verified segment run " + run)
	}

	chapterMatch := chapterMatches[len(chapterMatches)-1]
	chapter := mustAtoi(run[chapterMatch[2]:chapterMatch[3]])

	// A trailing bare number matches both patterns at the same offset; it
	// is the chapter anchor, not a verse. A verse match starting before
	// the chapter match is stale. Either way the parsed segments supply
	// the verse anchor instead.
	verse := 0
	trusted := false
	if len(verseMatches) > 0 {
		verseMatch := verseMatches[len(verseMatches)-1]
		if verseMatch[2] > chapterMatch[2] {
			verse = mustAtoi(run[verseMatch[2]:verseMatch[3]])
			trusted = true
		}
	}
	if !trusted && len(segments) > 0 {
		verse = segments[len(segments)-1].EndingVerse()
	}

	return chapter, verse
}

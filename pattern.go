package bible

import "regexp"

// The segment grammar is recognized with a small fixed set of patterns.
// `–` is the en dash, which shows up when editors auto-substitute the
// typed hyphen; it is accepted everywhere a hyphen is.
var (
	// nonSegmentRe matches every character that can never be part of a
	// reference segment. Stripping these first is what makes the parser
	// tolerant of book-name remnants and surrounding prose punctuation.
	nonSegmentRe = regexp.MustCompile(`[^\d,:;-]+`)

	// trailingNonDigitsRe matches a dangling separator at the end of
	// partial input, e.g. the `-` in `1:2-`.
	trailingNonDigitsRe = regexp.MustCompile(`\D+$`)

	// splitterRe separates range tokens. `,` and `;` are equivalent.
	splitterRe = regexp.MustCompile(`[,;]`)

	// postBookSegmentRe matches reference-segment characters anchored
	// right after a book name. It requires a complete chapter:verse at
	// the start and must end on a digit, so the grammatical comma in
	// `Ephesians 4:28, and it changed...` is not absorbed while the
	// reference comma in `Ephesians 4:28,30` is.
	postBookSegmentRe = regexp.MustCompile(`^ *\d+:\d+( *[,:;–-] *\d+)*`)

	// segmentRunRe matches the longest run of segment characters at the
	// start of the text following a book name. The optional leading
	// period belongs to an abbreviated book name (`eph.`) rather than to
	// the segments, but is tolerated here and stripped during parsing.
	segmentRunRe = regexp.MustCompile(`^\.?[ \d,:;–-]+`)

	// incompleteStartRe matches input that is not yet a complete segment:
	// a chapter number still being typed, optionally confirmed by a colon.
	incompleteStartRe = regexp.MustCompile(`^ *(\d+)(:)? *$`)

	// lastChapterRe: a number is certainly a chapter when a colon (or the
	// end of input) follows it.
	lastChapterRe = regexp.MustCompile(`(\d+)(:|$)`)

	// lastVerseRe: a number is certainly a verse when anything but a
	// colon follows it.
	lastVerseRe = regexp.MustCompile(`(\d+)([^:]|$)`)

	// completePairRe checks the parser precondition: at least one
	// syntactically complete chapter:verse occurrence.
	completePairRe = regexp.MustCompile(`\d+:\d+`)
)

package bible

import "errors"

// Sentinel errors.
var (
	// ErrConfigNotFound is returned when no .bible-lsp.yaml is found.
	ErrConfigNotFound = errors.New("bible: no .bible-lsp.yaml found")

	// ErrInvalidCorpus is returned when the source dataset is internally
	// inconsistent and no usable Corpus can be built from it.
	ErrInvalidCorpus = errors.New("bible: inconsistent corpus data")
)

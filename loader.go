package bible

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// SourceTranslation mirrors the translation metadata of the dataset file.
type SourceTranslation struct {
	Name         string `json:"name"`
	Language     string `json:"language"`
	Abbreviation string `json:"abbreviation"`
}

// SourceBook mirrors one book of the dataset file. Content is indexed
// chapter-first, then verse, both 0-based in the file and 1-based
// everywhere else.
type SourceBook struct {
	// ID is the 1-based canonical book id, Genesis = 1.
	ID int `json:"id"`
	// Name is the display name of the book.
	Name string `json:"book"`
	// Abbreviations are the accepted short forms, any case, not
	// necessarily including the name itself.
	Abbreviations []string   `json:"abbreviations"`
	Content       [][]string `json:"content"`
}

// SourceBible is the on-disk dataset layout.
type SourceBible struct {
	Translation SourceTranslation `json:"translation"`
	Books       []SourceBook      `json:"bible"`
}

// LoadCorpus reads a translation dataset from a JSON file and builds the
// Corpus. Any failure here is fatal to the server: it cannot answer
// anything without a consistent corpus.
func LoadCorpus(path string) (*Corpus, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("reading translation dataset: %w", err)
	}

	var src SourceBible
	if err := json.Unmarshal(data, &src); err != nil {
		return nil, fmt.Errorf("parsing translation dataset %s: %w", path, err)
	}

	return NewCorpus(&src)
}

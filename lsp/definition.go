package lsp

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.lsp.dev/protocol"
	"go.lsp.dev/uri"
	"go.uber.org/zap"

	bible "github.com/MasterTemple/bible-lsp"
)

// Definition handles textDocument/definition requests. "Definition" of a
// reference is the whole book it points into: the book is rendered to a
// markdown file under the OS temp directory and the location points at
// the line of the reference's first verse, so the editor opens the book
// scrolled to the right place.
func (s *Server) Definition(_ context.Context, params *protocol.DefinitionParams) (result []protocol.Location, err error) {
	defer s.traceHandler("textDocument/definition")()
	defer s.recoverHandler("textDocument/definition", &err)

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	ref, ok := referenceAt(s.corpus, doc.Content, params.Position)
	if !ok || len(ref.Segments) == 0 {
		return nil, nil
	}

	bookName, ok := s.corpus.BookName(ref.BookID)
	if !ok {
		return nil, nil
	}
	chapterCount, _ := s.corpus.ChapterCount(ref.BookID)
	lastVerseCount, _ := s.corpus.VerseCount(ref.BookID, chapterCount)

	wholeBook := bible.Reference{
		BookID: ref.BookID,
		Segments: bible.Segments{bible.BookRange{
			StartChapter: 1,
			StartVerse:   1,
			EndChapter:   chapterCount,
			EndVerse:     lastVerseCount,
		}},
	}
	contents := "### " + bookName + "\n\n" + wholeBook.ContentBlock(s.corpus)

	// Locate the first verse of the reference inside the rendered book.
	first := ref.Segments[0]
	marker := fmt.Sprintf("[%d:%d]", first.StartingChapter(), first.StartingVerse())
	offset := strings.Index(contents, marker)
	if offset < 0 {
		return nil, nil
	}
	line := uint32(strings.Count(contents[:offset], "\n"))

	path := filepath.Join(os.TempDir(), bookName+".md")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		s.logger.Error("Failed to write book file", zap.String("path", path), zap.Error(err))

		return nil, nil
	}

	return []protocol.Location{{
		URI: uri.File(path),
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: 0},
			End:   protocol.Position{Line: line, Character: 0},
		},
	}}, nil
}

// referenceAt returns the reference whose span contains the cursor on
// its line.
func referenceAt(c *bible.Corpus, content string, pos protocol.Position) (bible.Reference, bool) {
	for _, ref := range referencesOnLine(c, content, pos.Line) {
		if ref.Span.Start.Character <= pos.Character && pos.Character <= ref.Span.End.Character {
			return ref, true
		}
	}

	return bible.Reference{}, false
}

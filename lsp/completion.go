package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	bible "github.com/MasterTemple/bible-lsp"
)

// Completion handles textDocument/completion requests. The completion
// state is inferred from the text before the cursor on the current line
// only; references never span lines.
func (s *Server) Completion(_ context.Context, params *protocol.CompletionParams) (result *protocol.CompletionList, err error) {
	defer s.traceHandler("textDocument/completion")()
	defer s.recoverHandler("textDocument/completion", &err)

	s.logger.Debug("Completion",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	before := textBeforeCursor(doc.Content, params.Position)
	state := bible.InferState(s.corpus, before)
	candidates := state.Candidates(s.corpus)

	// The edit range runs from the start of the book name to the cursor,
	// so accepting a suggestion rewrites the whole reference typed so far.
	var editRange *protocol.Range
	if matches := s.corpus.BookPattern().FindAllStringIndex(before, -1); len(matches) > 0 {
		last := matches[len(matches)-1]
		editRange = &protocol.Range{
			Start: protocol.Position{Line: params.Position.Line, Character: uint32(last[0])},
			End:   params.Position,
		}
	}

	items := make([]protocol.CompletionItem, 0, len(candidates))
	for i, cand := range candidates {
		label := cand.Label(s.corpus)

		item := protocol.CompletionItem{
			Label: label,
			Kind:  protocol.CompletionItemKindReference,
			Documentation: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: cand.Preview(s.corpus),
			},
			SortText: bible.SortKey(i),
		}

		// Bare-number suggestions extend the digits under the cursor;
		// rewriting the reference around them would fight the client's
		// own prefix filtering.
		if editRange != nil && !(cand.Kind == bible.CandidateVerse && cand.Operator == bible.OpNone) {
			item.TextEdit = &protocol.TextEdit{Range: *editRange, NewText: label}
		}

		items = append(items, item)
	}

	return &protocol.CompletionList{IsIncomplete: false, Items: items}, nil
}

package lsp

import (
	"context"

	"go.lsp.dev/protocol"

	bible "github.com/MasterTemple/bible-lsp"
)

// DocumentSymbol handles textDocument/documentSymbol requests, listing
// every reference in the document as a flat symbol so outline views and
// fuzzy symbol pickers can jump between passages.
func (s *Server) DocumentSymbol(_ context.Context, params *protocol.DocumentSymbolParams) (result []interface{}, err error) {
	defer s.traceHandler("textDocument/documentSymbol")()
	defer s.recoverHandler("textDocument/documentSymbol", &err)

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	refs := bible.FindReferences(s.corpus, doc.Content)

	symbols := make([]interface{}, 0, len(refs))
	for _, ref := range refs {
		symbols = append(symbols, protocol.SymbolInformation{
			Name: ref.Label(s.corpus),
			Kind: protocol.SymbolKindKey,
			Location: protocol.Location{
				URI:   params.TextDocument.URI,
				Range: spanToRange(ref.Span),
			},
		})
	}

	return symbols, nil
}

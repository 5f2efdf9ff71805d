package lsp

import (
	"context"
	"math"

	"go.lsp.dev/protocol"
)

// CodeAction handles textDocument/codeAction requests. Every reference
// on the cursor's line offers two rewrites: inserting the passage text
// below the line, and replacing the whole line with the passage as a
// one-line quotation.
func (s *Server) CodeAction(_ context.Context, params *protocol.CodeActionParams) (result []protocol.CodeAction, err error) {
	defer s.traceHandler("textDocument/codeAction")()
	defer s.recoverHandler("textDocument/codeAction", &err)

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	line := params.Range.Start.Line
	refs := referencesOnLine(s.corpus, doc.Content, line)

	actions := make([]protocol.CodeAction, 0, 2*len(refs))
	for _, ref := range refs {
		label := ref.Label(s.corpus)

		// End-of-line positions use the largest character offset; the
		// client clamps it to the actual line length.
		endOfLine := protocol.Position{Line: line, Character: math.MaxUint32}

		actions = append(actions, protocol.CodeAction{
			Title: "Insert " + label,
			Kind:  protocol.RefactorRewrite,
			Edit: s.lineEdit(params.TextDocument.URI, protocol.Range{
				Start: endOfLine,
				End:   endOfLine,
			}, ref.InsertText(s.corpus)),
		})

		actions = append(actions, protocol.CodeAction{
			Title: "Replace " + label,
			Kind:  protocol.RefactorRewrite,
			Edit: s.lineEdit(params.TextDocument.URI, protocol.Range{
				Start: protocol.Position{Line: line, Character: 0},
				End:   endOfLine,
			}, ref.ReplaceText(s.corpus)),
		})
	}

	return actions, nil
}

// lineEdit builds a workspace edit applying one text edit to the
// document.
func (s *Server) lineEdit(docURI protocol.DocumentURI, rng protocol.Range, newText string) *protocol.WorkspaceEdit {
	return &protocol.WorkspaceEdit{
		DocumentChanges: []protocol.TextDocumentEdit{{
			TextDocument: protocol.OptionalVersionedTextDocumentIdentifier{
				TextDocumentIdentifier: protocol.TextDocumentIdentifier{URI: docURI},
			},
			Edits: []protocol.TextEdit{{Range: rng, NewText: newText}},
		}},
	}
}

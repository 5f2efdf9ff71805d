package lsp

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	bible "github.com/MasterTemple/bible-lsp"
)

// Hover handles textDocument/hover requests. A single reference on the
// cursor's line hovers with its exact range; several references hover as
// one joined markdown document without a range.
func (s *Server) Hover(_ context.Context, params *protocol.HoverParams) (result *protocol.Hover, err error) {
	defer s.traceHandler("textDocument/hover")()
	defer s.recoverHandler("textDocument/hover", &err)

	s.logger.Debug("Hover",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	refs := referencesOnLine(s.corpus, doc.Content, params.Position.Line)
	if len(refs) == 0 {
		return nil, nil //nolint:nilnil
	}

	if len(refs) == 1 {
		rng := spanToRange(refs[0].Span)

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.Markdown,
				Value: refs[0].Hover(s.corpus),
			},
			Range: &rng,
		}, nil
	}

	sections := make([]string, 0, len(refs))
	for _, ref := range refs {
		sections = append(sections, ref.Hover(s.corpus))
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: strings.Join(sections, "\n\n---\n"),
		},
	}, nil
}

// referencesOnLine scans the document and keeps the references starting
// on the given line.
func referencesOnLine(c *bible.Corpus, content string, line uint32) []bible.Reference {
	var out []bible.Reference
	for _, ref := range bible.FindReferences(c, content) {
		if ref.Span.Start.Line == line {
			out = append(out, ref)
		}
	}

	return out
}

package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	bible "github.com/MasterTemple/bible-lsp"
)

// diagnosticSource labels our diagnostics in the editor UI.
const diagnosticSource = "bible-lsp"

// publishDiagnostics scans the document and publishes one informational
// diagnostic per reference, carrying its first verse as the message.
// References whose first verse is out of the corpus bounds are skipped;
// an invalid reference is ordinary prose, not an error to report.
//
// Called without the document lock held: PublishDiagnostics is an RPC
// and the client may issue requests while it is in flight.
func (s *Server) publishDiagnostics(ctx context.Context, doc *Document) {
	refs := bible.FindReferences(s.corpus, doc.Content)

	diagnostics := make([]protocol.Diagnostic, 0, len(refs))
	for _, ref := range refs {
		message, ok := ref.DiagnosticText(s.corpus)
		if !ok {
			continue
		}

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanToRange(ref.Span),
			Severity: protocol.DiagnosticSeverityInformation,
			Source:   diagnosticSource,
			Message:  message,
		})
	}

	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         doc.URI,
		Version:     uint32(doc.Version), //nolint:gosec // LSP version numbers are always non-negative
		Diagnostics: diagnostics,
	})
	if err != nil {
		s.logger.Error("Failed to publish diagnostics",
			zap.String("uri", string(doc.URI)), zap.Error(err))
	}
}

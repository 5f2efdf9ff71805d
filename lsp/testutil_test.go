package lsp_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	bible "github.com/MasterTemple/bible-lsp"
	"github.com/MasterTemple/bible-lsp/lsp"
)

// mockClient records the notifications the server sends. The embedded
// interface covers the client methods no test exercises.
type mockClient struct {
	protocol.Client

	mu        sync.Mutex
	published map[protocol.DocumentURI][]protocol.Diagnostic
}

func (m *mockClient) PublishDiagnostics(_ context.Context, params *protocol.PublishDiagnosticsParams) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.published == nil {
		m.published = make(map[protocol.DocumentURI][]protocol.Diagnostic)
	}
	m.published[params.URI] = params.Diagnostics

	return nil
}

func (m *mockClient) LogMessage(_ context.Context, _ *protocol.LogMessageParams) error {
	return nil
}

// Diagnostics returns the last published diagnostics for a document.
func (m *mockClient) Diagnostics(uri protocol.DocumentURI) []protocol.Diagnostic {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.published[uri]
}

func testCorpus(t *testing.T) *bible.Corpus {
	t.Helper()

	makeBook := func(id int, name string, abbrevs []string, verseCounts []int) bible.SourceBook {
		content := make([][]string, len(verseCounts))
		for c, n := range verseCounts {
			verses := make([]string, n)
			for v := range verses {
				verses[v] = fmt.Sprintf("%s %d:%d text", name, c+1, v+1)
			}
			content[c] = verses
		}

		return bible.SourceBook{ID: id, Name: name, Abbreviations: abbrevs, Content: content}
	}

	c, err := bible.NewCorpus(&bible.SourceBible{
		Translation: bible.SourceTranslation{Name: "Test Standard Version", Abbreviation: "TSV"},
		Books: []bible.SourceBook{
			makeBook(1, "Genesis", []string{"gen"}, []int{31, 25}),
			makeBook(2, "Ephesians", []string{"eph"}, []int{23, 22, 21, 32, 33, 24}),
		},
	})
	require.NoError(t, err)

	return c
}

func newTestServer(t *testing.T) (*lsp.Server, *mockClient) {
	t.Helper()

	client := &mockClient{}
	server := lsp.NewServer(client, zap.NewNop(), testCorpus(t))

	return server, client
}

// openDoc opens a document on the server with the given content.
func openDoc(t *testing.T, server *lsp.Server, uri protocol.DocumentURI, text string) {
	t.Helper()

	err := server.DidOpen(context.Background(), &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:     uri,
			Version: 1,
			Text:    text,
		},
	})
	require.NoError(t, err)
}

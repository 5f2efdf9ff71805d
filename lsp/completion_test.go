package lsp_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.lsp.dev/protocol"

	"github.com/MasterTemple/bible-lsp/lsp"
)

func completionAt(t *testing.T, server *lsp.Server, uri protocol.DocumentURI, line, character uint32) *protocol.CompletionList {
	t.Helper()

	result, err := server.Completion(context.Background(), &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: uri},
			Position:     protocol.Position{Line: line, Character: character},
		},
	})
	require.NoError(t, err)

	return result
}

func TestCompletionAfterRangeDash(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	uri := protocol.DocumentURI("file:///notes.md")
	openDoc(t, server, uri, "Ephesians 1:2-")

	result := completionAt(t, server, uri, 0, 14)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Items)

	first := result.Items[0]
	assert.Equal(t, "Ephesians 1:2-3", first.Label)
	assert.Equal(t, protocol.CompletionItemKindReference, first.Kind)
	assert.Equal(t, "00000", first.SortText)

	require.NotNil(t, first.TextEdit)
	assert.Equal(t, "Ephesians 1:2-3", first.TextEdit.NewText)
	assert.Equal(t, uint32(0), first.TextEdit.Range.Start.Character)
	assert.Equal(t, uint32(14), first.TextEdit.Range.End.Character)

	doc, ok := first.Documentation.(protocol.MarkupContent)
	require.True(t, ok)
	assert.Equal(t, protocol.Markdown, doc.Kind)
	assert.Contains(t, doc.Value, "### Ephesians 1:2-3")
	assert.Contains(t, doc.Value, "[1:2] Ephesians 1:2 text")
}

func TestCompletionMidNumberOffersBareVerses(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	uri := protocol.DocumentURI("file:///notes.md")
	openDoc(t, server, uri, "Ephesians 1:2")

	result := completionAt(t, server, uri, 0, 13)
	require.NotNil(t, result)
	require.NotEmpty(t, result.Items)

	first := result.Items[0]
	assert.Equal(t, "3", first.Label)
	assert.Nil(t, first.TextEdit)
}

func TestCompletionBooksOnEmptyPrefix(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	uri := protocol.DocumentURI("file:///notes.md")
	openDoc(t, server, uri, "I was reading ")

	result := completionAt(t, server, uri, 0, 14)
	require.NotNil(t, result)
	require.Len(t, result.Items, 2)
	assert.Equal(t, "Genesis", result.Items[0].Label)
	assert.Equal(t, "Ephesians", result.Items[1].Label)

	// No book on the line, so there is no reference to rewrite.
	assert.Nil(t, result.Items[0].TextEdit)
}

func TestCompletionOnlyConsidersCursorLine(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	uri := protocol.DocumentURI("file:///notes.md")
	openDoc(t, server, uri, "Genesis 1:1\nEphesians ")

	result := completionAt(t, server, uri, 1, 10)
	require.NotNil(t, result)
	require.Len(t, result.Items, 6)
	assert.Equal(t, "Ephesians 1", result.Items[0].Label)
	require.NotNil(t, result.Items[0].TextEdit)
	assert.Equal(t, uint32(1), result.Items[0].TextEdit.Range.Start.Line)
}

func TestCompletionUnknownDocument(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)

	result := completionAt(t, server, "file:///nope.md", 0, 0)
	assert.Nil(t, result)
}

func TestCompletionCursorPastLineEnd(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	uri := protocol.DocumentURI("file:///notes.md")
	openDoc(t, server, uri, "Ephesians 1:")

	// Some clients report a cursor one past the end of the line.
	result := completionAt(t, server, uri, 0, 40)
	require.NotNil(t, result)
	require.Len(t, result.Items, 23)
	assert.Equal(t, "Ephesians 1:1", result.Items[0].Label)
}

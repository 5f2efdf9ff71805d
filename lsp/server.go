// Package lsp implements a Language Server Protocol server for Scripture
// references in plain-text and markdown documents.
package lsp

import (
	"context"
	"sync"
	"time"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	bible "github.com/MasterTemple/bible-lsp"
)

// Server implements the LSP Server interface over a loaded corpus.
//
// The embedded interface answers the requests this server does not
// handle; the initialize response only advertises the ones it does.
type Server struct {
	protocol.Server

	client protocol.Client
	logger *zap.Logger
	corpus *bible.Corpus

	// Document state
	mu        sync.RWMutex
	documents map[protocol.DocumentURI]*Document

	// Server state
	initialized bool
	shutdown    bool
}

// Document is an open document. Only the text is kept; references are
// recomputed from it per request, so no derived state can go stale.
type Document struct {
	URI     protocol.DocumentURI
	Version int32
	Content string
}

// NewServer creates a new LSP server answering from the given corpus.
func NewServer(client protocol.Client, logger *zap.Logger, corpus *bible.Corpus) *Server {
	return &Server{
		client:    client,
		logger:    logger,
		corpus:    corpus,
		documents: make(map[protocol.DocumentURI]*Document),
	}
}

// Initialize handles the initialize request.
func (s *Server) Initialize(_ context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s.logger.Info("Initialize",
		zap.String("translation", s.corpus.Translation().Name),
		zap.Any("clientInfo", params.ClientInfo))

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			// Full document sync - client sends entire content on change
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			// Hover shows the verse text of references
			HoverProvider: true,
			// Go to definition opens the whole book
			DefinitionProvider: true,
			// Completion continues partially typed references
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: []string{",", ";", "-", ":", " "},
				ResolveProvider:   false,
			},
			// Code actions insert or inline the referenced passage
			CodeActionProvider: true,
			// Document symbols list the references for the outline view
			DocumentSymbolProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "bible-lsp",
			Version: "0.1.0",
		},
	}, nil
}

// Initialized handles the initialized notification.
func (s *Server) Initialized(_ context.Context, _ *protocol.InitializedParams) error {
	s.logger.Info("Initialized")
	s.initialized = true

	return nil
}

// Shutdown handles the shutdown request.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info("Shutdown")
	s.shutdown = true

	return nil
}

// Exit handles the exit notification.
func (s *Server) Exit(_ context.Context) error {
	s.logger.Info("Exit")
	// The main loop handles exiting after this
	return nil
}

// DidOpen handles textDocument/didOpen notifications.
func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.logger.Info("DidOpen", zap.String("uri", string(params.TextDocument.URI)))

	doc := &Document{
		URI:     params.TextDocument.URI,
		Version: params.TextDocument.Version,
		Content: params.TextDocument.Text,
	}

	// Hold lock only for document map update
	s.mu.Lock()
	s.documents[params.TextDocument.URI] = doc
	s.mu.Unlock()

	// Publish diagnostics outside the lock to prevent deadlock
	s.publishDiagnostics(ctx, doc)

	return nil
}

// DidChange handles textDocument/didChange notifications.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	start := time.Now()
	s.logger.Debug("DidChange",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Int32("version", params.TextDocument.Version))

	// Hold the lock only for document state updates, not for RPC calls.
	// The client may send requests while we are publishing diagnostics.
	var docForDiagnostics *Document

	s.mu.Lock()
	doc, ok := s.documents[params.TextDocument.URI]
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("DidChange for unknown document", zap.String("uri", string(params.TextDocument.URI)))

		return nil
	}

	// Full sync - take the last content change (should only be one)
	if len(params.ContentChanges) > 0 {
		doc.Content = params.ContentChanges[len(params.ContentChanges)-1].Text
		doc.Version = params.TextDocument.Version
		docForDiagnostics = doc
	}
	s.mu.Unlock()

	if docForDiagnostics != nil {
		s.publishDiagnostics(ctx, docForDiagnostics)
	}

	s.logger.Debug("DidChange done", zap.Duration("elapsed", time.Since(start)))

	return nil
}

// DidClose handles textDocument/didClose notifications.
func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.logger.Info("DidClose", zap.String("uri", string(params.TextDocument.URI)))

	// Hold lock only for document map update
	s.mu.Lock()
	delete(s.documents, params.TextDocument.URI)
	s.mu.Unlock()

	// Clear diagnostics outside the lock to prevent deadlock
	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	if err != nil {
		s.logger.Error("Failed to clear diagnostics", zap.Error(err))
	}

	return nil
}

// DidSave handles textDocument/didSave notifications.
func (s *Server) DidSave(_ context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.logger.Debug("DidSave", zap.String("uri", string(params.TextDocument.URI)))

	return nil
}

// getDocument returns a document by URI (read-locked).
func (s *Server) getDocument(uri protocol.DocumentURI) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[uri]

	return doc, ok
}

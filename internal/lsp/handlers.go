package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Handler assembles the protocol handler table backed by this Features
// instance.
func (f *Features) Handler() protocol.Handler {
	return protocol.Handler{
		Initialize:    f.Initialize,
		Initialized:   f.Initialized,
		Shutdown:      f.Shutdown,
		SetTrace:      f.SetTrace,
		CancelRequest: f.CancelRequest,

		TextDocumentDidOpen:   f.DidOpen,
		TextDocumentDidChange: f.DidChange,
		TextDocumentDidClose:  f.DidClose,
		TextDocumentDidSave:   f.DidSave,

		TextDocumentReferences:   f.TextDocumentReferences,
		TextDocumentFoldingRange: f.TextDocumentFoldingRange,

		WorkspaceDidChangeConfiguration:    f.DidChangeConfiguration,
		WorkspaceDidChangeWorkspaceFolders: f.DidChangeWorkspaceFolders,
		WorkspaceDidChangeWatchedFiles:     f.DidChangeWatchedFiles,
	}
}

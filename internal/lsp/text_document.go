package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.lsp.dev/uri"

	"github.com/go-robot-tools/go-robot-lsp/internal/document"
)

// DidOpen handles the textDocument/didOpen notification.
func (f *Features) DidOpen(glspCtx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	path, ok := documentPath(params.TextDocument.URI)
	if !ok {
		f.log.Warningf("ignoring non-file document: %s", params.TextDocument.URI)
		return nil
	}

	f.store.Set(&document.Document{
		URI:        uri.URI(params.TextDocument.URI),
		Path:       path,
		Text:       params.TextDocument.Text,
		Version:    int(params.TextDocument.Version),
		LanguageID: params.TextDocument.LanguageID,
	})
	f.index.Invalidate(path)

	return nil
}

// DidChange handles the textDocument/didChange notification. Changes
// apply in order and may mix incremental and whole-document events.
func (f *Features) DidChange(glspCtx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	path, ok := documentPath(params.TextDocument.URI)
	if !ok {
		return nil
	}

	doc, ok := f.store.Get(uri.URI(params.TextDocument.URI))
	if !ok {
		f.log.Warningf("change for unopened document: %s", params.TextDocument.URI)
		return nil
	}

	text, err := document.ApplyChanges(doc.Text, params.ContentChanges)
	if err != nil {
		f.log.Errorf("applying changes to %s: %s", path, err.Error())
		return nil
	}

	f.store.Set(&document.Document{
		URI:        doc.URI,
		Path:       doc.Path,
		Text:       text,
		Version:    int(params.TextDocument.Version),
		LanguageID: doc.LanguageID,
	})
	f.index.Invalidate(path)

	return nil
}

// DidClose handles the textDocument/didClose notification. The model is
// invalidated so later reads come from disk instead of the closed buffer.
func (f *Features) DidClose(glspCtx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	f.store.Delete(uri.URI(params.TextDocument.URI))
	if path, ok := documentPath(params.TextDocument.URI); ok {
		f.index.Invalidate(path)
	}

	return nil
}

// DidSave handles the textDocument/didSave notification. The open buffer
// already carries the saved text, so there is nothing to refresh.
func (f *Features) DidSave(glspCtx *glsp.Context, params *protocol.DidSaveTextDocumentParams) error {
	return nil
}

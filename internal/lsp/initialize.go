package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/go-robot-tools/go-robot-lsp/internal/workspace"
)

const (
	// ServerName is reported to the client in the initialize result.
	ServerName = "go-robot-lsp"

	// ServerVersion is reported next to ServerName.
	ServerVersion = "0.1.0"
)

// Initialize handles the initialize request. It records the workspace
// folders and advertises a capability only when a collector is registered
// for it.
func (f *Features) Initialize(glspCtx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	for _, folder := range params.WorkspaceFolders {
		if err := f.folders.Add(folder.Name, folder.URI); err != nil {
			f.log.Warningf("ignoring workspace folder: %s", err.Error())
		}
	}
	if f.folders.Len() == 0 && params.RootURI != nil {
		if err := f.folders.Add("", *params.RootURI); err != nil {
			f.log.Warningf("ignoring root URI: %s", err.Error())
		}
	}

	if params.InitializationOptions != nil {
		cfg, err := workspace.ParseSettings(params.InitializationOptions)
		if err != nil {
			f.log.Warningf("ignoring initialization options: %s", err.Error())
		} else {
			f.setConfig(cfg)
		}
	}

	changeKind := protocol.TextDocumentSyncKindIncremental
	trueVal := true
	falseVal := false

	capabilities := protocol.ServerCapabilities{
		TextDocumentSync: protocol.TextDocumentSyncOptions{
			OpenClose: &trueVal,
			Change:    &changeKind,
			Save: &protocol.SaveOptions{
				IncludeText: &falseVal,
			},
		},
	}
	if f.references.HasListeners() {
		capabilities.ReferencesProvider = &trueVal
	}
	if f.folding.HasListeners() {
		capabilities.FoldingRangeProvider = &trueVal
	}

	version := ServerVersion
	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    ServerName,
			Version: &version,
		},
	}, nil
}

// Initialized handles the initialized notification from the client.
func (f *Features) Initialized(glspCtx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

// Shutdown handles the shutdown request, stopping in-flight analysis and
// the dispatch pool before the client closes the connection.
func (f *Features) Shutdown(glspCtx *glsp.Context) error {
	f.Close()
	return nil
}

// SetTrace handles the $/setTrace notification.
func (f *Features) SetTrace(glspCtx *glsp.Context, params *protocol.SetTraceParams) error {
	return nil
}

// CancelRequest acknowledges a $/cancelRequest notification. In-flight
// work is canceled by supersession, not by protocol id; the id is only
// logged.
func (f *Features) CancelRequest(glspCtx *glsp.Context, params *protocol.CancelParams) error {
	f.log.Debugf("cancel requested for %v", params.ID)
	return nil
}

package lsp

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/go-robot-tools/go-robot-lsp/internal/workspace"
)

// DidChangeConfiguration handles workspace configuration changes. The
// server's settings live under the "robotLsp" section:
//
//	{
//	  "robotLsp": {
//	    "excludePatterns": ["**/output/**"],
//	    "workers": 8
//	  }
//	}
func (f *Features) DidChangeConfiguration(glspCtx *glsp.Context, params *protocol.DidChangeConfigurationParams) error {
	cfg, err := workspace.ParseSettings(params.Settings)
	if err != nil {
		f.log.Warningf("ignoring configuration change: %s", err.Error())
		return nil
	}
	f.setConfig(cfg)

	return nil
}

// DidChangeWorkspaceFolders handles workspace folders being added or
// removed.
func (f *Features) DidChangeWorkspaceFolders(glspCtx *glsp.Context, params *protocol.DidChangeWorkspaceFoldersParams) error {
	for _, folder := range params.Event.Added {
		if err := f.folders.Add(folder.Name, folder.URI); err != nil {
			f.log.Warningf("ignoring workspace folder: %s", err.Error())
		}
	}
	for _, folder := range params.Event.Removed {
		f.folders.Remove(folder.URI)
	}

	return nil
}

// DidChangeWatchedFiles drops cached models for files that changed on
// disk. Open documents are unaffected, their buffers stay authoritative.
func (f *Features) DidChangeWatchedFiles(glspCtx *glsp.Context, params *protocol.DidChangeWatchedFilesParams) error {
	for _, change := range params.Changes {
		if path, ok := documentPath(change.URI); ok {
			f.index.Invalidate(path)
		}
	}

	return nil
}

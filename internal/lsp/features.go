// Package lsp implements the protocol handlers of the language server.
package lsp

import (
	"context"
	"strings"
	"sync"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.lsp.dev/uri"

	"github.com/go-robot-tools/go-robot-lsp/internal/analysis"
	"github.com/go-robot-tools/go-robot-lsp/internal/document"
	"github.com/go-robot-tools/go-robot-lsp/internal/event"
	"github.com/go-robot-tools/go-robot-lsp/internal/workspace"
)

// Features owns the protocol surface: the open documents, the workspace
// state and one dispatcher per language feature. Providers register
// collectors against the dispatchers; a request notifies its dispatcher
// and merges whatever the collectors return, so the handlers never know
// who produces the answers.
type Features struct {
	log commonlog.Logger

	store   *document.Store
	folders *workspace.Folders
	index   *workspace.Index

	pool       *event.Pool
	references *event.Event[*analysis.ReferenceRequest, []protocol.Location]
	folding    *event.Event[*analysis.FoldingRequest, []protocol.FoldingRange]

	baseCtx context.Context
	stop    context.CancelFunc

	mu       sync.Mutex
	config   workspace.Config
	inflight map[requestKey]*inflightRequest
	down     bool
}

// requestKey identifies an in-flight request by method and document, so
// a request for one document never cancels work on another.
type requestKey struct {
	method string
	path   string
}

type inflightRequest struct {
	cancel context.CancelFunc
}

// NewFeatures returns the feature surface over the given state. The
// references dispatcher runs collectors on their own goroutines; folding
// collectors share the feature pool.
func NewFeatures(store *document.Store, folders *workspace.Folders, index *workspace.Index) *Features {
	baseCtx, stop := context.WithCancel(context.Background())
	f := &Features{
		log:      commonlog.GetLogger("lsp"),
		store:    store,
		folders:  folders,
		index:    index,
		pool:     event.NewPool("lsp.features", 0),
		baseCtx:  baseCtx,
		stop:     stop,
		inflight: make(map[requestKey]*inflightRequest),
	}
	f.references = event.NewTasking[*analysis.ReferenceRequest, []protocol.Location]("textDocument/references")
	f.folding = event.NewThreading[*analysis.FoldingRequest, []protocol.FoldingRange]("textDocument/foldingRange", event.WithPool(f.pool))
	return f
}

// References returns the references extension point.
func (f *Features) References() *event.Event[*analysis.ReferenceRequest, []protocol.Location] {
	return f.references
}

// Folding returns the folding range extension point.
func (f *Features) Folding() *event.Event[*analysis.FoldingRequest, []protocol.FoldingRange] {
	return f.folding
}

// Config returns the current workspace configuration.
func (f *Features) Config() workspace.Config {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.config
}

func (f *Features) setConfig(cfg workspace.Config) {
	f.mu.Lock()
	f.config = cfg
	f.mu.Unlock()
}

// supersede cancels the in-flight request of the same method on the same
// document, if any, and opens a context for the new one. The returned
// cancel also clears the bookkeeping, so callers must defer it.
func (f *Features) supersede(method, path string) (context.Context, context.CancelFunc) {
	key := requestKey{method: method, path: path}
	ctx, cancel := context.WithCancel(f.baseCtx)
	req := &inflightRequest{cancel: cancel}

	f.mu.Lock()
	if prev, ok := f.inflight[key]; ok {
		prev.cancel()
	}
	f.inflight[key] = req
	f.mu.Unlock()

	return ctx, func() {
		cancel()
		f.mu.Lock()
		if f.inflight[key] == req {
			delete(f.inflight, key)
		}
		f.mu.Unlock()
	}
}

// Close cancels running requests and stops the dispatchers and their
// pool. Close is idempotent.
func (f *Features) Close() {
	f.mu.Lock()
	if f.down {
		f.mu.Unlock()
		return
	}
	f.down = true
	f.mu.Unlock()

	f.stop()
	f.references.Close()
	f.folding.Close()
	f.pool.Close()
}

// documentPath turns a protocol document URI into a file path. Non-file
// schemes, like untitled buffers, have no path to analyze.
func documentPath(raw protocol.DocumentUri) (string, bool) {
	if !strings.HasPrefix(string(raw), "file://") {
		return "", false
	}
	return uri.URI(raw).Filename(), true
}

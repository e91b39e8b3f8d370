// Package server assembles the language server from its parts.
package server

import (
	"context"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/go-robot-tools/go-robot-lsp/internal/analysis"
	"github.com/go-robot-tools/go-robot-lsp/internal/document"
	"github.com/go-robot-tools/go-robot-lsp/internal/event"
	"github.com/go-robot-tools/go-robot-lsp/internal/lsp"
	"github.com/go-robot-tools/go-robot-lsp/internal/workspace"
)

// Server wires the document store, the workspace index, the analysis
// engine and the protocol surface together. The engine registers weakly
// against the feature dispatchers; the server's own reference is what
// keeps it alive for the server's lifetime.
type Server struct {
	store    *document.Store
	folders  *workspace.Folders
	index    *workspace.Index
	features *lsp.Features
	engine   *analysis.Engine

	registrations []*event.Registration
}

// Option configures a Server.
type Option func(*options)

type options struct {
	parser  workspace.Parser
	builder workspace.NamespaceBuilder
}

// WithParser sets the parser producing tree models from script text.
// Without one the server still runs the document lifecycle, but has no
// analysis to offer and advertises no capabilities for it.
func WithParser(parser workspace.Parser) Option {
	return func(o *options) { o.parser = parser }
}

// WithNamespaceBuilder sets the builder deriving a file's namespace from
// its model.
func WithNamespaceBuilder(builder workspace.NamespaceBuilder) Option {
	return func(o *options) { o.builder = builder }
}

// New assembles a server.
func New(opts ...Option) *Server {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	store := document.NewStore()
	folders := workspace.NewFolders()
	index := workspace.NewIndex(o.parser, o.builder, store)
	features := lsp.NewFeatures(store, folders, index)

	s := &Server{
		store:    store,
		folders:  folders,
		index:    index,
		features: features,
	}

	if o.parser != nil {
		files := &workspaceFiles{folders: folders, config: features.Config}
		s.engine = analysis.NewEngine(index, files, analysis.WithSearchWorkers(func() int {
			return features.Config().Workers
		}))
		s.registrations = append(s.registrations,
			event.Owned(features.References(), s.engine, (*analysis.Engine).Collect),
			event.Owned(features.Folding(), s.engine, (*analysis.Engine).CollectFolding),
		)
	}

	return s
}

// Handler returns the protocol handler table to serve.
func (s *Server) Handler() protocol.Handler {
	return s.features.Handler()
}

// Features returns the protocol surface, exposing the extension points
// further providers can register against.
func (s *Server) Features() *lsp.Features {
	return s.features
}

// Documents returns the open document store.
func (s *Server) Documents() *document.Store {
	return s.store
}

// Folders returns the workspace folder set.
func (s *Server) Folders() *workspace.Folders {
	return s.folders
}

// Index returns the model index.
func (s *Server) Index() *workspace.Index {
	return s.index
}

// Engine returns the analysis engine, nil when no parser is wired.
func (s *Server) Engine() *analysis.Engine {
	return s.engine
}

// Close stops in-flight requests and the feature dispatchers. The server
// cannot serve afterwards.
func (s *Server) Close() {
	s.features.Close()
}

// workspaceFiles enumerates the script files workspace-wide searches
// visit, applying the configured exclude patterns.
type workspaceFiles struct {
	folders *workspace.Folders
	config  func() workspace.Config
}

func (w *workspaceFiles) ScriptFiles(ctx context.Context) ([]string, error) {
	return w.folders.ScriptFiles(ctx, w.config().ExcludePatterns)
}

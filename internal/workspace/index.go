package workspace

import (
	"context"
	"os"
	"sync"

	"github.com/tliron/commonlog"
	"go.lsp.dev/uri"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
	"github.com/go-robot-tools/go-robot-lsp/internal/document"
	"github.com/go-robot-tools/go-robot-lsp/internal/namespace"
)

// Parser turns script text into the tree model. The parser is an external
// collaborator; the server only consumes its output.
type Parser interface {
	Parse(ctx context.Context, path string, text string) (*ast.File, error)
}

// NamespaceBuilder derives a file's namespace from its parsed model: the
// file's own keywords, its imports and its variable definitions.
type NamespaceBuilder interface {
	Build(ctx context.Context, model *ast.File) (namespace.Namespace, error)
}

// Index serves models and namespaces by file path, preferring open
// document text over the file on disk and caching per file until
// invalidated. It backs the analysis layer's model provider.
type Index struct {
	log     commonlog.Logger
	parser  Parser
	builder NamespaceBuilder
	store   *document.Store

	mu      sync.RWMutex
	entries map[string]*indexEntry
}

// indexEntry is what one file produced. A nil model records a file that
// would not parse.
type indexEntry struct {
	model *ast.File
	ns    namespace.Namespace
}

// NewIndex returns an empty index reading open text from store.
func NewIndex(parser Parser, builder NamespaceBuilder, store *document.Store) *Index {
	return &Index{
		log:     commonlog.GetLogger("workspace.index"),
		parser:  parser,
		builder: builder,
		store:   store,
		entries: make(map[string]*indexEntry),
	}
}

// Model returns the parse tree of the file at path, parsing and caching
// it on first use. A file that cannot be parsed yields nil with no error.
func (x *Index) Model(ctx context.Context, path string) (*ast.File, error) {
	if ent := x.lookup(path); ent != nil {
		return ent.model, nil
	}
	ent, err := x.load(ctx, path)
	if err != nil || ent == nil {
		return nil, err
	}
	return ent.model, nil
}

// Namespace returns the namespace of the file at path, building and
// caching it on first use. Files without a model have no namespace.
func (x *Index) Namespace(ctx context.Context, path string) (namespace.Namespace, error) {
	ent := x.lookup(path)
	if ent == nil {
		var err error
		ent, err = x.load(ctx, path)
		if err != nil || ent == nil {
			return nil, err
		}
	}
	if ent.model == nil {
		return nil, nil
	}
	if ns := x.cachedNamespace(ent); ns != nil {
		return ns, nil
	}
	if x.builder == nil {
		return nil, nil
	}

	ns, err := x.builder.Build(ctx, ent.model)
	if err != nil {
		return nil, err
	}
	x.mu.Lock()
	ent.ns = ns
	x.mu.Unlock()
	return ns, nil
}

// Invalidate drops the cached state of the file at path, forcing a fresh
// parse on next use.
func (x *Index) Invalidate(path string) {
	x.mu.Lock()
	delete(x.entries, path)
	x.mu.Unlock()
}

// InvalidateAll drops every cached file.
func (x *Index) InvalidateAll() {
	x.mu.Lock()
	x.entries = make(map[string]*indexEntry)
	x.mu.Unlock()
}

// Len returns the number of indexed files.
func (x *Index) Len() int {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return len(x.entries)
}

func (x *Index) lookup(path string) *indexEntry {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return x.entries[path]
}

func (x *Index) cachedNamespace(ent *indexEntry) namespace.Namespace {
	x.mu.RLock()
	defer x.mu.RUnlock()
	return ent.ns
}

// load parses the file and stores the result. Concurrent loads of the
// same file both parse; the last one wins.
func (x *Index) load(ctx context.Context, path string) (*indexEntry, error) {
	if x.parser == nil {
		return nil, nil
	}
	text, err := x.text(path)
	if err != nil {
		return nil, err
	}

	model, err := x.parser.Parse(ctx, path, text)
	if err != nil {
		// Broken scripts are indexed as absent, not as errors.
		x.log.Debugf("parse %s: %s", path, err.Error())
		model = nil
	}

	ent := &indexEntry{model: model}
	x.mu.Lock()
	x.entries[path] = ent
	x.mu.Unlock()
	return ent, nil
}

// text returns the current content of the file at path: the open
// document's text when the file is open, the on-disk bytes otherwise.
func (x *Index) text(path string) (string, error) {
	if x.store != nil {
		if doc, ok := x.store.Get(uri.File(path)); ok {
			return doc.Text, nil
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

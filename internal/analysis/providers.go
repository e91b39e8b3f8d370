package analysis

import (
	"context"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
	"github.com/go-robot-tools/go-robot-lsp/internal/namespace"
)

// ModelProvider serves parse trees and namespaces by file path, for open
// documents and on-disk files alike. Providers are expected to cache;
// the engine asks for the same file many times during a search.
//
// A file that cannot be parsed yields nil with no error, and the engine
// skips it. Errors are reserved for provider failures worth surfacing.
type ModelProvider interface {
	Model(ctx context.Context, path string) (*ast.File, error)
	Namespace(ctx context.Context, path string) (namespace.Namespace, error)
}

// WorkspaceProvider enumerates the script files a workspace-wide search
// has to visit. The implementation applies the configured excludes.
type WorkspaceProvider interface {
	ScriptFiles(ctx context.Context) ([]string, error)
}

// Package analysis resolves references across a workspace of scripts. It
// works on the tree model and namespaces alone; parsing and index building
// are injected through the provider interfaces.
package analysis

import "github.com/go-robot-tools/go-robot-lsp/internal/ast"

// SyntaxDispatch routes work by node kind. A kind without its own handler
// falls back to the handlers of its base kinds, so a single handler
// registered for the fixture base serves every setup and teardown variant.
type SyntaxDispatch[H any] struct {
	handlers map[ast.Kind]H
}

// NewSyntaxDispatch returns an empty dispatch table.
func NewSyntaxDispatch[H any]() *SyntaxDispatch[H] {
	return &SyntaxDispatch[H]{handlers: make(map[ast.Kind]H)}
}

// Register binds handler to kind, replacing any previous binding.
func (d *SyntaxDispatch[H]) Register(kind ast.Kind, handler H) {
	d.handlers[kind] = handler
}

// Resolve returns the handler for kind, trying the kind itself and then
// its base kinds depth first.
func (d *SyntaxDispatch[H]) Resolve(kind ast.Kind) (H, bool) {
	if h, ok := d.handlers[kind]; ok {
		return h, true
	}
	for _, base := range kind.Bases() {
		if h, ok := d.Resolve(base); ok {
			return h, true
		}
	}
	var zero H
	return zero, false
}

// ResolveNode returns the handler for the node's kind.
func (d *SyntaxDispatch[H]) ResolveNode(n ast.Node) (H, bool) {
	return d.Resolve(n.Kind())
}

// Kinds returns the number of directly registered kinds.
func (d *SyntaxDispatch[H]) Kinds() int {
	return len(d.handlers)
}

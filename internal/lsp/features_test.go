package lsp

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
	"github.com/go-robot-tools/go-robot-lsp/internal/document"
	"github.com/go-robot-tools/go-robot-lsp/internal/workspace"
)

// fakeParser produces empty models and records what it parsed.
type fakeParser struct {
	mu    sync.Mutex
	calls map[string]int
	texts map[string]string
}

func (p *fakeParser) Parse(ctx context.Context, path string, text string) (*ast.File, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.calls == nil {
		p.calls = make(map[string]int)
		p.texts = make(map[string]string)
	}
	p.calls[path]++
	p.texts[path] = text
	return &ast.File{Source: path}, nil
}

func (p *fakeParser) parses(path string) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[path]
}

func (p *fakeParser) text(path string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.texts[path]
}

// newTestFeatures assembles a feature surface over fresh state. A nil
// parser leaves the index unable to produce models, which is enough for
// handler-level tests.
func newTestFeatures(t *testing.T, parser workspace.Parser) *Features {
	t.Helper()
	store := document.NewStore()
	folders := workspace.NewFolders()
	f := NewFeatures(store, folders, workspace.NewIndex(parser, nil, store))
	t.Cleanup(f.Close)
	return f
}

func writeScript(t *testing.T, dir, name, text string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
	return path
}

func TestDocumentPath(t *testing.T) {
	tests := []struct {
		name     string
		uri      string
		expected string
		ok       bool
	}{
		{
			name:     "file URI",
			uri:      "file:///ws/tests.robot",
			expected: "/ws/tests.robot",
			ok:       true,
		},
		{
			name: "untitled buffer",
			uri:  "untitled:Untitled-1",
			ok:   false,
		},
		{
			name: "http URI",
			uri:  "http://example.com/tests.robot",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path, ok := documentPath(tt.uri)
			if ok != tt.ok {
				t.Fatalf("documentPath(%q) ok = %t, want %t", tt.uri, ok, tt.ok)
			}
			if ok && path != tt.expected {
				t.Errorf("documentPath(%q) = %q, want %q", tt.uri, path, tt.expected)
			}
		})
	}
}

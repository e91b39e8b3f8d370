//go:build integration
// +build integration

package integration

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.lsp.dev/uri"
)

// TestInitializeWorkflow tests the complete initialization workflow
func TestInitializeWorkflow(t *testing.T) {
	srv := setupTestServer(t)
	handler := srv.Handler()
	ctx := &glsp.Context{}

	// Test Initialize
	params := &protocol.InitializeParams{
		ProcessID: nil,
		RootURI:   stringPtr("file:///test/workspace"),
		Capabilities: protocol.ClientCapabilities{
			TextDocument: &protocol.TextDocumentClientCapabilities{},
		},
	}

	result, err := handler.Initialize(ctx, params)
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	if result == nil {
		t.Fatal("Initialize returned nil result")
	}

	initResult, ok := result.(protocol.InitializeResult)
	if !ok {
		t.Fatalf("Initialize returned wrong type: %T", result)
	}

	// Verify server capabilities
	if initResult.Capabilities.TextDocumentSync == nil {
		t.Error("TextDocumentSync capability should be advertised")
	}

	if initResult.Capabilities.ReferencesProvider == nil {
		t.Error("ReferencesProvider capability should be advertised")
	}

	if initResult.Capabilities.FoldingRangeProvider == nil {
		t.Error("FoldingRangeProvider capability should be advertised")
	}

	// Test Initialized notification
	initializedParams := &protocol.InitializedParams{}
	err = handler.Initialized(ctx, initializedParams)
	if err != nil {
		t.Fatalf("Initialized failed: %v", err)
	}
}

// TestDocumentLifecycle tests the complete document lifecycle
func TestDocumentLifecycle(t *testing.T) {
	srv := setupTestServer(t)
	handler := srv.Handler()
	ctx := &glsp.Context{}

	docURI := "file:///ws/lifecycle.robot"

	// 1. Open document
	openParams := &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        docURI,
			LanguageID: "robotframework",
			Version:    1,
			Text:       "*** Test Cases ***\nLogin Works\n    Open Session\n",
		},
	}

	err := handler.TextDocumentDidOpen(ctx, openParams)
	if err != nil {
		t.Fatalf("DidOpen failed: %v", err)
	}

	// Verify document is stored
	doc, exists := srv.Documents().Get(uri.URI(docURI))
	if !exists {
		t.Fatal("Document should exist after DidOpen")
	}

	if doc.Version != 1 {
		t.Errorf("Document version = %d, want 1", doc.Version)
	}

	// 2. Change document
	changeParams := &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{
				URI: docURI,
			},
			Version: 2,
		},
		ContentChanges: []interface{}{
			protocol.TextDocumentContentChangeEvent{
				Range: nil,
				Text:  "*** Test Cases ***\nLogin Works\n    Close Session\n",
			},
		},
	}

	err = handler.TextDocumentDidChange(ctx, changeParams)
	if err != nil {
		t.Fatalf("DidChange failed: %v", err)
	}

	// Verify document was updated
	doc, exists = srv.Documents().Get(uri.URI(docURI))
	if !exists {
		t.Fatal("Document should still exist after DidChange")
	}

	if doc.Version != 2 {
		t.Errorf("Document version = %d, want 2", doc.Version)
	}

	if doc.Text != "*** Test Cases ***\nLogin Works\n    Close Session\n" {
		t.Errorf("Document text = %q after whole-document change", doc.Text)
	}

	// 3. Close document
	closeParams := &protocol.DidCloseTextDocumentParams{
		TextDocument: protocol.TextDocumentIdentifier{
			URI: docURI,
		},
	}

	err = handler.TextDocumentDidClose(ctx, closeParams)
	if err != nil {
		t.Fatalf("DidClose failed: %v", err)
	}

	// Verify document was removed
	_, exists = srv.Documents().Get(uri.URI(docURI))
	if exists {
		t.Error("Document should be removed after DidClose")
	}
}

// TestIncrementalDocumentChanges tests incremental text document synchronization
func TestIncrementalDocumentChanges(t *testing.T) {
	srv := setupTestServer(t)
	handler := srv.Handler()
	ctx := &glsp.Context{}

	docURI := "file:///ws/incremental.robot"
	initialText := "*** Test Cases ***\nLogin Works\n    Open Session\n"

	// Open document
	openParams := &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        docURI,
			LanguageID: "robotframework",
			Version:    1,
			Text:       initialText,
		},
	}

	err := handler.TextDocumentDidOpen(ctx, openParams)
	if err != nil {
		t.Fatalf("DidOpen failed: %v", err)
	}

	// Make an incremental change: replace "Open" with "Close" on the call line
	changeParams := &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{
				URI: docURI,
			},
			Version: 2,
		},
		ContentChanges: []interface{}{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 2, Character: 4},
					End:   protocol.Position{Line: 2, Character: 8},
				},
				Text: "Close",
			},
		},
	}

	err = handler.TextDocumentDidChange(ctx, changeParams)
	if err != nil {
		t.Fatalf("DidChange failed: %v", err)
	}

	// Verify the change was applied correctly
	doc, exists := srv.Documents().Get(uri.URI(docURI))
	if !exists {
		t.Fatal("Document should exist after incremental change")
	}

	expectedText := "*** Test Cases ***\nLogin Works\n    Close Session\n"
	if doc.Text != expectedText {
		t.Errorf("Document text = %q, want %q", doc.Text, expectedText)
	}
}

// TestConcurrentDocumentOperations tests concurrent requests on open documents
func TestConcurrentDocumentOperations(t *testing.T) {
	srv := setupTestServer(t)
	handler := srv.Handler()
	ctx := &glsp.Context{}

	// Open multiple documents
	uris := []string{
		"file:///ws/concurrent1.robot",
		"file:///ws/concurrent2.robot",
		"file:///ws/concurrent3.robot",
	}

	for i, docURI := range uris {
		params := &protocol.DidOpenTextDocumentParams{
			TextDocument: protocol.TextDocumentItem{
				URI:        docURI,
				LanguageID: "robotframework",
				Version:    1,
				Text:       "*** Test Cases ***\nLogin Works\n    Log    ready\n",
			},
		}

		err := handler.TextDocumentDidOpen(ctx, params)
		if err != nil {
			t.Fatalf("DidOpen for document %d failed: %v", i, err)
		}
	}

	// Verify all documents exist
	for i, docURI := range uris {
		_, exists := srv.Documents().Get(uri.URI(docURI))
		if !exists {
			t.Errorf("Document %d should exist", i)
		}
	}

	// Request folding ranges for all documents at once
	var wg sync.WaitGroup
	for i, docURI := range uris {
		wg.Add(1)
		go func() {
			defer wg.Done()
			params := &protocol.FoldingRangeParams{
				TextDocument: protocol.TextDocumentIdentifier{URI: docURI},
			}
			ranges, err := handler.TextDocumentFoldingRange(&glsp.Context{}, params)
			if err != nil {
				t.Errorf("FoldingRange on document %d failed: %v", i, err)
				return
			}
			if len(ranges) != 2 {
				t.Errorf("FoldingRange on document %d = %d ranges, want 2", i, len(ranges))
			}
		}()
	}
	wg.Wait()
}

// TestReferencesWorkflow tests a cross-file reference search end to end:
// disk files first, then an open buffer superseding the disk text
func TestReferencesWorkflow(t *testing.T) {
	dir := t.TempDir()
	suitePath := filepath.Join(dir, "login.robot")
	resourcePath := filepath.Join(dir, "common.resource")

	suiteText := "*** Settings ***\nResource    common.resource\n*** Test Cases ***\nLogin Works\n    Open Session\n"
	resourceText := "*** Keywords ***\nOpen Session\n    Log    ready\n"
	if err := os.WriteFile(suitePath, []byte(suiteText), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(resourcePath, []byte(resourceText), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := setupTestServer(t)
	handler := srv.Handler()
	ctx := &glsp.Context{}

	_, err := handler.Initialize(ctx, &protocol.InitializeParams{
		WorkspaceFolders: []protocol.WorkspaceFolder{
			{URI: string(uri.File(dir)), Name: "ws"},
		},
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	refParams := &protocol.ReferenceParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: string(uri.File(suitePath))},
			Position:     protocol.Position{Line: 4, Character: 6},
		},
		Context: protocol.ReferenceContext{IncludeDeclaration: true},
	}

	// 1. Search with everything on disk
	locations, err := handler.TextDocumentReferences(ctx, refParams)
	if err != nil {
		t.Fatalf("References failed: %v", err)
	}
	expectDeclaration := protocol.Location{
		URI: string(uri.File(resourcePath)),
		Range: protocol.Range{
			Start: protocol.Position{Line: 1, Character: 0},
			End:   protocol.Position{Line: 1, Character: 12},
		},
	}
	if len(locations) != 2 {
		t.Fatalf("References = %d locations, want 2", len(locations))
	}
	if locations[0] != expectDeclaration {
		t.Errorf("locations[0] = %v, want the declaration %v", locations[0], expectDeclaration)
	}

	// 2. Open the suite and add a second call; the buffer drives the search
	err = handler.TextDocumentDidOpen(ctx, &protocol.DidOpenTextDocumentParams{
		TextDocument: protocol.TextDocumentItem{
			URI:        string(uri.File(suitePath)),
			LanguageID: "robotframework",
			Version:    1,
			Text:       suiteText,
		},
	})
	if err != nil {
		t.Fatalf("DidOpen failed: %v", err)
	}

	err = handler.TextDocumentDidChange(ctx, &protocol.DidChangeTextDocumentParams{
		TextDocument: protocol.VersionedTextDocumentIdentifier{
			TextDocumentIdentifier: protocol.TextDocumentIdentifier{
				URI: string(uri.File(suitePath)),
			},
			Version: 2,
		},
		ContentChanges: []interface{}{
			protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{
					Start: protocol.Position{Line: 4, Character: 16},
					End:   protocol.Position{Line: 4, Character: 16},
				},
				Text: "\n    Open Session",
			},
		},
	})
	if err != nil {
		t.Fatalf("DidChange failed: %v", err)
	}

	locations, err = handler.TextDocumentReferences(ctx, refParams)
	if err != nil {
		t.Fatalf("References after edit failed: %v", err)
	}
	if len(locations) != 3 {
		t.Fatalf("References after edit = %d locations, want 3", len(locations))
	}
	added := protocol.Location{
		URI: string(uri.File(suitePath)),
		Range: protocol.Range{
			Start: protocol.Position{Line: 5, Character: 4},
			End:   protocol.Position{Line: 5, Character: 16},
		},
	}
	if locations[2] != added {
		t.Errorf("locations[2] = %v, want the added call %v", locations[2], added)
	}
}

// TestVariableReferencesWorkflow tests a variable search within a suite
func TestVariableReferencesWorkflow(t *testing.T) {
	dir := t.TempDir()
	suitePath := filepath.Join(dir, "retries.robot")

	suiteText := "*** Test Cases ***\nLogin Works\n    Log    ${RETRIES}\n*** Variables ***\n${RETRIES}    3\n"
	if err := os.WriteFile(suitePath, []byte(suiteText), 0o644); err != nil {
		t.Fatal(err)
	}

	srv := setupTestServer(t)
	handler := srv.Handler()
	ctx := &glsp.Context{}

	_, err := handler.Initialize(ctx, &protocol.InitializeParams{
		WorkspaceFolders: []protocol.WorkspaceFolder{
			{URI: string(uri.File(dir)), Name: "ws"},
		},
	})
	if err != nil {
		t.Fatalf("Initialize failed: %v", err)
	}

	locations, err := handler.TextDocumentReferences(ctx, &protocol.ReferenceParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: string(uri.File(suitePath))},
			Position:     protocol.Position{Line: 2, Character: 13},
		},
		Context: protocol.ReferenceContext{IncludeDeclaration: true},
	})
	if err != nil {
		t.Fatalf("References failed: %v", err)
	}

	expected := []protocol.Location{
		{
			URI: string(uri.File(suitePath)),
			Range: protocol.Range{
				Start: protocol.Position{Line: 2, Character: 11},
				End:   protocol.Position{Line: 2, Character: 21},
			},
		},
		{
			URI: string(uri.File(suitePath)),
			Range: protocol.Range{
				Start: protocol.Position{Line: 4, Character: 0},
				End:   protocol.Position{Line: 4, Character: 10},
			},
		},
	}
	if len(locations) != len(expected) {
		t.Fatalf("References = %d locations, want %d", len(locations), len(expected))
	}
	for i := range expected {
		if locations[i] != expected[i] {
			t.Errorf("locations[%d] = %v, want %v", i, locations[i], expected[i])
		}
	}
}

// TestShutdownWorkflow tests the shutdown workflow
func TestShutdownWorkflow(t *testing.T) {
	srv := setupTestServer(t)
	handler := srv.Handler()
	ctx := &glsp.Context{}

	err := handler.Shutdown(ctx)
	if err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}

	// A second shutdown is harmless
	err = handler.Shutdown(ctx)
	if err != nil {
		t.Fatalf("repeated Shutdown failed: %v", err)
	}
}

// Helper function
func stringPtr(s string) *string {
	return &s
}

// Package document holds the open documents of a session and applies the
// protocol's incremental text changes to them.
package document

import (
	"sync"

	"go.lsp.dev/uri"
)

// Document is one open document.
type Document struct {
	URI        uri.URI
	Path       string
	Text       string
	Version    int
	LanguageID string
}

// Store keeps the open documents keyed by URI. All methods are safe for
// concurrent use.
type Store struct {
	mu        sync.RWMutex
	documents map[uri.URI]*Document
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{documents: make(map[uri.URI]*Document)}
}

// Set stores or replaces a document.
func (s *Store) Set(doc *Document) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents[doc.URI] = doc
}

// Get retrieves a document by URI.
func (s *Store) Get(u uri.URI) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[u]

	return doc, ok
}

// Delete removes a document.
func (s *Store) Delete(u uri.URI) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.documents, u)
}

// List returns the URIs of all open documents.
func (s *Store) List() []uri.URI {
	s.mu.RLock()
	defer s.mu.RUnlock()

	uris := make([]uri.URI, 0, len(s.documents))
	for u := range s.documents {
		uris = append(uris, u)
	}

	return uris
}

// Len returns the number of open documents.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.documents)
}

// Clear removes all documents.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.documents = make(map[uri.URI]*Document)
}

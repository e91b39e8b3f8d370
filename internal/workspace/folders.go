// Package workspace tracks the session's workspace folders and enumerates
// the script files in them.
package workspace

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"go.lsp.dev/uri"
)

// Folder is one workspace folder.
type Folder struct {
	Name string
	URI  uri.URI
	Path string
}

// Folders is the mutable set of workspace folders. All methods are safe
// for concurrent use.
type Folders struct {
	mu      sync.RWMutex
	folders map[uri.URI]Folder
}

// NewFolders returns an empty folder set.
func NewFolders() *Folders {
	return &Folders{folders: make(map[uri.URI]Folder)}
}

// Add records a folder. Only file URIs can back a folder.
func (f *Folders) Add(name, rawURI string) error {
	if !strings.HasPrefix(rawURI, "file://") {
		return fmt.Errorf("workspace folder %q is not a file URI: %s", name, rawURI)
	}
	u := uri.URI(rawURI)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.folders[u] = Folder{Name: name, URI: u, Path: u.Filename()}

	return nil
}

// Remove drops the folder with the given URI, ignoring absence.
func (f *Folders) Remove(rawURI string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.folders, uri.URI(rawURI))
}

// All returns the folders sorted by path.
func (f *Folders) All() []Folder {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]Folder, 0, len(f.folders))
	for _, folder := range f.folders {
		out = append(out, folder)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })

	return out
}

// Len returns the number of folders.
func (f *Folders) Len() int {
	f.mu.RLock()
	defer f.mu.RUnlock()

	return len(f.folders)
}

// FolderFor returns the folder containing path, preferring the longest
// match when folders nest.
func (f *Folders) FolderFor(path string) (Folder, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var best Folder
	found := false
	for _, folder := range f.folders {
		if !underFolder(folder.Path, path) {
			continue
		}
		if !found || len(folder.Path) > len(best.Path) {
			best = folder
			found = true
		}
	}

	return best, found
}

// underFolder reports whether path lies within root, requiring a
// separator boundary so "/a/bc" is not under "/a/b".
func underFolder(root, path string) bool {
	if path == root {
		return true
	}
	if !strings.HasPrefix(path, root) {
		return false
	}
	rest := path[len(root):]
	return strings.HasPrefix(rest, "/") || strings.HasSuffix(root, "/")
}

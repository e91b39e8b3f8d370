package workspace

import (
	"context"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
)

// skippedDirs are directory names the walk never descends into, on top of
// hidden directories and the configured excludes.
var skippedDirs = map[string]bool{
	"node_modules": true,
	"vendor":       true,
	"venv":         true,
	"__pycache__":  true,
	"dist":         true,
	"build":        true,
	"out":          true,
}

// ScriptFiles returns the absolute paths of the script files under root.
// Excludes are doublestar globs matched against the slash-separated path
// relative to root; a matching directory is skipped whole. The walk checks
// ctx between entries so a superseded search stops quickly.
func ScriptFiles(ctx context.Context, root string, excludes []string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable entries are skipped, not fatal.
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path == root {
				return nil
			}
			if strings.HasPrefix(name, ".") || skippedDirs[name] {
				return filepath.SkipDir
			}
			if excluded(root, path, excludes) {
				return filepath.SkipDir
			}
			return nil
		}

		if strings.HasPrefix(name, ".") {
			return nil
		}
		if !isScriptFile(name) {
			return nil
		}
		if excluded(root, path, excludes) {
			return nil
		}

		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return files, nil
}

// ScriptFiles returns the script files of every folder, deduplicated and
// sorted, so nested folders do not report a file twice.
func (f *Folders) ScriptFiles(ctx context.Context, excludes []string) ([]string, error) {
	seen := make(map[string]bool)
	for _, folder := range f.All() {
		files, err := ScriptFiles(ctx, folder.Path, excludes)
		if err != nil {
			return nil, err
		}
		for _, file := range files {
			seen[file] = true
		}
	}

	out := make([]string, 0, len(seen))
	for file := range seen {
		out = append(out, file)
	}
	sort.Strings(out)

	return out, nil
}

func isScriptFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range ast.Extensions() {
		if ext == want {
			return true
		}
	}
	return false
}

func excluded(root, path string, excludes []string) bool {
	if len(excludes) == 0 {
		return false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, pattern := range excludes {
		if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
			return true
		}
	}
	return false
}

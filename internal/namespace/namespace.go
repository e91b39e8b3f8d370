package namespace

import (
	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
)

// Namespace is the view of one script file: its own keywords, its imports
// and its variable definitions. Implementations come from whatever builds
// the index; the analysis layer only resolves against this interface.
type Namespace interface {
	// Source returns the absolute path of the file the namespace indexes.
	Source() string

	// FindKeyword resolves a call name to its definition, applying
	// normalized matching and owner qualifiers. An unresolvable name
	// yields nil with no error.
	FindKeyword(name string) (*KeywordDoc, error)

	// FindVariable resolves a variable reference at pos to its
	// definition. An unresolvable name yields nil with no error.
	FindVariable(name string, pos ast.Position) (*VariableDefinition, error)

	// Libraries returns the file's library imports in import order.
	Libraries() []*LibraryEntry

	// Resources returns the file's resource imports in import order.
	Resources() []*LibraryEntry

	// OwnLibraryDoc returns the file's own keywords as a library.
	OwnLibraryDoc() *LibraryDoc
}

// Table is an in-memory Namespace built by adding keywords, imports and
// variables. Resolution prefers the file's own keywords, then resources,
// then libraries, each in import order.
type Table struct {
	source    string
	own       *LibraryDoc
	libraries []*LibraryEntry
	resources []*LibraryEntry
	variables []*VariableDefinition
}

// NewTable returns an empty namespace for the file at source. name is the
// name the file's own keywords are addressed by, usually the file's base
// name without extension.
func NewTable(source, name string) *Table {
	return &Table{
		source: source,
		own:    &LibraryDoc{Name: name, Source: source},
	}
}

// AddKeyword adds a keyword defined in the file itself.
func (t *Table) AddKeyword(kw *KeywordDoc) {
	t.own.Keywords = append(t.own.Keywords, kw)
}

// AddLibrary adds a library import.
func (t *Table) AddLibrary(entry *LibraryEntry) {
	t.libraries = append(t.libraries, entry)
}

// AddResource adds a resource import.
func (t *Table) AddResource(entry *LibraryEntry) {
	t.resources = append(t.resources, entry)
}

// AddVariable adds a variable definition.
func (t *Table) AddVariable(def *VariableDefinition) {
	t.variables = append(t.variables, def)
}

// Source implements Namespace.
func (t *Table) Source() string { return t.source }

// Libraries implements Namespace.
func (t *Table) Libraries() []*LibraryEntry { return t.libraries }

// Resources implements Namespace.
func (t *Table) Resources() []*LibraryEntry { return t.resources }

// OwnLibraryDoc implements Namespace.
func (t *Table) OwnLibraryDoc() *LibraryDoc { return t.own }

// FindKeyword implements Namespace. The name's readings are tried in
// order: first the whole name against the file's own keywords and every
// import, then each owner split against the imports matching the owner.
func (t *Table) FindKeyword(name string) (*KeywordDoc, error) {
	for _, reading := range ast.SplitKeywordOwner(name) {
		if reading.Owner == "" {
			if kw := t.findUnqualified(reading.Name); kw != nil {
				return kw, nil
			}
			continue
		}
		owner := NewMatcher(reading.Owner)
		for _, entry := range t.resources {
			if owner.Matches(entry.Name) {
				if kw := entry.Doc.FindKeyword(reading.Name); kw != nil {
					return kw, nil
				}
			}
		}
		for _, entry := range t.libraries {
			if owner.Matches(entry.Name) {
				if kw := entry.Doc.FindKeyword(reading.Name); kw != nil {
					return kw, nil
				}
			}
		}
	}
	return nil, nil
}

func (t *Table) findUnqualified(name string) *KeywordDoc {
	if kw := t.own.FindKeyword(name); kw != nil {
		return kw
	}
	for _, entry := range t.resources {
		if kw := entry.Doc.FindKeyword(name); kw != nil {
			return kw
		}
	}
	for _, entry := range t.libraries {
		if kw := entry.Doc.FindKeyword(name); kw != nil {
			return kw
		}
	}
	return nil
}

// FindVariable implements Namespace. Definitions scoped to a block win
// over file-wide ones when pos lies inside their scope.
func (t *Table) FindVariable(name string, pos ast.Position) (*VariableDefinition, error) {
	matcher := NewMatcher(name)
	for _, def := range t.variables {
		if def.Scope.IsZero() || !def.Scope.Contains(pos) {
			continue
		}
		if matcher.Matches(def.Name) {
			return def, nil
		}
	}
	for _, def := range t.variables {
		if !def.Scope.IsZero() {
			continue
		}
		if matcher.Matches(def.Name) {
			return def, nil
		}
	}
	return nil, nil
}

package namespace

// LibraryDoc describes an imported library or resource file as a set of
// keywords.
type LibraryDoc struct {
	// Name is the library or resource name.
	Name string

	// Source is the absolute path of the defining file, empty for
	// libraries without one.
	Source string

	// Keywords are the definitions the library provides.
	Keywords []*KeywordDoc
}

// FindKeyword returns the first keyword matching name under normalized
// equality, or nil.
func (d *LibraryDoc) FindKeyword(name string) *KeywordDoc {
	matcher := NewMatcher(name)
	for _, kw := range d.Keywords {
		if matcher.Matches(kw.Name) {
			return kw
		}
	}
	return nil
}

// LibraryEntry is one import of a library or resource into a file.
type LibraryEntry struct {
	// Name is the name the import is addressed by, the alias when one
	// was given.
	Name string

	// Doc is the imported library.
	Doc *LibraryDoc
}

// Matcher returns the matcher for the entry's effective name.
func (e *LibraryEntry) Matcher() Matcher {
	return NewMatcher(e.Name)
}

// Package namespace models what a script file can see: its own keywords,
// the libraries and resources it imports, and its variable definitions.
// Building these indexes is an external collaborator's job; this package
// defines the shapes and the name matching rules the analysis layer
// resolves against.
package namespace

import "strings"

// Normalize lowers a name and strips spaces and underscores, the
// equivalence under which keyword and variable names compare.
func Normalize(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range strings.ToLower(name) {
		if r == ' ' || r == '_' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Matcher compares names under normalized equality. The zero Matcher
// matches only the empty name.
type Matcher struct {
	name       string
	normalized string
}

// NewMatcher returns a matcher for name.
func NewMatcher(name string) Matcher {
	return Matcher{name: name, normalized: Normalize(name)}
}

// Name returns the name the matcher was built from.
func (m Matcher) Name() string { return m.name }

// Matches reports whether other equals the matcher's name under
// normalization.
func (m Matcher) Matches(other string) bool {
	return m.normalized == Normalize(other)
}

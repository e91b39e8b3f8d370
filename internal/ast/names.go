package ast

import "strings"

// OwnerName is one reading of a dotted keyword name: an optional library or
// resource qualifier and the remaining keyword name.
type OwnerName struct {
	Owner string
	Name  string
}

// SplitKeywordOwner returns every owner/name reading of a dotted keyword
// name, the unqualified reading first. "a.b.c" yields ("", "a.b.c"),
// ("a", "b.c") and ("a.b", "c"). Callers try the readings in order until
// one resolves.
func SplitKeywordOwner(full string) []OwnerName {
	out := []OwnerName{{Name: full}}
	parts := strings.Split(full, ".")
	for i := 1; i < len(parts); i++ {
		out = append(out, OwnerName{
			Owner: strings.Join(parts[:i], "."),
			Name:  strings.Join(parts[i:], "."),
		})
	}
	return out
}

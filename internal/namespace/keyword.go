package namespace

import "github.com/go-robot-tools/go-robot-lsp/internal/ast"

// BuiltInLibraryName is the name of the standard library whose wrapper
// keywords forward to other keywords.
const BuiltInLibraryName = "BuiltIn"

// runKeywordNames are the BuiltIn wrappers whose arguments are a keyword
// name followed by its arguments.
var runKeywordNames = []string{
	"Run Keyword",
	"Run Keyword And Continue On Failure",
	"Run Keyword And Ignore Error",
	"Run Keyword And Return",
	"Run Keyword And Return Status",
	"Run Keyword If All Critical Tests Passed",
	"Run Keyword If All Tests Passed",
	"Run Keyword If Any Critical Tests Failed",
	"Run Keyword If Any Tests Failed",
	"Run Keyword If Test Failed",
	"Run Keyword If Test Passed",
	"Run Keyword If Timeout Occurred",
}

// runKeywordWithConditionNames are the BuiltIn wrappers that take a fixed
// number of leading condition arguments before the keyword name.
var runKeywordWithConditionNames = map[string]int{
	"Run Keyword And Expect Error": 1,
	"Run Keyword And Return If":    1,
	"Run Keyword Unless":           1,
	"Repeat Keyword":               1,
	"Wait Until Keyword Succeeds":  2,
}

const (
	runKeywordsName  = "Run Keywords"
	runKeywordIfName = "Run Keyword If"
)

// KeywordDoc describes one keyword definition: a user keyword of a suite or
// resource file, or a library keyword.
type KeywordDoc struct {
	// Name is the keyword's declared name.
	Name string

	// LibName is the name of the owning library or resource.
	LibName string

	// Source is the absolute path of the defining file, empty for
	// keywords without a source.
	Source string

	// Range is the span of the name in the defining file.
	Range ast.Range

	// Args are the declared argument specifications.
	Args []string

	// Doc is the documentation text.
	Doc string
}

// Same reports whether a and b describe the same keyword definition.
// Distinct index builds may produce distinct values for one definition, so
// identity falls back to name, source and range.
func Same(a, b *KeywordDoc) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name && a.Source == b.Source && a.Range == b.Range
}

// IsAnyRunKeyword reports whether the keyword is any of the BuiltIn
// wrappers that forward to other keywords.
func (k *KeywordDoc) IsAnyRunKeyword() bool {
	return k.IsRunKeyword() || k.IsRunKeywordWithCondition() || k.IsRunKeywords() || k.IsRunKeywordIf()
}

// IsRunKeyword reports whether the keyword is a plain wrapper taking a
// keyword name and its arguments.
func (k *KeywordDoc) IsRunKeyword() bool {
	if k.LibName != BuiltInLibraryName {
		return false
	}
	for _, name := range runKeywordNames {
		if k.Name == name {
			return true
		}
	}
	return false
}

// IsRunKeywordWithCondition reports whether the keyword takes leading
// condition arguments before the keyword name.
func (k *KeywordDoc) IsRunKeywordWithCondition() bool {
	if k.LibName != BuiltInLibraryName {
		return false
	}
	_, ok := runKeywordWithConditionNames[k.Name]
	return ok
}

// ConditionCount returns how many leading arguments are conditions, zero
// for keywords without conditions.
func (k *KeywordDoc) ConditionCount() int {
	if k.LibName != BuiltInLibraryName {
		return 0
	}
	return runKeywordWithConditionNames[k.Name]
}

// IsRunKeywords reports whether the keyword is "Run Keywords", the wrapper
// running several keywords joined by AND.
func (k *KeywordDoc) IsRunKeywords() bool {
	return k.LibName == BuiltInLibraryName && k.Name == runKeywordsName
}

// IsRunKeywordIf reports whether the keyword is "Run Keyword If", the
// wrapper with ELSE and ELSE IF branches.
func (k *KeywordDoc) IsRunKeywordIf() bool {
	return k.LibName == BuiltInLibraryName && k.Name == runKeywordIfName
}

package analysis

import (
	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
	"github.com/go-robot-tools/go-robot-lsp/internal/namespace"
)

// Invocation is one keyword name a call line invokes: the outer call
// itself, or a name nested in the arguments of one of the BuiltIn wrapper
// keywords.
type Invocation struct {
	// Token is the cell carrying the name, positioned in the source.
	Token ast.Token

	// Name is the unescaped keyword name the cell invokes.
	Name string
}

// UnwrapRunKeyword returns every keyword invocation reachable from a call
// to token with the given argument cells, the outer invocation first.
// When the call target resolves to a BuiltIn wrapper the names nested in
// its arguments follow, unwrapped recursively. A name given as a variable
// reference cannot be resolved statically and is skipped, as is anything
// behind it.
func UnwrapRunKeyword(ns namespace.Namespace, token ast.Token, args []ast.Token) ([]Invocation, error) {
	if ast.IsVariableValue(token.Value) {
		return nil, nil
	}
	name := ast.Unescape(token.Value)
	out := []Invocation{{Token: token, Name: name}}

	kw, err := ns.FindKeyword(name)
	if err != nil {
		return out, err
	}
	if kw == nil || !kw.IsAnyRunKeyword() {
		return out, nil
	}

	inner, err := unwrapArguments(ns, kw, args)
	out = append(out, inner...)
	return out, err
}

func unwrapArguments(ns namespace.Namespace, kw *namespace.KeywordDoc, args []ast.Token) ([]Invocation, error) {
	switch {
	case kw.IsRunKeyword():
		if len(args) == 0 {
			return nil, nil
		}
		return UnwrapRunKeyword(ns, args[0], args[1:])

	case kw.IsRunKeywordWithCondition():
		n := kw.ConditionCount()
		if len(args) <= n {
			return nil, nil
		}
		return UnwrapRunKeyword(ns, args[n], args[n+1:])

	case kw.IsRunKeywords():
		return unwrapRunKeywords(ns, args)

	case kw.IsRunKeywordIf():
		return unwrapRunKeywordIf(ns, args)
	}
	return nil, nil
}

// unwrapRunKeywords handles "Run Keywords". Without an AND separator
// every argument is a keyword invoked with no arguments; with separators
// each AND-delimited group is a name followed by its arguments.
func unwrapRunKeywords(ns namespace.Namespace, args []ast.Token) ([]Invocation, error) {
	hasSeparator := false
	for _, arg := range args {
		if arg.Value == "AND" {
			hasSeparator = true
			break
		}
	}

	var out []Invocation
	if !hasSeparator {
		for _, arg := range args {
			inv, err := UnwrapRunKeyword(ns, arg, nil)
			out = append(out, inv...)
			if err != nil {
				return out, err
			}
		}
		return out, nil
	}

	var groups [][]ast.Token
	var current []ast.Token
	for _, arg := range args {
		if arg.Value == "AND" {
			groups = append(groups, current)
			current = nil
			continue
		}
		current = append(current, arg)
	}
	groups = append(groups, current)

	for _, group := range groups {
		if len(group) == 0 {
			continue
		}
		inv, err := UnwrapRunKeyword(ns, group[0], group[1:])
		out = append(out, inv...)
		if err != nil {
			return out, err
		}
	}
	return out, nil
}

// unwrapRunKeywordIf handles "Run Keyword If". args is a condition, a
// name and its arguments, optionally followed by ELSE IF branches (each
// with a fresh condition) and one ELSE branch (without).
func unwrapRunKeywordIf(ns namespace.Namespace, args []ast.Token) ([]Invocation, error) {
	if len(args) < 2 {
		return nil, nil
	}
	name := args[1]
	rest := args[2:]

	branch := rest
	marker := -1
	for i, arg := range rest {
		if arg.Value == "ELSE" || arg.Value == "ELSE IF" {
			branch = rest[:i]
			marker = i
			break
		}
	}

	out, err := UnwrapRunKeyword(ns, name, branch)
	if err != nil || marker < 0 {
		return out, err
	}

	if rest[marker].Value == "ELSE IF" {
		more, err := unwrapRunKeywordIf(ns, rest[marker+1:])
		return append(out, more...), err
	}

	tail := rest[marker+1:]
	if len(tail) == 0 {
		return out, nil
	}
	more, err := UnwrapRunKeyword(ns, tail[0], tail[1:])
	return append(out, more...), err
}

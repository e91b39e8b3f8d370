package namespace

import "github.com/go-robot-tools/go-robot-lsp/internal/ast"

// VariableKind classifies where a variable definition comes from.
type VariableKind int

const (
	// VariableSuite is a definition from a variable section.
	VariableSuite VariableKind = iota

	// VariableLocal is an assignment inside a test or keyword body.
	VariableLocal

	// VariableArgument is a keyword argument.
	VariableArgument

	// VariableImported comes from a variables import.
	VariableImported

	// VariableCommandLine comes from the launch configuration.
	VariableCommandLine

	// VariableBuiltIn is one of the predefined variables.
	VariableBuiltIn

	// VariableEnvironment is an environment variable reference.
	VariableEnvironment
)

var variableKindNames = map[VariableKind]string{
	VariableSuite:       "Suite",
	VariableLocal:       "Local",
	VariableArgument:    "Argument",
	VariableImported:    "Imported",
	VariableCommandLine: "CommandLine",
	VariableBuiltIn:     "BuiltIn",
	VariableEnvironment: "Environment",
}

func (k VariableKind) String() string {
	if name, ok := variableKindNames[k]; ok {
		return name
	}
	return "VariableKind(?)"
}

// IsScopeLimited reports whether definitions of this kind are only visible
// inside their defining file, so searches never leave that document.
func (k VariableKind) IsScopeLimited() bool {
	return k == VariableLocal || k == VariableArgument
}

// VariableDefinition describes one variable definition.
type VariableDefinition struct {
	// Name is the decorated name, such as "${host}".
	Name string

	// Kind classifies the definition.
	Kind VariableKind

	// Source is the absolute path of the defining file.
	Source string

	// Range is the span of the name at the definition site.
	Range ast.Range

	// Scope is the block the definition is visible in. The zero range
	// means the whole file.
	Scope ast.Range
}

// SameVariable reports whether a and b describe the same variable
// definition, falling back to name, source and range for values from
// distinct index builds.
func SameVariable(a, b *VariableDefinition) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a.Name == b.Name && a.Kind == b.Kind && a.Source == b.Source && a.Range == b.Range
}

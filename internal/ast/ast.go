// Package ast defines the syntax-tree model produced by a Robot Framework
// parser and the traversal and token utilities the analysis layer builds on.
// The parser itself is an external collaborator; any parser that produces
// this model can drive the server.
package ast

import "unicode/utf8"

// File extensions recognized for workspace-wide searches.
const (
	// RobotExtension is the extension of suite files.
	RobotExtension = ".robot"

	// ResourceExtension is the extension of resource files.
	ResourceExtension = ".resource"
)

// Extensions returns the file extensions of all recognized script files.
func Extensions() []string {
	return []string{RobotExtension, ResourceExtension}
}

// Position is a zero-based line/column location in a document.
// Columns count runes, matching the tokenizer's offsets.
type Position struct {
	Line int
	Col  int
}

// Before reports whether p is strictly before other.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// InRange reports whether p lies within r (start inclusive, end exclusive).
func (p Position) InRange(r Range) bool {
	return r.Contains(p)
}

// Range is a half-open [Start, End) span in a document.
type Range struct {
	Start Position
	End   Position
}

// Contains reports whether pos lies within r (start inclusive, end exclusive).
func (r Range) Contains(pos Position) bool {
	return !pos.Before(r.Start) && pos.Before(r.End)
}

// IsZero reports whether r is the zero range.
func (r Range) IsZero() bool {
	return r == Range{}
}

// TokenType classifies the tokens a statement carries.
type TokenType int

const (
	// TokenNone is the zero token type.
	TokenNone TokenType = iota

	// TokenKeyword is the invocation target of a keyword call.
	TokenKeyword

	// TokenName is the target name of a fixture or template setting.
	TokenName

	// TokenArgument is an argument cell of a statement.
	TokenArgument

	// TokenKeywordName is the header name of a keyword definition.
	TokenKeywordName

	// TokenTestCaseName is the header name of a test case.
	TokenTestCaseName

	// TokenVariable is a variable reference or definition.
	TokenVariable

	// TokenSeparator is whitespace between cells.
	TokenSeparator

	// TokenComment is a trailing or standalone comment.
	TokenComment
)

// Token is a single lexical cell of a statement.
type Token struct {
	Type  TokenType
	Value string
	Pos   Position
}

// Range returns the source span covered by the token. The span never
// crosses a line; columns count runes.
func (t Token) Range() Range {
	return Range{
		Start: t.Pos,
		End:   Position{Line: t.Pos.Line, Col: t.Pos.Col + utf8.RuneCountInString(t.Value)},
	}
}

// Node is any element of the syntax tree.
type Node interface {
	Kind() Kind
	Range() Range
}

// Container is a node holding child nodes (the file, sections, and
// test/keyword blocks).
type Container interface {
	Node
	Children() []Node
}

// Statement is a single logical line of a script together with its tokens.
// The statement's Kind tags the construct it represents; handlers that only
// care about a base abstraction (any fixture, any statement) resolve through
// the kind's base chain instead of matching every concrete kind.
type Statement struct {
	StmtKind Kind
	Toks     []Token
}

// Kind returns the statement's construct kind.
func (s *Statement) Kind() Kind { return s.StmtKind }

// Tokens returns the statement's tokens in source order.
func (s *Statement) Tokens() []Token { return s.Toks }

// Range returns the span from the first to the last token.
func (s *Statement) Range() Range {
	if len(s.Toks) == 0 {
		return Range{}
	}
	return Range{
		Start: s.Toks[0].Range().Start,
		End:   s.Toks[len(s.Toks)-1].Range().End,
	}
}

// GetToken returns the first token matching any of the given types, or nil.
// Types are tried in token order, mirroring how fixture and template
// statements expose "the name cell, wherever it lexed".
func (s *Statement) GetToken(types ...TokenType) *Token {
	for i := range s.Toks {
		for _, tt := range types {
			if s.Toks[i].Type == tt {
				return &s.Toks[i]
			}
		}
	}
	return nil
}

// GetTokens returns all tokens matching any of the given types, in order.
func (s *Statement) GetTokens(types ...TokenType) []Token {
	var out []Token
	for _, tok := range s.Toks {
		for _, tt := range types {
			if tok.Type == tt {
				out = append(out, tok)
				break
			}
		}
	}
	return out
}

// Block is a section, test case, or keyword body. The first element of a
// test or keyword block is its name statement.
type Block struct {
	BlockKind Kind
	Body      []Node
}

// Kind returns the block's kind.
func (b *Block) Kind() Kind { return b.BlockKind }

// Children returns the block's body nodes.
func (b *Block) Children() []Node { return b.Body }

// Range returns the union of the block's children spans.
func (b *Block) Range() Range { return unionRange(b.Body) }

// Name returns the value of the block's header name token, or "".
func (b *Block) Name() string {
	if len(b.Body) == 0 {
		return ""
	}
	header, ok := b.Body[0].(*Statement)
	if !ok {
		return ""
	}
	if tok := header.GetToken(TokenKeywordName, TokenTestCaseName); tok != nil {
		return tok.Value
	}
	return ""
}

// File is the root of a parsed script.
type File struct {
	// Source is the absolute path of the parsed file.
	Source string
	Body   []Node
}

// Kind returns KindFile.
func (f *File) Kind() Kind { return KindFile }

// Children returns the file's sections.
func (f *File) Children() []Node { return f.Body }

// Range returns the union of the file's section spans.
func (f *File) Range() Range { return unionRange(f.Body) }

func unionRange(nodes []Node) Range {
	var r Range
	for _, n := range nodes {
		nr := n.Range()
		if nr.IsZero() {
			continue
		}
		if r.IsZero() {
			r = nr
			continue
		}
		if nr.Start.Before(r.Start) {
			r.Start = nr.Start
		}
		if r.End.Before(nr.End) {
			r.End = nr.End
		}
	}
	return r
}

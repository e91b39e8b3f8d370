//go:build integration
// +build integration

package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
	"github.com/go-robot-tools/go-robot-lsp/internal/builtins"
	"github.com/go-robot-tools/go-robot-lsp/internal/namespace"
	"github.com/go-robot-tools/go-robot-lsp/internal/server"
)

// The integration tests run the full server assembly on real script
// text. The grammar below is a small stand-in for the external parser:
// one statement per line, cells separated by four spaces, no line
// continuations. It covers exactly what the fixtures use.

const cellSep = "    "

type scriptParser struct{}

func (scriptParser) Parse(ctx context.Context, path string, text string) (*ast.File, error) {
	return parseScript(path, text), nil
}

func parseScript(path, text string) *ast.File {
	file := &ast.File{Source: path}
	var section *ast.Block
	var block *ast.Block

	for line, raw := range strings.Split(text, "\n") {
		trimmed := strings.TrimRight(raw, " \r")
		switch {
		case trimmed == "":
			continue
		case strings.HasPrefix(trimmed, "***"):
			section = &ast.Block{BlockKind: sectionKind(trimmed), Body: []ast.Node{
				stmt(ast.KindStatement, ast.Token{Type: ast.TokenNone, Value: trimmed, Pos: ast.Position{Line: line}}),
			}}
			file.Body = append(file.Body, section)
			block = nil
		case section == nil:
			continue
		case strings.HasPrefix(trimmed, cellSep):
			if block == nil {
				continue
			}
			block.Body = append(block.Body, stmt(ast.KindKeywordCall, cells(line, trimmed, ast.TokenKeyword)...))
		default:
			switch section.Kind() {
			case ast.KindTestCaseSection:
				block = &ast.Block{BlockKind: ast.KindTestCase, Body: []ast.Node{
					stmt(ast.KindTestCaseName, cells(line, trimmed, ast.TokenTestCaseName)...),
				}}
				section.Body = append(section.Body, block)
			case ast.KindKeywordSection:
				block = &ast.Block{BlockKind: ast.KindKeyword, Body: []ast.Node{
					stmt(ast.KindKeywordName, cells(line, trimmed, ast.TokenKeywordName)...),
				}}
				section.Body = append(section.Body, block)
			case ast.KindVariableSection:
				section.Body = append(section.Body, stmt(ast.KindVariable, cells(line, trimmed, ast.TokenVariable)...))
			case ast.KindSettingSection:
				section.Body = append(section.Body, settingStatement(line, trimmed))
			}
		}
	}

	return file
}

func sectionKind(header string) ast.Kind {
	switch strings.ToLower(strings.Trim(header, "* ")) {
	case "test cases", "tasks":
		return ast.KindTestCaseSection
	case "keywords":
		return ast.KindKeywordSection
	case "variables":
		return ast.KindVariableSection
	case "settings":
		return ast.KindSettingSection
	}
	return ast.KindCommentSection
}

// cells splits a line on four-space separators. The first data cell gets
// the given type, the rest are arguments.
func cells(line int, raw string, first ast.TokenType) []ast.Token {
	var toks []ast.Token
	col := 0
	named := false
	for rest := raw; rest != ""; {
		if strings.HasPrefix(rest, cellSep) {
			toks = append(toks, ast.Token{Type: ast.TokenSeparator, Value: cellSep, Pos: ast.Position{Line: line, Col: col}})
			col += len(cellSep)
			rest = rest[len(cellSep):]
			continue
		}
		cell := rest
		if end := strings.Index(rest, cellSep); end >= 0 {
			cell = rest[:end]
		}
		typ := ast.TokenArgument
		if !named {
			typ = first
			named = true
		}
		toks = append(toks, ast.Token{Type: typ, Value: cell, Pos: ast.Position{Line: line, Col: col}})
		col += len(cell)
		rest = rest[len(cell):]
	}
	return toks
}

func settingStatement(line int, raw string) *ast.Statement {
	toks := cells(line, raw, ast.TokenNone)
	kind := ast.KindStatement
	switch toks[0].Value {
	case "Resource":
		kind = ast.KindResourceImport
	case "Library":
		kind = ast.KindLibraryImport
	}
	return stmt(kind, toks...)
}

func stmt(kind ast.Kind, toks ...ast.Token) *ast.Statement {
	return &ast.Statement{StmtKind: kind, Toks: toks}
}

// tableBuilder derives a file's namespace from its model, loading
// resource imports from disk relative to the importing file.
type tableBuilder struct{}

func (b tableBuilder) Build(ctx context.Context, model *ast.File) (namespace.Namespace, error) {
	name := strings.TrimSuffix(filepath.Base(model.Source), filepath.Ext(model.Source))
	table := namespace.NewTable(model.Source, name)
	table.AddLibrary(builtins.Entry())

	for node := range ast.All(model) {
		statement, ok := node.(*ast.Statement)
		if !ok {
			continue
		}
		switch statement.Kind() {
		case ast.KindKeywordName:
			if tok := statement.GetToken(ast.TokenKeywordName); tok != nil {
				table.AddKeyword(&namespace.KeywordDoc{
					Name:    tok.Value,
					LibName: name,
					Source:  model.Source,
					Range:   tok.Range(),
				})
			}
		case ast.KindVariable:
			if tok := statement.GetToken(ast.TokenVariable); tok != nil {
				table.AddVariable(&namespace.VariableDefinition{
					Name:   tok.Value,
					Kind:   namespace.VariableSuite,
					Source: model.Source,
					Range:  tok.Range(),
				})
			}
		case ast.KindResourceImport:
			target := statement.GetToken(ast.TokenArgument)
			if target == nil {
				continue
			}
			entry, err := b.resourceEntry(ctx, model.Source, target.Value)
			if err != nil {
				return nil, err
			}
			if entry != nil {
				table.AddResource(entry)
			}
		}
	}

	return table, nil
}

// resourceEntry parses and builds the imported resource so its keywords
// resolve from the importing file. Missing files import nothing.
func (b tableBuilder) resourceEntry(ctx context.Context, from, target string) (*namespace.LibraryEntry, error) {
	path := target
	if !filepath.IsAbs(path) {
		path = filepath.Join(filepath.Dir(from), target)
	}
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, nil
	}
	ns, err := b.Build(ctx, parseScript(path, string(text)))
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &namespace.LibraryEntry{Name: name, Doc: ns.OwnLibraryDoc()}, nil
}

func setupTestServer(t *testing.T) *server.Server {
	t.Helper()
	srv := server.New(server.WithParser(scriptParser{}), server.WithNamespaceBuilder(tableBuilder{}))
	t.Cleanup(srv.Close)
	return srv
}

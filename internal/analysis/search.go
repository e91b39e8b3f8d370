package analysis

import (
	"context"
	"sync"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"golang.org/x/sync/errgroup"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
	"github.com/go-robot-tools/go-robot-lsp/internal/event"
	"github.com/go-robot-tools/go-robot-lsp/internal/namespace"
)

// findKeywordReferences scans the workspace for invocations resolving to
// kw. Files are scanned concurrently; a file that fails to load is logged
// and skipped so one broken script cannot sink the whole search.
func (e *Engine) findKeywordReferences(ctx context.Context, origin string, kw *namespace.KeywordDoc, includeDeclaration bool) ([]protocol.Location, error) {
	files, err := e.searchFiles(ctx, origin)
	if err != nil {
		return nil, err
	}

	var mu sync.Mutex
	var locations []protocol.Location
	if includeDeclaration && kw.Source != "" {
		locations = append(locations, location(kw.Source, kw.Range))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.searchLimit())
	for _, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found, err := e.keywordReferencesInFile(gctx, file, kw)
			if err != nil {
				if gctx.Err() != nil {
					return err
				}
				e.log.Warningf("skipping %s: %s", file, err.Error())
				return nil
			}
			if len(found) > 0 {
				mu.Lock()
				locations = append(locations, found...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dedupLocations(locations), nil
}

// keywordReferencesInFile returns the invocation sites of kw inside one
// file, including names reached through wrapper arguments.
func (e *Engine) keywordReferencesInFile(ctx context.Context, path string, kw *namespace.KeywordDoc) ([]protocol.Location, error) {
	ns, err := e.models.Namespace(ctx, path)
	if err != nil || ns == nil {
		return nil, err
	}
	if !referencesPossible(ns, kw, path) {
		return nil, nil
	}
	model, err := e.models.Model(ctx, path)
	if err != nil || model == nil {
		return nil, err
	}

	var locations []protocol.Location
	for node := range ast.All(model) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stmt, ok := node.(*ast.Statement)
		if !ok {
			continue
		}
		token, args := invocationTokens(stmt)
		if token == nil {
			continue
		}
		invocations, err := UnwrapRunKeyword(ns, *token, args)
		if err != nil {
			return nil, err
		}
		for _, inv := range invocations {
			found, err := ns.FindKeyword(inv.Name)
			if err != nil {
				return nil, err
			}
			if namespace.Same(found, kw) {
				locations = append(locations, location(path, inv.Token.Range()))
			}
		}
	}
	return locations, nil
}

// invocationTokens extracts the keyword name cell and the argument cells
// of any statement that invokes a keyword. Templates name a keyword but
// pass no call arguments of their own.
func invocationTokens(stmt *ast.Statement) (*ast.Token, []ast.Token) {
	switch stmt.Kind() {
	case ast.KindKeywordCall:
		return stmt.GetToken(ast.TokenKeyword), stmt.GetTokens(ast.TokenArgument)
	case ast.KindSetup, ast.KindTeardown, ast.KindSuiteSetup, ast.KindSuiteTeardown:
		token := stmt.GetToken(ast.TokenName)
		if token == nil || isNoneValue(token.Value) {
			return nil, nil
		}
		return token, stmt.GetTokens(ast.TokenArgument)
	case ast.KindTemplate, ast.KindTestTemplate:
		token := stmt.GetToken(ast.TokenName)
		if token == nil || isNoneValue(token.Value) {
			return nil, nil
		}
		return token, nil
	}
	return nil, nil
}

// referencesPossible reports whether the file can see kw at all: it
// defines it, imports its source, or kw has no source and is visible
// everywhere.
func referencesPossible(ns namespace.Namespace, kw *namespace.KeywordDoc, path string) bool {
	if kw.Source == "" || kw.Source == path {
		return true
	}
	for _, entry := range ns.Resources() {
		if entry.Doc != nil && entry.Doc.Source == kw.Source {
			return true
		}
	}
	for _, entry := range ns.Libraries() {
		if entry.Doc != nil && entry.Doc.Source == kw.Source {
			return true
		}
	}
	return false
}

// findVariableReferences scans for usages of def. Scope-limited kinds
// never leave their defining file, so only that file is scanned.
func (e *Engine) findVariableReferences(ctx context.Context, origin string, def *namespace.VariableDefinition, includeDeclaration bool) ([]protocol.Location, error) {
	var files []string
	if def.Kind.IsScopeLimited() {
		files = []string{def.Source}
		if def.Source == "" {
			files = []string{origin}
		}
	} else {
		var err error
		files, err = e.searchFiles(ctx, origin)
		if err != nil {
			return nil, err
		}
	}

	var mu sync.Mutex
	var locations []protocol.Location

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.searchLimit())
	for _, file := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			found, err := e.variableReferencesInFile(gctx, file, def)
			if err != nil {
				if gctx.Err() != nil {
					return err
				}
				e.log.Warningf("skipping %s: %s", file, err.Error())
				return nil
			}
			if len(found) > 0 {
				mu.Lock()
				locations = append(locations, found...)
				mu.Unlock()
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	locations = dedupLocations(locations)
	declaration := location(def.Source, def.Range)
	if includeDeclaration {
		if def.Source != "" && !containsLocation(locations, declaration) {
			locations = append(locations, declaration)
		}
	} else {
		locations = removeLocation(locations, declaration)
	}
	return locations, nil
}

// variableReferencesInFile returns every token in the file resolving to
// def, the declaration itself included.
func (e *Engine) variableReferencesInFile(ctx context.Context, path string, def *namespace.VariableDefinition) ([]protocol.Location, error) {
	ns, err := e.models.Namespace(ctx, path)
	if err != nil || ns == nil {
		return nil, err
	}
	model, err := e.models.Model(ctx, path)
	if err != nil || model == nil {
		return nil, err
	}

	var locations []protocol.Location
	for node := range ast.All(model) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		stmt, ok := node.(*ast.Statement)
		if !ok {
			continue
		}
		for _, token := range stmt.Tokens() {
			for _, sub := range ast.TokenizeVariables(token) {
				found, err := ns.FindVariable(sub.Value, sub.Pos)
				if err != nil {
					return nil, err
				}
				if namespace.SameVariable(found, def) {
					locations = append(locations, location(path, sub.Range()))
				}
			}
		}
	}
	return locations, nil
}

// searchLimit returns the concurrency of a workspace search.
func (e *Engine) searchLimit() int {
	if e.workers != nil {
		if n := e.workers(); n > 0 {
			return n
		}
	}
	return event.DefaultWorkers()
}

// searchFiles lists the workspace scripts, keeping the origin file in the
// set even when it lies outside every workspace folder.
func (e *Engine) searchFiles(ctx context.Context, origin string) ([]string, error) {
	files, err := e.files.ScriptFiles(ctx)
	if err != nil {
		return nil, err
	}
	for _, file := range files {
		if file == origin {
			return files, nil
		}
	}
	return append(files, origin), nil
}

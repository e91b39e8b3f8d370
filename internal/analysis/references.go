package analysis

import (
	"context"
	"strings"

	"github.com/tliron/commonlog"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
	"github.com/go-robot-tools/go-robot-lsp/internal/namespace"
)

// ReferenceRequest asks for every location referencing the symbol at a
// position.
type ReferenceRequest struct {
	Path               string
	Position           ast.Position
	IncludeDeclaration bool
}

// referenceContext carries one request's resolved inputs through the
// kind handlers.
type referenceContext struct {
	path               string
	model              *ast.File
	ns                 namespace.Namespace
	stmt               *ast.Statement
	pos                ast.Position
	includeDeclaration bool
}

type referenceHandler func(ctx context.Context, rc *referenceContext) ([]protocol.Location, error)

// Engine finds the references of keywords and variables across the
// workspace. It owns a dispatch table keyed by statement kind; statements
// without a handler fall through to variable resolution.
type Engine struct {
	log      commonlog.Logger
	models   ModelProvider
	files    WorkspaceProvider
	workers  func() int
	dispatch *SyntaxDispatch[referenceHandler]
}

// EngineOption configures an Engine.
type EngineOption func(*Engine)

// WithSearchWorkers sets how many files a workspace search scans
// concurrently. The function is read per search, so a changed setting
// applies to the next request. Non-positive values keep the default.
func WithSearchWorkers(workers func() int) EngineOption {
	return func(e *Engine) { e.workers = workers }
}

// NewEngine returns an engine resolving through the given providers.
func NewEngine(models ModelProvider, files WorkspaceProvider, opts ...EngineOption) *Engine {
	e := &Engine{
		log:    commonlog.GetLogger("analysis.references"),
		models: models,
		files:  files,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.dispatch = NewSyntaxDispatch[referenceHandler]()
	e.dispatch.Register(ast.KindKeywordCall, e.keywordCallReferences)
	e.dispatch.Register(ast.KindFixture, e.fixtureReferences)
	e.dispatch.Register(ast.KindTemplate, e.templateReferences)
	e.dispatch.Register(ast.KindTestTemplate, e.templateReferences)
	e.dispatch.Register(ast.KindKeywordName, e.keywordNameReferences)
	return e
}

// Collect is the listener shape of FindReferences, registered against the
// references extension point.
func (e *Engine) Collect(ctx context.Context, req *ReferenceRequest) ([]protocol.Location, error) {
	return e.FindReferences(ctx, req.Path, req.Position, req.IncludeDeclaration)
}

// FindReferences returns every location referencing the symbol at pos in
// the file at path. An unresolvable position yields nil with no error.
func (e *Engine) FindReferences(ctx context.Context, path string, pos ast.Position, includeDeclaration bool) ([]protocol.Location, error) {
	model, err := e.models.Model(ctx, path)
	if err != nil || model == nil {
		return nil, err
	}
	ns, err := e.models.Namespace(ctx, path)
	if err != nil || ns == nil {
		return nil, err
	}

	chain := ast.NodesAtPosition(model, pos)
	var stmt *ast.Statement
	for i := len(chain) - 1; i >= 0; i-- {
		if s, ok := chain[i].(*ast.Statement); ok {
			stmt = s
			break
		}
	}
	if stmt == nil {
		return nil, nil
	}

	rc := &referenceContext{
		path:               path,
		model:              model,
		ns:                 ns,
		stmt:               stmt,
		pos:                pos,
		includeDeclaration: includeDeclaration,
	}

	if handler, ok := e.dispatch.ResolveNode(stmt); ok {
		locations, err := handler(ctx, rc)
		if err != nil || locations != nil {
			return locations, err
		}
	}
	return e.variableReferencesAt(ctx, rc)
}

// keywordCallReferences handles the cursor on a call line, on the call's
// own name or on a keyword name nested in wrapper arguments.
func (e *Engine) keywordCallReferences(ctx context.Context, rc *referenceContext) ([]protocol.Location, error) {
	return e.callTargetReferences(ctx, rc, rc.stmt.GetToken(ast.TokenKeyword))
}

// fixtureReferences handles the cursor on a setup or teardown setting.
func (e *Engine) fixtureReferences(ctx context.Context, rc *referenceContext) ([]protocol.Location, error) {
	token := rc.stmt.GetToken(ast.TokenName)
	if token == nil || isNoneValue(token.Value) {
		return nil, nil
	}
	return e.callTargetReferences(ctx, rc, token)
}

func (e *Engine) callTargetReferences(ctx context.Context, rc *referenceContext, token *ast.Token) ([]protocol.Location, error) {
	if token == nil {
		return nil, nil
	}
	invocations, err := UnwrapRunKeyword(rc.ns, *token, rc.stmt.GetTokens(ast.TokenArgument))
	if err != nil {
		return nil, err
	}
	for _, inv := range invocations {
		if !coversPosition(inv.Token.Range(), rc.pos) {
			continue
		}
		kw, err := rc.ns.FindKeyword(inv.Name)
		if err != nil {
			return nil, err
		}
		if kw == nil {
			return nil, nil
		}
		return e.findKeywordReferences(ctx, rc.path, kw, rc.includeDeclaration)
	}
	return nil, nil
}

// templateReferences handles the cursor on a template setting. Template
// targets are plain names; the wrapper unwrapping never applies.
func (e *Engine) templateReferences(ctx context.Context, rc *referenceContext) ([]protocol.Location, error) {
	token := rc.stmt.GetToken(ast.TokenName)
	if token == nil || isNoneValue(token.Value) {
		return nil, nil
	}
	if !coversPosition(token.Range(), rc.pos) {
		return nil, nil
	}
	if ast.IsVariableValue(token.Value) {
		return nil, nil
	}
	kw, err := rc.ns.FindKeyword(ast.Unescape(token.Value))
	if err != nil || kw == nil {
		return nil, err
	}
	return e.findKeywordReferences(ctx, rc.path, kw, rc.includeDeclaration)
}

// keywordNameReferences handles the cursor on a keyword definition
// header.
func (e *Engine) keywordNameReferences(ctx context.Context, rc *referenceContext) ([]protocol.Location, error) {
	token := rc.stmt.GetToken(ast.TokenKeywordName)
	if token == nil || !coversPosition(token.Range(), rc.pos) {
		return nil, nil
	}
	kw := rc.ns.OwnLibraryDoc().FindKeyword(token.Value)
	if kw == nil {
		return nil, nil
	}
	return e.findKeywordReferences(ctx, rc.path, kw, rc.includeDeclaration)
}

// variableReferencesAt resolves a variable reference under the cursor in
// any statement.
func (e *Engine) variableReferencesAt(ctx context.Context, rc *referenceContext) ([]protocol.Location, error) {
	for _, token := range ast.TokensAtPosition(rc.stmt, rc.pos) {
		for _, sub := range ast.TokenizeVariables(token) {
			if !coversPosition(sub.Range(), rc.pos) {
				continue
			}
			def, err := rc.ns.FindVariable(sub.Value, sub.Pos)
			if err != nil {
				return nil, err
			}
			if def == nil {
				continue
			}
			return e.findVariableReferences(ctx, rc.path, def, rc.includeDeclaration)
		}
	}
	return nil, nil
}

// coversPosition widens containment to the end of the range so a cursor
// just behind the last character still hits the token.
func coversPosition(r ast.Range, pos ast.Position) bool {
	return r.Contains(pos) || pos == r.End
}

func isNoneValue(value string) bool {
	return value == "" || strings.EqualFold(value, "NONE")
}

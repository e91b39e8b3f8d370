package analysis

import (
	"context"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
)

// FoldingRequest asks for the foldable regions of one file.
type FoldingRequest struct {
	Path string
}

// CollectFolding is the listener shape of FoldingRanges, registered
// against the folding extension point.
func (e *Engine) CollectFolding(ctx context.Context, req *FoldingRequest) ([]protocol.FoldingRange, error) {
	return e.FoldingRanges(ctx, req.Path)
}

// FoldingRanges returns one folding range per multi-line block: sections,
// test cases and keyword definitions.
func (e *Engine) FoldingRanges(ctx context.Context, path string) ([]protocol.FoldingRange, error) {
	model, err := e.models.Model(ctx, path)
	if err != nil || model == nil {
		return nil, err
	}

	var ranges []protocol.FoldingRange
	for node := range ast.All(model) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if _, ok := node.(*ast.Block); !ok {
			continue
		}
		r := node.Range()
		if r.IsZero() || r.End.Line <= r.Start.Line {
			continue
		}
		ranges = append(ranges, protocol.FoldingRange{
			StartLine: uint32(r.Start.Line),
			EndLine:   uint32(r.End.Line),
		})
	}
	return ranges, nil
}

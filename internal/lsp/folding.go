package lsp

import (
	"sort"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/go-robot-tools/go-robot-lsp/internal/analysis"
)

// TextDocumentFoldingRange handles the textDocument/foldingRange request.
func (f *Features) TextDocumentFoldingRange(glspCtx *glsp.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	path, ok := documentPath(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	ctx, cancel := f.supersede("textDocument/foldingRange", path)
	defer cancel()

	results, err := f.folding.NotifyAll(ctx, &analysis.FoldingRequest{Path: path})
	if err != nil {
		return nil, err
	}

	var ranges []protocol.FoldingRange
	for _, result := range results {
		if result.Err != nil {
			f.log.Warningf("folding collector failed: %s", result.Err.Error())
			continue
		}
		ranges = append(ranges, result.Value...)
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].StartLine != ranges[j].StartLine {
			return ranges[i].StartLine < ranges[j].StartLine
		}
		return ranges[i].EndLine < ranges[j].EndLine
	})

	return ranges, nil
}

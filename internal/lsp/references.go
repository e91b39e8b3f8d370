package lsp

import (
	"sort"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/go-robot-tools/go-robot-lsp/internal/analysis"
	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
	"github.com/go-robot-tools/go-robot-lsp/internal/event"
)

// TextDocumentReferences handles the textDocument/references request. The
// request fans out to every registered collector; a newer request for the
// same document cancels one still running.
func (f *Features) TextDocumentReferences(glspCtx *glsp.Context, params *protocol.ReferenceParams) ([]protocol.Location, error) {
	path, ok := documentPath(params.TextDocument.URI)
	if !ok {
		return nil, nil
	}

	ctx, cancel := f.supersede("textDocument/references", path)
	defer cancel()

	results, err := f.references.NotifyAll(ctx, &analysis.ReferenceRequest{
		Path: path,
		Position: ast.Position{
			Line: int(params.Position.Line),
			Col:  int(params.Position.Character),
		},
		IncludeDeclaration: params.Context.IncludeDeclaration,
	})
	if err != nil {
		return nil, err
	}

	locations := f.mergeLocations(results)
	sortLocationsByFileAndPosition(locations)

	return locations, nil
}

// mergeLocations flattens collector results, dropping duplicates and
// logging collectors that failed.
func (f *Features) mergeLocations(results []event.Result[[]protocol.Location]) []protocol.Location {
	var locations []protocol.Location
	seen := make(map[protocol.Location]struct{})
	for _, result := range results {
		if result.Err != nil {
			f.log.Warningf("reference collector failed: %s", result.Err.Error())
			continue
		}
		for _, loc := range result.Value {
			if _, ok := seen[loc]; ok {
				continue
			}
			seen[loc] = struct{}{}
			locations = append(locations, loc)
		}
	}
	return locations
}

// sortLocationsByFileAndPosition sorts locations by file, then line, then
// character, so results are stable across collectors.
func sortLocationsByFileAndPosition(locations []protocol.Location) {
	sort.Slice(locations, func(i, j int) bool {
		if locations[i].URI != locations[j].URI {
			return locations[i].URI < locations[j].URI
		}
		if locations[i].Range.Start.Line != locations[j].Range.Start.Line {
			return locations[i].Range.Start.Line < locations[j].Range.Start.Line
		}
		return locations[i].Range.Start.Character < locations[j].Range.Start.Character
	})
}

package analysis

import (
	protocol "github.com/tliron/glsp/protocol_3_16"
	"go.lsp.dev/uri"

	"github.com/go-robot-tools/go-robot-lsp/internal/ast"
)

// location builds a protocol location from a file path and a model range.
func location(path string, r ast.Range) protocol.Location {
	return protocol.Location{
		URI:   string(uri.File(path)),
		Range: protocolRange(r),
	}
}

func protocolRange(r ast.Range) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(r.Start.Line), Character: uint32(r.Start.Col)},
		End:   protocol.Position{Line: uint32(r.End.Line), Character: uint32(r.End.Col)},
	}
}

// dedupLocations drops duplicate locations, keeping first occurrences.
// Wrapper invocations can report the same cell through several paths.
func dedupLocations(locations []protocol.Location) []protocol.Location {
	if len(locations) < 2 {
		return locations
	}
	seen := make(map[protocol.Location]struct{}, len(locations))
	out := locations[:0]
	for _, loc := range locations {
		if _, ok := seen[loc]; ok {
			continue
		}
		seen[loc] = struct{}{}
		out = append(out, loc)
	}
	return out
}

func containsLocation(locations []protocol.Location, loc protocol.Location) bool {
	for _, l := range locations {
		if l == loc {
			return true
		}
	}
	return false
}

func removeLocation(locations []protocol.Location, loc protocol.Location) []protocol.Location {
	out := locations[:0]
	for _, l := range locations {
		if l != loc {
			out = append(out, l)
		}
	}
	return out
}

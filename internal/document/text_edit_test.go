package document

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

const testSuiteText = "*** Test Cases ***\nLogin Works\n    Open Session\n    Login    admin"

func TestApplyContentChange_FullSync(t *testing.T) {
	change := protocol.TextDocumentContentChangeEvent{
		Range: nil,
		Text:  "*** Keywords ***",
	}

	result, err := ApplyContentChange(testSuiteText, change)
	if err != nil {
		t.Fatalf("ApplyContentChange returned error: %v", err)
	}
	if result != "*** Keywords ***" {
		t.Errorf("Result = %q, want the replacement text", result)
	}
}

func TestApplyContentChange_SingleLineReplacement(t *testing.T) {
	// Replace "admin" on the last line with "guest".
	change := protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 3, Character: 13},
			End:   protocol.Position{Line: 3, Character: 18},
		},
		Text: "guest",
	}

	result, err := ApplyContentChange(testSuiteText, change)
	if err != nil {
		t.Fatalf("ApplyContentChange returned error: %v", err)
	}

	expected := "*** Test Cases ***\nLogin Works\n    Open Session\n    Login    guest"
	if result != expected {
		t.Errorf("Result = %q, want %q", result, expected)
	}
}

func TestApplyContentChange_MultiLineReplacement(t *testing.T) {
	// Delete the "Open Session" line entirely.
	change := protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 2, Character: 0},
			End:   protocol.Position{Line: 3, Character: 0},
		},
		Text: "",
	}

	result, err := ApplyContentChange(testSuiteText, change)
	if err != nil {
		t.Fatalf("ApplyContentChange returned error: %v", err)
	}

	expected := "*** Test Cases ***\nLogin Works\n    Login    admin"
	if result != expected {
		t.Errorf("Result = %q, want %q", result, expected)
	}
}

func TestApplyContentChange_Insertion(t *testing.T) {
	// Append a new call at the end of the last line.
	change := protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 3, Character: 18},
			End:   protocol.Position{Line: 3, Character: 18},
		},
		Text: "\n    Logout",
	}

	result, err := ApplyContentChange(testSuiteText, change)
	if err != nil {
		t.Fatalf("ApplyContentChange returned error: %v", err)
	}

	expected := testSuiteText + "\n    Logout"
	if result != expected {
		t.Errorf("Result = %q, want %q", result, expected)
	}
}

func TestApplyContentChange_UTF16Positions(t *testing.T) {
	// "😀" is one rune but two UTF-16 code units, so the replacement
	// range for "x" starts at offset 3.
	original := "😀 x"
	change := protocol.TextDocumentContentChangeEvent{
		Range: &protocol.Range{
			Start: protocol.Position{Line: 0, Character: 3},
			End:   protocol.Position{Line: 0, Character: 4},
		},
		Text: "y",
	}

	result, err := ApplyContentChange(original, change)
	if err != nil {
		t.Fatalf("ApplyContentChange returned error: %v", err)
	}
	if result != "😀 y" {
		t.Errorf("Result = %q, want %q", result, "😀 y")
	}
}

func TestApplyContentChange_OutOfRange(t *testing.T) {
	tests := []struct {
		name  string
		start protocol.Position
		end   protocol.Position
	}{
		{
			name:  "start line past the document",
			start: protocol.Position{Line: 99, Character: 0},
			end:   protocol.Position{Line: 99, Character: 0},
		},
		{
			name:  "start after end",
			start: protocol.Position{Line: 2, Character: 0},
			end:   protocol.Position{Line: 1, Character: 0},
		},
		{
			name:  "character past the line",
			start: protocol.Position{Line: 0, Character: 999},
			end:   protocol.Position{Line: 0, Character: 999},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			change := protocol.TextDocumentContentChangeEvent{
				Range: &protocol.Range{Start: tt.start, End: tt.end},
				Text:  "x",
			}
			if _, err := ApplyContentChange(testSuiteText, change); err == nil {
				t.Error("ApplyContentChange accepted an out-of-range change")
			}
		})
	}
}

func TestApplyChanges(t *testing.T) {
	changes := []any{
		protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 3, Character: 13},
				End:   protocol.Position{Line: 3, Character: 18},
			},
			Text: "guest",
		},
		protocol.TextDocumentContentChangeEvent{
			Range: &protocol.Range{
				Start: protocol.Position{Line: 1, Character: 0},
				End:   protocol.Position{Line: 1, Character: 5},
			},
			Text: "Logout",
		},
	}

	result, err := ApplyChanges(testSuiteText, changes)
	if err != nil {
		t.Fatalf("ApplyChanges returned error: %v", err)
	}

	expected := "*** Test Cases ***\nLogout Works\n    Open Session\n    Login    guest"
	if result != expected {
		t.Errorf("Result = %q, want %q", result, expected)
	}
}

func TestApplyChangesWholeDocument(t *testing.T) {
	changes := []any{
		protocol.TextDocumentContentChangeEventWhole{Text: "*** Variables ***"},
	}

	result, err := ApplyChanges(testSuiteText, changes)
	if err != nil {
		t.Fatalf("ApplyChanges returned error: %v", err)
	}
	if result != "*** Variables ***" {
		t.Errorf("Result = %q, want the whole-document replacement", result)
	}
}

func TestApplyChangesUnsupportedType(t *testing.T) {
	if _, err := ApplyChanges(testSuiteText, []any{42}); err == nil {
		t.Error("ApplyChanges accepted an unsupported change type")
	}
}

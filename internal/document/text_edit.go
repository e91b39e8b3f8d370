package document

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// ApplyChanges applies a didChange notification's content changes to text
// in order. Each change is either an incremental event with a range or a
// whole-document replacement.
func ApplyChanges(text string, changes []any) (string, error) {
	for _, change := range changes {
		switch c := change.(type) {
		case protocol.TextDocumentContentChangeEvent:
			updated, err := ApplyContentChange(text, c)
			if err != nil {
				return "", err
			}
			text = updated
		case protocol.TextDocumentContentChangeEventWhole:
			text = c.Text
		default:
			return "", fmt.Errorf("unsupported content change type %T", change)
		}
	}
	return text, nil
}

// ApplyContentChange applies one content change to text. Positions in the
// change are UTF-16 code unit offsets, as the protocol defines them.
func ApplyContentChange(text string, change protocol.TextDocumentContentChangeEvent) (string, error) {
	if change.Range == nil {
		return change.Text, nil
	}

	lines := strings.Split(text, "\n")

	startLine := int(change.Range.Start.Line)
	startChar := int(change.Range.Start.Character)
	endLine := int(change.Range.End.Line)
	endChar := int(change.Range.End.Character)

	if startLine < 0 || startLine >= len(lines) {
		return "", fmt.Errorf("start line %d out of range (0-%d)", startLine, len(lines)-1)
	}
	if endLine < 0 || endLine >= len(lines) {
		return "", fmt.Errorf("end line %d out of range (0-%d)", endLine, len(lines)-1)
	}
	if startLine > endLine {
		return "", fmt.Errorf("start line %d after end line %d", startLine, endLine)
	}

	startByte, err := utf16OffsetToByteOffset(lines[startLine], startChar)
	if err != nil {
		return "", fmt.Errorf("invalid start position: %w", err)
	}
	endByte, err := utf16OffsetToByteOffset(lines[endLine], endChar)
	if err != nil {
		return "", fmt.Errorf("invalid end position: %w", err)
	}

	var result strings.Builder
	for i := range startLine {
		result.WriteString(lines[i])
		result.WriteString("\n")
	}
	result.WriteString(lines[startLine][:startByte])
	result.WriteString(change.Text)
	result.WriteString(lines[endLine][endByte:])
	for i := endLine + 1; i < len(lines); i++ {
		result.WriteString("\n")
		result.WriteString(lines[i])
	}

	return result.String(), nil
}

// utf16OffsetToByteOffset converts a UTF-16 code unit offset to a UTF-8
// byte offset within line. An offset just past the end of the line is
// valid for insertions.
func utf16OffsetToByteOffset(line string, utf16Offset int) (int, error) {
	if utf16Offset == 0 {
		return 0, nil
	}

	utf16Units := utf16.Encode([]rune(line))
	if utf16Offset > len(utf16Units) {
		return 0, fmt.Errorf("UTF-16 offset %d exceeds line length %d", utf16Offset, len(utf16Units))
	}
	if utf16Offset == len(utf16Units) {
		return len(line), nil
	}

	byteOffset := 0
	utf16Count := 0
	for _, r := range line {
		if utf16Count >= utf16Offset {
			break
		}
		// Runes beyond the BMP take a surrogate pair.
		if r <= 0xFFFF {
			utf16Count++
		} else {
			utf16Count += 2
		}
		byteOffset += utf8.RuneLen(r)
	}

	return byteOffset, nil
}

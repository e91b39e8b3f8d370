package ast

import (
	"strconv"
	"strings"
)

// Unescape resolves backslash escapes in a cell value. It handles the
// character escapes \n, \r and \t, the code point escapes \xhh, \uhhhh and
// \Uhhhhhhhh, and drops the backslash in front of any other character. A
// trailing lone backslash stays as is.
func Unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '\\' {
			b.WriteRune(runes[i])
			continue
		}
		if i == len(runes)-1 {
			b.WriteRune('\\')
			break
		}
		i++
		switch runes[i] {
		case 'n':
			b.WriteRune('\n')
		case 'r':
			b.WriteRune('\r')
		case 't':
			b.WriteRune('\t')
		case 'x':
			i = writeCodePoint(&b, runes, i, 2)
		case 'u':
			i = writeCodePoint(&b, runes, i, 4)
		case 'U':
			i = writeCodePoint(&b, runes, i, 8)
		default:
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

// writeCodePoint decodes the n hex digits following runes[i] and writes the
// code point. When fewer digits are present the escape is not valid and the
// introducing character is written verbatim.
func writeCodePoint(b *strings.Builder, runes []rune, i, n int) int {
	if i+n >= len(runes) {
		b.WriteRune(runes[i])
		return i
	}
	code, err := strconv.ParseUint(string(runes[i+1:i+1+n]), 16, 32)
	if err != nil {
		b.WriteRune(runes[i])
		return i
	}
	b.WriteRune(rune(code))
	return i + n
}

package ast

// isVariableSigil reports whether r starts a variable when followed by "{".
func isVariableSigil(r rune) bool {
	return r == '$' || r == '@' || r == '&' || r == '%'
}

// TokenizeVariables returns the variable references appearing in the
// token's value, as TokenVariable tokens positioned within the original
// token. Nested references stay inside their enclosing token, and a
// reference behind an odd number of backslashes is escaped text, not a
// variable.
func TokenizeVariables(tok Token) []Token {
	var out []Token
	runes := []rune(tok.Value)
	backslashes := 0
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		if r == '\\' {
			backslashes++
			continue
		}
		if isVariableSigil(r) && i+1 < len(runes) && runes[i+1] == '{' && backslashes%2 == 0 {
			if end, ok := matchBraces(runes, i+1); ok {
				out = append(out, Token{
					Type:  TokenVariable,
					Value: string(runes[i : end+1]),
					Pos:   Position{Line: tok.Pos.Line, Col: tok.Pos.Col + i},
				})
				i = end
				backslashes = 0
				continue
			}
		}
		backslashes = 0
	}
	return out
}

// matchBraces returns the index of the brace closing the one at open,
// counting nested braces. ok is false when the brace never closes.
func matchBraces(runes []rune, open int) (end int, ok bool) {
	depth := 0
	for i := open; i < len(runes); i++ {
		switch runes[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i, true
			}
		}
	}
	return 0, false
}

// IsVariableValue reports whether s is exactly one variable reference,
// such as "${name}" or "@{items}". Text around the reference, including
// item subscripts, makes the value a template instead.
func IsVariableValue(s string) bool {
	runes := []rune(s)
	if len(runes) < 3 {
		return false
	}
	if !isVariableSigil(runes[0]) || runes[1] != '{' {
		return false
	}
	end, ok := matchBraces(runes, 1)
	return ok && end == len(runes)-1
}

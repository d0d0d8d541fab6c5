package expr

import "unicode"

// matcher attempts to read one token at pos. ok reports whether the cursor advanced.
type matcher func(input []rune, pos int) (tok Token, next int, ok bool, err error)

// matchers are tried in this order against the cursor as it advances within one scan pass
var matchers = []matcher{
	matchNumber,
	matchOperator,
	matchParen,
	matchVariable,
}

func skipWhitespace(input []rune, pos int) int {
	for pos < len(input) && unicode.IsSpace(input[pos]) {
		pos++
	}
	return pos
}

func matchNumber(input []rune, pos int) (Token, int, bool, error) {
	i := skipWhitespace(input, pos)
	start := i

	number := 0.0
	for i < len(input) && input[i] >= '0' && input[i] <= '9' {
		number = number*10 + float64(input[i]-'0')
		i++
	}

	if i == start {
		return Token{}, pos, false, nil
	}
	return Num(number), i, true, nil
}

func matchOperator(input []rune, pos int) (Token, int, bool, error) {
	i := skipWhitespace(input, pos)
	start := i
	for i < len(input) && isOperatorChar(input[i]) {
		i++
	}

	if i == start {
		return Token{}, pos, false, nil
	}

	run := string(input[start:i])
	op, known := operatorFromString(run)
	if !known {
		return Token{}, pos, false, &TokenizeError{Input: run}
	}
	return Op(op), i, true, nil
}

func matchParen(input []rune, pos int) (Token, int, bool, error) {
	i := skipWhitespace(input, pos)
	if i >= len(input) {
		return Token{}, pos, false, nil
	}

	switch input[i] {
	case '(':
		return LParen, i + 1, true, nil
	case ')':
		return RParen, i + 1, true, nil
	default:
		return Token{}, pos, false, nil
	}
}

func matchVariable(input []rune, pos int) (Token, int, bool, error) {
	i := skipWhitespace(input, pos)
	start := i
	for i < len(input) && (unicode.IsLetter(input[i]) || input[i] == '_') {
		i++
	}

	if i == start {
		return Token{}, pos, false, nil
	}
	return Var(string(input[start:i])), i, true, nil
}

// Tokenize splits text into tokens, returning the first error encountered
func Tokenize(text string) ([]Token, error) {
	input := []rune(text)
	tokens := make([]Token, 0, len(input))

	pos := 0
	for {
		pos = skipWhitespace(input, pos)
		if pos >= len(input) {
			return tokens, nil
		}

		found := false
		for _, match := range matchers {
			tok, next, ok, err := match(input, pos)
			if err != nil {
				return nil, err
			}
			if ok {
				tokens = append(tokens, tok)
				pos = next
				found = true
			}
		}

		if !found {
			return nil, &TokenizeError{Input: string(input[pos:]), stuck: true}
		}
	}
}

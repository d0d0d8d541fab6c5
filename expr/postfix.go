package expr

// ToPostfix tokenizes text and reorders the tokens into postfix form.
//
// An operator only pops operators of strictly greater precedence before being pushed,
// so chains of equal-precedence operators group to the right: 8-2-1 is 8-(2-1).
func ToPostfix(text string) ([]Token, error) {
	tokens, err := Tokenize(text)
	if err != nil {
		return nil, err
	}
	return tokensToPostfix(tokens)
}

func tokensToPostfix(tokens []Token) ([]Token, error) {
	post := make([]Token, 0, len(tokens))
	ops := newTokenStack(len(tokens) + 1)

	// The sentinel pair flushes every remaining operator when the closing sentinel is processed
	ops.Push(LParen)
	tokens = append(tokens[:len(tokens):len(tokens)], RParen)

	for _, tok := range tokens {
		switch tok.Type {
		case TokenNumber, TokenVariable:
			post = append(post, tok)

		case TokenOperator:
			for {
				top, ok := ops.Peek()
				if !ok || top.Type != TokenOperator || top.Op.Precedence() <= tok.Op.Precedence() {
					break
				}
				ops.Pop()
				post = append(post, top)
			}
			ops.Push(tok)

		case TokenLParen:
			ops.Push(tok)

		case TokenRParen:
			for {
				top, ok := ops.Pop()
				if !ok {
					return nil, &SyntaxError{Msg: "unbalanced parentheses: unexpected )"}
				}
				if top.Type == TokenLParen {
					break
				}
				post = append(post, top)
			}
		}
	}

	if ops.Size() > 0 {
		return nil, &SyntaxError{Msg: "unbalanced parentheses: unclosed ("}
	}

	return post, nil
}

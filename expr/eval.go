package expr

import "fmt"

// Evaluate parses text and computes its value
func Evaluate(text string) (float64, error) {
	post, err := ToPostfix(text)
	if err != nil {
		return 0, err
	}
	return EvaluatePostfix(post)
}

// EvaluatePostfix computes the value of a postfix token sequence using an operand stack
func EvaluatePostfix(post []Token) (float64, error) {
	values := newFloatStack(len(post))

	for _, tok := range post {
		switch tok.Type {
		case TokenNumber:
			values.Push(tok.Number)

		case TokenOperator:
			b, err := values.Pop()
			if err != nil {
				return 0, err
			}
			a, err := values.Pop()
			if err != nil {
				return 0, err
			}

			result, err := tok.Op.Apply(a, b)
			if err != nil {
				return 0, err
			}
			values.Push(result)

		case TokenVariable:
			return 0, &EvaluationError{Msg: fmt.Sprintf("variable %q has no value", tok.Name)}

		default:
			return 0, &EvaluationError{Msg: fmt.Sprintf("unexpected token %s in postfix sequence", tok)}
		}
	}

	if values.Size() == 0 {
		return 0, &EvaluationError{Msg: "no result"}
	}
	// Trailing operands beyond the top are ignored, e.g. "1 2" evaluates to 2
	return values.Pop()
}

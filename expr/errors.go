package expr

import "fmt"

// TokenizeError reports text the tokenizer could not consume
type TokenizeError struct {
	// Input is the offending operator run, or the unconsumed remainder when the tokenizer got stuck
	Input string
	stuck bool
}

func (e *TokenizeError) Error() string {
	if e.stuck {
		return fmt.Sprintf("stuck tokenizing: %q", e.Input)
	}
	return fmt.Sprintf("invalid operator sequence %q", e.Input)
}

// SyntaxError reports structurally invalid token sequences, such as unbalanced parentheses
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// EvaluationError reports a failure while evaluating a postfix sequence
type EvaluationError struct {
	Msg string
}

func (e *EvaluationError) Error() string {
	return "evaluation error: " + e.Msg
}

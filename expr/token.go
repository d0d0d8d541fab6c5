package expr

import (
	"fmt"
	"math"
	"strconv"
)

// Operator is one of the arithmetic operators understood by the parser
type Operator int8

const (
	OpAdd Operator = iota
	OpSub
	OpDiv
	OpMul
	OpExp

	// OpUnaryNeg is reserved for prefix negation. The tokenizer never emits it,
	// and it has no binary semantics.
	OpUnaryNeg
)

var operatorSymbols = map[string]Operator{
	"+":  OpAdd,
	"-":  OpSub,
	"/":  OpDiv,
	"*":  OpMul,
	"**": OpExp,
}

func operatorFromString(s string) (Operator, bool) {
	op, ok := operatorSymbols[s]
	return op, ok
}

func isOperatorChar(c rune) bool {
	switch c {
	case '+', '-', '/', '*':
		return true
	default:
		return false
	}
}

// Precedence returns the binding strength of op; higher binds tighter
func (op Operator) Precedence() int {
	switch op {
	case OpAdd, OpSub:
		return 0
	case OpDiv, OpMul:
		return 1
	case OpExp:
		return 2
	case OpUnaryNeg:
		return 3
	default:
		panic(fmt.Sprintf("unknown operator %d", op))
	}
}

// Apply evaluates the binary form of op with a as the left operand and b as the right.
// Division follows IEEE semantics, so division by zero yields ±Inf or NaN rather than an error.
func (op Operator) Apply(a, b float64) (float64, error) {
	switch op {
	case OpAdd:
		return a + b, nil
	case OpSub:
		return a - b, nil
	case OpDiv:
		return a / b, nil
	case OpMul:
		return a * b, nil
	case OpExp:
		return powTruncated(a, b), nil
	case OpUnaryNeg:
		return 0, &EvaluationError{Msg: fmt.Sprintf("%s is not a binary operation", op)}
	default:
		return 0, &EvaluationError{Msg: fmt.Sprintf("unknown operator %d", op)}
	}
}

func (op Operator) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpDiv:
		return "/"
	case OpMul:
		return "*"
	case OpExp:
		return "**"
	case OpUnaryNeg:
		return "neg"
	default:
		return "?"
	}
}

// powTruncated raises a to b truncated toward zero to a non-negative integer.
// Negative and NaN exponents become 0; exponents beyond the uint64 range saturate.
func powTruncated(a, b float64) float64 {
	var n uint64
	switch {
	case math.IsNaN(b) || b <= 0:
		n = 0
	case b >= math.MaxUint64:
		n = math.MaxUint64
	default:
		n = uint64(b)
	}

	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= a
		}
		a *= a
		n >>= 1
	}
	return result
}

type TokenType int8

const (
	TokenNumber TokenType = iota
	TokenOperator
	TokenVariable
	TokenLParen
	TokenRParen
)

// Token is a single lexical unit. Only the field matching Type is meaningful.
type Token struct {
	Type   TokenType
	Number float64
	Op     Operator
	Name   string
}

var (
	LParen = Token{Type: TokenLParen}
	RParen = Token{Type: TokenRParen}
)

func Num(n float64) Token {
	return Token{Type: TokenNumber, Number: n}
}

func Op(op Operator) Token {
	return Token{Type: TokenOperator, Op: op}
}

func Var(name string) Token {
	return Token{Type: TokenVariable, Name: name}
}

func (t Token) String() string {
	switch t.Type {
	case TokenNumber:
		return strconv.FormatFloat(t.Number, 'g', -1, 64)
	case TokenOperator:
		return t.Op.String()
	case TokenVariable:
		return t.Name
	case TokenLParen:
		return "("
	case TokenRParen:
		return ")"
	default:
		return "?"
	}
}

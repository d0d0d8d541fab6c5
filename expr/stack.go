package expr

type tokenStack struct {
	stack []Token
}

func newTokenStack(capacity int) *tokenStack {
	return &tokenStack{stack: make([]Token, 0, capacity)}
}

func (s *tokenStack) Push(t Token) {
	s.stack = append(s.stack, t)
}

func (s *tokenStack) Pop() (Token, bool) {
	if len(s.stack) == 0 {
		return Token{}, false
	}

	t := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return t, true
}

func (s *tokenStack) Peek() (Token, bool) {
	if len(s.stack) == 0 {
		return Token{}, false
	}
	return s.stack[len(s.stack)-1], true
}

func (s *tokenStack) Size() int {
	return len(s.stack)
}

type floatStack struct {
	stack []float64
}

func newFloatStack(capacity int) *floatStack {
	return &floatStack{stack: make([]float64, 0, capacity)}
}

func (s *floatStack) Push(v float64) {
	s.stack = append(s.stack, v)
}

func (s *floatStack) Pop() (float64, error) {
	if len(s.stack) == 0 {
		return 0, &EvaluationError{Msg: "premature stack end"}
	}

	v := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return v, nil
}

func (s *floatStack) Size() int {
	return len(s.stack)
}

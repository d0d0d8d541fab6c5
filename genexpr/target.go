package genexpr

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/gval"
)

// TargetError reports a target that could not be turned into a finite number
type TargetError struct {
	Text string
	Err  error
}

func (e *TargetError) Error() string {
	return fmt.Sprintf("invalid target %q: %v", e.Text, e.Err)
}

func (e *TargetError) Unwrap() error {
	return e.Err
}

// ParseTarget reads a target number, given either as a decimal literal or a constant
// arithmetic expression such as "2**10"
func ParseTarget(text string) (float64, error) {
	if strings.TrimSpace(text) == "" {
		return 0, &TargetError{Text: text, Err: errors.New("empty")}
	}

	value, err := gval.Evaluate(text, nil, gval.Arithmetic())
	if err != nil {
		return 0, &TargetError{Text: text, Err: err}
	}

	target, isFloat := value.(float64)
	if !isFloat {
		return 0, &TargetError{Text: text, Err: fmt.Errorf("expected a number, got %T", value)}
	}
	if math.IsNaN(target) || math.IsInf(target, 0) {
		return 0, &TargetError{Text: text, Err: fmt.Errorf("%v is not finite", target)}
	}
	return target, nil
}

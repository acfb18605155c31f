package daybook

import (
	"fmt"
	"math"
	"strings"

	"github.com/PaesslerAG/gval"
)

// amountLang is the restricted language used to evaluate amount expressions:
// plain arithmetic only, no identifiers, no function calls, no assignment.
var amountLang = gval.Arithmetic()

// sanitizeAmount keeps only decimal digits, decimal points, arithmetic
// operators and parentheses. Everything else ("$", spaces, currency codes,
// stray letters) is discarded before evaluation.
func sanitizeAmount(expr string) string {
	var b strings.Builder
	for _, r := range expr {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '+' || r == '-' || r == '*' || r == '/' || r == '(' || r == ')':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// EvalAmount evaluates an amount input string as a simple arithmetic
// expression and returns the resulting Amount.
//
// It accepts plain literals ("10", "42.50") as well as simple arithmetic
// ("10+20+5", "3*(2+1)"). The result must be a positive finite number,
// anything else is a ValidationError.
func EvalAmount(expr string) (Amount, error) {
	clean := sanitizeAmount(expr)
	if clean == "" {
		return Amount{}, validationf("amount %q is empty or has no numeric content", expr)
	}

	val, err := amountLang.Evaluate(clean, nil)
	if err != nil {
		return Amount{}, validationf("amount %q is not a valid arithmetic expression: %v", expr, err)
	}
	f, ok := val.(float64)
	if !ok {
		return Amount{}, validationf("amount %q does not evaluate to a number, got %T", expr, val)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Amount{}, validationf("amount %q does not evaluate to a finite number", expr)
	}
	a := A(f)
	if !a.IsPositive() {
		return Amount{}, validationf("amount %q must be positive, got %s", expr, a)
	}
	return a, nil
}

func validationf(format string, args ...any) *ValidationError {
	return &ValidationError{msg: fmt.Sprintf(format, args...)}
}

package daybook

import (
	"testing"
)

func TestEvalAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    float64
		wantErr bool
	}{
		{in: "10", want: 10},
		{in: "42.50", want: 42.50},
		{in: "10+20+5", want: 35},
		{in: "3*(2+1)", want: 9},
		{in: "10/4", want: 2.5},
		{in: " 12 + 8 ", want: 20},
		// Everything that is not a digit, dot, operator or parenthesis is
		// discarded before evaluation.
		{in: "$1,200", want: 1200},
		{in: "15 EUR", want: 15},
		{in: "", wantErr: true},
		{in: "lunch", wantErr: true},
		{in: "0", wantErr: true},        // non-positive
		{in: "10-20", wantErr: true},    // negative
		{in: "10/0", wantErr: true},     // not finite
		{in: "1..2", wantErr: true},     // malformed
		{in: "(", wantErr: true},        // malformed
		{in: "alert(1)", want: 1},       // identifiers are discarded, "(1)" remains
		{in: "system()", wantErr: true}, // sanitized to "()", malformed
		{in: "1e9", want: 19},           // "e" is discarded, no exponent syntax
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := EvalAmount(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("EvalAmount(%q) = %s, want error", tc.in, got)
				}
				if !IsValidation(err) {
					t.Errorf("EvalAmount(%q) error = %v, want a ValidationError", tc.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("EvalAmount(%q) error = %v", tc.in, err)
			}
			if want := A(tc.want); !got.Equal(want) {
				t.Errorf("EvalAmount(%q) = %s, want %s", tc.in, got, want)
			}
		})
	}
}

func TestEvalAmount_noCodeExecution(t *testing.T) {
	// The evaluator must never see identifiers or calls: after sanitization
	// only digits, dots, operators and parentheses remain.
	got := sanitizeAmount(`alert("pwned"); eval(x) 10`)
	for _, r := range got {
		switch {
		case r >= '0' && r <= '9':
		case r == '.' || r == '+' || r == '-' || r == '*' || r == '/' || r == '(' || r == ')':
		default:
			t.Fatalf("sanitizeAmount left %q in %q", r, got)
		}
	}
}

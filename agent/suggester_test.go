package agent

import (
	"testing"

	"github.com/etnz/daybook"
)

func TestParseSuggestion(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Food", want: "Food"},
		{in: "food", want: "Food"},
		{in: " Transport.\n", want: "Transport"},
		{in: `"Salary"`, want: "Salary"},
		{in: "Groceries", want: daybook.DefaultCategory},
		{in: "I think this is Food", want: daybook.DefaultCategory},
		{in: "", want: daybook.DefaultCategory},
	}
	for _, tc := range tests {
		if got := ParseSuggestion(tc.in); got != tc.want {
			t.Errorf("ParseSuggestion(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

package date

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestNew_normalizes(t *testing.T) {
	// January 32 rolls over to February 1.
	got := New(2024, time.January, 32)
	want := New(2024, time.February, 1)
	if got != want {
		t.Errorf("New(2024, January, 32) = %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-05", want: New(2024, time.January, 5)},
		{in: "2024-1-5", want: New(2024, time.January, 5)},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := Parse(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if err == nil && got != tc.want {
				t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestString_isLexicallyOrdered(t *testing.T) {
	// The fixed-width zero-padded format is what makes string comparison on
	// day keys valid throughout the ledger.
	a := New(2024, time.September, 9)
	b := New(2024, time.October, 1)
	if !(a.String() < b.String()) {
		t.Errorf("expected %q < %q", a, b)
	}
	if a.String() != "2024-09-09" {
		t.Errorf("String() = %q, want zero-padded form", a.String())
	}
}

func TestFromUnixMilli(t *testing.T) {
	ms := time.Date(2024, time.January, 5, 23, 59, 0, 0, time.UTC).UnixMilli()
	if got := FromUnixMilli(ms); got != New(2024, time.January, 5) {
		t.Errorf("FromUnixMilli(%d) = %v, want 2024-01-05", ms, got)
	}
}

func TestJSONRoundTrip(t *testing.T) {
	d := New(2024, time.January, 5)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(data) != `"2024-01-05"` {
		t.Errorf("Marshal() = %s, want \"2024-01-05\"", data)
	}
	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round-trip = %v, want %v", back, d)
	}
}

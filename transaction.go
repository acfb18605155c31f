package daybook

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/etnz/daybook/date"
	"github.com/oklog/ulid/v2"
)

// Type is the variant of a transaction: money coming in or going out.
type Type string

const (
	Income  Type = "income"
	Expense Type = "expense"
)

// ParseType parses a string into a transaction Type.
func ParseType(s string) (Type, error) {
	switch Type(strings.ToLower(s)) {
	case Income:
		return Income, nil
	case Expense:
		return Expense, nil
	default:
		return "", fmt.Errorf("unknown transaction type: %q", s)
	}
}

// DefaultCategory is assigned to entries recorded without a category.
const DefaultCategory = "Other"

// Categories is the fixed vocabulary offered for classifying entries.
var Categories = []string{
	"Food",
	"Transport",
	"Housing",
	"Health",
	"Entertainment",
	"Salary",
	DefaultCategory,
}

// IsCategory reports whether s belongs to the category vocabulary.
func IsCategory(s string) bool {
	for _, c := range Categories {
		if c == s {
			return true
		}
	}
	return false
}

// Transaction is a single dated income or expense entry.
//
// The amount is always stored positive, the sign is derived from Type. Day is
// the calendar-day key used for grouping and filtering and always agrees with
// At once the entry has been normalized.
type Transaction struct {
	ID       string    // unique within the ledger; pending ids start with "pending-"
	Title    string    // non-empty display label
	Amount   Amount    // positive quantity
	Type     Type      // income or expense
	Category string    // from Categories, DefaultCategory when absent
	Notes    string    // free text
	At       int64     // unix millisecond timestamp, intra-day ordering
	Day      date.Date // calendar day key
}

// pendingPrefix marks identifiers assigned optimistically before the remote
// store confirms a durable one.
const pendingPrefix = "pending-"

// newID returns a fresh local identifier.
func newID() string { return ulid.Make().String() }

// newPendingID returns a fresh placeholder identifier.
func newPendingID() string { return pendingPrefix + ulid.Make().String() }

// Pending reports whether the transaction still carries a placeholder
// identifier awaiting remote confirmation.
func (t Transaction) Pending() bool { return strings.HasPrefix(t.ID, pendingPrefix) }

// Signed returns the amount with the sign implied by the type: positive for
// income, negative for expense.
func (t Transaction) Signed() Amount {
	if t.Type == Expense {
		return t.Amount.Neg()
	}
	return t.Amount
}

// Normalize returns a copy with the defaulting rules applied. It is called
// exactly once, at the load boundary; downstream logic never re-implements
// defaulting.
//
// The day key is derived from the timestamp when missing, and falls back to
// the reference day when the timestamp itself is invalid. The amount is made
// positive and the category defaults to DefaultCategory.
func (t Transaction) Normalize(ref date.Date) Transaction {
	if t.Day.IsZero() {
		if t.At > 0 {
			t.Day = date.FromUnixMilli(t.At)
		} else {
			t.Day = ref
		}
	}
	if t.At <= 0 {
		t.At = t.Day.UnixMilli()
	}
	if t.Category == "" || !IsCategory(t.Category) {
		t.Category = DefaultCategory
	}
	t.Amount = t.Amount.Abs()
	return t
}

// Validate checks the transaction for correctness before any mutation.
func (t Transaction) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return validationf("title must not be empty")
	}
	if !t.Amount.IsPositive() {
		return validationf("amount must be positive, got %s", t.Amount)
	}
	if t.Type != Income && t.Type != Expense {
		return validationf("unknown transaction type: %q", t.Type)
	}
	return nil
}

// Equal reports whether two transactions have the same content.
func (t Transaction) Equal(o Transaction) bool {
	return t.ID == o.ID &&
		t.Title == o.Title &&
		t.Amount.Equal(o.Amount) &&
		t.Type == o.Type &&
		t.Category == o.Category &&
		t.Notes == o.Notes &&
		t.At == o.At &&
		t.Day == o.Day
}

// Patch describes a partial update of a transaction. Nil fields are left
// untouched; the identifier and the original timestamp are preserved unless
// the day is explicitly changed.
type Patch struct {
	Title    *string
	Amount   *Amount
	Type     *Type
	Category *string
	Notes    *string
	Day      *date.Date
}

// apply returns a copy of t with the patch applied.
func (p Patch) apply(t Transaction) Transaction {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.Type != nil {
		t.Type = *p.Type
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.Notes != nil {
		t.Notes = *p.Notes
	}
	if p.Day != nil {
		t.Day = *p.Day
		t.At = p.Day.UnixMilli()
	}
	return t
}

// fields returns the patch as a flat field map, the shape the remote document
// store expects for partial updates.
func (p Patch) fields() map[string]any {
	m := make(map[string]any)
	if p.Title != nil {
		m["title"] = *p.Title
	}
	if p.Amount != nil {
		m["amount"] = *p.Amount
	}
	if p.Type != nil {
		m["type"] = *p.Type
	}
	if p.Category != nil {
		m["category"] = *p.Category
	}
	if p.Notes != nil {
		m["notes"] = *p.Notes
	}
	if p.Day != nil {
		m["day"] = p.Day.String()
		m["at"] = p.Day.UnixMilli()
	}
	return m
}

// MarshalJSON implements the json.Marshaler interface for Transaction.
func (t Transaction) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", t.ID)
	w.Append("title", t.Title)
	w.Append("amount", t.Amount)
	w.Append("type", t.Type)
	w.Optional("category", t.Category)
	w.Optional("notes", t.Notes)
	w.Append("at", t.At)
	if !t.Day.IsZero() {
		w.Append("day", t.Day)
	}
	return w.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface for Transaction.
// It tolerates the loose record shapes found in older blobs: a missing day
// key, a missing category, or a day carried as a plain string.
func (t *Transaction) UnmarshalJSON(data []byte) error {
	var temp struct {
		ID       string  `json:"id"`
		Title    string  `json:"title"`
		Amount   Amount  `json:"amount"`
		Type     Type    `json:"type"`
		Category string  `json:"category"`
		Notes    string  `json:"notes"`
		At       int64   `json:"at"`
		Day      *string `json:"day"`
	}
	if err := json.Unmarshal(data, &temp); err != nil {
		return err
	}
	t.ID = temp.ID
	t.Title = temp.Title
	t.Amount = temp.Amount
	t.Type = temp.Type
	t.Category = temp.Category
	t.Notes = temp.Notes
	t.At = temp.At
	t.Day = date.Date{}
	if temp.Day != nil {
		day, err := date.Parse(*temp.Day)
		if err == nil {
			t.Day = day
		}
		// A malformed day is left zero and resolved by Normalize.
	}
	return nil
}

// now is replaceable in tests.
var now = time.Now

package daybook

import (
	"encoding/json"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the single display currency of a daybook ledger.
//
// The ledger itself is currency-agnostic: amounts are plain decimal
// quantities, and the currency only matters when formatting for display.
const Currency = "USD"

// Amount represents a monetary quantity.
//
// Stored amounts are always positive, the income/expense sign is carried by
// the transaction Type. Derived values (like a running balance) may be
// negative.
type Amount struct {
	value decimal.Decimal
}

// A builds an Amount from any common numeric type.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

func newDecimal(value any) decimal.Decimal {
	switch v := value.(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic(fmt.Sprintf("unsupported amount type %T", value))
	}
}

// currency returns the display currency metadata.
func (a Amount) currency() money.Currency {
	// to get a never nil currency I need to call the Money constructor
	return *money.New(0, Currency).Currency()
}

// String returns the display representation of the amount, truncated to the
// currency's fraction digits. Truncation happens here and only here: the
// underlying value keeps all its digits.
func (a Amount) String() string {
	cur := a.currency()
	dec := a.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString returns the string representation of the amount with a sign.
// 0 is represented as "-".
func (a Amount) SignedString() string {
	if a.value.IsZero() {
		return "-"
	}
	if a.value.IsPositive() {
		return "+" + a.String()
	}
	return a.String()
}

// Simple wrappers around decimal.Decimal.

func (a Amount) Equal(b Amount) bool    { return a.value.Equal(b.value) }
func (a Amount) IsZero() bool           { return a.value.IsZero() }
func (a Amount) IsPositive() bool       { return a.value.IsPositive() }
func (a Amount) IsNegative() bool       { return a.value.IsNegative() }
func (a Amount) LessThan(b Amount) bool { return a.value.LessThan(b.value) }
func (a Amount) Neg() Amount            { return Amount{value: a.value.Neg()} }
func (a Amount) Abs() Amount            { return Amount{value: a.value.Abs()} }

// binary operators.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// MarshalJSON persists the amount as a plain JSON number with all its digits.
func (a Amount) MarshalJSON() ([]byte, error) { return []byte(a.value.String()), nil }

// UnmarshalJSON reads the amount from a JSON number or a numeric string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	a.value = d
	return nil
}

var _ json.Marshaler = (*Amount)(nil)
var _ json.Unmarshaler = (*Amount)(nil)

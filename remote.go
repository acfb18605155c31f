package daybook

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/etnz/daybook/date"
	"github.com/shopspring/decimal"
)

// Record is the flat key/value shape a document round-trips as against the
// remote store.
type Record map[string]any

// DocumentStore is the contract for the remote, per-user document collection.
//
// All operations are asynchronous from the ledger's point of view: they
// suspend the caller until the backing service answers, and any of them can
// fail. BatchDelete is atomic: either every listed document is deleted, or
// none is.
type DocumentStore interface {
	FetchAll(ctx context.Context, userID string) ([]Record, error)
	Insert(ctx context.Context, userID string, rec Record) (id string, err error)
	UpdateFields(ctx context.Context, userID, id string, fields map[string]any) error
	DeleteOne(ctx context.Context, userID, id string) error
	BatchDelete(ctx context.Context, userID string, ids []string) error
}

// record returns the flat document representation of the transaction, without
// its identifier: the identifier is the document name, owned by the store.
func (t Transaction) record() Record {
	rec := Record{
		"title":  t.Title,
		"amount": t.Amount,
		"type":   string(t.Type),
		"at":     t.At,
		"day":    t.Day.String(),
	}
	if t.Category != "" {
		rec["category"] = t.Category
	}
	if t.Notes != "" {
		rec["notes"] = t.Notes
	}
	return rec
}

// decodeRecord converts a fetched document back into a transaction. It is
// deliberately tolerant: providers return numbers as float64 or json.Number,
// timestamps in native temporal types, and older documents may miss fields.
// The result is un-normalized; Normalize runs at the load boundary.
func decodeRecord(id string, rec Record) Transaction {
	tx := Transaction{ID: id}
	if s, ok := rec["title"].(string); ok {
		tx.Title = s
	}
	if s, ok := rec["type"].(string); ok {
		tx.Type = Type(s)
	}
	if s, ok := rec["category"].(string); ok {
		tx.Category = s
	}
	if s, ok := rec["notes"].(string); ok {
		tx.Notes = s
	}
	tx.Amount = asAmount(rec["amount"])
	tx.At = asMillis(rec["at"])
	if s, ok := rec["day"].(string); ok {
		if day, err := date.Parse(s); err == nil {
			tx.Day = day
		}
	}
	return tx
}

// asAmount reads an amount value that may arrive as a JSON number, a
// json.Number, or a numeric string.
func asAmount(v any) Amount {
	switch n := v.(type) {
	case float64:
		return A(n)
	case json.Number:
		if d, err := decimal.NewFromString(n.String()); err == nil {
			return A(d)
		}
	case string:
		if d, err := decimal.NewFromString(n); err == nil {
			return A(d)
		}
	case int64:
		return A(n)
	case int:
		return A(n)
	}
	return Amount{}
}

// asMillis normalizes a provider-native temporal value to plain unix
// milliseconds: a JSON number, a numeric string, an RFC3339 string, or a
// {seconds, nanos} object.
func asMillis(v any) int64 {
	switch n := v.(type) {
	case float64:
		return int64(n)
	case int64:
		return n
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return i
		}
		if f, err := n.Float64(); err == nil {
			return int64(f)
		}
	case string:
		if i, err := strconv.ParseInt(n, 10, 64); err == nil {
			return i
		}
		if ts, err := time.Parse(time.RFC3339, n); err == nil {
			return ts.UnixMilli()
		}
	case map[string]any:
		sec := asMillis(n["seconds"]) // here seconds, not millis
		var nanos int64
		if nv, ok := n["nanos"]; ok {
			nanos = asMillis(nv)
		}
		return sec*1000 + nanos/int64(time.Millisecond)
	}
	return 0
}

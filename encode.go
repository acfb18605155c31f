package daybook

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/etnz/daybook/date"
)

// This file contains code to persist the ledger in JSONL, one transaction per
// line, in a way that is still human-readable and diff-friendly. The same
// encoding doubles as the single local key-value blob: the whole ledger is
// one JSONL string stored under one fixed key.

// DecodeTransactions reads transactions from a stream of JSONL data.
//
// Records are returned as read, un-normalized: the caller applies Normalize
// at the load boundary.
func DecodeTransactions(r io.Reader) ([]Transaction, error) {
	txs := make([]Transaction, 0)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue // Skip empty lines
		}
		var tx Transaction
		if err := json.Unmarshal(line, &tx); err != nil {
			return nil, fmt.Errorf("format error on line %q: %w", string(line), err)
		}
		txs = append(txs, tx)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}
	return txs, nil
}

// EncodeTransaction marshals a single transaction to JSON and writes it to
// the writer, followed by a newline, in JSONL format.
func EncodeTransaction(w io.Writer, tx Transaction) error {
	jsonData, err := json.Marshal(tx)
	if err != nil {
		return fmt.Errorf("failed to marshal transaction: %w", err)
	}
	if _, err := w.Write(append(jsonData, '\n')); err != nil {
		return fmt.Errorf("failed to write transaction: %w", err)
	}
	return nil
}

// EncodeLedger persists the ledger to an io.Writer in JSONL format, in
// chronological order.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for _, tx := range l.Transactions() {
		if err := EncodeTransaction(w, tx); err != nil {
			return err
		}
	}
	return nil
}

// FormatLocal rewrites the local blob in canonical form: entries normalized,
// sorted chronologically, one JSON object per line. It returns the number of
// entries formatted, zero when there is no blob yet.
func FormatLocal(kv KeyValue) (int, error) {
	blob, ok, err := kv.Get(blobKey)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	txs, err := unmarshalBlob(blob)
	if err != nil {
		return 0, fmt.Errorf("cannot format ledger: %w", err)
	}
	ref := date.Today()
	for i := range txs {
		txs[i] = txs[i].Normalize(ref)
	}
	l := NewLedger(txs...)
	out, err := marshalBlob(l)
	if err != nil {
		return 0, err
	}
	if err := kv.Set(blobKey, out); err != nil {
		return 0, err
	}
	return l.Len(), nil
}

// marshalBlob serializes the full transaction list as the one blob stored in
// the local key-value store.
func marshalBlob(l *Ledger) (string, error) {
	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// unmarshalBlob deserializes the local blob wholesale.
func unmarshalBlob(blob string) ([]Transaction, error) {
	return DecodeTransactions(strings.NewReader(blob))
}

// Package daybook provides the types and functions for a single-user,
// single-currency, day-to-day money ledger.
//
// The core functionalities include:
//   - Ledger: a flat, chronologically sorted list of income and expense
//     entries, with pure derivation of display aggregates (cumulative
//     balance, money received, daily expense, day groups).
//   - Store: the single owner of the in-memory ledger, keeping it in sync
//     with exactly one backing persistence mechanism per session: a remote
//     document store when an authenticated identity is present, a local
//     key-value blob otherwise. Every remote-touching mutation is optimistic
//     and rolls back on failure.
//   - Data Persistence: encoding and decoding the ledger to and from a
//     human-readable JSONL form.
//
// This package serves as the foundational logic for the `dbk` command-line
// tool, ensuring that all operations are consistent and based on a single
// source of truth.
package daybook

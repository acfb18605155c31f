package daybook

import (
	"iter"
	"sort"

	"github.com/etnz/daybook/date"
)

// Ledger represents the flat list of a user's transactions.
//
// In a Ledger transactions are always in chronological order: by day, then by
// timestamp, with same-instant entries keeping their insertion order.
//
// All derivation methods (BalanceAsOf, MoneyReceived, ExpenseOn, GroupByDay)
// are pure: they read the current list and never mutate it.
type Ledger struct {
	transactions []Transaction
}

// NewLedger creates an empty ledger.
func NewLedger(txs ...Transaction) *Ledger {
	l := &Ledger{transactions: make([]Transaction, 0, len(txs))}
	l.Append(txs...)
	return l
}

// Append appends transactions to this ledger and maintains the chronological
// order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// Replace swaps the full transaction list, wholesale. Used at load time.
func (l *Ledger) Replace(txs []Transaction) {
	l.transactions = append(l.transactions[:0:0], txs...)
	l.stableSort()
}

// stableSort sorts the ledger chronologically. The sort is stable, meaning
// transactions at the same instant maintain their original relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.transactions, func(i, j int) bool {
		a, b := l.transactions[i], l.transactions[j]
		if a.Day != b.Day {
			return a.Day.Before(b.Day)
		}
		return a.At < b.At
	})
}

// Len returns the number of transactions in the ledger.
func (l *Ledger) Len() int { return len(l.transactions) }

// Get returns the transaction with the given identifier.
func (l *Ledger) Get(id string) (Transaction, bool) {
	if i := l.index(id); i >= 0 {
		return l.transactions[i], true
	}
	return Transaction{}, false
}

// index returns the position of the transaction with the given identifier,
// or -1.
func (l *Ledger) index(id string) int {
	for i, tx := range l.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}

// set replaces the transaction at the identifier's position, in place.
func (l *Ledger) set(id string, tx Transaction) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.transactions[i] = tx
	l.stableSort()
	return true
}

// remove deletes the transaction with the given identifier, in place.
func (l *Ledger) remove(id string) bool {
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.transactions = append(l.transactions[:i], l.transactions[i+1:]...)
	return true
}

// snapshot returns a copy of the transaction list, used as the pre-image for
// optimistic rollbacks.
func (l *Ledger) snapshot() []Transaction {
	return append([]Transaction(nil), l.transactions...)
}

// Transactions returns an iterator that yields each transaction in
// chronological order. With filters, a transaction is yielded when any
// filter accepts it.
func (l *Ledger) Transactions(filters ...func(Transaction) bool) iter.Seq2[int, Transaction] {
	return func(yield func(int, Transaction) bool) {
		for i, tx := range l.transactions {
			if len(filters) > 0 {
				accept := false
				for _, filter := range filters {
					if filter(tx) {
						accept = true
						break
					}
				}
				if !accept {
					continue
				}
			}
			if !yield(i, tx) {
				return
			}
		}
	}
}

// OnDay returns a predicate that filters transactions by their day key.
func OnDay(day date.Date) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Day == day }
}

// ByType returns a predicate that filters transactions by type.
func ByType(t Type) func(Transaction) bool {
	return func(tx Transaction) bool { return tx.Type == t }
}

// BalanceAsOf computes the cumulative balance on a given day: the sum of
// signed amounts over every transaction dated on or before it. A transaction
// dated in the past affects every later day's balance.
func (l *Ledger) BalanceAsOf(on date.Date) Amount {
	var balance Amount
	for _, tx := range l.transactions {
		if tx.Day.After(on) {
			// The ledger is sorted by day, so it's safe to break.
			break
		}
		balance = balance.Add(tx.Signed())
	}
	return balance
}

// MoneyReceived computes the "most recent payday" total on a given day: the
// sum of all income recorded on the most recent day, on or before the given
// one, that has at least one income entry. Income on earlier paydays is
// intentionally ignored.
func (l *Ledger) MoneyReceived(on date.Date) Amount {
	var payday date.Date
	for _, tx := range l.transactions {
		if tx.Day.After(on) {
			break
		}
		if tx.Type == Income {
			payday = tx.Day
		}
	}
	var received Amount
	if payday.IsZero() {
		return received
	}
	for _, tx := range l.transactions {
		if tx.Day == payday && tx.Type == Income {
			received = received.Add(tx.Amount)
		}
	}
	return received
}

// ExpenseOn computes the total expense for exactly the given day. Strict
// equality: expenses on other days, and income of any date, never contribute.
func (l *Ledger) ExpenseOn(on date.Date) Amount {
	var total Amount
	for _, tx := range l.transactions {
		if tx.Day.After(on) {
			break
		}
		if tx.Day == on && tx.Type == Expense {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

// DayGroup is the set of transactions recorded on one calendar day, in
// display order (newest first).
type DayGroup struct {
	Day          date.Date
	Transactions []Transaction
}

// GroupByDay partitions the ledger into day groups, newest day first. Within
// a group entries are ordered newest first by timestamp.
func (l *Ledger) GroupByDay() []DayGroup {
	var groups []DayGroup
	for _, tx := range l.transactions {
		if n := len(groups); n > 0 && groups[n-1].Day == tx.Day {
			groups[n-1].Transactions = append(groups[n-1].Transactions, tx)
			continue
		}
		groups = append(groups, DayGroup{Day: tx.Day, Transactions: []Transaction{tx}})
	}
	// The ledger is chronological; the display order is the reverse.
	for i, j := 0, len(groups)-1; i < j; i, j = i+1, j-1 {
		groups[i], groups[j] = groups[j], groups[i]
	}
	for _, g := range groups {
		txs := g.Transactions
		for i, j := 0, len(txs)-1; i < j; i, j = i+1, j-1 {
			txs[i], txs[j] = txs[j], txs[i]
		}
	}
	return groups
}

// OldestDay returns the day of the earliest transaction in the ledger, or a
// zero date when the ledger is empty.
func (l *Ledger) OldestDay() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[0].Day
}

// NewestDay returns the day of the latest transaction in the ledger, or a
// zero date when the ledger is empty.
func (l *Ledger) NewestDay() date.Date {
	if len(l.transactions) == 0 {
		return date.Date{}
	}
	return l.transactions[len(l.transactions)-1].Day
}

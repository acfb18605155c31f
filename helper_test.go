package daybook

import (
	"github.com/etnz/daybook/date"
)

// helpers for tests to build normalized transactions from consts.

var nextTestID int

func testTx(typ Type, title string, amount float64, day string) Transaction {
	nextTestID++
	d := date.MustParse(day)
	return Transaction{
		ID:       newID(),
		Title:    title,
		Amount:   A(amount),
		Type:     typ,
		Category: DefaultCategory,
		At:       d.UnixMilli() + int64(nextTestID), // distinct instants within a day
		Day:      d,
	}
}

// income is a helper for tests to create an income entry from consts.
func income(title string, amount float64, day string) Transaction {
	return testTx(Income, title, amount, day)
}

// expense is a helper for tests to create an expense entry from consts.
func expense(title string, amount float64, day string) Transaction {
	return testTx(Expense, title, amount, day)
}

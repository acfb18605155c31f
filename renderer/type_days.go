package renderer

import (
	"github.com/etnz/daybook"
	"github.com/etnz/daybook/date"
)

// Entry is the view model of one ledger line.
type Entry struct {
	ID       string
	Title    string
	Category string
	Notes    string
	Amount   string // signed, "-" side for expenses
}

// Day is the view model of one calendar day: its entries (newest first) and
// the day's total expense.
type Day struct {
	Day     date.Date
	Spent   string
	Entries []Entry
}

// DayList is the view model of the whole ledger grouped by day, newest first.
type DayList struct {
	Days []Day
}

// NewEntry derives the view of one transaction.
func NewEntry(tx daybook.Transaction) Entry {
	return Entry{
		ID:       tx.ID,
		Title:    tx.Title,
		Category: tx.Category,
		Notes:    tx.Notes,
		Amount:   tx.Signed().SignedString(),
	}
}

// NewDayList derives the grouped view of the ledger.
func NewDayList(l *daybook.Ledger) *DayList {
	dl := &DayList{}
	for _, g := range l.GroupByDay() {
		d := Day{Day: g.Day, Spent: l.ExpenseOn(g.Day).String()}
		for _, tx := range g.Transactions {
			d.Entries = append(d.Entries, NewEntry(tx))
		}
		dl.Days = append(dl.Days, d)
	}
	return dl
}

// RenderDays renders the DayList struct to a markdown string.
func RenderDays(dl *DayList) string {
	partials := map[string]string{
		"days_entries": "days_entries.md",
	}
	return renderTemplate("days", "days.md", partials, dl)
}

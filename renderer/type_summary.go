package renderer

import (
	"github.com/etnz/daybook"
	"github.com/etnz/daybook/date"
)

// Summary is the view model of the three headline figures for one day.
type Summary struct {
	On       date.Date
	Balance  string
	Received string
	Spent    string
}

// NewSummary derives the summary view for a day from the ledger.
func NewSummary(l *daybook.Ledger, on date.Date) *Summary {
	return &Summary{
		On:       on,
		Balance:  l.BalanceAsOf(on).String(),
		Received: l.MoneyReceived(on).String(),
		Spent:    l.ExpenseOn(on).String(),
	}
}

// RenderSummary renders the Summary struct to a markdown string.
func RenderSummary(s *Summary) string {
	return renderTemplate("summary", "summary.md", nil, s)
}

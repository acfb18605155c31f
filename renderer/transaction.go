package renderer

import (
	"fmt"

	"github.com/etnz/daybook"
)

// Transaction renders a transaction to a string.
func Transaction(tx daybook.Transaction) string {
	switch tx.Type {
	case daybook.Income:
		return fmt.Sprintf("Received %s on %s for %q", tx.Amount, tx.Day, tx.Title)
	case daybook.Expense:
		return fmt.Sprintf("Spent %s on %s for %q in %s", tx.Amount, tx.Day, tx.Title, tx.Category)
	default:
		return fmt.Sprintf("%s %s on %s", tx.Type, tx.Amount, tx.Day)
	}
}

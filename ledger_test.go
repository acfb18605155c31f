package daybook

import (
	"testing"

	"github.com/etnz/daybook/date"
)

func TestLedger_EmptyAggregates(t *testing.T) {
	l := NewLedger()
	on := date.MustParse("2024-01-05")

	if got := l.BalanceAsOf(on); !got.IsZero() {
		t.Errorf("BalanceAsOf() = %s, want zero", got)
	}
	if got := l.MoneyReceived(on); !got.IsZero() {
		t.Errorf("MoneyReceived() = %s, want zero", got)
	}
	if got := l.ExpenseOn(on); !got.IsZero() {
		t.Errorf("ExpenseOn() = %s, want zero", got)
	}
	if groups := l.GroupByDay(); len(groups) != 0 {
		t.Errorf("GroupByDay() = %d groups, want none", len(groups))
	}
}

func TestLedger_SingleExpense(t *testing.T) {
	l := NewLedger(expense("groceries", 42.50, "2024-01-05"))
	on := date.MustParse("2024-01-05")

	if got, want := l.BalanceAsOf(on), A(-42.50); !got.Equal(want) {
		t.Errorf("BalanceAsOf() = %s, want %s", got, want)
	}
	if got, want := l.ExpenseOn(on), A(42.50); !got.Equal(want) {
		t.Errorf("ExpenseOn() = %s, want %s", got, want)
	}
	if got := l.MoneyReceived(on); !got.IsZero() {
		t.Errorf("MoneyReceived() = %s, want zero", got)
	}
}

func TestLedger_BalanceAsOf(t *testing.T) {
	l := NewLedger(
		income("salary", 1000, "2024-01-01"),
		expense("rent", 200, "2024-01-10"),
	)

	tests := []struct {
		name string
		on   string
		want Amount
	}{
		{name: "before any entry", on: "2023-12-31", want: A(0)},
		{name: "on payday", on: "2024-01-01", want: A(1000)},
		{name: "between entries", on: "2024-01-05", want: A(1000)},
		{name: "on expense day", on: "2024-01-10", want: A(800)},
		{name: "after all entries", on: "2024-02-01", want: A(800)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.BalanceAsOf(date.MustParse(tc.on)); !got.Equal(tc.want) {
				t.Errorf("BalanceAsOf(%s) = %s, want %s", tc.on, got, tc.want)
			}
		})
	}

	// A transaction dated after the reference day must not change the balance.
	before := l.BalanceAsOf(date.MustParse("2024-01-10"))
	l.Append(expense("future trip", 999, "2024-03-01"))
	if got := l.BalanceAsOf(date.MustParse("2024-01-10")); !got.Equal(before) {
		t.Errorf("BalanceAsOf() changed from %s to %s after appending a later entry", before, got)
	}
}

func TestLedger_MoneyReceived(t *testing.T) {
	l := NewLedger(
		income("salary", 1000, "2024-01-01"),
		income("bonus", 50, "2024-01-01"),
		expense("rent", 200, "2024-01-10"),
		income("freelance", 300, "2024-01-15"),
	)

	tests := []struct {
		name string
		on   string
		want Amount
	}{
		// The 2024-01-01 payday is still the most recent one on the 10th,
		// and both entries of that day are summed.
		{name: "payday in the past", on: "2024-01-10", want: A(1050)},
		{name: "newer payday takes over", on: "2024-01-15", want: A(300)},
		{name: "before any income", on: "2023-12-31", want: A(0)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := l.MoneyReceived(date.MustParse(tc.on)); !got.Equal(tc.want) {
				t.Errorf("MoneyReceived(%s) = %s, want %s", tc.on, got, tc.want)
			}
		})
	}
}

func TestLedger_ExpenseOn(t *testing.T) {
	l := NewLedger(
		expense("coffee", 5, "2024-01-05"),
		expense("lunch", 15, "2024-01-05"),
		expense("cinema", 12, "2024-01-06"),
		income("salary", 1000, "2024-01-05"),
	)

	// Only expenses of exactly that day contribute; income never does.
	if got, want := l.ExpenseOn(date.MustParse("2024-01-05")), A(20); !got.Equal(want) {
		t.Errorf("ExpenseOn(2024-01-05) = %s, want %s", got, want)
	}
	if got, want := l.ExpenseOn(date.MustParse("2024-01-06")), A(12); !got.Equal(want) {
		t.Errorf("ExpenseOn(2024-01-06) = %s, want %s", got, want)
	}
	if got := l.ExpenseOn(date.MustParse("2024-01-07")); !got.IsZero() {
		t.Errorf("ExpenseOn(2024-01-07) = %s, want zero", got)
	}
}

func TestLedger_GroupByDay(t *testing.T) {
	first := expense("coffee", 5, "2024-01-05")
	second := expense("lunch", 15, "2024-01-05")
	l := NewLedger(
		first,
		second,
		income("salary", 1000, "2024-01-01"),
		expense("cinema", 12, "2024-01-06"),
	)

	groups := l.GroupByDay()
	if len(groups) != 3 {
		t.Fatalf("GroupByDay() = %d groups, want 3", len(groups))
	}
	// Newest day first.
	wantDays := []string{"2024-01-06", "2024-01-05", "2024-01-01"}
	for i, want := range wantDays {
		if got := groups[i].Day.String(); got != want {
			t.Errorf("group[%d].Day = %s, want %s", i, got, want)
		}
	}
	// Within a day, newest entry first.
	day5 := groups[1].Transactions
	if len(day5) != 2 {
		t.Fatalf("2024-01-05 group has %d entries, want 2", len(day5))
	}
	if day5[0].ID != second.ID || day5[1].ID != first.ID {
		t.Errorf("2024-01-05 group order = [%s %s], want newest first", day5[0].Title, day5[1].Title)
	}
}

func TestLedger_ChronologicalOrder(t *testing.T) {
	l := NewLedger(
		expense("late", 1, "2024-02-01"),
		expense("early", 1, "2024-01-01"),
		expense("middle", 1, "2024-01-15"),
	)
	var titles []string
	for _, tx := range l.Transactions() {
		titles = append(titles, tx.Title)
	}
	want := []string{"early", "middle", "late"}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("Transactions() order = %v, want %v", titles, want)
		}
	}
	if got := l.OldestDay().String(); got != "2024-01-01" {
		t.Errorf("OldestDay() = %s, want 2024-01-01", got)
	}
	if got := l.NewestDay().String(); got != "2024-02-01" {
		t.Errorf("NewestDay() = %s, want 2024-02-01", got)
	}
}

func TestLedger_Filters(t *testing.T) {
	l := NewLedger(
		expense("coffee", 5, "2024-01-05"),
		income("salary", 1000, "2024-01-05"),
		expense("cinema", 12, "2024-01-06"),
	)
	count := 0
	for _, tx := range l.Transactions(OnDay(date.MustParse("2024-01-05"))) {
		count++
		if tx.Day.String() != "2024-01-05" {
			t.Errorf("OnDay filter yielded entry of %s", tx.Day)
		}
	}
	if count != 2 {
		t.Errorf("OnDay filter yielded %d entries, want 2", count)
	}

	count = 0
	for _, tx := range l.Transactions(ByType(Income)) {
		count++
		if tx.Type != Income {
			t.Errorf("ByType filter yielded a %s entry", tx.Type)
		}
	}
	if count != 1 {
		t.Errorf("ByType filter yielded %d entries, want 1", count)
	}
}

package billing

import "time"

// Invoice is one billable statement for an account.
type Invoice struct {
	ID     string
	Issued time.Time
	Lines  []Line
}

type Line struct {
	Description string
	Cents       int64
}

// Total sums every line on the invoice.
func (inv *Invoice) Total() int64 {
	var total int64
	for _, l := range inv.Lines {
		total += l.Cents
	}
	return total
}

func (inv *Invoice) Empty() bool {
	return len(inv.Lines) == 0
}

// Overdue reports whether the invoice has aged past the grace period.
func Overdue(inv *Invoice, grace time.Duration) bool {
	return time.Since(inv.Issued) > grace
}

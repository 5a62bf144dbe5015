package deliverable

import (
	"time"

	"shootsuite/internal/domain"
)

// Decision is the portal's verdict on one deliverable, computed fresh on
// every request; nothing here is persisted.
type Decision struct {
	Allowed       bool `json:"allowed"`
	NeedsPassword bool `json:"needs_password"`
	Expired       bool `json:"expired"`
	Locked        bool `json:"locked"`
}

// Evaluate applies the access gate. A fully paid job overrides a stale
// locked flag, so a payment that raced the unlock sweep still opens the
// gallery. A password requirement is cleared by a valid unlock token.
func Evaluate(d *domain.Deliverable, isPaid, unlocked bool, now time.Time) Decision {
	dec := Decision{Locked: d.Locked}

	if d.Expired(now) {
		dec.Expired = true
		return dec
	}

	dec.NeedsPassword = d.Password != "" && !unlocked
	dec.Allowed = (isPaid || !d.Locked) && !dec.NeedsPassword
	return dec
}

// IsPaid reports whether the job's billing is settled: at least one invoice
// exists and nothing is outstanding across all of them. A job that was never
// invoiced is not paid; its deliverables rely on the locked flag alone.
func IsPaid(invoices []domain.Invoice) bool {
	if len(invoices) == 0 {
		return false
	}
	var balance float64
	for _, inv := range invoices {
		balance += inv.Balance
	}
	return balance <= 0
}

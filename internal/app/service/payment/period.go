package payment

import (
	"fmt"
	"time"
)

var spanishMonths = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// PeriodLabel derives the human-readable month/year label for the given
// period counter. The label is anchor month + period months, so it is stable
// under clock skew and out-of-order approvals; the anchor never moves once
// seeded.
func PeriodLabel(anchor time.Time, period int) string {
	if period < 0 {
		period = 0
	}
	// Normalize to the first of the anchor month so day-of-month overflow
	// (e.g. Jan 31 + 1 month) cannot skip a month.
	base := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
	at := base.AddDate(0, period, 0)
	return fmt.Sprintf("%s %d", spanishMonths[int(at.Month())-1], at.Year())
}

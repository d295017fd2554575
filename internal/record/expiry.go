package record

import "time"

// ExpiryStatus classifies a record's expiry date relative to a reference
// time.
type ExpiryStatus int

const (
	// ExpiryOK means no expiry date is set, or it is comfortably in the
	// future.
	ExpiryOK ExpiryStatus = iota

	// ExpiringSoon means the expiry date falls within ExpirySoonWindow
	// of the reference time. Soft warning.
	ExpiringSoon

	// Expired means the expiry date has passed. Hard flag.
	Expired
)

// ExpirySoonWindow is how far ahead an expiry date counts as "soon".
const ExpirySoonWindow = 30 * 24 * time.Hour

// String returns the status name for display.
func (s ExpiryStatus) String() string {
	switch s {
	case ExpiringSoon:
		return "expiring-soon"
	case Expired:
		return "expired"
	default:
		return "ok"
	}
}

// Expiry classifies the record's expiry date against now.
// Records without an expiry date are always ExpiryOK. A date equal to
// today's date has not yet passed, so it reports ExpiringSoon, not Expired.
func (m Medicine) Expiry(now time.Time) ExpiryStatus {
	if m.ExpiryDate == "" {
		return ExpiryOK
	}
	exp, err := time.Parse(DateLayout, m.ExpiryDate)
	if err != nil {
		// Unparseable dates came from outside the parse boundary;
		// treat them as unset rather than failing a read path.
		return ExpiryOK
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if exp.Before(today) {
		return Expired
	}
	if exp.Sub(today) <= ExpirySoonWindow {
		return ExpiringSoon
	}
	return ExpiryOK
}

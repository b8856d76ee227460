package booking

import "time"

// AccessWindow is how long after payment the confirmation page may show booking details.
const AccessWindow = 24 * time.Hour

// AccessFacts is the snapshot a single access decision is made from.
type AccessFacts struct {
	Status        Status
	PaidAt        *time.Time
	CustomerEmail string
	BookingRef    string
}

// EvaluateAccess decides whether the confirmation page may render full details at now.
// Status wins over PaidAt: a booking paid and later refunded is denied.
func EvaluateAccess(facts AccessFacts, now time.Time) bool {
	if facts.PaidAt == nil {
		return false
	}
	if facts.Status != StatusPaid {
		return false
	}
	return now.Sub(*facts.PaidAt) < AccessWindow
}

package models

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusWaitlist  Status = "WAITLIST"
)

var Statuses = []Status{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusWaitlist,
}

func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// Counted reports whether a registration in this status occupies a seat.
func (s Status) Counted() bool {
	return s == StatusPending || s == StatusConfirmed
}

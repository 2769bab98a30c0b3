// Package workflow holds the registration status state machine.
//
// Every status change goes through Transition, which consults an explicit
// edge table and reports how the owning event's registration counter must
// move. All edges are currently open; closing one is a table edit.
package workflow

import (
	"errors"
	"fmt"

	"churchEvents/internal/models"
)

var (
	ErrUnknownStatus        = errors.New("unknown registration status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
)

var transitions = map[models.Status]map[models.Status]bool{
	models.StatusPending: {
		models.StatusPending:   true,
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
		models.StatusWaitlist:  true,
	},
	models.StatusConfirmed: {
		models.StatusPending:   true,
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
		models.StatusWaitlist:  true,
	},
	models.StatusCancelled: {
		models.StatusPending:   true,
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
		models.StatusWaitlist:  true,
	},
	models.StatusWaitlist: {
		models.StatusPending:   true,
		models.StatusConfirmed: true,
		models.StatusCancelled: true,
		models.StatusWaitlist:  true,
	},
}

// InitialStatus returns the status of a new registration given whether a
// seat was available when it was admitted.
func InitialStatus(seatAvailable bool) models.Status {
	if seatAvailable {
		return models.StatusPending
	}
	return models.StatusWaitlist
}

// Allowed reports whether the edge from -> to exists in the table.
func Allowed(from, to models.Status) bool {
	return transitions[from][to]
}

// CounterDelta is +1 when entering a counted status from an uncounted one,
// -1 on the reverse, and 0 otherwise.
func CounterDelta(from, to models.Status) int {
	switch {
	case !from.Counted() && to.Counted():
		return 1
	case from.Counted() && !to.Counted():
		return -1
	default:
		return 0
	}
}

// Transition validates the edge and returns the counter delta it implies.
func Transition(from, to models.Status) (int, error) {
	const op = "workflow.Transition"

	if !from.Valid() {
		return 0, fmt.Errorf("%s: %w: %q", op, ErrUnknownStatus, from)
	}
	if !to.Valid() {
		return 0, fmt.Errorf("%s: %w: %q", op, ErrUnknownStatus, to)
	}
	if !Allowed(from, to) {
		return 0, fmt.Errorf("%s: %w: %s -> %s", op, ErrTransitionNotAllowed, from, to)
	}

	return CounterDelta(from, to), nil
}

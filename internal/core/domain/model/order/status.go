package order

import (
	"fmt"
	"strings"

	"marketplace/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
// State transitions:
//
//	Unpaid ──> Preparing ──> Prepared ──> Delivering ──> Finished
//	   │
//	   └────> Canceled
//
// Finished and Canceled are terminal.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota
	Unpaid
	Preparing
	Prepared
	Delivering
	Finished
	Canceled
)

var statusLabels = map[Status]string{
	Unpaid:     "unpaid",
	Preparing:  "preparing",
	Prepared:   "prepared",
	Delivering: "delivering",
	Finished:   "finished",
	Canceled:   "canceled",
}

// AllStatuses lists the valid statuses in lifecycle order.
func AllStatuses() []Status {
	return []Status{Unpaid, Preparing, Prepared, Delivering, Finished, Canceled}
}

// ParseStatus converts a label (case insensitive) to a Status.
func ParseStatus(label string) (Status, error) {
	normalized := strings.ToLower(strings.TrimSpace(label))
	for s, l := range statusLabels {
		if l == normalized {
			return s, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", label))
}

// String returns the lower-case wire label, or "unknown".
func (s Status) String() string {
	if l, ok := statusLabels[s]; ok {
		return l
	}
	return "unknown"
}

func (s Status) Validate() error {
	if _, ok := statusLabels[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// IsTerminal reports whether no modeled transition leaves s.
func (s Status) IsTerminal() bool {
	return s == Finished || s == Canceled
}

package billing

import (
	"autoshop/internal/pkg/errs"
)

// Status is the lifecycle state of a billing record.
type Status int

const (
	// StatusUnknown is the default uninitialized state.
	StatusUnknown Status = iota
	// StatusGenerated means totals are computed and the record is immutable.
	StatusGenerated
	// StatusForPayment means the bill was handed to the cashier.
	StatusForPayment
	// StatusPaid is terminal: payment was received.
	StatusPaid
	// StatusCancelled is terminal: the bill was voided with its order.
	StatusCancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusGenerated:  "Generated",
		StatusForPayment: "For Payment",
		StatusPaid:       "Paid",
		StatusCancelled:  "Cancelled",
	}
}

func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusGenerated:  {StatusForPayment, StatusCancelled},
		StatusForPayment: {StatusPaid, StatusCancelled},
		StatusPaid:       {},
		StatusCancelled:  {},
	}
}

// StatusFromString converts a display string to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return StatusUnknown, errs.NewValueIsInvalidError(s)
}

// Validate checks the status holds a known value.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("status")
	}
	return nil
}

// String returns the display representation of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return len(getTransitionTable()[s]) == 0
}

// CanTransitionTo reports whether the record may move to the target status.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move to target and returns the new status, or an
// invalid-state error naming the attempted operation.
func (s Status) TransitionTo(target Status, operation string) (Status, error) {
	if !s.CanTransitionTo(target) {
		return s, errs.NewInvalidStateError("billing", operation, s.String())
	}
	return target, nil
}

package serviceorder

import (
	"fmt"

	"autoshop/internal/pkg/errs"
)

// Status represents the lifecycle state of a service order.
// It implements a state machine with a statically enumerable transition table;
// any transition not present in the table is rejected with an
// InvalidStateError rather than silently applied.
//
// State transitions:
//
//	Scheduled ──> CheckedIn ──> InProgress ⇄ WaitingParts
//	                                │
//	                                v
//	                           QualityCheck ⇄ WaitingRoadTest
//	                                │
//	                                v
//	                            QCPassed ──> Completed ──> ForPayment ──> Paid ──> Released
//
// Cancelled is reachable from every state before Released.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Scheduled is the initial status of an order created from an appointment
	// or registered as a walk-in before the customer is checked in.
	Scheduled

	// CheckedIn indicates the customer has arrived and intake is complete.
	CheckedIn

	// InProgress indicates a technician is actively working the order.
	InProgress

	// WaitingParts indicates work is paused until requested parts are issued.
	WaitingParts

	// QualityCheck indicates the order awaits or undergoes foreman inspection.
	QualityCheck

	// WaitingRoadTest indicates the inspection flagged a road test that has
	// not yet been completed.
	WaitingRoadTest

	// QCPassed indicates the inspection completed with both signatures and an
	// overall pass.
	QCPassed

	// Completed indicates billing has been generated for the finished work.
	Completed

	// ForPayment indicates the order was handed to the cashier.
	ForPayment

	// Paid indicates payment was collected; the gatepass exists from here on.
	Paid

	// Released is the terminal status: the vehicle left the premises.
	Released

	// Cancelled is the explicit terminal status for abandoned orders.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:         "Unknown",
		Scheduled:       "Scheduled",
		CheckedIn:       "Checked In",
		InProgress:      "In Progress",
		WaitingParts:    "Waiting Parts",
		QualityCheck:    "Quality Check",
		WaitingRoadTest: "Waiting Road Test",
		QCPassed:        "QC Passed",
		Completed:       "Completed",
		ForPayment:      "For Payment",
		Paid:            "Paid",
		Released:        "Released",
		Cancelled:       "Cancelled",
	}
}

// getTransitionTable returns every allowed status transition. The table is the
// single source of truth: transition methods consult it and nothing else
// writes an order's status.
func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		Scheduled:       {CheckedIn, Cancelled},
		CheckedIn:       {InProgress, Cancelled},
		InProgress:      {WaitingParts, QualityCheck, Cancelled},
		WaitingParts:    {InProgress, Cancelled},
		QualityCheck:    {WaitingRoadTest, QCPassed, Cancelled},
		WaitingRoadTest: {QualityCheck, Cancelled},
		QCPassed:        {Completed, Cancelled},
		Completed:       {ForPayment, Cancelled},
		ForPayment:      {Paid, Cancelled},
		Paid:            {Released, Cancelled},
	}
}

// StatusFromString converts a display string to a Status.
func StatusFromString(s string) (Status, error) {
	for status, str := range getStatusStrings() {
		if str == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidError(s)
}

// Validate checks if the Status value is valid.
// Unknown (0) and any other out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanTransitionTo reports whether the table allows moving from s to target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, allowed := range getTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// IsTerminal reports whether no further transitions exist from s.
func (s Status) IsTerminal() bool {
	return len(getTransitionTable()[s]) == 0
}

// IsActiveWork reports whether the status implies a technician is bound to
// the order. The technician reference on the order is only set in these
// statuses.
func (s Status) IsActiveWork() bool {
	return s == InProgress || s == WaitingParts
}

// ValidateCanHaveTechnician validates the consistency between order status and
// technician assignment: only active-work statuses carry a technician
// reference.
func (s Status) ValidateCanHaveTechnician(technician bool) error {
	if technician && !s.IsActiveWork() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a technician", s.String()),
		)
	}
	return nil
}

// TransitionTo moves to target when the table allows it. The operation name is
// carried into the error so callers see which action was attempted against
// the wrong status.
func (s Status) TransitionTo(target Status, operation string) (Status, error) {
	if err := target.Validate(); err != nil {
		return 0, err
	}
	if !s.CanTransitionTo(target) {
		return 0, errs.NewInvalidStateError("service order", operation, s.String())
	}
	return target, nil
}

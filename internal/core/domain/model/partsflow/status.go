package partsflow

import (
	"autoshop/internal/pkg/errs"
)

// Status is the lifecycle state of a parts request and its issuance.
type Status int

const (
	// StatusUnknown is the default uninitialized state.
	StatusUnknown Status = iota
	// StatusRequested means a technician has asked for the part.
	StatusRequested
	// StatusPrepared means the warehouse confirmed stock and created the
	// issuance shell with a captured unit price.
	StatusPrepared
	// StatusReadyForRelease means the prepared parts are staged at the counter.
	StatusReadyForRelease
	// StatusIssued is terminal: the warehouse signed and stock was debited.
	StatusIssued
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		StatusRequested:       "Requested",
		StatusPrepared:        "Prepared",
		StatusReadyForRelease: "Ready for Release",
		StatusIssued:          "Issued",
	}
}

func getTransitionTable() map[Status][]Status {
	return map[Status][]Status{
		StatusRequested:       {StatusPrepared},
		StatusPrepared:        {StatusReadyForRelease},
		StatusReadyForRelease: {StatusIssued},
		StatusIssued:          {},
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

// CanTransitionTo reports whether the flow may move to the target status.
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
		return s, errs.NewInvalidStateError("parts request", operation, s.String())
	}
	return target, nil
}

package inspection

import (
	"autoshop/internal/pkg/errs"
)

// CheckStatus is the lifecycle state of a quality check.
type CheckStatus int

const (
	// CheckStatusUnknown is the default uninitialized state.
	CheckStatusUnknown CheckStatus = iota
	// CheckStatusPending means the check exists but the foreman has not
	// signed yet.
	CheckStatusPending
	// CheckStatusInProgress means the foreman has signed and the technician
	// counter-signature is awaited.
	CheckStatusInProgress
	// CheckStatusCompleted means both signatures are in place.
	CheckStatusCompleted
	// CheckStatusApproved is terminal: the inspection passed.
	CheckStatusApproved
	// CheckStatusRejected is terminal: the inspection failed.
	CheckStatusRejected
)

func getCheckStatusStrings() map[CheckStatus]string {
	return map[CheckStatus]string{
		CheckStatusPending:    "Pending",
		CheckStatusInProgress: "In Progress",
		CheckStatusCompleted:  "Completed",
		CheckStatusApproved:   "Approved",
		CheckStatusRejected:   "Rejected",
	}
}

func getCheckTransitionTable() map[CheckStatus][]CheckStatus {
	return map[CheckStatus][]CheckStatus{
		CheckStatusPending:    {CheckStatusInProgress},
		CheckStatusInProgress: {CheckStatusCompleted},
		CheckStatusCompleted:  {CheckStatusApproved, CheckStatusRejected},
		CheckStatusApproved:   {},
		CheckStatusRejected:   {},
	}
}

// CheckStatusFromString converts a display string to a CheckStatus.
func CheckStatusFromString(s string) (CheckStatus, error) {
	for status, str := range getCheckStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return CheckStatusUnknown, errs.NewValueIsInvalidError(s)
}

// Validate checks the status holds a known value.
func (s CheckStatus) Validate() error {
	if _, ok := getCheckStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("checkStatus")
	}
	return nil
}

// String returns the display representation of the status.
func (s CheckStatus) String() string {
	if str, ok := getCheckStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether no further transitions are possible.
func (s CheckStatus) IsTerminal() bool {
	return len(getCheckTransitionTable()[s]) == 0
}

// CanTransitionTo reports whether the check may move to the target status.
func (s CheckStatus) CanTransitionTo(target CheckStatus) bool {
	for _, allowed := range getCheckTransitionTable()[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// TransitionTo validates the move to target and returns the new status, or an
// invalid-state error naming the attempted operation.
func (s CheckStatus) TransitionTo(target CheckStatus, operation string) (CheckStatus, error) {
	if !s.CanTransitionTo(target) {
		return s, errs.NewInvalidStateError("quality check", operation, s.String())
	}
	return target, nil
}

// OverallStatus is the foreman's summary verdict over the itemized results.
type OverallStatus int

const (
	// OverallUnknown means no verdict has been recorded yet.
	OverallUnknown OverallStatus = iota
	// OverallPass means the vehicle passed inspection.
	OverallPass
	// OverallFail means the vehicle failed inspection.
	OverallFail
	// OverallRequiresRoadTest means a road test must confirm the repair.
	OverallRequiresRoadTest
	// OverallPendingTechnicianReview means items need technician attention
	// before a verdict.
	OverallPendingTechnicianReview
)

func getOverallStatusStrings() map[OverallStatus]string {
	return map[OverallStatus]string{
		OverallPass:                    "Pass",
		OverallFail:                    "Fail",
		OverallRequiresRoadTest:        "Requires Road Test",
		OverallPendingTechnicianReview: "Pending Technician Review",
	}
}

// OverallStatusFromString converts a display string to an OverallStatus.
func OverallStatusFromString(s string) (OverallStatus, error) {
	for status, str := range getOverallStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return OverallUnknown, errs.NewValueIsInvalidError(s)
}

// Validate checks the verdict holds a known value.
func (s OverallStatus) Validate() error {
	if _, ok := getOverallStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("overallStatus")
	}
	return nil
}

// String returns the display representation of the verdict.
func (s OverallStatus) String() string {
	if str, ok := getOverallStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// ItemStatus is the result recorded against a single inspection item.
type ItemStatus int

const (
	// ItemStatusUnknown is the default uninitialized state.
	ItemStatusUnknown ItemStatus = iota
	// ItemStatusPass means the item checked out.
	ItemStatusPass
	// ItemStatusFail means the item failed.
	ItemStatusFail
	// ItemStatusNeedsAttention means the item needs follow-up work.
	ItemStatusNeedsAttention
)

func getItemStatusStrings() map[ItemStatus]string {
	return map[ItemStatus]string{
		ItemStatusPass:           "Pass",
		ItemStatusFail:           "Fail",
		ItemStatusNeedsAttention: "Needs Attention",
	}
}

// ItemStatusFromString converts a display string to an ItemStatus.
func ItemStatusFromString(s string) (ItemStatus, error) {
	for status, str := range getItemStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return ItemStatusUnknown, errs.NewValueIsInvalidError(s)
}

// Validate checks the item result holds a known value.
func (s ItemStatus) Validate() error {
	if _, ok := getItemStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("itemStatus")
	}
	return nil
}

// String returns the display representation of the item result.
func (s ItemStatus) String() string {
	if str, ok := getItemStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

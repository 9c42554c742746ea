package inspection

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrRoadTestIsNotConstructed is returned when a RoadTest instance was
	// not created through the NewRoadTest factory method.
	ErrRoadTestIsNotConstructed = errors.New("RoadTest must be created via NewRoadTest constructor")

	// ErrRoadTestAlreadyLogged is returned when logging results against a
	// road test that is already completed.
	ErrRoadTestAlreadyLogged = errors.New("road test already logged")
)

// RoadTest is the authorized drive that confirms a repair before the quality
// check verdict. The record's existence is the authorization: it is created
// by an advisor or service manager, and only then may results be logged.
type RoadTest struct {
	id             kernel.UUID
	checkID        kernel.UUID
	orderID        kernel.UUID
	authorizedBy   kernel.UUID
	authorizedAt   time.Time
	testerID       *kernel.UUID
	routeCompliant bool
	results        string
	completedAt    *time.Time

	isConstructed bool
}

// NewRoadTest authorizes a road test for a quality check.
func NewRoadTest(id, checkID, orderID, authorizedBy kernel.UUID, authorizedAt time.Time) (*RoadTest, error) {
	rt := &RoadTest{isConstructed: true}

	if err := errors.Join(
		rt.setID(id),
		rt.setCheckID(checkID),
		rt.setOrderID(orderID),
		rt.setAuthorizedBy(authorizedBy),
	); err != nil {
		return nil, err
	}

	rt.authorizedAt = authorizedAt
	return rt, nil
}

// RestoreRoadTest reconstructs a road test from persistence.
func RestoreRoadTest(id, checkID, orderID, authorizedBy kernel.UUID, authorizedAt time.Time,
	testerID *kernel.UUID, routeCompliant bool, results string, completedAt *time.Time) (*RoadTest, error) {
	rt, err := NewRoadTest(id, checkID, orderID, authorizedBy, authorizedAt)
	if err != nil {
		return nil, err
	}

	rt.testerID = testerID
	rt.routeCompliant = routeCompliant
	rt.results = results
	rt.completedAt = completedAt
	return rt, nil
}

// Validate ensures the RoadTest instance was properly constructed.
func (rt *RoadTest) Validate() error {
	if rt == nil || !rt.isConstructed {
		return ErrRoadTestIsNotConstructed
	}
	return nil
}

// ID returns the road test identifier.
func (rt *RoadTest) ID() kernel.UUID {
	return rt.id
}

// CheckID returns the quality check this road test belongs to.
func (rt *RoadTest) CheckID() kernel.UUID {
	return rt.checkID
}

// OrderID returns the service order being road tested.
func (rt *RoadTest) OrderID() kernel.UUID {
	return rt.orderID
}

// AuthorizedBy returns who authorized the test.
func (rt *RoadTest) AuthorizedBy() kernel.UUID {
	return rt.authorizedBy
}

// AuthorizedAt returns when the test was authorized.
func (rt *RoadTest) AuthorizedAt() time.Time {
	return rt.authorizedAt
}

// TesterID returns who drove the test, or nil before logging.
func (rt *RoadTest) TesterID() *kernel.UUID {
	return rt.testerID
}

// RouteCompliant reports whether the prescribed route was followed.
func (rt *RoadTest) RouteCompliant() bool {
	return rt.routeCompliant
}

// Results returns the logged observations.
func (rt *RoadTest) Results() string {
	return rt.results
}

// CompletedAt returns when the test was logged, or nil.
func (rt *RoadTest) CompletedAt() *time.Time {
	return rt.completedAt
}

// IsCompleted reports whether results have been logged.
func (rt *RoadTest) IsCompleted() bool {
	return rt.completedAt != nil
}

// LogResults records the drive: who tested, whether the route was followed
// and what was observed. A road test is logged exactly once.
func (rt *RoadTest) LogResults(testerID kernel.UUID, routeCompliant bool, results string, at time.Time) error {
	if rt.IsCompleted() {
		return ErrRoadTestAlreadyLogged
	}
	if err := testerID.Validate(); err != nil {
		return err
	}
	if results == "" {
		return errs.NewValueIsRequiredError("results")
	}

	rt.testerID = &testerID
	rt.routeCompliant = routeCompliant
	rt.results = results
	rt.completedAt = &at
	return nil
}

func (rt *RoadTest) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	rt.id = id
	return nil
}

func (rt *RoadTest) setCheckID(checkID kernel.UUID) error {
	if err := checkID.Validate(); err != nil {
		return err
	}
	rt.checkID = checkID
	return nil
}

func (rt *RoadTest) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	rt.orderID = orderID
	return nil
}

func (rt *RoadTest) setAuthorizedBy(authorizedBy kernel.UUID) error {
	if err := authorizedBy.Validate(); err != nil {
		return err
	}
	rt.authorizedBy = authorizedBy
	return nil
}

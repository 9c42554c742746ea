package kernel

import (
	"fmt"

	"autoshop/internal/pkg/errs"
)

// Role identifies the capacity in which an authenticated user acts.
// Every core operation receives the acting principal explicitly and enforces
// its own role checks; there is no ambient "current user".
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleAdvisor is the service advisor handling intake and billing.
	RoleAdvisor

	// RoleTechnician performs the assigned work and counter-signs records.
	RoleTechnician

	// RoleForeman conducts quality inspections.
	RoleForeman

	// RoleWarehouse prepares and issues parts.
	RoleWarehouse

	// RoleCashier collects payment and signs the gatepass cashier slot.
	RoleCashier

	// RoleAccounting signs the gatepass accounting slot.
	RoleAccounting

	// RoleWarrantyOfficer signs the gatepass warranty slot on warranty orders.
	RoleWarrantyOfficer

	// RoleServiceManager authorizes road tests and signs the gatepass manager slot.
	RoleServiceManager

	// RoleSecurity validates the gatepass and releases the vehicle.
	RoleSecurity

	// RoleJobController dispatches technicians to service orders.
	RoleJobController
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "Unknown",
		RoleAdvisor:         "Advisor",
		RoleTechnician:      "Technician",
		RoleForeman:         "Foreman",
		RoleWarehouse:       "Warehouse",
		RoleCashier:         "Cashier",
		RoleAccounting:      "Accounting",
		RoleWarrantyOfficer: "WarrantyOfficer",
		RoleServiceManager:  "ServiceManager",
		RoleSecurity:        "Security",
		RoleJobController:   "JobController",
	}
}

// RoleFromString parses a role name as carried in authentication tokens.
func RoleFromString(s string) (Role, error) {
	for role, name := range getRoleStrings() {
		if role != RoleUnknown && name == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// String returns the role name. Implements fmt.Stringer.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "Unknown"
}

// Validate rejects RoleUnknown and any out-of-range value.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok || r == RoleUnknown {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// Principal is the authenticated actor performing a core operation. It carries
// the user identity, the acting role, and, for technicians, the technician
// entity the user is linked to.
//
// Principal replaces any request-scoped "current user" state: it is constructed
// by the identity adapter and threaded as an explicit parameter through every
// command and query.
type Principal struct {
	userID       UUID
	role         Role
	technicianID *UUID
}

// NewPrincipal creates a Principal for the given user and role.
func NewPrincipal(userID UUID, role Role) (Principal, error) {
	if err := userID.Validate(); err != nil {
		return Principal{}, err
	}
	if err := role.Validate(); err != nil {
		return Principal{}, err
	}
	return Principal{userID: userID, role: role}, nil
}

// NewTechnicianPrincipal creates a Principal acting as a technician,
// linked to the technician entity it works as.
func NewTechnicianPrincipal(userID, technicianID UUID) (Principal, error) {
	p, err := NewPrincipal(userID, RoleTechnician)
	if err != nil {
		return Principal{}, err
	}
	if err := technicianID.Validate(); err != nil {
		return Principal{}, err
	}
	p.technicianID = &technicianID
	return p, nil
}

// UserID returns the authenticated user's identifier.
func (p Principal) UserID() UUID {
	return p.userID
}

// Role returns the capacity in which the user acts.
func (p Principal) Role() Role {
	return p.role
}

// TechnicianID returns the linked technician identifier, or nil when the
// principal is not a technician.
func (p Principal) TechnicianID() *UUID {
	return p.technicianID
}

// HasRole reports whether the principal acts in any of the given roles.
func (p Principal) HasRole(roles ...Role) bool {
	for _, role := range roles {
		if p.role == role {
			return true
		}
	}
	return false
}

// Validate ensures the principal was properly constructed.
func (p Principal) Validate() error {
	if err := p.userID.Validate(); err != nil {
		return err
	}
	return p.role.Validate()
}

// Package gatepass models the release gate a paid service order must clear
// before the vehicle leaves the lot: independent role-owned signature slots,
// a validity rule over the required ones, and the terminal release by
// security.
package gatepass

import (
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrGatepassIsNotConstructed is returned when a Gatepass instance was
	// not created through the NewGatepass factory method.
	ErrGatepassIsNotConstructed = errors.New("Gatepass must be created via NewGatepass constructor")

	// ErrAlreadyReleased is returned when releasing a vehicle that has
	// already left the lot.
	ErrAlreadyReleased = errors.New("vehicle already released")

	// ErrGatepassNotValid is returned when releasing before every required
	// slot is signed.
	ErrGatepassNotValid = errors.New("gatepass is missing required signatures")
)

// Slot names one signature slot on the gatepass.
type Slot int

const (
	// SlotUnknown is the default uninitialized state.
	SlotUnknown Slot = iota
	// SlotCashier confirms payment was received.
	SlotCashier
	// SlotAccounting confirms the books are settled.
	SlotAccounting
	// SlotWarranty confirms warranty paperwork, required only on warranty
	// orders.
	SlotWarranty
	// SlotServiceManager is the final managerial sign-off.
	SlotServiceManager
)

func getSlotStrings() map[Slot]string {
	return map[Slot]string{
		SlotCashier:        "Cashier",
		SlotAccounting:     "Accounting",
		SlotWarranty:       "Warranty",
		SlotServiceManager: "Service Manager",
	}
}

// Each slot is settable only by the role that owns it.
func getSlotRoles() map[Slot]kernel.Role {
	return map[Slot]kernel.Role{
		SlotCashier:        kernel.RoleCashier,
		SlotAccounting:     kernel.RoleAccounting,
		SlotWarranty:       kernel.RoleWarrantyOfficer,
		SlotServiceManager: kernel.RoleServiceManager,
	}
}

// SlotFromString converts a display string to a Slot.
func SlotFromString(s string) (Slot, error) {
	for slot, str := range getSlotStrings() {
		if str == s {
			return slot, nil
		}
	}
	return SlotUnknown, errs.NewValueIsInvalidError(s)
}

// Validate checks the slot holds a known value.
func (s Slot) Validate() error {
	if _, ok := getSlotStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("slot")
	}
	return nil
}

// String returns the display representation of the slot.
func (s Slot) String() string {
	if str, ok := getSlotStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Role returns the role that owns the slot.
func (s Slot) Role() kernel.Role {
	return getSlotRoles()[s]
}

// Gatepass is the multi-party release document for one paid service order.
// Slots are signed independently; the version field backs optimistic locking
// so concurrent signers cannot overwrite each other.
type Gatepass struct {
	id               kernel.UUID
	orderID          kernel.UUID
	billingID        kernel.UUID
	warrantyRequired bool
	signatures       map[Slot]kernel.Signature
	released         bool
	releasedBy       *kernel.UUID
	releasedAt       *time.Time
	version          int

	isConstructed bool
}

// NewGatepass opens the release gate for a paid order. warrantyRequired marks
// the warranty slot required, for orders flagged warranty at intake.
func NewGatepass(id, orderID, billingID kernel.UUID, warrantyRequired bool) (*Gatepass, error) {
	g := &Gatepass{isConstructed: true}

	if err := errors.Join(
		g.setID(id),
		g.setOrderID(orderID),
		g.setBillingID(billingID),
	); err != nil {
		return nil, err
	}

	g.warrantyRequired = warrantyRequired
	g.signatures = make(map[Slot]kernel.Signature)
	return g, nil
}

// RestoreGatepass reconstructs a gatepass from persistence.
func RestoreGatepass(id, orderID, billingID kernel.UUID, warrantyRequired bool,
	signatures map[Slot]kernel.Signature, released bool,
	releasedBy *kernel.UUID, releasedAt *time.Time, version int) (*Gatepass, error) {
	g, err := NewGatepass(id, orderID, billingID, warrantyRequired)
	if err != nil {
		return nil, err
	}

	for slot, sig := range signatures {
		if err := slot.Validate(); err != nil {
			return nil, err
		}
		g.signatures[slot] = sig
	}
	g.released = released
	g.releasedBy = releasedBy
	g.releasedAt = releasedAt
	g.version = version
	return g, nil
}

// Validate ensures the Gatepass instance was properly constructed.
func (g *Gatepass) Validate() error {
	if g == nil || !g.isConstructed {
		return ErrGatepassIsNotConstructed
	}
	return nil
}

// ID returns the gatepass identifier.
func (g *Gatepass) ID() kernel.UUID {
	return g.id
}

// OrderID returns the service order being released.
func (g *Gatepass) OrderID() kernel.UUID {
	return g.orderID
}

// BillingID returns the settled bill this gatepass covers.
func (g *Gatepass) BillingID() kernel.UUID {
	return g.billingID
}

// WarrantyRequired reports whether the warranty slot must be signed.
func (g *Gatepass) WarrantyRequired() bool {
	return g.warrantyRequired
}

// Signature returns the signature in the given slot; the zero value means
// unsigned.
func (g *Gatepass) Signature(slot Slot) kernel.Signature {
	return g.signatures[slot]
}

// Released reports whether the vehicle has left the lot.
func (g *Gatepass) Released() bool {
	return g.released
}

// ReleasedBy returns the security officer who released, or nil.
func (g *Gatepass) ReleasedBy() *kernel.UUID {
	return g.releasedBy
}

// ReleasedAt returns when the vehicle was released, or nil.
func (g *Gatepass) ReleasedAt() *time.Time {
	return g.releasedAt
}

// Version returns the optimistic locking version.
func (g *Gatepass) Version() int {
	return g.version
}

// RequiredSlots returns the slots that must be signed for this gatepass.
func (g *Gatepass) RequiredSlots() []Slot {
	slots := []Slot{SlotCashier, SlotAccounting, SlotServiceManager}
	if g.warrantyRequired {
		slots = append(slots, SlotWarranty)
	}
	return slots
}

// IsValid reports whether every required slot is signed.
func (g *Gatepass) IsValid() bool {
	for _, slot := range g.RequiredSlots() {
		if !g.signatures[slot].IsSigned() {
			return false
		}
	}
	return true
}

// Sign fills a slot. Only the role that owns the slot may sign it, each slot
// signs once, and nothing is signable after release.
func (g *Gatepass) Sign(slot Slot, signer kernel.UUID, role kernel.Role, at time.Time) error {
	if err := slot.Validate(); err != nil {
		return err
	}
	if g.released {
		return ErrAlreadyReleased
	}
	if role != slot.Role() {
		return errs.NewUnauthorizedError(role.String(), "sign the "+slot.String()+" gatepass slot")
	}
	if g.signatures[slot].IsSigned() {
		return errs.NewInvalidStateError("gatepass", "sign "+slot.String()+" slot", "signed")
	}

	sig, err := kernel.NewSignature(signer, at)
	if err != nil {
		return err
	}

	g.signatures[slot] = sig
	return nil
}

// Release lets the vehicle leave the lot. Security only, and only once every
// required slot is signed. Repeat calls fail with ErrAlreadyReleased.
func (g *Gatepass) Release(securityOfficer kernel.UUID, role kernel.Role, at time.Time) error {
	if g.released {
		return ErrAlreadyReleased
	}
	if role != kernel.RoleSecurity {
		return errs.NewUnauthorizedError(role.String(), "release the vehicle")
	}
	if !g.IsValid() {
		return ErrGatepassNotValid
	}
	if err := securityOfficer.Validate(); err != nil {
		return err
	}

	g.released = true
	g.releasedBy = &securityOfficer
	g.releasedAt = &at
	return nil
}

func (g *Gatepass) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	g.id = id
	return nil
}

func (g *Gatepass) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	g.orderID = orderID
	return nil
}

func (g *Gatepass) setBillingID(billingID kernel.UUID) error {
	if err := billingID.Validate(); err != nil {
		return err
	}
	g.billingID = billingID
	return nil
}

// Package part provides the inventory ledger entity every parts reservation
// touches. On-hand quantity is only ever debited through the repository's
// atomic conditional decrement at the Issued transition, never from the
// entity itself, so concurrent issuances can never oversell a part.
package part

import (
	"errors"
	"fmt"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrPartIsNotConstructed is returned when a Part instance was not created
	// through the NewPart factory method.
	ErrPartIsNotConstructed = errors.New("Part must be created via NewPart constructor")

	// ErrInsufficientStock is returned when a requested quantity exceeds the
	// on-hand quantity, either at the read-only availability check or at the
	// atomic debit.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Part is a stocked inventory item: identity, catalog data, on-hand quantity
// and the unit price captured onto issuances.
type Part struct {
	id       kernel.UUID
	name     string
	sku      string
	onHand   int
	price    float64
	supplier string

	isConstructed bool
}

// NewPart creates a catalog part with an initial on-hand quantity.
func NewPart(id kernel.UUID, name, sku string, onHand int, price float64, supplier string) (*Part, error) {
	p := &Part{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setSKU(sku),
		p.setOnHand(onHand),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	p.supplier = supplier
	return p, nil
}

// RestorePart reconstructs a part from persistence.
func RestorePart(id kernel.UUID, name, sku string, onHand int, price float64, supplier string) (*Part, error) {
	return NewPart(id, name, sku, onHand, price, supplier)
}

// Validate ensures the Part instance was properly constructed.
func (p *Part) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPartIsNotConstructed
	}
	return nil
}

// ID returns the part's unique identifier.
func (p *Part) ID() kernel.UUID {
	return p.id
}

// Name returns the catalog name.
func (p *Part) Name() string {
	return p.name
}

// SKU returns the stock-keeping unit code.
func (p *Part) SKU() string {
	return p.sku
}

// OnHand returns the quantity currently in stock as of the last read.
func (p *Part) OnHand() int {
	return p.onHand
}

// Price returns the current unit price. Issuances capture this value at
// preparation time; later price changes do not affect them.
func (p *Part) Price() float64 {
	return p.price
}

// Supplier returns the supplier name.
func (p *Part) Supplier() string {
	return p.supplier
}

// CheckAvailability is the read-only stock check used when preparing an
// issuance. It does not reserve anything: the authoritative guard is the
// conditional decrement executed at the Issued transition.
func (p *Part) CheckAvailability(qty int) error {
	if qty <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", qty))
	}
	if qty > p.onHand {
		return ErrInsufficientStock
	}
	return nil
}

func (p *Part) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Part) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	p.name = name
	return nil
}

func (p *Part) setSKU(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	p.sku = sku
	return nil
}

func (p *Part) setOnHand(onHand int) error {
	if onHand < 0 {
		return errs.NewValueIsInvalidErrorWithCause("onHand",
			fmt.Errorf("%d is negative", onHand))
	}
	p.onHand = onHand
	return nil
}

func (p *Part) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price",
			fmt.Errorf("%f is negative", price))
	}
	p.price = price
	return nil
}

package services

import (
	"fmt"
	"time"

	"autoshop/internal/core/domain/model/assignment"
	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/partsflow"
)

// DefaultLaborRate is the per-hour labor charge used when no rate is
// configured.
const DefaultLaborRate = 50.0

// BillingCalculator is a domain service that turns a service order's labor
// and parts history into an immutable billing record.
//
// Business rules:
//   - One labor line per completed assignment, billable hours times the shop
//     labor rate
//   - One part line per issued request, quantity times the unit price
//     captured at preparation
//   - Assignments still open and requests not yet issued contribute nothing
//   - Discount and warranty deduction are clamped inside the billing record
//     so no amount goes negative
type BillingCalculator struct {
	laborRate float64
}

// NewBillingCalculator creates a calculator charging the given hourly labor
// rate. A non-positive rate falls back to DefaultLaborRate.
func NewBillingCalculator(laborRate float64) BillingCalculator {
	if laborRate <= 0 {
		laborRate = DefaultLaborRate
	}
	return BillingCalculator{laborRate: laborRate}
}

// LaborRate returns the hourly rate the calculator charges.
func (c BillingCalculator) LaborRate() float64 {
	return c.laborRate
}

// Calculate builds the bill for an order. techNames and partNames map entity
// IDs to display names for the line descriptions; missing names fall back to
// generic labels.
func (c BillingCalculator) Calculate(id, orderID kernel.UUID, number string,
	assignments []*assignment.Assignment, techNames map[string]string,
	requests []*partsflow.Request, partNames map[string]string,
	discount, warrantyDeduction float64, generatedAt time.Time) (*billing.Billing, error) {

	var charges []billing.LineItem

	for _, a := range assignments {
		if err := a.Validate(); err != nil {
			return nil, err
		}
		if a.Status() != assignment.StatusCompleted {
			continue
		}
		hours := a.BillableHours()
		if hours <= 0 {
			continue
		}

		name, ok := techNames[a.TechnicianID().String()]
		if !ok {
			name = "technician"
		}
		line, err := billing.NewLaborLineItem(fmt.Sprintf("Labor: %s", name), hours, c.laborRate)
		if err != nil {
			return nil, err
		}
		charges = append(charges, line)
	}

	for _, r := range requests {
		if err := r.Validate(); err != nil {
			return nil, err
		}
		if r.Status() != partsflow.StatusIssued {
			continue
		}

		issuance := r.Issuance()
		name, ok := partNames[r.PartID().String()]
		if !ok {
			name = "part"
		}
		line, err := billing.NewPartLineItem(
			fmt.Sprintf("%s x%d", name, issuance.Quantity()),
			issuance.Quantity(), issuance.UnitPrice())
		if err != nil {
			return nil, err
		}
		charges = append(charges, line)
	}

	return billing.NewBilling(id, orderID, number, charges, discount, warrantyDeduction, generatedAt)
}

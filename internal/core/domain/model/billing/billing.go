package billing

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"
)

var (
	// ErrBillingIsNotConstructed is returned when a Billing instance was not
	// created through the NewBilling factory method.
	ErrBillingIsNotConstructed = errors.New("Billing must be created via NewBilling constructor")

	// ErrAlreadyBilled is returned when generating a bill for an order that
	// already has one. Billing records are never recomputed.
	ErrAlreadyBilled = errors.New("order already billed")
)

var numberPattern = regexp.MustCompile(`^BILL-\d{6}-\d{4}$`)

// FormatNumber renders a billing number like BILL-202608-0001 from the
// generation month and a per-month sequence.
func FormatNumber(at time.Time, seq int) string {
	return fmt.Sprintf("BILL-%s-%04d", at.Format("200601"), seq)
}

// Payment records how a bill was settled by the cashier.
type Payment struct {
	method     string
	reference  string
	amount     float64
	receivedBy kernel.UUID
	paidAt     time.Time
}

// Method returns how the customer paid.
func (p Payment) Method() string {
	return p.method
}

// Reference returns the external payment reference, if any.
func (p Payment) Reference() string {
	return p.reference
}

// Amount returns the settled amount, always the billing total.
func (p Payment) Amount() float64 {
	return p.amount
}

// ReceivedBy returns the cashier who took the payment.
func (p Payment) ReceivedBy() kernel.UUID {
	return p.receivedBy
}

// PaidAt returns when the payment was recorded.
func (p Payment) PaidAt() time.Time {
	return p.paidAt
}

// RestorePayment reconstructs a payment record from persistence.
func RestorePayment(method, reference string, amount float64, receivedBy kernel.UUID, paidAt time.Time) *Payment {
	return &Payment{
		method:     method,
		reference:  reference,
		amount:     amount,
		receivedBy: receivedBy,
		paidAt:     paidAt,
	}
}

// Billing is the immutable bill for one service order. Totals are computed
// once at construction: labor plus parts form the subtotal, discount and
// warranty deduction are each clamped so no intermediate amount goes
// negative, and only the status moves afterwards.
type Billing struct {
	id                kernel.UUID
	orderID           kernel.UUID
	number            string
	status            Status
	lines             []LineItem
	laborCost         float64
	partsCost         float64
	subtotal          float64
	discount          float64
	warrantyDeduction float64
	total             float64
	generatedAt       time.Time
	payment           *Payment

	isConstructed bool
}

// NewBilling computes a bill from labor and part charge lines plus the
// requested deductions. Deduction lines are appended only when their clamped
// amount is positive.
func NewBilling(id, orderID kernel.UUID, number string, charges []LineItem,
	discount, warrantyDeduction float64, generatedAt time.Time) (*Billing, error) {
	b := &Billing{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setNumber(number),
	); err != nil {
		return nil, err
	}
	if discount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("discount",
			fmt.Errorf("%f is negative", discount))
	}
	if warrantyDeduction < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("warrantyDeduction",
			fmt.Errorf("%f is negative", warrantyDeduction))
	}

	for _, line := range charges {
		switch line.Kind() {
		case LineItemKindLabor:
			b.laborCost += line.Amount()
		case LineItemKindPart:
			b.partsCost += line.Amount()
		default:
			return nil, errs.NewValueIsInvalidError("charges")
		}
		b.lines = append(b.lines, line)
	}

	b.subtotal = b.laborCost + b.partsCost

	// Clamp each deduction against what remains so no line drives the
	// running total below zero.
	b.discount = min(discount, b.subtotal)
	if b.discount > 0 {
		b.lines = append(b.lines, LineItem{
			kind:        LineItemKindDiscount,
			description: "Discount",
			amount:      b.discount,
		})
	}
	b.warrantyDeduction = min(warrantyDeduction, b.subtotal-b.discount)
	if b.warrantyDeduction > 0 {
		b.lines = append(b.lines, LineItem{
			kind:        LineItemKindWarrantyDeduction,
			description: "Warranty Deduction",
			amount:      b.warrantyDeduction,
		})
	}

	b.total = b.subtotal - b.discount - b.warrantyDeduction
	b.status = StatusGenerated
	b.generatedAt = generatedAt
	return b, nil
}

// RestoreBilling reconstructs a billing record from persistence.
func RestoreBilling(id, orderID kernel.UUID, number string, status Status, lines []LineItem,
	laborCost, partsCost, subtotal, discount, warrantyDeduction, total float64,
	generatedAt time.Time, payment *Payment) (*Billing, error) {
	b := &Billing{isConstructed: true}

	if err := errors.Join(
		b.setID(id),
		b.setOrderID(orderID),
		b.setNumber(number),
	); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	b.status = status
	b.lines = lines
	b.laborCost = laborCost
	b.partsCost = partsCost
	b.subtotal = subtotal
	b.discount = discount
	b.warrantyDeduction = warrantyDeduction
	b.total = total
	b.generatedAt = generatedAt
	b.payment = payment
	return b, nil
}

// Validate ensures the Billing instance was properly constructed.
func (b *Billing) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBillingIsNotConstructed
	}
	return nil
}

// ID returns the billing identifier.
func (b *Billing) ID() kernel.UUID {
	return b.id
}

// OrderID returns the billed service order.
func (b *Billing) OrderID() kernel.UUID {
	return b.orderID
}

// Number returns the sequential billing number.
func (b *Billing) Number() string {
	return b.number
}

// Status returns the record's lifecycle state.
func (b *Billing) Status() Status {
	return b.status
}

// Lines returns the ordered billing lines.
func (b *Billing) Lines() []LineItem {
	return append([]LineItem(nil), b.lines...)
}

// LaborCost returns the summed labor charges.
func (b *Billing) LaborCost() float64 {
	return b.laborCost
}

// PartsCost returns the summed part charges.
func (b *Billing) PartsCost() float64 {
	return b.partsCost
}

// Subtotal returns labor plus parts before deductions.
func (b *Billing) Subtotal() float64 {
	return b.subtotal
}

// Discount returns the clamped discount applied.
func (b *Billing) Discount() float64 {
	return b.discount
}

// WarrantyDeduction returns the clamped warranty deduction applied.
func (b *Billing) WarrantyDeduction() float64 {
	return b.warrantyDeduction
}

// Total returns the amount due.
func (b *Billing) Total() float64 {
	return b.total
}

// GeneratedAt returns when the bill was computed.
func (b *Billing) GeneratedAt() time.Time {
	return b.generatedAt
}

// Payment returns the settlement record, or nil while unpaid.
func (b *Billing) Payment() *Payment {
	return b.payment
}

// MarkForPayment hands the bill to the cashier. The caller flips the order
// status in the same transaction so the two never diverge.
func (b *Billing) MarkForPayment() error {
	status, err := b.status.TransitionTo(StatusForPayment, "mark for payment")
	if err != nil {
		return err
	}
	b.status = status
	return nil
}

// RecordPayment settles the bill at exactly its total.
func (b *Billing) RecordPayment(method, reference string, receivedBy kernel.UUID, at time.Time) error {
	status, err := b.status.TransitionTo(StatusPaid, "record payment")
	if err != nil {
		return err
	}
	if method == "" {
		return errs.NewValueIsRequiredError("method")
	}
	if err := receivedBy.Validate(); err != nil {
		return err
	}

	b.status = status
	b.payment = &Payment{
		method:     method,
		reference:  reference,
		amount:     b.total,
		receivedBy: receivedBy,
		paidAt:     at,
	}
	return nil
}

// Cancel voids the bill alongside its cancelled order.
func (b *Billing) Cancel() error {
	status, err := b.status.TransitionTo(StatusCancelled, "cancel billing")
	if err != nil {
		return err
	}
	b.status = status
	return nil
}

func (b *Billing) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Billing) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	b.orderID = orderID
	return nil
}

func (b *Billing) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	if !numberPattern.MatchString(number) {
		return errs.NewValueIsInvalidErrorWithCause("number",
			fmt.Errorf("%s does not match BILL-YYYYMM-NNNN", number))
	}
	b.number = number
	return nil
}

package billing

import (
	"fmt"

	"autoshop/internal/pkg/errs"
)

// LineItemKind distinguishes what a billing line charges or deducts.
type LineItemKind int

const (
	// LineItemKindUnknown is the default uninitialized state.
	LineItemKindUnknown LineItemKind = iota
	// LineItemKindLabor charges worked hours at the shop labor rate.
	LineItemKindLabor
	// LineItemKindPart charges issued parts at the captured unit price.
	LineItemKindPart
	// LineItemKindDiscount deducts a discount from the subtotal.
	LineItemKindDiscount
	// LineItemKindWarrantyDeduction deducts the warranty-covered amount.
	LineItemKindWarrantyDeduction
)

func getLineItemKindStrings() map[LineItemKind]string {
	return map[LineItemKind]string{
		LineItemKindLabor:             "Labor",
		LineItemKindPart:              "Part",
		LineItemKindDiscount:          "Discount",
		LineItemKindWarrantyDeduction: "Warranty Deduction",
	}
}

// LineItemKindFromString converts a display string to a LineItemKind.
func LineItemKindFromString(s string) (LineItemKind, error) {
	for kind, str := range getLineItemKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return LineItemKindUnknown, errs.NewValueIsInvalidError(s)
}

// String returns the display representation of the kind.
func (k LineItemKind) String() string {
	if str, ok := getLineItemKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// LineItem is one immutable billing line. Charges carry a positive amount;
// discount and warranty lines carry the deducted amount, also positive, with
// the kind telling them apart.
type LineItem struct {
	kind        LineItemKind
	description string
	quantity    float64
	unitPrice   float64
	amount      float64
}

// NewLaborLineItem builds a labor charge: worked hours at the shop rate.
func NewLaborLineItem(description string, hours, rate float64) (LineItem, error) {
	if description == "" {
		return LineItem{}, errs.NewValueIsRequiredError("description")
	}
	if hours < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("hours",
			fmt.Errorf("%f is negative", hours))
	}
	if rate < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("rate",
			fmt.Errorf("%f is negative", rate))
	}
	return LineItem{
		kind:        LineItemKindLabor,
		description: description,
		quantity:    hours,
		unitPrice:   rate,
		amount:      hours * rate,
	}, nil
}

// NewPartLineItem builds a parts charge: issued quantity at the unit price
// captured when the issuance was prepared.
func NewPartLineItem(description string, quantity int, unitPrice float64) (LineItem, error) {
	if description == "" {
		return LineItem{}, errs.NewValueIsRequiredError("description")
	}
	if quantity <= 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if unitPrice < 0 {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%f is negative", unitPrice))
	}
	return LineItem{
		kind:        LineItemKindPart,
		description: description,
		quantity:    float64(quantity),
		unitPrice:   unitPrice,
		amount:      float64(quantity) * unitPrice,
	}, nil
}

// RestoreLineItem reconstructs a billing line from persistence.
func RestoreLineItem(kind LineItemKind, description string, quantity, unitPrice, amount float64) LineItem {
	return LineItem{
		kind:        kind,
		description: description,
		quantity:    quantity,
		unitPrice:   unitPrice,
		amount:      amount,
	}
}

// Kind returns what the line charges or deducts.
func (li LineItem) Kind() LineItemKind {
	return li.kind
}

// Description returns the line description.
func (li LineItem) Description() string {
	return li.description
}

// Quantity returns hours for labor lines and units for part lines.
func (li LineItem) Quantity() float64 {
	return li.quantity
}

// UnitPrice returns the rate or captured part price.
func (li LineItem) UnitPrice() float64 {
	return li.unitPrice
}

// Amount returns the line total.
func (li LineItem) Amount() float64 {
	return li.amount
}

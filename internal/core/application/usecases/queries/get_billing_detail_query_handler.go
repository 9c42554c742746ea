package queries

import (
	"context"
	"database/sql"
	"errors"

	"autoshop/internal/core/domain/model/billing"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetBillingDetailQueryHandler reads one bill with its line items from the
// database.
type GetBillingDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetBillingDetailQueryHandler creates a handler for bill detail queries.
// Requires a GORM database connection for query execution.
func NewGetBillingDetailQueryHandler(db *gorm.DB) GetBillingDetailQueryHandler {
	return GetBillingDetailQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// has no billing record yet.
func (h GetBillingDetailQueryHandler) Handle(
	ctx context.Context,
	query GetBillingDetailQuery,
) (GetBillingDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetBillingDetailQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			number,
			status,
			labor_cost,
			parts_cost,
			subtotal,
			discount,
			warranty_deduction,
			total,
			generated_at,
			payment_method,
			payment_reference,
			payment_paid_at
		FROM billings
		WHERE order_id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetBillingDetailQueryResponse
	var id, orderID uuid.UUID
	var status int

	err := row.Scan(
		&id,
		&orderID,
		&resp.Number,
		&status,
		&resp.LaborCost,
		&resp.PartsCost,
		&resp.Subtotal,
		&resp.Discount,
		&resp.WarrantyDeduction,
		&resp.Total,
		&resp.GeneratedAt,
		&resp.PaymentMethod,
		&resp.PaymentReference,
		&resp.PaidAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetBillingDetailQueryResponse{}, errs.NewObjectNotFoundError("billing", query.OrderID().String())
		}
		return GetBillingDetailQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetBillingDetailQueryResponse{}, err
	}
	resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetBillingDetailQueryResponse{}, err
	}
	resp.Status = billing.Status(status).String()

	lines, err := h.readLines(ctx, id)
	if err != nil {
		return GetBillingDetailQueryResponse{}, err
	}
	resp.Lines = lines

	return resp, nil
}

func (h GetBillingDetailQueryHandler) readLines(
	ctx context.Context,
	billingID uuid.UUID,
) ([]BillingLineResponse, error) {
	lines := make([]BillingLineResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			kind,
			description,
			quantity,
			unit_price,
			amount
		FROM billing_lines
		WHERE billing_id = ?
		ORDER BY position
	`, billingID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var line BillingLineResponse
		var kind int

		err = rows.Scan(
			&kind,
			&line.Description,
			&line.Quantity,
			&line.UnitPrice,
			&line.Amount,
		)
		if err != nil {
			return nil, err
		}

		line.Kind = billing.LineItemKind(kind).String()
		lines = append(lines, line)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

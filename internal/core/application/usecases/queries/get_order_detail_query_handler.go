package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"
	"autoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderDetailQueryHandler reads one service order's detail card from the
// database, joining in the technician's name and billing number when present.
type GetOrderDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderDetailQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderDetailQueryHandler(db *gorm.DB) GetOrderDetailQueryHandler {
	return GetOrderDetailQueryHandler{db: db}
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// does not exist.
func (h GetOrderDetailQueryHandler) Handle(
	ctx context.Context,
	query GetOrderDetailQuery,
) (GetOrderDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderDetailQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.customer_id,
			o.vehicle_id,
			o.status,
			o.slip_number,
			o.customer_notes,
			o.is_walk_in,
			o.is_warranty,
			o.warranty_type,
			COALESCE(t.name, ''),
			o.arrived_at,
			o.checked_in_at,
			o.labor_hours,
			o.total_cost,
			COALESCE(b.number, '')
		FROM service_orders o
		LEFT JOIN technicians t ON t.id = o.technician_id
		LEFT JOIN billings b ON b.id = o.billing_id
		WHERE o.id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetOrderDetailQueryResponse
	var id, customerID, vehicleID uuid.UUID
	var status int
	var arrivedAt, checkedInAt *time.Time

	err := row.Scan(
		&id,
		&customerID,
		&vehicleID,
		&status,
		&resp.SlipNumber,
		&resp.CustomerNotes,
		&resp.IsWalkIn,
		&resp.IsWarranty,
		&resp.WarrantyType,
		&resp.TechnicianName,
		&arrivedAt,
		&checkedInAt,
		&resp.LaborHours,
		&resp.TotalCost,
		&resp.BillingNumber,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetOrderDetailQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
		}
		return GetOrderDetailQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:])
	if err != nil {
		return GetOrderDetailQueryResponse{}, err
	}
	resp.Status = serviceorder.Status(status).String()
	resp.ArrivedAt = arrivedAt
	resp.CheckedInAt = checkedInAt

	return resp, nil
}

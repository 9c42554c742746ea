package queries

import (
	"context"
	"time"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/serviceorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersByStatusQueryHandler reads the shop floor board from the database.
//
// Example:
//
//	handler := NewGetOrdersByStatusQueryHandler(db)
//	query, _ := NewGetOrdersByStatusQuery(serviceorder.ForPayment)
//
//	rows, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to read board: %v", err)
//	    return err
//	}
type GetOrdersByStatusQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersByStatusQueryHandler creates a handler for shop floor board queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersByStatusQueryHandler(db *gorm.DB) GetOrdersByStatusQueryHandler {
	return GetOrdersByStatusQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders in the requested status.
// Results are sorted by arrival time then ID, so the longest-waiting vehicle
// tops the board.
func (h GetOrdersByStatusQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersByStatusQuery,
) ([]GetOrdersByStatusQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetOrdersByStatusQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			vehicle_id,
			status,
			slip_number,
			is_walk_in,
			is_warranty,
			technician_id,
			arrived_at
		FROM service_orders
		WHERE status = ?
		ORDER BY arrived_at NULLS LAST, id
	`, int(query.Status())).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetOrdersByStatusQueryResponse
		var id, customerID, vehicleID uuid.UUID
		var technicianID *uuid.UUID
		var status int
		var arrivedAt *time.Time

		err = rows.Scan(
			&id,
			&customerID,
			&vehicleID,
			&status,
			&resp.SlipNumber,
			&resp.IsWalkIn,
			&resp.IsWarranty,
			&technicianID,
			&arrivedAt,
		)
		if err != nil {
			return nil, err
		}

		resp.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.CustomerID, err = kernel.UUIDFromBytes(customerID[:])
		if err != nil {
			return nil, err
		}
		resp.VehicleID, err = kernel.UUIDFromBytes(vehicleID[:])
		if err != nil {
			return nil, err
		}
		if technicianID != nil {
			techID, techErr := kernel.UUIDFromBytes((*technicianID)[:])
			if techErr != nil {
				return nil, techErr
			}
			resp.TechnicianID = &techID
		}
		resp.Status = serviceorder.Status(status).String()
		resp.ArrivedAt = arrivedAt
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

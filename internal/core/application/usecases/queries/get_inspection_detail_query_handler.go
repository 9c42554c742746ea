package queries

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"autoshop/internal/core/domain/model/inspection"
	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetInspectionDetailQueryHandler reads one quality check sheet from the
// database, joining in the road test record when one exists.
type GetInspectionDetailQueryHandler struct {
	db *gorm.DB
}

// NewGetInspectionDetailQueryHandler creates a handler for inspection queries.
// Requires a GORM database connection for query execution.
func NewGetInspectionDetailQueryHandler(db *gorm.DB) GetInspectionDetailQueryHandler {
	return GetInspectionDetailQueryHandler{db: db}
}

// checklistItemRow mirrors the JSON shape the repository stores checklist
// items in.
type checklistItemRow struct {
	Name   string `json:"name"`
	Status int    `json:"status"`
	Notes  string `json:"notes"`
}

// Handle executes the query. Returns an ObjectNotFoundError when the order
// has no quality check.
func (h GetInspectionDetailQueryHandler) Handle(
	ctx context.Context,
	query GetInspectionDetailQuery,
) (GetInspectionDetailQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetInspectionDetailQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			qc.id,
			qc.order_id,
			qc.status,
			qc.overall_status,
			qc.items,
			qc.road_test_required,
			qc.foreman_signed,
			qc.technician_signed,
			qc.qc_passed,
			qc.created_at,
			qc.completed_at,
			rt.authorized_by,
			rt.authorized_at,
			rt.route_compliant,
			rt.results,
			rt.completed_at
		FROM quality_checks qc
		LEFT JOIN road_tests rt ON rt.check_id = qc.id
		WHERE qc.order_id = ?
	`, query.OrderID().Bytes()).Row()

	var resp GetInspectionDetailQueryResponse
	var id, orderID uuid.UUID
	var status, overallStatus int
	var itemsRaw []byte
	var rtAuthorizedBy *uuid.UUID
	var rtAuthorizedAt, rtCompletedAt *time.Time
	var rtRouteCompliant *bool
	var rtResults *string

	err := row.Scan(
		&id,
		&orderID,
		&status,
		&overallStatus,
		&itemsRaw,
		&resp.RoadTestRequired,
		&resp.ForemanSigned,
		&resp.TechnicianSigned,
		&resp.QCPassed,
		&resp.CreatedAt,
		&resp.CompletedAt,
		&rtAuthorizedBy,
		&rtAuthorizedAt,
		&rtRouteCompliant,
		&rtResults,
		&rtCompletedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return GetInspectionDetailQueryResponse{}, errs.NewObjectNotFoundError("quality check", query.OrderID().String())
		}
		return GetInspectionDetailQueryResponse{}, err
	}

	resp.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return GetInspectionDetailQueryResponse{}, err
	}
	resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
	if err != nil {
		return GetInspectionDetailQueryResponse{}, err
	}
	resp.Status = inspection.CheckStatus(status).String()
	resp.OverallStatus = inspection.OverallStatus(overallStatus).String()

	if len(itemsRaw) > 0 {
		var items []checklistItemRow
		if err = json.Unmarshal(itemsRaw, &items); err != nil {
			return GetInspectionDetailQueryResponse{}, err
		}
		resp.Items = make([]InspectionItemResponse, 0, len(items))
		for _, item := range items {
			resp.Items = append(resp.Items, InspectionItemResponse{
				Name:   item.Name,
				Status: inspection.ItemStatus(item.Status).String(),
				Notes:  item.Notes,
			})
		}
	}

	if rtAuthorizedBy != nil && rtAuthorizedAt != nil {
		authorizedBy, rtErr := kernel.UUIDFromBytes((*rtAuthorizedBy)[:])
		if rtErr != nil {
			return GetInspectionDetailQueryResponse{}, rtErr
		}
		roadTest := &RoadTestResponse{
			AuthorizedBy: authorizedBy,
			AuthorizedAt: *rtAuthorizedAt,
			CompletedAt:  rtCompletedAt,
		}
		if rtRouteCompliant != nil {
			roadTest.RouteCompliant = *rtRouteCompliant
		}
		if rtResults != nil {
			roadTest.Results = *rtResults
		}
		resp.RoadTest = roadTest
	}

	return resp, nil
}

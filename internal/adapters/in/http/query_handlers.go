package http

import (
	"net/http"
	"time"

	"autoshop/internal/core/application/usecases/queries"
	"autoshop/internal/core/domain/model/serviceorder"

	"github.com/labstack/echo/v4"
)

// OrderSummaryResponse is one row on the shop floor board.
type OrderSummaryResponse struct {
	ID           string     `json:"id"`
	CustomerID   string     `json:"customerId"`
	VehicleID    string     `json:"vehicleId"`
	Status       string     `json:"status"`
	SlipNumber   string     `json:"slipNumber"`
	IsWalkIn     bool       `json:"isWalkIn"`
	IsWarranty   bool       `json:"isWarranty"`
	TechnicianID *string    `json:"technicianId,omitempty"`
	ArrivedAt    *time.Time `json:"arrivedAt,omitempty"`
}

// GetOrdersByStatus handles GET /api/v1/orders?status=...
//
// @Summary List orders in a lifecycle status
// @Tags queries
// @Produce json
// @Param status query string true "lifecycle status"
// @Success 200 {array} OrderSummaryResponse
// @Failure 400 {object} Error
// @Security BearerAuth
// @Router /orders [get]
func (s *Server) GetOrdersByStatus(ctx echo.Context) error {
	status, err := serviceorder.StatusFromString(ctx.QueryParam("status"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrdersByStatusQuery(status)
	if err != nil {
		return respondError(ctx, err)
	}

	orders, err := s.queryHandlers.GetOrdersByStatus.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]OrderSummaryResponse, len(orders))
	for i, order := range orders {
		var technicianID *string
		if order.TechnicianID != nil {
			id := order.TechnicianID.String()
			technicianID = &id
		}

		response[i] = OrderSummaryResponse{
			ID:           order.ID.String(),
			CustomerID:   order.CustomerID.String(),
			VehicleID:    order.VehicleID.String(),
			Status:       order.Status,
			SlipNumber:   order.SlipNumber,
			IsWalkIn:     order.IsWalkIn,
			IsWarranty:   order.IsWarranty,
			TechnicianID: technicianID,
			ArrivedAt:    order.ArrivedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// OrderDetailResponse is the full view of one service order.
type OrderDetailResponse struct {
	ID             string     `json:"id"`
	CustomerID     string     `json:"customerId"`
	VehicleID      string     `json:"vehicleId"`
	Status         string     `json:"status"`
	SlipNumber     string     `json:"slipNumber"`
	CustomerNotes  string     `json:"customerNotes"`
	IsWalkIn       bool       `json:"isWalkIn"`
	IsWarranty     bool       `json:"isWarranty"`
	WarrantyType   string     `json:"warrantyType,omitempty"`
	TechnicianName string     `json:"technicianName,omitempty"`
	ArrivedAt      *time.Time `json:"arrivedAt,omitempty"`
	CheckedInAt    *time.Time `json:"checkedInAt,omitempty"`
	LaborHours     float64    `json:"laborHours"`
	TotalCost      float64    `json:"totalCost"`
	BillingNumber  string     `json:"billingNumber,omitempty"`
}

// GetOrderDetail handles GET /api/v1/orders/:orderID.
//
// @Summary Get the full view of one order
// @Tags queries
// @Produce json
// @Param orderID path string true "order id"
// @Success 200 {object} OrderDetailResponse
// @Failure 404 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID} [get]
func (s *Server) GetOrderDetail(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderDetailQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	order, err := s.queryHandlers.GetOrderDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderDetailResponse{
		ID:             order.ID.String(),
		CustomerID:     order.CustomerID.String(),
		VehicleID:      order.VehicleID.String(),
		Status:         order.Status,
		SlipNumber:     order.SlipNumber,
		CustomerNotes:  order.CustomerNotes,
		IsWalkIn:       order.IsWalkIn,
		IsWarranty:     order.IsWarranty,
		WarrantyType:   order.WarrantyType,
		TechnicianName: order.TechnicianName,
		ArrivedAt:      order.ArrivedAt,
		CheckedInAt:    order.CheckedInAt,
		LaborHours:     order.LaborHours,
		TotalCost:      order.TotalCost,
		BillingNumber:  order.BillingNumber,
	})
}

// BillingLineResponse is one printed line on the bill.
type BillingLineResponse struct {
	Kind        string  `json:"kind"`
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Amount      float64 `json:"amount"`
}

// BillingDetailResponse is the full view of an order's bill.
type BillingDetailResponse struct {
	ID                string                `json:"id"`
	OrderID           string                `json:"orderId"`
	Number            string                `json:"number"`
	Status            string                `json:"status"`
	Lines             []BillingLineResponse `json:"lines"`
	LaborCost         float64               `json:"laborCost"`
	PartsCost         float64               `json:"partsCost"`
	Subtotal          float64               `json:"subtotal"`
	Discount          float64               `json:"discount"`
	WarrantyDeduction float64               `json:"warrantyDeduction"`
	Total             float64               `json:"total"`
	GeneratedAt       time.Time             `json:"generatedAt"`
	PaymentMethod     string                `json:"paymentMethod,omitempty"`
	PaymentReference  string                `json:"paymentReference,omitempty"`
	PaidAt            *time.Time            `json:"paidAt,omitempty"`
}

// GetBillingDetail handles GET /api/v1/orders/:orderID/billing.
//
// @Summary Get the bill attached to an order
// @Tags queries
// @Produce json
// @Param orderID path string true "order id"
// @Success 200 {object} BillingDetailResponse
// @Failure 404 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/billing [get]
func (s *Server) GetBillingDetail(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetBillingDetailQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	bill, err := s.queryHandlers.GetBillingDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	lines := make([]BillingLineResponse, len(bill.Lines))
	for i, line := range bill.Lines {
		lines[i] = BillingLineResponse{
			Kind:        line.Kind,
			Description: line.Description,
			Quantity:    line.Quantity,
			UnitPrice:   line.UnitPrice,
			Amount:      line.Amount,
		}
	}

	return ctx.JSON(http.StatusOK, BillingDetailResponse{
		ID:                bill.ID.String(),
		OrderID:           bill.OrderID.String(),
		Number:            bill.Number,
		Status:            bill.Status,
		Lines:             lines,
		LaborCost:         bill.LaborCost,
		PartsCost:         bill.PartsCost,
		Subtotal:          bill.Subtotal,
		Discount:          bill.Discount,
		WarrantyDeduction: bill.WarrantyDeduction,
		Total:             bill.Total,
		GeneratedAt:       bill.GeneratedAt,
		PaymentMethod:     bill.PaymentMethod,
		PaymentReference:  bill.PaymentReference,
		PaidAt:            bill.PaidAt,
	})
}

// InspectionItemJSON is one checklist line on the inspection view.
type InspectionItemJSON struct {
	Name   string `json:"name"`
	Status string `json:"status"`
	Notes  string `json:"notes,omitempty"`
}

// RoadTestJSON is the road test record attached to the check.
type RoadTestJSON struct {
	AuthorizedBy   string     `json:"authorizedBy"`
	AuthorizedAt   time.Time  `json:"authorizedAt"`
	RouteCompliant bool       `json:"routeCompliant"`
	Results        string     `json:"results,omitempty"`
	CompletedAt    *time.Time `json:"completedAt,omitempty"`
}

// InspectionDetailResponse is the full view of an order's quality check.
type InspectionDetailResponse struct {
	ID               string               `json:"id"`
	OrderID          string               `json:"orderId"`
	Status           string               `json:"status"`
	OverallStatus    string               `json:"overallStatus"`
	Items            []InspectionItemJSON `json:"items"`
	RoadTestRequired bool                 `json:"roadTestRequired"`
	ForemanSigned    bool                 `json:"foremanSigned"`
	TechnicianSigned bool                 `json:"technicianSigned"`
	QCPassed         bool                 `json:"qcPassed"`
	CreatedAt        time.Time            `json:"createdAt"`
	CompletedAt      *time.Time           `json:"completedAt,omitempty"`
	RoadTest         *RoadTestJSON        `json:"roadTest,omitempty"`
}

// GetInspectionDetail handles GET /api/v1/orders/:orderID/inspection.
//
// @Summary Get the quality check attached to an order
// @Tags queries
// @Produce json
// @Param orderID path string true "order id"
// @Success 200 {object} InspectionDetailResponse
// @Failure 404 {object} Error
// @Security BearerAuth
// @Router /orders/{orderID}/inspection [get]
func (s *Server) GetInspectionDetail(ctx echo.Context) error {
	orderID, err := pathUUID(ctx, "orderID")
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetInspectionDetailQuery(orderID)
	if err != nil {
		return respondError(ctx, err)
	}

	check, err := s.queryHandlers.GetInspectionDetail.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	items := make([]InspectionItemJSON, len(check.Items))
	for i, item := range check.Items {
		items[i] = InspectionItemJSON{
			Name:   item.Name,
			Status: item.Status,
			Notes:  item.Notes,
		}
	}

	var roadTest *RoadTestJSON
	if check.RoadTest != nil {
		roadTest = &RoadTestJSON{
			AuthorizedBy:   check.RoadTest.AuthorizedBy.String(),
			AuthorizedAt:   check.RoadTest.AuthorizedAt,
			RouteCompliant: check.RoadTest.RouteCompliant,
			Results:        check.RoadTest.Results,
			CompletedAt:    check.RoadTest.CompletedAt,
		}
	}

	return ctx.JSON(http.StatusOK, InspectionDetailResponse{
		ID:               check.ID.String(),
		OrderID:          check.OrderID.String(),
		Status:           check.Status,
		OverallStatus:    check.OverallStatus,
		Items:            items,
		RoadTestRequired: check.RoadTestRequired,
		ForemanSigned:    check.ForemanSigned,
		TechnicianSigned: check.TechnicianSigned,
		QCPassed:         check.QCPassed,
		CreatedAt:        check.CreatedAt,
		CompletedAt:      check.CompletedAt,
		RoadTest:         roadTest,
	})
}

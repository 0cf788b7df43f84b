// Package http exposes the application's commands and queries over HTTP.
// The server is a thin adapter: it parses requests, builds command or query
// objects and maps domain errors to status codes. No business logic lives here.
package http

import (
	"errors"
	"net/http"
	"time"

	"litstock/internal/core/application/usecases/commands"
	"litstock/internal/core/application/usecases/queries"
	"litstock/internal/core/domain/model/inventory"
	"litstock/internal/core/domain/model/kernel"
	"litstock/internal/core/domain/model/order"
	"litstock/internal/core/domain/model/organization"
	"litstock/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Handlers bundles every command and query handler the server dispatches to.
type Handlers struct {
	CreateOrder        commands.CreateOrderCommandHandler
	AddOrderItem       commands.AddOrderItemCommandHandler
	UpdateOrderItem    commands.UpdateOrderItemCommandHandler
	RemoveOrderItem    commands.RemoveOrderItemCommandHandler
	ChangeOrderStatus  commands.ChangeOrderStatusCommandHandler
	LockOrder          commands.LockOrderCommandHandler
	UnlockOrder        commands.UnlockOrderCommandHandler
	DeleteOrder        commands.DeleteOrderCommandHandler
	ReserveStock       commands.ReserveStockCommandHandler
	ReleaseStock       commands.ReleaseStockCommandHandler
	AdjustStock        commands.AdjustStockCommandHandler
	TransferStock      commands.TransferStockCommandHandler
	ReverseAdjustment  commands.ReverseAdjustmentCommandHandler
	CreateOrganization commands.CreateOrganizationCommandHandler
	CreateLiterature   commands.CreateLiteratureCommandHandler

	GetAvailableStock queries.GetAvailableStockQueryHandler
	GetStockMovements queries.GetStockMovementsQueryHandler
}

// Server routes HTTP requests to command and query handlers.
type Server struct {
	handlers Handlers
}

// NewServer creates an HTTP server over the given handlers.
func NewServer(handlers Handlers) *Server {
	return &Server{handlers: handlers}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/organizations", s.CreateOrganization)
	api.GET("/organizations/:organizationID/stock", s.GetAvailableStock)
	api.POST("/literature", s.CreateLiterature)

	api.POST("/orders", s.CreateOrder)
	api.DELETE("/orders/:orderID", s.DeleteOrder)
	api.POST("/orders/:orderID/items", s.AddOrderItem)
	api.PUT("/orders/:orderID/items/:literatureID", s.UpdateOrderItem)
	api.DELETE("/orders/:orderID/items/:literatureID", s.RemoveOrderItem)
	api.POST("/orders/:orderID/status", s.ChangeOrderStatus)
	api.POST("/orders/:orderID/lock", s.LockOrder)
	api.POST("/orders/:orderID/unlock", s.UnlockOrder)

	api.POST("/stock/reserve", s.ReserveStock)
	api.POST("/stock/release", s.ReleaseStock)
	api.POST("/stock/adjust", s.AdjustStock)
	api.POST("/stock/transfer", s.TransferStock)
	api.GET("/stock/movements", s.GetStockMovements)
	api.POST("/stock/movements/:entryID/reverse", s.ReverseAdjustment)
}

type errorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func fail(ctx echo.Context, err error) error {
	return ctx.JSON(statusForError(err), errorResponse{
		Code:    statusForError(err),
		Message: err.Error(),
	})
}

// statusForError maps domain errors to HTTP status codes. Anything not
// recognized is treated as a bad request rather than leaking a 500, because
// every handler error below the transport either failed validation or hit a
// business rule.
func statusForError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrStatusConflict),
		errors.Is(err, order.ErrOrderIsLocked),
		errors.Is(err, order.ErrNotLockOwner),
		errors.Is(err, order.ErrDuplicateItem),
		errors.Is(err, order.ErrInvalidStatusTransition),
		errors.Is(err, inventory.ErrInsufficientStock),
		errors.Is(err, inventory.ErrOverRelease),
		errors.Is(err, inventory.ErrNegativeQuantity):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

func parseUUIDParam(ctx echo.Context, name string) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param(name))
}

// CreateOrganization handles POST /api/v1/organizations.
func (s *Server) CreateOrganization(ctx echo.Context) error {
	var req struct {
		Name     string  `json:"name"`
		OrgType  string  `json:"orgType"`
		ParentID *string `json:"parentId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	orgType, err := organization.TypeFromString(req.OrgType)
	if err != nil {
		return fail(ctx, err)
	}

	var parentID *kernel.UUID
	if req.ParentID != nil {
		id, parseErr := kernel.UUIDFromString(*req.ParentID)
		if parseErr != nil {
			return fail(ctx, parseErr)
		}
		parentID = &id
	}

	organizationID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrganizationCommand(organizationID, req.Name, orgType, parentID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.CreateOrganization.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": organizationID.String()})
}

// CreateLiterature handles POST /api/v1/literature.
func (s *Server) CreateLiterature(ctx echo.Context) error {
	var req struct {
		Title    string `json:"title"`
		Category string `json:"category"`
		Price    string `json:"price"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	price, err := kernel.NewMoneyFromString(req.Price)
	if err != nil {
		return fail(ctx, err)
	}

	literatureID := kernel.NewUUID()
	cmd, err := commands.NewCreateLiteratureCommand(literatureID, req.Title, req.Category, price)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.CreateLiterature.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": literatureID.String()})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req struct {
		FromOrganizationID string `json:"fromOrganizationId"`
		ToOrganizationID   string `json:"toOrganizationId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	fromOrgID, err := kernel.UUIDFromString(req.FromOrganizationID)
	if err != nil {
		return fail(ctx, err)
	}
	toOrgID, err := kernel.UUIDFromString(req.ToOrganizationID)
	if err != nil {
		return fail(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, fromOrgID, toOrgID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, map[string]string{"id": orderID.String()})
}

// DeleteOrder handles DELETE /api/v1/orders/:orderID.
func (s *Server) DeleteOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewDeleteOrderCommand(orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddOrderItem handles POST /api/v1/orders/:orderID/items.
func (s *Server) AddOrderItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req struct {
		LiteratureID string `json:"literatureId"`
		Quantity     int    `json:"quantity"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	literatureID, err := kernel.UUIDFromString(req.LiteratureID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAddOrderItemCommand(orderID, literatureID, req.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.AddOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// UpdateOrderItem handles PUT /api/v1/orders/:orderID/items/:literatureID.
func (s *Server) UpdateOrderItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}
	literatureID, err := parseUUIDParam(ctx, "literatureID")
	if err != nil {
		return fail(ctx, err)
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUpdateOrderItemCommand(orderID, literatureID, req.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.UpdateOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// RemoveOrderItem handles DELETE /api/v1/orders/:orderID/items/:literatureID.
func (s *Server) RemoveOrderItem(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}
	literatureID, err := parseUUIDParam(ctx, "literatureID")
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewRemoveOrderItemCommand(orderID, literatureID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.RemoveOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ChangeOrderStatus handles POST /api/v1/orders/:orderID/status.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req struct {
		Status string `json:"status"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, target)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// LockOrder handles POST /api/v1/orders/:orderID/lock.
func (s *Server) LockOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req struct {
		UserID string `json:"userId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewLockOrderCommand(orderID, userID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.LockOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// UnlockOrder handles POST /api/v1/orders/:orderID/unlock.
func (s *Server) UnlockOrder(ctx echo.Context) error {
	orderID, err := parseUUIDParam(ctx, "orderID")
	if err != nil {
		return fail(ctx, err)
	}

	var req struct {
		UserID  string `json:"userId"`
		IsAdmin bool   `json:"isAdmin"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewUnlockOrderCommand(orderID, userID, req.IsAdmin)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.UnlockOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

type stockRequest struct {
	OrganizationID string `json:"organizationId"`
	LiteratureID   string `json:"literatureId"`
	Quantity       int    `json:"quantity"`
}

func (r stockRequest) parse() (kernel.UUID, kernel.UUID, error) {
	orgID, err := kernel.UUIDFromString(r.OrganizationID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	litID, err := kernel.UUIDFromString(r.LiteratureID)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return orgID, litID, nil
}

// ReserveStock handles POST /api/v1/stock/reserve.
func (s *Server) ReserveStock(ctx echo.Context) error {
	var req stockRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	orgID, litID, err := req.parse()
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewReserveStockCommand(orgID, litID, req.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.ReserveStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReleaseStock handles POST /api/v1/stock/release.
func (s *Server) ReleaseStock(ctx echo.Context) error {
	var req stockRequest
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	orgID, litID, err := req.parse()
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewReleaseStockCommand(orgID, litID, req.Quantity)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.ReleaseStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// AdjustStock handles POST /api/v1/stock/adjust.
func (s *Server) AdjustStock(ctx echo.Context) error {
	var req struct {
		OrganizationID string `json:"organizationId"`
		LiteratureID   string `json:"literatureId"`
		Delta          int    `json:"delta"`
		Reason         string `json:"reason"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	orgID, err := kernel.UUIDFromString(req.OrganizationID)
	if err != nil {
		return fail(ctx, err)
	}
	litID, err := kernel.UUIDFromString(req.LiteratureID)
	if err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewAdjustStockCommand(orgID, litID, req.Delta, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.AdjustStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// TransferStock handles POST /api/v1/stock/transfer.
func (s *Server) TransferStock(ctx echo.Context) error {
	var req struct {
		FromOrganizationID string  `json:"fromOrganizationId"`
		ToOrganizationID   string  `json:"toOrganizationId"`
		LiteratureID       string  `json:"literatureId"`
		Quantity           int     `json:"quantity"`
		OrderID            *string `json:"orderId"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	fromOrgID, err := kernel.UUIDFromString(req.FromOrganizationID)
	if err != nil {
		return fail(ctx, err)
	}
	toOrgID, err := kernel.UUIDFromString(req.ToOrganizationID)
	if err != nil {
		return fail(ctx, err)
	}
	litID, err := kernel.UUIDFromString(req.LiteratureID)
	if err != nil {
		return fail(ctx, err)
	}

	var orderID *kernel.UUID
	if req.OrderID != nil {
		id, parseErr := kernel.UUIDFromString(*req.OrderID)
		if parseErr != nil {
			return fail(ctx, parseErr)
		}
		orderID = &id
	}

	cmd, err := commands.NewTransferStockCommand(fromOrgID, toOrgID, litID, req.Quantity, orderID)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.TransferStock.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// ReverseAdjustment handles POST /api/v1/stock/movements/:entryID/reverse.
func (s *Server) ReverseAdjustment(ctx echo.Context) error {
	entryID, err := parseUUIDParam(ctx, "entryID")
	if err != nil {
		return fail(ctx, err)
	}

	var req struct {
		Reason string `json:"reason"`
	}
	if err := ctx.Bind(&req); err != nil {
		return fail(ctx, err)
	}

	cmd, err := commands.NewReverseAdjustmentCommand(entryID, req.Reason)
	if err != nil {
		return fail(ctx, err)
	}

	if err := s.handlers.ReverseAdjustment.Handle(ctx.Request().Context(), cmd); err != nil {
		return fail(ctx, err)
	}

	return ctx.NoContent(http.StatusOK)
}

// GetAvailableStock handles GET /api/v1/organizations/:organizationID/stock.
func (s *Server) GetAvailableStock(ctx echo.Context) error {
	organizationID, err := parseUUIDParam(ctx, "organizationID")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetAvailableStockQuery(organizationID)
	if err != nil {
		return fail(ctx, err)
	}

	stock, err := s.handlers.GetAvailableStock.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	type stockRow struct {
		LiteratureID string `json:"literatureId"`
		Title        string `json:"title"`
		Quantity     int    `json:"quantity"`
		Reserved     int    `json:"reserved"`
		Available    int    `json:"available"`
	}
	response := make([]stockRow, len(stock))
	for i, row := range stock {
		response[i] = stockRow{
			LiteratureID: row.LiteratureID.String(),
			Title:        row.Title,
			Quantity:     row.Quantity,
			Reserved:     row.Reserved,
			Available:    row.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetStockMovements handles GET /api/v1/stock/movements with optional orderId,
// organizationId and literatureId filters.
func (s *Server) GetStockMovements(ctx echo.Context) error {
	parseFilter := func(name string) (*kernel.UUID, error) {
		raw := ctx.QueryParam(name)
		if raw == "" {
			return nil, nil
		}
		id, err := kernel.UUIDFromString(raw)
		if err != nil {
			return nil, err
		}
		return &id, nil
	}

	orderID, err := parseFilter("orderId")
	if err != nil {
		return fail(ctx, err)
	}
	organizationID, err := parseFilter("organizationId")
	if err != nil {
		return fail(ctx, err)
	}
	literatureID, err := parseFilter("literatureId")
	if err != nil {
		return fail(ctx, err)
	}

	query, err := queries.NewGetStockMovementsQuery(orderID, organizationID, literatureID)
	if err != nil {
		return fail(ctx, err)
	}

	movements, err := s.handlers.GetStockMovements.Handle(ctx.Request().Context(), query)
	if err != nil {
		return fail(ctx, err)
	}

	type movementRow struct {
		ID                 string  `json:"id"`
		Kind               string  `json:"kind"`
		FromOrganizationID *string `json:"fromOrganizationId,omitempty"`
		ToOrganizationID   string  `json:"toOrganizationId"`
		LiteratureID       string  `json:"literatureId"`
		Quantity           int     `json:"quantity"`
		UnitPrice          string  `json:"unitPrice"`
		TotalAmount        string  `json:"totalAmount"`
		OrderID            *string `json:"orderId,omitempty"`
		Notes              string  `json:"notes,omitempty"`
		CreatedAt          string  `json:"createdAt"`
	}
	response := make([]movementRow, len(movements))
	for i, entry := range movements {
		row := movementRow{
			ID:               entry.ID.String(),
			Kind:             entry.Kind.String(),
			ToOrganizationID: entry.ToOrganizationID.String(),
			LiteratureID:     entry.LiteratureID.String(),
			Quantity:         entry.Quantity,
			UnitPrice:        entry.UnitPrice.String(),
			TotalAmount:      entry.TotalAmount.String(),
			Notes:            entry.Notes,
			CreatedAt:        entry.CreatedAt.Format(time.RFC3339),
		}
		if entry.FromOrganizationID != nil {
			from := entry.FromOrganizationID.String()
			row.FromOrganizationID = &from
		}
		if entry.OrderID != nil {
			orderRef := entry.OrderID.String()
			row.OrderID = &orderRef
		}
		response[i] = row
	}

	return ctx.JSON(http.StatusOK, response)
}

// Package http exposes the order lifecycle over a REST API. Handlers bind
// and parse at the boundary, delegate to command and query handlers, and map
// typed domain errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"

	"medlogistics/internal/core/application/usecases/commands"
	"medlogistics/internal/core/application/usecases/queries"
	"medlogistics/internal/core/domain/model/audit"
	"medlogistics/internal/core/domain/model/kernel"
	"medlogistics/internal/core/domain/model/order"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionHandler      commands.TransitionOrderCommandHandler
	rollbackHandler        commands.RollbackOrderCommandHandler
	updateReadinessHandler commands.UpdateOrderReadinessCommandHandler

	getValidTransitionsHandler queries.GetValidTransitionsQueryHandler
	getOrderHistoryHandler     queries.GetOrderHistoryQueryHandler
	getWorkflowStatsHandler    queries.GetWorkflowStatsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionHandler commands.TransitionOrderCommandHandler,
	rollbackHandler commands.RollbackOrderCommandHandler,
	updateReadinessHandler commands.UpdateOrderReadinessCommandHandler,
	getValidTransitionsHandler queries.GetValidTransitionsQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	getWorkflowStatsHandler queries.GetWorkflowStatsQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:         createOrderHandler,
		transitionHandler:          transitionHandler,
		rollbackHandler:            rollbackHandler,
		updateReadinessHandler:     updateReadinessHandler,
		getValidTransitionsHandler: getValidTransitionsHandler,
		getOrderHistoryHandler:     getOrderHistoryHandler,
		getWorkflowStatsHandler:    getWorkflowStatsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id/transitions", s.GetValidTransitions)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.POST("/orders/:id/rollback", s.RollbackOrder)
	api.PATCH("/orders/:id/readiness", s.UpdateReadiness)
	api.GET("/orders/:id/history", s.GetOrderHistory)
	api.GET("/stats", s.GetWorkflowStats)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), req.PatientName, req.Procedure)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	aggregate, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(aggregate))
}

// GetValidTransitions handles GET /api/v1/orders/:id/transitions?role=.
func (s *Server) GetValidTransitions(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	role, err := workflow.ParseRole(ctx.QueryParam("role"))
	if err != nil {
		return badRequest(ctx, "Invalid role: "+ctx.QueryParam("role"))
	}

	query, err := queries.NewGetValidTransitionsQuery(orderID, role)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	transitions, err := s.getValidTransitionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]ValidTransition, len(transitions))
	for i, t := range transitions {
		response[i] = ValidTransition{
			ToStatus:                 t.ToStatus.String(),
			Description:              t.Description,
			Available:                t.Available,
			RequiredActions:          t.RequiredActions,
			Warnings:                 t.Warnings,
			Automatic:                t.Automatic,
			EstimatedDurationMinutes: t.EstimatedDurationMinutes,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// TransitionOrder handles POST /api/v1/orders/:id/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := workflow.ParseStatus(req.ToStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+req.ToStatus)
	}

	role, err := workflow.ParseRole(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+req.Role)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, req.ActorID, role,
		req.Notes, s.requestMetadata(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid transition data: "+err.Error())
	}

	result, err := s.transitionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{
		Order:        toOrderResponse(result.Order),
		AuditEntryID: result.Entry.ID().String(),
	})
}

// RollbackOrder handles POST /api/v1/orders/:id/rollback.
func (s *Server) RollbackOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req RollbackRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := workflow.ParseStatus(req.TargetStatus)
	if err != nil {
		return badRequest(ctx, "Invalid target status: "+req.TargetStatus)
	}

	role, err := workflow.ParseRole(req.Role)
	if err != nil {
		return badRequest(ctx, "Invalid role: "+req.Role)
	}

	cmd, err := commands.NewRollbackOrderCommand(orderID, target, req.ActorID, role,
		req.Reason, s.requestMetadata(ctx))
	if err != nil {
		return badRequest(ctx, "Invalid rollback data: "+err.Error())
	}

	result, err := s.rollbackHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TransitionResponse{
		Order:        toOrderResponse(result.Order),
		AuditEntryID: result.Entry.ID().String(),
	})
}

// UpdateReadiness handles PATCH /api/v1/orders/:id/readiness.
func (s *Server) UpdateReadiness(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var req ReadinessRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderReadinessCommand(orderID, workflow.Readiness{
		ResourcesVerified:    req.ResourcesVerified,
		TemplatesAvailable:   req.TemplatesAvailable,
		TechniciansAvailable: req.TechniciansAvailable,
		EquipmentReady:       req.EquipmentReady,
		EvidenceUploaded:     req.EvidenceUploaded,
		DeliveryNoteSigned:   req.DeliveryNoteSigned,
	})
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	aggregate, err := s.updateReadinessHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(aggregate))
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := make([]HistoryEntry, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntry{
			ID:         entry.ID.String(),
			FromStatus: entry.FromStatus.String(),
			ToStatus:   entry.ToStatus.String(),
			ChangedBy:  entry.ChangedBy,
			Role:       entry.Role.String(),
			ChangedAt:  entry.ChangedAt,
			Notes:      entry.Notes,
			IsRollback: entry.IsRollback,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWorkflowStats handles GET /api/v1/stats.
func (s *Server) GetWorkflowStats(ctx echo.Context) error {
	stats, err := s.getWorkflowStatsHandler.Handle(ctx.Request().Context(), queries.NewGetWorkflowStatsQuery())
	if err != nil {
		return s.writeError(ctx, err)
	}

	response := Stats{
		TotalTransitions:    stats.TotalTransitions,
		Rollbacks:           stats.Rollbacks,
		TransitionsByRole:   stats.TransitionsByRole,
		AverageStageSeconds: stats.AverageStageSeconds,
		TopTransitions:      make([]TransitionCount, len(stats.TopTransitions)),
	}
	for i, pair := range stats.TopTransitions {
		response.TopTransitions[i] = TransitionCount{
			FromStatus: pair.FromStatus,
			ToStatus:   pair.ToStatus,
			Count:      pair.Count,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) requestMetadata(ctx echo.Context) audit.Metadata {
	return audit.Metadata{
		IP:    ctx.RealIP(),
		Agent: ctx.Request().UserAgent(),
	}
}

// writeError maps typed domain errors onto HTTP status codes.
func (s *Server) writeError(ctx echo.Context, err error) error {
	var preconditionErr *errs.PreconditionFailedError
	if errors.As(err, &preconditionErr) {
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:            http.StatusUnprocessableEntity,
			Message:         preconditionErr.Error(),
			RequiredActions: preconditionErr.RequiredActions,
			Warnings:        preconditionErr.Warnings,
		})
	}

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return jsonError(ctx, http.StatusNotFound, err)
	case errors.Is(err, errs.ErrTransitionNotFound):
		return jsonError(ctx, http.StatusBadRequest, err)
	case errors.Is(err, errs.ErrNotAuthorized):
		return jsonError(ctx, http.StatusForbidden, err)
	case errors.Is(err, errs.ErrConcurrencyConflict):
		return jsonError(ctx, http.StatusConflict, err)
	case errors.Is(err, errs.ErrRollbackPolicy):
		return jsonError(ctx, http.StatusUnprocessableEntity, err)
	case errors.Is(err, errs.ErrValueIsRequired), errors.Is(err, errs.ErrValueIsInvalid):
		return jsonError(ctx, http.StatusBadRequest, err)
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func jsonError(ctx echo.Context, code int, err error) error {
	return ctx.JSON(code, Error{Code: code, Message: err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}

func toOrderResponse(aggregate *order.Order) Order {
	readiness := aggregate.Readiness()

	return Order{
		ID:          aggregate.ID().String(),
		PatientName: aggregate.PatientName(),
		Procedure:   aggregate.Procedure(),
		Status:      aggregate.Status().String(),
		Readiness: ReadinessRequest{
			ResourcesVerified:    readiness.ResourcesVerified,
			TemplatesAvailable:   readiness.TemplatesAvailable,
			TechniciansAvailable: readiness.TechniciansAvailable,
			EquipmentReady:       readiness.EquipmentReady,
			EvidenceUploaded:     readiness.EvidenceUploaded,
			DeliveryNoteSigned:   readiness.DeliveryNoteSigned,
		},
		UpdatedAt: aggregate.UpdatedAt(),
	}
}

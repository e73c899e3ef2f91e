// Package http exposes the fulfillment engine over a REST API built on echo.
// Every mutation endpoint runs the command, then reloads a fresh read-model
// snapshot so clients reconcile without re-deriving state locally.
package http

import (
	"net/http"

	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/commands"
	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/queries"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/kernel"
	"github.com/T0MGL/0rdefy-sub010/internal/core/domain/model/session"
	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server handles HTTP requests for the fulfillment workflow.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createSessionHandler   commands.CreateSessionCommandHandler
	updatePickingHandler   commands.UpdatePickingCommandHandler
	finishPickingHandler   commands.FinishPickingCommandHandler
	packUnitHandler        commands.PackUnitCommandHandler
	printLabelHandler      commands.PrintLabelCommandHandler
	completeSessionHandler commands.CompleteSessionCommandHandler
	cancelSessionHandler   commands.CancelSessionCommandHandler

	// Query handlers
	getEligibleOrdersHandler queries.GetEligibleOrdersQueryHandler
	getActiveSessionsHandler queries.GetActiveSessionsQueryHandler
	getSessionHandler        queries.GetSessionQueryHandler
	getPickingListHandler    queries.GetPickingListQueryHandler
	getPackingListHandler    queries.GetPackingListQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query handlers.
func NewServer(
	createSessionHandler commands.CreateSessionCommandHandler,
	updatePickingHandler commands.UpdatePickingCommandHandler,
	finishPickingHandler commands.FinishPickingCommandHandler,
	packUnitHandler commands.PackUnitCommandHandler,
	printLabelHandler commands.PrintLabelCommandHandler,
	completeSessionHandler commands.CompleteSessionCommandHandler,
	cancelSessionHandler commands.CancelSessionCommandHandler,
	getEligibleOrdersHandler queries.GetEligibleOrdersQueryHandler,
	getActiveSessionsHandler queries.GetActiveSessionsQueryHandler,
	getSessionHandler queries.GetSessionQueryHandler,
	getPickingListHandler queries.GetPickingListQueryHandler,
	getPackingListHandler queries.GetPackingListQueryHandler,
) *Server {
	return &Server{
		createSessionHandler:     createSessionHandler,
		updatePickingHandler:     updatePickingHandler,
		finishPickingHandler:     finishPickingHandler,
		packUnitHandler:          packUnitHandler,
		printLabelHandler:        printLabelHandler,
		completeSessionHandler:   completeSessionHandler,
		cancelSessionHandler:     cancelSessionHandler,
		getEligibleOrdersHandler: getEligibleOrdersHandler,
		getActiveSessionsHandler: getActiveSessionsHandler,
		getSessionHandler:        getSessionHandler,
		getPickingListHandler:    getPickingListHandler,
		getPackingListHandler:    getPackingListHandler,
	}
}

// RegisterRoutes binds every fulfillment endpoint under /api/v1/fulfillment.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api/v1/fulfillment")

	g.GET("/orders/eligible", s.GetEligibleOrders)

	g.POST("/sessions", s.CreateSession)
	g.GET("/sessions", s.GetActiveSessions)
	g.GET("/sessions/:sessionId", s.GetSession)

	g.GET("/sessions/:sessionId/picking", s.GetPickingList)
	g.PUT("/sessions/:sessionId/picking/items/:productId", s.UpdatePicking)
	g.POST("/sessions/:sessionId/picking/finish", s.FinishPicking)

	g.GET("/sessions/:sessionId/packing", s.GetPackingList)
	g.POST("/sessions/:sessionId/packing/units", s.PackUnit)
	g.POST("/sessions/:sessionId/orders/:orderId/pack-remaining", s.PackRemaining)
	g.POST("/sessions/:sessionId/orders/:orderId/label", s.PrintLabel)

	g.POST("/sessions/:sessionId/complete", s.CompleteSession)
	g.POST("/sessions/:sessionId/cancel", s.CancelSession)
}

// GetEligibleOrders handles GET /orders/eligible - lists confirmed orders
// that can join a new session.
func (s *Server) GetEligibleOrders(ctx echo.Context) error {
	query := queries.NewGetEligibleOrdersQuery()

	orders, err := s.getEligibleOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]EligibleOrderResponse, 0, len(orders))
	for _, eligible := range orders {
		lines := make([]OrderLineResponse, 0, len(eligible.Lines))
		for _, line := range eligible.Lines {
			lines = append(lines, OrderLineResponse{
				ProductID:   line.ProductID.String(),
				ProductName: line.ProductName,
				Quantity:    line.Quantity,
			})
		}
		response = append(response, EligibleOrderResponse{
			ID:           eligible.ID.String(),
			Number:       eligible.Number,
			CustomerName: eligible.CustomerName,
			Lines:        lines,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateSession handles POST /sessions - opens a session over the selected
// orders and returns the initial picking snapshot.
func (s *Server) CreateSession(ctx echo.Context) error {
	var request CreateSessionRequest
	if err := ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderIDs := make([]kernel.UUID, 0, len(request.OrderIDs))
	for _, raw := range request.OrderIDs {
		orderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return writeError(ctx, err)
		}
		orderIDs = append(orderIDs, orderID)
	}

	sessionID := kernel.NewUUID()
	code, err := kernel.GenerateCode()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateSessionCommand(sessionID, code, orderIDs)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.createSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.loadPickingSnapshot(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, snapshot)
}

// GetActiveSessions handles GET /sessions - lists running sessions.
func (s *Server) GetActiveSessions(ctx echo.Context) error {
	query := queries.NewGetActiveSessionsQuery()

	sessions, err := s.getActiveSessionsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]ActiveSessionResponse, 0, len(sessions))
	for _, active := range sessions {
		response = append(response, ActiveSessionResponse{
			ID:         active.ID.String(),
			Code:       active.Code,
			Status:     active.Status,
			CreatedAt:  active.CreatedAt,
			OrderCount: active.OrderCount,
		})
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetSession handles GET /sessions/:sessionId - resumes a running session by
// returning the snapshot matching its current stage. Terminal sessions are
// immutable history and answer with a conflict.
func (s *Server) GetSession(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSessionQuery(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	header, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	switch header.Status {
	case session.Picking.String():
		snapshot, loadErr := s.loadPickingSnapshot(ctx, sessionID)
		if loadErr != nil {
			return writeError(ctx, loadErr)
		}
		return ctx.JSON(http.StatusOK, snapshot)
	case session.Packing.String():
		snapshot, loadErr := s.loadPackingSnapshot(ctx, sessionID)
		if loadErr != nil {
			return writeError(ctx, loadErr)
		}
		return ctx.JSON(http.StatusOK, snapshot)
	default:
		return writeError(ctx, session.ErrSessionClosed)
	}
}

// GetPickingList handles GET /sessions/:sessionId/picking.
func (s *Server) GetPickingList(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.loadPickingSnapshot(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// UpdatePicking handles PUT /sessions/:sessionId/picking/items/:productId -
// sets the picked quantity of one product and returns the fresh snapshot.
func (s *Server) UpdatePicking(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(ctx.Param("productId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request UpdatePickingRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdatePickingCommand(sessionID, productID, request.Quantity)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.updatePickingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.loadPickingSnapshot(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// FinishPicking handles POST /sessions/:sessionId/picking/finish - advances
// the session to packing and returns the initial packing snapshot.
func (s *Server) FinishPicking(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewFinishPickingCommand(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.finishPickingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.loadPackingSnapshot(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// GetPackingList handles GET /sessions/:sessionId/packing.
func (s *Server) GetPackingList(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.loadPackingSnapshot(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// PackUnit handles POST /sessions/:sessionId/packing/units - allocates one
// picked unit to an order and returns the fresh packing snapshot.
func (s *Server) PackUnit(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	var request PackUnitRequest
	if err = ctx.Bind(&request); err != nil {
		return writeBadRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(request.OrderID)
	if err != nil {
		return writeError(ctx, err)
	}

	productID, err := kernel.UUIDFromString(request.ProductID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPackUnitCommand(sessionID, orderID, productID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.packUnitHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.loadPackingSnapshot(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// PackRemaining handles POST /sessions/:sessionId/orders/:orderId/pack-remaining.
// It drives the pack-unit command once per outstanding unit of the order,
// one transaction each, and stops at the first failure. The response reports
// how many units were allocated and why the loop stopped.
func (s *Server) PackRemaining(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	before, err := s.loadPackingList(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	var target *queries.PackingOrderResponse
	for i := range before.Orders {
		if before.Orders[i].ID.IsEqual(orderID) {
			target = &before.Orders[i]
			break
		}
	}
	if target == nil {
		return writeError(ctx, errs.NewObjectNotFoundErrorWithCause("orderID", orderID, session.ErrOrderNotInSession))
	}

	packedUnits := 0
	stopReason := ""

	for _, line := range target.Lines {
		outstanding := line.QuantityNeeded - line.QuantityPacked
		for range outstanding {
			cmd, cmdErr := commands.NewPackUnitCommand(sessionID, orderID, line.ProductID)
			if cmdErr != nil {
				return writeError(ctx, cmdErr)
			}

			if handleErr := s.packUnitHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
				stopReason = handleErr.Error()
				break
			}
			packedUnits++
		}
		if stopReason != "" {
			break
		}
	}

	snapshot, err := s.loadPackingSnapshot(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, PackRemainingResponse{
		PackedUnits: packedUnits,
		StopReason:  stopReason,
		Snapshot:    snapshot,
	})
}

// PrintLabel handles POST /sessions/:sessionId/orders/:orderId/label - emits
// the shipping label of a fully packed order.
func (s *Server) PrintLabel(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("orderId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewPrintLabelCommand(sessionID, orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	document, err := s.printLabelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	snapshot, err := s.loadPackingSnapshot(ctx, sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, LabelResponse{
		Label:    toLabelDocumentResponse(document),
		Snapshot: snapshot,
	})
}

// CompleteSession handles POST /sessions/:sessionId/complete - closes a
// fully packed session and returns its final header.
func (s *Server) CompleteSession(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteSessionCommand(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.completeSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetSessionQuery(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	header, err := s.getSessionHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toSessionResponse(header))
}

// CancelSession handles POST /sessions/:sessionId/cancel - abandons a
// running session and releases its orders back to the eligible pool.
func (s *Server) CancelSession(ctx echo.Context) error {
	sessionID, err := kernel.UUIDFromString(ctx.Param("sessionId"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCancelSessionCommand(sessionID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.cancelSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) loadPickingSnapshot(ctx echo.Context, sessionID kernel.UUID) (PickingSnapshotResponse, error) {
	query, err := queries.NewGetPickingListQuery(sessionID)
	if err != nil {
		return PickingSnapshotResponse{}, err
	}

	list, err := s.getPickingListHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return PickingSnapshotResponse{}, err
	}

	return toPickingSnapshotResponse(list), nil
}

func (s *Server) loadPackingSnapshot(ctx echo.Context, sessionID kernel.UUID) (PackingSnapshotResponse, error) {
	list, err := s.loadPackingList(ctx, sessionID)
	if err != nil {
		return PackingSnapshotResponse{}, err
	}

	return toPackingSnapshotResponse(list), nil
}

func (s *Server) loadPackingList(ctx echo.Context, sessionID kernel.UUID) (queries.GetPackingListQueryResponse, error) {
	query, err := queries.NewGetPackingListQuery(sessionID)
	if err != nil {
		return queries.GetPackingListQueryResponse{}, err
	}

	return s.getPackingListHandler.Handle(ctx.Request().Context(), query)
}

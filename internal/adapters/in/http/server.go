// Package http exposes the order fulfillment API over HTTP. Handlers stay
// thin: bind and validate the payload, build the command or query, forward
// it to the application layer, and map the result onto the wire.
package http

import (
	"net/http"

	"agrimarket/internal/core/application/usecases/commands"
	"agrimarket/internal/core/application/usecases/queries"
	"agrimarket/internal/core/domain/model/actor"
	"agrimarket/internal/core/domain/model/kernel"
	"agrimarket/internal/core/domain/model/order"
	"agrimarket/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator used by the server.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate runs struct tag validation on a bound request.
func (v *Validator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request", err)
	}
	return nil
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	createOrderHandler     commands.CreateOrderCommandHandler
	transitionOrderHandler commands.TransitionOrderCommandHandler
	cancelOrderHandler     commands.CancelOrderCommandHandler
	assignPartnerHandler   commands.AssignPartnerCommandHandler

	startPickupHandler      commands.StartPickupSessionCommandHandler
	checkItemHandler        commands.CheckItemCommandHandler
	verifyLineItemHandler   commands.VerifyLineItemCommandHandler
	capturePhotoHandler     commands.CapturePhotoCommandHandler
	captureSignatureHandler commands.CaptureSignatureCommandHandler
	advanceStageHandler     commands.AdvanceStageCommandHandler
	retreatStageHandler     commands.RetreatStageCommandHandler
	completePickupHandler   commands.CompletePickupCommandHandler

	getTrackingViewHandler queries.GetTrackingViewQueryHandler
	getRoleViewHandler     queries.GetRoleViewQueryHandler
}

// NewServer creates an HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	transitionOrderHandler commands.TransitionOrderCommandHandler,
	cancelOrderHandler commands.CancelOrderCommandHandler,
	assignPartnerHandler commands.AssignPartnerCommandHandler,
	startPickupHandler commands.StartPickupSessionCommandHandler,
	checkItemHandler commands.CheckItemCommandHandler,
	verifyLineItemHandler commands.VerifyLineItemCommandHandler,
	capturePhotoHandler commands.CapturePhotoCommandHandler,
	captureSignatureHandler commands.CaptureSignatureCommandHandler,
	advanceStageHandler commands.AdvanceStageCommandHandler,
	retreatStageHandler commands.RetreatStageCommandHandler,
	completePickupHandler commands.CompletePickupCommandHandler,
	getTrackingViewHandler queries.GetTrackingViewQueryHandler,
	getRoleViewHandler queries.GetRoleViewQueryHandler,
) *Server {
	return &Server{
		createOrderHandler:      createOrderHandler,
		transitionOrderHandler:  transitionOrderHandler,
		cancelOrderHandler:      cancelOrderHandler,
		assignPartnerHandler:    assignPartnerHandler,
		startPickupHandler:      startPickupHandler,
		checkItemHandler:        checkItemHandler,
		verifyLineItemHandler:   verifyLineItemHandler,
		capturePhotoHandler:     capturePhotoHandler,
		captureSignatureHandler: captureSignatureHandler,
		advanceStageHandler:     advanceStageHandler,
		retreatStageHandler:     retreatStageHandler,
		completePickupHandler:   completePickupHandler,
		getTrackingViewHandler:  getTrackingViewHandler,
		getRoleViewHandler:      getRoleViewHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/transition", s.TransitionOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/partner", s.AssignPartner)
	api.GET("/orders/:id/tracking", s.GetTracking)
	api.POST("/orders/:id/pickup-session", s.StartPickupSession)

	api.POST("/pickup-sessions/:id/items", s.CheckItem)
	api.POST("/pickup-sessions/:id/line-items", s.VerifyLineItem)
	api.POST("/pickup-sessions/:id/photos", s.CapturePhoto)
	api.POST("/pickup-sessions/:id/signature", s.CaptureSignature)
	api.POST("/pickup-sessions/:id/advance", s.AdvanceStage)
	api.POST("/pickup-sessions/:id/retreat", s.RetreatStage)
	api.POST("/pickup-sessions/:id/complete", s.CompletePickup)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var req CreateOrderRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cart := make([]commands.CartItem, 0, len(req.Cart))
	for _, item := range req.Cart {
		productID, idErr := kernel.UUIDFromString(item.ProductID)
		if idErr != nil {
			return respondError(ctx, idErr)
		}
		cart = append(cart, commands.CartItem{ProductID: productID, Quantity: item.Quantity})
	}

	method, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(
		orderID, customerID, cart,
		req.Street, req.City, req.PostalCode, req.Phone,
		req.Instructions, method,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, OrderCreatedResponse{OrderID: orderID.String()})
}

// GetOrder handles GET /api/v1/orders/:id. The viewing role and actor id
// come from query parameters; the response carries only the fields that
// role is entitled to.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	by, err := queryActor(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetRoleViewQuery(orderID, by)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getRoleViewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, roleViewResponse(view))
}

// TransitionOrder handles POST /api/v1/orders/:id/transition.
func (s *Server) TransitionOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req TransitionOrderRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	target, err := order.StatusFromString(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	by, err := buildActor(req.ActorRole, req.ActorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionOrderCommand(orderID, target, by)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.transitionOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CancelOrder handles POST /api/v1/orders/:id/cancel.
func (s *Server) CancelOrder(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CancelOrderRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	by, err := buildActor(req.ActorRole, req.ActorID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, req.Reason, by)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.cancelOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignPartner handles POST /api/v1/orders/:id/partner.
func (s *Server) AssignPartner(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req AssignPartnerRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, partnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.assignPartnerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTracking handles GET /api/v1/orders/:id/tracking. An order without a
// tracking record yet returns 404.
func (s *Server) GetTracking(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	role, err := actor.RoleFromString(ctx.QueryParam("role"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetTrackingViewQuery(orderID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	view, err := s.getTrackingViewHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingViewResponse(view))
}

// StartPickupSession handles POST /api/v1/orders/:id/pickup-session.
func (s *Server) StartPickupSession(ctx echo.Context) error {
	orderID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := bindPartner(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewStartPickupSessionCommand(orderID, partnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	session, err := s.startPickupHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, sessionResponse(session))
}

// CheckItem handles POST /api/v1/pickup-sessions/:id/items.
func (s *Server) CheckItem(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req CheckItemRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCheckItemCommand(sessionID, partnerID, req.ItemID, *req.Checked)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.checkItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifyLineItem handles POST /api/v1/pickup-sessions/:id/line-items.
func (s *Server) VerifyLineItem(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req VerifyLineItemRequest
	if err := bind(ctx, &req); err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := kernel.UUIDFromString(req.PartnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	lineItemID, err := kernel.UUIDFromString(req.LineItemID)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewVerifyLineItemCommand(
		sessionID, partnerID, lineItemID, *req.Verified, req.ConditionNote,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.verifyLineItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CapturePhoto handles POST /api/v1/pickup-sessions/:id/photos.
func (s *Server) CapturePhoto(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := bindPartner(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCapturePhotoCommand(sessionID, partnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	ref, err := s.capturePhotoHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, PhotoResponse{PhotoRef: ref})
}

// CaptureSignature handles POST /api/v1/pickup-sessions/:id/signature.
func (s *Server) CaptureSignature(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := bindPartner(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCaptureSignatureCommand(sessionID, partnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.captureSignatureHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AdvanceStage handles POST /api/v1/pickup-sessions/:id/advance.
func (s *Server) AdvanceStage(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := bindPartner(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewAdvanceStageCommand(sessionID, partnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	stage, err := s.advanceStageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StageResponse{Stage: stage.String()})
}

// RetreatStage handles POST /api/v1/pickup-sessions/:id/retreat.
func (s *Server) RetreatStage(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := bindPartner(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRetreatStageCommand(sessionID, partnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	stage, err := s.retreatStageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StageResponse{Stage: stage.String()})
}

// CompletePickup handles POST /api/v1/pickup-sessions/:id/complete.
func (s *Server) CompletePickup(ctx echo.Context) error {
	sessionID, err := pathUUID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	partnerID, err := bindPartner(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewCompletePickupCommand(sessionID, partnerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err := s.completePickupHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// bind decodes and validates a request body.
func bind(ctx echo.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("request body", err)
	}
	return ctx.Validate(req)
}

// bindPartner decodes the partner-only payload shared by several pickup
// session operations.
func bindPartner(ctx echo.Context) (kernel.UUID, error) {
	var req PartnerRequest
	if err := bind(ctx, &req); err != nil {
		return kernel.UUID{}, err
	}
	return kernel.UUIDFromString(req.PartnerID)
}

// pathUUID parses the :id path parameter.
func pathUUID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// buildActor assembles the acting identity from its wire form.
func buildActor(role, id string) (actor.Actor, error) {
	r, err := actor.RoleFromString(role)
	if err != nil {
		return actor.Actor{}, err
	}

	actorID, err := kernel.UUIDFromString(id)
	if err != nil {
		return actor.Actor{}, err
	}

	return actor.NewActor(r, actorID)
}

// queryActor assembles the acting identity from query parameters.
func queryActor(ctx echo.Context) (actor.Actor, error) {
	return buildActor(ctx.QueryParam("role"), ctx.QueryParam("actor_id"))
}

package http

import (
	"net/http"
	"strings"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the use case handlers.
type Server struct {
	// Command handlers
	dispatchLegHandler   commands.DispatchLegCommandHandler
	completeLegHandler   commands.CompleteLegCommandHandler
	markLegReadyHandler  commands.MarkLegReadyCommandHandler
	provisionLegsHandler commands.ProvisionLegsCommandHandler
	advanceLegacyHandler commands.AdvanceLegacyDeliveryCommandHandler

	// Query handlers
	getTrackingHandler     queries.GetTrackingQueryHandler
	getLegsForOrderHandler queries.GetLegsForOrderQueryHandler
	getLegsForActorHandler queries.GetLegsForActorQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	dispatchLegHandler commands.DispatchLegCommandHandler,
	completeLegHandler commands.CompleteLegCommandHandler,
	markLegReadyHandler commands.MarkLegReadyCommandHandler,
	provisionLegsHandler commands.ProvisionLegsCommandHandler,
	advanceLegacyHandler commands.AdvanceLegacyDeliveryCommandHandler,
	getTrackingHandler queries.GetTrackingQueryHandler,
	getLegsForOrderHandler queries.GetLegsForOrderQueryHandler,
	getLegsForActorHandler queries.GetLegsForActorQueryHandler,
) *Server {
	return &Server{
		dispatchLegHandler:     dispatchLegHandler,
		completeLegHandler:     completeLegHandler,
		markLegReadyHandler:    markLegReadyHandler,
		provisionLegsHandler:   provisionLegsHandler,
		advanceLegacyHandler:   advanceLegacyHandler,
		getTrackingHandler:     getTrackingHandler,
		getLegsForOrderHandler: getLegsForOrderHandler,
		getLegsForActorHandler: getLegsForActorHandler,
	}
}

// GetTracking handles GET /api/v1/orders/{orderId}/tracking.
func (s *Server) GetTracking(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTrackingQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	projection, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toTracking(projection))
}

// GetOrderLegs handles GET /api/v1/orders/{orderId}/legs.
func (s *Server) GetOrderLegs(ctx echo.Context, orderId openapi_types.UUID, params servers.GetOrderLegsParams) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	var legType *leg.Type
	if params.LegType != nil {
		t, err := leg.ParseType(string(*params.LegType))
		if err != nil {
			return writeError(ctx, err)
		}
		legType = &t
	}

	query, err := queries.NewGetLegsForOrderQuery(orderID, legType)
	if err != nil {
		return writeError(ctx, err)
	}

	legs, err := s.getLegsForOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLegs(legs))
}

// ProvisionLegs handles POST /api/v1/orders/{orderId}/legs.
func (s *Server) ProvisionLegs(ctx echo.Context, orderId openapi_types.UUID) error {
	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewProvisionLegsCommand(orderID)
	if err != nil {
		return writeError(ctx, err)
	}

	legs, err := s.provisionLegsHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toLegsFromDomain(legs))
}

// GetActorLegs handles GET /api/v1/actors/{actorId}/legs.
func (s *Server) GetActorLegs(ctx echo.Context, actorId string, params servers.GetActorLegsParams) error {
	actorID, err := kernel.NewActorID(actorId)
	if err != nil {
		return writeError(ctx, err)
	}

	legType, err := leg.ParseType(string(params.LegType))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetLegsForActorQuery(actorID, legType)
	if err != nil {
		return writeError(ctx, err)
	}

	legs, err := s.getLegsForActorHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLegs(legs))
}

// DispatchLeg handles POST /api/v1/legs/{legId}/dispatch.
func (s *Server) DispatchLeg(ctx echo.Context, legId openapi_types.UUID) error {
	var body servers.DispatchRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	legID, actor, err := legAndActor(legId, body.ActorId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewDispatchLegCommand(legID, body.CourierName, body.TrackingId, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	l, err := s.dispatchLegHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLeg(queries.NewLegResponse(l)))
}

// MarkLegReady handles POST /api/v1/legs/{legId}/ready.
func (s *Server) MarkLegReady(ctx echo.Context, legId openapi_types.UUID) error {
	var body servers.ReadyRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	legID, actor, err := legAndActor(legId, body.ActorId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkLegReadyCommand(legID, body.DeliveryMethod, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	l, err := s.markLegReadyHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLeg(queries.NewLegResponse(l)))
}

// CompleteLeg handles POST /api/v1/legs/{legId}/complete. The body is optional.
func (s *Server) CompleteLeg(ctx echo.Context, legId openapi_types.UUID) error {
	var body servers.CompleteRequest
	if ctx.Request().ContentLength != 0 {
		if err := ctx.Bind(&body); err != nil {
			return badRequest(ctx, "Invalid request body")
		}
	}

	legID, actor, err := legAndActor(legId, body.ActorId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompleteLegCommand(legID, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	l, err := s.completeLegHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toLeg(queries.NewLegResponse(l)))
}

// AdvanceLegacy handles POST /api/v1/orders/{orderId}/legacy/{phase}.
func (s *Server) AdvanceLegacy(ctx echo.Context, orderId openapi_types.UUID, phase servers.AdvanceLegacyParamsPhase) error {
	var body servers.LegacyUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromBytes(orderId[:])
	if err != nil {
		return writeError(ctx, err)
	}

	actor, err := optionalActor(body.ActorId)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAdvanceLegacyDeliveryCommand(orderID, string(phase), body.Status, commands.LegacyDeliveryFields{
		TrackingNumber:    deref(body.TrackingNumber),
		CourierName:       deref(body.CourierName),
		DeliveryMethod:    deref(body.DeliveryMethod),
		EstimatedDelivery: utcPtr(body.EstimatedDelivery),
		Notes:             deref(body.Notes),
	}, actor)
	if err != nil {
		return writeError(ctx, err)
	}

	if _, err = s.advanceLegacyHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	// Answer with what GET tracking returns: an order that already has legs
	// is projected from the legs, not from the record just written.
	query, err := queries.NewGetTrackingQuery(orderID)
	if err != nil {
		return writeError(ctx, err)
	}
	projection, err := s.getTrackingHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toTracking(projection))
}

func legAndActor(legId openapi_types.UUID, rawActor *string) (kernel.UUID, *kernel.ActorID, error) {
	legID, err := kernel.UUIDFromBytes(legId[:])
	if err != nil {
		return kernel.UUID{}, nil, err
	}

	actor, err := optionalActor(rawActor)
	if err != nil {
		return kernel.UUID{}, nil, err
	}
	return legID, actor, nil
}

// optionalActor treats a missing or blank actorId as a trusted caller.
func optionalActor(rawActor *string) (*kernel.ActorID, error) {
	if rawActor == nil || strings.TrimSpace(*rawActor) == "" {
		return nil, nil
	}

	actor, err := kernel.NewActorID(*rawActor)
	if err != nil {
		return nil, err
	}
	return &actor, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func utcPtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

package servers

import (
	"fmt"
	"net/http"

	"tracking/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /api/v1/actors/{actorId}/legs)
	GetActorLegs(ctx echo.Context, actorId string, params GetActorLegsParams) error
	// (POST /api/v1/legs/{legId}/complete)
	CompleteLeg(ctx echo.Context, legId openapi_types.UUID) error
	// (POST /api/v1/legs/{legId}/dispatch)
	DispatchLeg(ctx echo.Context, legId openapi_types.UUID) error
	// (POST /api/v1/legs/{legId}/ready)
	MarkLegReady(ctx echo.Context, legId openapi_types.UUID) error
	// (POST /api/v1/orders/{orderId}/legacy/{phase})
	AdvanceLegacy(ctx echo.Context, orderId openapi_types.UUID, phase AdvanceLegacyParamsPhase) error
	// (GET /api/v1/orders/{orderId}/legs)
	GetOrderLegs(ctx echo.Context, orderId openapi_types.UUID, params GetOrderLegsParams) error
	// (POST /api/v1/orders/{orderId}/legs)
	ProvisionLegs(ctx echo.Context, orderId openapi_types.UUID) error
	// (GET /api/v1/orders/{orderId}/tracking)
	GetTracking(ctx echo.Context, orderId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func badParam(name string, err error) error {
	return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
}

func bindUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, badParam(name, err)
	}
	return id, nil
}

// GetActorLegs converts echo context to params.
func (w *ServerInterfaceWrapper) GetActorLegs(ctx echo.Context) error {
	var actorId string
	err := runtime.BindStyledParameterWithOptions("simple", "actorId", ctx.Param("actorId"), &actorId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return badParam("actorId", err)
	}

	var params GetActorLegsParams
	if err := runtime.BindQueryParameter("form", true, true, "legType", ctx.QueryParams(), &params.LegType); err != nil {
		return badParam("legType", err)
	}

	return w.Handler.GetActorLegs(ctx, actorId, params)
}

// CompleteLeg converts echo context to params.
func (w *ServerInterfaceWrapper) CompleteLeg(ctx echo.Context) error {
	legId, err := bindUUID(ctx, "legId")
	if err != nil {
		return err
	}
	return w.Handler.CompleteLeg(ctx, legId)
}

// DispatchLeg converts echo context to params.
func (w *ServerInterfaceWrapper) DispatchLeg(ctx echo.Context) error {
	legId, err := bindUUID(ctx, "legId")
	if err != nil {
		return err
	}
	return w.Handler.DispatchLeg(ctx, legId)
}

// MarkLegReady converts echo context to params.
func (w *ServerInterfaceWrapper) MarkLegReady(ctx echo.Context) error {
	legId, err := bindUUID(ctx, "legId")
	if err != nil {
		return err
	}
	return w.Handler.MarkLegReady(ctx, legId)
}

// AdvanceLegacy converts echo context to params.
func (w *ServerInterfaceWrapper) AdvanceLegacy(ctx echo.Context) error {
	orderId, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var phase AdvanceLegacyParamsPhase
	err = runtime.BindStyledParameterWithOptions("simple", "phase", ctx.Param("phase"), &phase,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return badParam("phase", err)
	}

	return w.Handler.AdvanceLegacy(ctx, orderId, phase)
}

// GetOrderLegs converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrderLegs(ctx echo.Context) error {
	orderId, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	var params GetOrderLegsParams
	if err := runtime.BindQueryParameter("form", true, false, "legType", ctx.QueryParams(), &params.LegType); err != nil {
		return badParam("legType", err)
	}

	return w.Handler.GetOrderLegs(ctx, orderId, params)
}

// ProvisionLegs converts echo context to params.
func (w *ServerInterfaceWrapper) ProvisionLegs(ctx echo.Context) error {
	orderId, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.ProvisionLegs(ctx, orderId)
}

// GetTracking converts echo context to params.
func (w *ServerInterfaceWrapper) GetTracking(ctx echo.Context) error {
	orderId, err := bindUUID(ctx, "orderId")
	if err != nil {
		return err
	}
	return w.Handler.GetTracking(ctx, orderId)
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under baseURL.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{Handler: si}

	router.GET(baseURL+"/api/v1/actors/:actorId/legs", wrapper.GetActorLegs)
	router.POST(baseURL+"/api/v1/legs/:legId/complete", wrapper.CompleteLeg)
	router.POST(baseURL+"/api/v1/legs/:legId/dispatch", wrapper.DispatchLeg)
	router.POST(baseURL+"/api/v1/legs/:legId/ready", wrapper.MarkLegReady)
	router.POST(baseURL+"/api/v1/orders/:orderId/legacy/:phase", wrapper.AdvanceLegacy)
	router.GET(baseURL+"/api/v1/orders/:orderId/legs", wrapper.GetOrderLegs)
	router.POST(baseURL+"/api/v1/orders/:orderId/legs", wrapper.ProvisionLegs)
	router.GET(baseURL+"/api/v1/orders/:orderId/tracking", wrapper.GetTracking)
}

// GetSwagger parses the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.OpenAPI)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	return doc, nil
}

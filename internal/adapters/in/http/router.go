// Package http exposes the delivery tracking use cases over echo.
package http

import (
	"net/http"
	"sync"

	"tracking/api"
	"tracking/internal/generated/servers"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

var registerDoc sync.Once

// openAPIDoc serves the embedded document to the Swagger UI as JSON.
type openAPIDoc struct {
	doc *openapi3.T
}

func (d openAPIDoc) ReadDoc() string {
	b, err := d.doc.MarshalJSON()
	if err != nil {
		return "{}"
	}
	return string(b)
}

// RouterOptions carries the optional parts of the router.
type RouterOptions struct {
	// Observer records request metrics when set.
	Observer RequestObserver
	// MetricsHandler is mounted at /metrics when set.
	MetricsHandler http.Handler
}

// NewRouter builds the echo instance serving the API, health, metrics and
// Swagger UI.
func NewRouter(server servers.ServerInterface, opts RouterOptions) (*echo.Echo, error) {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = ErrorHandler
	e.Use(middleware.Recover())

	if opts.Observer != nil {
		e.Use(Metrics(opts.Observer))
	}

	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	validator, err := OpenAPIValidator(doc)
	if err != nil {
		return nil, err
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if opts.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(opts.MetricsHandler))
	}
	e.GET("/openapi.yml", func(c echo.Context) error {
		return c.Blob(http.StatusOK, "application/yaml", api.OpenAPI)
	})
	registerDoc.Do(func() {
		if swag.GetSwagger(swag.Name) == nil {
			swag.Register(swag.Name, openAPIDoc{doc: doc})
		}
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	e.Use(validator)
	servers.RegisterHandlers(e, server)

	return e, nil
}

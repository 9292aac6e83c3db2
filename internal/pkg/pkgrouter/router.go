package pkgrouter

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkguid"
)

// Handler serves one endpoint. The returned value is written as the data
// field of the success envelope; a non-nil error is mapped to a status by
// its pkgerror code.
type Handler func(ctx context.Context, r *http.Request) (any, error)

type Router struct {
	echo *echo.Echo
	uuid pkguid.StringID
}

func NewRouter(uuid pkguid.StringID) *Router {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	r := &Router{echo: e, uuid: uuid}
	e.HTTPErrorHandler = r.handleError
	e.Use(r.requestID, r.logRequest)

	return r
}

// Use appends middleware applied to every route.
func (r *Router) Use(mw ...echo.MiddlewareFunc) {
	r.echo.Use(mw...)
}

func (r *Router) GET(path string, h Handler, mw ...echo.MiddlewareFunc) {
	r.echo.GET(path, r.endpoint(h), mw...)
}

func (r *Router) POST(path string, h Handler, mw ...echo.MiddlewareFunc) {
	r.echo.POST(path, r.endpoint(h), mw...)
}

// Native registers a handler that writes its own response body, bypassing
// the JSON envelope.
func (r *Router) Native(method, path string, h http.Handler, mw ...echo.MiddlewareFunc) {
	r.echo.Add(method, path, echo.WrapHandler(h), mw...)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.echo.ServeHTTP(w, req)
}

func (r *Router) endpoint(h Handler) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		data, err := h(req.Context(), req)
		if err != nil {
			return err
		}
		return c.JSON(http.StatusOK, successResponse{Message: "success", Data: data})
	}
}

func (r *Router) requestID(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		id := req.Header.Get(HeaderRequestID)
		if id == "" {
			id = r.uuid.Generate()
		}
		c.Response().Header().Set(HeaderRequestID, id)
		c.SetRequest(req.WithContext(WithRequestID(req.Context(), id)))
		return next(c)
	}
}

func (r *Router) logRequest(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		req := c.Request()
		slog.InfoContext(req.Context(), "http request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"latency_ms", time.Since(start).Milliseconds(),
			"request_id", RequestID(req.Context()),
		)
		return nil
	}
}

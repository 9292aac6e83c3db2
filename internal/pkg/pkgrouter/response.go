package pkgrouter

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/ozkangu/travel-mcp/internal/pkg/pkgerror"
)

const HeaderRequestID = "X-Request-ID"

type ctxKeyRequestID struct{}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, ctxKeyRequestID{}, id)
}

// RequestID returns the id stored by the router, or "" outside a request.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(ctxKeyRequestID{}).(string)
	return id
}

type successResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type errorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// StatusOf maps an error to the HTTP status the router responds with.
func StatusOf(err error) int {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	switch pkgerror.CodeOf(err) {
	case pkgerror.CodeInvalidInput:
		return http.StatusBadRequest
	case pkgerror.CodeNotFound:
		return http.StatusNotFound
	case pkgerror.CodeUnauthorized:
		return http.StatusUnauthorized
	case pkgerror.CodeUpstream:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func (r *Router) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := StatusOf(err)
	resp := errorResponse{Message: "internal server error", Error: pkgerror.CodeInternal.String()}

	var (
		he *echo.HTTPError
		be *pkgerror.Error
	)
	switch {
	case errors.As(err, &be):
		resp = errorResponse{Message: be.Message(), Error: be.Code().String()}
	case errors.As(err, &he):
		resp = errorResponse{Message: http.StatusText(he.Code), Error: http.StatusText(he.Code)}
		if msg, ok := he.Message.(string); ok {
			resp.Message = msg
		}
	}

	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request().Context(), "request failed", "error", err, "request_id", RequestID(c.Request().Context()))
	}

	if err := c.JSON(status, resp); err != nil {
		slog.ErrorContext(c.Request().Context(), "failed to write error response", "error", err)
	}
}

package http

import (
	"errors"
	"net/http"

	"agrimarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the JSON error envelope returned for every failure.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// statusFromError maps the domain error taxonomy onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, errs.ErrPreconditionFailed):
		return http.StatusPreconditionFailed
	case errors.Is(err, errs.ErrInvalidTransition):
		return http.StatusUnprocessableEntity
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange),
		errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error envelope for a failed operation. Internal
// errors are masked; everything in the domain taxonomy passes its message
// through.
func respondError(ctx echo.Context, err error) error {
	code := statusFromError(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		message = "internal error"
	}
	return ctx.JSON(code, ErrorResponse{Code: code, Message: message})
}

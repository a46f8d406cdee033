package http

import (
	"errors"
	"net/http"

	"orderdesk/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const genericFailure = "operation failed"

// ErrorResponse is the body of every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// fail maps err to a status. Caller mistakes get the error text back;
// missing objects and store failures only get a generic message.
func (s *Server) fail(c echo.Context, err error) error {
	ctx := c.Request().Context()

	switch {
	case errs.IsInvalidInput(err), errors.Is(err, errs.ErrInvalidTransition):
		s.logger.InfoContext(ctx, "request rejected", "error", err)
		return c.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: err.Error()})
	case errors.Is(err, errs.ErrObjectNotFound):
		s.logger.InfoContext(ctx, "object not found", "error", err)
		return c.JSON(http.StatusNotFound, ErrorResponse{Code: http.StatusNotFound, Message: genericFailure})
	default:
		s.logger.ErrorContext(ctx, "request failed", "error", err)
		return c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    http.StatusInternalServerError,
			Message: genericFailure,
		})
	}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, ErrorResponse{Code: http.StatusBadRequest, Message: message})
}

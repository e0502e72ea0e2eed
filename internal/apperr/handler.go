package apperr

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Title string `json:"title,omitempty"`
	Field string `json:"field,omitempty"`
	Error string `json:"error"`
}

// StatusOf maps an error chain onto its HTTP status and response body.
func StatusOf(err error) (int, ErrorResponse) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, ErrorResponse{Title: "validation error", Field: ve.Field, Error: ve.Error()}
	}

	var nf *NotFoundError
	if errors.As(err, &nf) {
		return http.StatusNotFound, ErrorResponse{Title: "not found", Error: nf.Error()}
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, ErrorResponse{Error: fmt.Sprintf("%v", he.Message)}
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return http.StatusGatewayTimeout, ErrorResponse{Error: "request timed out"}
	}

	return http.StatusInternalServerError, ErrorResponse{Error: "internal server error"}
}

func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, body := StatusOf(err)
		if status >= http.StatusInternalServerError {
			slog.Error("Unhandled error", "method", c.Request().Method, "path", c.Path(), "error", err)
		}
		_ = c.JSON(status, body)
	}
}

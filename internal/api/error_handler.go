package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/HairulDev/tsn-asia-next/internal/core/domain"
)

// errorBody is the canonical error envelope for all API errors, mirroring the
// backend's own {success, message} shape.
type errorBody struct {
	Success bool     `json:"success"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Renders validation failures with their field-level details.
//   - Logs unexpected errors internally without leaking details to the client.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorBody) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorBody{Message: fmt.Sprintf("%v", he.Message)}
	}

	// Field-level validation failures carry their details.
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		details := make([]string, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, f.Message)
		}
		return http.StatusBadRequest, errorBody{Message: "validation failed", Details: details}
	}

	// Upstream rejections keep the backend's message; the status passes
	// through when it is a client error, otherwise reads as a bad gateway.
	var ue *domain.UpstreamError
	if errors.As(err, &ue) {
		code := http.StatusBadGateway
		if ue.StatusCode >= 400 && ue.StatusCode < 500 {
			code = ue.StatusCode
		}
		return code, errorBody{Message: ue.Error()}
	}

	// A response that broke the envelope contract is a distinct failure mode.
	var se *domain.ShapeError
	if errors.As(err, &se) {
		log.Error().Err(err).Str("path", c.Path()).Msg("upstream contract violation")
		return http.StatusBadGateway, errorBody{Message: "unexpected response from backend"}
	}

	// Known domain errors → deterministic HTTP codes.
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorBody{Message: err.Error()}
	case errors.Is(err, domain.ErrSessionNotFound):
		return http.StatusUnauthorized, errorBody{Message: "session expired"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorBody{Message: "forbidden"}
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound, errorBody{Message: err.Error()}
	case errors.Is(err, domain.ErrConfirmationRequired):
		return http.StatusBadRequest, errorBody{Message: "confirmation required"}
	case errors.Is(err, domain.ErrInvalidLimit):
		return http.StatusBadRequest, errorBody{Message: "invalid page size"}
	case errors.Is(err, domain.ErrPageOutOfRange):
		return http.StatusBadRequest, errorBody{Message: "page out of range"}
	case errors.Is(err, domain.ErrNoOpenForm):
		return http.StatusConflict, errorBody{Message: "no form is open"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorBody{Message: "internal server error"}
}

package http

import (
	"errors"
	"net/http"

	"github.com/T0MGL/0rdefy-sub010/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// writeError maps an application error onto the HTTP status taxonomy:
// validation failures are client errors, missing objects are 404 and
// state or claim conflicts are 409. Anything unrecognized is a 500.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrStateIsInvalid),
		errors.Is(err, errs.ErrConflict):
		status = http.StatusConflict
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// writeBadRequest reports a malformed request body or path parameter.
func writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

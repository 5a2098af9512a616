package http

import (
	"errors"
	"net/http"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError maps an application error to an HTTP status and writes the
// uniform error body. Validation failures are client errors, rule violations
// and lost assignment races are conflicts, everything unclassified is a 500.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound),
		errors.Is(err, commands.ErrNoPendingDelivery):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrBusinessRuleViolation),
		errors.Is(err, errs.ErrAssignmentFailed),
		errors.Is(err, commands.ErrNoCandidateDriver):
		status = http.StatusConflict
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest writes a 400 with the given message, used for malformed
// request bodies and parameters before any command is built.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

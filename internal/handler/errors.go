package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/dragon-align/internal/lineup"
	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/iliyamo/dragon-align/internal/service"
	"github.com/iliyamo/dragon-align/internal/team"
)

// statusOf maps domain errors to HTTP statuses.  The second result is
// false for unexpected errors whose text must not reach the client.
func statusOf(err error) (int, bool) {
	var ve *lineup.ValidationError
	switch {
	case errors.As(err, &ve),
		errors.Is(err, model.ErrMemberName),
		errors.Is(err, model.ErrMemberWeight),
		errors.Is(err, model.ErrMemberRoles),
		errors.Is(err, service.ErrInvalidSnapshot):
		return http.StatusUnprocessableEntity, true
	case errors.Is(err, model.ErrActiveFull),
		errors.Is(err, model.ErrAlternativesFull),
		errors.Is(err, model.ErrTeamFull),
		errors.Is(err, lineup.ErrSeatLocked):
		return http.StatusConflict, true
	case errors.Is(err, team.ErrMemberNotFound):
		return http.StatusNotFound, true
	case errors.Is(err, service.ErrInvalidTeamID),
		errors.Is(err, model.ErrInvalidSeat),
		errors.Is(err, team.ErrInvalidFilter):
		return http.StatusBadRequest, true
	}
	return http.StatusInternalServerError, false
}

// fail writes err as {"error": "..."}.  Unexpected errors are logged and
// reported generically.
func fail(c echo.Context, err error) error {
	status, known := statusOf(err)
	if !known {
		c.Logger().Errorf("%s %s: %v", c.Request().Method, c.Path(), err)
		return c.JSON(status, echo.Map{"error": "internal error"})
	}
	return c.JSON(status, echo.Map{"error": err.Error()})
}

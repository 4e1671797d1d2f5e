package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/dragon-align/internal/team"
)

// AddToLineup adds the members in the body, active lineup first.
func (h *TeamHandler) AddToLineup(c echo.Context) error {
	var req idsReq
	if err := c.Bind(&req); err != nil || len(req.MemberIDs) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "member_ids required"})
	}
	added, t, err := h.Svc.AddToLineup(c.Request().Context(), c.Param("team"), req.MemberIDs)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"added":                added,
		"current_lineup":       t.Active,
		"alternative_paddlers": t.Alternatives,
	})
}

func (h *TeamHandler) listOp(c echo.Context, op func(echo.Context) (*team.Team, error)) error {
	t, err := op(c)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, lists(t))
}

func (h *TeamHandler) MoveToActive(c echo.Context) error {
	return h.listOp(c, func(c echo.Context) (*team.Team, error) {
		return h.Svc.MoveToActive(c.Request().Context(), c.Param("team"), c.Param("id"))
	})
}

func (h *TeamHandler) MoveToAlternatives(c echo.Context) error {
	return h.listOp(c, func(c echo.Context) (*team.Team, error) {
		return h.Svc.MoveToAlternatives(c.Request().Context(), c.Param("team"), c.Param("id"))
	})
}

func (h *TeamHandler) RemoveFromAlternatives(c echo.Context) error {
	return h.listOp(c, func(c echo.Context) (*team.Team, error) {
		return h.Svc.RemoveFromAlternatives(c.Request().Context(), c.Param("team"), c.Param("id"))
	})
}

func (h *TeamHandler) RemoveFromLineup(c echo.Context) error {
	return h.listOp(c, func(c echo.Context) (*team.Team, error) {
		return h.Svc.RemoveFromLineup(c.Request().Context(), c.Param("team"), c.Param("id"))
	})
}

// Generate builds a fresh boat.  Precondition failures answer 422 with the
// human-readable reason.
func (h *TeamHandler) Generate(c echo.Context) error {
	boat, err := h.Svc.Generate(c.Request().Context(), c.Param("team"))
	if err != nil {
		return fail(c, err)
	}
	c.Logger().Debugf("team %s: generated lineup, %d paddlers seated", c.Param("team"), boat.Stats.TotalPaddlers)
	return c.JSON(http.StatusOK, echo.Map{"lineup": boat})
}

// GetLineup returns the current boat (null before generation) and stats.
func (h *TeamHandler) GetLineup(c echo.Context) error {
	boat, stats, err := h.Svc.Lineup(c.Request().Context(), c.Param("team"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"lineup": boat, "stats": stats})
}

func (h *TeamHandler) Stats(c echo.Context) error {
	_, stats, err := h.Svc.Lineup(c.Request().Context(), c.Param("team"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, stats)
}

// ClearLineup drops the boat and all locks; the roster is kept.
func (h *TeamHandler) ClearLineup(c echo.Context) error {
	if err := h.Svc.ClearLineup(c.Request().Context(), c.Param("team")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ToggleLock pins or unpins the occupant of :seat.
func (h *TeamHandler) ToggleLock(c echo.Context) error {
	locked, err := h.Svc.ToggleLock(c.Request().Context(), c.Param("team"), c.Param("seat"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"locked_positions": locked})
}

// Move seats a member by hand, displacing the occupant if needed.
func (h *TeamHandler) Move(c echo.Context) error {
	var req moveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.MemberID) == "" || strings.TrimSpace(req.Seat) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "member_id and seat required"})
	}
	t, err := h.Svc.Move(c.Request().Context(), c.Param("team"), req.MemberID, req.Seat)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"lineup":               t.Lineup,
		"current_lineup":       t.Active,
		"alternative_paddlers": t.Alternatives,
	})
}

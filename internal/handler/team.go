package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/iliyamo/dragon-align/internal/service"
	"github.com/iliyamo/dragon-align/internal/team"
)

// TeamHandler exposes team, roster and lineup operations under
// /v1/teams/:team.
type TeamHandler struct {
	Svc *service.TeamService
}

func NewTeamHandler(svc *service.TeamService) *TeamHandler {
	if svc == nil {
		panic("nil service passed to NewTeamHandler")
	}
	return &TeamHandler{Svc: svc}
}

// ----- DTOs -----

type memberReq struct {
	Name          string   `json:"name"`
	Weight        float64  `json:"weight"`
	PreferredSide string   `json:"preferred_side"` // defaults to "both"
	Roles         []string `json:"roles"`
	Gender        string   `json:"gender"` // defaults to "neutral"
}

func (r memberReq) toMember(id string) (model.Member, error) {
	m := model.Member{ID: id, Name: r.Name, Weight: r.Weight, PreferredSide: model.Both, Gender: model.Neutral}
	var err error
	if strings.TrimSpace(r.PreferredSide) != "" {
		if m.PreferredSide, err = model.ParsePreferredSide(r.PreferredSide); err != nil {
			return model.Member{}, err
		}
	}
	if strings.TrimSpace(r.Gender) != "" {
		if m.Gender, err = model.ParseGender(r.Gender); err != nil {
			return model.Member{}, err
		}
	}
	seen := map[model.Role]bool{}
	for _, s := range r.Roles {
		role, err := model.ParseRole(s)
		if err != nil {
			return model.Member{}, err
		}
		if !seen[role] {
			seen[role] = true
			m.Roles = append(m.Roles, role)
		}
	}
	return m, nil
}

type idsReq struct {
	MemberIDs []string `json:"member_ids"`
}

type moveReq struct {
	MemberID string `json:"member_id"`
	Seat     string `json:"seat"`
}

type listsResp struct {
	Active       []model.Member `json:"current_lineup"`
	Alternatives []model.Member `json:"alternative_paddlers"`
}

func lists(t *team.Team) listsResp {
	return listsResp{Active: t.Active, Alternatives: t.Alternatives}
}

// ----- team -----

// Export returns the whole team snapshot.
func (h *TeamHandler) Export(c echo.Context) error {
	t, err := h.Svc.Snapshot(c.Request().Context(), c.Param("team"))
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// Import replaces the team with the snapshot in the body.
func (h *TeamHandler) Import(c echo.Context) error {
	var snap team.Team
	if err := c.Bind(&snap); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	t, err := h.Svc.Import(c.Request().Context(), c.Param("team"), &snap)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// ClearAll deletes every collection of the team.
func (h *TeamHandler) ClearAll(c echo.Context) error {
	if err := h.Svc.ClearAll(c.Request().Context(), c.Param("team")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- members -----

// ListMembers supports ?q=&role=&gender=&side= filters.
func (h *TeamHandler) ListMembers(c echo.Context) error {
	f := team.Filter{
		Search: c.QueryParam("q"),
		Role:   c.QueryParam("role"),
		Gender: c.QueryParam("gender"),
		Side:   c.QueryParam("side"),
	}
	items, err := h.Svc.Members(c.Request().Context(), c.Param("team"), f)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}

func (h *TeamHandler) AddMember(c echo.Context) error {
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	m, err := req.toMember("")
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	created, err := h.Svc.AddMember(c.Request().Context(), c.Param("team"), m)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *TeamHandler) EditMember(c echo.Context) error {
	var req memberReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	m, err := req.toMember(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	updated, err := h.Svc.EditMember(c.Request().Context(), c.Param("team"), m)
	if err != nil {
		return fail(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

func (h *TeamHandler) RemoveMember(c echo.Context) error {
	if err := h.Svc.RemoveMember(c.Request().Context(), c.Param("team"), c.Param("id")); err != nil {
		return fail(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

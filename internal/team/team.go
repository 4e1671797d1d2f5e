// Package team holds the state a coach works with between generations:
// the roster, the active lineup and its alternates, the generated boat
// and the locked seats.  Every method either applies completely or
// returns an error and leaves the team untouched.
package team

import (
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/iliyamo/dragon-align/internal/lineup"
	"github.com/iliyamo/dragon-align/internal/model"
)

// ErrMemberNotFound is returned when an id is not on the roster.
var ErrMemberNotFound = errors.New("member not found")

// NewID generates member ids.  Tests may replace it.
var NewID = uuid.NewString

// Team is the persisted aggregate.  Lineup is nil until the first
// successful generation.
type Team struct {
	Roster       []model.Member        `json:"team_roster"`
	Active       []model.Member        `json:"current_lineup"`
	Alternatives []model.Member        `json:"alternative_paddlers"`
	Lineup       *model.Boat           `json:"lineup"`
	Locked       model.LockedPositions `json:"locked_positions"`
}

// New returns an empty team.  Collections start empty rather than nil so
// they encode as [] and {}.
func New() *Team {
	return &Team{
		Roster:       []model.Member{},
		Active:       []model.Member{},
		Alternatives: []model.Member{},
		Locked:       model.LockedPositions{},
	}
}

// Member looks a member up on the roster.
func (t *Team) Member(id string) (model.Member, error) {
	if i := model.IndexOf(t.Roster, id); i >= 0 {
		return t.Roster[i], nil
	}
	return model.Member{}, ErrMemberNotFound
}

// AddMember validates m, assigns it a fresh id and appends it to the roster.
func (t *Team) AddMember(m model.Member) (model.Member, error) {
	m.Name = strings.TrimSpace(m.Name)
	if err := m.Validate(); err != nil {
		return model.Member{}, err
	}
	m.ID = NewID()
	t.Roster = append(t.Roster, m)
	return m, nil
}

// EditMember replaces every field but the id of an existing member and
// pushes the new record into every collection, seat and lock.
func (t *Team) EditMember(m model.Member) (model.Member, error) {
	m.Name = strings.TrimSpace(m.Name)
	if err := m.Validate(); err != nil {
		return model.Member{}, err
	}
	i := model.IndexOf(t.Roster, m.ID)
	if i < 0 {
		return model.Member{}, ErrMemberNotFound
	}
	t.Roster[i] = m
	replace(t.Active, m)
	replace(t.Alternatives, m)
	if t.Lineup != nil && t.Lineup.Replace(m) {
		lineup.Refresh(t.Lineup)
	}
	t.Locked.ReplaceMember(m)
	return m, nil
}

func replace(ms []model.Member, m model.Member) {
	if i := model.IndexOf(ms, m.ID); i >= 0 {
		ms[i] = m
	}
}

// RemoveMember deletes a member from the roster and cascades the removal
// through the active lineup, alternatives, locks and boat seats.
func (t *Team) RemoveMember(id string) error {
	if model.IndexOf(t.Roster, id) < 0 {
		return ErrMemberNotFound
	}
	t.Roster = model.Without(t.Roster, id)
	t.Active = model.Without(t.Active, id)
	t.Alternatives = model.Without(t.Alternatives, id)
	t.Locked.RemoveMember(id)
	if t.Lineup != nil && t.Lineup.Remove(id) {
		lineup.Refresh(t.Lineup)
	}
	return nil
}

// IsInBoat reports whether the member holds any seat of the current boat.
func (t *Team) IsInBoat(id string) bool {
	return t.Lineup != nil && t.Lineup.Contains(id)
}

// ClearLineup drops the generated boat and every lock.
func (t *Team) ClearLineup() {
	t.Lineup = nil
	t.Locked = model.LockedPositions{}
}

// ClearAll wipes all team data.
func (t *Team) ClearAll() {
	*t = *New()
}

// Normalize repairs a team decoded from storage so the maps and seats
// are usable.
func (t *Team) Normalize() {
	if t.Locked == nil {
		t.Locked = model.LockedPositions{}
	}
	if t.Lineup != nil {
		for i := range t.Lineup.Rows {
			t.Lineup.Rows[i].Row = i + 1
		}
	}
}

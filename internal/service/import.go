package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/iliyamo/dragon-align/internal/lineup"
	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/iliyamo/dragon-align/internal/team"
)

// ErrInvalidSnapshot wraps every reason an imported team is rejected.
var ErrInvalidSnapshot = errors.New("invalid team snapshot")

func invalidSnapshot(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidSnapshot, fmt.Sprintf(format, args...))
}

// Import replaces all data of a team with snap.  The snapshot must be
// self-consistent: every lineup, bench, seat and lock entry refers to a
// roster member and the capacities hold.  Lock keys are stored in their
// canonical form; a seat may be locked once and a member at one seat only.
func (s *TeamService) Import(ctx context.Context, teamID string, snap *team.Team) (*team.Team, error) {
	if snap == nil {
		return nil, invalidSnapshot("empty body")
	}
	if err := checkSnapshot(snap); err != nil {
		return nil, err
	}
	locked, err := canonicalLocks(snap.Locked)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, teamID, func(t *team.Team) error {
		*t = *snap
		t.Locked = locked
		t.Normalize()
		if t.Roster == nil {
			t.Roster = []model.Member{}
		}
		if t.Active == nil {
			t.Active = []model.Member{}
		}
		if t.Alternatives == nil {
			t.Alternatives = []model.Member{}
		}
		if t.Lineup != nil {
			lineup.Refresh(t.Lineup)
		}
		return nil
	})
}

func checkSnapshot(snap *team.Team) error {
	ids := make(map[string]bool, len(snap.Roster))
	for _, m := range snap.Roster {
		if m.ID == "" {
			return invalidSnapshot("member %q has no id", m.Name)
		}
		if ids[m.ID] {
			return invalidSnapshot("duplicate member id %s", m.ID)
		}
		if err := m.Validate(); err != nil {
			return invalidSnapshot("member %s: %v", m.ID, err)
		}
		ids[m.ID] = true
	}
	if len(snap.Active) > model.MaxActive {
		return invalidSnapshot("%v", model.ErrActiveFull)
	}
	if len(snap.Alternatives) > model.MaxAlternatives {
		return invalidSnapshot("%v", model.ErrAlternativesFull)
	}
	for _, list := range [][]model.Member{snap.Active, snap.Alternatives} {
		for _, m := range list {
			if !ids[m.ID] {
				return invalidSnapshot("lineup member %s is not on the roster", m.ID)
			}
		}
	}
	for _, m := range snap.Locked {
		if !ids[m.ID] {
			return invalidSnapshot("locked member %s is not on the roster", m.ID)
		}
	}
	if snap.Lineup != nil {
		seen := map[string]bool{}
		for _, seat := range model.AllSeats() {
			m := snap.Lineup.At(seat)
			if m == nil {
				continue
			}
			if !ids[m.ID] {
				return invalidSnapshot("seated member %s is not on the roster", m.ID)
			}
			if seen[m.ID] {
				return invalidSnapshot("member %s holds more than one seat", m.ID)
			}
			seen[m.ID] = true
		}
	}
	return nil
}

// canonicalLocks rewrites every lock key to Seat.Key form.  Two keys naming
// the same seat, or one member locked at two seats, are rejected.
func canonicalLocks(in model.LockedPositions) (model.LockedPositions, error) {
	out := make(model.LockedPositions, len(in))
	seatOf := make(map[string]string, len(in))
	for key, m := range in {
		seat, err := model.ParseSeat(key)
		if err != nil {
			return nil, invalidSnapshot("%v", err)
		}
		k := seat.Key()
		if _, dup := out[k]; dup {
			return nil, invalidSnapshot("seat %s is locked more than once", k)
		}
		if prev, dup := seatOf[m.ID]; dup {
			return nil, invalidSnapshot("member %s is locked at %s and %s", m.ID, prev, k)
		}
		out[k] = m
		seatOf[m.ID] = k
	}
	return out, nil
}

// ClearAll deletes every stored collection of the team.
func (s *TeamService) ClearAll(ctx context.Context, teamID string) error {
	if !teamIDPattern.MatchString(teamID) {
		return ErrInvalidTeamID
	}
	defer s.lock(teamID)()
	return s.Teams.Delete(ctx, teamID)
}

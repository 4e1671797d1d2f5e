// Package service coordinates team state: it serialises mutations per team,
// persists the result and publishes domain events.
package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"sync"
	"time"

	"github.com/puzpuzpuz/xsync/v4"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/iliyamo/dragon-align/internal/queue"
	"github.com/iliyamo/dragon-align/internal/team"
)

// ErrInvalidTeamID is returned for team ids outside [A-Za-z0-9_-]{1,64}.
var ErrInvalidTeamID = errors.New("invalid team id")

var teamIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Teams is the persistence the service needs.
type Teams interface {
	Get(ctx context.Context, teamID string) (*team.Team, error)
	Save(ctx context.Context, teamID string, t *team.Team) error
	Delete(ctx context.Context, teamID string) error
}

// Events receives domain events after state has been saved.
type Events interface {
	LineupGenerated(ctx context.Context, ev queue.LineupGeneratedEvent) error
	MemberRemoved(ctx context.Context, ev queue.MemberRemovedEvent) error
}

// NopEvents drops every event.
type NopEvents struct{}

func (NopEvents) LineupGenerated(context.Context, queue.LineupGeneratedEvent) error { return nil }
func (NopEvents) MemberRemoved(context.Context, queue.MemberRemovedEvent) error     { return nil }

// TeamService applies team operations.  Mutations of one team are
// serialised inside this process; different teams proceed in parallel.
type TeamService struct {
	Teams  Teams
	Events Events
	Now    func() time.Time

	locks *xsync.Map[string, *sync.Mutex]
}

func NewTeamService(teams Teams, events Events) *TeamService {
	if events == nil {
		events = NopEvents{}
	}
	return &TeamService{
		Teams:  teams,
		Events: events,
		Now:    time.Now,
		locks:  xsync.NewMap[string, *sync.Mutex](),
	}
}

func (s *TeamService) lock(teamID string) func() {
	mu, _ := s.locks.LoadOrStore(teamID, &sync.Mutex{})
	mu.Lock()
	return mu.Unlock
}

// view loads a team for reading.
func (s *TeamService) view(ctx context.Context, teamID string) (*team.Team, error) {
	if !teamIDPattern.MatchString(teamID) {
		return nil, ErrInvalidTeamID
	}
	return s.Teams.Get(ctx, teamID)
}

// mutate loads the team, applies fn and saves the result.  Nothing is
// saved when fn fails.
func (s *TeamService) mutate(ctx context.Context, teamID string, fn func(*team.Team) error) (*team.Team, error) {
	if !teamIDPattern.MatchString(teamID) {
		return nil, ErrInvalidTeamID
	}
	defer s.lock(teamID)()

	t, err := s.Teams.Get(ctx, teamID)
	if err != nil {
		return nil, err
	}
	if err := fn(t); err != nil {
		return nil, err
	}
	if err := s.Teams.Save(ctx, teamID, t); err != nil {
		return nil, fmt.Errorf("save team %s: %w", teamID, err)
	}
	return t, nil
}

// Snapshot returns the whole team; this is also the export format.
func (s *TeamService) Snapshot(ctx context.Context, teamID string) (*team.Team, error) {
	return s.view(ctx, teamID)
}

// Members lists the roster narrowed by f.
func (s *TeamService) Members(ctx context.Context, teamID string, f team.Filter) ([]model.Member, error) {
	t, err := s.view(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return f.Apply(t.Roster)
}

// Lineup returns the current boat (nil before the first generation) with
// freshly computed stats.
func (s *TeamService) Lineup(ctx context.Context, teamID string) (*model.Boat, model.Stats, error) {
	t, err := s.view(ctx, teamID)
	if err != nil {
		return nil, model.Stats{}, err
	}
	return t.Lineup, t.Stats(), nil
}

func (s *TeamService) AddMember(ctx context.Context, teamID string, m model.Member) (model.Member, error) {
	var out model.Member
	_, err := s.mutate(ctx, teamID, func(t *team.Team) (err error) {
		out, err = t.AddMember(m)
		return err
	})
	return out, err
}

func (s *TeamService) EditMember(ctx context.Context, teamID string, m model.Member) (model.Member, error) {
	var out model.Member
	_, err := s.mutate(ctx, teamID, func(t *team.Team) (err error) {
		out, err = t.EditMember(m)
		return err
	})
	return out, err
}

// RemoveMember deletes a member everywhere and publishes MemberRemovedEvent.
func (s *TeamService) RemoveMember(ctx context.Context, teamID, memberID string) error {
	var ev queue.MemberRemovedEvent
	_, err := s.mutate(ctx, teamID, func(t *team.Team) error {
		m, err := t.Member(memberID)
		if err != nil {
			return err
		}
		ev = queue.MemberRemovedEvent{
			TeamID:    teamID,
			MemberID:  m.ID,
			Name:      m.Name,
			WasSeated: t.IsInBoat(m.ID),
		}
		return t.RemoveMember(memberID)
	})
	if err != nil {
		return err
	}
	ev.RemovedAt = s.Now().UTC().Format(time.RFC3339)
	if err := s.Events.MemberRemoved(ctx, ev); err != nil {
		log.Printf("team-service: publish member removed for %s: %v", teamID, err)
	}
	return nil
}

// AddToLineup adds members to the active lineup (alternatives once full)
// and returns how many were new.
func (s *TeamService) AddToLineup(ctx context.Context, teamID string, ids []string) (int, *team.Team, error) {
	var n int
	t, err := s.mutate(ctx, teamID, func(t *team.Team) (err error) {
		n, err = t.AddSelectedToLineup(ids)
		return err
	})
	return n, t, err
}

func (s *TeamService) MoveToActive(ctx context.Context, teamID, memberID string) (*team.Team, error) {
	return s.mutate(ctx, teamID, func(t *team.Team) error { return t.MoveToActive(memberID) })
}

func (s *TeamService) MoveToAlternatives(ctx context.Context, teamID, memberID string) (*team.Team, error) {
	return s.mutate(ctx, teamID, func(t *team.Team) error { return t.MoveToAlternatives(memberID) })
}

func (s *TeamService) RemoveFromAlternatives(ctx context.Context, teamID, memberID string) (*team.Team, error) {
	return s.mutate(ctx, teamID, func(t *team.Team) error {
		t.RemoveFromAlternatives(memberID)
		return nil
	})
}

func (s *TeamService) RemoveFromLineup(ctx context.Context, teamID, memberID string) (*team.Team, error) {
	return s.mutate(ctx, teamID, func(t *team.Team) error {
		t.RemoveFromLineup(memberID)
		return nil
	})
}

// Generate builds a new boat from the active lineup and locks, saves it
// and publishes LineupGeneratedEvent.  Validation failures leave the
// stored team untouched.
func (s *TeamService) Generate(ctx context.Context, teamID string) (*model.Boat, error) {
	var boat *model.Boat
	t, err := s.mutate(ctx, teamID, func(t *team.Team) (err error) {
		boat, err = t.Generate()
		return err
	})
	if err != nil {
		return nil, err
	}
	ev := generatedEvent(teamID, t)
	ev.GeneratedAt = s.Now().UTC().Format(time.RFC3339)
	if err := s.Events.LineupGenerated(ctx, ev); err != nil {
		log.Printf("team-service: publish lineup generated for %s: %v", teamID, err)
	}
	return boat, nil
}

func generatedEvent(teamID string, t *team.Team) queue.LineupGeneratedEvent {
	st := t.Stats()
	ev := queue.LineupGeneratedEvent{
		TeamID:               teamID,
		TotalPaddlers:        st.TotalPaddlers,
		LeftWeight:           st.LeftWeight,
		RightWeight:          st.RightWeight,
		WeightDifference:     st.WeightDifference,
		PreferencesSatisfied: st.PreferencesSatisfied,
		LockedSeats:          []string{},
	}
	if t.Lineup.Drummer != nil {
		ev.Drummer = t.Lineup.Drummer.Name
	}
	if t.Lineup.Steerer != nil {
		ev.Steerer = t.Lineup.Steerer.Name
	}
	for _, seat := range model.AllSeats() {
		if _, ok := t.Locked[seat.Key()]; ok {
			ev.LockedSeats = append(ev.LockedSeats, seat.Key())
		}
	}
	return ev
}

// ClearLineup drops the boat and every lock.
func (s *TeamService) ClearLineup(ctx context.Context, teamID string) error {
	_, err := s.mutate(ctx, teamID, func(t *team.Team) error {
		t.ClearLineup()
		return nil
	})
	return err
}

// ToggleLock pins or unpins a seat and returns the resulting locks.
func (s *TeamService) ToggleLock(ctx context.Context, teamID, seatKey string) (model.LockedPositions, error) {
	t, err := s.mutate(ctx, teamID, func(t *team.Team) error { return t.ToggleLock(seatKey) })
	if err != nil {
		return nil, err
	}
	return t.Locked, nil
}

// Move seats a member by hand and returns the resulting team.
func (s *TeamService) Move(ctx context.Context, teamID, memberID, seatKey string) (*team.Team, error) {
	seat, err := model.ParseSeat(seatKey)
	if err != nil {
		return nil, err
	}
	return s.mutate(ctx, teamID, func(t *team.Team) error { return t.MoveMember(memberID, seat) })
}

package repository

import (
	"context"
	"fmt"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/iliyamo/dragon-align/internal/team"
)

// Storage keys of the team collections.
const (
	KeyRoster       = "teamRoster"
	KeyActive       = "currentLineup"
	KeyAlternatives = "alternativePaddlers"
	KeyLineup       = "lineup"
	KeyLocked       = "lockedPositions"
)

// TeamRepo loads and saves a whole team.Team through a StateStore.
type TeamRepo struct{ Store StateStore }

func NewTeamRepo(s StateStore) *TeamRepo { return &TeamRepo{Store: s} }

// Get returns the stored team, or an empty one if nothing was saved yet.
func (r *TeamRepo) Get(ctx context.Context, teamID string) (*team.Team, error) {
	t := team.New()
	err := r.Store.LoadAll(ctx, teamID, map[string]any{
		KeyRoster:       &t.Roster,
		KeyActive:       &t.Active,
		KeyAlternatives: &t.Alternatives,
		KeyLineup:       &t.Lineup,
		KeyLocked:       &t.Locked,
	})
	if err != nil {
		return nil, fmt.Errorf("load team %s: %w", teamID, err)
	}
	t.Normalize()
	return t, nil
}

// Save writes every collection of the team in one batch: either all of
// them change or none do.  A nil lineup is stored as JSON null and reads
// back as nil.
func (r *TeamRepo) Save(ctx context.Context, teamID string, t *team.Team) error {
	err := r.Store.SaveAll(ctx, teamID, map[string]any{
		KeyRoster:       nonNil(t.Roster),
		KeyActive:       nonNil(t.Active),
		KeyAlternatives: nonNil(t.Alternatives),
		KeyLineup:       t.Lineup,
		KeyLocked:       t.Locked,
	})
	if err != nil {
		return fmt.Errorf("save team %s: %w", teamID, err)
	}
	return nil
}

// Delete drops every stored collection of the team.
func (r *TeamRepo) Delete(ctx context.Context, teamID string) error {
	return r.Store.Delete(ctx, teamID)
}

func nonNil(ms []model.Member) []model.Member {
	if ms == nil {
		return []model.Member{}
	}
	return ms
}

package team

import (
	"github.com/iliyamo/dragon-align/internal/lineup"
	"github.com/iliyamo/dragon-align/internal/model"
)

// AddToLineup puts a roster member in the active lineup, or in the
// alternatives once the active lineup holds 22.  Members already in
// either list are left alone.
func (t *Team) AddToLineup(id string) error {
	m, err := t.Member(id)
	if err != nil {
		return err
	}
	if t.inLineup(id) {
		return nil
	}
	if len(t.Active)+len(t.Alternatives) >= model.MaxCombined {
		return model.ErrTeamFull
	}
	if len(t.Active) < model.MaxActive {
		t.Active = append(t.Active, m)
	} else {
		t.Alternatives = append(t.Alternatives, m)
	}
	return nil
}

// AddSelectedToLineup adds several members at once, active lineup first.
// Nothing is added when the batch would exceed the combined capacity.
func (t *Team) AddSelectedToLineup(ids []string) (int, error) {
	var batch []model.Member
	seen := make(map[string]bool, len(ids))
	for _, id := range ids {
		if seen[id] || t.inLineup(id) {
			continue
		}
		seen[id] = true
		m, err := t.Member(id)
		if err != nil {
			return 0, err
		}
		batch = append(batch, m)
	}
	if len(t.Active)+len(t.Alternatives)+len(batch) > model.MaxCombined {
		return 0, model.ErrTeamFull
	}
	for _, m := range batch {
		if len(t.Active) < model.MaxActive {
			t.Active = append(t.Active, m)
		} else {
			t.Alternatives = append(t.Alternatives, m)
		}
	}
	return len(batch), nil
}

// RemoveFromLineup takes a member out of the active lineup only.
func (t *Team) RemoveFromLineup(id string) {
	t.Active = model.Without(t.Active, id)
}

// MoveToAlternatives benches a member: it leaves the active lineup and
// any boat seat it holds.
func (t *Team) MoveToAlternatives(id string) error {
	m, err := t.Member(id)
	if err != nil {
		return err
	}
	already := model.IndexOf(t.Alternatives, id) >= 0
	if !already && len(t.Alternatives) >= model.MaxAlternatives {
		return model.ErrAlternativesFull
	}
	t.Active = model.Without(t.Active, id)
	if !already {
		t.Alternatives = append(t.Alternatives, m)
	}
	if t.Lineup != nil && t.Lineup.Remove(id) {
		lineup.Refresh(t.Lineup)
	}
	return nil
}

// MoveToActive promotes a member to the active lineup.
func (t *Team) MoveToActive(id string) error {
	m, err := t.Member(id)
	if err != nil {
		return err
	}
	if model.IndexOf(t.Active, id) >= 0 {
		t.Alternatives = model.Without(t.Alternatives, id)
		return nil
	}
	if len(t.Active) >= model.MaxActive {
		return model.ErrActiveFull
	}
	t.Alternatives = model.Without(t.Alternatives, id)
	t.Active = append(t.Active, m)
	return nil
}

// RemoveFromAlternatives drops a member from the bench.
func (t *Team) RemoveFromAlternatives(id string) {
	t.Alternatives = model.Without(t.Alternatives, id)
}

// Generate replaces the boat with a freshly generated one.  On a
// validation error the previous boat is kept.
func (t *Team) Generate() (*model.Boat, error) {
	boat, err := lineup.Generate(t.Active, t.Locked)
	if err != nil {
		return nil, err
	}
	t.Lineup = boat
	return boat, nil
}

// Stats recomputes the statistics of the current boat.
func (t *Team) Stats() model.Stats {
	return lineup.ComputeStats(t.Lineup)
}

// ToggleLock pins or unpins the occupant of a seat.
func (t *Team) ToggleLock(key string) error {
	locked, err := lineup.ToggleLock(t.Lineup, t.Locked, key)
	if err != nil {
		return err
	}
	t.Locked = locked
	return nil
}

// MoveMember seats a roster member by hand.
func (t *Team) MoveMember(id string, target model.Seat) error {
	m, err := t.Member(id)
	if err != nil {
		return err
	}
	out, err := lineup.MoveMember(lineup.Assignment{
		Boat:         t.Lineup,
		Active:       t.Active,
		Alternatives: t.Alternatives,
	}, t.Locked, m, target)
	if err != nil {
		return err
	}
	t.Lineup, t.Active, t.Alternatives = out.Boat, out.Active, out.Alternatives
	return nil
}

func (t *Team) inLineup(id string) bool {
	return model.IndexOf(t.Active, id) >= 0 || model.IndexOf(t.Alternatives, id) >= 0
}

package repository

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/iliyamo/dragon-align/internal/team"
)

func TestMemoryStateStore(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStateStore()

	t.Run("missing keys load as not found", func(t *testing.T) {
		var v []string
		ok, err := s.Load(ctx, "a", "k", &v)
		require.NoError(t, err)
		require.False(t, ok)
	})

	t.Run("saved values round trip and are copied", func(t *testing.T) {
		in := []string{"x", "y"}
		require.NoError(t, s.Save(ctx, "a", "k", in))
		in[0] = "changed"

		var out []string
		ok, err := s.Load(ctx, "a", "k", &out)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, []string{"x", "y"}, out)
	})

	t.Run("delete only touches one team", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "a", "other", 1))
		require.NoError(t, s.Save(ctx, "ab", "k", 2))
		require.NoError(t, s.Delete(ctx, "a"))

		var n int
		ok, err := s.Load(ctx, "a", "other", &n)
		require.NoError(t, err)
		require.False(t, ok)
		ok, err = s.Load(ctx, "ab", "k", &n)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, 2, n)
	})

	t.Run("a batch with an unencodable value writes nothing", func(t *testing.T) {
		require.NoError(t, s.SaveAll(ctx, "b", map[string]any{"x": 1, "y": 2}))

		err := s.SaveAll(ctx, "b", map[string]any{"x": 10, "y": math.NaN()})
		require.Error(t, err)

		var x, y, z int
		z = -1
		require.NoError(t, s.LoadAll(ctx, "b", map[string]any{"x": &x, "y": &y, "z": &z}))
		require.Equal(t, 1, x)
		require.Equal(t, 2, y)
		require.Equal(t, -1, z, "missing keys leave the destination alone")
	})

	t.Run("undecodable values report corrupt state", func(t *testing.T) {
		require.NoError(t, s.Save(ctx, "c", "k", "text"))
		var n int
		_, err := s.Load(ctx, "c", "k", &n)
		require.ErrorIs(t, err, ErrCorruptState)
	})
}

func TestTeamRepoRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewTeamRepo(NewMemoryStateStore())

	t.Run("unknown team is empty", func(t *testing.T) {
		tm, err := repo.Get(ctx, "new")
		require.NoError(t, err)
		require.Empty(t, tm.Roster)
		require.Nil(t, tm.Lineup)
		require.NotNil(t, tm.Locked)
	})

	t.Run("generated team survives a save and load", func(t *testing.T) {
		tm := team.New()
		steer, err := tm.AddMember(model.Member{Name: "Sam", Weight: 150, PreferredSide: model.Both, Roles: []model.Role{model.Steerer}, Gender: model.Neutral})
		require.NoError(t, err)
		pad, err := tm.AddMember(model.Member{Name: "Pat", Weight: 170, PreferredSide: model.LeftOnly, Roles: []model.Role{model.Paddler}, Gender: model.Male})
		require.NoError(t, err)
		_, err = tm.AddSelectedToLineup([]string{steer.ID, pad.ID})
		require.NoError(t, err)
		_, err = tm.Generate()
		require.NoError(t, err)
		seat, ok := tm.Lineup.Find(pad.ID)
		require.True(t, ok)
		require.NoError(t, tm.ToggleLock(seat.Key()))

		require.NoError(t, repo.Save(ctx, "dragons", tm))
		got, err := repo.Get(ctx, "dragons")
		require.NoError(t, err)
		require.Equal(t, tm, got)
	})

	t.Run("cleared lineup reads back as nil", func(t *testing.T) {
		tm, err := repo.Get(ctx, "dragons")
		require.NoError(t, err)
		tm.ClearLineup()
		require.NoError(t, repo.Save(ctx, "dragons", tm))

		got, err := repo.Get(ctx, "dragons")
		require.NoError(t, err)
		require.Nil(t, got.Lineup)
		require.Empty(t, got.Locked)
		require.Len(t, got.Roster, 2)
	})

	t.Run("a failed save keeps every stored collection", func(t *testing.T) {
		before, err := repo.Get(ctx, "dragons")
		require.NoError(t, err)

		tm, err := repo.Get(ctx, "dragons")
		require.NoError(t, err)
		tm.Roster = tm.Roster[:1]
		tm.Lineup = model.NewBoat()
		tm.Lineup.Steerer = &model.Member{ID: "bad", Name: "Bad", Weight: math.NaN(), Roles: []model.Role{model.Steerer}}
		require.Error(t, repo.Save(ctx, "dragons", tm))

		got, err := repo.Get(ctx, "dragons")
		require.NoError(t, err)
		require.Equal(t, before, got)
	})

	t.Run("delete wipes the team", func(t *testing.T) {
		require.NoError(t, repo.Delete(ctx, "dragons"))
		got, err := repo.Get(ctx, "dragons")
		require.NoError(t, err)
		require.Empty(t, got.Roster)
	})
}

func TestMemoryCoachRepo(t *testing.T) {
	ctx := context.Background()
	r := NewMemoryCoachRepo()

	id, err := r.Create(ctx, " Coach@Example.com ", "long-password", model.RoleCoach, 4)
	require.NoError(t, err)
	require.Equal(t, uint64(1), id)

	_, err = r.Create(ctx, "coach@example.com", "another-one", model.RoleViewer, 4)
	require.ErrorIs(t, err, ErrEmailExists)

	c, err := r.GetByEmail(ctx, "COACH@example.com")
	require.NoError(t, err)
	require.Equal(t, "coach@example.com", c.Email)
	require.True(t, c.IsActive)

	_, err = r.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, ErrCoachNotFound)
}

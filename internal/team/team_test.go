package team

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/dragon-align/internal/lineup"
	"github.com/iliyamo/dragon-align/internal/model"
)

func sequentialIDs(t *testing.T) {
	t.Helper()
	n := 0
	prev := NewID
	NewID = func() string {
		n++
		return fmt.Sprintf("m%02d", n)
	}
	t.Cleanup(func() { NewID = prev })
}

func newMember(name string, weight float64, roles ...model.Role) model.Member {
	if len(roles) == 0 {
		roles = []model.Role{model.Paddler}
	}
	return model.Member{Name: name, Weight: weight, PreferredSide: model.Both, Roles: roles, Gender: model.Female}
}

// crew builds a team with a steerer and n paddlers on the roster and in
// the active lineup.
func crew(t *testing.T, n int) *Team {
	t.Helper()
	tm := New()
	s, err := tm.AddMember(newMember("steer", 150, model.Steerer))
	require.NoError(t, err)
	require.NoError(t, tm.AddToLineup(s.ID))
	for i := 0; i < n; i++ {
		m, err := tm.AddMember(newMember(fmt.Sprintf("paddler %d", i), 120+float64(i)))
		require.NoError(t, err)
		require.NoError(t, tm.AddToLineup(m.ID))
	}
	return tm
}

func TestAddMember(t *testing.T) {
	sequentialIDs(t)

	t.Run("assigns an id and trims the name", func(t *testing.T) {
		tm := New()
		m, err := tm.AddMember(newMember("  Ana  ", 130))
		require.NoError(t, err)
		require.Equal(t, "m01", m.ID)
		require.Equal(t, "Ana", m.Name)
		require.Len(t, tm.Roster, 1)
	})

	t.Run("rejects invalid members without touching the roster", func(t *testing.T) {
		tm := New()
		_, err := tm.AddMember(newMember("", 130))
		require.ErrorIs(t, err, model.ErrMemberName)
		_, err = tm.AddMember(newMember("Heavy", 331))
		require.ErrorIs(t, err, model.ErrMemberWeight)
		_, err = tm.AddMember(model.Member{Name: "NoRole", Weight: 100})
		require.ErrorIs(t, err, model.ErrMemberRoles)
		require.Empty(t, tm.Roster)
	})
}

func TestEditMemberCascades(t *testing.T) {
	sequentialIDs(t)
	tm := crew(t, 4)
	_, err := tm.Generate()
	require.NoError(t, err)

	seat, ok := tm.Lineup.Find("m02")
	require.True(t, ok)
	require.NoError(t, tm.ToggleLock(seat.Key()))

	edited := tm.Roster[1]
	edited.Name = "Renamed"
	edited.Weight = 200
	_, err = tm.EditMember(edited)
	require.NoError(t, err)

	require.Equal(t, "Renamed", tm.Roster[1].Name)
	require.Equal(t, "Renamed", tm.Active[model.IndexOf(tm.Active, "m02")].Name)
	require.Equal(t, 200.0, tm.Lineup.At(seat).Weight)
	require.Equal(t, 200.0, tm.Locked[seat.Key()].Weight)

	want := lineup.ComputeStats(tm.Lineup)
	require.Equal(t, &want, tm.Lineup.Stats)

	t.Run("unknown id", func(t *testing.T) {
		ghost := newMember("Ghost", 100)
		ghost.ID = "nope"
		_, err := tm.EditMember(ghost)
		require.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestRemoveMemberCascades(t *testing.T) {
	sequentialIDs(t)
	tm := crew(t, 4)
	_, err := tm.Generate()
	require.NoError(t, err)

	seat, ok := tm.Lineup.Find("m03")
	require.True(t, ok)
	require.NoError(t, tm.ToggleLock(seat.Key()))

	require.NoError(t, tm.RemoveMember("m03"))
	require.Equal(t, -1, model.IndexOf(tm.Roster, "m03"))
	require.Equal(t, -1, model.IndexOf(tm.Active, "m03"))
	require.False(t, tm.Locked.Holds("m03"))
	require.False(t, tm.IsInBoat("m03"))
	require.Equal(t, 3, tm.Lineup.Stats.TotalPaddlers)

	require.ErrorIs(t, tm.RemoveMember("m03"), ErrMemberNotFound)
}

func TestAddToLineupCapacity(t *testing.T) {
	sequentialIDs(t)
	tm := New()
	for i := 0; i < model.MaxCombined+1; i++ {
		_, err := tm.AddMember(newMember(fmt.Sprintf("m%d", i), 100))
		require.NoError(t, err)
	}

	for i := 0; i < model.MaxCombined; i++ {
		require.NoError(t, tm.AddToLineup(tm.Roster[i].ID))
	}
	require.Len(t, tm.Active, model.MaxActive)
	require.Len(t, tm.Alternatives, model.MaxAlternatives)

	require.ErrorIs(t, tm.AddToLineup(tm.Roster[model.MaxCombined].ID), model.ErrTeamFull)
	require.ErrorIs(t, tm.AddToLineup("missing"), ErrMemberNotFound)

	// Members already listed are a no-op even on a full team.
	require.NoError(t, tm.AddToLineup(tm.Roster[0].ID))
	require.NoError(t, tm.AddToLineup(tm.Roster[model.MaxCombined-1].ID))
	require.Len(t, tm.Active, model.MaxActive)
	require.Len(t, tm.Alternatives, model.MaxAlternatives)
}

func TestAddToLineupIgnoresDuplicates(t *testing.T) {
	sequentialIDs(t)
	tm := crew(t, 1)
	require.NoError(t, tm.AddToLineup("m02"))
	require.Len(t, tm.Active, 2)
}

func TestAddSelectedToLineup(t *testing.T) {
	sequentialIDs(t)

	t.Run("fills active then alternatives", func(t *testing.T) {
		tm := New()
		var ids []string
		for i := 0; i < 25; i++ {
			m, err := tm.AddMember(newMember(fmt.Sprintf("m%d", i), 100))
			require.NoError(t, err)
			ids = append(ids, m.ID)
		}
		added, err := tm.AddSelectedToLineup(append(ids, ids[0]))
		require.NoError(t, err)
		require.Equal(t, 25, added)
		require.Len(t, tm.Active, 22)
		require.Len(t, tm.Alternatives, 3)
	})

	t.Run("rejects an oversized batch as a whole", func(t *testing.T) {
		tm := New()
		var ids []string
		for i := 0; i < 31; i++ {
			m, err := tm.AddMember(newMember(fmt.Sprintf("m%d", i), 100))
			require.NoError(t, err)
			ids = append(ids, m.ID)
		}
		_, err := tm.AddSelectedToLineup(ids)
		require.ErrorIs(t, err, model.ErrTeamFull)
		require.Empty(t, tm.Active)
	})

	t.Run("unknown ids fail the batch", func(t *testing.T) {
		tm := crew(t, 0)
		_, err := tm.AddSelectedToLineup([]string{"ghost"})
		require.ErrorIs(t, err, ErrMemberNotFound)
	})
}

func TestMoveBetweenLists(t *testing.T) {
	sequentialIDs(t)

	t.Run("benching strips the boat seat", func(t *testing.T) {
		tm := crew(t, 3)
		_, err := tm.Generate()
		require.NoError(t, err)
		require.True(t, tm.IsInBoat("m02"))

		require.NoError(t, tm.MoveToAlternatives("m02"))
		require.False(t, tm.IsInBoat("m02"))
		require.Equal(t, -1, model.IndexOf(tm.Active, "m02"))
		require.Equal(t, 0, model.IndexOf(tm.Alternatives, "m02"))
		require.Equal(t, 2, tm.Lineup.Stats.TotalPaddlers)

		require.NoError(t, tm.MoveToActive("m02"))
		require.Empty(t, tm.Alternatives)
		require.NotEqual(t, -1, model.IndexOf(tm.Active, "m02"))
	})

	t.Run("bench capacity", func(t *testing.T) {
		tm := crew(t, model.MaxAlternatives+1)
		for i := 0; i < model.MaxAlternatives; i++ {
			require.NoError(t, tm.MoveToAlternatives(tm.Roster[i+1].ID))
		}
		last := tm.Roster[model.MaxAlternatives+1].ID
		require.ErrorIs(t, tm.MoveToAlternatives(last), model.ErrAlternativesFull)
		require.NotEqual(t, -1, model.IndexOf(tm.Active, last))
	})

	t.Run("active capacity", func(t *testing.T) {
		tm := crew(t, model.MaxActive-1)
		bench, err := tm.AddMember(newMember("bench", 100))
		require.NoError(t, err)
		require.NoError(t, tm.AddToLineup(bench.ID))
		require.Equal(t, 0, model.IndexOf(tm.Alternatives, bench.ID))

		require.ErrorIs(t, tm.MoveToActive(bench.ID), model.ErrActiveFull)
		require.Equal(t, 0, model.IndexOf(tm.Alternatives, bench.ID))
	})

	t.Run("remove from alternatives and from lineup", func(t *testing.T) {
		tm := crew(t, 2)
		require.NoError(t, tm.MoveToAlternatives("m02"))
		tm.RemoveFromAlternatives("m02")
		require.Empty(t, tm.Alternatives)
		tm.RemoveFromLineup("m03")
		require.Len(t, tm.Active, 1)
		require.Len(t, tm.Roster, 3)
	})
}

func TestGenerateKeepsPreviousBoatOnFailure(t *testing.T) {
	sequentialIDs(t)
	tm := crew(t, 2)
	boat, err := tm.Generate()
	require.NoError(t, err)

	tm.RemoveFromLineup("m01")
	_, err = tm.Generate()
	require.ErrorIs(t, err, lineup.ErrNoSteerer)
	require.Same(t, boat, tm.Lineup)
}

func TestMoveMemberAndClear(t *testing.T) {
	sequentialIDs(t)
	tm := crew(t, 2)
	_, err := tm.Generate()
	require.NoError(t, err)

	target := model.PaddlerAt(10, model.Right)
	require.NoError(t, tm.MoveMember("m02", target))
	require.Equal(t, "m02", tm.Lineup.At(target).ID)
	require.ErrorIs(t, tm.MoveMember("ghost", target), ErrMemberNotFound)

	require.NoError(t, tm.ToggleLock(target.Key()))
	require.Len(t, tm.Locked, 1)

	tm.ClearLineup()
	require.Nil(t, tm.Lineup)
	require.Empty(t, tm.Locked)
	require.Len(t, tm.Roster, 3)

	tm.ClearAll()
	require.Empty(t, tm.Roster)
	require.Empty(t, tm.Active)
	require.NotNil(t, tm.Locked)
}

func TestFilter(t *testing.T) {
	roster := []model.Member{
		{ID: "1", Name: "Alice", Weight: 120, PreferredSide: model.LeftOnly, Roles: []model.Role{model.Paddler}, Gender: model.Female},
		{ID: "2", Name: "Bob", Weight: 180, PreferredSide: model.RightOnly, Roles: []model.Role{model.Paddler, model.Steerer}, Gender: model.Male},
		{ID: "3", Name: "Alina", Weight: 110, PreferredSide: model.Both, Roles: []model.Role{model.Drummer}, Gender: model.Female},
	}
	ids := func(ms []model.Member) []string {
		var out []string
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}

	cases := []struct {
		name string
		f    Filter
		want []string
	}{
		{"no filter returns everyone", Filter{Role: "all", Gender: "all", Side: "all"}, []string{"1", "2", "3"}},
		{"search is case insensitive", Filter{Search: "ALI"}, []string{"1", "3"}},
		{"role filter matches any role", Filter{Role: "steerer"}, []string{"2"}},
		{"gender filter", Filter{Gender: "female"}, []string{"1", "3"}},
		{"side filter is exact", Filter{Side: "both"}, []string{"3"}},
		{"filters combine", Filter{Search: "al", Role: "paddler"}, []string{"1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.f.Apply(roster)
			require.NoError(t, err)
			require.Equal(t, tc.want, ids(got))
		})
	}

	t.Run("unknown filter values are rejected", func(t *testing.T) {
		_, err := Filter{Role: "captain"}.Apply(roster)
		require.ErrorIs(t, err, ErrInvalidFilter)
	})
}

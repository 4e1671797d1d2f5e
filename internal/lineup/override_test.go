package lineup

import (
	"fmt"
	"testing"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/stretchr/testify/require"
)

func TestToggleLock(t *testing.T) {
	a := member("a", 150, model.Both, model.Male)
	boat := model.NewBoat()
	boat.Set(model.PaddlerAt(4, model.Left), &a)

	t.Run("locks the occupant of a seat", func(t *testing.T) {
		in := model.LockedPositions{}

		out, err := ToggleLock(boat, in, "4-left")

		require.NoError(t, err)
		require.Equal(t, "a", out["4-left"].ID)
		require.Empty(t, in, "input map must not change")
	})

	t.Run("unlocks a locked seat", func(t *testing.T) {
		out, err := ToggleLock(boat, model.LockedPositions{"4-left": a}, "4-LEFT")

		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("empty seat is a no-op", func(t *testing.T) {
		out, err := ToggleLock(boat, model.LockedPositions{}, "drummer")

		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("nil boat is a no-op", func(t *testing.T) {
		out, err := ToggleLock(nil, model.LockedPositions{"4-left": a}, "4-left")

		require.NoError(t, err)
		require.Len(t, out, 1)
	})

	t.Run("rejects malformed keys", func(t *testing.T) {
		for _, key := range []string{"", "11-left", "0-right", "3-middle", "bow"} {
			_, err := ToggleLock(boat, nil, key)
			require.Error(t, err, key)
		}
	})
}

func TestMoveMember(t *testing.T) {
	left := member("left", 150, model.LeftOnly, model.Male)
	right := member("right", 140, model.RightOnly, model.Female)
	bench := member("bench", 160, model.Both, model.Neutral)

	base := func() Assignment {
		b := model.NewBoat()
		b.Set(model.PaddlerAt(1, model.Left), seatOf(left))
		b.Set(model.PaddlerAt(1, model.Right), seatOf(right))
		return Assignment{Boat: b, Active: []model.Member{left, right}, Alternatives: []model.Member{bench}}
	}

	t.Run("moves into an empty seat and vacates the old one", func(t *testing.T) {
		in := base()

		out, err := MoveMember(in, nil, left, model.PaddlerAt(5, model.Left))

		require.NoError(t, err)
		require.Nil(t, out.Boat.At(model.PaddlerAt(1, model.Left)))
		require.Equal(t, "left", out.Boat.At(model.PaddlerAt(5, model.Left)).ID)
		require.Equal(t, "left", in.Boat.At(model.PaddlerAt(1, model.Left)).ID, "input boat must not change")
		require.Equal(t, 2, out.Boat.Stats.TotalPaddlers)
	})

	t.Run("displaced occupant goes to the first free seat on its side", func(t *testing.T) {
		out, err := MoveMember(base(), nil, left, model.PaddlerAt(1, model.Right))

		require.NoError(t, err)
		require.Equal(t, "left", out.Boat.At(model.PaddlerAt(1, model.Right)).ID)
		require.Equal(t, "right", out.Boat.At(model.PaddlerAt(2, model.Right)).ID)
		require.Nil(t, out.Boat.At(model.PaddlerAt(1, model.Left)))
	})

	t.Run("member from the alternatives joins the active lineup", func(t *testing.T) {
		out, err := MoveMember(base(), nil, bench, model.DrummerPosition)

		require.NoError(t, err)
		require.Equal(t, "bench", out.Boat.Drummer.ID)
		require.Empty(t, out.Alternatives)
		require.Equal(t, 2, model.IndexOf(out.Active, "bench"))
	})

	t.Run("locked target is rejected", func(t *testing.T) {
		in := base()
		locked := model.LockedPositions{"1-right": right}

		out, err := MoveMember(in, locked, left, model.PaddlerAt(1, model.Right))

		require.ErrorIs(t, err, ErrSeatLocked)
		require.Equal(t, in, out)
	})

	t.Run("member in a locked seat cannot be moved", func(t *testing.T) {
		locked := model.LockedPositions{"1-left": left}

		_, err := MoveMember(base(), locked, left, model.PaddlerAt(3, model.Left))

		require.ErrorIs(t, err, ErrSeatLocked)
	})

	t.Run("moving to the current seat changes nothing", func(t *testing.T) {
		in := base()

		out, err := MoveMember(in, nil, left, model.PaddlerAt(1, model.Left))

		require.NoError(t, err)
		require.Equal(t, in, out)
	})

	t.Run("displaced occupant is benched when the boat is full", func(t *testing.T) {
		b := model.NewBoat()
		var active []model.Member
		for i, c := range AvailableSeats(b) {
			m := member(fmt.Sprintf("m%02d", i), 150, model.Both, model.Male)
			b.Set(c.Seat(), seatOf(m))
			active = append(active, m)
		}

		out, err := MoveMember(Assignment{Boat: b, Active: active}, nil, bench, model.PaddlerAt(1, model.Left))

		require.NoError(t, err)
		require.Equal(t, "bench", out.Boat.At(model.PaddlerAt(1, model.Left)).ID)
		require.Equal(t, []model.Member{active[0]}, out.Alternatives)
		require.Equal(t, -1, model.IndexOf(out.Active, "m00"))
		require.Len(t, out.Active, 20)
	})

	t.Run("displaced occupant stays unseated when the bench is full too", func(t *testing.T) {
		b := model.NewBoat()
		var active, alts []model.Member
		for i, c := range AvailableSeats(b) {
			m := member(fmt.Sprintf("m%02d", i), 150, model.Both, model.Male)
			b.Set(c.Seat(), seatOf(m))
			active = append(active, m)
		}
		for i := 0; i < model.MaxAlternatives; i++ {
			alts = append(alts, member(fmt.Sprintf("alt%d", i), 150, model.Both, model.Male))
		}
		extra := member("extra", 150, model.Both, model.Male)

		out, err := MoveMember(Assignment{Boat: b, Active: active, Alternatives: alts}, nil, extra, model.PaddlerAt(2, model.Right))

		require.NoError(t, err)
		require.False(t, out.Boat.Contains("m03"))
		require.NotEqual(t, -1, model.IndexOf(out.Active, "m03"))
		require.Len(t, out.Alternatives, model.MaxAlternatives)
	})

	t.Run("full active lineup rejects a new member", func(t *testing.T) {
		var active []model.Member
		for i := 0; i < model.MaxActive; i++ {
			active = append(active, member(fmt.Sprintf("a%02d", i), 150, model.Both, model.Male))
		}
		in := Assignment{Boat: model.NewBoat(), Active: active, Alternatives: []model.Member{bench}}

		_, err := MoveMember(in, nil, bench, model.PaddlerAt(1, model.Left))

		require.ErrorIs(t, err, model.ErrActiveFull)
	})

	t.Run("displaced specialist without the paddler role is benched", func(t *testing.T) {
		steer := member("steer", 170, model.Both, model.Male, model.Steerer)
		flex := member("flex", 160, model.RightOnly, model.Male, model.Steerer, model.Paddler)

		in := base()
		in.Boat.Steerer = seatOf(steer)
		in.Active = append(in.Active, steer)
		out, err := MoveMember(in, nil, left, model.SteererPosition)

		require.NoError(t, err)
		require.Equal(t, "left", out.Boat.Steerer.ID)
		require.False(t, out.Boat.Contains("steer"))
		require.Equal(t, 1, model.IndexOf(out.Alternatives, "steer"))
		require.Equal(t, -1, model.IndexOf(out.Active, "steer"))

		in = base()
		in.Boat.Steerer = seatOf(flex)
		in.Active = append(in.Active, flex)
		out, err = MoveMember(in, nil, left, model.SteererPosition)

		require.NoError(t, err)
		require.Equal(t, "flex", out.Boat.At(model.PaddlerAt(2, model.Right)).ID)
	})

	t.Run("nil boat starts from an empty one", func(t *testing.T) {
		out, err := MoveMember(Assignment{Active: []model.Member{left}}, nil, left, model.SteererPosition)

		require.NoError(t, err)
		require.Equal(t, "left", out.Boat.Steerer.ID)
	})
}

package lineup

import (
	"testing"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/stretchr/testify/require"
)

func TestComputeStats(t *testing.T) {
	t.Run("empty boat has zero stats", func(t *testing.T) {
		st := ComputeStats(model.NewBoat())

		require.Equal(t, model.Stats{}, st)
	})

	t.Run("nil boat has zero stats", func(t *testing.T) {
		require.Equal(t, model.Stats{}, ComputeStats(nil))
	})

	t.Run("sums weights by side and zone", func(t *testing.T) {
		b := model.NewBoat()
		b.Set(model.PaddlerAt(1, model.Left), seatOf(member("a", 150, model.LeftOnly, model.Male)))
		b.Set(model.PaddlerAt(5, model.Right), seatOf(member("b", 120, model.RightOnly, model.Female)))
		b.Set(model.PaddlerAt(6, model.Left), seatOf(member("c", 180, model.Both, model.Neutral)))
		b.Set(model.PaddlerAt(10, model.Right), seatOf(member("d", 100, model.RightPreferred, model.Female)))

		st := ComputeStats(b)

		require.Equal(t, 4, st.TotalPaddlers)
		require.InDelta(t, 330.0, st.LeftWeight, 1e-9)
		require.InDelta(t, 220.0, st.RightWeight, 1e-9)
		require.InDelta(t, 110.0, st.WeightDifference, 1e-9)
		require.InDelta(t, 270.0, st.FrontBackWeight.FrontWeight, 1e-9)
		require.InDelta(t, 280.0, st.FrontBackWeight.BackWeight, 1e-9)
		require.Equal(t, model.GenderDistribution{Male: 1, Female: 2, Neutral: 1}, st.GenderDistribution)
		require.Equal(t, 100, st.PreferencesSatisfied)
	})

	t.Run("specialists are excluded from weights and genders", func(t *testing.T) {
		b := model.NewBoat()
		b.Drummer = seatOf(member("d", 120, model.Both, model.Female, model.Drummer))
		b.Steerer = seatOf(member("s", 200, model.Both, model.Male, model.Steerer))
		b.Set(model.PaddlerAt(2, model.Left), seatOf(member("a", 150, model.LeftOnly, model.Male)))

		st := ComputeStats(b)

		require.Equal(t, 1, st.TotalPaddlers)
		require.InDelta(t, 150.0, st.LeftWeight+st.RightWeight, 1e-9)
		require.Equal(t, 1, st.GenderDistribution.Total())
	})

	t.Run("soft opposite preference still counts as satisfied", func(t *testing.T) {
		b := model.NewBoat()
		b.Set(model.PaddlerAt(1, model.Left), seatOf(member("a", 150, model.RightPreferred, model.Male)))
		b.Set(model.PaddlerAt(1, model.Right), seatOf(member("b", 150, model.LeftPreferred, model.Male)))

		require.Equal(t, 100, ComputeStats(b).PreferencesSatisfied)
	})

	t.Run("strict opposite preference is unsatisfied and the percentage is rounded", func(t *testing.T) {
		b := model.NewBoat()
		b.Set(model.PaddlerAt(1, model.Left), seatOf(member("a", 150, model.RightOnly, model.Male)))
		b.Set(model.PaddlerAt(1, model.Right), seatOf(member("b", 150, model.RightOnly, model.Male)))
		b.Set(model.PaddlerAt(2, model.Right), seatOf(member("c", 150, model.LeftOnly, model.Male)))

		// 1 of 3 satisfied -> 33.33 -> 33
		require.Equal(t, 33, ComputeStats(b).PreferencesSatisfied)

		b.Set(model.PaddlerAt(2, model.Right), seatOf(member("c", 150, model.Both, model.Male)))
		// 2 of 3 -> 66.67 -> 67
		require.Equal(t, 67, ComputeStats(b).PreferencesSatisfied)
	})

	t.Run("is a pure function of the boat", func(t *testing.T) {
		boat, err := Generate(append(paddlers(14, 130), member("s", 170, model.Both, model.Male, model.Steerer)), nil)
		require.NoError(t, err)

		require.Equal(t, ComputeStats(boat), ComputeStats(boat))
		require.Equal(t, *boat.Stats, ComputeStats(boat))
	})
}

func TestComputeStats_WeightConservation(t *testing.T) {
	for _, n := range []int{1, 7, 20} {
		boat, err := Generate(append(paddlers(n, 120), member("s", 170, model.Both, model.Male, model.Steerer)), nil)
		require.NoError(t, err)

		var sum float64
		for _, r := range boat.Rows {
			if r.Left != nil {
				sum += r.Left.Weight
			}
			if r.Right != nil {
				sum += r.Right.Weight
			}
		}
		st := ComputeStats(boat)
		require.InDelta(t, sum, st.LeftWeight+st.RightWeight, 1e-9)
		require.InDelta(t, sum, st.FrontBackWeight.FrontWeight+st.FrontBackWeight.BackWeight, 1e-9)
	}
}

package lineup

import (
	"math"

	"github.com/iliyamo/dragon-align/internal/model"
)

// ComputeStats derives the quality metrics of a boat.  Only row seats
// count; the drummer and steerer carry no paddling weight.
func ComputeStats(b *model.Boat) model.Stats {
	var st model.Stats
	if b == nil {
		return st
	}
	satisfied := 0
	for _, row := range b.Rows {
		for _, side := range []model.Side{model.Left, model.Right} {
			m := row.At(side)
			if m == nil {
				continue
			}
			st.TotalPaddlers++
			if side == model.Left {
				st.LeftWeight += m.Weight
			} else {
				st.RightWeight += m.Weight
			}
			if model.ZoneOf(row.Row) == model.Front {
				st.FrontBackWeight.FrontWeight += m.Weight
			} else {
				st.FrontBackWeight.BackWeight += m.Weight
			}
			if preferenceSatisfied(m.PreferredSide, side) {
				satisfied++
			}
			switch m.Gender {
			case model.Male:
				st.GenderDistribution.Male++
			case model.Female:
				st.GenderDistribution.Female++
			case model.Neutral:
				st.GenderDistribution.Neutral++
			}
		}
	}
	st.WeightDifference = math.Abs(st.LeftWeight - st.RightWeight)
	if st.TotalPaddlers > 0 {
		st.PreferencesSatisfied = int(math.Round(float64(satisfied) / float64(st.TotalPaddlers) * 100))
	}
	return st
}

// preferenceSatisfied is deliberately lenient: only the strict opposite
// preference (right-only on the left, left-only on the right) counts as
// unsatisfied.  A soft preference for the other side still counts.
func preferenceSatisfied(p model.PreferredSide, side model.Side) bool {
	switch p {
	case model.LeftOnly:
		return side == model.Left
	case model.RightOnly:
		return side == model.Right
	case model.LeftPreferred, model.Both, model.RightPreferred:
		return true
	}
	return false
}

// Refresh recomputes the stats snapshot held by b and returns b.
func Refresh(b *model.Boat) *model.Boat {
	if b == nil {
		return nil
	}
	st := ComputeStats(b)
	b.Stats = &st
	return b
}

package lineup

import (
	"math"

	"github.com/iliyamo/dragon-align/internal/model"
)

// Scoring weights.  Left/right balance dominates (~70%), then side
// preference (~20%), then fore/aft balance (~10%); the row nudges only
// break near-ties.
const (
	balanceBase     = 1000.0
	balanceFactor   = 0.7
	strictSideBonus = 200.0
	eitherSideBonus = 100.0
	zoneBonus       = 100.0
	rowNudge        = 50.0

	heavyPaddler = 160.0
	lightPaddler = 140.0
)

// Totals are the running seat weights maintained while placing paddlers.
type Totals struct {
	Left, Right float64
	Front, Back float64
}

// TotalsOf sums the row occupants of b.
func TotalsOf(b *model.Boat) Totals {
	st := ComputeStats(b)
	return Totals{
		Left:  st.LeftWeight,
		Right: st.RightWeight,
		Front: st.FrontBackWeight.FrontWeight,
		Back:  st.FrontBackWeight.BackWeight,
	}
}

func (t Totals) side(s model.Side) float64 {
	if s == model.Right {
		return t.Right
	}
	return t.Left
}

func (t Totals) zone(z model.Zone) float64 {
	if z == model.Back {
		return t.Back
	}
	return t.Front
}

// Add records weight w placed at c.
func (t *Totals) Add(c Candidate, w float64) {
	if c.Side == model.Left {
		t.Left += w
	} else {
		t.Right += w
	}
	if c.Zone == model.Front {
		t.Front += w
	} else {
		t.Back += w
	}
}

// Score rates how desirable seat c is for paddler p given the running
// totals.  Higher is better.
//
// Terms:
//  - balance: (1000 - |side+weight - otherSide|) * 0.7
//  - preference: +200 when c.Side matches a one-sided preference, +100 for "both"
//  - zone: +100 when c's zone currently weighs no more than the other zone
//  - nudges: +50 for paddlers over 160 in rows 4-7, +50 for paddlers under 140 in rows 1-3 and 8-10
func Score(p model.Member, c Candidate, t Totals) float64 {
	other := c.Side.Opposite()
	score := (balanceBase - math.Abs(t.side(c.Side)+p.Weight-t.side(other))) * balanceFactor

	score += sideBonus(p.PreferredSide, c.Side)

	otherZone := model.Back
	if c.Zone == model.Back {
		otherZone = model.Front
	}
	if t.zone(c.Zone) <= t.zone(otherZone) {
		score += zoneBonus
	}

	if p.Weight > heavyPaddler && c.Row >= 4 && c.Row <= 7 {
		score += rowNudge
	}
	if p.Weight < lightPaddler && (c.Row <= 3 || c.Row >= 8) {
		score += rowNudge
	}
	return score
}

func sideBonus(p model.PreferredSide, side model.Side) float64 {
	switch p {
	case model.LeftOnly, model.LeftPreferred:
		if side == model.Left {
			return strictSideBonus
		}
	case model.RightOnly, model.RightPreferred:
		if side == model.Right {
			return strictSideBonus
		}
	case model.Both:
		return eitherSideBonus
	}
	return 0
}

// bestSeat returns the candidate with the strictly highest score.  Ties
// keep the earliest candidate.
func bestSeat(p model.Member, cands []Candidate, t Totals) (Candidate, bool) {
	var (
		best      Candidate
		bestScore = math.Inf(-1)
		found     bool
	)
	for _, c := range cands {
		if s := Score(p, c, t); s > bestScore {
			best, bestScore, found = c, s, true
		}
	}
	return best, found
}

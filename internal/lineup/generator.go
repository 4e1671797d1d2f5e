package lineup

import (
	"cmp"
	"slices"

	"github.com/iliyamo/dragon-align/internal/model"
)

// Generate builds a fresh boat from the active lineup and the locked seats.
//
// The algorithm:
//  1. Reject the request when the lineup is empty, has no steerer, has
//     more than 20 paddlers or has none.
//  2. Copy every locked member into its seat.  Locks do not depend on
//     the member being in the active lineup and are never revisited.
//  3. Fill the empty steerer and drummer seats from the unlocked members
//     holding that role, preferring members whose only role it is.
//  4. Order the remaining paddlers heaviest first (gender pools male,
//     female, neutral keep that order on equal weight) and put each one
//     in the free row seat with the best Score, updating the running
//     totals after every placement.
//  5. Stop at 20 seated paddlers or when paddlers run out, then compute
//     the stats snapshot.
//
// The returned boat replaces any earlier one; nothing is carried over
// except the locked seats.
func Generate(active []model.Member, locked model.LockedPositions) (*model.Boat, error) {
	if err := validate(active); err != nil {
		return nil, err
	}

	boat := seed(locked)

	taken := make(map[string]bool, len(active))
	for _, m := range locked {
		taken[m.ID] = true
	}
	free := make([]model.Member, 0, len(active))
	for _, m := range active {
		if taken[m.ID] {
			continue
		}
		taken[m.ID] = true
		free = append(free, m)
	}

	// The steerer seat is mandatory, so it gets first pick of members
	// who could fill either specialist seat.
	placed := make(map[string]bool, 2)
	if boat.Steerer == nil {
		if m, ok := pickSpecialist(free, model.Steerer, placed); ok {
			boat.Steerer = &m
			placed[m.ID] = true
		}
	}
	if boat.Drummer == nil {
		if m, ok := pickSpecialist(free, model.Drummer, placed); ok {
			boat.Drummer = &m
			placed[m.ID] = true
		}
	}

	fill(boat, placementOrder(free, placed))
	return Refresh(boat), nil
}

func validate(active []model.Member) error {
	if len(active) == 0 {
		return invalid(ErrEmptyLineup)
	}
	paddlers, steerers := 0, 0
	for _, m := range active {
		if m.HasRole(model.Paddler) {
			paddlers++
		}
		if m.HasRole(model.Steerer) {
			steerers++
		}
	}
	switch {
	case steerers == 0:
		return invalid(ErrNoSteerer)
	case paddlers > model.PaddlerSeats:
		return invalid(ErrTooManyPaddlers)
	case paddlers == 0:
		return invalid(ErrNoPaddlers)
	}
	return nil
}

// seed writes every lock into an empty boat.  Unparseable keys are skipped.
func seed(locked model.LockedPositions) *model.Boat {
	boat := model.NewBoat()
	for key, m := range locked {
		seat, err := model.ParseSeat(key)
		if err != nil {
			continue
		}
		rec := m
		boat.Set(seat, &rec)
	}
	return boat
}

// pickSpecialist returns the first dedicated holder of role, falling back
// to the first multi-role holder.
func pickSpecialist(free []model.Member, role model.Role, skip map[string]bool) (model.Member, bool) {
	var (
		fallback model.Member
		found    bool
	)
	for _, m := range free {
		if skip[m.ID] || !m.HasRole(role) {
			continue
		}
		if m.Dedicated(role) {
			return m, true
		}
		if !found {
			fallback, found = m, true
		}
	}
	return fallback, found
}

// placementOrder partitions the paddlers into gender pools sorted by
// descending weight and merges them heaviest overall first.
func placementOrder(free []model.Member, skip map[string]bool) []model.Member {
	pools := make(map[model.Gender][]model.Member, 3)
	for _, m := range free {
		if skip[m.ID] || !m.HasRole(model.Paddler) {
			continue
		}
		pools[m.Gender] = append(pools[m.Gender], m)
	}
	byWeight := func(a, b model.Member) int { return cmp.Compare(b.Weight, a.Weight) }

	order := make([]model.Member, 0, len(free))
	for _, g := range []model.Gender{model.Male, model.Female, model.Neutral} {
		pool := pools[g]
		slices.SortStableFunc(pool, byWeight)
		order = append(order, pool...)
	}
	slices.SortStableFunc(order, byWeight)
	return order
}

// fill seats paddlers greedily until the rows are full or order runs out.
func fill(boat *model.Boat, order []model.Member) {
	totals := TotalsOf(boat)
	seated := boat.SeatedPaddlers()
	for _, p := range order {
		if seated >= model.PaddlerSeats {
			return
		}
		c, ok := bestSeat(p, AvailableSeats(boat), totals)
		if !ok {
			return
		}
		rec := p
		boat.Set(c.Seat(), &rec)
		totals.Add(c, p.Weight)
		seated++
	}
}

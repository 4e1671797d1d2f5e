package lineup

import "github.com/iliyamo/dragon-align/internal/model"

// ToggleLock pins or unpins the occupant of the seat named by key and
// returns the new lock map; locked is not modified.  Locking an empty
// seat, or any seat of a nil boat, changes nothing.
func ToggleLock(boat *model.Boat, locked model.LockedPositions, key string) (model.LockedPositions, error) {
	seat, err := model.ParseSeat(key)
	if err != nil {
		return locked, err
	}
	out := locked.Clone()
	if boat == nil {
		return out, nil
	}
	if _, ok := out[seat.Key()]; ok {
		delete(out, seat.Key())
		return out, nil
	}
	if m := boat.At(seat); m != nil {
		out[seat.Key()] = *m
	}
	return out, nil
}

// Assignment is the part of a team touched by a manual move.
type Assignment struct {
	Boat         *model.Boat
	Active       []model.Member
	Alternatives []model.Member
}

func (a Assignment) clone() Assignment {
	boat := a.Boat.Clone()
	if boat == nil {
		boat = model.NewBoat()
	}
	return Assignment{
		Boat:         boat,
		Active:       append([]model.Member(nil), a.Active...),
		Alternatives: append([]model.Member(nil), a.Alternatives...),
	}
}

// MoveMember puts member into target, vacating the member's current seat.
//
// A member coming from the alternatives joins the active lineup.  The
// previous occupant of target is reseated in the first free row seat on
// its preferred side, else the first free row seat, else benched to the
// alternatives when there is room, else left unseated.  Row seats are
// only offered to occupants holding the paddler role, so a displaced
// dedicated drummer or steerer goes straight to the bench.  Moving into
// or out of a locked seat is rejected with ErrSeatLocked and nothing
// changes.
func MoveMember(a Assignment, locked model.LockedPositions, member model.Member, target model.Seat) (Assignment, error) {
	if _, ok := locked[target.Key()]; ok {
		return a, ErrSeatLocked
	}
	if a.Boat != nil {
		if from, ok := a.Boat.Find(member.ID); ok {
			if _, pinned := locked[from.Key()]; pinned {
				return a, ErrSeatLocked
			}
			if from == target {
				return a, nil
			}
		}
	}

	next := a.clone()
	if model.IndexOf(next.Active, member.ID) < 0 {
		if len(next.Active) >= model.MaxActive {
			return a, model.ErrActiveFull
		}
		next.Active = append(next.Active, member)
	}
	next.Alternatives = model.Without(next.Alternatives, member.ID)

	next.Boat.Remove(member.ID)
	displaced := next.Boat.At(target)
	rec := member
	next.Boat.Set(target, &rec)

	if displaced != nil && displaced.ID != member.ID {
		next = reseat(next, locked, *displaced)
	}
	Refresh(next.Boat)
	return next, nil
}

// reseat finds a new place for a member bumped out of its seat.
func reseat(a Assignment, locked model.LockedPositions, m model.Member) Assignment {
	free := make([]Candidate, 0, model.PaddlerSeats)
	if m.HasRole(model.Paddler) {
		for _, c := range AvailableSeats(a.Boat) {
			if _, ok := locked[c.Seat().Key()]; !ok {
				free = append(free, c)
			}
		}
	}
	for _, c := range free {
		if sideBonus(m.PreferredSide, c.Side) == strictSideBonus {
			a.Boat.Set(c.Seat(), &m)
			return a
		}
	}
	if len(free) > 0 {
		a.Boat.Set(free[0].Seat(), &m)
		return a
	}
	if len(a.Alternatives) < model.MaxAlternatives {
		a.Active = model.Without(a.Active, m.ID)
		a.Alternatives = append(a.Alternatives, m)
	}
	return a
}

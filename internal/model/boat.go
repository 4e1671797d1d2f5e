package model

// Row is one bench of the boat with a left and a right paddler seat.
// Row numbers are 1-based; nil means the seat is empty.
type Row struct {
    Row   int     `json:"row"`
    Left  *Member `json:"left"`
    Right *Member `json:"right"`
}

// At returns the occupant of the given side.
func (r *Row) At(side Side) *Member {
    if side == Right {
        return r.Right
    }
    return r.Left
}

// Set places m (or nil) on the given side.
func (r *Row) Set(side Side, m *Member) {
    if side == Right {
        r.Right = m
        return
    }
    r.Left = m
}

// Boat is a full seating assignment.  A member occupies at most one seat.
// Stats is derived and must be recomputed after any structural change.
//
// Fields:
//  Rows    – the RowCount benches, front (row 1) to back.
//  Drummer – occupant of the drummer seat (nil when empty).
//  Steerer – occupant of the steerer seat (nil when empty).
//  Stats   – snapshot computed from the seats above, may be stale or nil.
type Boat struct {
    Rows    [RowCount]Row `json:"rows"`
    Drummer *Member       `json:"drummer"`
    Steerer *Member       `json:"steerer"`
    Stats   *Stats        `json:"stats,omitempty"`
}

// NewBoat returns a boat with every seat empty.
func NewBoat() *Boat {
    b := &Boat{}
    for i := range b.Rows {
        b.Rows[i].Row = i + 1
    }
    return b
}

// Clone copies the seat layout.  Member records are shared; they are
// replaced, never modified in place.
func (b *Boat) Clone() *Boat {
    if b == nil {
        return nil
    }
    c := *b
    if b.Stats != nil {
        s := *b.Stats
        c.Stats = &s
    }
    return &c
}

// At returns the occupant of seat s, or nil.
func (b *Boat) At(s Seat) *Member {
    switch s.Kind {
    case DrummerSeat:
        return b.Drummer
    case SteererSeat:
        return b.Steerer
    }
    if s.Row < 1 || s.Row > RowCount {
        return nil
    }
    return b.Rows[s.Row-1].At(s.Side)
}

// Set writes m (or nil) into seat s.  Out of range rows are ignored.
func (b *Boat) Set(s Seat, m *Member) {
    switch s.Kind {
    case DrummerSeat:
        b.Drummer = m
    case SteererSeat:
        b.Steerer = m
    default:
        if s.Row >= 1 && s.Row <= RowCount {
            b.Rows[s.Row-1].Set(s.Side, m)
        }
    }
}

// Find returns the first seat occupied by the member with the given id.
func (b *Boat) Find(id string) (Seat, bool) {
    for _, s := range AllSeats() {
        if m := b.At(s); m != nil && m.ID == id {
            return s, true
        }
    }
    return Seat{}, false
}

// Contains reports whether the member sits anywhere in the boat.
func (b *Boat) Contains(id string) bool {
    _, ok := b.Find(id)
    return ok
}

// Remove empties every seat held by the member and reports whether any was.
func (b *Boat) Remove(id string) bool {
    found := false
    for _, s := range AllSeats() {
        if m := b.At(s); m != nil && m.ID == id {
            b.Set(s, nil)
            found = true
        }
    }
    return found
}

// Replace swaps in the new record of a member wherever its id is seated.
func (b *Boat) Replace(m Member) bool {
    found := false
    for _, s := range AllSeats() {
        if cur := b.At(s); cur != nil && cur.ID == m.ID {
            rec := m
            b.Set(s, &rec)
            found = true
        }
    }
    return found
}

// SeatedPaddlers counts occupied row seats.
func (b *Boat) SeatedPaddlers() int {
    n := 0
    for _, r := range b.Rows {
        if r.Left != nil {
            n++
        }
        if r.Right != nil {
            n++
        }
    }
    return n
}

// LockedPositions pins members to seats, keyed by Seat.Key().
type LockedPositions map[string]Member

// Clone returns an independent copy.
func (l LockedPositions) Clone() LockedPositions {
    out := make(LockedPositions, len(l))
    for k, v := range l {
        out[k] = v
    }
    return out
}

// Holds reports whether the member is pinned to any seat.
func (l LockedPositions) Holds(id string) bool {
    for _, m := range l {
        if m.ID == id {
            return true
        }
    }
    return false
}

// RemoveMember drops every lock pinning the member.
func (l LockedPositions) RemoveMember(id string) {
    for k, m := range l {
        if m.ID == id {
            delete(l, k)
        }
    }
}

// ReplaceMember refreshes the record of a pinned member after an edit.
func (l LockedPositions) ReplaceMember(m Member) {
    for k, cur := range l {
        if cur.ID == m.ID {
            l[k] = m
        }
    }
}

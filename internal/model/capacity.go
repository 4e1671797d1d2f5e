package model

import "errors"

// Roster capacities of a lineup.
const (
    MaxActive       = 22
    MaxAlternatives = 8
    MaxCombined     = MaxActive + MaxAlternatives
)

var (
    ErrActiveFull       = errors.New("maximum 22 members allowed in active lineup")
    ErrAlternativesFull = errors.New("maximum 8 alternative paddlers allowed")
    ErrTeamFull         = errors.New("maximum 30 members allowed (22 active + 8 alternatives)")
)

// IndexOf returns the position of the member with id in ms, or -1.
func IndexOf(ms []Member, id string) int {
    for i, m := range ms {
        if m.ID == id {
            return i
        }
    }
    return -1
}

// Without returns a copy of ms minus the member with id.
func Without(ms []Member, id string) []Member {
    out := make([]Member, 0, len(ms))
    for _, m := range ms {
        if m.ID != id {
            out = append(out, m)
        }
    }
    return out
}

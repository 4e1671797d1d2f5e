package model

import (
    "errors"
    "fmt"
    "strconv"
    "strings"
)

// Boat geometry.  Rows 1..FrontRows make up the front zone, the rest the back.
const (
    RowCount     = 10
    FrontRows    = 5
    PaddlerSeats = RowCount * 2
    SeatCount    = PaddlerSeats + 2
)

// Side is one of the two paddling sides of a row.
type Side uint8

const (
    Left Side = iota
    Right
)

func (s Side) String() string {
    if s == Right {
        return "right"
    }
    return "left"
}

// Opposite returns the other side of the boat.
func (s Side) Opposite() Side {
    if s == Left {
        return Right
    }
    return Left
}

// MarshalText implements encoding.TextMarshaler.
func (s Side) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Side) UnmarshalText(b []byte) error {
    switch strings.ToLower(string(b)) {
    case "left":
        *s = Left
    case "right":
        *s = Right
    default:
        return fmt.Errorf("unknown side %q", string(b))
    }
    return nil
}

// Zone is the fore/aft half of the boat a row belongs to.
type Zone uint8

const (
    Front Zone = iota
    Back
)

func (z Zone) String() string {
    if z == Back {
        return "back"
    }
    return "front"
}

// MarshalText implements encoding.TextMarshaler.
func (z Zone) MarshalText() ([]byte, error) { return []byte(z.String()), nil }

// ZoneOf returns the zone of a 1-based row number.
func ZoneOf(row int) Zone {
    if row <= FrontRows {
        return Front
    }
    return Back
}

// SeatKind distinguishes the two specialist seats from paddler seats.
type SeatKind uint8

const (
    PaddlerSeat SeatKind = iota
    DrummerSeat
    SteererSeat
)

// Seat addresses one of the SeatCount positions of the boat.  Row and
// Side are only meaningful for paddler seats.
type Seat struct {
    Kind SeatKind
    Row  int
    Side Side
}

// ErrInvalidSeat is wrapped by every ParseSeat failure.
var ErrInvalidSeat = errors.New("invalid seat")

const (
    drummerKey = "drummer"
    steererKey = "steerer"
)

// DrummerPosition and SteererPosition are the two specialist seats.
var (
    DrummerPosition = Seat{Kind: DrummerSeat}
    SteererPosition = Seat{Kind: SteererSeat}
)

// PaddlerAt returns the paddler seat at row/side.
func PaddlerAt(row int, side Side) Seat {
    return Seat{Kind: PaddlerSeat, Row: row, Side: side}
}

// Key renders the seat in its string form: "drummer", "steerer" or "{row}-{side}".
func (s Seat) Key() string {
    switch s.Kind {
    case DrummerSeat:
        return drummerKey
    case SteererSeat:
        return steererKey
    default:
        return strconv.Itoa(s.Row) + "-" + s.Side.String()
    }
}

func (s Seat) String() string { return s.Key() }

// ParseSeat parses a seat key such as "4-left" or "drummer".
func ParseSeat(key string) (Seat, error) {
    k := strings.ToLower(strings.TrimSpace(key))
    switch k {
    case drummerKey:
        return DrummerPosition, nil
    case steererKey:
        return SteererPosition, nil
    }
    rowStr, sideStr, ok := strings.Cut(k, "-")
    if !ok {
        return Seat{}, fmt.Errorf("%w key %q", ErrInvalidSeat, key)
    }
    row, err := strconv.Atoi(rowStr)
    if err != nil || row < 1 || row > RowCount {
        return Seat{}, fmt.Errorf("%w row in %q", ErrInvalidSeat, key)
    }
    var side Side
    if err := side.UnmarshalText([]byte(sideStr)); err != nil {
        return Seat{}, fmt.Errorf("%w side in %q", ErrInvalidSeat, key)
    }
    return PaddlerAt(row, side), nil
}

// AllSeats lists every seat: rows front to back (left before right),
// then drummer and steerer.
func AllSeats() []Seat {
    out := make([]Seat, 0, SeatCount)
    for r := 1; r <= RowCount; r++ {
        out = append(out, PaddlerAt(r, Left), PaddlerAt(r, Right))
    }
    return append(out, DrummerPosition, SteererPosition)
}

package model

import (
    "errors"
    "fmt"
    "strings"
)

// Weight bounds accepted for a roster member, in pounds.
const (
    MinWeight = 70
    MaxWeight = 330
)

// Member is a person on the team roster.  A member keeps the same ID for
// its whole life; edits replace every other field.
//
// Fields:
//  ID            – stable unique identifier.
//  Name          – display name, never empty.
//  Weight        – body weight in [MinWeight, MaxWeight].
//  PreferredSide – side of the boat the member paddles on.
//  Roles         – non-empty set of seats the member can fill.
//  Gender        – used for the gender distribution stat and pooling.
type Member struct {
    ID            string        `json:"id"`
    Name          string        `json:"name"`
    Weight        float64       `json:"weight"`
    PreferredSide PreferredSide `json:"preferred_side"`
    Roles         []Role        `json:"roles"`
    Gender        Gender        `json:"gender"`
}

var (
    ErrMemberName   = errors.New("name is required")
    ErrMemberWeight = fmt.Errorf("weight must be between %d and %d", MinWeight, MaxWeight)
    ErrMemberRoles  = errors.New("at least one role is required")
)

// Validate checks the roster invariants of a member.
func (m Member) Validate() error {
    if strings.TrimSpace(m.Name) == "" {
        return ErrMemberName
    }
    if m.Weight < MinWeight || m.Weight > MaxWeight {
        return ErrMemberWeight
    }
    if len(m.Roles) == 0 {
        return ErrMemberRoles
    }
    return nil
}

// HasRole reports whether r is in the member's role set.
func (m Member) HasRole(r Role) bool {
    for _, have := range m.Roles {
        if have == r {
            return true
        }
    }
    return false
}

// Dedicated reports whether the member carries exactly the one role r.
func (m Member) Dedicated(r Role) bool {
    return len(m.Roles) == 1 && m.Roles[0] == r
}

// PreferredSide is where a member likes to paddle.
type PreferredSide uint8

const (
    LeftOnly PreferredSide = iota
    LeftPreferred
    Both
    RightPreferred
    RightOnly
)

var preferredSideNames = [...]string{"left", "left-pref", "both", "right-pref", "right"}

func (p PreferredSide) String() string {
    if int(p) < len(preferredSideNames) {
        return preferredSideNames[p]
    }
    return fmt.Sprintf("PreferredSide(%d)", uint8(p))
}

// MarshalText implements encoding.TextMarshaler.
func (p PreferredSide) MarshalText() ([]byte, error) {
    if int(p) >= len(preferredSideNames) {
        return nil, fmt.Errorf("invalid preferred side %d", uint8(p))
    }
    return []byte(preferredSideNames[p]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *PreferredSide) UnmarshalText(b []byte) error {
    v, err := ParsePreferredSide(string(b))
    if err != nil {
        return err
    }
    *p = v
    return nil
}

// ParsePreferredSide maps the wire name of a side preference to its value.
func ParsePreferredSide(s string) (PreferredSide, error) {
    for i, name := range preferredSideNames {
        if strings.EqualFold(strings.TrimSpace(s), name) {
            return PreferredSide(i), nil
        }
    }
    return 0, fmt.Errorf("unknown preferred side %q", s)
}

// Role is a seat type a member is able to fill.
type Role uint8

const (
    Paddler Role = iota
    Drummer
    Steerer
)

var roleNames = [...]string{"paddler", "drummer", "steerer"}

func (r Role) String() string {
    if int(r) < len(roleNames) {
        return roleNames[r]
    }
    return fmt.Sprintf("Role(%d)", uint8(r))
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() ([]byte, error) {
    if int(r) >= len(roleNames) {
        return nil, fmt.Errorf("invalid role %d", uint8(r))
    }
    return []byte(roleNames[r]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(b []byte) error {
    v, err := ParseRole(string(b))
    if err != nil {
        return err
    }
    *r = v
    return nil
}

// ParseRole maps the wire name of a role to its value.
func ParseRole(s string) (Role, error) {
    for i, name := range roleNames {
        if strings.EqualFold(strings.TrimSpace(s), name) {
            return Role(i), nil
        }
    }
    return 0, fmt.Errorf("unknown role %q", s)
}

// Gender is only used for reporting and for pooling paddlers.
type Gender uint8

const (
    Male Gender = iota
    Female
    Neutral
)

var genderNames = [...]string{"male", "female", "neutral"}

func (g Gender) String() string {
    if int(g) < len(genderNames) {
        return genderNames[g]
    }
    return fmt.Sprintf("Gender(%d)", uint8(g))
}

// MarshalText implements encoding.TextMarshaler.
func (g Gender) MarshalText() ([]byte, error) {
    if int(g) >= len(genderNames) {
        return nil, fmt.Errorf("invalid gender %d", uint8(g))
    }
    return []byte(genderNames[g]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *Gender) UnmarshalText(b []byte) error {
    v, err := ParseGender(string(b))
    if err != nil {
        return err
    }
    *g = v
    return nil
}

// ParseGender maps the wire name of a gender to its value.
func ParseGender(s string) (Gender, error) {
    for i, name := range genderNames {
        if strings.EqualFold(strings.TrimSpace(s), name) {
            return Gender(i), nil
        }
    }
    return 0, fmt.Errorf("unknown gender %q", s)
}

// Package queue defines message payloads exchanged over the message broker.
package queue

// Queue names.  Each event type has its own durable queue.
const (
    LineupGeneratedQueue = "lineup.generated"
    MemberRemovedQueue   = "member.removed"
)

// LineupGeneratedEvent is published after a boat was generated and saved.
// It carries the headline stats so consumers can log or notify without
// reading team state back.
type LineupGeneratedEvent struct {
    TeamID               string   `json:"team_id"`
    TotalPaddlers        int      `json:"total_paddlers"`
    LeftWeight           float64  `json:"left_weight"`
    RightWeight          float64  `json:"right_weight"`
    WeightDifference     float64  `json:"weight_difference"`
    PreferencesSatisfied int      `json:"preferences_satisfied"`
    Drummer              string   `json:"drummer,omitempty"`
    Steerer              string   `json:"steerer,omitempty"`
    LockedSeats          []string `json:"locked_seats"`
    GeneratedAt          string   `json:"generated_at"`
}

// MemberRemovedEvent is published when a member is deleted from a roster.
// WasSeated tells consumers the current boat lost an occupant.
type MemberRemovedEvent struct {
    TeamID    string `json:"team_id"`
    MemberID  string `json:"member_id"`
    Name      string `json:"name"`
    WasSeated bool   `json:"was_seated"`
    RemovedAt string `json:"removed_at"`
}

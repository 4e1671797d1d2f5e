package lineup

import "github.com/iliyamo/dragon-align/internal/model"

// Candidate is a free paddler seat offered to the scorer.
type Candidate struct {
	Row  int
	Side model.Side
	Zone model.Zone
}

// Seat converts the candidate back to a boat address.
func (c Candidate) Seat() model.Seat { return model.PaddlerAt(c.Row, c.Side) }

// AvailableSeats lists the empty row seats of b, front to back and left
// before right within a row.  The specialist seats are never offered.
func AvailableSeats(b *model.Boat) []Candidate {
	out := make([]Candidate, 0, model.PaddlerSeats)
	for _, row := range b.Rows {
		if row.Left == nil {
			out = append(out, Candidate{Row: row.Row, Side: model.Left, Zone: model.ZoneOf(row.Row)})
		}
		if row.Right == nil {
			out = append(out, Candidate{Row: row.Row, Side: model.Right, Zone: model.ZoneOf(row.Row)})
		}
	}
	return out
}

package lineup

import (
	"fmt"

	"github.com/iliyamo/dragon-align/internal/model"
)

func member(id string, weight float64, side model.PreferredSide, g model.Gender, roles ...model.Role) model.Member {
	if len(roles) == 0 {
		roles = []model.Role{model.Paddler}
	}
	return model.Member{ID: id, Name: "member " + id, Weight: weight, PreferredSide: side, Roles: roles, Gender: g}
}

func paddlers(n int, weight float64) []model.Member {
	out := make([]model.Member, 0, n)
	genders := []model.Gender{model.Male, model.Female, model.Neutral}
	sides := []model.PreferredSide{model.LeftOnly, model.RightPreferred, model.Both, model.LeftPreferred, model.RightOnly}
	for i := 0; i < n; i++ {
		out = append(out, member(fmt.Sprintf("p%02d", i), weight+float64(i%7)*5, sides[i%len(sides)], genders[i%len(genders)]))
	}
	return out
}

func seatOf(m model.Member) *model.Member { return &m }

// occupants returns the ids of every seated member, including specialists.
func occupants(b *model.Boat) []string {
	var ids []string
	for _, s := range model.AllSeats() {
		if m := b.At(s); m != nil {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

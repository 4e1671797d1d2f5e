package team

import (
	"errors"
	"fmt"
	"strings"

	"github.com/iliyamo/dragon-align/internal/model"
)

// ErrInvalidFilter wraps unknown role, gender or side filter values.
var ErrInvalidFilter = errors.New("invalid filter")

// Filter narrows the roster listing.  Empty or "all" fields match anything.
type Filter struct {
	Search string
	Role   string
	Gender string
	Side   string
}

func matchAll(v string) bool {
	v = strings.TrimSpace(v)
	return v == "" || strings.EqualFold(v, "all")
}

// Apply returns the roster members matching f, in roster order.
func (f Filter) Apply(roster []model.Member) ([]model.Member, error) {
	var (
		role   model.Role
		gender model.Gender
		side   model.PreferredSide
		err    error
	)
	if !matchAll(f.Role) {
		if role, err = model.ParseRole(f.Role); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
	}
	if !matchAll(f.Gender) {
		if gender, err = model.ParseGender(f.Gender); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
	}
	if !matchAll(f.Side) {
		if side, err = model.ParsePreferredSide(f.Side); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidFilter, err)
		}
	}
	q := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]model.Member, 0, len(roster))
	for _, m := range roster {
		switch {
		case q != "" && !strings.Contains(strings.ToLower(m.Name), q):
		case !matchAll(f.Role) && !m.HasRole(role):
		case !matchAll(f.Gender) && m.Gender != gender:
		case !matchAll(f.Side) && m.PreferredSide != side:
		default:
			out = append(out, m)
		}
	}
	return out, nil
}

package lineup

import (
	"testing"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/stretchr/testify/require"
)

func TestScore(t *testing.T) {
	front := func(row int, side model.Side) Candidate { return Candidate{Row: row, Side: side, Zone: model.ZoneOf(row)} }

	tests := []struct {
		name   string
		p      model.Member
		c      Candidate
		totals Totals
		want   float64
	}{
		{
			name: "neutral paddler in an empty boat",
			p:    member("a", 150, model.Both, model.Male),
			c:    front(1, model.Left),
			want: 850*0.7 + 100 + 100,
		},
		{
			name: "heavy paddler on preferred side in a center row",
			p:    member("a", 200, model.LeftPreferred, model.Male),
			c:    front(4, model.Left),
			want: 800*0.7 + 200 + 100 + 50,
		},
		{
			name: "heavy paddler on the wrong side",
			p:    member("a", 200, model.LeftOnly, model.Male),
			c:    front(4, model.Right),
			want: 800*0.7 + 100 + 50,
		},
		{
			name: "light paddler at the bow",
			p:    member("a", 100, model.RightOnly, model.Female),
			c:    front(1, model.Right),
			want: 900*0.7 + 200 + 100 + 50,
		},
		{
			name:   "balance uses the running side totals",
			p:      member("a", 100, model.RightOnly, model.Female),
			c:      front(8, model.Right),
			totals: Totals{Left: 200, Front: 200},
			want:   (1000-100)*0.7 + 200 + 100 + 50,
		},
		{
			name:   "heavier zone loses the zone bonus",
			p:      member("a", 150, model.Both, model.Male),
			c:      front(2, model.Left),
			totals: Totals{Left: 100, Right: 100, Front: 200},
			want:   (1000-150)*0.7 + 100,
		},
		{
			name:   "side imbalance can drive the score below the preference bonus",
			p:      member("a", 150, model.LeftOnly, model.Male),
			c:      front(2, model.Left),
			totals: Totals{Left: 900, Front: 900},
			want:   (1000-1050)*0.7 + 200,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.InDelta(t, tt.want, Score(tt.p, tt.c, tt.totals), 1e-9)
		})
	}
}

func TestBestSeat(t *testing.T) {
	t.Run("keeps the earliest candidate on ties", func(t *testing.T) {
		p := member("a", 150, model.Both, model.Male)
		cands := []Candidate{
			{Row: 2, Side: model.Left, Zone: model.Front},
			{Row: 2, Side: model.Right, Zone: model.Front},
			{Row: 3, Side: model.Left, Zone: model.Front},
		}

		best, ok := bestSeat(p, cands, Totals{})

		require.True(t, ok)
		require.Equal(t, cands[0], best)
	})

	t.Run("prefers the lighter side", func(t *testing.T) {
		p := member("a", 150, model.Both, model.Male)
		cands := AvailableSeats(model.NewBoat())

		best, ok := bestSeat(p, cands, Totals{Left: 300, Front: 300})

		require.True(t, ok)
		require.Equal(t, model.Right, best.Side)
		require.Equal(t, model.Back, best.Zone)
	})

	t.Run("no candidates", func(t *testing.T) {
		_, ok := bestSeat(member("a", 150, model.Both, model.Male), nil, Totals{})

		require.False(t, ok)
	})
}

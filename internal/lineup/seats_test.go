package lineup

import (
	"testing"

	"github.com/iliyamo/dragon-align/internal/model"
	"github.com/stretchr/testify/require"
)

func TestAvailableSeats(t *testing.T) {
	t.Run("empty boat offers every row seat in order", func(t *testing.T) {
		seats := AvailableSeats(model.NewBoat())

		require.Len(t, seats, model.PaddlerSeats)
		require.Equal(t, Candidate{Row: 1, Side: model.Left, Zone: model.Front}, seats[0])
		require.Equal(t, Candidate{Row: 1, Side: model.Right, Zone: model.Front}, seats[1])
		require.Equal(t, Candidate{Row: 10, Side: model.Right, Zone: model.Back}, seats[19])
	})

	t.Run("tags zones by row", func(t *testing.T) {
		for _, c := range AvailableSeats(model.NewBoat()) {
			if c.Row <= 5 {
				require.Equal(t, model.Front, c.Zone)
			} else {
				require.Equal(t, model.Back, c.Zone)
			}
		}
	})

	t.Run("skips occupied seats and ignores specialists", func(t *testing.T) {
		b := model.NewBoat()
		b.Set(model.PaddlerAt(3, model.Right), seatOf(member("a", 150, model.Both, model.Male)))
		b.Drummer = seatOf(member("d", 120, model.Both, model.Male, model.Drummer))

		seats := AvailableSeats(b)

		require.Len(t, seats, model.PaddlerSeats-1)
		require.NotContains(t, seats, Candidate{Row: 3, Side: model.Right, Zone: model.Front})
	})

	t.Run("full boat offers nothing", func(t *testing.T) {
		b := model.NewBoat()
		for i, c := range AvailableSeats(b) {
			b.Set(c.Seat(), seatOf(paddlers(20, 130)[i]))
		}

		require.Empty(t, AvailableSeats(b))
	})
}

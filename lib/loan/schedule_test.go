package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestBuildSchedule(t *testing.T) {
	disbursed := time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)

	t.Run("standard annuity", func(t *testing.T) {
		entries := BuildSchedule(12000, 12, 12, disbursed)
		require.Len(t, entries, 12)

		// 12% annual over 12 months on 12000 gives a 1066.19 annuity.
		require.InDelta(t, 1066.19, entries[0].Payment, 0.01)
		require.InDelta(t, 120.00, entries[0].Interest, 0.01)
		require.InDelta(t, 946.19, entries[0].Principal, 0.01)

		require.Equal(t, 0.0, entries[len(entries)-1].Balance)
		require.Equal(t, disbursed.AddDate(0, 1, 0), entries[0].DueDate)
		require.Equal(t, disbursed.AddDate(0, 12, 0), entries[11].DueDate)

		var totalPrincipal float64
		for _, entry := range entries {
			totalPrincipal += entry.Principal
		}
		require.InDelta(t, 12000, totalPrincipal, 0.01)

		for idx, entry := range entries {
			require.Equal(t, idx+1, entry.Sequence)
			require.InDelta(t, entry.Payment, entry.Interest+entry.Principal, 0.01)
		}
	})

	t.Run("zero rate splits the principal evenly", func(t *testing.T) {
		entries := BuildSchedule(9000, 0, 6, disbursed)
		require.Len(t, entries, 6)
		for _, entry := range entries {
			require.Equal(t, 0.0, entry.Interest)
			require.InDelta(t, 1500, entry.Payment, 0.01)
		}
		require.Equal(t, 0.0, entries[5].Balance)
	})

	t.Run("last row absorbs rounding drift", func(t *testing.T) {
		entries := BuildSchedule(1000, 7.5, 7, disbursed)
		require.Len(t, entries, 7)
		require.Equal(t, 0.0, entries[6].Balance)

		var totalPrincipal float64
		for _, entry := range entries {
			totalPrincipal += entry.Principal
		}
		require.InDelta(t, 1000, totalPrincipal, 0.001)
	})

	t.Run("invalid input yields no schedule", func(t *testing.T) {
		require.Nil(t, BuildSchedule(0, 10, 12, disbursed))
		require.Nil(t, BuildSchedule(1000, 10, 0, disbursed))
	})
}

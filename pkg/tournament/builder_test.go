package tournament

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourneycontrol/pkg/csvio"
)

// sampleRow builds a positional row matching the tracker export layout,
// applying overrides by column index.
func sampleRow(overrides map[int]string) []string {
	cols := make([]string, 21)
	cols[0] = "GGNetwork"
	cols[1] = "hero123"
	cols[2] = "123456789"
	cols[3] = "$10"
	cols[4] = "2024-01-15 18:30"
	cols[5] = "450"
	cols[6] = "$1"
	cols[9] = "Turbo"
	cols[10] = "-$5"
	cols[12] = "B"
	cols[13] = "USD"
	cols[14] = "1"
	cols[17] = "$0"
	cols[18] = "Sunday Special"
	cols[20] = "$0"
	for idx, val := range overrides {
		cols[idx] = val
	}
	return cols
}

func TestBuildEntry(t *testing.T) {
	t.Run("Complete Row", func(t *testing.T) {
		entry, ok := BuildEntry(sampleRow(nil), csvio.DefaultSchema, "user-1", 2)
		require.True(t, ok)

		assert.Equal(t, "user-1", entry.UserID)
		assert.Equal(t, uint(2), entry.DatasetID)
		assert.Equal(t, "GGNetwork::Sunday Special", entry.TournamentKey)
		assert.Equal(t, "GGNetwork", entry.Network)
		assert.Equal(t, "Sunday Special", entry.Name)
		assert.Equal(t, "Turbo", entry.Speed)
		assert.Equal(t, 450, entry.Participants)
		assert.Equal(t, 1, entry.Reentries)
		assert.Equal(t, "B", entry.Flags)

		// stake 10 + rake 1 costs 11; result -5 minus rake 1 nets -6
		assert.InDelta(t, -6.0, entry.ProfitUSD, 1e-9)
		assert.InDelta(t, 10.0, entry.StakeUSD, 1e-9)
		assert.InDelta(t, -6.0/11.0*100, entry.ROIIndividual, 1e-9)
		assert.False(t, entry.IsITM)
	})

	t.Run("Skips Incomplete Rows", func(t *testing.T) {
		for _, idx := range []int{1, 2, 18} {
			_, ok := BuildEntry(sampleRow(map[int]string{idx: ""}), csvio.DefaultSchema, "user-1", 1)
			assert.False(t, ok, "column %d empty should skip", idx)
		}
	})

	t.Run("Skips Total Rows", func(t *testing.T) {
		_, ok := BuildEntry(sampleRow(map[int]string{18: "Grand Total"}), csvio.DefaultSchema, "user-1", 1)
		assert.False(t, ok)

		_, ok = BuildEntry(sampleRow(map[int]string{2: "TOTAL"}), csvio.DefaultSchema, "user-1", 1)
		assert.False(t, ok)
	})

	t.Run("Zero Cost Gets ROI Sentinel", func(t *testing.T) {
		entry, ok := BuildEntry(sampleRow(map[int]string{3: "0", 6: "0", 10: "$5"}), csvio.DefaultSchema, "user-1", 1)
		require.True(t, ok)
		assert.InDelta(t, float64(ROISentinel), entry.ROIIndividual, 1e-9)
		assert.True(t, entry.IsITM)
	})

	t.Run("Currency Conversion", func(t *testing.T) {
		entry, ok := BuildEntry(sampleRow(map[int]string{13: "EUR", 10: "$10"}), csvio.DefaultSchema, "user-1", 1)
		require.True(t, ok)
		// net 9 EUR at 1.08
		assert.InDelta(t, 9.0*1.08, entry.ProfitUSD, 1e-9)
		assert.InDelta(t, 10.0*1.08, entry.StakeUSD, 1e-9)
	})

	t.Run("Zodiac Rows Are Deflated", func(t *testing.T) {
		entry, ok := BuildEntry(sampleRow(map[int]string{18: "Zodiac Dragon", 3: "100", 6: "0", 10: "0"}), csvio.DefaultSchema, "user-1", 1)
		require.True(t, ok)
		assert.InDelta(t, 14.0, entry.StakeUSD, 1e-9)
		assert.Equal(t, ZodiacCurrencyLabel, entry.Currency)
	})

	t.Run("Defaults For Missing Tags", func(t *testing.T) {
		entry, ok := BuildEntry(sampleRow(map[int]string{0: "", 9: "", 13: ""}), csvio.DefaultSchema, "user-1", 1)
		require.True(t, ok)
		assert.Equal(t, "Unknown", entry.Network)
		assert.Equal(t, "Normal", entry.Speed)
		assert.Equal(t, "USD", entry.Currency)
	})
}

func TestBuildBatch(t *testing.T) {
	header := "Network,Player,Game ID,Stake,Date,Participants,Rake,c7,c8,Speed,Result,c11,Flags,Currency,Reentries,c15,c16,Prize,Name,c19,Bounty"

	t.Run("Parses Data Rows After Header", func(t *testing.T) {
		row := strings.Join(sampleRow(nil), ",")
		badRow := strings.Join(sampleRow(map[int]string{1: ""}), ",")

		entries, skipped := BuildBatch(header+"\n"+row+"\n"+badRow+"\n", "user-1", 1)
		assert.Len(t, entries, 1)
		assert.Equal(t, 1, skipped)
	})

	t.Run("Header Only Yields Nothing", func(t *testing.T) {
		entries, skipped := BuildBatch(header+"\n", "user-1", 1)
		assert.Empty(t, entries)
		assert.Equal(t, 0, skipped)
	})

	t.Run("Empty Input Yields Nothing", func(t *testing.T) {
		entries, skipped := BuildBatch("", "user-1", 1)
		assert.Empty(t, entries)
		assert.Equal(t, 0, skipped)
	})
}

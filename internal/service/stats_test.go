package service

import (
	"testing"
	"time"

	"go-inventory-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDailySeries(t *testing.T) {
	now := time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

	t.Run("window with no activity is contiguous zeros", func(t *testing.T) {
		series := buildDailySeries(nil, 12, 7, now)

		require.Len(t, series, 8) // windowDays+1 buckets
		assert.Equal(t, "2026-08-24", series[0].Date)
		assert.Equal(t, "2026-08-31", series[7].Date)
		for _, b := range series {
			assert.Zero(t, b.Entries)
			assert.Zero(t, b.Exits)
			assert.Equal(t, 12, b.StockLevel) // no movement, level constant
		}
	})

	t.Run("gaps between active days are zero-filled", func(t *testing.T) {
		movements := []repository.DailyMovement{
			{Date: "2026-08-26", Entries: 10, Exits: 0},
			{Date: "2026-08-29", Entries: 0, Exits: 4},
		}
		series := buildDailySeries(movements, 20, 7, now)

		require.Len(t, series, 8)
		byDate := map[string]DailyBucket{}
		for _, b := range series {
			byDate[b.Date] = b
		}
		assert.Equal(t, 10, byDate["2026-08-26"].Entries)
		assert.Equal(t, 4, byDate["2026-08-29"].Exits)
		assert.Zero(t, byDate["2026-08-27"].Entries)
		assert.Zero(t, byDate["2026-08-27"].Exits)
	})

	t.Run("stock level walks back from current stock", func(t *testing.T) {
		// Current stock 20. The +10 on the 26th and -4 on the 29th mean:
		// end of 29th..31st -> 20, end of 26th..28th -> 24, before -> 14.
		movements := []repository.DailyMovement{
			{Date: "2026-08-26", Entries: 10, Exits: 0},
			{Date: "2026-08-29", Entries: 0, Exits: 4},
		}
		series := buildDailySeries(movements, 20, 7, now)

		levels := map[string]int{}
		for _, b := range series {
			levels[b.Date] = b.StockLevel
		}
		assert.Equal(t, 14, levels["2026-08-24"])
		assert.Equal(t, 14, levels["2026-08-25"])
		assert.Equal(t, 24, levels["2026-08-26"])
		assert.Equal(t, 24, levels["2026-08-28"])
		assert.Equal(t, 20, levels["2026-08-29"])
		assert.Equal(t, 20, levels["2026-08-31"])
	})

	t.Run("single day window", func(t *testing.T) {
		series := buildDailySeries(nil, 5, 0, now)
		require.Len(t, series, 1)
		assert.Equal(t, "2026-08-31", series[0].Date)
		assert.Equal(t, 5, series[0].StockLevel)
	})
}

func TestSeriesWindow(t *testing.T) {
	t.Run("bounds come out in UTC", func(t *testing.T) {
		local := time.FixedZone("UTC-5", -5*3600)
		now := time.Date(2026, 8, 31, 23, 30, 0, 0, local) // 2026-09-01 04:30 UTC

		start, end := seriesWindow(7, now)

		assert.Equal(t, time.UTC, end.Location())
		assert.Equal(t, time.UTC, start.Location())
		assert.Equal(t, "2026-09-01", end.Format(dateLayout))
		assert.Equal(t, time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC), start)
	})

	t.Run("bucket dates follow the UTC day, not the local one", func(t *testing.T) {
		local := time.FixedZone("UTC-5", -5*3600)
		now := time.Date(2026, 8, 31, 23, 30, 0, 0, local)

		_, end := seriesWindow(7, now)
		series := buildDailySeries(nil, 0, 7, end)

		require.Len(t, series, 8)
		assert.Equal(t, "2026-09-01", series[7].Date)
		assert.Equal(t, "2026-08-25", series[0].Date)
	})
}

func TestBuildOverviewSeries(t *testing.T) {
	now := time.Date(2026, 8, 31, 9, 30, 0, 0, time.UTC)

	movements := []repository.DailyMovement{
		{Date: "2026-08-30", Entries: 7, Exits: 2, Revenue: 9000},
	}
	series := buildOverviewSeries(movements, 7, now)

	require.Len(t, series, 8)
	assert.Equal(t, "2026-08-24", series[0].Date)

	var active OverviewBucket
	for _, b := range series {
		if b.Date == "2026-08-30" {
			active = b
		} else {
			assert.Zero(t, b.Entries)
			assert.Zero(t, b.Exits)
			assert.Zero(t, b.Revenue)
		}
	}
	assert.Equal(t, 7, active.Entries)
	assert.Equal(t, 2, active.Exits)
	assert.Equal(t, int64(9000), active.Revenue)
}

package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var noon = time.Date(2024, 6, 15, 12, 30, 0, 0, time.UTC)

func TestDayWindowBoundaries(t *testing.T) {
	w := DayWindow(noon, 30)

	assert.True(t, w.Contains("2024-06-15"), "window start day included")
	assert.True(t, w.Contains("2024-07-15"), "window end day included")
	assert.False(t, w.Contains("2024-06-14"), "day before start excluded")
	assert.False(t, w.Contains("2024-07-16"), "day after end excluded")
}

func TestWindowContainsRejectsBadDates(t *testing.T) {
	w := DayWindow(noon, 30)
	assert.False(t, w.Contains(""))
	assert.False(t, w.Contains("not-a-date"))
	assert.False(t, w.Contains("15/06/2024"))
}

func TestMonthWindow(t *testing.T) {
	w := MonthWindow(noon, 6)

	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), w.Start)
	assert.True(t, w.Contains("2024-01-01"))
	assert.True(t, w.Contains("2024-06-30"))
	assert.False(t, w.Contains("2023-12-31"))
	assert.False(t, w.Contains("2024-07-01"))
}

func TestMonthBuckets(t *testing.T) {
	buckets := MonthBuckets(noon, 6)
	require.Len(t, buckets, 6)

	assert.Equal(t, "Jan", buckets[0].Label())
	assert.Equal(t, "Jun", buckets[5].Label())
	// Buckets tile the 6-month window without gaps.
	for i := 1; i < len(buckets); i++ {
		assert.Equal(t, buckets[i].Start, buckets[i-1].End.Add(time.Nanosecond))
	}
	// Month-end handling across a leap February.
	feb := MonthBuckets(time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC), 1)[0]
	assert.True(t, feb.Contains("2024-02-29"))
}

func TestFilterPreservesOrderAndSkipsAbsentDates(t *testing.T) {
	type rec struct {
		id   string
		date string
	}
	items := []rec{
		{"a", "2024-06-20"},
		{"b", ""},
		{"c", "2024-09-01"},
		{"d", "2024-06-16"},
	}
	got := Filter(items, func(r rec) string { return r.date }, DayWindow(noon, 30))

	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].id)
	assert.Equal(t, "d", got[1].id)
	// Input untouched.
	assert.Len(t, items, 4)
}

package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oceanview/resort-api/internal/model"
)

func TestEstimateComputesNightsTimesCombinedRate(t *testing.T) {
	// STANDARD 15000 + HB 5000, three nights.
	total, ok := Estimate("2024-01-01", "2024-01-04", model.RoomStandard, model.BoardHB)
	require.True(t, ok)
	assert.Equal(t, int64(60000), total)

	// SUITE 45000 + FB 10000, a single night.
	total, ok = Estimate("2024-03-10", "2024-03-11", model.RoomSuite, model.BoardFB)
	require.True(t, ok)
	assert.Equal(t, int64(55000), total)

	// BB carries no supplement.
	total, ok = Estimate("2024-06-01", "2024-06-08", model.RoomDeluxe, model.BoardBB)
	require.True(t, ok)
	assert.Equal(t, int64(7*25000), total)
}

func TestEstimateNoEstimateCases(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  string
		checkOut string
	}{
		{"same day", "2024-01-01", "2024-01-01"},
		{"check-out before check-in", "2024-01-04", "2024-01-01"},
		{"missing check-in", "", "2024-01-04"},
		{"missing check-out", "2024-01-01", ""},
		{"unparseable date", "not-a-date", "2024-01-04"},
		{"wrong format", "01/01/2024", "2024-01-04"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			total, ok := Estimate(tc.checkIn, tc.checkOut, model.RoomStandard, model.BoardBB)
			assert.False(t, ok)
			assert.Zero(t, total)
		})
	}
}

func TestEstimateRejectsUnknownCategories(t *testing.T) {
	_, ok := Estimate("2024-01-01", "2024-01-04", model.RoomType("PENTHOUSE"), model.BoardBB)
	assert.False(t, ok)

	_, ok = Estimate("2024-01-01", "2024-01-04", model.RoomStandard, model.BoardType("AI"))
	assert.False(t, ok)
}

func TestEstimateIsIdempotent(t *testing.T) {
	first, ok1 := Estimate("2024-02-01", "2024-02-05", model.RoomDeluxe, model.BoardHB)
	second, ok2 := Estimate("2024-02-01", "2024-02-05", model.RoomDeluxe, model.BoardHB)
	assert.Equal(t, ok1, ok2)
	assert.Equal(t, first, second)
}

func TestNights(t *testing.T) {
	n, ok := Nights("2024-01-01", "2024-01-04")
	require.True(t, ok)
	assert.Equal(t, int64(3), n)

	// Date-only values pinned to UTC: a range spanning a DST transition
	// must still count calendar nights.
	n, ok = Nights("2024-03-29", "2024-04-02")
	require.True(t, ok)
	assert.Equal(t, int64(4), n)

	n, ok = Nights("2024-01-04", "2024-01-01")
	require.True(t, ok)
	assert.Equal(t, int64(-3), n)

	_, ok = Nights("2024-13-40", "2024-01-01")
	assert.False(t, ok)
}

func TestRateTableRejectsUnknownCategory(t *testing.T) {
	r, err := RoomRate(model.RoomSuite)
	require.NoError(t, err)
	assert.Equal(t, int64(45000), r)

	_, err = RoomRate(model.RoomType("CABANA"))
	assert.Error(t, err)

	b, err := BoardRate(model.BoardHB)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), b)

	_, err = BoardRate(model.BoardType(""))
	assert.Error(t, err)
}

package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/samadhan-service/internal/service"
)

func TestEstimateNormalizesCategorySpelling(t *testing.T) {
	variants := []string{"Healthcare", "healthcare", "health-care", "HEALTH CARE", "health_care"}
	for _, v := range variants {
		minYears, maxYears, ok := service.Estimate(v)
		require.True(t, ok, "variant %q", v)
		assert.Equal(t, 5, minYears, "variant %q", v)
		assert.Equal(t, 10, maxYears, "variant %q", v)
	}
}

func TestEstimateHandlesAmpersandSpacing(t *testing.T) {
	variants := []string{"Law & Order", "law-and-order", "law and order", "Law&Order"}
	for _, v := range variants {
		minYears, maxYears, ok := service.Estimate(v)
		require.True(t, ok, "variant %q", v)
		assert.Equal(t, 3, minYears)
		assert.Equal(t, 7, maxYears)
	}
}

func TestEstimateTable(t *testing.T) {
	cases := []struct {
		category string
		min, max int
	}{
		{"education", 5, 15},
		{"infrastructure", 3, 10},
		{"corruption", 10, 20},
		{"digital-services", 2, 5},
		{"employment", 5, 15},
		{"welfare-schemes", 2, 5},
	}
	for _, tc := range cases {
		minYears, maxYears, ok := service.Estimate(tc.category)
		require.True(t, ok, tc.category)
		assert.Equal(t, tc.min, minYears, tc.category)
		assert.Equal(t, tc.max, maxYears, tc.category)
	}
}

func TestEstimateUnknownCategory(t *testing.T) {
	_, _, ok := service.Estimate("Unknown Category")
	assert.False(t, ok)
	_, _, ok = service.Estimate("other")
	assert.False(t, ok)
}

func TestProjectDatesCalendarAddition(t *testing.T) {
	now := time.Date(2020, 6, 15, 10, 30, 0, 0, time.UTC)
	from, to := service.ProjectDates(now.UnixMilli(), 5, 10)

	assert.Equal(t, time.Date(2025, 6, 15, 10, 30, 0, 0, time.UTC).UnixMilli(), from)
	assert.Equal(t, time.Date(2030, 6, 15, 10, 30, 0, 0, time.UTC).UnixMilli(), to)
}

func TestProjectDatesLeapDayCarriesOver(t *testing.T) {
	now := time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)
	from, _ := service.ProjectDates(now.UnixMilli(), 1, 2)

	// Feb 29 has no equivalent in 2025; the day carries into March.
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC).UnixMilli(), from)
}

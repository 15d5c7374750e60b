package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/geo"
	"github.com/spec-kit/samadhan-service/internal/service"
)

func loc(lat, lng float64) *domain.Location {
	return &domain.Location{Lat: lat, Lng: lng}
}

func TestFindNearbyFilters(t *testing.T) {
	candidates := []domain.Complaint{
		{ID: "near-same-cat", Category: domain.CategoryInfrastructure, Location: loc(28.6140, 77.2091)},
		{ID: "far-same-cat", Category: domain.CategoryInfrastructure, Location: loc(28.7000, 77.3000)},
		{ID: "near-other-cat", Category: domain.CategoryHealthcare, Location: loc(28.6140, 77.2091)},
		{ID: "no-location", Category: domain.CategoryInfrastructure},
	}

	matches := service.FindNearby(candidates, 28.6139, 77.2090, domain.CategoryInfrastructure, 100)

	require.Len(t, matches, 1)
	assert.Equal(t, "near-same-cat", matches[0].ID)
}

func TestFindNearbyResultsWithinRadiusAndCategory(t *testing.T) {
	candidates := []domain.Complaint{
		{ID: "a", Category: domain.CategoryInfrastructure, Location: loc(28.6139, 77.2090)},
		{ID: "b", Category: domain.CategoryInfrastructure, Location: loc(28.61395, 77.20905)},
		{ID: "c", Category: domain.CategoryInfrastructure, Location: loc(28.62, 77.22)},
		{ID: "d", Category: domain.CategoryEducation, Location: loc(28.6139, 77.2090)},
	}

	const radius = 100.0
	matches := service.FindNearby(candidates, 28.6139, 77.2090, domain.CategoryInfrastructure, radius)

	require.NotEmpty(t, matches)
	for _, m := range matches {
		assert.Equal(t, domain.CategoryInfrastructure, m.Category)
		require.NotNil(t, m.Location)
		assert.LessOrEqual(t, geo.DistanceMeters(28.6139, 77.2090, m.Location.Lat, m.Location.Lng), radius)
	}
}

func TestFindNearbyScenario(t *testing.T) {
	existing := []domain.Complaint{
		{ID: "A", Category: domain.CategoryInfrastructure, Location: loc(28.6139, 77.2090)},
	}

	// ~13 m away, same category: duplicate.
	matches := service.FindNearby(existing, 28.6140, 77.2091, domain.CategoryInfrastructure, 100)
	require.Len(t, matches, 1)
	assert.Equal(t, "A", matches[0].ID)

	// ~13 km away: no duplicates.
	matches = service.FindNearby(existing, 28.7000, 77.3000, domain.CategoryInfrastructure, 100)
	assert.Empty(t, matches)
}

func TestFindNearbyDefaultRadius(t *testing.T) {
	existing := []domain.Complaint{
		{ID: "A", Category: domain.CategoryInfrastructure, Location: loc(28.6139, 77.2090)},
	}
	matches := service.FindNearby(existing, 28.6140, 77.2091, domain.CategoryInfrastructure, 0)
	assert.Len(t, matches, 1)
}

package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/samadhan-service/internal/geo"
)

func TestDistanceZeroAtSamePoint(t *testing.T) {
	points := [][2]float64{
		{0, 0},
		{28.6139, 77.2090},
		{-33.8688, 151.2093},
		{90, 180},
		{-90, -180},
	}
	for _, p := range points {
		assert.Zero(t, geo.DistanceMeters(p[0], p[1], p[0], p[1]))
	}
}

func TestDistanceSymmetry(t *testing.T) {
	d1 := geo.DistanceMeters(28.6139, 77.2090, 19.0760, 72.8777)
	d2 := geo.DistanceMeters(19.0760, 72.8777, 28.6139, 77.2090)
	assert.Equal(t, d1, d2)
}

func TestDistanceNearbyPoints(t *testing.T) {
	// ~13 m apart in central Delhi.
	d := geo.DistanceMeters(28.6139, 77.2090, 28.6140, 77.2091)
	assert.Greater(t, d, 5.0)
	assert.Less(t, d, 25.0)
}

func TestDistanceFarPoints(t *testing.T) {
	// ~13 km apart.
	d := geo.DistanceMeters(28.6139, 77.2090, 28.7000, 77.3000)
	assert.Greater(t, d, 10000.0)
}

func TestValidCoordinates(t *testing.T) {
	assert.True(t, geo.ValidCoordinates(0, 0))
	assert.True(t, geo.ValidCoordinates(90, 180))
	assert.True(t, geo.ValidCoordinates(-90, -180))

	assert.False(t, geo.ValidCoordinates(90.0001, 0))
	assert.False(t, geo.ValidCoordinates(-90.0001, 0))
	assert.False(t, geo.ValidCoordinates(0, 180.0001))
	assert.False(t, geo.ValidCoordinates(0, -180.0001))
	assert.False(t, geo.ValidCoordinates(math.NaN(), 0))
	assert.False(t, geo.ValidCoordinates(0, math.Inf(1)))
}

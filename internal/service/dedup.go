package service

import (
	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/geo"
)

// DefaultDedupRadiusMeters is the default threshold for treating two
// complaints as referring to the same issue.
const DefaultDedupRadiusMeters = 100

// FindNearby filters candidates down to potential duplicates: same category
// (exact match), carrying a location, within radiusMeters of the query
// point. Pure filter over already-fetched data with no ordering guarantee;
// callers sort if their presentation needs it.
func FindNearby(candidates []domain.Complaint, lat, lng float64, category domain.ComplaintCategory, radiusMeters float64) []domain.Complaint {
	if radiusMeters <= 0 {
		radiusMeters = DefaultDedupRadiusMeters
	}
	matches := make([]domain.Complaint, 0)
	for _, candidate := range candidates {
		if candidate.Category != category || !candidate.HasLocation() {
			continue
		}
		if geo.DistanceMeters(candidate.Location.Lat, candidate.Location.Lng, lat, lng) <= radiusMeters {
			matches = append(matches, candidate)
		}
	}
	return matches
}

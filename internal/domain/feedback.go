package domain

import "time"

// Feedback is a service-quality rating left by a citizen.
type Feedback struct {
	ID        string
	UserID    *string
	Rating    int
	Comment   string
	CreatedAt time.Time
}

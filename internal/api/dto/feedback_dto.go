package dto

import (
	"time"

	"github.com/spec-kit/samadhan-service/internal/domain"
)

// CreateFeedbackRequest describes a feedback payload.
type CreateFeedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// FeedbackResponse is the wire shape for feedback entries.
type FeedbackResponse struct {
	ID        string    `json:"id"`
	UserID    *string   `json:"userId,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromFeedback converts a domain feedback entry.
func FromFeedback(fb *domain.Feedback) FeedbackResponse {
	return FeedbackResponse{
		ID:        fb.ID,
		UserID:    fb.UserID,
		Rating:    fb.Rating,
		Comment:   fb.Comment,
		CreatedAt: fb.CreatedAt,
	}
}

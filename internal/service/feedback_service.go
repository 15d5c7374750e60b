package service

import (
	"context"
	"strings"

	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/events"
	"github.com/spec-kit/samadhan-service/internal/repository"
	apperrors "github.com/spec-kit/samadhan-service/pkg/util"
)

// FeedbackService records service-quality feedback.
type FeedbackService struct {
	feedback   repository.FeedbackRepository
	dispatcher events.Dispatcher
}

// NewFeedbackService constructs the service.
func NewFeedbackService(feedbackRepo repository.FeedbackRepository, dispatcher events.Dispatcher) *FeedbackService {
	return &FeedbackService{feedback: feedbackRepo, dispatcher: dispatcher}
}

// Submit stores a rating with an optional comment.
func (s *FeedbackService) Submit(ctx context.Context, userID *string, rating int, comment string) (*domain.Feedback, error) {
	if rating < 1 || rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": rating})
	}
	fb := &domain.Feedback{
		UserID:  userID,
		Rating:  rating,
		Comment: strings.TrimSpace(comment),
	}
	if err := s.feedback.Create(ctx, fb); err != nil {
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:    events.EventFeedbackReceived,
			Payload: events.FeedbackReceivedPayload{Rating: fb.Rating},
		})
	}
	return fb, nil
}

// ListAll returns feedback entries for the admin surface.
func (s *FeedbackService) ListAll(ctx context.Context, limit, offset int) ([]domain.Feedback, error) {
	entries, err := s.feedback.ListAll(ctx, limit, offset)
	if err != nil {
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	return entries, nil
}

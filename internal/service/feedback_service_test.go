package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/service"
)

type fakeFeedbackRepo struct {
	entries []domain.Feedback
}

func (f *fakeFeedbackRepo) Create(_ context.Context, fb *domain.Feedback) error {
	fb.ID = fmt.Sprintf("fb-%d", len(f.entries)+1)
	f.entries = append(f.entries, *fb)
	return nil
}

func (f *fakeFeedbackRepo) ListAll(_ context.Context, limit, offset int) ([]domain.Feedback, error) {
	if offset >= len(f.entries) {
		return nil, nil
	}
	end := offset + limit
	if end > len(f.entries) {
		end = len(f.entries)
	}
	return f.entries[offset:end], nil
}

func TestFeedbackSubmitValidRating(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := service.NewFeedbackService(repo, nil)

	fb, err := svc.Submit(context.Background(), nil, 4, "  quick resolution  ")
	require.NoError(t, err)
	assert.NotEmpty(t, fb.ID)
	assert.Equal(t, 4, fb.Rating)
	assert.Equal(t, "quick resolution", fb.Comment)
}

func TestFeedbackSubmitRejectsOutOfRangeRating(t *testing.T) {
	svc := service.NewFeedbackService(&fakeFeedbackRepo{}, nil)

	for _, rating := range []int{0, -1, 6} {
		_, err := svc.Submit(context.Background(), nil, rating, "")
		require.Error(t, err, "rating %d", rating)
		assert.Equal(t, "VALIDATION_FAILED", domainCode(t, err))
	}
}

func TestFeedbackListAllPaginates(t *testing.T) {
	repo := &fakeFeedbackRepo{}
	svc := service.NewFeedbackService(repo, nil)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		_, err := svc.Submit(ctx, nil, (i%5)+1, "")
		require.NoError(t, err)
	}

	page, err := svc.ListAll(ctx, 2, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	tail, err := svc.ListAll(ctx, 10, 4)
	require.NoError(t, err)
	assert.Len(t, tail, 1)
}

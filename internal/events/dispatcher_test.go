package events_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/samadhan-service/internal/events"
)

func TestDispatcherDeliversToSubscribers(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	var seen []string
	d.Subscribe(events.EventComplaintCreated, func(_ context.Context, e events.Event) error {
		seen = append(seen, e.ComplaintID)
		return nil
	})
	d.Subscribe(events.EventComplaintUpvoted, func(_ context.Context, e events.Event) error {
		t.Fatal("handler for another event type must not fire")
		return nil
	})

	err := d.Publish(context.Background(), events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: "c-1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"c-1"}, seen)
}

func TestDispatcherContinuesPastHandlerErrors(t *testing.T) {
	d := events.NewInMemoryDispatcher()

	var secondRan bool
	d.Subscribe(events.EventComplaintCreated, func(_ context.Context, _ events.Event) error {
		return errors.New("handler failed")
	})
	d.Subscribe(events.EventComplaintCreated, func(_ context.Context, _ events.Event) error {
		secondRan = true
		return nil
	})

	err := d.Publish(context.Background(), events.Event{Type: events.EventComplaintCreated})
	require.NoError(t, err)
	assert.True(t, secondRan)
}

func TestDispatcherNoSubscribers(t *testing.T) {
	d := events.NewInMemoryDispatcher()
	err := d.Publish(context.Background(), events.Event{Type: events.EventComplaintDeleted})
	assert.NoError(t, err)
}

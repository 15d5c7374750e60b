package events

import (
	"time"

	"github.com/spec-kit/samadhan-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintCreated       EventType = "complaint_created"
	EventComplaintUpvoted       EventType = "complaint_upvoted"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintAllocated     EventType = "complaint_allocated"
	EventComplaintDeleted       EventType = "complaint_deleted"
	EventFeedbackReceived       EventType = "feedback_received"
)

// Actor encapsulates actor metadata for an event. Identity is an
// authenticated user id or a stable anonymous token.
type Actor struct {
	Identity  string `json:"identity"`
	Anonymous bool   `json:"anonymous"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id,omitempty"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	Category     domain.ComplaintCategory `json:"category"`
	Priority     domain.ComplaintPriority `json:"priority"`
	Title        string                   `json:"title"`
	HasLocation  bool                     `json:"has_location"`
	HasEstimate  bool                     `json:"has_estimate"`
	DuplicateHit bool                     `json:"duplicate_check_degraded,omitempty"`
}

// ComplaintUpvotedPayload payload.
type ComplaintUpvotedPayload struct {
	Upvotes int `json:"upvotes"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}

// ComplaintAllocatedPayload payload.
type ComplaintAllocatedPayload struct {
	Department string                 `json:"department"`
	OldStatus  domain.ComplaintStatus `json:"old_status"`
}

// FeedbackReceivedPayload payload.
type FeedbackReceivedPayload struct {
	Rating int `json:"rating"`
}

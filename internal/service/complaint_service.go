package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/events"
	"github.com/spec-kit/samadhan-service/internal/geo"
	"github.com/spec-kit/samadhan-service/internal/repository"
	apperrors "github.com/spec-kit/samadhan-service/pkg/util"
)

// ComplaintService coordinates complaint workflows: duplicate detection,
// creation with frozen resolution estimates, the upvote ledger, and the
// admin status/department operations.
type ComplaintService struct {
	complaints repository.ComplaintRepository
	cache      *CandidateCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	radius     float64
	now        func() time.Time
}

// ComplaintDependencies bundles collaborators for the complaint service.
type ComplaintDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	Cache         *CandidateCache
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
	RadiusMeters  float64
	Clock         func() time.Time
}

// NewComplaintService constructs the service.
func NewComplaintService(deps ComplaintDependencies) *ComplaintService {
	radius := deps.RadiusMeters
	if radius <= 0 {
		radius = DefaultDedupRadiusMeters
	}
	clock := deps.Clock
	if clock == nil {
		clock = time.Now
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ComplaintService{
		complaints: deps.ComplaintRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		radius:     radius,
		now:        clock,
	}
}

// SubmitComplaintInput describes a submission payload.
type SubmitComplaintInput struct {
	Title       string
	Description string
	Category    domain.ComplaintCategory
	Priority    domain.ComplaintPriority
	OwnerID     *string
	Location    *domain.Location
	// ConfirmDuplicate skips the duplicate gate after the caller reviewed
	// the matches and chose to file anyway.
	ConfirmDuplicate bool
	Identity         string
	Anonymous        bool
}

// SubmitResult is the outcome of a submission attempt. Exactly one of
// Complaint and Duplicates is populated: when duplicates are found and not
// confirmed, creation is withheld so the caller can upvote an existing
// complaint instead.
type SubmitResult struct {
	Complaint              *domain.Complaint
	Duplicates             []domain.Complaint
	DuplicateCheckDegraded bool
}

// SubmitComplaint runs the duplicate gate, attaches the resolution estimate
// and persists the complaint.
func (s *ComplaintService) SubmitComplaint(ctx context.Context, input SubmitComplaintInput) (*SubmitResult, error) {
	category := input.Category
	if category == "" {
		category = domain.CategoryOther
	}
	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}

	if input.Location != nil && !geo.ValidCoordinates(input.Location.Lat, input.Location.Lng) {
		return nil, apperrors.NewInvalidLocation(map[string]any{
			"lat": input.Location.Lat,
			"lng": input.Location.Lng,
		})
	}

	result := &SubmitResult{}
	if input.Location != nil && !input.ConfirmDuplicate {
		candidates, err := s.candidatesForCategory(ctx, category)
		if err != nil {
			// Warn-and-allow: a failed duplicate check degrades to "no
			// duplicates found" with a visible warning instead of blocking
			// the submission.
			s.logger.Warn("duplicate check degraded", zap.Error(err))
			result.DuplicateCheckDegraded = true
		} else {
			matches := FindNearby(candidates, input.Location.Lat, input.Location.Lng, category, s.radius)
			if len(matches) > 0 {
				result.Duplicates = matches
				return result, nil
			}
		}
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = fmt.Sprintf("%s Complaint", category)
	}

	createdAt := s.now().UnixMilli()
	complaint := &domain.Complaint{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Category:    category,
		Priority:    priority,
		Status:      domain.ComplaintStatusSubmitted,
		OwnerID:     input.OwnerID,
		Location:    input.Location,
		UpvotedBy:   []string{},
		CreatedAt:   createdAt,
	}

	if minYears, maxYears, ok := Estimate(string(category)); ok {
		from, to := ProjectDates(createdAt, minYears, maxYears)
		complaint.EstimatedYearsMin = &minYears
		complaint.EstimatedYearsMax = &maxYears
		complaint.EstimatedResolutionFrom = &from
		complaint.EstimatedResolutionTo = &to
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	s.cache.Invalidate(ctx, category)

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{Identity: input.Identity, Anonymous: input.Anonymous},
		Payload: events.ComplaintCreatedPayload{
			Category:     complaint.Category,
			Priority:     complaint.Priority,
			Title:        complaint.Title,
			HasLocation:  complaint.HasLocation(),
			HasEstimate:  complaint.EstimatedYearsMin != nil,
			DuplicateHit: result.DuplicateCheckDegraded,
		},
	})

	result.Complaint = complaint
	return result, nil
}

// CheckDuplicates validates the query coordinates and returns same-category
// complaints within the configured radius.
func (s *ComplaintService) CheckDuplicates(ctx context.Context, lat, lng float64, category domain.ComplaintCategory) ([]domain.Complaint, error) {
	if !geo.ValidCoordinates(lat, lng) {
		return nil, apperrors.NewInvalidLocation(map[string]any{"lat": lat, "lng": lng})
	}
	candidates, err := s.candidatesForCategory(ctx, category)
	if err != nil {
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	return FindNearby(candidates, lat, lng, category, s.radius), nil
}

// Upvote records support for an existing complaint. A given identity may
// upvote a complaint at most once; repeats are rejected with
// ALREADY_UPVOTED rather than silently ignored.
func (s *ComplaintService) Upvote(ctx context.Context, complaintID, identity string, anonymous bool) (int, error) {
	if strings.TrimSpace(identity) == "" {
		return 0, apperrors.NewValidationError("identity token required", nil)
	}
	upvotes, err := s.complaints.Upvote(ctx, complaintID, identity)
	if err != nil {
		switch {
		case errors.Is(err, pgx.ErrNoRows):
			return 0, apperrors.NewNotFound("complaint", map[string]any{"complaint_id": complaintID})
		case errors.Is(err, repository.ErrAlreadyUpvoted):
			return 0, apperrors.NewAlreadyUpvoted(complaintID)
		default:
			return 0, apperrors.NewRepositoryUnavailable(err)
		}
	}

	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintUpvoted,
		ComplaintID: complaintID,
		Actor:       events.Actor{Identity: identity, Anonymous: anonymous},
		Payload:     events.ComplaintUpvotedPayload{Upvotes: upvotes},
	})
	return upvotes, nil
}

// GetComplaint fetches a single complaint.
func (s *ComplaintService) GetComplaint(ctx context.Context, id string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"complaint_id": id})
		}
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	return complaint, nil
}

// ListOwn returns the complaints filed by an owner.
func (s *ComplaintService) ListOwn(ctx context.Context, ownerID string) ([]domain.Complaint, error) {
	complaints, err := s.complaints.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	return complaints, nil
}

// ListAll returns every complaint, newest first.
func (s *ComplaintService) ListAll(ctx context.Context) ([]domain.Complaint, error) {
	complaints, err := s.complaints.ListAll(ctx)
	if err != nil {
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	return complaints, nil
}

// DeleteOwn removes a complaint. Only the owning user may delete it.
func (s *ComplaintService) DeleteOwn(ctx context.Context, ownerID, complaintID string) error {
	complaint, err := s.GetComplaint(ctx, complaintID)
	if err != nil {
		return err
	}
	if complaint.OwnerID == nil || *complaint.OwnerID != ownerID {
		return apperrors.NewForbidden("only the owner may delete a complaint")
	}
	if err := s.complaints.Delete(ctx, complaintID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.NewNotFound("complaint", map[string]any{"complaint_id": complaintID})
		}
		return apperrors.NewRepositoryUnavailable(err)
	}
	s.cache.Invalidate(ctx, complaint.Category)
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintDeleted,
		ComplaintID: complaintID,
		Actor:       events.Actor{Identity: ownerID},
	})
	return nil
}

// UpdateStatus changes a complaint's status. Admin-driven only; the handler
// layer enforces the role.
func (s *ComplaintService) UpdateStatus(ctx context.Context, actorID, complaintID string, newStatus domain.ComplaintStatus) (*domain.Complaint, error) {
	if !domain.ValidStatus(newStatus) {
		return nil, apperrors.NewValidationError("unknown status", map[string]any{"status": newStatus})
	}
	complaint, err := s.GetComplaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	oldStatus := complaint.Status
	if err := s.complaints.UpdateStatus(ctx, complaintID, newStatus); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"complaint_id": complaintID})
		}
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	complaint.Status = newStatus
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaintID,
		Actor:       events.Actor{Identity: actorID},
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: newStatus,
		},
	})
	return complaint, nil
}

// AllocateDepartment assigns a complaint to a department and forces the
// status to in_progress regardless of the prior status.
func (s *ComplaintService) AllocateDepartment(ctx context.Context, actorID, complaintID, department string) (*domain.Complaint, error) {
	department = strings.TrimSpace(department)
	if department == "" {
		return nil, apperrors.NewValidationError("department required", nil)
	}
	complaint, err := s.GetComplaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	oldStatus := complaint.Status
	if err := s.complaints.AllocateDepartment(ctx, complaintID, department); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"complaint_id": complaintID})
		}
		return nil, apperrors.NewRepositoryUnavailable(err)
	}
	complaint.AssignedDepartment = &department
	complaint.Status = domain.ComplaintStatusInProgress
	s.publishEvent(ctx, events.Event{
		Type:        events.EventComplaintAllocated,
		ComplaintID: complaintID,
		Actor:       events.Actor{Identity: actorID},
		Payload: events.ComplaintAllocatedPayload{
			Department: department,
			OldStatus:  oldStatus,
		},
	})
	return complaint, nil
}

func (s *ComplaintService) candidatesForCategory(ctx context.Context, category domain.ComplaintCategory) ([]domain.Complaint, error) {
	if cached, ok := s.cache.Get(ctx, category); ok {
		return cached, nil
	}
	candidates, err := s.complaints.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, category, candidates)
	return candidates, nil
}

func (s *ComplaintService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

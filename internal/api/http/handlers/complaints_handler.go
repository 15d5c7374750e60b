package handlers

import (
	"net/http"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/samadhan-service/internal/api/dto"
	"github.com/spec-kit/samadhan-service/internal/auth"
	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/service"
	apperrors "github.com/spec-kit/samadhan-service/pkg/util"
)

// ComplaintsHandler manages citizen-facing complaint endpoints.
type ComplaintsHandler struct {
	service *service.ComplaintService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(complaintService *service.ComplaintService) *ComplaintsHandler {
	return &ComplaintsHandler{service: complaintService}
}

// Submit POST /complaints. Anonymous submissions are allowed; an
// authenticated principal becomes the owner.
func (h *ComplaintsHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Description) == "" {
		return apperrors.NewValidationError("description required", nil)
	}

	input := service.SubmitComplaintInput{
		Title:            req.Title,
		Description:      req.Description,
		Category:         domain.ComplaintCategory(req.Category),
		Priority:         domain.ComplaintPriority(req.Priority),
		ConfirmDuplicate: req.ConfirmDuplicate,
	}
	if req.Location != nil {
		input.Location = &domain.Location{
			Lat:     req.Location.Lat,
			Lng:     req.Location.Lng,
			Address: req.Location.Address,
		}
	}
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.User != nil {
		ownerID := principal.User.ID
		input.OwnerID = &ownerID
	}
	if identity, anonymous, ok := auth.IdentityFromContext(c); ok {
		input.Identity = identity
		input.Anonymous = anonymous
	}

	result, err := h.service.SubmitComplaint(c.Context(), input)
	if err != nil {
		return err
	}

	resp := dto.SubmitComplaintResponse{
		DuplicateCheckDegraded: result.DuplicateCheckDegraded,
	}
	if result.DuplicateCheckDegraded {
		resp.Warning = "duplicate check unavailable; complaint filed without it"
	}
	if len(result.Duplicates) > 0 {
		// Ordering is a presentation choice; sort by recency here.
		duplicates := append([]domain.Complaint{}, result.Duplicates...)
		sort.Slice(duplicates, func(i, j int) bool {
			return duplicates[i].CreatedAt > duplicates[j].CreatedAt
		})
		resp.Duplicates = dto.FromComplaints(duplicates)
		return c.Status(http.StatusConflict).JSON(fiber.Map{"data": resp})
	}

	created := dto.FromComplaint(result.Complaint)
	resp.Complaint = &created
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": resp})
}

// CheckDuplicates POST /complaints/check-duplicates.
func (h *ComplaintsHandler) CheckDuplicates(c *fiber.Ctx) error {
	var req dto.CheckDuplicatesRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Category == "" {
		return apperrors.NewValidationError("category required", nil)
	}
	matches, err := h.service.CheckDuplicates(c.Context(), req.Lat, req.Lng, domain.ComplaintCategory(req.Category))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromComplaints(matches)})
}

// List GET /complaints — the public track surface.
func (h *ComplaintsHandler) List(c *fiber.Ctx) error {
	complaints, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromComplaints(complaints)})
}

// Get GET /complaints/:id.
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	complaint, err := h.service.GetComplaint(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromComplaint(complaint)})
}

// Upvote POST /complaints/:id/upvote. Requires an identity: either an
// authenticated session or the anonymous token header.
func (h *ComplaintsHandler) Upvote(c *fiber.Ctx) error {
	identity, anonymous, ok := auth.IdentityFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("sign in or supply " + auth.AnonymousTokenHeader)
	}
	upvotes, err := h.service.Upvote(c.Context(), c.Params("id"), identity, anonymous)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.UpvoteResponse{
		ComplaintID: c.Params("id"),
		Upvotes:     upvotes,
	}})
}

// ListOwn GET /me/complaints.
func (h *ComplaintsHandler) ListOwn(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	complaints, err := h.service.ListOwn(c.Context(), principal.User.ID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromComplaints(complaints)})
}

// Delete DELETE /complaints/:id — owner only.
func (h *ComplaintsHandler) Delete(c *fiber.Ctx) error {
	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.User == nil {
		return apperrors.NewUnauthorized("authentication required")
	}
	if err := h.service.DeleteOwn(c.Context(), principal.User.ID, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

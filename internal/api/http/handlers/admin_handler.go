package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/samadhan-service/internal/api/dto"
	"github.com/spec-kit/samadhan-service/internal/auth"
	"github.com/spec-kit/samadhan-service/internal/domain"
	"github.com/spec-kit/samadhan-service/internal/service"
	apperrors "github.com/spec-kit/samadhan-service/pkg/util"
)

// AdminHandler manages the admin surface: listing, status changes and
// department allocation.
type AdminHandler struct {
	complaints *service.ComplaintService
	feedback   *service.FeedbackService
}

// NewAdminHandler constructs handler.
func NewAdminHandler(complaintService *service.ComplaintService, feedbackService *service.FeedbackService) *AdminHandler {
	return &AdminHandler{complaints: complaintService, feedback: feedbackService}
}

// ListComplaints GET /admin/complaints.
func (h *AdminHandler) ListComplaints(c *fiber.Ctx) error {
	complaints, err := h.complaints.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromComplaints(complaints)})
}

// UpdateStatus PATCH /admin/complaints/:id/status.
func (h *AdminHandler) UpdateStatus(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	complaint, err := h.complaints.UpdateStatus(c.Context(), principal.User.ID, c.Params("id"), domain.ComplaintStatus(req.Status))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromComplaint(complaint)})
}

// AllocateDepartment POST /admin/complaints/:id/allocate.
func (h *AdminHandler) AllocateDepartment(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)
	var req dto.AllocateDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	complaint, err := h.complaints.AllocateDepartment(c.Context(), principal.User.ID, c.Params("id"), req.Department)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.FromComplaint(complaint)})
}

// ListFeedback GET /admin/feedback.
func (h *AdminHandler) ListFeedback(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)
	entries, err := h.feedback.ListAll(c.Context(), limit, offset)
	if err != nil {
		return err
	}
	items := make([]dto.FeedbackResponse, 0, len(entries))
	for i := range entries {
		items = append(items, dto.FromFeedback(&entries[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/samadhan-service/internal/api/dto"
	"github.com/spec-kit/samadhan-service/internal/auth"
	"github.com/spec-kit/samadhan-service/internal/service"
	apperrors "github.com/spec-kit/samadhan-service/pkg/util"
)

// FeedbackHandler manages service feedback submission.
type FeedbackHandler struct {
	service *service.FeedbackService
}

// NewFeedbackHandler constructs handler.
func NewFeedbackHandler(feedbackService *service.FeedbackService) *FeedbackHandler {
	return &FeedbackHandler{service: feedbackService}
}

// Submit POST /feedback.
func (h *FeedbackHandler) Submit(c *fiber.Ctx) error {
	var req dto.CreateFeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var userID *string
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.User != nil {
		userID = &principal.User.ID
	}

	fb, err := h.service.Submit(c.Context(), userID, req.Rating, req.Comment)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.FromFeedback(fb)})
}

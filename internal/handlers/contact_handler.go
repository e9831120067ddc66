package handlers

import (
	"context"
	"log/slog"

	"danawa-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const contactSuccessMessage = "문의가 성공적으로 전송되었습니다."

// ContactRecorder receives accepted contact submissions. A database or
// notification sender can replace the logging implementation.
type ContactRecorder interface {
	Record(ctx context.Context, req models.ContactRequest) error
}

// LogRecorder records a submission as one log line.
type LogRecorder struct {
	Logger *slog.Logger
}

func (r LogRecorder) Record(ctx context.Context, req models.ContactRequest) error {
	ref, err := uuid.NewRandom()
	if err != nil {
		return err
	}
	r.Logger.InfoContext(ctx, "Contact request received",
		slog.String("ref", ref.String()),
		slog.String("name", req.Name),
		slog.String("service", req.Service),
	)
	return nil
}

type ContactHandler struct {
	recorder ContactRecorder
}

func NewContactHandler(recorder ContactRecorder) *ContactHandler {
	return &ContactHandler{recorder: recorder}
}

// SubmitContact godoc
// @Summary      Submit contact form
// @Description  Validate and accept a contact form submission
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      models.ContactRequest  true  "Contact form"
// @Success      200   {object}  models.ContactResponse
// @Failure      400   {object}  map[string]interface{}
// @Failure      500   {object}  map[string]string
// @Router       /api/contact [post]
func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var req models.ContactRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if details := validateStruct(req); details != nil {
		return validationFailed(c, details)
	}

	if err := h.recorder.Record(c.UserContext(), req); err != nil {
		return internalError(c, err)
	}

	return c.JSON(models.ContactResponse{
		Success: true,
		Message: contactSuccessMessage,
	})
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/civiclens/report-service/internal/api/dto"
	"github.com/civiclens/report-service/internal/auth"
	"github.com/civiclens/report-service/internal/domain"
	"github.com/civiclens/report-service/internal/service"
	"github.com/civiclens/report-service/internal/verify"
	apperrors "github.com/civiclens/report-service/pkg/util"
)

// ComplaintsHandler exposes the complaint intake and lifecycle endpoints.
type ComplaintsHandler struct {
	intake    *service.IntakeService
	lifecycle *service.LifecycleService
}

// NewComplaintsHandler constructs handler.
func NewComplaintsHandler(intake *service.IntakeService, lifecycle *service.LifecycleService) *ComplaintsHandler {
	return &ComplaintsHandler{intake: intake, lifecycle: lifecycle}
}

// Submit handles POST /complaints.
func (h *ComplaintsHandler) Submit(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.SubmitComplaintRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	outcome, err := h.intake.Submit(c.UserContext(), session, service.SubmitInput{
		Description: req.Description,
		ImageURL:    req.ImageURL,
		Lat:         req.Lat,
		Lng:         req.Lng,
		Force:       req.Force,
	})
	if err != nil {
		return err
	}

	if outcome.Duplicate != nil {
		return c.Status(http.StatusConflict).JSON(fiber.Map{
			"data": dto.DuplicateResponse{
				Duplicate: true,
				Existing:  dto.NewComplaintResponse(outcome.Duplicate),
			},
		})
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.NewComplaintResponse(outcome.Complaint),
	})
}

// Feed handles GET /complaints.
func (h *ComplaintsHandler) Feed(c *fiber.Ctx) error {
	var statusFilter *domain.ComplaintStatus
	if raw := c.Query("status"); raw != "" {
		status := domain.ComplaintStatus(raw)
		switch status {
		case domain.StatusPending, domain.StatusInProgress, domain.StatusResolved:
			statusFilter = &status
		default:
			return apperrors.NewValidationError("unknown status filter", map[string]any{"status": raw})
		}
	}

	list, err := h.lifecycle.Feed(c.UserContext(), statusFilter)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintListResponse(list)})
}

// Mine handles GET /complaints/mine.
func (h *ComplaintsHandler) Mine(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	list, err := h.lifecycle.ListMine(c.UserContext(), session)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintListResponse(list)})
}

// Stats handles GET /complaints/stats.
func (h *ComplaintsHandler) Stats(c *fiber.Ctx) error {
	counts, err := h.lifecycle.Stats(c.UserContext())
	if err != nil {
		return err
	}
	resp := dto.StatsResponse{
		Pending:    counts[domain.StatusPending],
		InProgress: counts[domain.StatusInProgress],
		Resolved:   counts[domain.StatusResolved],
	}
	resp.Total = resp.Pending + resp.InProgress + resp.Resolved
	return c.JSON(fiber.Map{"data": resp})
}

// Get handles GET /complaints/:id.
func (h *ComplaintsHandler) Get(c *fiber.Ctx) error {
	complaint, err := h.lifecycle.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// Upvote handles POST /complaints/:id/upvote.
func (h *ComplaintsHandler) Upvote(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	complaint, err := h.lifecycle.Upvote(c.UserContext(), session, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// UpdateStatus handles PATCH /complaints/:id/status.
func (h *ComplaintsHandler) UpdateStatus(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	next := domain.ComplaintStatus(req.Status)
	switch next {
	case domain.StatusPending, domain.StatusInProgress, domain.StatusResolved:
	default:
		return apperrors.NewValidationError("unknown status", map[string]any{"status": req.Status})
	}

	complaint, err := h.lifecycle.UpdateStatus(c.UserContext(), session, c.Params("id"), next)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

// BeginVerification handles POST /complaints/:id/verification.
func (h *ComplaintsHandler) BeginVerification(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	var req dto.BeginVerificationRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.ProofImageURL == "" {
		return apperrors.NewValidationError("proof_image_url required", nil)
	}

	snap, err := h.lifecycle.BeginVerification(c.UserContext(), session, c.Params("id"), req.ProofImageURL)
	if err != nil {
		return err
	}
	return c.Status(http.StatusAccepted).JSON(fiber.Map{"data": verificationResponse(snap)})
}

// VerificationProgress handles GET /complaints/:id/verification.
func (h *ComplaintsHandler) VerificationProgress(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	snap, err := h.lifecycle.VerificationProgress(c.UserContext(), session, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": verificationResponse(snap)})
}

// CancelVerification handles DELETE /complaints/:id/verification.
func (h *ComplaintsHandler) CancelVerification(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	if err := h.lifecycle.CancelVerification(c.UserContext(), session, c.Params("id")); err != nil {
		return err
	}
	return c.SendStatus(http.StatusNoContent)
}

// Resolve handles POST /complaints/:id/resolve.
func (h *ComplaintsHandler) Resolve(c *fiber.Ctx) error {
	session, ok := auth.SessionFromContext(c)
	if !ok {
		return apperrors.NewUnauthorized("authentication required")
	}

	complaint, err := h.lifecycle.Resolve(c.UserContext(), session, c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewComplaintResponse(complaint)})
}

func verificationResponse(snap verify.Snapshot) dto.VerificationResponse {
	return dto.VerificationResponse{
		ComplaintID: snap.ComplaintID,
		Status:      string(snap.Status),
		Progress:    snap.Progress,
		Confidence:  snap.Confidence,
		Analysis:    snap.Analysis,
	}
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/civiclens/report-service/internal/api/dto"
	"github.com/civiclens/report-service/internal/uploads"
	apperrors "github.com/civiclens/report-service/pkg/util"
)

// UploadsHandler accepts complaint and proof images and forwards them to
// the configured image host.
type UploadsHandler struct {
	uploader uploads.Uploader
}

// NewUploadsHandler constructs handler.
func NewUploadsHandler(uploader uploads.Uploader) *UploadsHandler {
	return &UploadsHandler{uploader: uploader}
}

// Upload handles POST /uploads.
func (h *UploadsHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return apperrors.NewValidationError("image file required", nil)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return apperrors.NewValidationError("unreadable image file", nil)
	}
	defer file.Close()

	url, err := h.uploader.Upload(c.UserContext(), fileHeader.Filename, fileHeader.Header.Get("Content-Type"), file)
	if err != nil {
		return err
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": dto.UploadResponse{URL: url},
	})
}

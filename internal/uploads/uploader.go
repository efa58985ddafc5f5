package uploads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/civiclens/report-service/internal/config"
	apperrors "github.com/civiclens/report-service/pkg/util"
)

// Uploader stores an image with the external hosting service and returns a
// stable URL. The core treats the URL as an opaque reference.
type Uploader interface {
	Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error)
}

type httpUploader struct {
	endpoint string
	client   *http.Client
}

// NewHTTPUploader builds an uploader posting multipart requests to the
// configured endpoint. An empty endpoint is a deploy-time mistake surfaced on
// first use, not at boot.
func NewHTTPUploader(cfg config.UploadsConfig) Uploader {
	return &httpUploader{
		endpoint: cfg.Endpoint,
		client:   &http.Client{Timeout: cfg.Timeout()},
	}
}

type uploadResponse struct {
	URL string `json:"url"`
}

func (u *httpUploader) Upload(ctx context.Context, filename, contentType string, content io.Reader) (string, error) {
	if u.endpoint == "" {
		return "", apperrors.NewUpstreamFailure("image host", fmt.Errorf("UPLOADS_ENDPOINT not configured"))
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	if _, err := io.Copy(part, content); err != nil {
		return "", apperrors.NewInternalError(err)
	}
	if err := writer.Close(); err != nil {
		return "", apperrors.NewInternalError(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.endpoint, &body)
	if err != nil {
		return "", apperrors.NewInternalError(err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	if contentType != "" {
		req.Header.Set("X-Upload-Content-Type", contentType)
	}

	resp, err := u.client.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamFailure("image host", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.NewUpstreamFailure("image host", fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var parsed uploadResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", apperrors.NewUpstreamFailure("image host", err)
	}
	if parsed.URL == "" {
		return "", apperrors.NewUpstreamFailure("image host", fmt.Errorf("empty url in response"))
	}
	return parsed.URL, nil
}

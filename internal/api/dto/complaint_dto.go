package dto

import "github.com/civiclens/report-service/internal/domain"

// SubmitComplaintRequest is the payload for new complaints.
type SubmitComplaintRequest struct {
	Description string  `json:"description"`
	ImageURL    string  `json:"image_url"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Force       bool    `json:"force"`
}

// UpdateStatusRequest is the payload for admin status changes.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// BeginVerificationRequest carries the proof-of-repair image.
type BeginVerificationRequest struct {
	ProofImageURL string `json:"proof_image_url"`
}

// ComplaintResponse is the wire representation of a complaint.
type ComplaintResponse struct {
	ID           string        `json:"id"`
	OwnerID      string        `json:"owner_id"`
	ImageURL     string        `json:"image_url"`
	Description  string        `json:"description"`
	Category     string        `json:"category"`
	Department   string        `json:"department"`
	Urgency      string        `json:"urgency"`
	Status       string        `json:"status"`
	Lat          float64       `json:"lat"`
	Lng          float64       `json:"lng"`
	CreatedAt    int64         `json:"created_at"`
	SupportCount int           `json:"support_count"`
	Supporters   []string      `json:"supporters"`
	Analysis     string        `json:"analysis,omitempty"`
	Risk         *RiskResponse `json:"risk,omitempty"`
}

// RiskResponse is the wire representation of a complaint's geo-risk context.
type RiskResponse struct {
	Level    string `json:"level"`
	Reason   string `json:"reason"`
	Score    int    `json:"score"`
	ZoneName string `json:"zone_name,omitempty"`
	ZoneType string `json:"zone_type,omitempty"`
}

// DuplicateResponse is returned when submission matches a nearby open complaint.
type DuplicateResponse struct {
	Duplicate bool              `json:"duplicate"`
	Existing  ComplaintResponse `json:"existing"`
}

// VerificationResponse mirrors a verification session snapshot.
type VerificationResponse struct {
	ComplaintID string `json:"complaint_id"`
	Status      string `json:"status"`
	Progress    int    `json:"progress"`
	Confidence  int    `json:"confidence,omitempty"`
	Analysis    string `json:"analysis,omitempty"`
}

// UploadResponse is returned after an image is stored.
type UploadResponse struct {
	URL string `json:"url"`
}

// StatsResponse aggregates complaint counts per status.
type StatsResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Resolved   int `json:"resolved"`
}

// NewComplaintResponse maps a domain complaint to its wire form.
func NewComplaintResponse(c *domain.Complaint) ComplaintResponse {
	resp := ComplaintResponse{
		ID:           c.ID,
		OwnerID:      c.OwnerID,
		ImageURL:     c.ImageURL,
		Description:  c.Description,
		Category:     c.Category,
		Department:   c.Department,
		Urgency:      string(c.Urgency),
		Status:       string(c.Status),
		Lat:          c.Location.Lat,
		Lng:          c.Location.Lng,
		CreatedAt:    c.CreatedAt,
		SupportCount: c.SupportCount,
		Supporters:   c.Supporters,
		Analysis:     c.Analysis,
	}
	if resp.Supporters == nil {
		resp.Supporters = []string{}
	}
	if c.Risk.Level != "" {
		resp.Risk = &RiskResponse{
			Level:    string(c.Risk.Level),
			Reason:   c.Risk.Reason,
			Score:    c.Risk.Score,
			ZoneName: c.Risk.ZoneName,
			ZoneType: string(c.Risk.ZoneType),
		}
	}
	return resp
}

// NewComplaintListResponse maps a slice of complaints.
func NewComplaintListResponse(list []domain.Complaint) []ComplaintResponse {
	out := make([]ComplaintResponse, 0, len(list))
	for i := range list {
		out = append(out, NewComplaintResponse(&list[i]))
	}
	return out
}

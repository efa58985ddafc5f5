package events

import (
	"time"

	"github.com/civiclens/report-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventComplaintCreated       EventType = "complaint_created"
	EventComplaintUpvoted       EventType = "complaint_upvoted"
	EventComplaintStatusChanged EventType = "complaint_status_changed"
	EventComplaintResolved      EventType = "complaint_resolved"
	EventDuplicateDetected      EventType = "duplicate_detected"
)

// Actor encapsulates actor metadata for an event.
type Actor struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

// Event represents a domain event emitted by services.
type Event struct {
	ID          string      `json:"id"`
	Type        EventType   `json:"type"`
	ComplaintID string      `json:"complaint_id"`
	Actor       Actor       `json:"actor"`
	Timestamp   time.Time   `json:"timestamp"`
	Payload     interface{} `json:"payload"`
}

// ComplaintCreatedPayload payload.
type ComplaintCreatedPayload struct {
	Category   string           `json:"category"`
	Department string           `json:"department"`
	Urgency    domain.Urgency   `json:"urgency"`
	RiskLevel  domain.RiskLevel `json:"risk_level"`
	RiskZone   string           `json:"risk_zone,omitempty"`
}

// ComplaintUpvotedPayload payload.
type ComplaintUpvotedPayload struct {
	SupportCount int `json:"support_count"`
}

// ComplaintStatusChangedPayload payload.
type ComplaintStatusChangedPayload struct {
	OldStatus domain.ComplaintStatus `json:"old_status"`
	NewStatus domain.ComplaintStatus `json:"new_status"`
}

// ComplaintResolvedPayload payload.
type ComplaintResolvedPayload struct {
	Confidence int    `json:"confidence"`
	Analysis   string `json:"analysis"`
}

// DuplicateDetectedPayload payload.
type DuplicateDetectedPayload struct {
	ExistingComplaintID string  `json:"existing_complaint_id"`
	DistanceDeg         float64 `json:"distance_deg"`
}

package service

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/civiclens/report-service/internal/classifier"
	"github.com/civiclens/report-service/internal/config"
	"github.com/civiclens/report-service/internal/domain"
	"github.com/civiclens/report-service/internal/events"
	"github.com/civiclens/report-service/internal/georisk"
	"github.com/civiclens/report-service/internal/repository"
	apperrors "github.com/civiclens/report-service/pkg/util"
)

// IntakeService runs the submission decision pipeline: classification and
// risk evaluation in parallel, duplicate detection, then a single write,
// either a new complaint or a duplicate offer the caller can act on.
type IntakeService struct {
	complaints repository.ComplaintRepository
	cache      *repository.FeedCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.IntakeConfig
	now        func() time.Time
}

// IntakeDependencies bundles collaborators for the intake service.
type IntakeDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	FeedCache     *repository.FeedCache
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
}

// SubmitInput is a raw citizen submission.
type SubmitInput struct {
	Description string
	ImageURL    string
	Lat         float64
	Lng         float64
	// Force skips the duplicate offer and creates a new complaint even when
	// a nearby open one exists.
	Force bool
}

// SubmitOutcome reports what the pipeline decided. Exactly one of Complaint
// (created) or Duplicate (offer) is set.
type SubmitOutcome struct {
	Complaint *domain.Complaint
	Duplicate *domain.Complaint
	// DuplicateCheckDegraded is true when the store query behind duplicate
	// detection failed and the pipeline proceeded as if no match existed.
	DuplicateCheckDegraded bool
}

// NewIntakeService constructs the service.
func NewIntakeService(cfg config.IntakeConfig, deps IntakeDependencies) *IntakeService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{
		complaints: deps.ComplaintRepo,
		cache:      deps.FeedCache,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Submit turns a raw submission into a routed, risk-scored complaint, or
// into a duplicate offer when a nearby open complaint exists.
func (s *IntakeService) Submit(ctx context.Context, session domain.Session, input SubmitInput) (*SubmitOutcome, error) {
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}
	if strings.TrimSpace(input.ImageURL) == "" {
		return nil, apperrors.NewValidationError("image reference required", nil)
	}
	if input.Lat == 0 && input.Lng == 0 {
		return nil, apperrors.NewValidationError("pinned location required", nil)
	}

	// Classification and risk evaluation are independent; run them
	// concurrently. Both are pure and cannot fail.
	var analysis domain.ClassificationResult
	var risk domain.RiskContext
	done := make(chan struct{})
	go func() {
		analysis = classifier.Classify(description)
		close(done)
	}()
	risk = georisk.Evaluate(input.Lat, input.Lng)
	<-done

	urgency := analysis.Urgency
	if risk.Level == domain.RiskLevelCritical {
		urgency = domain.UrgencyCritical
	}

	duplicate, distance, degraded := s.findDuplicate(ctx, input.Lat, input.Lng)
	if duplicate != nil && !input.Force {
		s.publish(ctx, events.Event{
			Type:        events.EventDuplicateDetected,
			ComplaintID: duplicate.ID,
			Actor:       events.Actor{UserID: session.UserID, IsAdmin: session.IsAdmin},
			Payload: events.DuplicateDetectedPayload{
				ExistingComplaintID: duplicate.ID,
				DistanceDeg:         distance,
			},
		})
		return &SubmitOutcome{Duplicate: duplicate, DuplicateCheckDegraded: degraded}, nil
	}

	complaint := &domain.Complaint{
		OwnerID:      session.UserID,
		ImageURL:     input.ImageURL,
		Description:  description,
		Category:     analysis.IssueType,
		Department:   analysis.Department,
		Urgency:      urgency,
		Status:       domain.StatusPending,
		Location:     domain.Location{Lat: input.Lat, Lng: input.Lng},
		CreatedAt:    s.now().UnixMilli(),
		SupportCount: 0,
		Supporters:   []string{},
		Analysis:     analysis.Reason,
		Risk:         risk,
	}

	if err := s.complaints.Create(ctx, complaint); err != nil {
		return nil, apperrors.NewUpstreamFailure("complaint store", err)
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("feed cache invalidation failed", zap.Error(err))
	}

	s.publish(ctx, events.Event{
		Type:        events.EventComplaintCreated,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{UserID: session.UserID, IsAdmin: session.IsAdmin},
		Payload: events.ComplaintCreatedPayload{
			Category:   complaint.Category,
			Department: complaint.Department,
			Urgency:    complaint.Urgency,
			RiskLevel:  risk.Level,
			RiskZone:   risk.ZoneName,
		},
	})
	return &SubmitOutcome{Complaint: complaint, DuplicateCheckDegraded: degraded}, nil
}

// FindDuplicate exposes the advisory nearby-open-complaint check.
func (s *IntakeService) FindDuplicate(ctx context.Context, lat, lng float64) (*domain.Complaint, bool) {
	match, _, degraded := s.findDuplicate(ctx, lat, lng)
	return match, degraded
}

// findDuplicate scans pending complaints for the closest one within the
// threshold. Distance is planar in degree space (0.0002 deg is roughly 22 m
// at this latitude), not haversine. A store failure degrades to "no
// duplicate" but is logged, so telemetry can tell degradation from a genuine
// miss.
func (s *IntakeService) findDuplicate(ctx context.Context, lat, lng float64) (*domain.Complaint, float64, bool) {
	pending, err := s.complaints.ListByStatus(ctx, domain.StatusPending)
	if err != nil {
		s.logger.Warn("duplicate check degraded: pending query failed", zap.Error(err))
		return nil, 0, true
	}

	var closest *domain.Complaint
	minDistance := math.Inf(1)
	for i := range pending {
		c := &pending[i]
		dist := math.Hypot(lat-c.Location.Lat, lng-c.Location.Lng)
		if dist < s.cfg.DuplicateThresholdDeg && dist < minDistance {
			minDistance = dist
			closest = c
		}
	}
	if closest == nil {
		return nil, 0, false
	}
	return closest, minDistance, false
}

func (s *IntakeService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = s.now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

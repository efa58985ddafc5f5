package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/civiclens/report-service/internal/config"
	"github.com/civiclens/report-service/internal/domain"
	"github.com/civiclens/report-service/internal/events"
	"github.com/civiclens/report-service/internal/repository"
	"github.com/civiclens/report-service/internal/verify"
	apperrors "github.com/civiclens/report-service/pkg/util"
)

// allowedTransitions is the complaint workflow. Forward only; Resolved is
// terminal. Any edge into Resolved additionally requires a consumed
// verification gate session.
var allowedTransitions = map[domain.ComplaintStatus][]domain.ComplaintStatus{
	domain.StatusPending:    {domain.StatusInProgress, domain.StatusResolved},
	domain.StatusInProgress: {domain.StatusResolved},
	domain.StatusResolved:   {},
}

func isValidTransition(current, next domain.ComplaintStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// LifecycleService owns every mutation of an existing complaint: upvotes,
// status transitions, and the verification-gated resolve.
type LifecycleService struct {
	complaints repository.ComplaintRepository
	cache      *repository.FeedCache
	gate       *verify.Gate
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.IntakeConfig
}

// LifecycleDependencies bundles collaborators for the lifecycle service.
type LifecycleDependencies struct {
	ComplaintRepo repository.ComplaintRepository
	FeedCache     *repository.FeedCache
	Gate          *verify.Gate
	Dispatcher    events.Dispatcher
	Logger        *zap.Logger
}

// NewLifecycleService constructs the service.
func NewLifecycleService(cfg config.IntakeConfig, deps LifecycleDependencies) *LifecycleService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleService{
		complaints: deps.ComplaintRepo,
		cache:      deps.FeedCache,
		gate:       deps.Gate,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// Get fetches a complaint.
func (s *LifecycleService) Get(ctx context.Context, id string) (*domain.Complaint, error) {
	complaint, err := s.complaints.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": id})
		}
		return nil, err
	}
	return complaint, nil
}

// Feed returns the triage priority view, via the cache when the unfiltered
// feed was requested recently.
func (s *LifecycleService) Feed(ctx context.Context, status *domain.ComplaintStatus) ([]domain.Complaint, error) {
	if status == nil {
		if cached, ok := s.cache.Get(ctx); ok {
			return cached, nil
		}
	}
	feed, err := s.complaints.ListFeed(ctx, status)
	if err != nil {
		return nil, err
	}
	if status == nil {
		s.cache.Set(ctx, feed)
	}
	return feed, nil
}

// ListMine returns the session owner's complaints, newest first.
func (s *LifecycleService) ListMine(ctx context.Context, session domain.Session) ([]domain.Complaint, error) {
	return s.complaints.ListByOwner(ctx, session.UserID)
}

// Stats returns complaint counts per status.
func (s *LifecycleService) Stats(ctx context.Context) (map[domain.ComplaintStatus]int, error) {
	return s.complaints.CountByStatus(ctx)
}

// Upvote records at-most-once support for a complaint. A repeated vote from
// the same user is a no-op that still succeeds. Transaction conflicts are
// retried a bounded number of times before surfacing as CONFLICT.
func (s *LifecycleService) Upvote(ctx context.Context, session domain.Session, complaintID string) (*domain.Complaint, error) {
	retries := s.cfg.UpvoteMaxRetries
	if retries < 1 {
		retries = 1
	}

	var complaint *domain.Complaint
	var err error
	for attempt := 0; attempt < retries; attempt++ {
		complaint, err = s.complaints.Upvote(ctx, complaintID, session.UserID)
		if err == nil || errors.Is(err, repository.ErrAlreadySupported) {
			break
		}
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": complaintID})
		}
		if !errors.Is(err, repository.ErrUpvoteConflict) {
			return nil, err
		}
		s.logger.Debug("upvote conflict, retrying",
			zap.String("complaint_id", complaintID),
			zap.Int("attempt", attempt+1))
	}
	if errors.Is(err, repository.ErrUpvoteConflict) {
		return nil, apperrors.NewConflict("upvote could not be committed, retry", map[string]any{"id": complaintID})
	}
	if err != nil && !errors.Is(err, repository.ErrAlreadySupported) {
		return nil, err
	}

	if cacheErr := s.cache.Invalidate(ctx); cacheErr != nil {
		s.logger.Warn("feed cache invalidation failed", zap.Error(cacheErr))
	}

	if !errors.Is(err, repository.ErrAlreadySupported) {
		s.publish(ctx, events.Event{
			Type:        events.EventComplaintUpvoted,
			ComplaintID: complaint.ID,
			Actor:       events.Actor{UserID: session.UserID, IsAdmin: session.IsAdmin},
			Payload:     events.ComplaintUpvotedPayload{SupportCount: complaint.SupportCount},
		})
	}
	return complaint, nil
}

// UpdateStatus applies an admin-driven workflow transition. Transitions into
// Resolved must go through Resolve instead so the verification gate is
// honored.
func (s *LifecycleService) UpdateStatus(ctx context.Context, session domain.Session, complaintID string, next domain.ComplaintStatus) (*domain.Complaint, error) {
	if !session.IsAdmin {
		return nil, apperrors.NewForbidden("admin required for status transitions")
	}
	if next == domain.StatusResolved {
		return nil, apperrors.NewForbidden("resolution requires proof-of-repair verification")
	}
	return s.transition(ctx, session, complaintID, next)
}

// BeginVerification opens a proof-of-repair gate session for the complaint.
func (s *LifecycleService) BeginVerification(ctx context.Context, session domain.Session, complaintID, proofImageURL string) (verify.Snapshot, error) {
	if !session.IsAdmin {
		return verify.Snapshot{}, apperrors.NewForbidden("admin required for verification")
	}
	if proofImageURL == "" {
		return verify.Snapshot{}, apperrors.NewValidationError("proof image required", nil)
	}
	complaint, err := s.Get(ctx, complaintID)
	if err != nil {
		return verify.Snapshot{}, err
	}
	if complaint.Status == domain.StatusResolved {
		return verify.Snapshot{}, apperrors.NewConflict("complaint already resolved", nil)
	}
	return s.gate.Begin(complaintID, session.UserID, complaint.Category, proofImageURL), nil
}

// VerificationProgress reports the gate session state.
func (s *LifecycleService) VerificationProgress(ctx context.Context, session domain.Session, complaintID string) (verify.Snapshot, error) {
	if !session.IsAdmin {
		return verify.Snapshot{}, apperrors.NewForbidden("admin required for verification")
	}
	snap, ok := s.gate.Progress(complaintID, session.UserID)
	if !ok {
		return verify.Snapshot{}, apperrors.NewNotFound("verification session", map[string]any{"complaint_id": complaintID})
	}
	return snap, nil
}

// CancelVerification discards the gate session without touching the
// complaint.
func (s *LifecycleService) CancelVerification(ctx context.Context, session domain.Session, complaintID string) error {
	if !session.IsAdmin {
		return apperrors.NewForbidden("admin required for verification")
	}
	s.gate.Cancel(complaintID, session.UserID)
	return nil
}

// Resolve consumes a Verified gate session and moves the complaint to
// Resolved. Without a Verified session the transition is refused.
func (s *LifecycleService) Resolve(ctx context.Context, session domain.Session, complaintID string) (*domain.Complaint, error) {
	if !session.IsAdmin {
		return nil, apperrors.NewForbidden("admin required for resolution")
	}
	current, err := s.Get(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(current.Status, domain.StatusResolved) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": current.Status,
			"to":   domain.StatusResolved,
		})
	}
	snap, ok := s.gate.Consume(complaintID, session.UserID)
	if !ok {
		return nil, apperrors.NewForbidden("verification gate has not passed for this complaint")
	}

	complaint, err := s.transition(ctx, session, complaintID, domain.StatusResolved)
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type:        events.EventComplaintResolved,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{UserID: session.UserID, IsAdmin: session.IsAdmin},
		Payload: events.ComplaintResolvedPayload{
			Confidence: snap.Confidence,
			Analysis:   snap.Analysis,
		},
	})
	return complaint, nil
}

func (s *LifecycleService) transition(ctx context.Context, session domain.Session, complaintID string, next domain.ComplaintStatus) (*domain.Complaint, error) {
	complaint, err := s.Get(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(complaint.Status, next) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": complaint.Status,
			"to":   next,
		})
	}

	oldStatus := complaint.Status
	if err := s.complaints.UpdateStatus(ctx, complaintID, next); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("complaint", map[string]any{"id": complaintID})
		}
		return nil, err
	}
	complaint.Status = next

	if cacheErr := s.cache.Invalidate(ctx); cacheErr != nil {
		s.logger.Warn("feed cache invalidation failed", zap.Error(cacheErr))
	}

	s.publish(ctx, events.Event{
		Type:        events.EventComplaintStatusChanged,
		ComplaintID: complaint.ID,
		Actor:       events.Actor{UserID: session.UserID, IsAdmin: session.IsAdmin},
		Payload: events.ComplaintStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: next,
		},
	})
	return complaint, nil
}

func (s *LifecycleService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(event.Type)), zap.Error(err))
	}
}

package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/civiclens/report-service/internal/domain"
	"github.com/civiclens/report-service/internal/events"
	"github.com/civiclens/report-service/internal/repository"
	"github.com/civiclens/report-service/internal/verify"
	apperrors "github.com/civiclens/report-service/pkg/util"
)

var (
	citizen = domain.Session{UserID: "u1"}
	admin   = domain.Session{UserID: "a1", IsAdmin: true}
)

type lifecycleFixture struct {
	svc        *LifecycleService
	repo       *fakeComplaintRepo
	gate       *verify.Gate
	dispatcher *recordingDispatcher
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	t.Helper()
	repo := newFakeComplaintRepo()
	dispatcher := &recordingDispatcher{}
	gate := verify.NewGate(verify.Options{Tick: time.Millisecond, Step: 100})
	t.Cleanup(gate.Shutdown)

	svc := NewLifecycleService(testIntakeConfig(), LifecycleDependencies{
		ComplaintRepo: repo,
		FeedCache:     repository.NewFeedCache(nil, 0),
		Gate:          gate,
		Dispatcher:    dispatcher,
	})
	return &lifecycleFixture{svc: svc, repo: repo, gate: gate, dispatcher: dispatcher}
}

func (f *lifecycleFixture) seed(t *testing.T, status domain.ComplaintStatus) *domain.Complaint {
	t.Helper()
	c := &domain.Complaint{
		OwnerID:    "u1",
		Category:   "Pothole",
		Department: "Municipal Roads",
		Urgency:    domain.UrgencyHigh,
		Status:     status,
		Location:   domain.Location{Lat: quietLat, Lng: quietLng},
		CreatedAt:  time.Now().UnixMilli(),
		Supporters: []string{},
	}
	if err := f.repo.Create(context.Background(), c); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return c
}

// passGate runs a verification session for the complaint to completion.
func (f *lifecycleFixture) passGate(t *testing.T, complaintID string) {
	t.Helper()
	if _, err := f.svc.BeginVerification(context.Background(), admin, complaintID, "https://img.example/proof.jpg"); err != nil {
		t.Fatalf("begin verification: %v", err)
	}
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		snap, err := f.svc.VerificationProgress(context.Background(), admin, complaintID)
		if err != nil {
			t.Fatalf("progress: %v", err)
		}
		if snap.Status == verify.StatusVerified {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal("verification never completed")
}

func TestUpvoteIsIdempotent(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusPending)
	ctx := context.Background()

	first, err := f.svc.Upvote(ctx, citizen, c.ID)
	if err != nil {
		t.Fatalf("first upvote: %v", err)
	}
	if first.SupportCount != 1 {
		t.Fatalf("support count = %d, want 1", first.SupportCount)
	}

	second, err := f.svc.Upvote(ctx, citizen, c.ID)
	if err != nil {
		t.Fatalf("repeat upvote should succeed quietly: %v", err)
	}
	if second.SupportCount != 1 {
		t.Fatalf("repeat upvote changed count to %d", second.SupportCount)
	}

	if got := f.dispatcher.byType(events.EventComplaintUpvoted); len(got) != 1 {
		t.Fatalf("upvote events = %d, want 1", len(got))
	}
}

func TestUpvoteConcurrentVotersAllCount(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusPending)
	ctx := context.Background()

	const voters = 8
	var wg sync.WaitGroup
	errs := make(chan error, voters)
	for i := 0; i < voters; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			session := domain.Session{UserID: string(rune('A' + n))}
			_, err := f.svc.Upvote(ctx, session, c.ID)
			errs <- err
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent upvote: %v", err)
		}
	}

	got, err := f.svc.Get(ctx, c.ID)
	if err != nil {
		t.Fatal(err)
	}
	if got.SupportCount != voters {
		t.Fatalf("support count = %d, want %d", got.SupportCount, voters)
	}
}

func TestUpvoteRetriesTransientConflicts(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusPending)
	f.repo.upvoteErrs = []error{repository.ErrUpvoteConflict, repository.ErrUpvoteConflict}

	got, err := f.svc.Upvote(context.Background(), citizen, c.ID)
	if err != nil {
		t.Fatalf("upvote after retries: %v", err)
	}
	if got.SupportCount != 1 {
		t.Fatalf("support count = %d, want 1", got.SupportCount)
	}
}

func TestUpvoteGivesUpAfterMaxRetries(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusPending)
	f.repo.upvoteErrs = []error{
		repository.ErrUpvoteConflict,
		repository.ErrUpvoteConflict,
		repository.ErrUpvoteConflict,
	}

	_, err := f.svc.Upvote(context.Background(), citizen, c.ID)
	if !apperrors.IsCode(err, "CONFLICT") {
		t.Fatalf("got %v, want CONFLICT after retries exhausted", err)
	}
}

func TestUpvoteUnknownComplaint(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	_, err := f.svc.Upvote(context.Background(), citizen, "missing")
	if !apperrors.IsCode(err, "NOT_FOUND") {
		t.Fatalf("got %v, want NOT_FOUND", err)
	}
}

func TestUpdateStatusRequiresAdmin(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusPending)

	_, err := f.svc.UpdateStatus(context.Background(), citizen, c.ID, domain.StatusInProgress)
	if !apperrors.IsCode(err, "FORBIDDEN") {
		t.Fatalf("got %v, want FORBIDDEN for non-admin", err)
	}
}

func TestUpdateStatusRefusesDirectResolve(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusInProgress)

	_, err := f.svc.UpdateStatus(context.Background(), admin, c.ID, domain.StatusResolved)
	if !apperrors.IsCode(err, "FORBIDDEN") {
		t.Fatalf("got %v, want FORBIDDEN without verification", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	ctx := context.Background()

	c := f.seed(t, domain.StatusPending)
	got, err := f.svc.UpdateStatus(ctx, admin, c.ID, domain.StatusInProgress)
	if err != nil {
		t.Fatalf("pending -> in progress: %v", err)
	}
	if got.Status != domain.StatusInProgress {
		t.Fatalf("status = %s, want In Progress", got.Status)
	}
	if evs := f.dispatcher.byType(events.EventComplaintStatusChanged); len(evs) != 1 {
		t.Fatalf("status events = %d, want 1", len(evs))
	}

	// Backwards moves are refused.
	if _, err := f.svc.UpdateStatus(ctx, admin, c.ID, domain.StatusPending); !apperrors.IsCode(err, "CONFLICT") {
		t.Fatalf("got %v, want CONFLICT for backward move", err)
	}

	resolved := f.seed(t, domain.StatusResolved)
	if _, err := f.svc.UpdateStatus(ctx, admin, resolved.ID, domain.StatusInProgress); !apperrors.IsCode(err, "CONFLICT") {
		t.Fatalf("got %v, want CONFLICT, Resolved is terminal", err)
	}
}

func TestResolveRequiresVerifiedGate(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusInProgress)

	_, err := f.svc.Resolve(context.Background(), admin, c.ID)
	if !apperrors.IsCode(err, "FORBIDDEN") {
		t.Fatalf("got %v, want FORBIDDEN without a verified session", err)
	}
}

func TestResolveAfterVerification(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusInProgress)
	ctx := context.Background()

	f.passGate(t, c.ID)

	got, err := f.svc.Resolve(ctx, admin, c.ID)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.Status != domain.StatusResolved {
		t.Fatalf("status = %s, want Resolved", got.Status)
	}

	resolvedEvents := f.dispatcher.byType(events.EventComplaintResolved)
	if len(resolvedEvents) != 1 {
		t.Fatalf("resolved events = %d, want 1", len(resolvedEvents))
	}
	payload, ok := resolvedEvents[0].Payload.(events.ComplaintResolvedPayload)
	if !ok {
		t.Fatalf("unexpected payload %T", resolvedEvents[0].Payload)
	}
	if payload.Confidence < 92 || payload.Confidence > 99 {
		t.Fatalf("confidence = %d, want within [92,99]", payload.Confidence)
	}

	// The session is single use.
	if _, err := f.svc.Resolve(ctx, admin, c.ID); !apperrors.IsCode(err, "CONFLICT") {
		t.Fatalf("got %v, want CONFLICT resolving twice", err)
	}
}

func TestResolveRequiresAdmin(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusInProgress)

	_, err := f.svc.Resolve(context.Background(), citizen, c.ID)
	if !apperrors.IsCode(err, "FORBIDDEN") {
		t.Fatalf("got %v, want FORBIDDEN", err)
	}
}

func TestCancelVerificationDiscardsSession(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	c := f.seed(t, domain.StatusInProgress)
	ctx := context.Background()

	f.passGate(t, c.ID)
	if err := f.svc.CancelVerification(ctx, admin, c.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := f.svc.Resolve(ctx, admin, c.ID); !apperrors.IsCode(err, "FORBIDDEN") {
		t.Fatalf("got %v, want FORBIDDEN after cancel", err)
	}
}

func TestBeginVerificationChecks(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	ctx := context.Background()

	if _, err := f.svc.BeginVerification(ctx, citizen, "c-1", "proof"); !apperrors.IsCode(err, "FORBIDDEN") {
		t.Fatalf("got %v, want FORBIDDEN for non-admin", err)
	}
	if _, err := f.svc.BeginVerification(ctx, admin, "missing", "proof"); !apperrors.IsCode(err, "NOT_FOUND") {
		t.Fatalf("got %v, want NOT_FOUND", err)
	}

	resolved := f.seed(t, domain.StatusResolved)
	if _, err := f.svc.BeginVerification(ctx, admin, resolved.ID, "proof"); !apperrors.IsCode(err, "CONFLICT") {
		t.Fatalf("got %v, want CONFLICT for already resolved", err)
	}

	open := f.seed(t, domain.StatusInProgress)
	if _, err := f.svc.BeginVerification(ctx, admin, open.ID, ""); !apperrors.IsCode(err, "VALIDATION_FAILED") {
		t.Fatalf("got %v, want VALIDATION_FAILED without proof", err)
	}
}

func TestFeedOrdersBySupportThenRecency(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	ctx := context.Background()

	f.seed(t, domain.StatusPending)
	f.seed(t, domain.StatusPending)
	popular := f.seed(t, domain.StatusPending)

	// Third complaint gets two votes, the rest none.
	if _, err := f.svc.Upvote(ctx, domain.Session{UserID: "v1"}, popular.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := f.svc.Upvote(ctx, domain.Session{UserID: "v2"}, popular.ID); err != nil {
		t.Fatal(err)
	}

	feed, err := f.svc.Feed(ctx, nil)
	if err != nil {
		t.Fatalf("feed: %v", err)
	}
	if len(feed) != 3 {
		t.Fatalf("feed size = %d, want 3", len(feed))
	}
	if feed[0].ID != popular.ID {
		t.Fatalf("feed head = %s, want the most supported %s", feed[0].ID, popular.ID)
	}
}

func TestStatsCountsPerStatus(t *testing.T) {
	t.Parallel()
	f := newLifecycleFixture(t)
	f.seed(t, domain.StatusPending)
	f.seed(t, domain.StatusPending)
	f.seed(t, domain.StatusInProgress)
	f.seed(t, domain.StatusResolved)

	counts, err := f.svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if counts[domain.StatusPending] != 2 || counts[domain.StatusInProgress] != 1 || counts[domain.StatusResolved] != 1 {
		t.Fatalf("counts = %v", counts)
	}
}

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/civiclens/report-service/internal/config"
	"github.com/civiclens/report-service/internal/domain"
	"github.com/civiclens/report-service/internal/events"
	"github.com/civiclens/report-service/internal/repository"
	apperrors "github.com/civiclens/report-service/pkg/util"
)

// quietStreet is outside every risk zone in the catalog.
const (
	quietLat = 24.5760
	quietLng = 73.6800
)

func testIntakeConfig() config.IntakeConfig {
	return config.IntakeConfig{
		DuplicateThresholdDeg: 0.0002,
		UpvoteMaxRetries:      3,
	}
}

func newIntakeFixture(repo *fakeComplaintRepo) (*IntakeService, *recordingDispatcher) {
	dispatcher := &recordingDispatcher{}
	svc := NewIntakeService(testIntakeConfig(), IntakeDependencies{
		ComplaintRepo: repo,
		FeedCache:     repository.NewFeedCache(nil, 0),
		Dispatcher:    dispatcher,
	})
	return svc, dispatcher
}

func submitInput() SubmitInput {
	return SubmitInput{
		Description: "Huge pothole near the market entrance",
		ImageURL:    "https://img.example/p.jpg",
		Lat:         quietLat,
		Lng:         quietLng,
	}
}

func TestSubmitValidation(t *testing.T) {
	t.Parallel()
	svc, _ := newIntakeFixture(newFakeComplaintRepo())
	session := domain.Session{UserID: "u1"}

	cases := []struct {
		name   string
		mutate func(*SubmitInput)
	}{
		{"empty description", func(in *SubmitInput) { in.Description = "   " }},
		{"missing image", func(in *SubmitInput) { in.ImageURL = "" }},
		{"missing location", func(in *SubmitInput) { in.Lat, in.Lng = 0, 0 }},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			in := submitInput()
			tc.mutate(&in)
			_, err := svc.Submit(context.Background(), session, in)
			if !apperrors.IsCode(err, "VALIDATION_FAILED") {
				t.Fatalf("got %v, want VALIDATION_FAILED", err)
			}
		})
	}
}

func TestSubmitClassifiesAndRoutes(t *testing.T) {
	t.Parallel()
	repo := newFakeComplaintRepo()
	svc, dispatcher := newIntakeFixture(repo)

	outcome, err := svc.Submit(context.Background(), domain.Session{UserID: "u1"}, submitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	c := outcome.Complaint
	if c == nil {
		t.Fatal("expected a created complaint")
	}
	if c.Category != "Pothole" || c.Department != "Municipal Roads" {
		t.Fatalf("routed to %s/%s, want Pothole/Municipal Roads", c.Category, c.Department)
	}
	if c.Urgency != domain.UrgencyHigh {
		t.Fatalf("urgency = %s, want High", c.Urgency)
	}
	if c.Status != domain.StatusPending {
		t.Fatalf("status = %s, want Pending", c.Status)
	}
	if c.Risk.Level != domain.RiskLevelNormal {
		t.Fatalf("risk = %s, want NORMAL away from all zones", c.Risk.Level)
	}
	if c.SupportCount != 0 || len(c.Supporters) != 0 {
		t.Fatalf("new complaint should start without supporters, got %d", c.SupportCount)
	}
	if c.OwnerID != "u1" {
		t.Fatalf("owner = %s, want u1", c.OwnerID)
	}

	created := dispatcher.byType(events.EventComplaintCreated)
	if len(created) != 1 {
		t.Fatalf("created events = %d, want 1", len(created))
	}
}

func TestSubmitCriticalZoneOverridesUrgency(t *testing.T) {
	t.Parallel()
	repo := newFakeComplaintRepo()
	svc, _ := newIntakeFixture(repo)

	in := submitInput()
	in.Description = "Garbage pile rotting on the corner" // classifier says Medium
	in.Lat, in.Lng = 24.5902, 73.6915                     // inside a hospital catchment

	outcome, err := svc.Submit(context.Background(), domain.Session{UserID: "u1"}, in)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	c := outcome.Complaint
	if c.Risk.Level != domain.RiskLevelCritical {
		t.Fatalf("risk = %s, want CRITICAL", c.Risk.Level)
	}
	if c.Urgency != domain.UrgencyCritical {
		t.Fatalf("urgency = %s, want Critical override", c.Urgency)
	}
	if c.Risk.Score != 100 {
		t.Fatalf("risk score = %d, want 100", c.Risk.Score)
	}
}

func TestSubmitDuplicateOffer(t *testing.T) {
	t.Parallel()
	repo := newFakeComplaintRepo()
	svc, dispatcher := newIntakeFixture(repo)
	session := domain.Session{UserID: "u1"}

	first, err := svc.Submit(context.Background(), session, submitInput())
	if err != nil {
		t.Fatalf("first submit: %v", err)
	}

	// Second report ~11 m away from the first.
	in := submitInput()
	in.Lat += 0.0001
	outcome, err := svc.Submit(context.Background(), domain.Session{UserID: "u2"}, in)
	if err != nil {
		t.Fatalf("second submit: %v", err)
	}
	if outcome.Complaint != nil {
		t.Fatal("expected duplicate offer, not a new complaint")
	}
	if outcome.Duplicate == nil || outcome.Duplicate.ID != first.Complaint.ID {
		t.Fatalf("duplicate = %+v, want offer of %s", outcome.Duplicate, first.Complaint.ID)
	}
	if got := dispatcher.byType(events.EventDuplicateDetected); len(got) != 1 {
		t.Fatalf("duplicate events = %d, want 1", len(got))
	}

	// Force creates anyway.
	in.Force = true
	outcome, err = svc.Submit(context.Background(), domain.Session{UserID: "u2"}, in)
	if err != nil {
		t.Fatalf("forced submit: %v", err)
	}
	if outcome.Complaint == nil {
		t.Fatal("forced submit should create a complaint")
	}
}

func TestSubmitDuplicatePicksClosest(t *testing.T) {
	t.Parallel()
	repo := newFakeComplaintRepo()
	svc, _ := newIntakeFixture(repo)
	ctx := context.Background()

	near := &domain.Complaint{OwnerID: "u1", Status: domain.StatusPending,
		Location: domain.Location{Lat: quietLat + 0.00005, Lng: quietLng}}
	far := &domain.Complaint{OwnerID: "u1", Status: domain.StatusPending,
		Location: domain.Location{Lat: quietLat + 0.00015, Lng: quietLng}}
	if err := repo.Create(ctx, far); err != nil {
		t.Fatal(err)
	}
	if err := repo.Create(ctx, near); err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.Submit(ctx, domain.Session{UserID: "u2"}, submitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Duplicate == nil || outcome.Duplicate.ID != near.ID {
		t.Fatalf("duplicate = %+v, want the nearer complaint %s", outcome.Duplicate, near.ID)
	}
}

func TestSubmitIgnoresNonPendingForDuplicates(t *testing.T) {
	t.Parallel()
	repo := newFakeComplaintRepo()
	svc, _ := newIntakeFixture(repo)
	ctx := context.Background()

	resolved := &domain.Complaint{OwnerID: "u1", Status: domain.StatusResolved,
		Location: domain.Location{Lat: quietLat, Lng: quietLng}}
	if err := repo.Create(ctx, resolved); err != nil {
		t.Fatal(err)
	}

	outcome, err := svc.Submit(ctx, domain.Session{UserID: "u2"}, submitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Complaint == nil {
		t.Fatal("resolved complaint at the same spot must not block a new one")
	}
}

func TestSubmitDegradedDuplicateCheck(t *testing.T) {
	t.Parallel()
	repo := newFakeComplaintRepo()
	repo.listErr = errors.New("connection reset")
	svc, _ := newIntakeFixture(repo)

	outcome, err := svc.Submit(context.Background(), domain.Session{UserID: "u1"}, submitInput())
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if outcome.Complaint == nil {
		t.Fatal("a failed duplicate query must not block intake")
	}
	if !outcome.DuplicateCheckDegraded {
		t.Fatal("degraded duplicate check should be reported")
	}
}

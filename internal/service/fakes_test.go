package service

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jackc/pgx/v5"

	"github.com/civiclens/report-service/internal/domain"
	"github.com/civiclens/report-service/internal/events"
	"github.com/civiclens/report-service/internal/repository"
)

// fakeComplaintRepo is an in-memory ComplaintRepository. The mutex stands in
// for the row lock the real implementation takes, so concurrent upvotes
// serialize the same way.
type fakeComplaintRepo struct {
	mu         sync.Mutex
	complaints map[string]*domain.Complaint
	seq        int

	listErr    error
	upvoteErrs []error // consumed one per Upvote call before the real logic runs
}

func newFakeComplaintRepo() *fakeComplaintRepo {
	return &fakeComplaintRepo{complaints: make(map[string]*domain.Complaint)}
}

func (f *fakeComplaintRepo) Create(ctx context.Context, c *domain.Complaint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	if c.ID == "" {
		c.ID = fmt.Sprintf("c-%d", f.seq)
	}
	clone := *c
	f.complaints[c.ID] = &clone
	return nil
}

func (f *fakeComplaintRepo) GetByID(ctx context.Context, id string) (*domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.complaints[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *c
	clone.Supporters = append([]string(nil), c.Supporters...)
	return &clone, nil
}

func (f *fakeComplaintRepo) UpdateStatus(ctx context.Context, id string, status domain.ComplaintStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.complaints[id]
	if !ok {
		return pgx.ErrNoRows
	}
	c.Status = status
	return nil
}

func (f *fakeComplaintRepo) ListByStatus(ctx context.Context, status domain.ComplaintStatus) ([]domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Complaint
	for _, c := range f.complaints {
		if c.Status == status {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeComplaintRepo) ListByOwner(ctx context.Context, ownerID string) ([]domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Complaint
	for _, c := range f.complaints {
		if c.OwnerID == ownerID {
			out = append(out, *c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt > out[j].CreatedAt })
	return out, nil
}

func (f *fakeComplaintRepo) ListFeed(ctx context.Context, status *domain.ComplaintStatus) ([]domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Complaint
	for _, c := range f.complaints {
		if status != nil && c.Status != *status {
			continue
		}
		out = append(out, *c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SupportCount != out[j].SupportCount {
			return out[i].SupportCount > out[j].SupportCount
		}
		return out[i].CreatedAt > out[j].CreatedAt
	})
	return out, nil
}

func (f *fakeComplaintRepo) CountByStatus(ctx context.Context) (map[domain.ComplaintStatus]int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	counts := make(map[domain.ComplaintStatus]int)
	for _, c := range f.complaints {
		counts[c.Status]++
	}
	return counts, nil
}

func (f *fakeComplaintRepo) Upvote(ctx context.Context, id, userID string) (*domain.Complaint, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.upvoteErrs) > 0 {
		err := f.upvoteErrs[0]
		f.upvoteErrs = f.upvoteErrs[1:]
		if err != nil {
			return nil, err
		}
	}
	c, ok := f.complaints[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	for _, s := range c.Supporters {
		if s == userID {
			clone := *c
			clone.Supporters = append([]string(nil), c.Supporters...)
			return &clone, repository.ErrAlreadySupported
		}
	}
	c.Supporters = append(c.Supporters, userID)
	c.SupportCount++
	clone := *c
	clone.Supporters = append([]string(nil), c.Supporters...)
	return &clone, nil
}

// recordingDispatcher captures published events for assertions.
type recordingDispatcher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingDispatcher) Publish(ctx context.Context, event events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
	return nil
}

func (r *recordingDispatcher) Subscribe(eventType events.EventType, handler events.EventHandler) {}

func (r *recordingDispatcher) byType(t events.EventType) []events.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.Event
	for _, e := range r.events {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

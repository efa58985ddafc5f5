package service

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/jackc/pgx/v5"

	"github.com/civiclens/report-service/internal/config"
	"github.com/civiclens/report-service/internal/domain"
	apperrors "github.com/civiclens/report-service/pkg/util"
)

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[string]*domain.User // keyed by email
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*domain.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.seq++
	user.ID = fmt.Sprintf("user-%d", f.seq)
	clone := *user
	f.users[user.Email] = &clone
	return nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	existing, ok := f.users[user.Email]
	if !ok {
		return pgx.ErrNoRows
	}
	*existing = *user
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	clone := *u
	return &clone, nil
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		JWTSecret:             "test-secret",
		AccessTokenTTLMinutes: 5,
		BcryptCost:            4, // bcrypt.MinCost, keeps hashing fast in tests
		AdminEmails:           "warden@city.gov, backup@city.gov",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	user, token, _, err := svc.Register(ctx, "Asha", "asha@example.com", "hunter2!")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.IsAdmin {
		t.Fatal("ordinary email must not become admin")
	}
	if token == "" {
		t.Fatal("expected a session token")
	}

	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if claims.SubjectID != user.ID || claims.IsAdmin {
		t.Fatalf("claims = %+v, want subject %s without admin", claims, user.ID)
	}

	logged, _, _, err := svc.Login(ctx, "Asha@Example.com", "hunter2!")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if logged.ID != user.ID {
		t.Fatalf("login returned %s, want %s", logged.ID, user.ID)
	}

	if _, _, _, err := svc.Login(ctx, "asha@example.com", "wrong"); !apperrors.IsCode(err, "UNAUTHORIZED") {
		t.Fatalf("got %v, want UNAUTHORIZED for bad password", err)
	}
	if _, _, _, err := svc.Login(ctx, "stranger@example.com", "x"); !apperrors.IsCode(err, "UNAUTHORIZED") {
		t.Fatalf("got %v, want UNAUTHORIZED for unknown email", err)
	}
}

func TestRegisterAdminEmailGetsAdminFlag(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())

	user, token, _, err := svc.Register(context.Background(), "Warden", "Warden@City.gov", "hunter2!")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if !user.IsAdmin {
		t.Fatal("listed admin email should get the admin flag")
	}
	claims, err := svc.TokenManager().ParseToken(token)
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !claims.IsAdmin {
		t.Fatal("admin flag should be carried in the token")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	ctx := context.Background()

	if _, _, _, err := svc.Register(ctx, "Asha", "asha@example.com", "hunter2!"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, _, _, err := svc.Register(ctx, "Asha 2", "asha@example.com", "other-password"); !apperrors.IsCode(err, "CONFLICT") {
		t.Fatalf("got %v, want CONFLICT", err)
	}
}

func TestRegisterShortPassword(t *testing.T) {
	t.Parallel()
	svc := NewAuthService(testAuthConfig(), newFakeUserRepo())
	if _, _, _, err := svc.Register(context.Background(), "Asha", "asha@example.com", "short"); !apperrors.IsCode(err, "VALIDATION_FAILED") {
		t.Fatalf("got %v, want VALIDATION_FAILED for short password", err)
	}
}

func TestLoginSuspendedAccount(t *testing.T) {
	t.Parallel()
	repo := newFakeUserRepo()
	svc := NewAuthService(testAuthConfig(), repo)
	ctx := context.Background()

	user, _, _, err := svc.Register(ctx, "Asha", "asha@example.com", "hunter2!")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	user.Status = domain.UserStatusSuspended
	if err := repo.Update(ctx, user); err != nil {
		t.Fatalf("suspend: %v", err)
	}

	if _, _, _, err := svc.Login(ctx, "asha@example.com", "hunter2!"); !apperrors.IsCode(err, "FORBIDDEN") {
		t.Fatalf("got %v, want FORBIDDEN for suspended account", err)
	}
}

package user

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"
)

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[int64]*User
	byMail map[string]int64
	nextID int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		users:  make(map[int64]*User),
		byMail: make(map[string]int64),
		nextID: 1,
	}
}

func (r *fakeUserRepo) Create(ctx context.Context, u *User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now()
	stored := *u
	r.users[u.ID] = &stored
	r.byMail[u.Email] = u.ID
	return nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byMail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	u := *r.users[id]
	return &u, nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id int64) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) List(ctx context.Context) ([]User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, *u)
	}
	return res, nil
}

func (r *fakeUserRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.Role = role
	return nil
}

func (r *fakeUserRepo) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.IsActive = false
	return nil
}

func newTestService() (*Service, *fakeUserRepo) {
	repo := newFakeUserRepo()
	svc := NewService(repo)
	svc.cost = bcrypt.MinCost
	return svc, repo
}

func TestRegisterLoginDeactivate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	u, err := svc.Register(ctx, "owner@example.com", "s3cret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != RoleUser || !u.IsActive {
		t.Fatalf("expected active user role, got %+v", u)
	}
	if u.PasswordHash == "s3cret" || u.PasswordHash == "" {
		t.Fatalf("password should be hashed")
	}

	if _, err := svc.Login(ctx, "owner@example.com", "s3cret"); err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if _, err := svc.Register(ctx, "owner@example.com", "another"); !errors.Is(err, ErrEmailTaken) {
		t.Fatalf("expected email taken error")
	}
	if _, err := svc.Register(ctx, "", "x"); !errors.Is(err, ErrMissingFields) {
		t.Fatalf("expected missing fields error")
	}
	if _, err := svc.Login(ctx, "owner@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials error")
	}
	if _, err := svc.Login(ctx, "nobody@example.com", "s3cret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("unknown email should look like bad credentials")
	}

	if err := svc.Deactivate(ctx, u.ID); err != nil {
		t.Fatalf("deactivate: %v", err)
	}
	if _, err := svc.Login(ctx, "owner@example.com", "s3cret"); !errors.Is(err, ErrInactiveUser) {
		t.Fatalf("expected inactive user error")
	}
}

func TestUpdateRole(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	u, _ := svc.Register(ctx, "a@example.com", "pw")
	if err := svc.UpdateRole(ctx, u.ID, "root"); !errors.Is(err, ErrInvalidRole) {
		t.Fatalf("expected invalid role, got %v", err)
	}
	if err := svc.UpdateRole(ctx, u.ID, RoleAdmin); err != nil {
		t.Fatalf("update role: %v", err)
	}
	if repo.users[u.ID].Role != RoleAdmin {
		t.Fatalf("role not stored")
	}
	if err := svc.UpdateRole(ctx, 404, RoleUser); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("expected no rows for unknown user, got %v", err)
	}
}

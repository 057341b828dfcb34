// Package memory holds repositories used when the service runs without a
// database (DB_DRIVER=memory) and in HTTP tests.
package memory

import (
	"context"
	"database/sql"
	"sort"
	"sync"
	"time"

	"voting-poll/internal/domain/user"
)

type UserRepo struct {
	mu     sync.Mutex
	users  map[int64]*user.User
	byMail map[string]int64
	nextID int64
}

func NewUserRepo() *UserRepo {
	return &UserRepo{
		users:  make(map[int64]*user.User),
		byMail: make(map[string]int64),
		nextID: 1,
	}
}

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byMail[u.Email]; ok {
		return user.ErrEmailTaken
	}
	u.ID = r.nextID
	r.nextID++
	u.CreatedAt = time.Now().UTC()
	stored := *u
	r.users[u.ID] = &stored
	r.byMail[u.Email] = u.ID
	return nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	id, ok := r.byMail[email]
	if !ok {
		return nil, sql.ErrNoRows
	}
	u := *r.users[id]
	return &u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	res := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		res = append(res, *u)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (r *UserRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.Role = role
	return nil
}

func (r *UserRepo) Deactivate(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return sql.ErrNoRows
	}
	u.IsActive = false
	return nil
}

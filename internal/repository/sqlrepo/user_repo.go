package sqlrepo

import (
	"context"
	"database/sql"
	"time"

	"voting-poll/internal/domain/user"
)

type UserRepo struct {
	db *sql.DB
}

func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

func (r *UserRepo) Create(ctx context.Context, u *user.User) error {
	u.CreatedAt = time.Now().UTC()
	query := `
        INSERT INTO users (email, password_hash, role, is_active, created_at)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id
    `
	err := r.db.QueryRowContext(ctx, query, u.Email, u.PasswordHash, u.Role, u.IsActive, u.CreatedAt).
		Scan(&u.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return user.ErrEmailTaken
		}
		return err
	}
	return nil
}

const selectUser = `
        SELECT id, email, password_hash, role, is_active, created_at
        FROM users
    `

func scanUser(row interface{ Scan(...any) error }) (*user.User, error) {
	u := &user.User{}
	if err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Role, &u.IsActive, &u.CreatedAt); err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+" WHERE email = $1", email))
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*user.User, error) {
	return scanUser(r.db.QueryRowContext(ctx, selectUser+" WHERE id = $1", id))
}

func (r *UserRepo) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.QueryContext(ctx, selectUser+" ORDER BY id")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	usersList := []user.User{}
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		usersList = append(usersList, *u)
	}
	return usersList, rows.Err()
}

func (r *UserRepo) UpdateRole(ctx context.Context, id int64, role string) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET role = $1 WHERE id = $2`, role, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *UserRepo) Deactivate(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `UPDATE users SET is_active = $1 WHERE id = $2`, false, id)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

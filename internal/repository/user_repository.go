package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dnevnik/dnevnik-backend/internal/model"
)

// ErrDuplicateLogin is returned when a login collides with the unique
// constraint on users.login.
var ErrDuplicateLogin = errors.New("user with this login already exists")

// UserRepository handles user (teacher/admin) data access.
type UserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

// GetByID retrieves a user by ID.
func (r *UserRepository) GetByID(ctx context.Context, id int) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, login, password_hash, role, promoted_by, created_at, updated_at
		 FROM users WHERE id = $1`, id,
	).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.PromotedBy, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// GetByLogin retrieves a user by their unique login.
func (r *UserRepository) GetByLogin(ctx context.Context, login string) (*model.User, error) {
	u := &model.User{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, login, password_hash, role, promoted_by, created_at, updated_at
		 FROM users WHERE login = $1`, login,
	).Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.PromotedBy, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List retrieves all users ordered by id.
func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, login, password_hash, role, promoted_by, created_at, updated_at
		 FROM users ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []model.User
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Login, &u.PasswordHash, &u.Role, &u.PromotedBy, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// Create inserts a new user.
func (r *UserRepository) Create(ctx context.Context, u *model.User) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO users (login, password_hash, role)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at, updated_at`,
		u.Login, u.PasswordHash, u.Role,
	).Scan(&u.ID, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateLogin
		}
		return err
	}
	return nil
}

// SeedAdmin inserts the initial admin account if the login is not taken.
// Returns true when a row was actually inserted.
func (r *UserRepository) SeedAdmin(ctx context.Context, login, passwordHash string) (bool, error) {
	tag, err := r.pool.Exec(ctx,
		`INSERT INTO users (login, password_hash, role)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (login) DO NOTHING`,
		login, passwordHash, model.RoleAdmin,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// UpdateCredentials rewrites the supplied fields only. Nil fields are left
// untouched.
func (r *UserRepository) UpdateCredentials(ctx context.Context, id int, login, passwordHash *string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users
		 SET login = COALESCE($1, login),
		     password_hash = COALESCE($2, password_hash),
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		login, passwordHash, id,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateLogin
		}
		return err
	}
	return nil
}

// UpdateRole rewrites a user's role and promoted_by back-reference.
func (r *UserRepository) UpdateRole(ctx context.Context, id int, role model.Role, promotedBy *int) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE users SET role = $1, promoted_by = $2, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $3`,
		role, promotedBy, id,
	)
	return err
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// UserRepository defines persistence access for job seekers.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	// FindByLoginOrEmail matches login exactly, or email against the stored
	// lowercase address.
	FindByLoginOrEmail(ctx context.Context, login, email string) (*domain.User, error)
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	const query = `
        INSERT INTO users (login, email, full_name, password_hash)
        VALUES ($1, $2, $3, $4)
        RETURNING userid, created_at`

	return r.pool.QueryRow(ctx, query,
		user.Login,
		user.Email,
		user.FullName,
		user.PasswordHash,
	).Scan(&user.ID, &user.CreatedAt)
}

func (r *userRepository) FindByLoginOrEmail(ctx context.Context, login, email string) (*domain.User, error) {
	const query = `
        SELECT userid, login, email, full_name, password_hash, created_at
        FROM users WHERE login=$1 OR email=$2
        LIMIT 1`

	var user domain.User
	if err := r.pool.QueryRow(ctx, query, login, email).Scan(
		&user.ID,
		&user.Login,
		&user.Email,
		&user.FullName,
		&user.PasswordHash,
		&user.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}

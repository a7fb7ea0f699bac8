package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

// CompanyRepository defines persistence access for employer accounts.
type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	// FindByLoginOrEmail matches login exactly, or email against the stored
	// lowercase address.
	FindByLoginOrEmail(ctx context.Context, login, email string) (*domain.Company, error)
}

type companyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository returns a Postgres-backed implementation.
func NewCompanyRepository(pool *pgxpool.Pool) CompanyRepository {
	return &companyRepository{pool: pool}
}

func (r *companyRepository) Create(ctx context.Context, company *domain.Company) error {
	const query = `
        INSERT INTO companies (login, email, full_name, password_hash, nip, company_name)
        VALUES ($1, $2, $3, $4, $5, $6)
        RETURNING userid, created_at`

	return r.pool.QueryRow(ctx, query,
		company.Login,
		company.Email,
		company.FullName,
		company.PasswordHash,
		company.TaxID,
		company.CompanyName,
	).Scan(&company.ID, &company.CreatedAt)
}

func (r *companyRepository) FindByLoginOrEmail(ctx context.Context, login, email string) (*domain.Company, error) {
	const query = `
        SELECT userid, login, email, full_name, password_hash, nip, company_name, created_at
        FROM companies WHERE login=$1 OR email=$2
        LIMIT 1`

	var company domain.Company
	if err := r.pool.QueryRow(ctx, query, login, email).Scan(
		&company.ID,
		&company.Login,
		&company.Email,
		&company.FullName,
		&company.PasswordHash,
		&company.TaxID,
		&company.CompanyName,
		&company.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &company, nil
}

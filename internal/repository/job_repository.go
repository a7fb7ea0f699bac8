package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/job-board/internal/domain"
)

const (
	defaultJobLimit = 50
	maxJobLimit     = 200
)

// JobRepository encapsulates job listing persistence.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) error
	List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error)
}

type jobRepository struct {
	pool *pgxpool.Pool
}

// NewJobRepository instantiates repository.
func NewJobRepository(pool *pgxpool.Pool) JobRepository {
	return &jobRepository{pool: pool}
}

func (r *jobRepository) Create(ctx context.Context, job *domain.Job) error {
	const query = `
        INSERT INTO jobs (owner, job_location, contract_type, mode, hours, description, tags)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING jobid, creation_time`

	tags := job.Tags
	if tags == nil {
		tags = []string{}
	}
	return r.pool.QueryRow(ctx, query,
		job.Owner,
		job.Location,
		job.ContractType,
		job.Mode,
		job.Hours,
		job.Description,
		tags,
	).Scan(&job.ID, &job.CreatedAt)
}

func (r *jobRepository) List(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	query, args := buildJobListQuery(filter)
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanJobs(rows)
}

func buildJobListQuery(filter domain.JobFilter) (string, []any) {
	base := `SELECT jobid, owner, creation_time, job_location, contract_type, mode, hours, description, tags
             FROM jobs`
	clauses := []string{"1=1"}
	args := []any{}

	if tags := normalizeTags(filter.Tags); len(tags) > 0 {
		args = append(args, tags)
		clauses = append(clauses, fmt.Sprintf("tags @> $%d", len(args)))
	}
	if filter.Location != nil {
		args = append(args, *filter.Location)
		clauses = append(clauses, fmt.Sprintf("job_location=$%d", len(args)))
	}
	if filter.ContractType != nil {
		args = append(args, *filter.ContractType)
		clauses = append(clauses, fmt.Sprintf("contract_type=$%d", len(args)))
	}
	if filter.Mode != nil {
		args = append(args, *filter.Mode)
		clauses = append(clauses, fmt.Sprintf("mode=$%d", len(args)))
	}
	if filter.Hours != nil {
		args = append(args, *filter.Hours)
		clauses = append(clauses, fmt.Sprintf("hours=$%d", len(args)))
	}
	if filter.Description != nil && strings.TrimSpace(*filter.Description) != "" {
		args = append(args, "%"+escapeLike(strings.TrimSpace(*filter.Description))+"%")
		clauses = append(clauses, fmt.Sprintf("description ILIKE $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultJobLimit
	}
	if limit > maxJobLimit {
		limit = maxJobLimit
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY creation_time DESC, jobid DESC LIMIT %d OFFSET %d`,
		base, strings.Join(clauses, " AND "), limit, offset)
	return query, args
}

func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	return out
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

func scanJobs(rows pgx.Rows) ([]domain.Job, error) {
	result := []domain.Job{}
	for rows.Next() {
		var job domain.Job
		if err := rows.Scan(
			&job.ID,
			&job.Owner,
			&job.CreatedAt,
			&job.Location,
			&job.ContractType,
			&job.Mode,
			&job.Hours,
			&job.Description,
			&job.Tags,
		); err != nil {
			return nil, err
		}
		result = append(result, job)
	}
	return result, rows.Err()
}

package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/spec-kit/job-board/internal/domain"
)

type stubUserRepo struct {
	mu    sync.Mutex
	users []*domain.User
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == user.Login || u.Email == user.Email {
			return &pgconn.PgError{Code: "23505", ConstraintName: "users_login_key"}
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	clone := *user
	r.users = append(r.users, &clone)
	return nil
}

func (r *stubUserRepo) FindByLoginOrEmail(_ context.Context, login, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == login || u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type stubCompanyRepo struct {
	mu        sync.Mutex
	companies []*domain.Company
}

func (r *stubCompanyRepo) Create(_ context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Login == company.Login || c.Email == company.Email || c.TaxID == company.TaxID {
			return &pgconn.PgError{Code: "23505", ConstraintName: "companies_login_key"}
		}
	}
	company.ID = uuid.New()
	company.CreatedAt = time.Now()
	clone := *company
	r.companies = append(r.companies, &clone)
	return nil
}

func (r *stubCompanyRepo) FindByLoginOrEmail(_ context.Context, login, email string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Login == login || c.Email == email {
			clone := *c
			return &clone, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type stubJobRepo struct {
	mu      sync.Mutex
	jobs    []domain.Job
	filters []domain.JobFilter
	err     error
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	job.ID = int64(len(r.jobs) + 1)
	job.CreatedAt = time.Now()
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *stubJobRepo) List(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	r.filters = append(r.filters, filter)
	out := make([]domain.Job, 0, len(r.jobs))
	for _, job := range r.jobs {
		if matches(job, filter) {
			out = append(out, job)
		}
	}
	return out, nil
}

// matches mirrors the SQL predicate built by the Postgres repository.
func matches(job domain.Job, f domain.JobFilter) bool {
	have := make(map[string]struct{}, len(job.Tags))
	for _, t := range job.Tags {
		have[t] = struct{}{}
	}
	for _, t := range f.Tags {
		if _, ok := have[t]; !ok {
			return false
		}
	}
	if f.Location != nil && job.Location != *f.Location {
		return false
	}
	if f.ContractType != nil && job.ContractType != *f.ContractType {
		return false
	}
	if f.Mode != nil && job.Mode != *f.Mode {
		return false
	}
	if f.Hours != nil && job.Hours != *f.Hours {
		return false
	}
	if f.Description != nil && !strings.Contains(strings.ToLower(job.Description), strings.ToLower(*f.Description)) {
		return false
	}
	return true
}

type stubCache struct {
	entries     map[string][]domain.Job
	gen         int64
	invalidated int
	// beforeSet runs between the database read and the cache write.
	beforeSet func()
}

func newStubCache() *stubCache {
	return &stubCache{entries: map[string][]domain.Job{}}
}

func cacheKey(gen int64, f domain.JobFilter) string {
	key := fmt.Sprintf("%d:", gen)
	for _, t := range f.Tags {
		key += t + ","
	}
	if f.Location != nil {
		key += "|" + *f.Location
	}
	if f.Description != nil {
		key += "~" + *f.Description
	}
	return key
}

func (c *stubCache) Generation(context.Context) (int64, error) {
	return c.gen, nil
}

func (c *stubCache) Get(_ context.Context, gen int64, f domain.JobFilter) ([]domain.Job, bool, error) {
	jobs, ok := c.entries[cacheKey(gen, f)]
	return jobs, ok, nil
}

func (c *stubCache) Set(_ context.Context, gen int64, f domain.JobFilter, jobs []domain.Job) error {
	if c.beforeSet != nil {
		c.beforeSet()
	}
	c.entries[cacheKey(gen, f)] = jobs
	return nil
}

func (c *stubCache) Invalidate(context.Context) error {
	c.invalidated++
	c.gen++
	return nil
}

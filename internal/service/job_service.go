package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/observability"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util/errorutil"
)

// JobCache stores listing results between writes.
type JobCache interface {
	Generation(ctx context.Context) (int64, error)
	Get(ctx context.Context, gen int64, filter domain.JobFilter) ([]domain.Job, bool, error)
	Set(ctx context.Context, gen int64, filter domain.JobFilter, jobs []domain.Job) error
	Invalidate(ctx context.Context) error
}

// JobCreateInput describes a new listing. The owner is never part of it:
// it always comes from the caller's verified claim.
type JobCreateInput struct {
	Location     string
	ContractType domain.ContractType
	Mode         domain.JobMode
	Hours        domain.JobHours
	Description  string
	Tags         []string
}

// JobService coordinates job listing workflows.
type JobService struct {
	jobs       repository.JobRepository
	cache      JobCache
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// JobDependencies bundles collaborators for the job service.
type JobDependencies struct {
	JobRepo    repository.JobRepository
	Cache      JobCache
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// NewJobService constructs the service.
func NewJobService(deps JobDependencies) *JobService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &JobService{
		jobs:       deps.JobRepo,
		cache:      deps.Cache,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
	}
}

// CreateJob stores a listing owned by the company identified by claim.
func (s *JobService) CreateJob(ctx context.Context, claim *domain.Claim, in JobCreateInput) (*domain.Job, error) {
	if err := auth.Authorize(claim, domain.RoleCompany); err != nil {
		return nil, err
	}
	if details := validateJobInput(in); len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid job listing", details)
	}

	job := &domain.Job{
		Owner:        claim.Subject,
		Location:     strings.TrimSpace(in.Location),
		ContractType: in.ContractType,
		Mode:         in.Mode,
		Hours:        in.Hours,
		Description:  strings.TrimSpace(in.Description),
		Tags:         cleanTags(in.Tags),
	}
	if err := s.jobs.Create(ctx, job); err != nil {
		if apperrors.IsForeignKeyViolation(err) {
			return nil, apperrors.NewForbidden("company account not found")
		}
		return nil, apperrors.NewRepositoryError(err)
	}

	s.metrics.JobPosted(string(job.ContractType))
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn("job cache invalidation failed", zap.Error(err))
		}
	}
	if s.dispatcher != nil {
		event := events.NewEvent(events.EventJobPosted, events.Actor{ID: claim.Subject, Role: claim.Role}, events.JobPostedPayload{
			JobID:        job.ID,
			ContractType: job.ContractType,
			Mode:         job.Mode,
			Hours:        job.Hours,
			Tags:         job.Tags,
		})
		if err := s.dispatcher.Publish(ctx, event); err != nil {
			s.logger.Warn("event handlers failed", zap.String("event_type", string(event.Type)), zap.Error(err))
		}
	}
	return job, nil
}

// ListJobs returns listings matching every set field of filter.
func (s *JobService) ListJobs(ctx context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	if details := validateJobFilter(filter); len(details) > 0 {
		return nil, apperrors.NewValidationError("invalid job query", details)
	}
	filter.Tags = cleanTags(filter.Tags)

	cached := s.cache != nil
	var gen int64
	if cached {
		var err error
		if gen, err = s.cache.Generation(ctx); err != nil {
			cached = false
			s.metrics.JobCacheLookup("error")
			s.logger.Warn("job cache read failed", zap.Error(err))
		}
	}
	if cached {
		jobs, ok, err := s.cache.Get(ctx, gen, filter)
		switch {
		case err != nil:
			s.metrics.JobCacheLookup("error")
			s.logger.Warn("job cache read failed", zap.Error(err))
		case ok:
			s.metrics.JobCacheLookup("hit")
			return jobs, nil
		default:
			s.metrics.JobCacheLookup("miss")
		}
	}

	jobs, err := s.jobs.List(ctx, filter)
	if err != nil {
		return nil, apperrors.NewRepositoryError(err)
	}

	if cached {
		if err := s.cache.Set(ctx, gen, filter, jobs); err != nil {
			s.logger.Warn("job cache write failed", zap.Error(err))
		}
	}
	return jobs, nil
}

func validateJobInput(in JobCreateInput) map[string]any {
	details := map[string]any{}
	if !in.ContractType.Valid() {
		details["contract_type"] = "unknown contract type"
	}
	if !in.Mode.Valid() {
		details["mode"] = "unknown mode"
	}
	if !in.Hours.Valid() {
		details["hours"] = "unknown hours"
	}
	return details
}

func validateJobFilter(f domain.JobFilter) map[string]any {
	details := map[string]any{}
	if f.ContractType != nil && !f.ContractType.Valid() {
		details["contract_type"] = "unknown contract type"
	}
	if f.Mode != nil && !f.Mode.Valid() {
		details["mode"] = "unknown mode"
	}
	if f.Hours != nil && !f.Hours.Valid() {
		details["hours"] = "unknown hours"
	}
	return details
}

// cleanTags trims tags and drops blanks and duplicates, keeping order.
func cleanTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/api/dto"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
)

// JobsHandler manages job listing endpoints.
type JobsHandler struct {
	service *service.JobService
}

// NewJobsHandler constructs handler.
func NewJobsHandler(jobService *service.JobService) *JobsHandler {
	return &JobsHandler{service: jobService}
}

// CreateJob POST /api/jobs.
func (h *JobsHandler) CreateJob(c *fiber.Ctx) error {
	claim, ok := auth.ClaimFromContext(c)
	if !ok {
		return auth.ErrAuthHeaderMissing
	}
	var req dto.CreateJobRequest
	if err := bindJSON(c, &req); err != nil {
		return err
	}

	job, err := h.service.CreateJob(c.UserContext(), claim, service.JobCreateInput{
		Location:     req.JobLocation,
		ContractType: domain.ContractType(req.ContractType),
		Mode:         domain.JobMode(req.Mode),
		Hours:        domain.JobHours(req.Hours),
		Description:  req.Description,
		Tags:         req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": jobResponse(job)})
}

// ListJobs GET /api/jobs with the filter in the query string.
func (h *JobsHandler) ListJobs(c *fiber.Ctx) error {
	query := dto.JobQuery{
		JobLocation:  optionalQuery(c, "job_location"),
		ContractType: optionalQuery(c, "contract_type"),
		Mode:         optionalQuery(c, "mode"),
		Hours:        optionalQuery(c, "hours"),
		Description:  optionalQuery(c, "description"),
		Limit:        c.QueryInt("limit", 0),
		Offset:       c.QueryInt("offset", 0),
	}
	if tags := c.Query("tags"); tags != "" {
		query.Tags = strings.Split(tags, ",")
	}
	if err := validateStruct(&query); err != nil {
		return err
	}
	return h.list(c, query)
}

// QueryJobs POST /api/get_jobs with the filter as a JSON body.
func (h *JobsHandler) QueryJobs(c *fiber.Ctx) error {
	var query dto.JobQuery
	if err := bindJSON(c, &query); err != nil {
		return err
	}
	return h.list(c, query)
}

func (h *JobsHandler) list(c *fiber.Ctx, query dto.JobQuery) error {
	jobs, err := h.service.ListJobs(c.UserContext(), jobFilter(query))
	if err != nil {
		return err
	}
	items := make([]dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, jobResponse(&jobs[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

func jobFilter(q dto.JobQuery) domain.JobFilter {
	filter := domain.JobFilter{
		Tags:        q.Tags,
		Location:    q.JobLocation,
		Description: q.Description,
		Limit:       q.Limit,
		Offset:      q.Offset,
	}
	if q.ContractType != nil {
		v := domain.ContractType(*q.ContractType)
		filter.ContractType = &v
	}
	if q.Mode != nil {
		v := domain.JobMode(*q.Mode)
		filter.Mode = &v
	}
	if q.Hours != nil {
		v := domain.JobHours(*q.Hours)
		filter.Hours = &v
	}
	return filter
}

func optionalQuery(c *fiber.Ctx, key string) *string {
	val := c.Query(key)
	if val == "" {
		return nil
	}
	return &val
}

func jobResponse(job *domain.Job) dto.JobResponse {
	tags := job.Tags
	if tags == nil {
		tags = []string{}
	}
	return dto.JobResponse{
		JobID:        job.ID,
		Owner:        job.Owner.String(),
		CreationTime: job.CreatedAt,
		JobLocation:  job.Location,
		ContractType: string(job.ContractType),
		Mode:         string(job.Mode),
		Hours:        string(job.Hours),
		Description:  job.Description,
		Tags:         tags,
	}
}

package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/api/http/handlers"
	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/service"
)

const testSecret = "integration-secret"

type memUsers struct {
	mu    sync.Mutex
	users []domain.User
}

func (r *memUsers) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	r.users = append(r.users, *user)
	return nil
}

func (r *memUsers) FindByLoginOrEmail(_ context.Context, login, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Login == login || u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memCompanies struct {
	mu        sync.Mutex
	companies []domain.Company
}

func (r *memCompanies) Create(_ context.Context, company *domain.Company) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	company.ID = uuid.New()
	company.CreatedAt = time.Now()
	r.companies = append(r.companies, *company)
	return nil
}

func (r *memCompanies) FindByLoginOrEmail(_ context.Context, login, email string) (*domain.Company, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, c := range r.companies {
		if c.Login == login || c.Email == email {
			found := c
			return &found, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type memJobs struct {
	mu   sync.Mutex
	jobs []domain.Job
}

func (r *memJobs) Create(_ context.Context, job *domain.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job.ID = int64(len(r.jobs) + 1)
	job.CreatedAt = time.Now()
	r.jobs = append(r.jobs, *job)
	return nil
}

func (r *memJobs) List(_ context.Context, filter domain.JobFilter) ([]domain.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Job{}
next:
	for _, job := range r.jobs {
		for _, want := range filter.Tags {
			found := false
			for _, have := range job.Tags {
				found = found || have == want
			}
			if !found {
				continue next
			}
		}
		if filter.ContractType != nil && job.ContractType != *filter.ContractType {
			continue
		}
		if filter.Description != nil && !strings.Contains(strings.ToLower(job.Description), strings.ToLower(*filter.Description)) {
			continue
		}
		out = append(out, job)
	}
	return out, nil
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type testServer struct {
	app    *fiber.App
	keys   *auth.KeyProvider
	tokens *auth.TokenService
}

func newTestServer(t *testing.T, redisPing pingerFunc) *testServer {
	t.Helper()
	if redisPing == nil {
		redisPing = func(context.Context) error { return nil }
	}
	logger := zap.NewNop()
	keys, err := auth.NewKeyProvider(testSecret)
	require.NoError(t, err)
	tokens := auth.NewTokenService(keys, time.Hour)

	authService := service.NewAuthService(config.AuthConfig{TokenTTL: time.Hour, BcryptCost: 4}, service.AuthDependencies{
		UserRepo:    &memUsers{},
		CompanyRepo: &memCompanies{},
		Tokens:      tokens,
		Logger:      logger,
	})
	jobService := service.NewJobService(service.JobDependencies{JobRepo: &memJobs{}, Logger: logger})

	app := fiber.New(fiber.Config{BodyLimit: 16 * 1024})
	RegisterMiddlewares(app, logger, nil, time.Second)
	RegisterRoutes(app, RouteConfig{
		Health: handlers.NewHealthHandler("job-board", "test", map[string]handlers.Pinger{
			"postgres": pingerFunc(func(context.Context) error { return nil }),
			"redis":    redisPing,
		}),
		Accounts:       handlers.NewAccountsHandler(authService),
		Jobs:           handlers.NewJobsHandler(jobService),
		AuthMiddleware: auth.NewMiddleware(tokens),
	})
	return &testServer{app: app, keys: keys, tokens: tokens}
}

func (s *testServer) do(t *testing.T, method, path string, body any, header string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	if header != "" {
		req.Header.Set(fiber.HeaderAuthorization, header)
	}
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := map[string]any{}
	if len(raw) > 0 && strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		require.NoError(t, json.Unmarshal(raw, &out))
	}
	return resp.StatusCode, out
}

func errorCode(body map[string]any) string {
	errBody, _ := body["error"].(map[string]any)
	code, _ := errBody["code"].(string)
	return code
}

func (s *testServer) registerCompany(t *testing.T, login string) (string, string) {
	t.Helper()
	status, body := s.do(t, fiber.MethodPost, "/auth/companies/register", map[string]any{
		"login":        login,
		"email":        login + "@example.com",
		"full_name":    "Anna Nowak",
		"password":     "secret1",
		"nip":          "5260250274",
		"company_name": "Acme",
	}, "")
	require.Equal(t, fiber.StatusCreated, status, body)
	data := body["data"].(map[string]any)
	account := data["account"].(map[string]any)
	token := data["auth"].(map[string]any)["token"].(string)
	return account["user_id"].(string), token
}

func (s *testServer) registerUser(t *testing.T, login string) string {
	t.Helper()
	status, body := s.do(t, fiber.MethodPost, "/auth/users/register", map[string]any{
		"login":     login,
		"email":     login + "@example.com",
		"full_name": "Jan Kowalski",
		"password":  "secret1",
	}, "")
	require.Equal(t, fiber.StatusCreated, status, body)
	return body["data"].(map[string]any)["auth"].(map[string]any)["token"].(string)
}

func jobBody(tags ...string) map[string]any {
	return map[string]any{
		"job_location":  "Somewhere",
		"contract_type": "praca",
		"mode":          "mobile",
		"hours":         "week",
		"description":   "Some random description",
		"tags":          tags,
	}
}

func TestPostJob_CompanyOwnsListing(t *testing.T) {
	srv := newTestServer(t, nil)
	companyID, token := srv.registerCompany(t, "acme")

	body := jobBody("Job", "Mobile")
	body["owner"] = uuid.NewString()
	status, resp := srv.do(t, fiber.MethodPost, "/api/jobs", body, "Bearer "+token)
	require.Equal(t, fiber.StatusCreated, status, resp)

	job := resp["data"].(map[string]any)
	assert.Equal(t, companyID, job["owner"])
	assert.Equal(t, float64(1), job["jobid"])
	assert.Equal(t, "praca", job["contract_type"])
	assert.ElementsMatch(t, []any{"Job", "Mobile"}, job["tags"])
}

func TestPostJob_UserRoleForbidden(t *testing.T) {
	srv := newTestServer(t, nil)
	token := srv.registerUser(t, "jan")

	status, resp := srv.do(t, fiber.MethodPost, "/api/jobs", jobBody("Job"), "Bearer "+token)
	assert.Equal(t, fiber.StatusForbidden, status)
	assert.Equal(t, "ROLE_FORBIDDEN", errorCode(resp))
}

func TestPostJob_AuthFailures(t *testing.T) {
	srv := newTestServer(t, nil)
	subject := uuid.MustParse("12e1b078-4e42-47ed-a2c7-d6cd6269a2d0")

	past := auth.NewTokenService(srv.keys, time.Hour, auth.WithClock(func() time.Time {
		return time.Now().Add(-2 * time.Hour)
	}))
	expired, _, err := past.Issue(subject, domain.RoleCompany, time.Hour)
	require.NoError(t, err)

	otherKeys, err := auth.NewKeyProvider("another-secret")
	require.NoError(t, err)
	foreign, _, err := auth.NewTokenService(otherKeys, time.Hour).Issue(subject, domain.RoleCompany, time.Hour)
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
		code   string
	}{
		{"missing", "", "AUTH_HEADER_MISSING"},
		{"no bearer prefix", "Token abc", "AUTH_HEADER_MALFORMED"},
		{"garbage", "Bearer not-a-jwt", "SIGNATURE_INVALID"},
		{"wrong key", "Bearer " + foreign, "SIGNATURE_INVALID"},
		{"expired", "Bearer " + expired, "TOKEN_EXPIRED"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			status, resp := srv.do(t, fiber.MethodPost, "/api/jobs", jobBody("Job"), tc.header)
			assert.Equal(t, fiber.StatusUnauthorized, status)
			assert.Equal(t, tc.code, errorCode(resp))
		})
	}
}

func TestPostJob_ValidationFailure(t *testing.T) {
	srv := newTestServer(t, nil)
	_, token := srv.registerCompany(t, "acme")

	body := jobBody("Job")
	body["contract_type"] = "gig"
	status, resp := srv.do(t, fiber.MethodPost, "/api/jobs", body, "Bearer "+token)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
	details := resp["error"].(map[string]any)["details"].(map[string]any)
	assert.Contains(t, details, "contract_type")
}

func TestQueryJobs(t *testing.T) {
	srv := newTestServer(t, nil)
	_, token := srv.registerCompany(t, "acme")

	for _, tags := range [][]string{{"Go", "Remote"}, {"Rust"}} {
		status, resp := srv.do(t, fiber.MethodPost, "/api/jobs", jobBody(tags...), "Bearer "+token)
		require.Equal(t, fiber.StatusCreated, status, resp)
	}

	status, resp := srv.do(t, fiber.MethodPost, "/api/get_jobs", map[string]any{}, "")
	require.Equal(t, fiber.StatusOK, status, resp)
	assert.Len(t, resp["data"], 2)

	status, resp = srv.do(t, fiber.MethodPost, "/api/get_jobs", map[string]any{"tags": []string{"Go"}}, "")
	require.Equal(t, fiber.StatusOK, status, resp)
	require.Len(t, resp["data"], 1)
	assert.Equal(t, float64(1), resp["data"].([]any)[0].(map[string]any)["jobid"])

	status, resp = srv.do(t, fiber.MethodGet, "/api/jobs?tags=Rust&description=RANDOM", nil, "")
	require.Equal(t, fiber.StatusOK, status, resp)
	require.Len(t, resp["data"], 1)
	assert.Equal(t, float64(2), resp["data"].([]any)[0].(map[string]any)["jobid"])

	status, resp = srv.do(t, fiber.MethodGet, "/api/jobs?contract_type=gig", nil, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
}

func TestAccounts_LoginFlows(t *testing.T) {
	srv := newTestServer(t, nil)
	companyID, _ := srv.registerCompany(t, "acme")

	status, resp := srv.do(t, fiber.MethodPost, "/auth/companies/login", map[string]any{
		"login": "acme@example.com", "password": "secret1",
	}, "")
	require.Equal(t, fiber.StatusOK, status, resp)
	token := resp["data"].(map[string]any)["auth"].(map[string]any)["token"].(string)
	claim, err := srv.tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, companyID, claim.Subject.String())
	assert.Equal(t, domain.RoleCompany, claim.Role)

	status, resp = srv.do(t, fiber.MethodPost, "/auth/companies/login", map[string]any{
		"login": "acme", "password": "wrong",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "BAD_PASSWORD", errorCode(resp))

	status, resp = srv.do(t, fiber.MethodPost, "/auth/users/login", map[string]any{
		"login": "acme", "password": "secret1",
	}, "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, "NO_SUCH_USER", errorCode(resp))
}

func TestAccounts_RegisterCompanyRejectsBadTaxID(t *testing.T) {
	srv := newTestServer(t, nil)
	status, resp := srv.do(t, fiber.MethodPost, "/auth/companies/register", map[string]any{
		"login":        "acme",
		"email":        "acme@example.com",
		"full_name":    "Anna Nowak",
		"password":     "secret1",
		"nip":          "5260250275",
		"company_name": "Acme",
	}, "")
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "VALIDATION_FAILED", errorCode(resp))
}

func TestHealthAndUnknownRoutes(t *testing.T) {
	srv := newTestServer(t, func(context.Context) error { return errors.New("connection refused") })

	status, resp := srv.do(t, fiber.MethodGet, "/health/live", nil, "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "alive", resp["status"])

	status, resp = srv.do(t, fiber.MethodGet, "/health/ready", nil, "")
	assert.Equal(t, fiber.StatusServiceUnavailable, status)
	assert.Equal(t, "DEPENDENCY_UNAVAILABLE", errorCode(resp))

	status, resp = srv.do(t, fiber.MethodGet, "/nope", nil, "")
	assert.Equal(t, fiber.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorCode(resp))
}

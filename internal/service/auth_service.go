package service

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/job-board/internal/auth"
	"github.com/spec-kit/job-board/internal/config"
	"github.com/spec-kit/job-board/internal/domain"
	"github.com/spec-kit/job-board/internal/events"
	"github.com/spec-kit/job-board/internal/observability"
	"github.com/spec-kit/job-board/internal/repository"
	apperrors "github.com/spec-kit/job-board/pkg/util/errorutil"
)

// Login failures.
var (
	ErrNoSuchUser  error = apperrors.NewDomainError("NO_SUCH_USER", "there is no user with this login/email", http.StatusUnauthorized, nil)
	ErrBadPassword error = apperrors.NewDomainError("BAD_PASSWORD", "the password is incorrect", http.StatusUnauthorized, nil)
)

// IssuedToken is an access token with its expiry.
type IssuedToken struct {
	Token     string
	ExpiresAt time.Time
}

// RegisterUserInput describes a job seeker sign-up.
type RegisterUserInput struct {
	Login    string
	Email    string
	FullName string
	Password string
}

// RegisterCompanyInput describes an employer sign-up.
type RegisterCompanyInput struct {
	Login       string
	Email       string
	FullName    string
	Password    string
	TaxID       string
	CompanyName string
}

// AuthService coordinates registration and login flows.
type AuthService struct {
	users      repository.UserRepository
	companies  repository.CompanyRepository
	tokens     *auth.TokenService
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
	tokenTTL   time.Duration
	bcryptCost int
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	UserRepo    repository.UserRepository
	CompanyRepo repository.CompanyRepository
	Tokens      *auth.TokenService
	Dispatcher  events.Dispatcher
	Metrics     *observability.Metrics
	Logger      *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig, deps AuthDependencies) *AuthService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		users:      deps.UserRepo,
		companies:  deps.CompanyRepo,
		tokens:     deps.Tokens,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     logger,
		tokenTTL:   cfg.TokenTTL,
		bcryptCost: cfg.BcryptCost,
	}
}

// RegisterUser creates a job seeker account and signs them in.
func (s *AuthService) RegisterUser(ctx context.Context, in RegisterUserInput) (*domain.User, IssuedToken, error) {
	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, IssuedToken{}, passwordError(err)
	}

	user := &domain.User{
		Login:        strings.TrimSpace(in.Login),
		Email:        normalizeEmail(in.Email),
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: hash,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, IssuedToken{}, registrationError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user.Credential(), events.AccountRegisteredPayload{Login: user.Login, Email: user.Email})

	token, err := s.issue(user.Credential())
	if err != nil {
		return nil, IssuedToken{}, err
	}
	return user, token, nil
}

// RegisterCompany validates the tax id, creates an employer account and signs it in.
func (s *AuthService) RegisterCompany(ctx context.Context, in RegisterCompanyInput) (*domain.Company, IssuedToken, error) {
	taxID := strings.TrimSpace(in.TaxID)
	if !domain.ValidTaxID(taxID) {
		return nil, IssuedToken{}, apperrors.NewValidationError("the nip is incorrect", map[string]any{"nip": taxID})
	}

	hash, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, IssuedToken{}, passwordError(err)
	}

	company := &domain.Company{
		Login:        strings.TrimSpace(in.Login),
		Email:        normalizeEmail(in.Email),
		FullName:     strings.TrimSpace(in.FullName),
		PasswordHash: hash,
		TaxID:        taxID,
		CompanyName:  strings.TrimSpace(in.CompanyName),
	}
	if err := s.companies.Create(ctx, company); err != nil {
		return nil, IssuedToken{}, registrationError(err)
	}

	s.publish(ctx, events.EventCompanyRegistered, company.Credential(), events.AccountRegisteredPayload{Login: company.Login, Email: company.Email})

	token, err := s.issue(company.Credential())
	if err != nil {
		return nil, IssuedToken{}, err
	}
	return company, token, nil
}

// LoginUser authenticates a job seeker by login or email.
func (s *AuthService) LoginUser(ctx context.Context, login, password string) (*domain.User, IssuedToken, error) {
	login = strings.TrimSpace(login)
	user, err := s.users.FindByLoginOrEmail(ctx, login, normalizeEmail(login))
	if err != nil {
		return nil, IssuedToken{}, lookupError(err)
	}
	token, err := s.authenticate(user.Credential(), password)
	if err != nil {
		return nil, IssuedToken{}, err
	}
	return user, token, nil
}

// LoginCompany authenticates an employer by login or email.
func (s *AuthService) LoginCompany(ctx context.Context, login, password string) (*domain.Company, IssuedToken, error) {
	login = strings.TrimSpace(login)
	company, err := s.companies.FindByLoginOrEmail(ctx, login, normalizeEmail(login))
	if err != nil {
		return nil, IssuedToken{}, lookupError(err)
	}
	token, err := s.authenticate(company.Credential(), password)
	if err != nil {
		return nil, IssuedToken{}, err
	}
	return company, token, nil
}

func (s *AuthService) authenticate(cred domain.Credential, password string) (IssuedToken, error) {
	if err := auth.ComparePassword(cred.PasswordHash, password); err != nil {
		if errors.Is(err, auth.ErrPasswordMismatch) {
			return IssuedToken{}, ErrBadPassword
		}
		return IssuedToken{}, apperrors.NewInternalError(err)
	}
	return s.issue(cred)
}

func (s *AuthService) issue(cred domain.Credential) (IssuedToken, error) {
	token, exp, err := s.tokens.Issue(cred.ID, cred.Role, s.tokenTTL)
	if err != nil {
		return IssuedToken{}, err
	}
	s.metrics.TokenIssued(cred.Role.String())
	return IssuedToken{Token: token, ExpiresAt: exp}, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, cred domain.Credential, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.NewEvent(eventType, events.Actor{ID: cred.ID, Role: cred.Role}, payload)
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event handlers failed", zap.String("event_type", string(eventType)), zap.Error(err))
	}
}

func registrationError(err error) error {
	if apperrors.IsUniqueViolation(err) {
		return apperrors.NewConflict("account already registered", apperrors.ToDomainError(err).Details)
	}
	return apperrors.NewRepositoryError(err)
}

func lookupError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNoSuchUser
	}
	return apperrors.NewRepositoryError(err)
}

// normalizeEmail is the stored form of an address: emails match case-insensitively.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func passwordError(err error) error {
	if errors.Is(err, auth.ErrPasswordTooLong) {
		return apperrors.NewValidationError("invalid payload", map[string]any{"password": err.Error()})
	}
	return apperrors.NewInternalError(err)
}

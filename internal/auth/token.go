package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/spec-kit/job-board/internal/domain"
)

const bearerPrefix = "Bearer "

var signingMethod = jwt.SigningMethodHS512

// Claims describes the JWT payload: sub, role and exp.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenService issues and validates access tokens. It holds no mutable state
// and is safe for concurrent use.
type TokenService struct {
	keys       *KeyProvider
	defaultTTL time.Duration
	now        func() time.Time
	parser     *jwt.Parser
}

// Option customizes a TokenService.
type Option func(*TokenService)

// WithClock overrides the time source used for issuing and expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *TokenService) {
		s.now = now
	}
}

// NewTokenService builds a token service around the given key provider.
func NewTokenService(keys *KeyProvider, defaultTTL time.Duration, opts ...Option) *TokenService {
	if defaultTTL <= 0 {
		defaultTTL = 7 * 24 * time.Hour
	}
	s := &TokenService{keys: keys, defaultTTL: defaultTTL, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	s.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.now() }),
	)
	return s
}

// DefaultTTL returns the lifetime applied when Issue is called without one.
func (s *TokenService) DefaultTTL() time.Duration {
	return s.defaultTTL
}

// Issue signs a token for subject with the given role, valid for ttl.
func (s *TokenService) Issue(subject uuid.UUID, role domain.Role, ttl time.Duration) (string, time.Time, error) {
	if !role.Valid() {
		return "", time.Time{}, fmt.Errorf("issue token: unknown role %q", role)
	}
	key, err := s.keys.Key()
	if err != nil {
		return "", time.Time{}, err
	}
	if ttl <= 0 {
		ttl = s.defaultTTL
	}

	expiresAt := jwt.NewNumericDate(s.now().Add(ttl))
	claims := &Claims{
		Role: role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject.String(),
			ExpiresAt: expiresAt,
		},
	}

	signed, err := jwt.NewWithClaims(signingMethod, claims).SignedString(key)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("%w: %v", ErrSigningKey, err)
	}
	return signed, expiresAt.Time, nil
}

// Verify checks the signature and expiry of token and returns its claim.
func (s *TokenService) Verify(token string) (*domain.Claim, error) {
	key, err := s.keys.Key()
	if err != nil {
		return nil, err
	}

	claims := &Claims{}
	_, err = s.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	subject, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("%w: subject: %v", ErrSignatureInvalid, err)
	}
	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSignatureInvalid, err)
	}

	return &domain.Claim{
		Subject:   subject,
		Role:      role,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// VerifyHeader extracts a bearer token from an Authorization header value
// and verifies it.
func (s *TokenService) VerifyHeader(header string) (*domain.Claim, error) {
	if header == "" {
		return nil, ErrAuthHeaderMissing
	}
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, ErrAuthHeaderMalformed
	}
	return s.Verify(strings.TrimPrefix(header, bearerPrefix))
}

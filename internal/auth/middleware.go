package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/job-board/internal/domain"
)

const claimKey = "auth_claim"

// Middleware validates bearer tokens on protected routes.
type Middleware struct {
	tokens *TokenService
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenService) *Middleware {
	return &Middleware{tokens: tokens}
}

// Handle rejects requests without a valid token and stores the claim for
// downstream handlers.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	claim, err := m.tokens.VerifyHeader(c.Get(fiber.HeaderAuthorization))
	if err != nil {
		return err
	}
	c.Locals(claimKey, claim)
	return c.Next()
}

// RequireRole ensures the authenticated claim carries the given role.
func RequireRole(role domain.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claim, ok := ClaimFromContext(c)
		if !ok {
			return ErrAuthHeaderMissing
		}
		if err := Authorize(claim, role); err != nil {
			return err
		}
		return c.Next()
	}
}

// ClaimFromContext retrieves the verified claim.
func ClaimFromContext(c *fiber.Ctx) (*domain.Claim, bool) {
	val := c.Locals(claimKey)
	if val == nil {
		return nil, false
	}
	claim, ok := val.(*domain.Claim)
	return claim, ok
}

package auth

import (
	"fmt"

	"github.com/spec-kit/job-board/internal/domain"
)

// Authorize allows the claim only when it carries exactly the required role.
// Roles are flat: Company does not imply User and vice versa.
func Authorize(claim *domain.Claim, required domain.Role) error {
	if claim == nil {
		return ErrAuthHeaderMissing
	}
	switch required {
	case domain.RoleCompany, domain.RoleUser:
		if claim.Role == required {
			return nil
		}
		return fmt.Errorf("%w: %s required", ErrRoleForbidden, required)
	default:
		return fmt.Errorf("%w: unknown role %q", ErrRoleForbidden, required)
	}
}

package auth

import (
	"net/http"

	apperrors "github.com/spec-kit/job-board/pkg/util/errorutil"
)

// Rejections produced by the token service. All of them are final for the
// request that triggered them.
var (
	ErrAuthHeaderMissing   error = apperrors.NewDomainError("AUTH_HEADER_MISSING", "missing authorization header", http.StatusUnauthorized, nil)
	ErrAuthHeaderMalformed error = apperrors.NewDomainError("AUTH_HEADER_MALFORMED", "authorization header must use the Bearer scheme", http.StatusUnauthorized, nil)
	ErrSignatureInvalid    error = apperrors.NewDomainError("SIGNATURE_INVALID", "invalid token", http.StatusUnauthorized, nil)
	ErrTokenExpired        error = apperrors.NewDomainError("TOKEN_EXPIRED", "token expired", http.StatusUnauthorized, nil)
	ErrRoleForbidden       error = apperrors.NewDomainError("ROLE_FORBIDDEN", "role not permitted for this action", http.StatusForbidden, nil)
	ErrSigningKey          error = apperrors.NewDomainError("SIGNING_ERROR", "token signing failed", http.StatusInternalServerError, nil)
)

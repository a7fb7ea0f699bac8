package domain

import (
	"time"

	"github.com/google/uuid"
)

// Claim is the identity reconstructed from a verified access token.
type Claim struct {
	Subject   uuid.UUID
	Role      Role
	ExpiresAt time.Time
}

// Credential is what a login lookup yields for password verification.
type Credential struct {
	ID           uuid.UUID
	Role         Role
	PasswordHash string
}

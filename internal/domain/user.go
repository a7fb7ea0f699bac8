package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an ordinary job seeker account.
type User struct {
	ID           uuid.UUID
	Login        string
	Email        string
	FullName     string
	PasswordHash string
	CreatedAt    time.Time
}

// Credential returns the login view of the user.
func (u *User) Credential() Credential {
	return Credential{ID: u.ID, Role: RoleUser, PasswordHash: u.PasswordHash}
}

// Company is an employer account allowed to post jobs.
type Company struct {
	ID           uuid.UUID
	Login        string
	Email        string
	FullName     string
	PasswordHash string
	TaxID        string
	CompanyName  string
	CreatedAt    time.Time
}

// Credential returns the login view of the company.
func (c *Company) Credential() Credential {
	return Credential{ID: c.ID, Role: RoleCompany, PasswordHash: c.PasswordHash}
}

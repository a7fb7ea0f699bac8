package domain

import "fmt"

// Role is the capability carried by an access token.
type Role string

const (
	RoleCompany Role = "Company"
	RoleUser    Role = "User"
)

// ParseRole converts the wire form of a role into a Role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCompany:
		return RoleCompany, nil
	case RoleUser:
		return RoleUser, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleCompany, RoleUser:
		return true
	default:
		return false
	}
}

func (r Role) String() string {
	return string(r)
}

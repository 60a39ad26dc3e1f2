package identity

import (
	"strings"

	"github.com/shopcore/backend/internal/domain/shared"
)

// Role is the single role a user holds
type Role string

const (
	RoleSuperAdmin Role = "SUPERADMIN"
	RoleAdmin      Role = "ADMIN"
	RoleManager    Role = "MANAGER"
	RoleCustomer   Role = "CUSTOMER"
)

// AllRoles lists every recognized role
var AllRoles = []Role{RoleSuperAdmin, RoleAdmin, RoleManager, RoleCustomer}

// IsValid reports whether r is a recognized role
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleManager, RoleCustomer:
		return true
	}
	return false
}

func (r Role) String() string {
	return string(r)
}

// ParseRole parses a role name case-insensitively
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToUpper(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", shared.NewFieldError("role", "Unknown role: "+s)
	}
	return r, nil
}

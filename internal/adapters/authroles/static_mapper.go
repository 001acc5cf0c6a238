package authroles

import (
	domainauth "github.com/loopwell/mailcheck-api/internal/domain/auth"
	"github.com/loopwell/mailcheck-api/internal/ports"
)

// StaticRoleMapper maps IdP group names to application roles using two
// configured group identifiers. Unknown members come through as guests, which
// still permits the read-only listing but refuses sends.
type StaticRoleMapper struct {
	AdminGroup string
	UserGroup  string
}

var _ ports.RoleMapper = StaticRoleMapper{}

// Map returns the highest role matching any of the provided groups.
func (m StaticRoleMapper) Map(groups []string) domainauth.Role {
	role := domainauth.RoleGuest
	for _, g := range groups {
		switch g {
		case m.AdminGroup:
			return domainauth.RoleAdmin
		case m.UserGroup:
			role = domainauth.RoleUser
		}
	}
	return role
}

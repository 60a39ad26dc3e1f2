// Package access holds the authorization policy: which roles may run an
// operation and which catalog statuses each role may see.
package access

import (
	"github.com/shopcore/backend/internal/domain/catalog"
	"github.com/shopcore/backend/internal/domain/identity"
	"github.com/shopcore/backend/internal/domain/shared"
)

// Operation names a role-gated operation
type Operation string

const (
	OpCategoryCreate Operation = "category.create"
	OpCategoryUpdate Operation = "category.update"
	OpCategoryDelete Operation = "category.delete"

	OpMasterProductCreate Operation = "master_product.create"
	OpMasterProductUpdate Operation = "master_product.update"
	OpMasterProductDelete Operation = "master_product.delete"

	OpSubProductCreate Operation = "sub_product.create"
	OpSubProductUpdate Operation = "sub_product.update"
	OpSubProductDelete Operation = "sub_product.delete"

	OpUserList   Operation = "user.list"
	OpUserRead   Operation = "user.read"
	OpUserUpdate Operation = "user.update"
	OpUserLogout Operation = "user.logout"
)

// Policy maps operations to allowed roles and roles to visible statuses
type Policy struct {
	operations map[Operation]map[identity.Role]struct{}
	visibility map[identity.Role][]catalog.Status
}

// NewPolicy builds a policy from explicit tables.
// A role missing from visibility sees PUBLISHED only.
func NewPolicy(operations map[Operation][]identity.Role, visibility map[identity.Role][]catalog.Status) *Policy {
	p := &Policy{
		operations: make(map[Operation]map[identity.Role]struct{}, len(operations)),
		visibility: make(map[identity.Role][]catalog.Status, len(visibility)),
	}
	for op, roles := range operations {
		set := make(map[identity.Role]struct{}, len(roles))
		for _, r := range roles {
			set[r] = struct{}{}
		}
		p.operations[op] = set
	}
	for role, extra := range visibility {
		p.visibility[role] = append([]catalog.Status(nil), extra...)
	}
	return p
}

// DefaultPolicy returns the stock policy
func DefaultPolicy() *Policy {
	staff := []identity.Role{identity.RoleSuperAdmin, identity.RoleAdmin, identity.RoleManager}
	admins := []identity.Role{identity.RoleSuperAdmin, identity.RoleAdmin}
	backOffice := []catalog.Status{catalog.StatusDraft, catalog.StatusArchived}

	return NewPolicy(
		map[Operation][]identity.Role{
			OpCategoryCreate:      staff,
			OpCategoryUpdate:      staff,
			OpCategoryDelete:      staff,
			OpMasterProductCreate: staff,
			OpMasterProductUpdate: staff,
			OpMasterProductDelete: staff,
			OpSubProductCreate:    staff,
			OpSubProductUpdate:    staff,
			OpSubProductDelete:    staff,
			OpUserList:            admins,
			OpUserRead:            staff,
			OpUserUpdate:          admins,
			OpUserLogout:          admins,
		},
		map[identity.Role][]catalog.Status{
			identity.RoleSuperAdmin: backOffice,
			identity.RoleAdmin:      backOffice,
			identity.RoleManager:    backOffice,
		},
	)
}

// Authorize returns shared.ErrForbidden unless role may run op.
// Operations absent from the table are denied.
func (p *Policy) Authorize(role identity.Role, op Operation) error {
	if !role.IsValid() {
		return shared.ErrUnauthenticated
	}
	if _, ok := p.operations[op][role]; !ok {
		return shared.NewDomainError(shared.CodeForbidden, "Role "+string(role)+" may not perform "+string(op))
	}
	return nil
}

// VisibleStatuses returns PUBLISHED plus the additional statuses role may see
func (p *Policy) VisibleStatuses(role identity.Role) []catalog.Status {
	out := []catalog.Status{catalog.StatusPublished}
	for _, s := range p.visibility[role] {
		if s != catalog.StatusPublished {
			out = append(out, s)
		}
	}
	return out
}

// CanSee reports whether role may see a record in status
func (p *Policy) CanSee(role identity.Role, status catalog.Status) bool {
	for _, s := range p.VisibleStatuses(role) {
		if s == status {
			return true
		}
	}
	return false
}

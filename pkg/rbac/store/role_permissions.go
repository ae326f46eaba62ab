package store

import "github.com/MASEZHAO/apollo/pkg/model"

// RolePermissionsStore abstracts role ↔ permission binding storage
type RolePermissionsStore interface {
	// FindByRoleIDs retrieves all non-deleted bindings whose role is in
	// roleIDs.
	FindByRoleIDs(roleIDs []int64) ([]model.RolePermission, error)

	// Create persists the given bindings.
	Create(bindings []*model.RolePermission) error
}

package store

import "github.com/MASEZHAO/apollo/pkg/model"

// PermissionsStore abstracts permission storage operations
type PermissionsStore interface {
	// FindByTypeAndTarget retrieves the non-deleted permission with the
	// given (type, target) pair. Returns (nil, nil) when absent.
	FindByTypeAndTarget(permissionType, targetID string) (*model.Permission, error)

	// FindByTypesAndTarget retrieves all non-deleted permissions on targetID
	// whose type is in permissionTypes.
	FindByTypesAndTarget(permissionTypes []string, targetID string) ([]model.Permission, error)

	// Create persists the given permissions, filling in generated IDs.
	// A storage-level (type, target) conflict is returned as
	// *AlreadyExistsError.
	Create(permissions []*model.Permission) error
}

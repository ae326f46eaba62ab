package store

import "github.com/MASEZHAO/apollo/pkg/model"

// RolesStore abstracts role storage operations
type RolesStore interface {
	// FindByName retrieves the non-deleted role with the given name.
	// Returns (nil, nil) when no such role exists.
	FindByName(name string) (*model.Role, error)

	// Create persists a new role, filling in its generated ID.
	// A storage-level name conflict is returned as *AlreadyExistsError.
	Create(role *model.Role) error
}

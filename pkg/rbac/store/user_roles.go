package store

import "github.com/MASEZHAO/apollo/pkg/model"

// UserRolesStore abstracts user ↔ role binding storage.
//
// "Active" always means is_deleted = false; revocation is a soft delete and
// rows are never removed.
type UserRolesStore interface {
	// FindActiveByUsersAndRole retrieves the active bindings between any of
	// userIDs and roleID.
	FindActiveByUsersAndRole(userIDs []string, roleID int64) ([]model.UserRole, error)

	// FindActiveByUser retrieves all active bindings for a user.
	FindActiveByUser(userID string) ([]model.UserRole, error)

	// FindActiveByRole retrieves all active bindings to a role.
	FindActiveByRole(roleID int64) ([]model.UserRole, error)

	// Create persists new bindings. A storage-level conflict on an already
	// active (user, role) pair is returned as *AlreadyExistsError.
	Create(bindings []*model.UserRole) error

	// SoftDelete marks the bindings with the given row IDs deleted and
	// records operatorID as the last modifier. Rows stay in place.
	SoftDelete(ids []int64, operatorID string) error
}

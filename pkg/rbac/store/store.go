package store

// Store bundles the per-entity stores behind one handle.
type Store interface {
	Roles() RolesStore
	Permissions() PermissionsStore
	RolePermissions() RolePermissionsStore
	UserRoles() UserRolesStore

	// Atomic runs fn against a transactional view of the store. All writes
	// issued through the view commit together, or roll back together when fn
	// returns an error.
	Atomic(fn func(Store) error) error
}

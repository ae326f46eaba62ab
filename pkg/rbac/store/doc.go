// Package store provides storage abstractions for the portal RBAC core.
//
// This package defines interfaces for database operations, allowing the RBAC
// service to be decoupled from the specific database implementation. This
// enables easier testing with mocks and potential support for different
// storage backends.
//
// # Available Stores
//
//   - RolesStore: role lookup and creation
//   - PermissionsStore: permission lookup and creation
//   - RolePermissionsStore: role ↔ permission bindings
//   - UserRolesStore: user ↔ role bindings (soft-delete aware)
//
// The aggregate Store bundles the four and adds Atomic, which runs a
// function against a transactional view so multi-store writes commit or roll
// back together.
//
// In-process uniqueness checks issued by the service are advisory. The
// storage layer is the authority: its unique constraints reject true
// conflicts, and implementations surface those rejections as
// *AlreadyExistsError.
package store

// Package gorm implements the RBAC store interfaces using GORM on
// PostgreSQL.
//
// Uniqueness invariants (role name, permission (type, target), active
// (user, role) binding) are enforced by partial unique indexes in the
// database schema; duplicate-key rejections are translated into
// *store.AlreadyExistsError. The GORM session must be opened with
// TranslateError enabled (pkg/db does this) for the translation to fire.
package gorm

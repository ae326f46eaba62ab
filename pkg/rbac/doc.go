// Package rbac implements role-based access control for the portal.
//
// The model is flat: users hold roles, roles hold permissions, and a
// permission is a (type, target) pair. There is no role hierarchy, no
// wildcards, and no time-bounded grants.
//
// The Service answers "may user U perform permission P on target T?" and
// manages the relational graph behind that answer. It is stateless between
// calls; durable state lives behind the store interfaces and the superadmin
// allowlist behind SuperAdminProvider.
//
// Revocation is always a soft delete, so the full assignment history stays
// in the database for audit.
package rbac

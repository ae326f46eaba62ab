// Package model defines the database models for the portal RBAC core.
//
// This package contains GORM models that map to the portal database schema.
//
// # Core Models
//
//   - Role: named bundle of permissions, unique by name
//   - Permission: an atomic grantable capability, identified by (type, target)
//   - RolePermission: role ↔ permission binding
//   - UserRole: user ↔ role binding, soft-deleted on revocation
//
// # Database Schema
//
// The database uses PostgreSQL with the following tables:
//
//   - roles: all role records
//   - permissions: all grantable capabilities
//   - role_permissions: role ↔ permission bindings
//   - user_roles: user ↔ role bindings (soft-deleted, never removed)
//
// Every table carries audit columns (created_by/created_at,
// last_modified_by/last_modified_at) and an is_deleted flag. Revocation is
// always a soft delete so the full assignment history stays queryable.
package model

// Package main implements portalctl, the administrative CLI for the portal
// RBAC core.
//
// portalctl operates the role/permission graph directly through the library
// API: it creates roles and permissions, assigns and revokes roles, and
// answers authorization queries.
//
// # Quick Start
//
//	# Run database migrations
//	portalctl db migrate
//
//	# Create a permission and a role granting it
//	portalctl permission create ModifyConfig appX --operator apollo
//	portalctl role create Admin --permissions 1 --operator apollo
//
//	# Assign the role and check access
//	portalctl role assign Admin alice --operator apollo
//	portalctl check alice ModifyConfig appX
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - PORTAL_CONFIG_PATH: directory containing portal.yml
//   - PORTAL_SUPER_ADMINS: comma-separated superadmin allowlist
//   - PORTAL_LOG_LEVEL: set to "debug" for SQL query logging
package main

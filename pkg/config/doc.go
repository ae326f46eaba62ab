// Package config provides configuration management for the portal.
//
// Configuration is loaded from a YAML file with environment variable
// overrides. The main setting this core consumes is the superadmin
// allowlist: user identifiers that bypass all role checks.
//
// # Configuration File
//
// The file lives at $PORTAL_CONFIG_PATH/portal.yml (default
// /etc/portal/config/portal.yml):
//
//	super_admins:
//	  - apollo
//	  - ops-admin
//
// # Environment Variables
//
//   - PORTAL_CONFIG_PATH: directory containing portal.yml
//   - PORTAL_SUPER_ADMINS: comma-separated allowlist, overrides the file
//
// # Provider
//
// The RBAC service consumes the allowlist through an injected Provider, not
// a package-level singleton. Provider.Watch keeps a long-running process in
// sync with file edits without a restart.
package config

package model

// RolePermission binds a role to a permission. Bindings are created together
// with the role's initial permission set and are not independently revoked.
type RolePermission struct {
	Auditable
	RoleID       int64 `gorm:"column:role_id;not null"`
	PermissionID int64 `gorm:"column:permission_id;not null"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

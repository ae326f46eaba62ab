package model

// Permission is an atomic grantable capability. The (PermissionType,
// TargetID) pair is unique among non-deleted permissions.
type Permission struct {
	Auditable
	PermissionType string `gorm:"column:permission_type;not null"`
	TargetID       string `gorm:"column:target_id;not null"`
}

func (Permission) TableName() string {
	return "permissions"
}

package model

// UserRole binds a user to a role. At most one non-deleted binding exists per
// (UserID, RoleID); revocation soft-deletes the row.
type UserRole struct {
	Auditable
	UserID string `gorm:"column:user_id;not null"`
	RoleID int64  `gorm:"column:role_id;not null"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

package model

// Role is a named bundle of permissions. The name is immutable and unique
// among non-deleted roles.
type Role struct {
	Auditable
	Name string `gorm:"column:role_name;not null"`
}

func (Role) TableName() string {
	return "roles"
}

package model

import "time"

// Auditable carries the audit and soft-delete columns shared by every table.
// Records are never hard-deleted; revocation sets Deleted and updates the
// modifier columns.
type Auditable struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement"`
	Deleted        bool      `gorm:"column:is_deleted;not null;default:false"`
	CreatedBy      string    `gorm:"column:created_by"`
	CreatedAt      time.Time `gorm:"column:created_at;autoCreateTime"`
	LastModifiedBy string    `gorm:"column:last_modified_by"`
	LastModifiedAt time.Time `gorm:"column:last_modified_at;autoUpdateTime"`
}

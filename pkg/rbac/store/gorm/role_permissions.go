package gorm

import (
	"gorm.io/gorm"

	"github.com/MASEZHAO/apollo/pkg/model"
	"github.com/MASEZHAO/apollo/pkg/rbac/store"
)

// Ensure RolePermissionsStore implements store.RolePermissionsStore
var _ store.RolePermissionsStore = (*RolePermissionsStore)(nil)

// RolePermissionsStore implements store.RolePermissionsStore using GORM
type RolePermissionsStore struct {
	db *gorm.DB
}

// FindByRoleIDs retrieves all non-deleted bindings whose role is in roleIDs.
func (s *RolePermissionsStore) FindByRoleIDs(roleIDs []int64) ([]model.RolePermission, error) {
	if len(roleIDs) == 0 {
		return nil, nil
	}
	var bindings []model.RolePermission
	err := active(s.db).Where("role_id IN ?", roleIDs).Find(&bindings).Error
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

// Create persists the given bindings.
func (s *RolePermissionsStore) Create(bindings []*model.RolePermission) error {
	if len(bindings) == 0 {
		return nil
	}
	return s.db.Create(bindings).Error
}

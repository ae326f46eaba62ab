package gorm

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/MASEZHAO/apollo/pkg/model"
	"github.com/MASEZHAO/apollo/pkg/rbac/store"
)

// Ensure PermissionsStore implements store.PermissionsStore
var _ store.PermissionsStore = (*PermissionsStore)(nil)

// PermissionsStore implements store.PermissionsStore using GORM
type PermissionsStore struct {
	db *gorm.DB
}

// FindByTypeAndTarget retrieves the non-deleted permission with the given
// (type, target) pair.
func (s *PermissionsStore) FindByTypeAndTarget(permissionType, targetID string) (*model.Permission, error) {
	var permission model.Permission
	err := active(s.db).
		Where("permission_type = ? AND target_id = ?", permissionType, targetID).
		First(&permission).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &permission, nil
}

// FindByTypesAndTarget retrieves all non-deleted permissions on targetID
// whose type is in permissionTypes.
func (s *PermissionsStore) FindByTypesAndTarget(permissionTypes []string, targetID string) ([]model.Permission, error) {
	if len(permissionTypes) == 0 {
		return nil, nil
	}
	var permissions []model.Permission
	err := active(s.db).
		Where("permission_type IN ? AND target_id = ?", permissionTypes, targetID).
		Find(&permissions).Error
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

// Create persists the given permissions, filling in generated IDs.
func (s *PermissionsStore) Create(permissions []*model.Permission) error {
	if len(permissions) == 0 {
		return nil
	}
	err := s.db.Create(permissions).Error
	if err != nil {
		key := fmt.Sprintf("%s+%s", permissions[0].PermissionType, permissions[0].TargetID)
		return translateDuplicate(err, "permission", key)
	}
	return nil
}

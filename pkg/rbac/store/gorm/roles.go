package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MASEZHAO/apollo/pkg/model"
	"github.com/MASEZHAO/apollo/pkg/rbac/store"
)

// Ensure RolesStore implements store.RolesStore
var _ store.RolesStore = (*RolesStore)(nil)

// RolesStore implements store.RolesStore using GORM
type RolesStore struct {
	db *gorm.DB
}

// FindByName retrieves the non-deleted role with the given name.
func (s *RolesStore) FindByName(name string) (*model.Role, error) {
	var role model.Role
	err := active(s.db).Where("role_name = ?", name).First(&role).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &role, nil
}

// Create persists a new role, filling in its generated ID.
func (s *RolesStore) Create(role *model.Role) error {
	return translateDuplicate(s.db.Create(role).Error, "role", role.Name)
}

package gorm

import (
	"time"

	"gorm.io/gorm"

	"github.com/MASEZHAO/apollo/pkg/model"
	"github.com/MASEZHAO/apollo/pkg/rbac/store"
)

// Ensure UserRolesStore implements store.UserRolesStore
var _ store.UserRolesStore = (*UserRolesStore)(nil)

// UserRolesStore implements store.UserRolesStore using GORM
type UserRolesStore struct {
	db *gorm.DB
}

// FindActiveByUsersAndRole retrieves the active bindings between any of
// userIDs and roleID.
func (s *UserRolesStore) FindActiveByUsersAndRole(userIDs []string, roleID int64) ([]model.UserRole, error) {
	if len(userIDs) == 0 {
		return nil, nil
	}
	var bindings []model.UserRole
	err := active(s.db).
		Where("user_id IN ? AND role_id = ?", userIDs, roleID).
		Find(&bindings).Error
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

// FindActiveByUser retrieves all active bindings for a user.
func (s *UserRolesStore) FindActiveByUser(userID string) ([]model.UserRole, error) {
	var bindings []model.UserRole
	err := active(s.db).Where("user_id = ?", userID).Find(&bindings).Error
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

// FindActiveByRole retrieves all active bindings to a role.
func (s *UserRolesStore) FindActiveByRole(roleID int64) ([]model.UserRole, error) {
	var bindings []model.UserRole
	err := active(s.db).Where("role_id = ?", roleID).Find(&bindings).Error
	if err != nil {
		return nil, err
	}
	return bindings, nil
}

// Create persists new bindings.
func (s *UserRolesStore) Create(bindings []*model.UserRole) error {
	if len(bindings) == 0 {
		return nil
	}
	err := s.db.Create(bindings).Error
	if err != nil {
		return translateDuplicate(err, "user role binding", bindings[0].UserID)
	}
	return nil
}

// SoftDelete marks the bindings with the given row IDs deleted and records
// operatorID as the last modifier.
func (s *UserRolesStore) SoftDelete(ids []int64, operatorID string) error {
	if len(ids) == 0 {
		return nil
	}
	return s.db.Model(&model.UserRole{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"is_deleted":       true,
			"last_modified_by": operatorID,
			"last_modified_at": time.Now(),
		}).Error
}

package gorm

import (
	"errors"

	"gorm.io/gorm"

	"github.com/MASEZHAO/apollo/pkg/rbac/store"
)

// Ensure Store implements store.Store
var _ store.Store = (*Store)(nil)

// Store implements store.Store using GORM
type Store struct {
	db *gorm.DB
}

// NewStore creates a new Store
func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Roles() store.RolesStore {
	return &RolesStore{db: s.db}
}

func (s *Store) Permissions() store.PermissionsStore {
	return &PermissionsStore{db: s.db}
}

func (s *Store) RolePermissions() store.RolePermissionsStore {
	return &RolePermissionsStore{db: s.db}
}

func (s *Store) UserRoles() store.UserRolesStore {
	return &UserRolesStore{db: s.db}
}

// Atomic runs fn against a store bound to a database transaction.
func (s *Store) Atomic(fn func(store.Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(NewStore(tx))
	})
}

// active is the shared predicate for every read path: soft-deleted rows are
// invisible to the RBAC core.
func active(db *gorm.DB) *gorm.DB {
	return db.Where("is_deleted = ?", false)
}

// translateDuplicate maps a storage-level unique constraint rejection to the
// caller-visible AlreadyExists failure. The constraint is the authority for
// check-then-act races the service cannot serialize.
func translateDuplicate(err error, resource, key string) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &store.AlreadyExistsError{Resource: resource, Key: key}
	}
	return err
}

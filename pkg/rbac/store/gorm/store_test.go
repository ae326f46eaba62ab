package gorm

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MASEZHAO/apollo/pkg/model"
	"github.com/MASEZHAO/apollo/pkg/rbac/store"
)

// uniqueViolation is what the postgres driver reports when a partial unique
// index rejects a write; TranslateError turns it into gorm.ErrDuplicatedKey.
var uniqueViolation = &pgconn.PgError{Code: "23505"}

func TestRolesFindByName(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "role_name", "is_deleted"}).
		AddRow(7, "Admin", false)
	mock.ExpectQuery(`SELECT .* FROM "roles"`).WillReturnRows(rows)

	role, err := s.Roles().FindByName("Admin")
	require.NoError(t, err)
	require.NotNil(t, role)
	assert.Equal(t, int64(7), role.ID)
	assert.Equal(t, "Admin", role.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRolesFindByNameAbsent(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT .* FROM "roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "role_name"}))

	role, err := s.Roles().FindByName("Ghost")
	require.NoError(t, err)
	assert.Nil(t, role)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRolesCreate(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
	mock.ExpectCommit()

	role := &model.Role{Name: "Admin"}
	require.NoError(t, s.Roles().Create(role))
	assert.Equal(t, int64(3), role.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRolesCreateDuplicateName(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "roles"`).WillReturnError(uniqueViolation)
	mock.ExpectRollback()

	err := s.Roles().Create(&model.Role{Name: "Admin"})
	require.Error(t, err)
	assert.True(t, store.IsAlreadyExists(err))
	assert.Contains(t, err.Error(), "Admin")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionsFindByTypeAndTarget(t *testing.T) {
	s, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"id", "permission_type", "target_id"}).
		AddRow(1, "ModifyConfig", "appX")
	mock.ExpectQuery(`SELECT .* FROM "permissions"`).WillReturnRows(rows)

	permission, err := s.Permissions().FindByTypeAndTarget("ModifyConfig", "appX")
	require.NoError(t, err)
	require.NotNil(t, permission)
	assert.Equal(t, int64(1), permission.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionsFindByTypesAndTargetEmptyTypes(t *testing.T) {
	s, mock := newMockStore(t)

	// No query may be issued for an empty type set.
	permissions, err := s.Permissions().FindByTypesAndTarget(nil, "appX")
	require.NoError(t, err)
	assert.Empty(t, permissions)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPermissionsCreateDuplicatePair(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "permissions"`).WillReturnError(uniqueViolation)
	mock.ExpectRollback()

	err := s.Permissions().Create([]*model.Permission{
		{PermissionType: "ModifyConfig", TargetID: "appX"},
	})
	require.Error(t, err)
	assert.True(t, store.IsAlreadyExists(err))
	assert.Contains(t, err.Error(), "ModifyConfig+appX")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRolesCreateDuplicateBinding(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "user_roles"`).WillReturnError(uniqueViolation)
	mock.ExpectRollback()

	err := s.UserRoles().Create([]*model.UserRole{{UserID: "alice", RoleID: 3}})
	require.Error(t, err)
	assert.True(t, store.IsAlreadyExists(err))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRolesFindActiveEmptyInput(t *testing.T) {
	s, mock := newMockStore(t)

	bindings, err := s.UserRoles().FindActiveByUsersAndRole(nil, 3)
	require.NoError(t, err)
	assert.Empty(t, bindings)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRolesSoftDelete(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "user_roles" SET`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()

	err := s.UserRoles().SoftDelete([]int64{10, 11}, "apollo")
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserRolesSoftDeleteNothingToDo(t *testing.T) {
	s, mock := newMockStore(t)

	require.NoError(t, s.UserRoles().SoftDelete(nil, "apollo"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomicCommitsAllWrites(t *testing.T) {
	s, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`INSERT INTO "role_permissions"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))
	mock.ExpectCommit()

	err := s.Atomic(func(tx store.Store) error {
		role := &model.Role{Name: "Admin"}
		if err := tx.Roles().Create(role); err != nil {
			return err
		}
		return tx.RolePermissions().Create([]*model.RolePermission{
			{RoleID: role.ID, PermissionID: 1},
			{RoleID: role.ID, PermissionID: 2},
		})
	})
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAtomicRollsBackOnError(t *testing.T) {
	s, mock := newMockStore(t)

	boom := errors.New("boom")

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "roles"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))
	mock.ExpectQuery(`INSERT INTO "role_permissions"`).WillReturnError(boom)
	mock.ExpectRollback()

	err := s.Atomic(func(tx store.Store) error {
		role := &model.Role{Name: "Admin"}
		if err := tx.Roles().Create(role); err != nil {
			return err
		}
		return tx.RolePermissions().Create([]*model.RolePermission{
			{RoleID: role.ID, PermissionID: 1},
		})
	})
	require.ErrorIs(t, err, boom)

	assert.NoError(t, mock.ExpectationsWereMet())
}

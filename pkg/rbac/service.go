package rbac

import (
	"strings"

	"github.com/MASEZHAO/apollo/pkg/model"
	"github.com/MASEZHAO/apollo/pkg/rbac/store"
)

// SuperAdminProvider supplies the current superadmin allowlist. It is read
// fresh on every authorization check; no staleness guarantee is assumed.
type SuperAdminProvider interface {
	SuperAdmins() []string
}

// Service is the RBAC core: role and permission management, user
// assignment, and the query-time grant decision.
type Service struct {
	store       store.Store
	superAdmins SuperAdminProvider
}

// NewService creates a Service on top of the given store and superadmin
// provider.
func NewService(s store.Store, superAdmins SuperAdminProvider) *Service {
	return &Service{store: s, superAdmins: superAdmins}
}

// CreateRoleWithPermissions creates a role together with its initial
// permission bindings. The role name must be unique among non-deleted
// roles; a conflict returns *store.AlreadyExistsError. The role and all of
// its bindings are written in one transaction.
func (s *Service) CreateRoleWithPermissions(role *model.Role, permissionIDs []int64) (*model.Role, error) {
	current, err := s.store.Roles().FindByName(role.Name)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, &store.AlreadyExistsError{Resource: "role", Key: role.Name}
	}

	err = s.store.Atomic(func(tx store.Store) error {
		if err := tx.Roles().Create(role); err != nil {
			return err
		}
		if len(permissionIDs) == 0 {
			return nil
		}
		bindings := make([]*model.RolePermission, 0, len(permissionIDs))
		for _, permissionID := range permissionIDs {
			bindings = append(bindings, &model.RolePermission{
				Auditable: model.Auditable{
					CreatedBy:      role.CreatedBy,
					LastModifiedBy: role.LastModifiedBy,
				},
				RoleID:       role.ID,
				PermissionID: permissionID,
			})
		}
		return tx.RolePermissions().Create(bindings)
	})
	if err != nil {
		return nil, err
	}
	return role, nil
}

// CreatePermission creates a single permission. The (type, target) pair must
// be unique among non-deleted permissions.
func (s *Service) CreatePermission(permission *model.Permission) (*model.Permission, error) {
	current, err := s.store.Permissions().FindByTypeAndTarget(permission.PermissionType, permission.TargetID)
	if err != nil {
		return nil, err
	}
	if current != nil {
		return nil, &store.AlreadyExistsError{
			Resource: "permission",
			Key:      permissionKey(permission.PermissionType, permission.TargetID),
		}
	}

	if err := s.store.Permissions().Create([]*model.Permission{permission}); err != nil {
		return nil, err
	}
	return permission, nil
}

// CreatePermissions creates a batch of permissions. The batch is grouped by
// target so each target needs only one batched existence query; any conflict
// with an existing permission aborts the whole batch before a single write.
// A duplicate (type, target) pair within the batch itself is rejected the
// same way. On success all permissions are written in one transaction.
func (s *Service) CreatePermissions(permissions []*model.Permission) ([]*model.Permission, error) {
	typesByTarget := make(map[string][]string)
	seen := make(map[string]struct{}, len(permissions))
	for _, permission := range permissions {
		key := permissionKey(permission.PermissionType, permission.TargetID)
		if _, dup := seen[key]; dup {
			return nil, &store.AlreadyExistsError{Resource: "permission", Key: key}
		}
		seen[key] = struct{}{}
		typesByTarget[permission.TargetID] = append(typesByTarget[permission.TargetID], permission.PermissionType)
	}

	for targetID, permissionTypes := range typesByTarget {
		current, err := s.store.Permissions().FindByTypesAndTarget(permissionTypes, targetID)
		if err != nil {
			return nil, err
		}
		if len(current) > 0 {
			return nil, &store.AlreadyExistsError{
				Resource: "permission",
				Key:      permissionKey(strings.Join(permissionTypes, ","), targetID),
			}
		}
	}

	err := s.store.Atomic(func(tx store.Store) error {
		return tx.Permissions().Create(permissions)
	})
	if err != nil {
		return nil, err
	}
	return permissions, nil
}

// AssignRoleToUsers assigns the named role to the given users, attributing
// the new bindings to operatorID. Users already holding the role are skipped;
// the returned slice contains only the userIDs actually assigned. A missing
// role returns *store.NotFoundError.
func (s *Service) AssignRoleToUsers(roleName string, userIDs []string, operatorID string) ([]string, error) {
	role, err := s.store.Roles().FindByName(roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, &store.NotFoundError{Resource: "role", Key: roleName}
	}

	existing, err := s.store.UserRoles().FindActiveByUsersAndRole(userIDs, role.ID)
	if err != nil {
		return nil, err
	}
	existingUsers := make(map[string]struct{}, len(existing))
	for _, binding := range existing {
		existingUsers[binding.UserID] = struct{}{}
	}

	var toAssign []string
	bindings := make([]*model.UserRole, 0, len(userIDs))
	for _, userID := range userIDs {
		if _, ok := existingUsers[userID]; ok {
			continue
		}
		// guards against duplicates in the input as well
		existingUsers[userID] = struct{}{}
		toAssign = append(toAssign, userID)
		bindings = append(bindings, &model.UserRole{
			Auditable: model.Auditable{
				CreatedBy:      operatorID,
				LastModifiedBy: operatorID,
			},
			UserID: userID,
			RoleID: role.ID,
		})
	}

	err = s.store.Atomic(func(tx store.Store) error {
		return tx.UserRoles().Create(bindings)
	})
	if err != nil {
		return nil, err
	}
	return toAssign, nil
}

// RemoveRoleFromUsers revokes the named role from the given users by
// soft-deleting their active bindings, attributing the change to operatorID.
// Users without an active binding are silently ignored. A missing role
// returns *store.NotFoundError.
func (s *Service) RemoveRoleFromUsers(roleName string, userIDs []string, operatorID string) error {
	role, err := s.store.Roles().FindByName(roleName)
	if err != nil {
		return err
	}
	if role == nil {
		return &store.NotFoundError{Resource: "role", Key: roleName}
	}

	existing, err := s.store.UserRoles().FindActiveByUsersAndRole(userIDs, role.ID)
	if err != nil {
		return err
	}
	ids := make([]int64, 0, len(existing))
	for _, binding := range existing {
		ids = append(ids, binding.ID)
	}

	return s.store.Atomic(func(tx store.Store) error {
		return tx.UserRoles().SoftDelete(ids, operatorID)
	})
}

// QueryUsersWithRole returns the distinct users actively holding the named
// role. A nonexistent role yields an empty result, not an error: absence of
// the role implies absence of assignees.
func (s *Service) QueryUsersWithRole(roleName string) ([]model.UserInfo, error) {
	role, err := s.store.Roles().FindByName(roleName)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}

	bindings, err := s.store.UserRoles().FindActiveByRole(role.ID)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(bindings))
	users := make([]model.UserInfo, 0, len(bindings))
	for _, binding := range bindings {
		if _, ok := seen[binding.UserID]; ok {
			continue
		}
		seen[binding.UserID] = struct{}{}
		users = append(users, model.UserInfo{UserID: binding.UserID})
	}
	return users, nil
}

// FindRoleByName retrieves the non-deleted role with the given name, or nil
// when no such role exists.
func (s *Service) FindRoleByName(roleName string) (*model.Role, error) {
	return s.store.Roles().FindByName(roleName)
}

// UserHasPermission decides whether userID may perform permissionType on
// targetID.
//
// The permission lookup comes first: an undefined permission is never
// granted, even to a superadmin, and costs a single query. The superadmin
// bypass is checked before any role expansion to short-circuit the common
// administrative path.
func (s *Service) UserHasPermission(userID, permissionType, targetID string) (bool, error) {
	permission, err := s.store.Permissions().FindByTypeAndTarget(permissionType, targetID)
	if err != nil {
		return false, err
	}
	if permission == nil {
		return false, nil
	}

	if s.IsSuperAdmin(userID) {
		return true, nil
	}

	userRoles, err := s.store.UserRoles().FindActiveByUser(userID)
	if err != nil {
		return false, err
	}
	if len(userRoles) == 0 {
		return false, nil
	}

	roleIDs := make([]int64, 0, len(userRoles))
	for _, userRole := range userRoles {
		roleIDs = append(roleIDs, userRole.RoleID)
	}

	rolePermissions, err := s.store.RolePermissions().FindByRoleIDs(roleIDs)
	if err != nil {
		return false, err
	}
	if len(rolePermissions) == 0 {
		return false, nil
	}

	granted := make(map[int64]struct{}, len(rolePermissions))
	for _, binding := range rolePermissions {
		granted[binding.PermissionID] = struct{}{}
	}
	_, ok := granted[permission.ID]
	return ok, nil
}

// IsSuperAdmin reports whether userID is in the configured superadmin
// allowlist.
func (s *Service) IsSuperAdmin(userID string) bool {
	for _, admin := range s.superAdmins.SuperAdmins() {
		if admin == userID {
			return true
		}
	}
	return false
}

func permissionKey(permissionType, targetID string) string {
	return permissionType + "+" + targetID
}

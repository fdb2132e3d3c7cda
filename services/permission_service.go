package services

import (
	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/rs/zerolog"
)

// Permissions the policy engine knows about.
const (
	PermCreateKey       = "createKey"
	PermEditKey         = "editKey"
	PermManageWorkgroup = "manageWorkgroup"
	PermManageMedia     = "manageMedia"
)

// Grant is the policy engine's answer: the subset of requested permissions
// the user holds, plus the organization and workgroup scope they hold them in.
type Grant struct {
	Permissions     []string `json:"permissions"`
	OrganizationIDs []uint   `json:"organization_ids"`
	WorkgroupIDs    []uint   `json:"workgroup_ids"`
}

func (g Grant) Has(perm string) bool {
	for _, p := range g.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

func (g Grant) InWorkgroup(id uint) bool {
	for _, w := range g.WorkgroupIDs {
		if w == id {
			return true
		}
	}
	return false
}

type PermissionService interface {
	Resolve(userID string, requested []string) (Grant, error)
	CanEditKey(userID string, key *models.Key) (bool, error)
}

type permissionService struct {
	workgroupRepo repositories.WorkgroupRepository
	log           zerolog.Logger
}

func NewPermissionService(workgroupRepo repositories.WorkgroupRepository, log zerolog.Logger) PermissionService {
	return &permissionService{workgroupRepo: workgroupRepo, log: log}
}

// Resolve grants every requested permission to users holding at least one
// workgroup membership; users with none get nothing. The granted subset is
// returned together with the user's workgroup and organization ids.
func (s *permissionService) Resolve(userID string, requested []string) (Grant, error) {
	memberships, err := s.workgroupRepo.GetMemberships(userID)
	if err != nil {
		s.log.Error().Str("op", "permission.resolve").Err(err).Msg("operation failed")
		return Grant{}, models.InternalServer("")
	}

	grant := Grant{}
	seen := make(map[uint]bool)
	for _, m := range memberships {
		grant.WorkgroupIDs = append(grant.WorkgroupIDs, m.WorkgroupID)
		workgroup, err := s.workgroupRepo.GetByID(m.WorkgroupID)
		if err != nil {
			continue
		}
		if !seen[workgroup.OrganizationID] {
			seen[workgroup.OrganizationID] = true
			grant.OrganizationIDs = append(grant.OrganizationIDs, workgroup.OrganizationID)
		}
	}
	if len(grant.WorkgroupIDs) > 0 {
		grant.Permissions = append(grant.Permissions, requested...)
	}
	return grant, nil
}

// CanEditKey allows the key's creator and members of its workgroup.
func (s *permissionService) CanEditKey(userID string, key *models.Key) (bool, error) {
	if key.CreatedBy == userID {
		return true, nil
	}
	if key.WorkgroupID == nil {
		return false, nil
	}
	memberships, err := s.workgroupRepo.GetMemberships(userID)
	if err != nil {
		s.log.Error().Str("op", "permission.canEditKey").Err(err).Msg("operation failed")
		return false, models.InternalServer("")
	}
	for _, m := range memberships {
		if m.WorkgroupID == *key.WorkgroupID {
			return true, nil
		}
	}
	return false, nil
}

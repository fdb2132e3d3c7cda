package services

import (
	"errors"

	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type GroupService interface {
	Create(req models.CreateGroupRequest) (*models.Group, error)
	Get(id uint) (*models.Group, error)
	GetAll() ([]models.Group, error)
	Delete(id uint) error
}

type groupService struct {
	groupRepo repositories.GroupRepository
	log       zerolog.Logger
}

func NewGroupService(groupRepo repositories.GroupRepository, log zerolog.Logger) GroupService {
	return &groupService{groupRepo: groupRepo, log: log}
}

func (s *groupService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

// Create rejects a name already used by a sibling group.
func (s *groupService) Create(req models.CreateGroupRequest) (*models.Group, error) {
	_, err := s.groupRepo.GetByNameUnderParent(req.Name, req.ParentID)
	if err == nil {
		return nil, models.Conflict("group name already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.internal("group.create", err)
	}

	group := &models.Group{Name: req.Name, MediaID: req.MediaID}
	var infos []models.GroupInfo
	if req.Names.No != "" {
		infos = append(infos, models.GroupInfo{Language: "no", Name: req.Names.No})
	}
	if req.Names.En != "" {
		infos = append(infos, models.GroupInfo{Language: "en", Name: req.Names.En})
	}
	if err := s.groupRepo.Create(group, infos, req.ParentID); err != nil {
		return nil, s.internal("group.create", err)
	}
	return group, nil
}

func (s *groupService) Get(id uint) (*models.Group, error) {
	group, err := s.groupRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("group not found")
		}
		return nil, s.internal("group.get", err)
	}
	return group, nil
}

func (s *groupService) GetAll() ([]models.Group, error) {
	groups, err := s.groupRepo.GetAll()
	if err != nil {
		return nil, s.internal("group.list", err)
	}
	return groups, nil
}

func (s *groupService) Delete(id uint) error {
	if _, err := s.groupRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("group not found")
		}
		return s.internal("group.delete", err)
	}
	if err := s.groupRepo.Delete(id); err != nil {
		return s.internal("group.delete", err)
	}
	return nil
}

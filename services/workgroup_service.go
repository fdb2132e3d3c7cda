package services

import (
	"errors"

	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type WorkgroupService interface {
	Create(req models.CreateWorkgroupRequest) (*models.Workgroup, error)
	Get(id uint) (*models.Workgroup, error)
	GetByOrganization(organizationID uint) ([]models.Workgroup, error)
	AddEditor(req models.CreateEditorRequest) (*models.Editor, error)
	RemoveEditor(id uint) error
	GetEditors(workgroupID uint) ([]models.Editor, error)
}

type workgroupService struct {
	workgroupRepo repositories.WorkgroupRepository
	orgRepo       repositories.OrganizationRepository
	log           zerolog.Logger
}

func NewWorkgroupService(workgroupRepo repositories.WorkgroupRepository, orgRepo repositories.OrganizationRepository, log zerolog.Logger) WorkgroupService {
	return &workgroupService{workgroupRepo: workgroupRepo, orgRepo: orgRepo, log: log}
}

func (s *workgroupService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

func (s *workgroupService) Create(req models.CreateWorkgroupRequest) (*models.Workgroup, error) {
	if _, err := s.orgRepo.GetByID(req.OrganizationID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("organization not found")
		}
		return nil, s.internal("workgroup.create", err)
	}

	_, err := s.workgroupRepo.GetByName(req.Name, req.OrganizationID)
	if err == nil {
		return nil, models.Conflict("workgroup name already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.internal("workgroup.create", err)
	}

	workgroup := &models.Workgroup{Name: req.Name, OrganizationID: req.OrganizationID}
	if err := s.workgroupRepo.Create(workgroup); err != nil {
		return nil, s.internal("workgroup.create", err)
	}
	return workgroup, nil
}

func (s *workgroupService) Get(id uint) (*models.Workgroup, error) {
	workgroup, err := s.workgroupRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("workgroup not found")
		}
		return nil, s.internal("workgroup.get", err)
	}
	return workgroup, nil
}

func (s *workgroupService) GetByOrganization(organizationID uint) ([]models.Workgroup, error) {
	workgroups, err := s.workgroupRepo.GetByOrganization(organizationID)
	if err != nil {
		return nil, s.internal("workgroup.list", err)
	}
	return workgroups, nil
}

func (s *workgroupService) AddEditor(req models.CreateEditorRequest) (*models.Editor, error) {
	if _, err := s.workgroupRepo.GetByID(req.WorkgroupID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("workgroup not found")
		}
		return nil, s.internal("editor.add", err)
	}

	editors, err := s.workgroupRepo.GetEditors(req.WorkgroupID)
	if err != nil {
		return nil, s.internal("editor.add", err)
	}
	for _, e := range editors {
		if e.UserID == req.UserID {
			return nil, models.Conflict("user is already an editor of the workgroup")
		}
	}

	editor := &models.Editor{UserID: req.UserID, WorkgroupID: req.WorkgroupID}
	if err := s.workgroupRepo.AddEditor(editor); err != nil {
		return nil, s.internal("editor.add", err)
	}
	return editor, nil
}

func (s *workgroupService) RemoveEditor(id uint) error {
	if err := s.workgroupRepo.RemoveEditor(id); err != nil {
		return s.internal("editor.remove", err)
	}
	return nil
}

func (s *workgroupService) GetEditors(workgroupID uint) ([]models.Editor, error) {
	editors, err := s.workgroupRepo.GetEditors(workgroupID)
	if err != nil {
		return nil, s.internal("editor.list", err)
	}
	return editors, nil
}

package services

import (
	"errors"

	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type OrganizationService interface {
	Create(req models.CreateOrganizationRequest) (*models.Organization, error)
	Get(id uint) (*models.Organization, error)
	GetAll() ([]models.Organization, error)
}

type organizationService struct {
	orgRepo repositories.OrganizationRepository
	log     zerolog.Logger
}

func NewOrganizationService(orgRepo repositories.OrganizationRepository, log zerolog.Logger) OrganizationService {
	return &organizationService{orgRepo: orgRepo, log: log}
}

func (s *organizationService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

func (s *organizationService) Create(req models.CreateOrganizationRequest) (*models.Organization, error) {
	_, err := s.orgRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.Conflict("organization name already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.internal("organization.create", err)
	}

	org := &models.Organization{Name: req.Name}
	var infos []models.OrganizationInfo
	if req.Names.No != "" {
		infos = append(infos, models.OrganizationInfo{Language: "no", Name: req.Names.No})
	}
	if req.Names.En != "" {
		infos = append(infos, models.OrganizationInfo{Language: "en", Name: req.Names.En})
	}
	if err := s.orgRepo.Create(org, infos); err != nil {
		return nil, s.internal("organization.create", err)
	}
	return org, nil
}

func (s *organizationService) Get(id uint) (*models.Organization, error) {
	org, err := s.orgRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("organization not found")
		}
		return nil, s.internal("organization.get", err)
	}
	return org, nil
}

func (s *organizationService) GetAll() ([]models.Organization, error) {
	orgs, err := s.orgRepo.GetAll()
	if err != nil {
		return nil, s.internal("organization.list", err)
	}
	return orgs, nil
}

package repositories

import (
	"keyeditor-api/models"

	"gorm.io/gorm"
)

type OrganizationRepository interface {
	Create(org *models.Organization, infos []models.OrganizationInfo) error
	GetByID(id uint) (*models.Organization, error)
	GetByName(name string) (*models.Organization, error)
	GetAll() ([]models.Organization, error)
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

func (r *organizationRepository) Create(org *models.Organization, infos []models.OrganizationInfo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(org).Error; err != nil {
			return err
		}
		for i := range infos {
			infos[i].OrganizationID = org.ID
		}
		if len(infos) > 0 {
			if err := tx.Create(&infos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *organizationRepository) GetByID(id uint) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Preload("Info").First(&org, id).Error
	return &org, err
}

func (r *organizationRepository) GetByName(name string) (*models.Organization, error) {
	var org models.Organization
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&org).Error
	return &org, err
}

func (r *organizationRepository) GetAll() ([]models.Organization, error) {
	var orgs []models.Organization
	err := r.db.Preload("Info").Order("name asc").Find(&orgs).Error
	return orgs, err
}

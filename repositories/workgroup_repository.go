package repositories

import (
	"keyeditor-api/models"

	"gorm.io/gorm"
)

type WorkgroupRepository interface {
	Create(workgroup *models.Workgroup) error
	GetByID(id uint) (*models.Workgroup, error)
	GetByName(name string, organizationID uint) (*models.Workgroup, error)
	GetByOrganization(organizationID uint) ([]models.Workgroup, error)
	AddEditor(editor *models.Editor) error
	RemoveEditor(id uint) error
	GetEditors(workgroupID uint) ([]models.Editor, error)
	GetMemberships(userID string) ([]models.Editor, error)
}

type workgroupRepository struct {
	db *gorm.DB
}

func NewWorkgroupRepository(db *gorm.DB) WorkgroupRepository {
	return &workgroupRepository{db: db}
}

func (r *workgroupRepository) Create(workgroup *models.Workgroup) error {
	return r.db.Create(workgroup).Error
}

func (r *workgroupRepository) GetByID(id uint) (*models.Workgroup, error) {
	var workgroup models.Workgroup
	err := r.db.Preload("Organization").First(&workgroup, id).Error
	return &workgroup, err
}

func (r *workgroupRepository) GetByName(name string, organizationID uint) (*models.Workgroup, error) {
	var workgroup models.Workgroup
	err := r.db.Where("LOWER(name) = LOWER(?) AND organization_id = ?", name, organizationID).
		First(&workgroup).Error
	return &workgroup, err
}

func (r *workgroupRepository) GetByOrganization(organizationID uint) ([]models.Workgroup, error) {
	var workgroups []models.Workgroup
	err := r.db.Where("organization_id = ?", organizationID).Find(&workgroups).Error
	return workgroups, err
}

func (r *workgroupRepository) AddEditor(editor *models.Editor) error {
	return r.db.Create(editor).Error
}

func (r *workgroupRepository) RemoveEditor(id uint) error {
	return r.db.Delete(&models.Editor{}, id).Error
}

func (r *workgroupRepository) GetEditors(workgroupID uint) ([]models.Editor, error) {
	var editors []models.Editor
	err := r.db.Where("workgroup_id = ?", workgroupID).Find(&editors).Error
	return editors, err
}

func (r *workgroupRepository) GetMemberships(userID string) ([]models.Editor, error) {
	var editors []models.Editor
	err := r.db.Where("user_id = ?", userID).Find(&editors).Error
	return editors, err
}

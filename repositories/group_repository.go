package repositories

import (
	"keyeditor-api/models"

	"gorm.io/gorm"
)

type GroupRepository interface {
	Create(group *models.Group, infos []models.GroupInfo, parentID *uint) error
	GetByID(id uint) (*models.Group, error)
	GetByNameUnderParent(name string, parentID *uint) (*models.Group, error)
	GetAll() ([]models.Group, error)
	Delete(id uint) error
}

type groupRepository struct {
	db *gorm.DB
}

func NewGroupRepository(db *gorm.DB) GroupRepository {
	return &groupRepository{db: db}
}

func (r *groupRepository) Create(group *models.Group, infos []models.GroupInfo, parentID *uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(group).Error; err != nil {
			return err
		}
		for i := range infos {
			infos[i].GroupID = group.ID
		}
		if len(infos) > 0 {
			if err := tx.Create(&infos).Error; err != nil {
				return err
			}
		}
		if parentID != nil {
			link := models.GroupParent{GroupID: group.ID, ParentID: *parentID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *groupRepository) GetByID(id uint) (*models.Group, error) {
	var group models.Group
	err := r.db.Preload("Info").First(&group, id).Error
	return &group, err
}

func (r *groupRepository) GetByNameUnderParent(name string, parentID *uint) (*models.Group, error) {
	var group models.Group
	query := r.db.Model(&models.Group{}).Where("LOWER(groups.name) = LOWER(?)", name)
	if parentID != nil {
		query = query.Joins("JOIN group_parents ON group_parents.group_id = groups.id").
			Where("group_parents.parent_id = ?", *parentID)
	} else {
		query = query.Where("NOT EXISTS (SELECT 1 FROM group_parents WHERE group_parents.group_id = groups.id)")
	}
	err := query.First(&group).Error
	return &group, err
}

func (r *groupRepository) GetAll() ([]models.Group, error) {
	var groups []models.Group
	err := r.db.Preload("Info").Order("name asc").Find(&groups).Error
	return groups, err
}

func (r *groupRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("group_id = ? OR parent_id = ?", id, id).Delete(&models.GroupParent{}).Error; err != nil {
			return err
		}
		if err := tx.Where("group_id = ?", id).Delete(&models.GroupInfo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Group{}, id).Error
	})
}

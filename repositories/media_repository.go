package repositories

import (
	"keyeditor-api/models"

	"gorm.io/gorm"
)

type MediaRepository interface {
	Create(media *models.Media, infos []models.MediaInfo) error
	GetByID(id uint) (*models.Media, error)
	Update(media *models.Media) error
	// Delete removes the info rows and the media row in one transaction.
	// Backing files must already be gone when this is called.
	Delete(id uint) error
}

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(media *models.Media, infos []models.MediaInfo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(media).Error; err != nil {
			return err
		}
		for i := range infos {
			infos[i].MediaID = media.ID
		}
		if len(infos) > 0 {
			if err := tx.Create(&infos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *mediaRepository) GetByID(id uint) (*models.Media, error) {
	var media models.Media
	err := r.db.Preload("Info").First(&media, id).Error
	return &media, err
}

func (r *mediaRepository) Update(media *models.Media) error {
	return r.db.Save(media).Error
}

func (r *mediaRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("media_id = ?", id).Delete(&models.MediaInfo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Media{}, id).Error
	})
}

package repositories

import (
	"keyeditor-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CollectionRepository interface {
	Create(collection *models.Collection, infos []models.CollectionInfo, keyIDs []uuid.UUID) error
	GetByID(id uint) (*models.Collection, error)
	GetByName(name string) (*models.Collection, error)
	GetAll() ([]models.Collection, error)
	Delete(id uint) error
}

type collectionRepository struct {
	db *gorm.DB
}

func NewCollectionRepository(db *gorm.DB) CollectionRepository {
	return &collectionRepository{db: db}
}

func (r *collectionRepository) Create(collection *models.Collection, infos []models.CollectionInfo, keyIDs []uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(collection).Error; err != nil {
			return err
		}
		for i := range infos {
			infos[i].CollectionID = collection.ID
		}
		if len(infos) > 0 {
			if err := tx.Create(&infos).Error; err != nil {
				return err
			}
		}
		for _, keyID := range keyIDs {
			link := models.KeyCollection{KeyID: keyID, CollectionID: collection.ID}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *collectionRepository) GetByID(id uint) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.Preload("Info").Preload("Keys").First(&collection, id).Error
	return &collection, err
}

func (r *collectionRepository) GetByName(name string) (*models.Collection, error) {
	var collection models.Collection
	err := r.db.Where("LOWER(name) = LOWER(?)", name).First(&collection).Error
	return &collection, err
}

func (r *collectionRepository) GetAll() ([]models.Collection, error) {
	var collections []models.Collection
	err := r.db.Preload("Info").Order("name asc").Find(&collections).Error
	return collections, err
}

func (r *collectionRepository) Delete(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&models.KeyCollection{}).Error; err != nil {
			return err
		}
		if err := tx.Where("collection_id = ?", id).Delete(&models.CollectionInfo{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Collection{}, id).Error
	})
}

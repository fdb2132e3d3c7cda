package repositories

import (
	"keyeditor-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KeyRepository interface {
	Create(key *models.Key, infos []models.KeyInfo) error
	GetByID(id uuid.UUID) (*models.Key, error)
	GetList(params models.KeyListParams, isPublic bool) ([]models.Key, int64, error)
	Update(key *models.Key) error
	UpdateInfo(info *models.KeyInfo) error
	ReplaceCollections(keyID uuid.UUID, collectionIDs []uint) error
	Delete(id uuid.UUID) error
}

type keyRepository struct {
	db *gorm.DB
}

func NewKeyRepository(db *gorm.DB) KeyRepository {
	return &keyRepository{db: db}
}

func (r *keyRepository) Create(key *models.Key, infos []models.KeyInfo) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(key).Error; err != nil {
			return err
		}
		for i := range infos {
			infos[i].KeyID = key.ID
		}
		if len(infos) > 0 {
			if err := tx.Create(&infos).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *keyRepository) GetByID(id uuid.UUID) (*models.Key, error) {
	var key models.Key
	err := r.db.Preload("Info").
		Preload("Workgroup").
		Preload("Collections").
		First(&key, "id = ?", id).Error
	return &key, err
}

func (r *keyRepository) GetList(params models.KeyListParams, isPublic bool) ([]models.Key, int64, error) {
	var keys []models.Key
	var total int64

	query := r.db.Model(&models.Key{}).Preload("Info")

	if isPublic {
		query = query.Where("status IN ?", []models.KeyStatus{models.KeyStatusPublished, models.KeyStatusBeta})
	} else if params.Status != "" {
		query = query.Where("status = ?", params.Status)
	}
	if params.WorkgroupID > 0 {
		query = query.Where("workgroup_id = ?", params.WorkgroupID)
	}
	if params.GroupID > 0 {
		query = query.Where("group_id = ?", params.GroupID)
	}

	query.Count(&total)

	offset := (params.Page - 1) * params.Limit
	err := query.Order("created_at desc").Offset(offset).Limit(params.Limit).Find(&keys).Error

	return keys, total, err
}

func (r *keyRepository) Update(key *models.Key) error {
	return r.db.Save(key).Error
}

func (r *keyRepository) UpdateInfo(info *models.KeyInfo) error {
	return r.db.Save(info).Error
}

func (r *keyRepository) ReplaceCollections(keyID uuid.UUID, collectionIDs []uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("key_id = ?", keyID).Delete(&models.KeyCollection{}).Error; err != nil {
			return err
		}
		for _, cid := range collectionIDs {
			link := models.KeyCollection{KeyID: keyID, CollectionID: cid}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the key together with everything hanging off it: revisions
// and their join rows, the taxon/character/state id rows, info rows and
// collection links. A revision join row must never outlive its key.
func (r *keyRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var revisionIDs []uuid.UUID
		if err := tx.Model(&models.KeyRevision{}).Where("key_id = ?", id).
			Pluck("revision_id", &revisionIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("key_id = ?", id).Delete(&models.KeyRevision{}).Error; err != nil {
			return err
		}
		if len(revisionIDs) > 0 {
			if err := tx.Where("id IN ?", revisionIDs).Delete(&models.Revision{}).Error; err != nil {
				return err
			}
		}
		characterIDs := tx.Model(&models.Character{}).Select("id").Where("key_id = ?", id)
		if err := tx.Where("character_id IN (?)", characterIDs).Delete(&models.CharacterState{}).Error; err != nil {
			return err
		}
		if err := tx.Where("key_id = ?", id).Delete(&models.Character{}).Error; err != nil {
			return err
		}
		if err := tx.Where("key_id = ?", id).Delete(&models.Taxon{}).Error; err != nil {
			return err
		}
		if err := tx.Where("key_id = ?", id).Delete(&models.KeyInfo{}).Error; err != nil {
			return err
		}
		if err := tx.Where("key_id = ?", id).Delete(&models.KeyCollection{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Key{}, "id = ?", id).Error
	})
}

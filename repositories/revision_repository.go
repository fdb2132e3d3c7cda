package repositories

import (
	"keyeditor-api/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RevisionRepository interface {
	// CreateLinked inserts a revision together with its key join row; when
	// setPointer is true the key's current-revision pointer is updated in
	// the same transaction.
	CreateLinked(revision *models.Revision, keyID uuid.UUID, setPointer bool) error
	GetByID(id uuid.UUID) (*models.Revision, error)
	GetKeyID(revisionID uuid.UUID) (uuid.UUID, error)
	GetByKey(keyID uuid.UUID) ([]models.Revision, error)
	// Promote updates a revision's status and, for an acceptance, repoints
	// the key in the same transaction.
	Promote(revision *models.Revision, keyID uuid.UUID, repoint bool) error
}

type revisionRepository struct {
	db *gorm.DB
}

func NewRevisionRepository(db *gorm.DB) RevisionRepository {
	return &revisionRepository{db: db}
}

func (r *revisionRepository) CreateLinked(revision *models.Revision, keyID uuid.UUID, setPointer bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(revision).Error; err != nil {
			return err
		}
		link := models.KeyRevision{KeyID: keyID, RevisionID: revision.ID}
		if err := tx.Create(&link).Error; err != nil {
			return err
		}
		if setPointer {
			return tx.Model(&models.Key{}).Where("id = ?", keyID).
				Update("revision_id", revision.ID).Error
		}
		return nil
	})
}

func (r *revisionRepository) GetByID(id uuid.UUID) (*models.Revision, error) {
	var revision models.Revision
	err := r.db.First(&revision, "id = ?", id).Error
	return &revision, err
}

func (r *revisionRepository) GetKeyID(revisionID uuid.UUID) (uuid.UUID, error) {
	var link models.KeyRevision
	err := r.db.First(&link, "revision_id = ?", revisionID).Error
	return link.KeyID, err
}

func (r *revisionRepository) GetByKey(keyID uuid.UUID) ([]models.Revision, error) {
	var revisions []models.Revision
	err := r.db.
		Joins("JOIN key_revisions ON key_revisions.revision_id = revisions.id").
		Where("key_revisions.key_id = ?", keyID).
		Order("revisions.created_at desc").
		Find(&revisions).Error
	return revisions, err
}

func (r *revisionRepository) Promote(revision *models.Revision, keyID uuid.UUID, repoint bool) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(revision).Error; err != nil {
			return err
		}
		if repoint {
			return tx.Model(&models.Key{}).Where("id = ?", keyID).
				Update("revision_id", revision.ID).Error
		}
		return nil
	})
}

package repositories

import (
	"keyeditor-api/models"

	"gorm.io/gorm"
)

// EntityRepository manages the lightweight taxon/character/state rows whose
// only job is to allocate globally unique ids. The rows are created once and
// never updated afterwards.
type EntityRepository interface {
	CreateTaxon(taxon *models.Taxon) error
	GetTaxon(id uint) (*models.Taxon, error)
	DeleteTaxa(ids []uint) error
	CreateCharacter(character *models.Character) error
	GetCharacter(id uint) (*models.Character, error)
	DeleteCharacter(id uint) error
	CreateState(state *models.CharacterState) error
	GetState(id uint) (*models.CharacterState, error)
	DeleteStatesByCharacter(characterID uint) error
}

type entityRepository struct {
	db *gorm.DB
}

func NewEntityRepository(db *gorm.DB) EntityRepository {
	return &entityRepository{db: db}
}

func (r *entityRepository) CreateTaxon(taxon *models.Taxon) error {
	return r.db.Create(taxon).Error
}

func (r *entityRepository) GetTaxon(id uint) (*models.Taxon, error) {
	var taxon models.Taxon
	err := r.db.First(&taxon, id).Error
	return &taxon, err
}

func (r *entityRepository) DeleteTaxa(ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.Delete(&models.Taxon{}, ids).Error
}

func (r *entityRepository) CreateCharacter(character *models.Character) error {
	return r.db.Create(character).Error
}

func (r *entityRepository) GetCharacter(id uint) (*models.Character, error) {
	var character models.Character
	err := r.db.First(&character, id).Error
	return &character, err
}

func (r *entityRepository) DeleteCharacter(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("character_id = ?", id).Delete(&models.CharacterState{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Character{}, id).Error
	})
}

func (r *entityRepository) CreateState(state *models.CharacterState) error {
	return r.db.Create(state).Error
}

func (r *entityRepository) GetState(id uint) (*models.CharacterState, error) {
	var state models.CharacterState
	err := r.db.First(&state, id).Error
	return &state, err
}

func (r *entityRepository) DeleteStatesByCharacter(characterID uint) error {
	return r.db.Where("character_id = ?", characterID).Delete(&models.CharacterState{}).Error
}

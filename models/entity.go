package models

import (
	"time"

	"github.com/google/uuid"
)

// Taxon, Character and CharacterState rows exist only to allocate globally
// unique ids. Everything editable about them lives inside the content json of
// whichever revision currently represents the key; the rows are never updated
// after creation.

type Taxon struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	KeyID     uuid.UUID `json:"key_id" gorm:"type:uuid;not null;index"`
	CreatedAt time.Time `json:"created_at"`
}

type CharacterType string

const (
	CharacterExclusive  CharacterType = "exclusive"
	CharacterMultistate CharacterType = "multistate"
	CharacterNumerical  CharacterType = "numerical"
)

type Character struct {
	ID        uint          `json:"id" gorm:"primarykey"`
	KeyID     uuid.UUID     `json:"key_id" gorm:"type:uuid;not null;index"`
	Type      CharacterType `json:"type" gorm:"not null"`
	CreatedAt time.Time     `json:"created_at"`
}

type CharacterState struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	CharacterID uint      `json:"character_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}

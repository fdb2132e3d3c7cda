package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KeyStatus string

const (
	KeyStatusPrivate   KeyStatus = "PRIVATE"
	KeyStatusBeta      KeyStatus = "BETA"
	KeyStatusPublished KeyStatus = "PUBLISHED"
	KeyStatusHidden    KeyStatus = "HIDDEN"
)

type Key struct {
	ID          uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Status      KeyStatus      `json:"status" gorm:"default:'PRIVATE'"`
	CreatedBy   string         `json:"created_by" gorm:"not null"`
	WorkgroupID *uint          `json:"workgroup_id"`
	Workgroup   *Workgroup     `json:"workgroup,omitempty" gorm:"foreignKey:WorkgroupID"`
	GroupID     *uint          `json:"group_id"`
	Group       *Group         `json:"group,omitempty" gorm:"foreignKey:GroupID"`
	RevisionID  *uuid.UUID     `json:"revision_id" gorm:"type:uuid"`
	Revision    *Revision      `json:"revision,omitempty" gorm:"foreignKey:RevisionID"`
	Info        []KeyInfo      `json:"info,omitempty" gorm:"foreignKey:KeyID"`
	Collections []Collection   `json:"collections,omitempty" gorm:"many2many:key_collections;"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `json:"-" gorm:"index"`
}

// KeyInfo holds the per-language title and description for a key.
type KeyInfo struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	KeyID       uuid.UUID `json:"key_id" gorm:"type:uuid;not null;index"`
	Language    string    `json:"language" gorm:"size:2;not null"`
	Title       string    `json:"title"`
	Description string    `json:"description" gorm:"type:text"`
	CreatedAt   time.Time `json:"created_at"`
}

type KeyCollection struct {
	KeyID        uuid.UUID `json:"key_id" gorm:"type:uuid;primaryKey"`
	CollectionID uint      `json:"collection_id" gorm:"primaryKey"`
	CreatedAt    time.Time `json:"created_at"`
}

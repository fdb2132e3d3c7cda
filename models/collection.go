package models

import (
	"time"

	"gorm.io/gorm"
)

// Collection is a curated set of keys, typically owned by a workgroup.
type Collection struct {
	ID          uint             `json:"id" gorm:"primarykey"`
	Name        string           `json:"name" gorm:"not null"`
	WorkgroupID *uint            `json:"workgroup_id"`
	MediaID     *uint            `json:"media_id"`
	Info        []CollectionInfo `json:"info,omitempty" gorm:"foreignKey:CollectionID"`
	Keys        []Key            `json:"keys,omitempty" gorm:"many2many:key_collections;"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
	DeletedAt   gorm.DeletedAt   `json:"-" gorm:"index"`
}

type CollectionInfo struct {
	ID           uint      `json:"id" gorm:"primarykey"`
	CollectionID uint      `json:"collection_id" gorm:"not null;index"`
	Language     string    `json:"language" gorm:"size:2;not null"`
	Name         string    `json:"name"`
	Description  string    `json:"description" gorm:"type:text"`
	CreatedAt    time.Time `json:"created_at"`
}

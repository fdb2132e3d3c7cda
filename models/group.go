package models

import (
	"time"

	"gorm.io/gorm"
)

// Group is a taxonomic grouping used to categorize keys. Groups form a
// hierarchy through GroupParent rows; names are unique among siblings.
type Group struct {
	ID        uint           `json:"id" gorm:"primarykey"`
	Name      string         `json:"name" gorm:"not null"`
	MediaID   *uint          `json:"media_id"`
	Info      []GroupInfo    `json:"info,omitempty" gorm:"foreignKey:GroupID"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

type GroupInfo struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	GroupID   uint      `json:"group_id" gorm:"not null;index"`
	Language  string    `json:"language" gorm:"size:2;not null"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type GroupParent struct {
	GroupID   uint      `json:"group_id" gorm:"primaryKey"`
	ParentID  uint      `json:"parent_id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
}

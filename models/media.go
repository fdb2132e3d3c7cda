package models

import (
	"time"

	"gorm.io/gorm"
)

type MediaType string

const (
	MediaImage MediaType = "image"
	MediaVideo MediaType = "video"
)

type Media struct {
	ID                uint           `json:"id" gorm:"primarykey"`
	Filename          string         `json:"filename" gorm:"not null"`
	ThumbnailFilename string         `json:"thumbnail_filename"`
	Type              MediaType      `json:"type" gorm:"default:'image'"`
	License           string         `json:"license"`
	Creators          string         `json:"creators"`
	CreatedBy         string         `json:"created_by" gorm:"not null"`
	Info              []MediaInfo    `json:"info,omitempty" gorm:"foreignKey:MediaID"`
	CreatedAt         time.Time      `json:"created_at"`
	UpdatedAt         time.Time      `json:"updated_at"`
	DeletedAt         gorm.DeletedAt `json:"-" gorm:"index"`
}

type MediaInfo struct {
	ID        uint      `json:"id" gorm:"primarykey"`
	MediaID   uint      `json:"media_id" gorm:"not null;index"`
	Language  string    `json:"language" gorm:"size:2;not null"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}

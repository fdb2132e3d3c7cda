package models

import (
	"time"

	"gorm.io/gorm"
)

type Organization struct {
	ID        uint               `json:"id" gorm:"primarykey"`
	Name      string             `json:"name" gorm:"uniqueIndex;not null"`
	Info      []OrganizationInfo `json:"info,omitempty" gorm:"foreignKey:OrganizationID"`
	CreatedAt time.Time          `json:"created_at"`
	UpdatedAt time.Time          `json:"updated_at"`
	DeletedAt gorm.DeletedAt     `json:"-" gorm:"index"`
}

type OrganizationInfo struct {
	ID             uint      `json:"id" gorm:"primarykey"`
	OrganizationID uint      `json:"organization_id" gorm:"not null;index"`
	Language       string    `json:"language" gorm:"size:2;not null"`
	Name           string    `json:"name"`
	CreatedAt      time.Time `json:"created_at"`
}

// Workgroup scopes editing rights on keys; every workgroup belongs to an
// organization.
type Workgroup struct {
	ID             uint           `json:"id" gorm:"primarykey"`
	Name           string         `json:"name" gorm:"not null"`
	OrganizationID uint           `json:"organization_id" gorm:"not null;index"`
	Organization   *Organization  `json:"organization,omitempty" gorm:"foreignKey:OrganizationID"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// Editor is a user's membership in a workgroup.
type Editor struct {
	ID          uint      `json:"id" gorm:"primarykey"`
	UserID      string    `json:"user_id" gorm:"not null;index"`
	WorkgroupID uint      `json:"workgroup_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`
}

// User mirrors the identity provider's stable subject; no credentials are
// stored locally.
type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

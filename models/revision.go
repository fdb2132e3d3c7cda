package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type RevisionStatus string

const (
	StatusDraft    RevisionStatus = "DRAFT"
	StatusReview   RevisionStatus = "REVIEW"
	StatusAccepted RevisionStatus = "ACCEPTED"
)

// Revision modes. Simple mode hides premises and numerical characters in the
// editor; the backend stores the flag verbatim.
const (
	ModeSimple   = 1
	ModeAdvanced = 2
)

// Revision is an immutable snapshot of a key's content and media ledger.
// Content and Media are stored as jsonb blobs; the typed view lives in the
// content package and is only materialized while an edit is in flight.
type Revision struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Content   datatypes.JSON `json:"content" gorm:"type:jsonb"`
	Media     datatypes.JSON `json:"media" gorm:"type:jsonb"`
	Note      string         `json:"note"`
	Status    RevisionStatus `json:"status" gorm:"default:'DRAFT'"`
	Mode      int            `json:"mode" gorm:"default:1"`
	CreatedBy string         `json:"created_by" gorm:"not null"`
	CreatedAt time.Time      `json:"created_at"`
}

// KeyRevision links a revision to exactly one key.
type KeyRevision struct {
	KeyID      uuid.UUID `json:"key_id" gorm:"type:uuid;primaryKey"`
	RevisionID uuid.UUID `json:"revision_id" gorm:"type:uuid;primaryKey"`
	CreatedAt  time.Time `json:"created_at"`
}

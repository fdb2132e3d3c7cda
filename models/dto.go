package models

import "keyeditor-api/content"

type LoginRequest struct {
	Code        string `json:"code" binding:"required"`
	RedirectURI string `json:"redirect_uri" binding:"required"`
}

type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type LocalizedField struct {
	No string `json:"no"`
	En string `json:"en"`
}

type CreateKeyRequest struct {
	Title       LocalizedField `json:"title" binding:"required"`
	Description LocalizedField `json:"description"`
	WorkgroupID *uint          `json:"workgroup_id"`
	GroupID     *uint          `json:"group_id"`
}

type UpdateKeyRequest struct {
	Title         *LocalizedField `json:"title"`
	Description   *LocalizedField `json:"description"`
	Status        KeyStatus       `json:"status"`
	GroupID       *uint           `json:"group_id"`
	CollectionIDs []uint          `json:"collection_ids"`
}

type KeyListParams struct {
	Status      string `form:"status"`
	WorkgroupID uint   `form:"workgroup_id"`
	GroupID     uint   `form:"group_id"`
	Page        int    `form:"page,default=1"`
	Limit       int    `form:"limit,default=20"`
}

type CreateRevisionRequest struct {
	Content *content.Document    `json:"content" binding:"required"`
	Media   *content.MediaBundle `json:"media"`
	Note    string               `json:"note"`
	Mode    int                  `json:"mode" binding:"omitempty,oneof=1 2"`
}

type UpdateRevisionStatusRequest struct {
	Status RevisionStatus `json:"status" binding:"required,oneof=DRAFT REVIEW ACCEPTED"`
	Note   string         `json:"note"`
	Mode   int            `json:"mode" binding:"omitempty,oneof=1 2"`
}

type CreateTaxonRequest struct {
	KeyID          string          `json:"key_id" binding:"required,uuid4"`
	ScientificName string          `json:"scientific_name" binding:"required,min=1,max=255"`
	VernacularName *LocalizedField `json:"vernacular_name"`
	Description    *LocalizedField `json:"description"`
	ParentID       string          `json:"parent_id"`
}

type UpdateTaxonRequest struct {
	KeyID          string          `json:"key_id" binding:"required,uuid4"`
	ScientificName string          `json:"scientific_name"`
	VernacularName *LocalizedField `json:"vernacular_name"`
	Description    *LocalizedField `json:"description"`
	ParentID       *string         `json:"parent_id"`
}

type StateInput struct {
	ID          uint            `json:"id"`
	Title       *LocalizedField `json:"title"`
	Description *LocalizedField `json:"description"`
}

type NumericStateInput struct {
	ID       uint            `json:"id"`
	Unit     *LocalizedField `json:"unit"`
	Min      float64         `json:"min"`
	Max      float64         `json:"max"`
	StepSize float64         `json:"step_size" binding:"omitempty,gt=0"`
}

type CreateCharacterRequest struct {
	KeyID        string             `json:"key_id" binding:"required,uuid4"`
	Type         CharacterType      `json:"type" binding:"required,oneof=exclusive multistate numerical"`
	Title        LocalizedField     `json:"title" binding:"required"`
	Description  *LocalizedField    `json:"description"`
	Alternatives []StateInput       `json:"alternatives"`
	Numeric      *NumericStateInput `json:"numeric"`
}

type UpdateCharacterRequest struct {
	KeyID          string             `json:"key_id" binding:"required,uuid4"`
	Title          *LocalizedField    `json:"title"`
	Description    *LocalizedField    `json:"description"`
	Alternatives   []StateInput       `json:"alternatives"`
	Numeric        *NumericStateInput `json:"numeric"`
	LogicalPremise content.Premise    `json:"logical_premise"`
}

type AttachMediaRequest struct {
	KeyID      string          `json:"key_id" binding:"required,uuid4"`
	EntityID   string          `json:"entity_id" binding:"required"`
	EntityKind string          `json:"entity_kind" binding:"required,oneof=taxon character state"`
	MediaID    uint            `json:"media_id" binding:"required"`
	Title      *LocalizedField `json:"title"`
	License    string          `json:"license"`
	Creators   []string        `json:"creators"`
}

type DetachMediaRequest struct {
	KeyID      string   `json:"key_id" binding:"required,uuid4"`
	EntityID   string   `json:"entity_id" binding:"required"`
	EntityKind string   `json:"entity_kind" binding:"required,oneof=taxon character state"`
	MediaIDs   []string `json:"media_ids" binding:"required,min=1"`
}

type CreateGroupRequest struct {
	Name     string         `json:"name" binding:"required,min=1,max=255"`
	Names    LocalizedField `json:"names"`
	ParentID *uint          `json:"parent_id"`
	MediaID  *uint          `json:"media_id"`
}

type CreateCollectionRequest struct {
	Name         string         `json:"name" binding:"required,min=1,max=255"`
	Names        LocalizedField `json:"names"`
	Descriptions LocalizedField `json:"descriptions"`
	WorkgroupID  *uint          `json:"workgroup_id"`
	MediaID      *uint          `json:"media_id"`
	KeyIDs       []string       `json:"key_ids" binding:"omitempty,dive,uuid4"`
}

type CreateOrganizationRequest struct {
	Name  string         `json:"name" binding:"required,min=1,max=255"`
	Names LocalizedField `json:"names"`
}

type CreateWorkgroupRequest struct {
	Name           string `json:"name" binding:"required,min=1,max=255"`
	OrganizationID uint   `json:"organization_id" binding:"required"`
}

type CreateEditorRequest struct {
	UserID      string `json:"user_id" binding:"required"`
	WorkgroupID uint   `json:"workgroup_id" binding:"required"`
}

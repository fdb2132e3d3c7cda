package services

import (
	"errors"
	"strconv"

	"keyeditor-api/content"
	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CharacterService interface {
	Create(req models.CreateCharacterRequest, userID string) (*content.Character, error)
	Update(id uint, req models.UpdateCharacterRequest, userID string) (*content.Character, error)
	Delete(id uint, keyID uuid.UUID, userID string) error
}

type characterService struct {
	entityRepo  repositories.EntityRepository
	revisions   RevisionService
	permissions PermissionService
	log         zerolog.Logger
}

func NewCharacterService(entityRepo repositories.EntityRepository, revisions RevisionService, permissions PermissionService, log zerolog.Logger) CharacterService {
	return &characterService{entityRepo: entityRepo, revisions: revisions, permissions: permissions, log: log}
}

func (s *characterService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

func (s *characterService) editableSnapshot(keyID uuid.UUID, userID string) (*Snapshot, error) {
	snap, err := s.revisions.Snapshot(keyID)
	if err != nil {
		return nil, err
	}
	allowed, err := s.permissions.CanEditKey(userID, snap.Key)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, models.Forbidden("not a member of the key's workgroup")
	}
	return snap, nil
}

// buildAlternatives resolves every provided alternative to its id row. The id
// sentinel 0 allocates a new row; any other id must resolve. All non-zero ids
// are verified before the first allocation, so a miss leaves no rows behind.
func (s *characterService) buildAlternatives(characterID uint, inputs []models.StateInput) ([]*content.State, error) {
	for _, in := range inputs {
		if in.ID == 0 {
			continue
		}
		if _, err := s.entityRepo.GetState(in.ID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NotFound("state not found")
			}
			return nil, s.internal("character.states", err)
		}
	}

	states := make([]*content.State, 0, len(inputs))
	for _, in := range inputs {
		rowID := in.ID
		if rowID == 0 {
			row := &models.CharacterState{CharacterID: characterID}
			if err := s.entityRepo.CreateState(row); err != nil {
				return nil, s.internal("character.states", err)
			}
			rowID = row.ID
		}
		states = append(states, content.NormalizeState(&content.State{
			ID:          strconv.FormatUint(uint64(rowID), 10),
			Title:       localized(in.Title),
			Description: localized(in.Description),
		}))
	}
	return states, nil
}

// buildNumeric finds or creates the single range row; id 0 means create new.
func (s *characterService) buildNumeric(characterID uint, in *models.NumericStateInput) (*content.NumericState, error) {
	rowID := in.ID
	if rowID == 0 {
		row := &models.CharacterState{CharacterID: characterID}
		if err := s.entityRepo.CreateState(row); err != nil {
			return nil, s.internal("character.numeric", err)
		}
		rowID = row.ID
	} else {
		if _, err := s.entityRepo.GetState(rowID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, models.NotFound("state not found")
			}
			return nil, s.internal("character.numeric", err)
		}
	}
	return &content.NumericState{
		ID:       strconv.FormatUint(uint64(rowID), 10),
		Unit:     localized(in.Unit),
		Min:      in.Min,
		Max:      in.Max,
		StepSize: in.StepSize,
	}, nil
}

func (s *characterService) Create(req models.CreateCharacterRequest, userID string) (*content.Character, error) {
	keyID, err := uuid.Parse(req.KeyID)
	if err != nil {
		return nil, models.Validation("invalid key id")
	}
	snap, err := s.editableSnapshot(keyID, userID)
	if err != nil {
		return nil, err
	}

	if req.Type != models.CharacterNumerical && len(req.Alternatives) < 2 {
		return nil, models.Validation("at least two states required")
	}
	if req.Type == models.CharacterNumerical && req.Numeric == nil {
		return nil, models.Validation("numeric range required")
	}

	row := &models.Character{KeyID: keyID, Type: req.Type}
	if err := s.entityRepo.CreateCharacter(row); err != nil {
		return nil, s.internal("character.create", err)
	}

	character := &content.Character{
		ID:          strconv.FormatUint(uint64(row.ID), 10),
		Type:        string(req.Type),
		Description: localized(req.Description),
	}
	if title := localized(&req.Title); title != nil {
		character.Title = *title
	}

	if req.Type == models.CharacterNumerical {
		numeric, err := s.buildNumeric(row.ID, req.Numeric)
		if err != nil {
			return nil, err
		}
		character.States = content.States{Numeric: numeric}
	} else {
		alternatives, err := s.buildAlternatives(row.ID, req.Alternatives)
		if err != nil {
			return nil, err
		}
		character.States = content.States{Alternatives: alternatives}
	}

	snap.Doc.Characters = append(snap.Doc.Characters, character)
	if _, err := s.revisions.Commit(snap, "added character", userID); err != nil {
		return nil, err
	}
	return character, nil
}

// Update edits a character inside a new revision. Replacing an alternative
// list prunes premises referencing the removed states and drops statements
// about them; changing a numeric range in a way that widens below the old
// minimum, shrinks the old maximum, or alters the step size purges the
// character from every premise.
func (s *characterService) Update(id uint, req models.UpdateCharacterRequest, userID string) (*content.Character, error) {
	keyID, err := uuid.Parse(req.KeyID)
	if err != nil {
		return nil, models.Validation("invalid key id")
	}
	snap, err := s.editableSnapshot(keyID, userID)
	if err != nil {
		return nil, err
	}

	characterID := strconv.FormatUint(uint64(id), 10)
	character := snap.Doc.FindCharacter(characterID)
	if character == nil {
		return nil, models.NotFound("character not found")
	}

	if title := localized(req.Title); title != nil {
		character.Title = *title
	}
	if req.Description != nil {
		character.Description = localized(req.Description)
	}

	switch character.Type {
	case content.TypeNumerical:
		if req.Numeric != nil {
			numeric, err := s.buildNumeric(id, req.Numeric)
			if err != nil {
				return nil, err
			}
			if content.NumericRangePurgeNeeded(character.States.Numeric, numeric) {
				content.PruneCharacterPremises(snap.Doc, characterID)
			}
			old := character.States
			character.States = content.States{Numeric: numeric}
			content.CleanStatements(snap.Doc, old, character.States)
		}
	default:
		if req.Alternatives != nil {
			if len(req.Alternatives) < 2 {
				return nil, models.Validation("at least two states required")
			}
			alternatives, err := s.buildAlternatives(id, req.Alternatives)
			if err != nil {
				return nil, err
			}
			old := character.States
			character.States = content.States{Alternatives: alternatives}
			removed := content.RemovedStateIDs(old.Alternatives, alternatives)
			content.PruneStatePremises(snap.Doc, removed)
			content.CleanStatements(snap.Doc, old, character.States)
		}
	}

	if req.LogicalPremise != nil {
		character.LogicalPremise = req.LogicalPremise
	}

	if _, err := s.revisions.Commit(snap, "updated character", userID); err != nil {
		return nil, err
	}
	return character, nil
}

// Delete removes the character from the document, prunes every premise clause
// referencing it, drops its statements, cleans orphaned media elements, and
// destroys its id rows.
func (s *characterService) Delete(id uint, keyID uuid.UUID, userID string) error {
	snap, err := s.editableSnapshot(keyID, userID)
	if err != nil {
		return err
	}

	characterID := strconv.FormatUint(uint64(id), 10)
	if snap.Doc.FindCharacter(characterID) == nil {
		return models.NotFound("character not found")
	}

	kept := snap.Doc.Characters[:0]
	for _, c := range snap.Doc.Characters {
		if c.ID != characterID {
			kept = append(kept, c)
		}
	}
	snap.Doc.Characters = kept

	content.PruneCharacterPremises(snap.Doc, characterID)

	if len(snap.Doc.Statements) > 0 {
		keptStatements := snap.Doc.Statements[:0]
		for _, st := range snap.Doc.Statements {
			if st.CharacterID != characterID {
				keptStatements = append(keptStatements, st)
			}
		}
		snap.Doc.Statements = keptStatements
	}
	content.RemoveOrphanElements(snap.Doc, snap.Media)

	if err := s.entityRepo.DeleteCharacter(id); err != nil {
		return s.internal("character.delete", err)
	}

	_, err = s.revisions.Commit(snap, "removed character", userID)
	return err
}

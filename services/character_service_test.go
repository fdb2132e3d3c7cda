package services

import (
	"testing"

	"keyeditor-api/content"
	"keyeditor-api/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func characterFixture() (*snapshotRevisions, uuid.UUID) {
	keyID := uuid.New()
	doc := &content.Document{Characters: []*content.Character{
		{
			ID:   "1",
			Type: content.TypeExclusive,
			States: content.States{Alternatives: []*content.State{
				{ID: "10"},
				{ID: "11"},
			}},
		},
	}}
	return &snapshotRevisions{snap: &Snapshot{
		Key:   &models.Key{ID: keyID, CreatedBy: "user-1"},
		Doc:   doc,
		Media: &content.MediaBundle{},
		Mode:  models.ModeSimple,
	}}, keyID
}

// A non-zero alternative id that does not resolve fails the whole replacement
// before any new state row is allocated for the id-0 entries.
func TestUpdateCharacterMissingStateAllocatesNothing(t *testing.T) {
	revisions, keyID := characterFixture()
	entities := &stubEntityRepo{states: map[uint]*models.CharacterState{
		10: {ID: 10, CharacterID: 1},
		11: {ID: 11, CharacterID: 1},
	}}
	svc := NewCharacterService(entities, revisions, allowAllPermissions{}, zerolog.Nop())

	_, err := svc.Update(1, models.UpdateCharacterRequest{
		KeyID:        keyID.String(),
		Alternatives: []models.StateInput{{ID: 0}, {ID: 99}},
	}, "user-1")

	var notFound models.ErrorNotFound
	require.ErrorAs(t, err, &notFound)
	assert.Zero(t, entities.createdStates)
	assert.Empty(t, revisions.commits)
}

func TestUpdateCharacterReplacesAlternatives(t *testing.T) {
	revisions, keyID := characterFixture()
	entities := &stubEntityRepo{states: map[uint]*models.CharacterState{
		10: {ID: 10, CharacterID: 1},
		11: {ID: 11, CharacterID: 1},
	}}
	svc := NewCharacterService(entities, revisions, allowAllPermissions{}, zerolog.Nop())

	character, err := svc.Update(1, models.UpdateCharacterRequest{
		KeyID:        keyID.String(),
		Alternatives: []models.StateInput{{ID: 10}, {ID: 0}},
	}, "user-1")
	require.NoError(t, err)

	require.Len(t, character.States.Alternatives, 2)
	assert.Equal(t, "10", character.States.Alternatives[0].ID)
	assert.Equal(t, 1, entities.createdStates)
	require.Len(t, revisions.commits, 1)
}

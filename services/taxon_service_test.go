package services

import (
	"testing"

	"keyeditor-api/content"
	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// snapshotRevisions serves a fixed snapshot and records every commit, so the
// document-editing services run without a database.
type snapshotRevisions struct {
	RevisionService

	snap    *Snapshot
	commits []*Snapshot
	notes   []string
}

func (s *snapshotRevisions) Snapshot(keyID uuid.UUID) (*Snapshot, error) {
	return s.snap, nil
}

func (s *snapshotRevisions) Commit(snap *Snapshot, note, userID string) (*models.Revision, error) {
	s.commits = append(s.commits, snap)
	s.notes = append(s.notes, note)
	return &models.Revision{ID: uuid.New(), Status: models.StatusDraft}, nil
}

type allowAllPermissions struct{ PermissionService }

func (allowAllPermissions) CanEditKey(string, *models.Key) (bool, error) { return true, nil }

type denyAllPermissions struct{ PermissionService }

func (denyAllPermissions) CanEditKey(string, *models.Key) (bool, error) { return false, nil }

type stubEntityRepo struct {
	repositories.EntityRepository

	states        map[uint]*models.CharacterState
	nextID        uint
	createdStates int
}

func (s *stubEntityRepo) CreateState(state *models.CharacterState) error {
	s.nextID++
	state.ID = 100 + s.nextID
	s.createdStates++
	return nil
}

func (s *stubEntityRepo) GetState(id uint) (*models.CharacterState, error) {
	if st, ok := s.states[id]; ok {
		return st, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func taxonFixture() (*snapshotRevisions, uuid.UUID) {
	keyID := uuid.New()
	doc := &content.Document{Taxa: []*content.Taxon{
		{ID: "1", ScientificName: "Parus major"},
		{ID: "2", ScientificName: "Parus palustris"},
	}}
	return &snapshotRevisions{snap: &Snapshot{
		Key:   &models.Key{ID: keyID, CreatedBy: "user-1"},
		Doc:   doc,
		Media: &content.MediaBundle{},
		Mode:  models.ModeSimple,
	}}, keyID
}

func TestUpdateTaxonRename(t *testing.T) {
	revisions, keyID := taxonFixture()
	svc := NewTaxonService(&stubEntityRepo{}, revisions, allowAllPermissions{}, zerolog.Nop())

	node, err := svc.Update(1, models.UpdateTaxonRequest{
		KeyID:          keyID.String(),
		ScientificName: "Parus montanus",
	}, "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Parus montanus", node.ScientificName)
	require.Len(t, revisions.commits, 1)
}

// A rename collision is reported as Conflict, but the unrelated vernacular and
// description edits are still applied and committed in the new revision before
// the conflict surfaces.
func TestUpdateTaxonRenameConflictStillCommitsOtherEdits(t *testing.T) {
	revisions, keyID := taxonFixture()
	svc := NewTaxonService(&stubEntityRepo{}, revisions, allowAllPermissions{}, zerolog.Nop())

	_, err := svc.Update(1, models.UpdateTaxonRequest{
		KeyID:          keyID.String(),
		ScientificName: "Parus palustris",
		VernacularName: &models.LocalizedField{En: "great tit"},
	}, "user-1")

	var conflict models.ErrorConflict
	require.ErrorAs(t, err, &conflict)

	require.Len(t, revisions.commits, 1)
	node := content.NewTreeIndex(revisions.commits[0].Doc).Find("1")
	require.NotNil(t, node)
	assert.Equal(t, "Parus major", node.ScientificName)
	require.NotNil(t, node.VernacularName)
	require.NotNil(t, node.VernacularName.En)
	assert.Equal(t, "great tit", *node.VernacularName.En)
}

// Renaming a node to its own current name is not a collision.
func TestUpdateTaxonRenameToOwnName(t *testing.T) {
	revisions, keyID := taxonFixture()
	svc := NewTaxonService(&stubEntityRepo{}, revisions, allowAllPermissions{}, zerolog.Nop())

	node, err := svc.Update(1, models.UpdateTaxonRequest{
		KeyID:          keyID.String(),
		ScientificName: "Parus major",
	}, "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Parus major", node.ScientificName)
}

func TestUpdateTaxonForbiddenCommitsNothing(t *testing.T) {
	revisions, keyID := taxonFixture()
	svc := NewTaxonService(&stubEntityRepo{}, revisions, denyAllPermissions{}, zerolog.Nop())

	_, err := svc.Update(1, models.UpdateTaxonRequest{
		KeyID:          keyID.String(),
		ScientificName: "Parus montanus",
	}, "user-1")

	var forbidden models.ErrorForbidden
	require.ErrorAs(t, err, &forbidden)
	assert.Empty(t, revisions.commits)
}

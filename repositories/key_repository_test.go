package repositories

import (
	"os"
	"testing"

	"keyeditor-api/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Key{}, &models.KeyInfo{}, &models.KeyCollection{},
		&models.Revision{}, &models.KeyRevision{},
		&models.Taxon{}, &models.Character{}, &models.CharacterState{},
	))
	return db
}

// Deleting a key must take its revisions, join rows, and the taxon/character/
// state id rows with it; no join row may reference a deleted key.
func TestDeleteKeyCascades(t *testing.T) {
	db := testDB(t)
	keyRepo := NewKeyRepository(db)

	key := &models.Key{ID: uuid.New(), CreatedBy: "user-1"}
	require.NoError(t, keyRepo.Create(key, []models.KeyInfo{{Language: "en", Title: "Birds"}}))

	revision := &models.Revision{ID: uuid.New(), Status: models.StatusAccepted, CreatedBy: "user-1"}
	require.NoError(t, NewRevisionRepository(db).CreateLinked(revision, key.ID, true))

	entityRepo := NewEntityRepository(db)
	taxon := &models.Taxon{KeyID: key.ID}
	require.NoError(t, entityRepo.CreateTaxon(taxon))
	character := &models.Character{KeyID: key.ID, Type: models.CharacterExclusive}
	require.NoError(t, entityRepo.CreateCharacter(character))
	state := &models.CharacterState{CharacterID: character.ID}
	require.NoError(t, entityRepo.CreateState(state))

	require.NoError(t, keyRepo.Delete(key.ID))

	countWhere := func(model interface{}, cond string, arg interface{}) int64 {
		var n int64
		require.NoError(t, db.Model(model).Where(cond, arg).Count(&n).Error)
		return n
	}
	assert.Zero(t, countWhere(&models.Key{}, "id = ?", key.ID))
	assert.Zero(t, countWhere(&models.KeyInfo{}, "key_id = ?", key.ID))
	assert.Zero(t, countWhere(&models.KeyRevision{}, "key_id = ?", key.ID))
	assert.Zero(t, countWhere(&models.Revision{}, "id = ?", revision.ID))
	assert.Zero(t, countWhere(&models.Taxon{}, "key_id = ?", key.ID))
	assert.Zero(t, countWhere(&models.Character{}, "key_id = ?", key.ID))
	assert.Zero(t, countWhere(&models.CharacterState{}, "id = ?", state.ID))
}

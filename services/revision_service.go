package services

import (
	"errors"

	"keyeditor-api/content"
	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type RevisionService interface {
	Create(keyID uuid.UUID, req models.CreateRevisionRequest, userID string) (*models.Revision, error)
	Get(id uuid.UUID) (*models.Revision, error)
	GetForKey(keyID, revisionID uuid.UUID) (*models.Revision, error)
	ListByKey(keyID uuid.UUID) ([]models.Revision, error)
	UpdateStatus(revisionID uuid.UUID, req models.UpdateRevisionStatusRequest) (*models.Revision, error)

	// Snapshot loads a key and the typed view of its current revision.
	Snapshot(keyID uuid.UUID) (*Snapshot, error)
	// Commit persists an edited snapshot as a new revision of the key.
	Commit(snap *Snapshot, note, userID string) (*models.Revision, error)
}

// Snapshot is the in-flight typed view of a key's current revision. Edits
// mutate Doc and Media in memory; Commit turns the result into a new
// revision row, never touching the one it was read from.
type Snapshot struct {
	Key   *models.Key
	Doc   *content.Document
	Media *content.MediaBundle
	Mode  int
}

type revisionService struct {
	keyRepo      repositories.KeyRepository
	revisionRepo repositories.RevisionRepository
	log          zerolog.Logger
}

func NewRevisionService(keyRepo repositories.KeyRepository, revisionRepo repositories.RevisionRepository, log zerolog.Logger) RevisionService {
	return &revisionService{keyRepo: keyRepo, revisionRepo: revisionRepo, log: log}
}

func (s *revisionService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

// Create inserts a new revision for the key. The very first revision of a key
// is accepted immediately and wired as the key's current pointer; every later
// revision starts as a draft and never touches the pointer.
func (s *revisionService) Create(keyID uuid.UUID, req models.CreateRevisionRequest, userID string) (*models.Revision, error) {
	key, err := s.keyRepo.GetByID(keyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("key not found")
		}
		return nil, s.internal("revision.create", err)
	}

	rawContent, err := req.Content.Encode()
	if err != nil {
		return nil, s.internal("revision.create", err)
	}
	media := req.Media
	if media == nil {
		media = &content.MediaBundle{}
	}
	rawMedia, err := media.Encode()
	if err != nil {
		return nil, s.internal("revision.create", err)
	}

	mode := req.Mode
	if mode == 0 {
		mode = models.ModeSimple
	}

	revision := &models.Revision{
		ID:        uuid.New(),
		Content:   rawContent,
		Media:     rawMedia,
		Note:      req.Note,
		Status:    models.StatusDraft,
		Mode:      mode,
		CreatedBy: userID,
	}

	first := key.RevisionID == nil
	if first {
		revision.Status = models.StatusAccepted
	}
	if err := s.revisionRepo.CreateLinked(revision, key.ID, first); err != nil {
		return nil, s.internal("revision.create", err)
	}
	return revision, nil
}

func (s *revisionService) Get(id uuid.UUID) (*models.Revision, error) {
	revision, err := s.revisionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("revision not found")
		}
		return nil, s.internal("revision.get", err)
	}
	return revision, nil
}

// GetForKey verifies the revision's join row points at the given key before
// returning it; a mismatch is indistinguishable from absence.
func (s *revisionService) GetForKey(keyID, revisionID uuid.UUID) (*models.Revision, error) {
	linkedKey, err := s.revisionRepo.GetKeyID(revisionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("revision not found")
		}
		return nil, s.internal("revision.getForKey", err)
	}
	if linkedKey != keyID {
		return nil, models.NotFound("revision not found for key")
	}
	return s.Get(revisionID)
}

func (s *revisionService) ListByKey(keyID uuid.UUID) ([]models.Revision, error) {
	if _, err := s.keyRepo.GetByID(keyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("key not found")
		}
		return nil, s.internal("revision.list", err)
	}
	revisions, err := s.revisionRepo.GetByKey(keyID)
	if err != nil {
		return nil, s.internal("revision.list", err)
	}
	return revisions, nil
}

// UpdateStatus moves a revision through DRAFT -> REVIEW -> ACCEPTED. The
// key's current revision is refused outright, so its status row is never
// rewritten through this path. Acceptance repoints the key; concurrent
// promotions of two different revisions are last-write-wins at the pointer
// and are not serialized further.
func (s *revisionService) UpdateStatus(revisionID uuid.UUID, req models.UpdateRevisionStatusRequest) (*models.Revision, error) {
	keyID, err := s.revisionRepo.GetKeyID(revisionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("revision not found")
		}
		return nil, s.internal("revision.updateStatus", err)
	}
	key, err := s.keyRepo.GetByID(keyID)
	if err != nil {
		return nil, s.internal("revision.updateStatus", err)
	}
	if key.RevisionID != nil && *key.RevisionID == revisionID {
		return nil, models.Conflict("revision is already the key's current revision")
	}

	revision, err := s.revisionRepo.GetByID(revisionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("revision not found")
		}
		return nil, s.internal("revision.updateStatus", err)
	}

	revision.Status = req.Status
	if req.Note != "" {
		revision.Note = req.Note
	}
	if req.Mode != 0 {
		revision.Mode = req.Mode
	}

	repoint := req.Status == models.StatusAccepted
	if err := s.revisionRepo.Promote(revision, keyID, repoint); err != nil {
		return nil, s.internal("revision.updateStatus", err)
	}
	return revision, nil
}

func (s *revisionService) Snapshot(keyID uuid.UUID) (*Snapshot, error) {
	key, err := s.keyRepo.GetByID(keyID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("key not found")
		}
		return nil, s.internal("revision.snapshot", err)
	}
	if key.RevisionID == nil {
		return nil, models.NotFound("key has no current revision")
	}
	revision, err := s.revisionRepo.GetByID(*key.RevisionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("revision not found")
		}
		return nil, s.internal("revision.snapshot", err)
	}

	doc, err := content.DecodeDocument(revision.Content)
	if err != nil {
		return nil, s.internal("revision.snapshot", err)
	}
	bundle, err := content.DecodeMediaBundle(revision.Media)
	if err != nil {
		return nil, s.internal("revision.snapshot", err)
	}
	return &Snapshot{Key: key, Doc: doc, Media: bundle, Mode: revision.Mode}, nil
}

func (s *revisionService) Commit(snap *Snapshot, note, userID string) (*models.Revision, error) {
	rawContent, err := snap.Doc.Encode()
	if err != nil {
		return nil, s.internal("revision.commit", err)
	}
	rawMedia, err := snap.Media.Encode()
	if err != nil {
		return nil, s.internal("revision.commit", err)
	}

	revision := &models.Revision{
		ID:        uuid.New(),
		Content:   rawContent,
		Media:     rawMedia,
		Note:      note,
		Status:    models.StatusDraft,
		Mode:      snap.Mode,
		CreatedBy: userID,
	}
	first := snap.Key.RevisionID == nil
	if first {
		revision.Status = models.StatusAccepted
	}
	if err := s.revisionRepo.CreateLinked(revision, snap.Key.ID, first); err != nil {
		return nil, s.internal("revision.commit", err)
	}
	return revision, nil
}

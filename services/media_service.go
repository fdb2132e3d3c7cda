package services

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"keyeditor-api/content"
	"keyeditor-api/models"
	"keyeditor-api/repositories"
	"keyeditor-api/storage"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type MediaService interface {
	Upload(header *multipart.FileHeader, titles models.LocalizedField, license string, creators []string, userID string) (*models.Media, error)
	Get(id uint) (*models.Media, error)
	Delete(id uint) error
	Attach(req models.AttachMediaRequest, userID string) (*models.Revision, error)
	Detach(req models.DetachMediaRequest, userID string) (*models.Revision, error)
}

type mediaService struct {
	mediaRepo   repositories.MediaRepository
	revisions   RevisionService
	permissions PermissionService
	files       storage.FileStorage
	thumbnails  storage.Thumbnailer
	thumbWidth  int
	log         zerolog.Logger
}

func NewMediaService(
	mediaRepo repositories.MediaRepository,
	revisions RevisionService,
	permissions PermissionService,
	files storage.FileStorage,
	thumbnails storage.Thumbnailer,
	thumbWidth int,
	log zerolog.Logger,
) MediaService {
	return &mediaService{
		mediaRepo:   mediaRepo,
		revisions:   revisions,
		permissions: permissions,
		files:       files,
		thumbnails:  thumbnails,
		thumbWidth:  thumbWidth,
		log:         log,
	}
}

func (s *mediaService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

func mediaTypeFor(filename string) models.MediaType {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".mp4", ".webm", ".mov":
		return models.MediaVideo
	default:
		return models.MediaImage
	}
}

// Upload stores the file, creates the media row, and then tries to produce a
// thumbnail. The file write and the row insert are independent side effects;
// a failed resize only costs the thumbnail field and is logged, never rolled
// back.
func (s *mediaService) Upload(header *multipart.FileHeader, titles models.LocalizedField, license string, creators []string, userID string) (*models.Media, error) {
	src, err := header.Open()
	if err != nil {
		return nil, models.Validation("unreadable upload")
	}
	defer src.Close()

	name := uuid.NewString() + strings.ToLower(filepath.Ext(header.Filename))
	if err := s.saveFile(name, src); err != nil {
		return nil, s.internal("media.upload", err)
	}

	media := &models.Media{
		Filename:  name,
		Type:      mediaTypeFor(header.Filename),
		License:   license,
		Creators:  strings.Join(creators, "; "),
		CreatedBy: userID,
	}
	var infos []models.MediaInfo
	if titles.No != "" {
		infos = append(infos, models.MediaInfo{Language: "no", Title: titles.No})
	}
	if titles.En != "" {
		infos = append(infos, models.MediaInfo{Language: "en", Title: titles.En})
	}
	if err := s.mediaRepo.Create(media, infos); err != nil {
		return nil, s.internal("media.upload", err)
	}

	if media.Type == models.MediaImage {
		thumbName := fmt.Sprintf("thumb_%s.jpg", strings.TrimSuffix(name, filepath.Ext(name)))
		if err := s.thumbnails.Thumbnail(s.files.Path(name), s.files.Path(thumbName), s.thumbWidth); err != nil {
			s.log.Warn().Str("op", "media.thumbnail").Uint("media_id", media.ID).Err(err).
				Msg("thumbnail generation failed; media kept without thumbnail")
		} else {
			media.ThumbnailFilename = thumbName
			if err := s.mediaRepo.Update(media); err != nil {
				return nil, s.internal("media.upload", err)
			}
		}
	}
	return media, nil
}

func (s *mediaService) saveFile(name string, src io.Reader) error {
	return s.files.Save(name, src)
}

func (s *mediaService) Get(id uint) (*models.Media, error) {
	media, err := s.mediaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("media not found")
		}
		return nil, s.internal("media.get", err)
	}
	return media, nil
}

// Delete is two-phase: first the backing files, then the rows. A missing file
// is tolerated; any other filesystem error aborts before the rows are
// touched, so the media is only considered deleted when both phases succeed.
func (s *mediaService) Delete(id uint) error {
	media, err := s.mediaRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("media not found")
		}
		return s.internal("media.delete", err)
	}

	if err := s.files.Delete(media.Filename); err != nil {
		return s.internal("media.delete", err)
	}
	if media.ThumbnailFilename != "" {
		if err := s.files.Delete(media.ThumbnailFilename); err != nil {
			return s.internal("media.delete", err)
		}
	}

	if err := s.mediaRepo.Delete(id); err != nil {
		return s.internal("media.delete", err)
	}
	return nil
}

// entityMediaList resolves the media id slice of a taxon, character or state
// node inside the document.
func entityMediaList(doc *content.Document, kind, id string) (*[]string, error) {
	switch kind {
	case "taxon":
		node := content.NewTreeIndex(doc).Find(id)
		if node == nil {
			return nil, models.NotFound("taxon not found")
		}
		return &node.Media, nil
	case "character":
		character := doc.FindCharacter(id)
		if character == nil {
			return nil, models.NotFound("character not found")
		}
		return &character.Media, nil
	case "state":
		for _, c := range doc.Characters {
			if state := c.FindState(id); state != nil {
				return &state.Media, nil
			}
		}
		return nil, models.NotFound("state not found")
	}
	return nil, models.Validation("unknown entity kind")
}

func (s *mediaService) editableSnapshot(keyID uuid.UUID, userID string) (*Snapshot, error) {
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

// Attach links an uploaded media row into the current revision: the entity's
// media list, the revision ledger, and the deduplicated persons list.
func (s *mediaService) Attach(req models.AttachMediaRequest, userID string) (*models.Revision, error) {
	keyID, err := uuid.Parse(req.KeyID)
	if err != nil {
		return nil, models.Validation("invalid key id")
	}
	if _, err := s.Get(req.MediaID); err != nil {
		return nil, err
	}
	snap, err := s.editableSnapshot(keyID, userID)
	if err != nil {
		return nil, err
	}

	list, err := entityMediaList(snap.Doc, req.EntityKind, req.EntityID)
	if err != nil {
		return nil, err
	}

	element := content.MediaElement{
		ID:      strconv.FormatUint(uint64(req.MediaID), 10),
		Title:   localized(req.Title),
		License: req.License,
	}
	content.AttachMedia(list, snap.Media, element, req.Creators)

	return s.revisions.Commit(snap, "attached media", userID)
}

// Detach removes the given media ids from the entity and the ledger
// symmetrically. Persons stay, even when orphaned.
func (s *mediaService) Detach(req models.DetachMediaRequest, userID string) (*models.Revision, error) {
	keyID, err := uuid.Parse(req.KeyID)
	if err != nil {
		return nil, models.Validation("invalid key id")
	}
	snap, err := s.editableSnapshot(keyID, userID)
	if err != nil {
		return nil, err
	}

	list, err := entityMediaList(snap.Doc, req.EntityKind, req.EntityID)
	if err != nil {
		return nil, err
	}
	content.DetachMedia(list, snap.Media, req.MediaIDs)

	return s.revisions.Commit(snap, "detached media", userID)
}

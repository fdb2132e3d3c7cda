package services

import (
	"errors"
	"sync"

	"keyeditor-api/content"
	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type KeyService interface {
	Create(req models.CreateKeyRequest, userID string) (*models.Key, error)
	Get(id uuid.UUID, userID string, isPublic bool) (*models.Key, error)
	GetList(params models.KeyListParams, isPublic bool) ([]models.Key, int64, error)
	Update(id uuid.UUID, req models.UpdateKeyRequest, userID string) (*models.Key, error)
	Delete(id uuid.UUID, userID string) error
}

type keyService struct {
	keyRepo     repositories.KeyRepository
	revisions   RevisionService
	permissions PermissionService
	log         zerolog.Logger
}

func NewKeyService(keyRepo repositories.KeyRepository, revisions RevisionService, permissions PermissionService, log zerolog.Logger) KeyService {
	return &keyService{keyRepo: keyRepo, revisions: revisions, permissions: permissions, log: log}
}

func (s *keyService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

func infoRows(title, description models.LocalizedField) []models.KeyInfo {
	var infos []models.KeyInfo
	if title.No != "" || description.No != "" {
		infos = append(infos, models.KeyInfo{Language: "no", Title: title.No, Description: description.No})
	}
	if title.En != "" || description.En != "" {
		infos = append(infos, models.KeyInfo{Language: "en", Title: title.En, Description: description.En})
	}
	return infos
}

// Create stores the key row and immediately commits an empty first revision,
// which is auto-accepted and becomes the key's current pointer.
func (s *keyService) Create(req models.CreateKeyRequest, userID string) (*models.Key, error) {
	key := &models.Key{
		ID:          uuid.New(),
		Status:      models.KeyStatusPrivate,
		CreatedBy:   userID,
		WorkgroupID: req.WorkgroupID,
		GroupID:     req.GroupID,
	}
	if err := s.keyRepo.Create(key, infoRows(req.Title, req.Description)); err != nil {
		return nil, s.internal("key.create", err)
	}

	snap := &Snapshot{Key: key, Doc: &content.Document{}, Media: &content.MediaBundle{}, Mode: models.ModeSimple}
	if _, err := s.revisions.Commit(snap, "", userID); err != nil {
		return nil, err
	}
	return s.keyRepo.GetByID(key.ID)
}

func (s *keyService) Get(id uuid.UUID, userID string, isPublic bool) (*models.Key, error) {
	key, err := s.keyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("key not found")
		}
		return nil, s.internal("key.get", err)
	}
	if isPublic && key.Status != models.KeyStatusPublished && key.Status != models.KeyStatusBeta {
		return nil, models.NotFound("key not found")
	}
	return key, nil
}

func (s *keyService) GetList(params models.KeyListParams, isPublic bool) ([]models.Key, int64, error) {
	keys, total, err := s.keyRepo.GetList(params, isPublic)
	if err != nil {
		return nil, 0, s.internal("key.list", err)
	}
	return keys, total, nil
}

func (s *keyService) Update(id uuid.UUID, req models.UpdateKeyRequest, userID string) (*models.Key, error) {
	key, err := s.keyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("key not found")
		}
		return nil, s.internal("key.update", err)
	}
	allowed, err := s.permissions.CanEditKey(userID, key)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, models.Forbidden("not a member of the key's workgroup")
	}

	if req.Status != "" {
		key.Status = req.Status
	}
	if req.GroupID != nil {
		key.GroupID = req.GroupID
	}
	if err := s.keyRepo.Update(key); err != nil {
		return nil, s.internal("key.update", err)
	}

	// Per-language info rows and collection links are independent updates;
	// they run as one task group with a single join point, and the first
	// failure fails the whole request.
	var tasks []func() error
	if req.Title != nil || req.Description != nil {
		tasks = append(tasks, func() error { return s.updateInfos(key, req) })
	}
	if req.CollectionIDs != nil {
		tasks = append(tasks, func() error { return s.keyRepo.ReplaceCollections(key.ID, req.CollectionIDs) })
	}
	if err := runAll(tasks); err != nil {
		return nil, s.internal("key.update", err)
	}

	return s.keyRepo.GetByID(key.ID)
}

func (s *keyService) updateInfos(key *models.Key, req models.UpdateKeyRequest) error {
	for _, lang := range []string{"no", "en"} {
		var existing *models.KeyInfo
		for i := range key.Info {
			if key.Info[i].Language == lang {
				existing = &key.Info[i]
				break
			}
		}
		title, description := pickLang(req.Title, lang), pickLang(req.Description, lang)
		if existing == nil {
			if title == "" && description == "" {
				continue
			}
			existing = &models.KeyInfo{KeyID: key.ID, Language: lang}
		}
		if req.Title != nil {
			existing.Title = title
		}
		if req.Description != nil {
			existing.Description = description
		}
		if err := s.keyRepo.UpdateInfo(existing); err != nil {
			return err
		}
	}
	return nil
}

func pickLang(f *models.LocalizedField, lang string) string {
	if f == nil {
		return ""
	}
	if lang == "no" {
		return f.No
	}
	return f.En
}

// runAll runs the tasks concurrently and joins on all of them, returning the
// first error. Cross-store atomicity is not guaranteed; the group only
// guarantees the response is not produced before every task finished.
func runAll(tasks []func() error) error {
	if len(tasks) == 0 {
		return nil
	}
	var wg sync.WaitGroup
	errs := make([]error, len(tasks))
	for i, task := range tasks {
		wg.Add(1)
		go func(i int, task func() error) {
			defer wg.Done()
			errs[i] = task()
		}(i, task)
	}
	wg.Wait()
	return errors.Join(errs...)
}

func (s *keyService) Delete(id uuid.UUID, userID string) error {
	key, err := s.keyRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("key not found")
		}
		return s.internal("key.delete", err)
	}
	allowed, err := s.permissions.CanEditKey(userID, key)
	if err != nil {
		return err
	}
	if !allowed {
		return models.Forbidden("not a member of the key's workgroup")
	}
	if err := s.keyRepo.Delete(id); err != nil {
		return s.internal("key.delete", err)
	}
	return nil
}

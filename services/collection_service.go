package services

import (
	"errors"

	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CollectionService interface {
	Create(req models.CreateCollectionRequest) (*models.Collection, error)
	Get(id uint) (*models.Collection, error)
	GetAll() ([]models.Collection, error)
	Delete(id uint) error
}

type collectionService struct {
	collectionRepo repositories.CollectionRepository
	log            zerolog.Logger
}

func NewCollectionService(collectionRepo repositories.CollectionRepository, log zerolog.Logger) CollectionService {
	return &collectionService{collectionRepo: collectionRepo, log: log}
}

func (s *collectionService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

func (s *collectionService) Create(req models.CreateCollectionRequest) (*models.Collection, error) {
	_, err := s.collectionRepo.GetByName(req.Name)
	if err == nil {
		return nil, models.Conflict("collection name already in use")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, s.internal("collection.create", err)
	}

	keyIDs := make([]uuid.UUID, 0, len(req.KeyIDs))
	for _, raw := range req.KeyIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, models.Validation("invalid key id")
		}
		keyIDs = append(keyIDs, id)
	}

	collection := &models.Collection{
		Name:        req.Name,
		WorkgroupID: req.WorkgroupID,
		MediaID:     req.MediaID,
	}
	var infos []models.CollectionInfo
	if req.Names.No != "" || req.Descriptions.No != "" {
		infos = append(infos, models.CollectionInfo{Language: "no", Name: req.Names.No, Description: req.Descriptions.No})
	}
	if req.Names.En != "" || req.Descriptions.En != "" {
		infos = append(infos, models.CollectionInfo{Language: "en", Name: req.Names.En, Description: req.Descriptions.En})
	}
	if err := s.collectionRepo.Create(collection, infos, keyIDs); err != nil {
		return nil, s.internal("collection.create", err)
	}
	return collection, nil
}

func (s *collectionService) Get(id uint) (*models.Collection, error) {
	collection, err := s.collectionRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("collection not found")
		}
		return nil, s.internal("collection.get", err)
	}
	return collection, nil
}

func (s *collectionService) GetAll() ([]models.Collection, error) {
	collections, err := s.collectionRepo.GetAll()
	if err != nil {
		return nil, s.internal("collection.list", err)
	}
	return collections, nil
}

func (s *collectionService) Delete(id uint) error {
	if _, err := s.collectionRepo.GetByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("collection not found")
		}
		return s.internal("collection.delete", err)
	}
	if err := s.collectionRepo.Delete(id); err != nil {
		return s.internal("collection.delete", err)
	}
	return nil
}

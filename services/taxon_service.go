package services

import (
	"strconv"

	"keyeditor-api/content"
	"keyeditor-api/models"
	"keyeditor-api/repositories"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type TaxonService interface {
	Create(req models.CreateTaxonRequest, userID string) (*content.Taxon, error)
	Update(id uint, req models.UpdateTaxonRequest, userID string) (*content.Taxon, error)
	Delete(id uint, keyID uuid.UUID, userID string) error
}

type taxonService struct {
	entityRepo  repositories.EntityRepository
	revisions   RevisionService
	permissions PermissionService
	log         zerolog.Logger
}

func NewTaxonService(entityRepo repositories.EntityRepository, revisions RevisionService, permissions PermissionService, log zerolog.Logger) TaxonService {
	return &taxonService{entityRepo: entityRepo, revisions: revisions, permissions: permissions, log: log}
}

func (s *taxonService) internal(op string, err error) error {
	s.log.Error().Str("op", op).Err(err).Msg("operation failed")
	return models.InternalServer("")
}

func (s *taxonService) editableSnapshot(keyID uuid.UUID, userID string) (*Snapshot, error) {
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

func localized(f *models.LocalizedField) *content.LocalizedText {
	if f == nil {
		return nil
	}
	text := &content.LocalizedText{}
	if f.No != "" {
		no := f.No
		text.No = &no
	}
	if f.En != "" {
		en := f.En
		text.En = &en
	}
	return text.Normalize()
}

func (s *taxonService) Create(req models.CreateTaxonRequest, userID string) (*content.Taxon, error) {
	keyID, err := uuid.Parse(req.KeyID)
	if err != nil {
		return nil, models.Validation("invalid key id")
	}
	snap, err := s.editableSnapshot(keyID, userID)
	if err != nil {
		return nil, err
	}

	ix := content.NewTreeIndex(snap.Doc)
	if ix.FindByName(req.ScientificName, "") != nil {
		return nil, models.Conflict("scientific name already in use")
	}
	parentID := req.ParentID
	if parentID == "" {
		parentID = content.RootParent
	}
	if parentID != content.RootParent && ix.Find(parentID) == nil {
		return nil, models.NotFound("parent taxon not found")
	}

	row := &models.Taxon{KeyID: keyID}
	if err := s.entityRepo.CreateTaxon(row); err != nil {
		return nil, s.internal("taxon.create", err)
	}

	node := &content.Taxon{
		ID:             strconv.FormatUint(uint64(row.ID), 10),
		ScientificName: req.ScientificName,
		VernacularName: localized(req.VernacularName),
		Description:    localized(req.Description),
	}
	ix.AddToParent(node, parentID)

	if _, err := s.revisions.Commit(snap, "added taxon "+req.ScientificName, userID); err != nil {
		return nil, err
	}
	return node, nil
}

// Update applies renames, vernacular names, descriptions and reparenting to a
// taxon node in a new revision. A rename colliding with another taxon's name
// is refused, but the unrelated vernacular-name and description changes are
// still applied and persisted before the conflict is reported; this mirrors
// the editor's long-standing behavior.
func (s *taxonService) Update(id uint, req models.UpdateTaxonRequest, userID string) (*content.Taxon, error) {
	keyID, err := uuid.Parse(req.KeyID)
	if err != nil {
		return nil, models.Validation("invalid key id")
	}
	snap, err := s.editableSnapshot(keyID, userID)
	if err != nil {
		return nil, err
	}

	nodeID := strconv.FormatUint(uint64(id), 10)
	ix := content.NewTreeIndex(snap.Doc)
	node := ix.Find(nodeID)
	if node == nil {
		return nil, models.NotFound("taxon not found")
	}

	if req.VernacularName != nil {
		node.VernacularName = localized(req.VernacularName)
	}
	if req.Description != nil {
		node.Description = localized(req.Description)
	}

	renameConflict := false
	if req.ScientificName != "" && req.ScientificName != node.ScientificName {
		if ix.FindByName(req.ScientificName, nodeID) != nil {
			renameConflict = true
		} else {
			node.ScientificName = req.ScientificName
		}
	}

	if !renameConflict && req.ParentID != nil {
		newParent := *req.ParentID
		if newParent == "" {
			newParent = content.RootParent
		}
		if newParent != content.RootParent && ix.Find(newParent) == nil {
			return nil, models.NotFound("parent taxon not found")
		}
		ix.Reparent(node, newParent)
	}

	if _, err := s.revisions.Commit(snap, "updated taxon "+node.ScientificName, userID); err != nil {
		return nil, err
	}
	if renameConflict {
		return nil, models.Conflict("scientific name already in use")
	}
	return node, nil
}

// Delete removes a taxon and its whole subtree: the nodes leave the tree, the
// backing id rows are destroyed, statements about the removed taxa are
// dropped, and media elements nothing references anymore leave the ledger.
func (s *taxonService) Delete(id uint, keyID uuid.UUID, userID string) error {
	snap, err := s.editableSnapshot(keyID, userID)
	if err != nil {
		return err
	}

	nodeID := strconv.FormatUint(uint64(id), 10)
	ix := content.NewTreeIndex(snap.Doc)
	node := ix.Find(nodeID)
	if node == nil {
		return models.NotFound("taxon not found")
	}

	removed := subtreeIDs(node)
	ix.Remove(node)

	if len(snap.Doc.Statements) > 0 {
		kept := snap.Doc.Statements[:0]
		for _, st := range snap.Doc.Statements {
			if _, gone := removed[st.TaxonID]; !gone {
				kept = append(kept, st)
			}
		}
		snap.Doc.Statements = kept
	}
	content.RemoveOrphanElements(snap.Doc, snap.Media)

	rowIDs := make([]uint, 0, len(removed))
	for idStr := range removed {
		parsed, err := strconv.ParseUint(idStr, 10, 64)
		if err != nil {
			continue
		}
		rowIDs = append(rowIDs, uint(parsed))
	}
	if err := s.entityRepo.DeleteTaxa(rowIDs); err != nil {
		return s.internal("taxon.delete", err)
	}

	_, err = s.revisions.Commit(snap, "removed taxon "+node.ScientificName, userID)
	return err
}

func subtreeIDs(node *content.Taxon) map[string]struct{} {
	ids := make(map[string]struct{})
	var walk func(n *content.Taxon)
	walk = func(n *content.Taxon) {
		ids[n.ID] = struct{}{}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(node)
	return ids
}

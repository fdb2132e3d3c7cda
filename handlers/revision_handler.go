package handlers

import (
	"net/http"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RevisionHandler struct {
	revisionService services.RevisionService
	Helper          *helper.HTTPHelper
}

func NewRevisionHandler(revisionService services.RevisionService, h *helper.HTTPHelper) *RevisionHandler {
	return &RevisionHandler{revisionService: revisionService, Helper: h}
}

func (h *RevisionHandler) CreateRevision(c *gin.Context) {
	keyID, ok := keyIDParam(c)
	if !ok {
		return
	}

	var req models.CreateRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	revision, err := h.revisionService.Create(keyID, req, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, revision)
}

func (h *RevisionHandler) GetRevision(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid revision id"})
		return
	}

	revision, err := h.revisionService.Get(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, revision)
}

func (h *RevisionHandler) GetKeyRevisions(c *gin.Context) {
	keyID, ok := keyIDParam(c)
	if !ok {
		return
	}

	revisions, err := h.revisionService.ListByKey(keyID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, revisions)
}

func (h *RevisionHandler) GetKeyRevision(c *gin.Context) {
	keyID, ok := keyIDParam(c)
	if !ok {
		return
	}
	revisionID, err := uuid.Parse(c.Param("revision_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid revision id"})
		return
	}

	revision, err := h.revisionService.GetForKey(keyID, revisionID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, revision)
}

func (h *RevisionHandler) UpdateRevisionStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid revision id"})
		return
	}

	var req models.UpdateRevisionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	revision, err := h.revisionService.UpdateStatus(id, req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, revision)
}

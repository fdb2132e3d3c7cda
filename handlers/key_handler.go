package handlers

import (
	"net/http"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type KeyHandler struct {
	keyService      services.KeyService
	revisionService services.RevisionService
	Helper          *helper.HTTPHelper
}

func NewKeyHandler(keyService services.KeyService, revisionService services.RevisionService, h *helper.HTTPHelper) *KeyHandler {
	return &KeyHandler{keyService: keyService, revisionService: revisionService, Helper: h}
}

func keyIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key id"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *KeyHandler) CreateKey(c *gin.Context) {
	userID := c.GetString("user_id")

	var req models.CreateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	key, err := h.keyService.Create(req, userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, key)
}

func (h *KeyHandler) GetKeys(c *gin.Context) {
	var params models.KeyListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 20
	}

	keys, total, err := h.keyService.GetList(params, false)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keys":  keys,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	})
}

func (h *KeyHandler) GetPublicKeys(c *gin.Context) {
	var params models.KeyListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}
	if params.Page == 0 {
		params.Page = 1
	}
	if params.Limit == 0 {
		params.Limit = 20
	}

	keys, total, err := h.keyService.GetList(params, true)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"keys":  keys,
		"total": total,
		"page":  params.Page,
		"limit": params.Limit,
	})
}

func (h *KeyHandler) GetKey(c *gin.Context) {
	id, ok := keyIDParam(c)
	if !ok {
		return
	}

	key, err := h.keyService.Get(id, c.GetString("user_id"), false)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, key)
}

func (h *KeyHandler) GetPublicKey(c *gin.Context) {
	id, ok := keyIDParam(c)
	if !ok {
		return
	}

	key, err := h.keyService.Get(id, "", true)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, key)
}

func (h *KeyHandler) UpdateKey(c *gin.Context) {
	id, ok := keyIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateKeyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	key, err := h.keyService.Update(id, req, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, key)
}

func (h *KeyHandler) DeleteKey(c *gin.Context) {
	id, ok := keyIDParam(c)
	if !ok {
		return
	}

	if err := h.keyService.Delete(id, c.GetString("user_id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

package handlers

import (
	"net/http"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CharacterHandler struct {
	characterService services.CharacterService
	Helper           *helper.HTTPHelper
}

func NewCharacterHandler(characterService services.CharacterService, h *helper.HTTPHelper) *CharacterHandler {
	return &CharacterHandler{characterService: characterService, Helper: h}
}

func (h *CharacterHandler) CreateCharacter(c *gin.Context) {
	var req models.CreateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	character, err := h.characterService.Create(req, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, character)
}

func (h *CharacterHandler) UpdateCharacter(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateCharacterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	character, err := h.characterService.Update(id, req, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, character)
}

func (h *CharacterHandler) DeleteCharacter(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	keyID, err := uuid.Parse(c.Query("key_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key id"})
		return
	}

	if err := h.characterService.Delete(id, keyID, c.GetString("user_id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

package handlers

import (
	"net/http"
	"strconv"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TaxonHandler struct {
	taxonService services.TaxonService
	Helper       *helper.HTTPHelper
}

func NewTaxonHandler(taxonService services.TaxonService, h *helper.HTTPHelper) *TaxonHandler {
	return &TaxonHandler{taxonService: taxonService, Helper: h}
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return uint(id), true
}

func (h *TaxonHandler) CreateTaxon(c *gin.Context) {
	var req models.CreateTaxonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	taxon, err := h.taxonService.Create(req, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, taxon)
}

func (h *TaxonHandler) UpdateTaxon(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req models.UpdateTaxonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	taxon, err := h.taxonService.Update(id, req, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, taxon)
}

func (h *TaxonHandler) DeleteTaxon(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	keyID, err := uuid.Parse(c.Query("key_id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid key id"})
		return
	}

	if err := h.taxonService.Delete(id, keyID, c.GetString("user_id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

package handlers

import (
	"net/http"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
)

type CollectionHandler struct {
	collectionService services.CollectionService
	Helper            *helper.HTTPHelper
}

func NewCollectionHandler(collectionService services.CollectionService, h *helper.HTTPHelper) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService, Helper: h}
}

func (h *CollectionHandler) CreateCollection(c *gin.Context) {
	var req models.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	collection, err := h.collectionService.Create(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, collection)
}

func (h *CollectionHandler) GetCollections(c *gin.Context) {
	collections, err := h.collectionService.GetAll()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, collections)
}

func (h *CollectionHandler) GetCollection(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	collection, err := h.collectionService.Get(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, collection)
}

func (h *CollectionHandler) DeleteCollection(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.collectionService.Delete(id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

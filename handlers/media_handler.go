package handlers

import (
	"net/http"
	"strings"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
)

type MediaHandler struct {
	mediaService services.MediaService
	Helper       *helper.HTTPHelper
}

func NewMediaHandler(mediaService services.MediaService, h *helper.HTTPHelper) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, Helper: h}
}

// UploadMedia takes a multipart form: the file plus optional title/license/
// creators fields.
func (h *MediaHandler) UploadMedia(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file field required"})
		return
	}

	titles := models.LocalizedField{
		No: c.PostForm("title_no"),
		En: c.PostForm("title_en"),
	}
	var creators []string
	if raw := c.PostForm("creators"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if trimmed := strings.TrimSpace(name); trimmed != "" {
				creators = append(creators, trimmed)
			}
		}
	}

	media, err := h.mediaService.Upload(header, titles, c.PostForm("license"), creators, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, media)
}

func (h *MediaHandler) GetMedia(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	media, err := h.mediaService.Get(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, media)
}

func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.Delete(id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

func (h *MediaHandler) AttachMedia(c *gin.Context) {
	var req models.AttachMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	revision, err := h.mediaService.Attach(req, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, revision)
}

func (h *MediaHandler) DetachMedia(c *gin.Context) {
	var req models.DetachMediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	revision, err := h.mediaService.Detach(req, c.GetString("user_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, revision)
}

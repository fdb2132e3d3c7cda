package handlers

import (
	"net/http"
	"strconv"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
)

type WorkgroupHandler struct {
	workgroupService services.WorkgroupService
	Helper           *helper.HTTPHelper
}

func NewWorkgroupHandler(workgroupService services.WorkgroupService, h *helper.HTTPHelper) *WorkgroupHandler {
	return &WorkgroupHandler{workgroupService: workgroupService, Helper: h}
}

func (h *WorkgroupHandler) CreateWorkgroup(c *gin.Context) {
	var req models.CreateWorkgroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	workgroup, err := h.workgroupService.Create(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, workgroup)
}

func (h *WorkgroupHandler) GetWorkgroup(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	workgroup, err := h.workgroupService.Get(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, workgroup)
}

// GetWorkgroups lists the workgroups of the organization given in the
// organization_id query parameter.
func (h *WorkgroupHandler) GetWorkgroups(c *gin.Context) {
	orgID, err := strconv.ParseUint(c.Query("organization_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organization_id"})
		return
	}

	workgroups, err := h.workgroupService.GetByOrganization(uint(orgID))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, workgroups)
}

func (h *WorkgroupHandler) AddEditor(c *gin.Context) {
	var req models.CreateEditorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	editor, err := h.workgroupService.AddEditor(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, editor)
}

func (h *WorkgroupHandler) RemoveEditor(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.workgroupService.RemoveEditor(id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "editor removed"})
}

func (h *WorkgroupHandler) GetEditors(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	editors, err := h.workgroupService.GetEditors(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, editors)
}

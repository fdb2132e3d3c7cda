package handlers

import (
	"net/http"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupService services.GroupService
	Helper       *helper.HTTPHelper
}

func NewGroupHandler(groupService services.GroupService, h *helper.HTTPHelper) *GroupHandler {
	return &GroupHandler{groupService: groupService, Helper: h}
}

func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var req models.CreateGroupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	group, err := h.groupService.Create(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

func (h *GroupHandler) GetGroups(c *gin.Context) {
	groups, err := h.groupService.GetAll()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	group, err := h.groupService.Get(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

func (h *GroupHandler) DeleteGroup(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	if err := h.groupService.Delete(id); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusOK)
}

package handlers

import (
	"net/http"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	orgService services.OrganizationService
	Helper     *helper.HTTPHelper
}

func NewOrganizationHandler(orgService services.OrganizationService, h *helper.HTTPHelper) *OrganizationHandler {
	return &OrganizationHandler{orgService: orgService, Helper: h}
}

func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req models.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	org, err := h.orgService.Create(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, org)
}

func (h *OrganizationHandler) GetOrganizations(c *gin.Context) {
	orgs, err := h.orgService.GetAll()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, orgs)
}

func (h *OrganizationHandler) GetOrganization(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	org, err := h.orgService.Get(id)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, org)
}

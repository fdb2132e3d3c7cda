package handlers

import (
	"net/http"
	"strings"

	"keyeditor-api/helper"
	"keyeditor-api/models"
	"keyeditor-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService       services.AuthService
	permissionService services.PermissionService
	Helper            *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, permissionService services.PermissionService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, permissionService: permissionService, Helper: h}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBindingError(c, err)
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID := c.GetString("user_id")

	user, err := h.authService.GetUserByID(userID)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetPermissions answers which of the requested permissions the caller holds
// along with their organization and workgroup scope.
func (h *AuthHandler) GetPermissions(c *gin.Context) {
	userID := c.GetString("user_id")

	requested := strings.Split(c.Query("permissions"), ",")
	grant, err := h.permissionService.Resolve(userID, requested)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, grant)
}

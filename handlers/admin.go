package handlers

import (
	"errors"
	"net/http"

	"courtside/models"
	adminService "courtside/services/admin"
	userService "courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the announcement banner, app settings and role
// management endpoints. Reads of the banner and settings are public;
// writes sit behind the admin middleware.
type AdminHandler struct {
	Svc    adminService.AdminService
	Users  userService.UserService
	Logger *zap.Logger
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(svc adminService.AdminService, users userService.UserService, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{Svc: svc, Users: users, Logger: logger}
}

// GetAnnouncement returns the current announcement banner.
func (h *AdminHandler) GetAnnouncement(c *gin.Context) {
	ann, err := h.Svc.GetAnnouncement()
	if err != nil {
		h.Logger.Error("failed to load announcement", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load announcement", err.Error())
		return
	}
	c.JSON(http.StatusOK, ann)
}

// UpdateAnnouncement applies a partial update to the announcement banner.
func (h *AdminHandler) UpdateAnnouncement(c *gin.Context) {
	var update models.AnnouncementUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateAnnouncement(update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update announcement", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// GetAppSettings returns the club-wide application settings.
func (h *AdminHandler) GetAppSettings(c *gin.Context) {
	settings, err := h.Svc.GetAppSettings()
	if err != nil {
		h.Logger.Error("failed to load app settings", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load settings", err.Error())
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateAppSettings applies a partial update to the app settings, such
// as toggling whether new bookings are accepted.
func (h *AdminHandler) UpdateAppSettings(c *gin.Context) {
	var update models.AppSettingsUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	if err := h.Svc.UpdateAppSettings(update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "failed to update settings", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

// UpdateUserRole changes a member's role.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	var update models.UserRoleUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	uid := c.Param("uid")
	if err := h.Users.UpdateRole(uid, update); err != nil {
		if errors.Is(err, userService.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "profile not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to update role", err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"net/http"

	"courtside/middleware"
	"courtside/models"
	userService "courtside/services/user"
	"courtside/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the member profile endpoints.
type UserHandler struct {
	Svc    userService.UserService
	Logger *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(svc userService.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// GetMe returns the caller's profile, provisioning it on first sign-in
// from the identity claims carried on the verified token.
func (h *UserHandler) GetMe(c *gin.Context) {
	uid := middleware.CurrentUID(c)
	email, _ := c.Get(middleware.ContextEmail)
	name, _ := c.Get(middleware.ContextName)
	emailStr, _ := email.(string)
	nameStr, _ := name.(string)

	profile, err := h.Svc.CreateProfileFromAuth(uid, emailStr, nameStr)
	if err != nil {
		h.Logger.Error("failed to provision profile", zap.String("uid", uid), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateMe applies a partial update to the caller's own profile.
func (h *UserHandler) UpdateMe(c *gin.Context) {
	var update models.UserProfileUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	uid := middleware.CurrentUID(c)
	profile, err := h.Svc.UpdateProfile(uid, update)
	if err != nil {
		if errors.Is(err, userService.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "profile not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusBadRequest, "failed to update profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// GetProfile returns another member's profile.
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.Svc.GetProfile(c.Param("uid"))
	if err != nil {
		if errors.Is(err, userService.ErrProfileNotFound) {
			utils.JSONError(c, http.StatusNotFound, "profile not found", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load profile", err.Error())
		return
	}
	c.JSON(http.StatusOK, profile)
}

// ListUsers returns every member profile, for opponent selection.
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.Svc.ListUsers()
	if err != nil {
		h.Logger.Error("failed to list users", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to load users", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

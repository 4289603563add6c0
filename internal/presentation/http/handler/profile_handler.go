package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/smartinvoice/smartinvoice-api/internal/application/service"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/dto/request"
	"github.com/smartinvoice/smartinvoice-api/internal/presentation/http/dto/response"
)

// ProfileHandler handles account profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// GetProfile handles fetching the current account profile
// @Summary Get Profile
// @Description Get current user's profile
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	profile, err := h.profileService.Get(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile retrieved successfully", gin.H{"profile": profile})
}

// UpdateProfile handles updating the current account profile
// @Summary Update Profile
// @Description Update current user's profile
// @Tags profile
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateProfileRequest true "Profile data"
// @Success 200 {object} response.APIResponse
// @Router /profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		UserID:   *userID,
		FullName: req.FullName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Profile updated successfully", gin.H{"profile": profile})
}

// GetUsage handles fetching the current export allowance
// @Summary Get Usage
// @Description Get current user's export usage and plan state
// @Tags profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /profile/usage [get]
func (h *ProfileHandler) GetUsage(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	usage, err := h.profileService.Usage(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Usage retrieved successfully", usage)
}

package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/pulsefit/coach-backend/internal/service"
	"github.com/pulsefit/coach-backend/internal/types"
)

// ProfileHandler exposes the health profile and training schedule.
type ProfileHandler struct {
	profileService service.IProfileService
}

func NewProfileHandler(profileService service.IProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	profile := router.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.GET("/training-days", h.GetTrainingDays)
		profile.PUT("/training-days", h.ReplaceTrainingDays)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "profile not found"})
			return
		}
		log.Printf("Failed to get profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Failed to update profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *ProfileHandler) GetTrainingDays(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	days, err := h.profileService.GetTrainingDays(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Failed to get training days: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get training days"})
		return
	}

	c.JSON(http.StatusOK, days)
}

func (h *ProfileHandler) ReplaceTrainingDays(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req []types.TrainingDayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	days, err := h.profileService.ReplaceTrainingDays(c.Request.Context(), userID, req)
	if err != nil {
		log.Printf("Failed to replace training days: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update training days"})
		return
	}

	c.JSON(http.StatusOK, days)
}

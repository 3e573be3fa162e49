package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pulsefit/coach-backend/internal/service"
	"github.com/pulsefit/coach-backend/internal/types"
)

// SupplementHandler exposes the user's supplement cabinet.
type SupplementHandler struct {
	profileService service.IProfileService
}

func NewSupplementHandler(profileService service.IProfileService) *SupplementHandler {
	return &SupplementHandler{profileService: profileService}
}

func (h *SupplementHandler) RegisterRoutes(router *gin.RouterGroup) {
	supplements := router.Group("/supplements")
	{
		supplements.GET("", h.List)
		supplements.POST("", h.Create)
		supplements.PUT("/:id", h.Update)
		supplements.DELETE("/:id", h.Delete)
	}
}

func (h *SupplementHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	supplements, err := h.profileService.ListSupplements(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Failed to list supplements: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list supplements"})
		return
	}

	c.JSON(http.StatusOK, supplements)
}

func (h *SupplementHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.SupplementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	supplement, err := h.profileService.CreateSupplement(c.Request.Context(), userID, &req)
	if err != nil {
		log.Printf("Failed to create supplement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create supplement"})
		return
	}

	c.JSON(http.StatusCreated, supplement)
}

func (h *SupplementHandler) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplement id"})
		return
	}

	var req types.SupplementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	supplement, err := h.profileService.UpdateSupplement(c.Request.Context(), userID, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrSupplementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "supplement not found"})
			return
		}
		log.Printf("Failed to update supplement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update supplement"})
		return
	}

	c.JSON(http.StatusOK, supplement)
}

func (h *SupplementHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplement id"})
		return
	}

	if err := h.profileService.DeleteSupplement(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrSupplementNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "supplement not found"})
			return
		}
		log.Printf("Failed to delete supplement: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete supplement"})
		return
	}

	c.Status(http.StatusNoContent)
}

package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/pulsefit/coach-backend/internal/service"
)

// PlanHandler exposes daily plan reads and the supplement-taken update.
type PlanHandler struct {
	planService service.IPlanService
}

func NewPlanHandler(planService service.IPlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

func (h *PlanHandler) RegisterRoutes(router *gin.RouterGroup) {
	plans := router.Group("/plans")
	{
		plans.GET("/today", h.Today)
		plans.GET("/:date", h.ByDate)
		plans.POST("/today/supplements/:supplementID/taken", h.MarkSupplementTaken)
	}
}

// Today returns today's plan, generating it on first access.
func (h *PlanHandler) Today(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.planService.TodayPlan(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Failed to get today's plan: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get today's plan"})
		return
	}

	c.JSON(http.StatusOK, plan)
}

// ByDate returns a stored plan without ever regenerating it.
func (h *PlanHandler) ByDate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	plan, err := h.planService.PlanByDate(c.Request.Context(), userID, c.Param("date"))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no plan for that date"})
		case errors.Is(err, service.ErrInvalidDate):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
		default:
			log.Printf("Failed to get plan: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get plan"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

func (h *PlanHandler) MarkSupplementTaken(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	supplementID, err := uuid.Parse(c.Param("supplementID"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid supplement id"})
		return
	}

	plan, err := h.planService.MarkSupplementTaken(c.Request.Context(), userID, supplementID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "no plan for today"})
		case errors.Is(err, service.ErrSupplementNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "supplement not in today's plan"})
		default:
			log.Printf("Failed to mark supplement taken: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update plan"})
		}
		return
	}

	c.JSON(http.StatusOK, plan)
}

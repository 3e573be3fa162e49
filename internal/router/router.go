package router

import (
	"github.com/gin-gonic/gin"

	"github.com/pulsefit/coach-backend/internal/api"
	"github.com/pulsefit/coach-backend/internal/middleware"
	"github.com/pulsefit/coach-backend/internal/service"
)

// SetupRouter configures the application routes
func SetupRouter(
	authHandler *api.AuthHandler,
	profileHandler *api.ProfileHandler,
	supplementHandler *api.SupplementHandler,
	planHandler *api.PlanHandler,
	healthHandler *api.HealthHandler,
	authService service.IAuthService,
) *gin.Engine {
	router := gin.Default()
	router.Use(middleware.CORS())

	if healthHandler != nil {
		healthHandler.RegisterRoutes(router)
	}

	v1 := router.Group("/api/v1")

	authHandler.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		profileHandler.RegisterRoutes(protected)
		supplementHandler.RegisterRoutes(protected)
		planHandler.RegisterRoutes(protected)
	}

	return router
}

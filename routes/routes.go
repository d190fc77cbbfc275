package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"solbridge/config"
	"solbridge/handlers"
)

// RegisterIntakeRoutes registers the client-creation and lookup endpoints.
func RegisterIntakeRoutes(r *gin.Engine, ih *handlers.IntakeHandler) {
	api := r.Group("/intakeq")
	{
		api.POST("/create-client", ih.CreateClientHandler)
		api.GET("/client", ih.GetClientHandler)
	}
}

// RegisterFormRoutes registers the legacy form-notification endpoint.
func RegisterFormRoutes(r *gin.Engine) {
	api := r.Group("/intakeq_forms")
	{
		api.POST("/mandatory_form", handlers.MandatoryFormHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// CORSMiddleware builds the CORS policy from configuration. The survey
// frontend is served from a different origin than this bridge.
func CORSMiddleware() gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if origins := config.AppConfig.CORSAllowedOrigins; len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowAllOrigins = true
	}
	return cors.New(cfg)
}

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, ih *handlers.IntakeHandler) {
	r.Use(CORSMiddleware())
	RegisterHealthRoute(r)
	RegisterIntakeRoutes(r, ih)
	RegisterFormRoutes(r)
}

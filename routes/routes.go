package routes

import (
	"net/http"

	"dbswash/handlers"
	"dbswash/middleware"
	"dbswash/utils"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the full HTTP surface onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	RegisterHealthRoute(r)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterCatalogRoutes registers the read-only reference data endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/packages", hb.GetPackages)
		api.GET("/extras", hb.GetExtras)
		api.GET("/locations", hb.GetLocations)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	bookingGroup := r.Group("/api/booking")
	{
		bookingGroup.POST("/session", hb.CreateSession)
		bookingGroup.GET("/session/:sessionID", hb.GetSession)
		bookingGroup.PUT("/session/:sessionID/schedule", hb.SetSchedule)
		bookingGroup.PUT("/session/:sessionID/package", hb.TogglePackage)
		bookingGroup.PUT("/session/:sessionID/extras", hb.ToggleExtra)
		bookingGroup.PUT("/session/:sessionID/contact", hb.SetContact)
		bookingGroup.POST("/session/:sessionID/next", hb.AdvanceSession)
		bookingGroup.POST("/session/:sessionID/back", hb.BackSession)
		bookingGroup.POST("/session/:sessionID/submit", hb.SubmitSession)
		bookingGroup.DELETE("/session/:sessionID", hb.CancelSession)
	}
}

// RegisterAdminRoutes registers the token-guarded catalog mutations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	admin.Use(middleware.AdminAuthMiddleware())
	{
		admin.POST("/packages", hb.AdminHandler.SavePackage)
		admin.PUT("/packages/:id", hb.AdminHandler.SavePackage)
		admin.DELETE("/packages/:id", hb.AdminHandler.DeletePackage)

		admin.POST("/extras", hb.AdminHandler.SaveExtra)
		admin.PUT("/extras/:id", hb.AdminHandler.SaveExtra)
		admin.DELETE("/extras/:id", hb.AdminHandler.DeleteExtra)

		admin.POST("/locations", hb.AdminHandler.SaveLocation)
		admin.PUT("/locations/:id", hb.AdminHandler.SaveLocation)
		admin.DELETE("/locations/:id", hb.AdminHandler.DeleteLocation)
	}
}

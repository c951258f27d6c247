package routes

import (
	"time"

	"hotelops/handlers"
	"hotelops/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint group onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterAuthRoutes(r, hb)
	RegisterFrontDeskRoutes(r, hb)
	RegisterStatsRoutes(r, hb)
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
}

// RegisterAuthRoutes registers the back-office login endpoint.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/admin/login", hb.Auth.AdminLoginHandler)
}

// RegisterFrontDeskRoutes registers the CRUD endpoints for the source
// collections. Every write here feeds the stats pipeline.
func RegisterFrontDeskRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.POST("/bookings", hb.FrontDesk.CreateBookingHandler)
		api.GET("/bookings", hb.FrontDesk.ListBookingsHandler)
		api.GET("/bookings/:id", hb.FrontDesk.GetBookingHandler)
		api.PUT("/bookings/:id", hb.FrontDesk.UpdateBookingHandler)
		api.DELETE("/bookings/:id", hb.FrontDesk.DeleteBookingHandler)

		api.POST("/rooms", hb.FrontDesk.CreateRoomHandler)
		api.GET("/rooms", hb.FrontDesk.ListRoomsHandler)
		api.GET("/rooms/:id", hb.FrontDesk.GetRoomHandler)
		api.PUT("/rooms/:id", hb.FrontDesk.UpdateRoomHandler)
		api.DELETE("/rooms/:id", hb.FrontDesk.DeleteRoomHandler)

		api.POST("/staff", hb.FrontDesk.CreateStaffHandler)
		api.GET("/staff", hb.FrontDesk.ListStaffHandler)
		api.GET("/staff/:id", hb.FrontDesk.GetStaffHandler)
		api.PUT("/staff/:id", hb.FrontDesk.UpdateStaffHandler)
		api.DELETE("/staff/:id", hb.FrontDesk.DeleteStaffHandler)

		api.POST("/inventory", hb.FrontDesk.CreateInventoryItemHandler)
		api.GET("/inventory", hb.FrontDesk.ListInventoryHandler)
		api.GET("/inventory/:id", hb.FrontDesk.GetInventoryItemHandler)
		api.PUT("/inventory/:id", hb.FrontDesk.UpdateInventoryItemHandler)
		api.DELETE("/inventory/:id", hb.FrontDesk.DeleteInventoryItemHandler)
	}
}

// RegisterStatsRoutes registers the dashboard read endpoint.
func RegisterStatsRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/stats")
	api.Use(middleware.AdminAuthMiddleware())
	{
		api.GET("/dashboard", hb.Stats.GetDashboardHandler)
	}
}

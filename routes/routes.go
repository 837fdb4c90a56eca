package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"sproutly/handlers"
	"sproutly/utils"
)

// RegisterSlotRoutes registers the BranchSlot CRUD and listing endpoints.
func RegisterSlotRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/BranchSlot")
	{
		api.POST("", hb.Slot.CreateSlotHandler)
		api.GET("", hb.Slot.ListSlotsHandler)
		api.GET("/:id", hb.Slot.GetSlotHandler)
		api.PUT("/:id", hb.Slot.UpdateSlotHandler)
		api.DELETE("/:id", hb.Slot.DeleteSlotHandler)
	}
}

// RegisterAssignmentRoutes registers room and staff assignment endpoints.
func RegisterAssignmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/BranchSlot")
	{
		api.POST("/assign-rooms", hb.Assignment.AssignRoomsHandler)
		api.POST("/assign-staff", hb.Assignment.AssignStaffHandler)
		api.GET("/:id/rooms", hb.Assignment.ListSlotRoomsHandler)
		api.GET("/:id/staff", hb.Assignment.ListSlotStaffHandler)
		api.GET("/:id/assignments", hb.Assignment.GetAssignmentsHandler)
		api.DELETE("/:id/rooms/:roomId", hb.Assignment.UnassignRoomHandler)
		api.DELETE("/:id/staff/:staffId", hb.Assignment.UnassignStaffHandler)
	}
}

// RegisterAvailabilityRoutes registers student-facing availability queries.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/BranchSlot/available-for-student/:studentId", hb.Availability.AvailableForStudentHandler)
}

// RegisterWizardRoutes sets up the endpoints for the slot creation flow.
func RegisterWizardRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	flowGroup := r.Group("/BranchSlot/flows")
	{
		flowGroup.POST("", hb.Wizard.StartFlowHandler)
		flowGroup.POST("/edit/:slotId", hb.Wizard.StartEditFlowHandler)
		flowGroup.GET("/:flowId", hb.Wizard.GetFlowHandler)
		flowGroup.PUT("/:flowId/basic-info", hb.Wizard.SubmitBasicInfoHandler)
		flowGroup.PUT("/:flowId/rooms", hb.Wizard.SubmitRoomsHandler)
		flowGroup.PUT("/:flowId/staff", hb.Wizard.SubmitStaffHandler)
		flowGroup.DELETE("/:flowId", hb.Wizard.AbandonFlowHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSlotRoutes(r, hb)
	RegisterAssignmentRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterWizardRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}

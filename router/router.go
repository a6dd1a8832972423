package router

import (
	"log"

	"opsdesk/config"
	"opsdesk/controllers"
	"opsdesk/middleware"
	"opsdesk/models"

	"github.com/gin-gonic/gin"
)

// Initialize wires all routes and middlewares: public intake (webhook +
// client forms), authenticated staff group and owner group.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	_ = cfg

	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())

	api := r.Group("")

	// Inbound do canal de mensagens (Twilio form POST)
	api.POST("/webhook/whatsapp", Logger(), controllers.WebhookInbound)

	// Public (no auth)
	api.POST("/onboarding", Logger(), controllers.Onboard)
	api.POST("/login", Logger(), controllers.Login)

	// Formulários de cliente (superfície pública de intake)
	api.POST("/client/query", Logger(), controllers.SubmitQuery)
	api.POST("/client/booking", Logger(), controllers.SubmitBooking)
	api.POST("/client/feedback", Logger(), controllers.SubmitFeedback)

	// Authenticated routes (token required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())
	auth.GET("/me", Logger(), controllers.Me)

	// Staff surface
	staff := auth.Group("/staff")
	staff.Use(RequireRole(models.USER_ROLE_STAFF))
	staff.GET("", Logger(), controllers.StaffDashboard)
	staff.GET("/inbox", Logger(), controllers.StaffInbox)
	staff.GET("/conversation/:id", Logger(), controllers.StaffConversation)
	staff.POST("/reply/:id", Logger(), controllers.StaffReply)
	staff.POST("/inventory/update", Logger(), controllers.UpdateInventory)

	// Owner surface
	owner := auth.Group("/owner")
	owner.Use(RequireRole(models.USER_ROLE_OWNER))
	owner.GET("", Logger(), controllers.OwnerDashboard)
	owner.GET("/staff", Logger(), controllers.ListStaff)
	owner.POST("/staff/add", Logger(), controllers.AddStaff)
	owner.GET("/inventory", Logger(), controllers.ListInventory)
	owner.POST("/inventory/add", Logger(), controllers.AddInventory)
	owner.POST("/inventory/update", Logger(), controllers.UpdateInventory)

	log.Printf("Routes initialized")
}

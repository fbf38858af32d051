package routes

import (
	adminapi "undangan-app/internal/api/admin"
	authapi "undangan-app/internal/api/auth"
	"undangan-app/internal/api/billing"
	"undangan-app/internal/api/gatewaywebhook"
	plansapi "undangan-app/internal/api/plans"
	projectsapi "undangan-app/internal/api/projects"
	resellerapi "undangan-app/internal/api/reseller"
	rsvpapi "undangan-app/internal/api/rsvp"
	templatesapi "undangan-app/internal/api/templates"
	usersapi "undangan-app/internal/api/users"
	"undangan-app/internal/app/http/middleware"
	"undangan-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Gateway notifications carry a raw body we persist verbatim; keep them
	// out of the sanitizer group.
	r.POST("/webhook/payment", gatewaywebhook.HandlePaymentNotification)
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	r.GET("/templates", templatesapi.ListTemplates)
	r.GET("/templates/:id", templatesapi.GetTemplate)
	r.GET("/plans", plansapi.ListPlans)
	r.GET("/subdomains/check", projectsapi.CheckSubdomain)
	r.GET("/sites/:subdomain", projectsapi.GetProjectBySubdomain)

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)
	public.POST("/rsvps/:link/respond", rsvpapi.RespondRsvp)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(), middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/me", usersapi.GetCurrentUser)

	auth.GET("/projects", projectsapi.ListMyProjects)
	auth.POST("/projects", projectsapi.CreateProject)
	auth.PUT("/projects/:id", projectsapi.UpdateProject)

	auth.POST("/projects/:id/rsvps", rsvpapi.CreateRsvp)
	auth.GET("/projects/:id/rsvps", rsvpapi.ListProjectRsvps)

	auth.GET("/payments", billing.GetPaymentHistory)
	auth.POST("/payments", billing.CreatePayment)

	// Resellers
	reseller := r.Group("/reseller")
	reseller.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleReseller))
	reseller.GET("/earnings", resellerapi.GetEarnings)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole(users.RoleAdmin))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
	admin.GET("/payments", adminapi.ListAllPayments)
	admin.POST("/templates", templatesapi.CreateTemplate)
	admin.POST("/plans", plansapi.CreatePlan)
}

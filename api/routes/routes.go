package routes

import (
	"net/http"

	"github.com/ArowuTest/oripay-exchange-backend/internal/config"
	"github.com/ArowuTest/oripay-exchange-backend/internal/guard"
	"github.com/ArowuTest/oripay-exchange-backend/internal/handlers"
	"github.com/ArowuTest/oripay-exchange-backend/internal/middleware"
	"github.com/ArowuTest/oripay-exchange-backend/internal/session"
	"github.com/gin-gonic/gin"
)

// HandlerDependencies holds the handlers and shared components the router mounts
type HandlerDependencies struct {
	PageHandler           *handlers.PageHandler
	AuthHandler           *handlers.AuthHandler
	OnboardingHandler     *handlers.OnboardingHandler
	UserHandler           *handlers.UserHandler
	ContentHandler        *handlers.ContentHandler
	SystemSettingsHandler *handlers.SystemSettingsHandler

	Registry *session.Registry
	Guard    *guard.Guard
}

// SetupRouter sets up the router
func SetupRouter(cfg *config.Config, deps HandlerDependencies) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.SessionMiddleware(cfg, deps.Registry))

	signedIn := func(mode middleware.Mode) gin.HandlerFunc {
		return middleware.RouteGuard(deps.Guard, cfg.Session.ReadyTimeout, false, mode)
	}
	adminOnly := func(mode middleware.Mode) gin.HandlerFunc {
		return middleware.RouteGuard(deps.Guard, cfg.Session.ReadyTimeout, true, mode)
	}

	// Navigation routes
	router.GET("/", deps.PageHandler.Home)
	router.GET("/services", deps.PageHandler.Services)
	router.GET("/about", deps.PageHandler.About)
	router.GET("/login", deps.PageHandler.Login)
	router.GET("/register", deps.PageHandler.Register)
	router.GET("/kyc", signedIn(middleware.PageMode), deps.PageHandler.KYC)
	router.GET("/dashboard", signedIn(middleware.PageMode), deps.UserHandler.Dashboard)

	admin := router.Group("/admin", adminOnly(middleware.PageMode))
	{
		admin.GET("", deps.UserHandler.AdminStats)
		admin.GET("/content", deps.ContentHandler.AdminContent)
		admin.GET("/about", deps.ContentHandler.GetAbout)
		admin.GET("/footer", deps.ContentHandler.GetFooter)
		admin.GET("/settings", deps.SystemSettingsHandler.AdminSettings)
		admin.GET("/users", deps.UserHandler.ListUsers)
	}

	// Public API routes
	public := router.Group("/api/v1")
	{
		public.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		auth := public.Group("/auth")
		{
			auth.POST("/login", deps.AuthHandler.Login)
			auth.POST("/logout", deps.AuthHandler.Logout)
			auth.GET("/session", deps.AuthHandler.Session)
			auth.POST("/password-reset", deps.AuthHandler.RequestPasswordReset)
			auth.POST("/password-reset/confirm", deps.AuthHandler.ConfirmPasswordReset)
		}

		public.POST("/register", deps.OnboardingHandler.Register)
		public.GET("/currencies", deps.SystemSettingsHandler.ListCurrencies(true))
		public.GET("/countries", deps.SystemSettingsHandler.ListCountries(true))
	}

	// Signed-in API routes
	protected := router.Group("/api/v1", signedIn(middleware.APIMode))
	{
		protected.POST("/kyc", deps.OnboardingHandler.SubmitKYC)
		protected.GET("/dashboard", deps.UserHandler.Dashboard)
	}

	// Admin API routes
	adminAPI := router.Group("/api/v1/admin", adminOnly(middleware.APIMode))
	{
		adminAPI.GET("/stats", deps.UserHandler.AdminStats)

		users := adminAPI.Group("/users")
		{
			users.GET("", deps.UserHandler.ListUsers)
			users.GET("/:uid", deps.UserHandler.GetUser)
			users.POST("/:uid/kyc/approve", deps.UserHandler.ApproveKYC)
			users.POST("/:uid/kyc/reject", deps.UserHandler.RejectKYC)
			users.POST("/:uid/suspend", deps.UserHandler.SuspendUser)
			users.POST("/:uid/activate", deps.UserHandler.ActivateUser)
			users.POST("/:uid/password-reset", deps.UserHandler.SendPasswordReset)
		}

		content := adminAPI.Group("/content")
		{
			content.GET("", deps.ContentHandler.AdminContent)
			content.PUT("/homepage", deps.ContentHandler.SaveHomepage)
			content.GET("/about", deps.ContentHandler.GetAbout)
			content.PUT("/about", deps.ContentHandler.SaveAbout)
			content.GET("/footer", deps.ContentHandler.GetFooter)
			content.PUT("/footer", deps.ContentHandler.SaveFooter)
		}

		adminAPI.POST("/services", deps.ContentHandler.CreateService)
		adminAPI.PUT("/services/:id", deps.ContentHandler.UpdateService)
		adminAPI.DELETE("/services/:id", deps.ContentHandler.DeleteService)

		adminAPI.POST("/announcements", deps.ContentHandler.CreateAnnouncement)
		adminAPI.PUT("/announcements/:id", deps.ContentHandler.UpdateAnnouncement)
		adminAPI.DELETE("/announcements/:id", deps.ContentHandler.DeleteAnnouncement)

		adminAPI.GET("/settings", deps.SystemSettingsHandler.GetSettings)
		adminAPI.PUT("/settings", deps.SystemSettingsHandler.UpdateSettings)

		adminAPI.GET("/currencies", deps.SystemSettingsHandler.ListCurrencies(false))
		adminAPI.PUT("/currencies/:code", deps.SystemSettingsHandler.SaveCurrency)
		adminAPI.POST("/currencies/:code/toggle", deps.SystemSettingsHandler.ToggleCurrency)
		adminAPI.DELETE("/currencies/:code", deps.SystemSettingsHandler.DeleteCurrency)

		adminAPI.GET("/countries", deps.SystemSettingsHandler.ListCountries(false))
		adminAPI.PUT("/countries/:code", deps.SystemSettingsHandler.SaveCountry)
		adminAPI.POST("/countries/:code/toggle", deps.SystemSettingsHandler.ToggleCountry)
		adminAPI.DELETE("/countries/:code", deps.SystemSettingsHandler.DeleteCountry)
	}

	router.NoRoute(deps.PageHandler.NotFound)

	return router
}

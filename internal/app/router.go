package app

import (
	"github.com/gin-gonic/gin"
	"github.com/guanzhi08/aces-unit-test/internal/middleware"
	"github.com/guanzhi08/aces-unit-test/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, s *services) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)

		public.POST("/results", c.result.SubmitResult)
		public.GET("/results/:username", c.result.GetUserResults)
		public.PUT("/results/:id", c.result.UpdateResult)
		public.DELETE("/results/:id", c.result.DeleteResult)

		public.GET("/curve/:username", c.analytics.GetCurve)
		public.GET("/curve-by-unit/:username", c.analytics.GetCurveByUnit)
		public.GET("/curve-by-count/:username", c.analytics.GetCurveByCount)
		public.GET("/stats/:username", c.analytics.GetStats)
		public.GET("/users", c.analytics.GetUsers)

		public.POST("/users/create", c.account.CreateUser)
		public.POST("/users/login", c.account.LoginUser)

		// Login mints tokens, verify reports validity and logout is
		// idempotent, so none of the three sit behind the token check.
		public.POST("/admin/login", c.admin.Login)
		public.POST("/admin/verify", c.admin.Verify)
		public.POST("/admin/logout", c.admin.Logout)
	}

	// Admin routes: a valid session token is required on every call.
	adminGroup := router.Group("/api")
	adminGroup.Use(middleware.AdminToken(s.admin))
	{
		adminGroup.GET("/all-results", c.result.GetAllResults)
		adminGroup.POST("/admin/change-password", c.admin.ChangePassword)
		adminGroup.GET("/admin/users", c.admin.ListUsers)
		adminGroup.POST("/admin/users/delete", c.admin.DeleteUser)
		adminGroup.POST("/admin/users/reset-password", c.admin.ResetPassword)
	}
}

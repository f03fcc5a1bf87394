package routes

import (
	"symptom-checker/handlers"
	"symptom-checker/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, h *handlers.Handler, authSvc *middleware.AuthService) {
	// ── Public routes ──────────────────────────────────────────────
	r.GET("/", h.Index)
	r.GET("/register", h.RegisterForm)
	r.POST("/register", h.Register)
	r.GET("/login", h.LoginForm)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)

	// ── Authenticated pages ────────────────────────────────────────
	pages := r.Group("/")
	pages.Use(authSvc.AuthRequired())
	{
		pages.GET("/dashboard", h.Dashboard)
		pages.GET("/symptom-check", h.SymptomCheckForm)
		pages.POST("/symptom-check", h.SymptomCheck)
		pages.GET("/history", h.History)
		pages.GET("/feedback", h.FeedbackForm)
		pages.POST("/feedback", h.Feedback)
	}

	// ── Admin pages ────────────────────────────────────────────────
	admin := r.Group("/admin")
	admin.Use(authSvc.AuthRequired(), middleware.AdminRequired())
	{
		admin.GET("", h.AdminDashboard)
		admin.GET("/feedback", h.AdminFeedbackList)
		admin.POST("/feedback/:id/status", h.AdminUpdateFeedbackStatus)
	}

	// ── JSON API for bearer-token clients ──────────────────────────
	api := r.Group("/api")
	{
		api.POST("/login", h.APILogin)

		apiAuth := api.Group("")
		apiAuth.Use(authSvc.APIAuthRequired())
		apiAuth.GET("/history", h.APIHistory)
	}
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/lifetrackhq/lifetrack_backend/internal/core/ports/services"
	"github.com/lifetrackhq/lifetrack_backend/internal/middleware"
	"github.com/lifetrackhq/lifetrack_backend/internal/platform/config"
	"github.com/lifetrackhq/lifetrack_backend/internal/utils"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// authRateLimit caps credential endpoints per client IP.
const authRateLimit = "5-M"

// RegisterRoutes attaches all endpoints to the engine.
func RegisterRoutes(r *gin.Engine, svc *portssvc.ServiceContainer, cfg *config.Config, posthogClient *utils.PosthogClientWrapper) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authHandler := NewAuthHandler(svc.User, svc.Token, cfg)
	oauthHandler := NewGoogleOAuthHandler(svc.GoogleOAuth, svc.User, svc.Token, cfg)

	rate, err := limiter.NewRateFromFormatted(authRateLimit)
	if err != nil {
		panic(err)
	}
	authLimiter := limiter.New(memory.NewStore(), rate)

	auth := r.Group("/api/v1/auth")
	auth.Use(middleware.RateLimit(authLimiter))
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
		auth.GET("/google/login", oauthHandler.Login)
		auth.GET("/google/callback", oauthHandler.Callback)
	}

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	api.Use(middleware.PosthogMiddleware(posthogClient))
	{
		registerTransactionRoutes(api, svc.Transaction)
		RegisterGoalRoutes(api, svc.Goal)
		registerNoteRoutes(api, svc.Note)
		registerReminderRoutes(api, svc.Reminder)
		registerCategoryRoutes(api, svc.Category)
		registerActivityRoutes(api, svc.Activity)
	}
}

func registerTransactionRoutes(rg *gin.RouterGroup, svc portssvc.TransactionSvcFacade) {
	h := NewTransactionHandler(svc)
	rg.GET("/transactions", h.ListTransactions)
	rg.POST("/transactions", h.CreateTransaction)
	rg.PUT("/transactions", h.UpdateTransaction)
	rg.DELETE("/transactions", h.DeleteTransaction)
}

// RegisterGoalRoutes attaches goal endpoints to the given group. Exported so
// tests can mount them on their own engine.
func RegisterGoalRoutes(rg *gin.RouterGroup, svc portssvc.GoalSvcFacade) {
	h := NewGoalHandler(svc)
	rg.GET("/goals", h.ListGoals)
	rg.POST("/goals", h.CreateGoal)
	rg.PUT("/goals", h.UpdateGoal)
	rg.DELETE("/goals", h.DeleteGoal)
}

func registerNoteRoutes(rg *gin.RouterGroup, svc portssvc.NoteSvcFacade) {
	h := NewNoteHandler(svc)
	rg.GET("/notes", h.ListNotes)
	rg.POST("/notes", h.CreateNote)
	rg.PUT("/notes", h.UpdateNote)
	rg.DELETE("/notes", h.DeleteNote)
}

func registerReminderRoutes(rg *gin.RouterGroup, svc portssvc.ReminderSvcFacade) {
	h := NewReminderHandler(svc)
	rg.GET("/reminders", h.ListReminders)
	rg.POST("/reminders", h.CreateReminder)
	rg.PUT("/reminders", h.UpdateReminder)
	rg.DELETE("/reminders", h.DeleteReminder)
}

func registerCategoryRoutes(rg *gin.RouterGroup, svc portssvc.CategorySvcFacade) {
	h := NewCategoryHandler(svc)
	rg.GET("/categories", h.ListCategories)
	rg.POST("/categories", h.CreateCategory)
	rg.PUT("/categories", h.UpdateCategory)
	rg.DELETE("/categories", h.DeleteCategory)
}

func registerActivityRoutes(rg *gin.RouterGroup, svc portssvc.ActivitySvcFacade) {
	h := NewActivityHandler(svc)
	rg.GET("/activities", h.ListActivities)
}

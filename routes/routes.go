package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"fundilink/handlers"
)

// HandlerBundle gathers every handler the router mounts.
type HandlerBundle struct {
	Auth      *handlers.AuthHandler
	Intake    *handlers.IntakeHandler
	Matching  *handlers.MatchingHandler
	Chat      *handlers.ChatHandler
	Rating    *handlers.RatingHandler
	Signup    *handlers.SignupHandler
	Dashboard *handlers.DashboardHandler
}

// RegisterCatalogRoutes registers the category, service and location
// lookups that feed the browse page and the wizard selects.
func RegisterCatalogRoutes(r *gin.Engine) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", handlers.GetCategoriesHandler)
		api.GET("/categories/:key", handlers.GetCategoryHandler)
		api.GET("/services/search", handlers.SearchServicesHandler)
	}

	loc := r.Group("/api/locations")
	{
		loc.GET("/counties", handlers.GetCountiesHandler)
		loc.GET("/counties/:county", handlers.GetSubCountiesHandler)
		loc.GET("/counties/:county/:subCounty", handlers.GetWardsHandler)
		loc.GET("/counties/:county/:subCounty/:ward", handlers.GetAreasHandler)
	}
}

// RegisterSessionRoutes registers login, registration and session lookup.
func RegisterSessionRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.POST("/login", hb.Auth.Login)
		api.POST("/register", hb.Auth.Register)
		api.POST("/logout", hb.Auth.Logout)
		api.GET("", hb.Auth.SessionInfo)
	}
}

// RegisterProblemRoutes registers the intake flow.
func RegisterProblemRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/problems")
	{
		api.POST("/analyze", hb.Intake.AnalyzeProblem)
		api.POST("/submit", hb.Intake.SubmitProblem)
	}
}

// RegisterMatchingRoutes registers provider search, filters and sorting.
func RegisterMatchingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/matching")
	{
		api.POST("/search", hb.Matching.FindProviders)
		api.POST("/replay", hb.Matching.ReplaySearch)
		api.POST("/filters", hb.Matching.ApplyFilters)
		api.POST("/sort", hb.Matching.ApplySort)
		api.GET("/providers", hb.Matching.GetProviders)
	}
}

// RegisterChatRoutes registers the conversation endpoints.
func RegisterChatRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.GET("/:sessionID", hb.Chat.GetMessages)
		api.POST("/send", hb.Chat.SendMessage)
	}
}

// RegisterRatingRoutes registers review submission.
func RegisterRatingRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/ratings")
	{
		api.POST("", hb.Rating.SubmitRating)
		api.POST("/preview", hb.Rating.PreviewRating)
	}
}

// RegisterSignupRoutes registers the onboarding wizard endpoints.
func RegisterSignupRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/signup")
	{
		api.POST("/start", hb.Signup.StartSignup)
		api.GET("/state", hb.Signup.GetState)
		api.PUT("/fields", hb.Signup.UpdateFields)
		api.POST("/next", hb.Signup.NextStep)
		api.POST("/prev", hb.Signup.PrevStep)
		api.POST("/categories/toggle", hb.Signup.ToggleCategory)
		api.POST("/services/toggle", hb.Signup.ToggleService)
		api.POST("/submit", hb.Signup.SubmitApplication)
		api.POST("/reset", hb.Signup.ResetSignup)
	}
}

// RegisterDashboardRoutes registers the polled snapshots and their actions.
func RegisterDashboardRoutes(r *gin.Engine, hb *HandlerBundle) {
	api := r.Group("/api/dashboard")
	{
		api.GET("/client", hb.Dashboard.ClientSnapshot)
		api.POST("/client/requests/:id/cancel", hb.Dashboard.CancelRequest)
		api.POST("/client/conversations", hb.Dashboard.StartConversation)

		api.GET("/provider", hb.Dashboard.ProviderSnapshot)
		api.POST("/provider/requests/:id/accept", hb.Dashboard.AcceptRequest)
		api.POST("/provider/requests/:id/decline", hb.Dashboard.DeclineRequest)
		api.GET("/provider/profile", hb.Dashboard.GetProfile)
		api.PUT("/provider/profile", hb.Dashboard.UpdateProfile)
		api.GET("/provider/services", hb.Dashboard.GetServices)
		api.PUT("/provider/services", hb.Dashboard.UpdateServices)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm FundiLink"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterCatalogRoutes(r)
	RegisterSessionRoutes(r, hb)
	RegisterProblemRoutes(r, hb)
	RegisterMatchingRoutes(r, hb)
	RegisterChatRoutes(r, hb)
	RegisterRatingRoutes(r, hb)
	RegisterSignupRoutes(r, hb)
	RegisterDashboardRoutes(r, hb)
	RegisterHealthRoute(r)
}

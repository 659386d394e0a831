// Package router provides HTTP routing configuration for the application.
package router

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"sentsei/internal/handler"
	"sentsei/internal/i18n"
	"sentsei/internal/middleware"
	"sentsei/internal/store"
	"sentsei/internal/types"

	"github.com/gin-contrib/gzip"
	"github.com/gin-contrib/static"

	"github.com/gin-gonic/gin"
)

func NewRouter(
	serverHandler *handler.Server,
	configManager types.ConfigManager,
	storage store.Store,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Register global middleware
	router.Use(middleware.Recovery())
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.Logger(configManager.GetLogConfig()))
	router.Use(middleware.CORS(configManager.GetCORSConfig()))
	router.Use(middleware.RateLimiter(configManager.GetRateLimitConfig(), storage))
	router.Use(middleware.SecurityHeaders())
	router.Use(middleware.RequestBodySizeLimit(0))
	startTime := time.Now()
	router.Use(func(c *gin.Context) {
		c.Set("serverStartTime", startTime)
		c.Next()
	})

	// Register routes
	registerSystemRoutes(router, serverHandler)
	registerAPIRoutes(router, serverHandler, configManager)
	registerFrontendRoutes(router, configManager)

	return router
}

// registerSystemRoutes registers system-level routes
func registerSystemRoutes(router *gin.Engine, serverHandler *handler.Server) {
	router.GET("/health", serverHandler.Health)
}

// registerAPIRoutes registers API routes
func registerAPIRoutes(
	router *gin.Engine,
	serverHandler *handler.Server,
	configManager types.ConfigManager,
) {
	api := router.Group("/api")
	api.Use(i18n.Middleware())
	api.Use(gzip.Gzip(gzip.DefaultCompression))

	authConfig := configManager.GetAuthConfig()

	// Public routes
	registerPublicAPIRoutes(api, serverHandler)

	// Protected routes
	protectedAPI := api.Group("")
	protectedAPI.Use(middleware.Auth(authConfig))
	registerProtectedAPIRoutes(protectedAPI, serverHandler)
}

// registerPublicAPIRoutes registers the core learning endpoints
func registerPublicAPIRoutes(api *gin.RouterGroup, serverHandler *handler.Server) {
	api.POST("/learn", serverHandler.Learn)
	api.POST("/learn-multi", serverHandler.LearnMulti)
	api.POST("/word-detail", serverHandler.WordDetail)
	api.GET("/languages", serverHandler.Languages)
	api.GET("/surprise", serverHandler.Surprise)

	api.GET("/quiz", serverHandler.NewQuiz)
	api.POST("/quiz", serverHandler.NewQuizFromHistory)
	api.POST("/quiz-check", serverHandler.CheckQuiz)

	api.POST("/export-anki", serverHandler.ExportAnki)
	api.POST("/feedback", serverHandler.CreateFeedback)
}

// registerProtectedAPIRoutes registers routes guarded by the access password
func registerProtectedAPIRoutes(api *gin.RouterGroup, serverHandler *handler.Server) {
	api.GET("/feedback-list", serverHandler.ListFeedback)
	api.DELETE("/feedback/:id", serverHandler.DeleteFeedback)

	srs := api.Group("/srs")
	{
		srs.GET("/deck", serverHandler.GetSRSDeck)
		srs.PUT("/deck", serverHandler.PutSRSDeck)
		srs.POST("/item", serverHandler.AddSRSItem)
		srs.DELETE("/item", serverHandler.RemoveSRSItem)
		srs.POST("/review", serverHandler.ReviewSRSItem)
	}
}

// registerFrontendRoutes serves the optional static frontend build. With no
// configured directory the server is API-only.
func registerFrontendRoutes(router *gin.Engine, configManager types.ConfigManager) {
	staticDir := configManager.GetEffectiveServerConfig().StaticDir
	if staticDir == "" {
		return
	}

	// Use static resource cache middleware
	router.Use(middleware.StaticCache())
	router.Use(static.Serve("/", static.LocalFile(staticDir, false)))

	indexPage := filepath.Join(staticDir, "index.html")
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.RequestURI, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not Found"})
			return
		}
		// HTML pages are not cached to ensure updates take effect immediately
		c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
		c.Header("Pragma", "no-cache")
		c.Header("Expires", "0")
		c.File(indexPage)
	})
}

// Package handler contains the gin HTTP handlers for the API.
package handler

import (
	"context"
	"net/http"
	"time"

	"sentsei/internal/services"
	"sentsei/internal/types"

	"github.com/gin-gonic/gin"
	"go.uber.org/dig"
	"gorm.io/gorm"
)

// Server bundles every handler dependency behind one receiver.
type Server struct {
	DB                 *gorm.DB
	ConfigManager      types.ConfigManager
	TranslationService *services.TranslationService
	WordDetailService  *services.WordDetailService
	QuizService        *services.QuizService
	SurpriseService    *services.SurpriseService
	SRSService         *services.SRSService
	FeedbackService    *services.FeedbackService
	AnkiService        *services.AnkiService
}

// ServerParams defines the dependencies for the Server.
type ServerParams struct {
	dig.In
	DB                 *gorm.DB
	ConfigManager      types.ConfigManager
	TranslationService *services.TranslationService
	WordDetailService  *services.WordDetailService
	QuizService        *services.QuizService
	SurpriseService    *services.SurpriseService
	SRSService         *services.SRSService
	FeedbackService    *services.FeedbackService
	AnkiService        *services.AnkiService
}

// NewServer creates a new Server instance.
func NewServer(params ServerParams) *Server {
	return &Server{
		DB:                 params.DB,
		ConfigManager:      params.ConfigManager,
		TranslationService: params.TranslationService,
		WordDetailService:  params.WordDetailService,
		QuizService:        params.QuizService,
		SurpriseService:    params.SurpriseService,
		SRSService:         params.SRSService,
		FeedbackService:    params.FeedbackService,
		AnkiService:        params.AnkiService,
	}
}

// Health handles the health check endpoint.
func (s *Server) Health(c *gin.Context) {
	status := "healthy"
	dbStatus := "ok"
	httpStatus := http.StatusOK

	if s.DB != nil {
		if sqlDB, err := s.DB.DB(); err != nil {
			status = "unhealthy"
			dbStatus = "unavailable"
			httpStatus = http.StatusServiceUnavailable
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := sqlDB.PingContext(ctx); err != nil {
				status = "unhealthy"
				dbStatus = "unavailable"
				httpStatus = http.StatusServiceUnavailable
			}
		}
	}

	payload := gin.H{
		"status":    status,
		"database":  dbStatus,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if startTime, exists := c.Get("serverStartTime"); exists {
		if st, ok := startTime.(time.Time); ok {
			payload["uptime"] = time.Since(st).String()
		}
	}

	c.JSON(httpStatus, payload)
}

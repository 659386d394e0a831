package handler

import (
	"strconv"

	"sentsei/internal/models"
	"sentsei/internal/response"

	app_errors "sentsei/internal/errors"

	"github.com/gin-gonic/gin"
)

// CreateFeedback records a user feedback entry. When the entry names a
// sentence and translation pair, that translation is also flagged as bad.
// POST /api/feedback
func (s *Server) CreateFeedback(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	entry, apiErr := s.FeedbackService.Create(&req)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.SuccessI18n(c, "feedback.received", entry)
}

// ListFeedback returns stored feedback entries, newest first.
// GET /api/feedback-list
func (s *Server) ListFeedback(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 0 {
		response.Error(c, app_errors.NewValidationError("Invalid limit parameter"))
		return
	}
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		response.Error(c, app_errors.NewValidationError("Invalid offset parameter"))
		return
	}

	list, apiErr := s.FeedbackService.List(limit, offset)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, list)
}

// DeleteFeedback removes one feedback entry by id.
// DELETE /api/feedback/:id
func (s *Server) DeleteFeedback(c *gin.Context) {
	id := c.Param("id")
	if apiErr := s.FeedbackService.Delete(id); apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

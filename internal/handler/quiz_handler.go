package handler

import (
	"sentsei/internal/models"
	"sentsei/internal/response"
	"sentsei/internal/services"

	app_errors "sentsei/internal/errors"

	"github.com/gin-gonic/gin"
)

// NewQuiz generates a quiz from the curated sentence pool.
// GET /api/quiz
func (s *Server) NewQuiz(c *gin.Context) {
	lang := models.LanguageCode(c.DefaultQuery("lang", "ja"))
	gender := c.Query("gender")
	formality := c.Query("formality")

	quiz, apiErr := s.QuizService.NewFromCurated(c.Request.Context(), lang, gender, formality)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, quiz)
}

// NewQuizFromHistory generates a quiz from the caller's learning history.
// Falls back to the curated pool when the posted history is empty.
// POST /api/quiz
func (s *Server) NewQuizFromHistory(c *gin.Context) {
	var req models.QuizFromHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	lang := models.LanguageCode(c.DefaultQuery("lang", "ja"))

	var quiz *services.Quiz
	var apiErr *app_errors.APIError
	if len(req.History) > 0 {
		quiz, apiErr = s.QuizService.NewFromHistory(lang, req.History)
	} else {
		quiz, apiErr = s.QuizService.NewFromCurated(c.Request.Context(), lang, "", "")
	}
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, quiz)
}

// CheckQuiz grades a submitted quiz answer.
// POST /api/quiz-check
func (s *Server) CheckQuiz(c *gin.Context) {
	var req models.QuizCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	grade, apiErr := s.QuizService.Check(c.Request.Context(), &req)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.SuccessI18n(c, "quiz.graded", grade)
}

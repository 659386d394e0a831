package handler

import (
	"net/http"

	"sentsei/internal/models"
	"sentsei/internal/response"
	"sentsei/internal/services"

	app_errors "sentsei/internal/errors"

	"github.com/gin-gonic/gin"
)

// Learn translates one sentence and returns the repaired payload.
// POST /api/learn
func (s *Server) Learn(c *gin.Context) {
	var req models.SentenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	raw, apiErr := s.TranslationService.Translate(c.Request.Context(), &req)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, raw)
}

// LearnMulti splits a paragraph into sentences and translates each one.
// POST /api/learn-multi
func (s *Server) LearnMulti(c *gin.Context) {
	var req models.MultiSentenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	result, apiErr := s.TranslationService.TranslateMulti(c.Request.Context(), &req)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, result)
}

// WordDetail returns enriched detail for one breakdown word.
// POST /api/word-detail
func (s *Server) WordDetail(c *gin.Context) {
	var req models.WordDetailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	detail, apiErr := s.WordDetailService.Detail(c.Request.Context(), &req)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, detail)
}

// Languages lists the supported target languages.
// GET /api/languages
func (s *Server) Languages(c *gin.Context) {
	response.Success(c, models.SupportedLanguages)
}

// Surprise hands out a random practice sentence.
// GET /api/surprise
func (s *Server) Surprise(c *gin.Context) {
	lang := models.LanguageCode(c.Query("lang"))
	inputLang := c.DefaultQuery("input_lang", "en")

	surprise, apiErr := s.SurpriseService.Pick(lang, inputLang)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, surprise)
}

// ExportAnki renders the posted flashcards as a TSV download.
// POST /api/export-anki
func (s *Server) ExportAnki(c *gin.Context) {
	var entries []models.AnkiExportEntry
	if err := c.ShouldBindJSON(&entries); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	content := s.AnkiService.BuildTSV(entries)
	c.Header("Content-Disposition", `attachment; filename="`+services.AnkiFilename+`"`)
	c.Data(http.StatusOK, services.AnkiContentType, []byte(content))
}

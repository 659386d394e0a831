package handler

import (
	"sentsei/internal/models"
	"sentsei/internal/response"

	app_errors "sentsei/internal/errors"

	"github.com/gin-gonic/gin"
)

// srsUserID resolves the deck owner from the X-User-ID header. A single-user
// deployment can omit the header entirely.
func srsUserID(c *gin.Context) string {
	if id := c.GetHeader("X-User-ID"); id != "" {
		return id
	}
	return "default"
}

// GetSRSDeck returns the caller's full spaced-repetition deck.
// GET /api/srs/deck
func (s *Server) GetSRSDeck(c *gin.Context) {
	deck, apiErr := s.SRSService.GetDeck(srsUserID(c))
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, deck)
}

// PutSRSDeck replaces the caller's deck wholesale.
// PUT /api/srs/deck
func (s *Server) PutSRSDeck(c *gin.Context) {
	var deck []models.SRSItem
	if err := c.ShouldBindJSON(&deck); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	result, apiErr := s.SRSService.PutDeck(srsUserID(c), deck)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.SuccessI18n(c, "srs.saved", result)
}

// AddSRSItem upserts one card into the caller's deck, merging scheduling
// fields when the sentence+lang pair already exists.
// POST /api/srs/item
func (s *Server) AddSRSItem(c *gin.Context) {
	var item models.SRSItem
	if err := c.ShouldBindJSON(&item); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}
	if item.Sentence == "" || item.Lang == "" {
		response.Error(c, app_errors.NewValidationError("sentence and lang are required"))
		return
	}

	result, apiErr := s.SRSService.AddItem(srsUserID(c), &item)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, result)
}

// RemoveSRSItem deletes one card identified by sentence+lang query params.
// DELETE /api/srs/item
func (s *Server) RemoveSRSItem(c *gin.Context) {
	sentence := c.Query("sentence")
	lang := c.Query("lang")
	if sentence == "" || lang == "" {
		response.Error(c, app_errors.NewValidationError("sentence and lang are required"))
		return
	}

	result, apiErr := s.SRSService.RemoveItem(srsUserID(c), sentence, lang)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, result)
}

// ReviewSRSItem persists updated scheduling fields after a review.
// POST /api/srs/review
func (s *Server) ReviewSRSItem(c *gin.Context) {
	var req models.SRSReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, app_errors.NewAPIError(app_errors.ErrInvalidJSON, err.Error()))
		return
	}

	result, apiErr := s.SRSService.ReviewItem(srsUserID(c), &req)
	if apiErr != nil {
		response.Error(c, apiErr)
		return
	}
	response.Success(c, result)
}

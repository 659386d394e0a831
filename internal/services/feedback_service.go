package services

import (
	"strings"
	"time"

	"sentsei/internal/models"

	apperrors "sentsei/internal/errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const maxFeedbackLength = 1000

// FeedbackService stores user feedback and tracks translations reported as
// low quality.
type FeedbackService struct {
	db          *gorm.DB
	translation *TranslationService
}

// NewFeedbackService creates a FeedbackService.
func NewFeedbackService(db *gorm.DB, translation *TranslationService) *FeedbackService {
	return &FeedbackService{db: db, translation: translation}
}

// FeedbackList is a page of feedback entries, newest first.
type FeedbackList struct {
	Total   int64             `json:"total"`
	Entries []models.Feedback `json:"entries"`
}

// Create validates and stores one feedback entry. When the feedback names a
// concrete sentence+translation pair, that pair is also marked as low
// quality.
func (s *FeedbackService) Create(req *models.FeedbackRequest) (*models.Feedback, *apperrors.APIError) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, apperrors.NewValidationError("Feedback cannot be empty")
	}
	if len([]rune(req.Message)) > maxFeedbackLength {
		return nil, apperrors.NewValidationError("Feedback too long")
	}

	entry := models.Feedback{
		ID:             uuid.NewString(),
		Message:        message,
		Sentence:       req.Sentence,
		Translation:    req.Translation,
		TargetLanguage: req.TargetLanguage,
	}
	if err := s.db.Create(&entry).Error; err != nil {
		return nil, apperrors.ParseDBError(err)
	}

	if req.Sentence != "" && req.Translation != "" && req.TargetLanguage != "" {
		s.MarkTranslationBad(req.Sentence, req.Translation, req.TargetLanguage)
	}

	return &entry, nil
}

// List returns feedback entries newest first.
func (s *FeedbackService) List(limit, offset int) (*FeedbackList, *apperrors.APIError) {
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	var total int64
	if err := s.db.Model(&models.Feedback{}).Count(&total).Error; err != nil {
		return nil, apperrors.ParseDBError(err)
	}

	var entries []models.Feedback
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&entries).Error
	if err != nil {
		return nil, apperrors.ParseDBError(err)
	}
	if entries == nil {
		entries = []models.Feedback{}
	}
	return &FeedbackList{Total: total, Entries: entries}, nil
}

// Delete removes one feedback entry by id.
func (s *FeedbackService) Delete(id string) *apperrors.APIError {
	result := s.db.Delete(&models.Feedback{}, "id = ?", id)
	if result.Error != nil {
		return apperrors.ParseDBError(result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("Feedback entry not found")
	}
	return nil
}

// MarkTranslationBad records a low-quality report and evicts every cached
// variant of the sentence so the next request retries the model.
func (s *FeedbackService) MarkTranslationBad(sentence, translation, targetLanguage string) {
	if sentence == "" || translation == "" || targetLanguage == "" {
		return
	}

	record := models.BadTranslation{
		Hash:           badTranslationHash(sentence, translation, targetLanguage),
		Sentence:       sentence,
		Translation:    translation,
		TargetLanguage: targetLanguage,
		Count:          1,
		LastReportedAt: time.Now(),
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "hash"}},
		DoUpdates: clause.Assignments(map[string]any{
			"count":            gorm.Expr("count + 1"),
			"last_reported_at": time.Now(),
		}),
	}).Create(&record).Error
	if err != nil {
		logrus.WithError(err).Warn("bad translation record failed")
		return
	}

	if s.translation != nil {
		s.translation.EvictCached(sentence, models.LanguageCode(targetLanguage))
	}
	logrus.WithFields(logrus.Fields{
		"target_language": targetLanguage,
	}).Info("translation marked low quality and evicted from cache")
}

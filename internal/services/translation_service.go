// Package services implements the application services behind the API
// handlers: translation, word detail, quizzes, surprise sentences, spaced
// repetition, feedback, and Anki export.
package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"sentsei/internal/llm"
	"sentsei/internal/models"
	"sentsei/internal/repair"
	"sentsei/internal/store"
	"sentsei/internal/types"
	"sentsei/internal/utils"

	apperrors "sentsei/internal/errors"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
	"gorm.io/gorm"
)

const maxSentenceLength = 500

const maxMultiSentences = 10

// Substrings that mark an input as a prompt-injection attempt. Matched
// case-insensitively against the raw sentence.
var injectionPatterns = []string{
	"ignore previous", "ignore above", "disregard", "forget your instructions",
	"you are now", "new instructions", "system prompt", "override",
	"```", "---", "###", "system:", "user:", "assistant:",
}

var validGenders = map[string]bool{"neutral": true, "male": true, "female": true}

var validFormalities = map[string]bool{
	models.FormalityCasual: true,
	models.FormalityPolite: true,
	models.FormalityFormal: true,
}

// TranslationService turns a source sentence into a repaired, cached
// translation payload.
type TranslationService struct {
	store    store.Store
	db       *gorm.DB
	client   *llm.Client
	repairer *repair.Repairer
	cacheTTL time.Duration
}

// NewTranslationService creates a TranslationService.
func NewTranslationService(
	configManager types.ConfigManager,
	storage store.Store,
	db *gorm.DB,
	client *llm.Client,
	repairer *repair.Repairer,
) *TranslationService {
	cacheConfig := configManager.GetCacheConfig()
	return &TranslationService{
		store:    storage,
		db:       db,
		client:   client,
		repairer: repairer,
		cacheTTL: time.Duration(cacheConfig.TTLMinutes) * time.Minute,
	}
}

// translationInput is a validated, normalized learn request.
type translationInput struct {
	Sentence        string
	Target          models.LanguageCode
	Gender          string
	Formality       string
	SourceIsChinese bool
}

func (s *TranslationService) validate(req *models.SentenceRequest) (*translationInput, *apperrors.APIError) {
	sentence := strings.TrimSpace(req.Sentence)
	if sentence == "" {
		return nil, apperrors.NewValidationError("Sentence cannot be empty")
	}
	if len([]rune(req.Sentence)) > maxSentenceLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Input too long (max %d characters)", maxSentenceLength))
	}
	lowerInput := strings.ToLower(req.Sentence)
	for _, pattern := range injectionPatterns {
		if strings.Contains(lowerInput, pattern) {
			return nil, apperrors.NewValidationError("Invalid input")
		}
	}

	target := models.LanguageCode(req.TargetLanguage)
	if !target.IsSupported() {
		return nil, apperrors.ErrUnsupportedLanguage
	}

	gender := req.SpeakerGender
	if gender == "" {
		gender = "neutral"
	}
	if !validGenders[gender] {
		return nil, apperrors.NewValidationError("Invalid speaker gender")
	}

	formality := req.SpeakerFormality
	if formality == "" {
		formality = models.FormalityPolite
	}
	if !validFormalities[formality] {
		return nil, apperrors.NewValidationError("Invalid formality level")
	}

	return &translationInput{
		Sentence:        sentence,
		Target:          target,
		Gender:          gender,
		Formality:       formality,
		SourceIsChinese: detectChineseSource(req.InputLanguage, sentence),
	}, nil
}

// detectChineseSource resolves the source language: an explicit zh/en wins,
// anything else falls back to Han detection on the sentence itself.
func detectChineseSource(inputLanguage, sentence string) bool {
	switch inputLanguage {
	case "zh":
		return true
	case "en":
		return false
	default:
		return utils.ContainsHan(sentence)
	}
}

func cacheKey(sentence string, target models.LanguageCode, gender, formality string) string {
	raw := fmt.Sprintf("%s|%s|%s|%s", strings.ToLower(strings.TrimSpace(sentence)), target, gender, formality)
	sum := sha256.Sum256([]byte(raw))
	return "translation:" + hex.EncodeToString(sum[:])
}

func badTranslationHash(sentence, translation, targetLanguage string) string {
	raw := fmt.Sprintf("%s|%s|%s",
		strings.ToLower(strings.TrimSpace(sentence)),
		strings.ToLower(strings.TrimSpace(translation)),
		strings.ToLower(strings.TrimSpace(targetLanguage)))
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}

// Translate runs the full learn flow for one sentence: validation, cache
// lookup, model call, repair, difficulty estimation, and caching. The result
// is the payload JSON ready to hand to the client.
func (s *TranslationService) Translate(ctx context.Context, req *models.SentenceRequest) (json.RawMessage, *apperrors.APIError) {
	in, apiErr := s.validate(req)
	if apiErr != nil {
		return nil, apiErr
	}

	key := cacheKey(in.Sentence, in.Target, in.Gender, in.Formality)
	if cached, err := s.store.Get(key); err == nil {
		return attachDifficulty(cached, in.Sentence), nil
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Warn("translation cache read failed")
	}

	system, user := llm.BuildTranslationPrompt(llm.TranslationPromptInput{
		Sentence:        in.Sentence,
		Target:          in.Target,
		SourceIsChinese: in.SourceIsChinese,
		Gender:          in.Gender,
		Formality:       in.Formality,
	})
	content, err := s.client.Chat(ctx, llm.ChatRequest{
		Model:  s.client.ModelFor(in.Target),
		System: system,
		User:   user,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.ErrUpstreamTimeout
		}
		logrus.WithError(err).WithField("target", in.Target).Error("translation model call failed")
		return nil, apperrors.ErrBadGateway
	}

	payload, ok := llm.ParseTranslationPayload(content)
	if !ok {
		logrus.WithField("target", in.Target).Error("translation model returned unparseable output")
		return nil, apperrors.NewAPIError(apperrors.ErrBadGateway, "Model returned malformed output")
	}

	s.repairer.Repair(payload, repair.Input{
		Sentence:        in.Sentence,
		Target:          in.Target,
		SourceIsChinese: in.SourceIsChinese,
	})

	raw, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return nil, apperrors.ErrInternalServer
	}

	if s.shouldCache(in.Sentence, payload.Translation, string(in.Target)) {
		if err := s.store.Set(key, raw, s.cacheTTL); err != nil {
			logrus.WithError(err).Warn("translation cache write failed")
		}
	}

	return attachDifficulty(raw, in.Sentence), nil
}

// shouldCache reports whether a fresh result may be cached. A combo that was
// reported as low quality stays out of the cache so the next request retries
// the model.
func (s *TranslationService) shouldCache(sentence, translation, targetLanguage string) bool {
	if s.db == nil || translation == "" {
		return true
	}
	hash := badTranslationHash(sentence, translation, targetLanguage)
	var count int64
	if err := s.db.Model(&models.BadTranslation{}).Where("hash = ?", hash).Count(&count).Error; err != nil {
		logrus.WithError(err).Warn("bad translation lookup failed")
		return true
	}
	if count > 0 {
		logrus.WithField("target_language", targetLanguage).Info("skipping cache for translation previously marked low quality")
		return false
	}
	return true
}

// EvictCached removes every cached variant of a sentence+language combo,
// covering all gender and formality values the cache key ranges over.
func (s *TranslationService) EvictCached(sentence string, target models.LanguageCode) {
	for gender := range validGenders {
		for formality := range validFormalities {
			if err := s.store.Delete(cacheKey(sentence, target, gender, formality)); err != nil {
				logrus.WithError(err).Debug("cache eviction failed")
			}
		}
	}
}

// attachDifficulty patches the heuristic difficulty estimate into the payload
// JSON. It works on raw bytes so cached payloads keep every field they were
// stored with.
func attachDifficulty(raw []byte, sentence string) json.RawMessage {
	var breakdownDifficulties []string
	for _, d := range gjson.GetBytes(raw, "breakdown.#.difficulty").Array() {
		breakdownDifficulties = append(breakdownDifficulties, d.String())
	}
	sd := DetectSentenceDifficulty(sentence, breakdownDifficulties)
	patched, err := sjson.SetBytes(raw, "sentence_difficulty", sd)
	if err != nil {
		return raw
	}
	if withLevel, err := sjson.SetBytes(patched, "difficulty", sd.Level); err == nil {
		patched = withLevel
	}
	return patched
}

// sentenceTerminators end a sentence for paragraph splitting.
const sentenceTerminators = ".!?。！？"

// SplitSentences breaks a paragraph into sentences on terminal punctuation,
// keeping the punctuation attached to its sentence.
func SplitSentences(text string) []string {
	var sentences []string
	var current strings.Builder
	for _, r := range strings.TrimSpace(text) {
		current.WriteRune(r)
		if strings.ContainsRune(sentenceTerminators, r) {
			if s := strings.TrimSpace(current.String()); s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
		}
	}
	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

// MultiResult is the learn-multi response body.
type MultiResult struct {
	Mode    string                  `json:"mode"`
	Results []models.SentenceResult `json:"results"`
}

// TranslateMulti splits a paragraph and translates each sentence in turn.
// Per-sentence failures are recorded in the result list instead of failing
// the whole batch.
func (s *TranslationService) TranslateMulti(ctx context.Context, req *models.MultiSentenceRequest) (*MultiResult, *apperrors.APIError) {
	if strings.TrimSpace(req.Sentences) == "" {
		return nil, apperrors.NewValidationError("Sentence cannot be empty")
	}

	sentences := SplitSentences(req.Sentences)
	if len(sentences) == 0 {
		return nil, apperrors.NewValidationError("Sentence cannot be empty")
	}
	if len(sentences) > maxMultiSentences {
		sentences = sentences[:maxMultiSentences]
	}

	mode := "multi"
	if len(sentences) == 1 {
		mode = "single"
	}

	results := make([]models.SentenceResult, 0, len(sentences))
	for _, sentence := range sentences {
		single := &models.SentenceRequest{
			Sentence:         sentence,
			TargetLanguage:   req.TargetLanguage,
			InputLanguage:    req.InputLanguage,
			SpeakerGender:    req.SpeakerGender,
			SpeakerFormality: req.SpeakerFormality,
		}
		raw, apiErr := s.Translate(ctx, single)
		if apiErr != nil {
			results = append(results, models.SentenceResult{Sentence: sentence, Error: apiErr.Message})
			continue
		}
		results = append(results, models.SentenceResult{Sentence: sentence, Result: raw})
	}

	return &MultiResult{Mode: mode, Results: results}, nil
}

package services

import (
	"math/rand"

	"sentsei/internal/models"
	"sentsei/internal/store"

	apperrors "sentsei/internal/errors"

	"github.com/sirupsen/logrus"
)

// SurpriseService hands out practice prompts from the curated pools. A
// store-backed shuffle bag avoids repeating a sentence until the whole pool
// has been seen.
type SurpriseService struct {
	store store.Store
}

// NewSurpriseService creates a SurpriseService.
func NewSurpriseService(storage store.Store) *SurpriseService {
	return &SurpriseService{store: storage}
}

// Surprise is one practice prompt.
type Surprise struct {
	Language   string `json:"language"`
	Sentence   string `json:"sentence"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
}

// Pick returns a random practice sentence matching the user's input language.
func (s *SurpriseService) Pick(lang models.LanguageCode, inputLang string) (*Surprise, *apperrors.APIError) {
	if !lang.IsSupported() {
		return nil, apperrors.ErrUnsupportedLanguage
	}

	pool := models.SurpriseSentencesEN
	bagKey := "surprise:en"
	if inputLang == "zh" {
		pool = models.SurpriseSentencesZH
		bagKey = "surprise:zh"
	}

	sentence := s.drawFromBag(bagKey, pool)
	picked := pool[rand.Intn(len(pool))]
	if sentence != "" {
		for _, candidate := range pool {
			if candidate.Sentence == sentence {
				picked = candidate
				break
			}
		}
	}

	return &Surprise{
		Language:   string(lang),
		Sentence:   picked.Sentence,
		Difficulty: picked.Difficulty,
		Category:   picked.Category,
	}, nil
}

// drawFromBag pops one sentence from the shuffle bag, refilling it from the
// pool when empty. Store failures degrade to plain random choice.
func (s *SurpriseService) drawFromBag(key string, pool []models.SurpriseSentence) string {
	popped, err := s.store.SPopN(key, 1)
	if err != nil {
		logrus.WithError(err).Debug("surprise bag read failed")
		return ""
	}
	if len(popped) > 0 {
		return popped[0]
	}

	members := make([]any, 0, len(pool))
	for _, candidate := range pool {
		members = append(members, candidate.Sentence)
	}
	if err := s.store.SAdd(key, members...); err != nil {
		logrus.WithError(err).Debug("surprise bag refill failed")
		return ""
	}
	popped, err = s.store.SPopN(key, 1)
	if err != nil || len(popped) == 0 {
		return ""
	}
	return popped[0]
}

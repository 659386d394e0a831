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

	"sentsei/internal/dictionary"
	"sentsei/internal/llm"
	"sentsei/internal/models"
	"sentsei/internal/romanize"
	"sentsei/internal/store"
	"sentsei/internal/utils"

	apperrors "sentsei/internal/errors"

	"github.com/sirupsen/logrus"
)

// Word details change rarely, so they cache much longer than translations.
const wordDetailCacheTTL = 72 * time.Hour

// WordDetailService answers word-detail lookups, dictionary-first with an LLM
// fallback.
type WordDetailService struct {
	store  store.Store
	client *llm.Client
	dict   *dictionary.CEDICT
}

// NewWordDetailService creates a WordDetailService.
func NewWordDetailService(storage store.Store, client *llm.Client, dict *dictionary.CEDICT) *WordDetailService {
	return &WordDetailService{store: storage, client: client, dict: dict}
}

func wordDetailCacheKey(word string, target models.LanguageCode, meaning string) string {
	raw := fmt.Sprintf("%s|%s|%s", strings.ToLower(strings.TrimSpace(word)), target, strings.ToLower(strings.TrimSpace(meaning)))
	sum := sha256.Sum256([]byte(raw))
	return "worddetail:" + hex.EncodeToString(sum[:])
}

// Detail resolves details for one word. Preloaded dictionaries answer first;
// only words they cannot cover go to the model. A model parse failure
// degrades to an empty detail rather than an error.
func (s *WordDetailService) Detail(ctx context.Context, req *models.WordDetailRequest) (*models.WordDetail, *apperrors.APIError) {
	if len([]rune(req.Word)) > maxSentenceLength || len([]rune(req.Meaning)) > maxSentenceLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Input too long (max %d characters)", maxSentenceLength))
	}
	if len([]rune(req.SentenceContext)) > maxSentenceLength {
		return nil, apperrors.NewValidationError(fmt.Sprintf("Input too long (max %d characters)", maxSentenceLength))
	}
	target := models.LanguageCode(req.TargetLanguage)
	if !target.IsSupported() {
		return nil, apperrors.ErrUnsupportedLanguage
	}

	key := wordDetailCacheKey(req.Word, target, req.Meaning)
	if cached, err := s.store.Get(key); err == nil {
		var detail models.WordDetail
		if json.Unmarshal(cached, &detail) == nil {
			return &detail, nil
		}
	} else if !errors.Is(err, store.ErrNotFound) {
		logrus.WithError(err).Warn("word detail cache read failed")
	}

	if detail := s.dictionaryDetail(req.Word, req.Meaning, target, req.SentenceContext); detail != nil {
		s.cacheDetail(key, detail)
		return detail, nil
	}

	meaningIsChinese := utils.ContainsHan(req.Meaning)
	system, user := llm.BuildWordDetailPrompt(req.Word, req.Meaning, req.SentenceContext, target, meaningIsChinese)
	content, err := s.client.Chat(ctx, llm.ChatRequest{
		Model:       s.client.ModelFor(target),
		System:      system,
		User:        user,
		Temperature: 0.3,
		MaxTokens:   512,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.ErrUpstreamTimeout
		}
		logrus.WithError(err).WithField("word", req.Word).Error("word detail model call failed")
		return nil, apperrors.ErrBadGateway
	}

	detail := llm.ParseWordDetail(content)
	s.cacheDetail(key, detail)
	return detail, nil
}

func (s *WordDetailService) cacheDetail(key string, detail *models.WordDetail) {
	raw, err := json.Marshal(detail)
	if err != nil {
		return
	}
	if err := s.store.Set(key, raw, wordDetailCacheTTL); err != nil {
		logrus.WithError(err).Warn("word detail cache write failed")
	}
}

// dictionaryDetail builds a detail from preloaded data. A nil return means
// the dictionaries have nothing for this word and the model should answer.
func (s *WordDetailService) dictionaryDetail(word, meaning string, target models.LanguageCode, sentenceContext string) *models.WordDetail {
	cleanWord := strings.TrimSpace(word)
	cleanMeaning := strings.TrimSpace(meaning)
	if cleanWord == "" {
		return nil
	}

	switch target {
	case models.LangChinese:
		if s.dict == nil {
			return nil
		}
		entry, ok := s.dict.Lookup(cleanWord)
		if !ok {
			return nil
		}
		primaryMeaning := cleanMeaning
		if primaryMeaning == "" {
			primaryMeaning = s.dict.Gloss(cleanWord)
		}
		displayWord := entry.Traditional
		if displayWord == "" {
			displayWord = cleanWord
		}
		pronunciation := entry.Pinyin
		if pronunciation == "" {
			pronunciation = romanize.Chinese(displayWord)
		}
		related := []models.RelatedWord{}
		if entry.Traditional != "" && entry.Simplified != "" && entry.Traditional != entry.Simplified {
			related = append(related,
				models.RelatedWord{Word: entry.Traditional, Meaning: "traditional"},
				models.RelatedWord{Word: entry.Simplified, Meaning: "simplified"},
			)
		}
		return &models.WordDetail{
			Meaning:          primaryMeaning,
			Pronunciation:    pronunciation,
			Definitions:      entry.Definitions,
			Examples:         buildWordExamples(displayWord, target, primaryMeaning, sentenceContext),
			Conjugations:     []models.Conjugation{},
			Related:          related,
			Source:           "dictionary",
			DictionarySource: "cedict",
		}

	case models.LangJapanese:
		pronunciation := romanize.Japanese(cleanWord)
		if pronunciation == "" {
			return nil
		}
		return deterministicDetail(cleanWord, cleanMeaning, pronunciation, target, sentenceContext, "mecab")

	case models.LangHebrew:
		pronunciation := romanize.HebrewDictLookup(cleanWord)
		if pronunciation == "" {
			return nil
		}
		return deterministicDetail(cleanWord, cleanMeaning, pronunciation, target, sentenceContext, "hebrew_builtin")

	default:
		pronunciation, ok := romanize.Romanize(cleanWord, target)
		if !ok {
			return nil
		}
		return deterministicDetail(cleanWord, cleanMeaning, pronunciation, target, sentenceContext, "deterministic")
	}
}

func deterministicDetail(word, meaning, pronunciation string, target models.LanguageCode, sentenceContext, dictionarySource string) *models.WordDetail {
	return &models.WordDetail{
		Meaning:          meaning,
		Pronunciation:    pronunciation,
		Examples:         buildWordExamples(word, target, meaning, sentenceContext),
		Conjugations:     []models.Conjugation{},
		Related:          []models.RelatedWord{},
		Source:           "dictionary",
		DictionarySource: dictionarySource,
	}
}

// buildWordExamples returns up to two examples: the sentence the word was
// seen in, when available, and the bare word itself.
func buildWordExamples(word string, target models.LanguageCode, meaning, sentenceContext string) []models.WordExample {
	examples := []models.WordExample{}
	context := strings.TrimSpace(sentenceContext)
	if context != "" && word != "" && strings.Contains(context, word) {
		pron, _ := romanize.Romanize(context, target)
		examples = append(examples, models.WordExample{
			Sentence:      context,
			Pronunciation: pron,
			Meaning:       meaning,
		})
	}
	pron, _ := romanize.Romanize(word, target)
	examples = append(examples, models.WordExample{
		Sentence:      word,
		Pronunciation: pron,
		Meaning:       meaning,
	})
	if len(examples) > 2 {
		examples = examples[:2]
	}
	return examples
}

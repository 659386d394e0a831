package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"sentsei/internal/llm"
	"sentsei/internal/models"
	"sentsei/internal/romanize"
	"sentsei/internal/store"
	"sentsei/internal/utils"

	apperrors "sentsei/internal/errors"

	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"
)

// Open quizzes expire after an hour; an expired quiz grades as not found.
const quizAnswerTTL = time.Hour

// QuizService hands out practice quizzes and grades learner answers.
type QuizService struct {
	store  store.Store
	client *llm.Client
}

// NewQuizService creates a QuizService.
func NewQuizService(storage store.Store, client *llm.Client) *QuizService {
	return &QuizService{store: storage, client: client}
}

// Quiz is one pending quiz handed to a learner.
type Quiz struct {
	QuizID        string `json:"quiz_id"`
	Sentence      string `json:"sentence"`
	Pronunciation string `json:"pronunciation,omitempty"`
	Source        string `json:"source,omitempty"`
	Language      string `json:"language"`
	Hint          string `json:"hint"`
}

// QuizGrade is the outcome of grading one answer.
type QuizGrade struct {
	Correct       bool   `json:"correct"`
	Score         string `json:"score"`
	CorrectAnswer string `json:"correct_answer"`
	Feedback      string `json:"feedback"`
}

// quizAnswer is the stored reference answer a grade compares against.
type quizAnswer struct {
	Sentence string `json:"sentence"`
	Language string `json:"language"`
	Source   string `json:"source,omitempty"`
	AnswerEN string `json:"answer_en"`
	AnswerZH string `json:"answer_zh"`
}

func newQuizID(lang models.LanguageCode, sentence string) string {
	raw := fmt.Sprintf("%s|%s|%d|%f", lang, sentence, time.Now().UnixNano(), rand.Float64())
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])[:20]
}

// translationHint returns the opening of the reference answer: its first
// word, or the first two characters for Chinese text.
func translationHint(text string) string {
	cleaned := strings.Trim(strings.TrimSpace(text), "\"'“”‘’")
	if cleaned == "" {
		return ""
	}
	first := strings.Fields(cleaned)[0]
	first = utils.TrimWordPunct(first)
	runes := []rune(first)
	if len(runes) == 0 {
		runes = []rune(cleaned)
		if len(runes) > 2 {
			runes = runes[:2]
		}
		first = string(runes)
		runes = []rune(first)
	}
	if utils.ContainsHan(first) && len(runes) > 2 {
		first = string(runes[:2])
	}
	return first
}

// NewFromCurated picks a curated sentence for lang, asks the model for both
// reference meanings, and stores them for later grading.
func (s *QuizService) NewFromCurated(ctx context.Context, lang models.LanguageCode, gender, formality string) (*Quiz, *apperrors.APIError) {
	if !lang.IsSupported() {
		return nil, apperrors.ErrUnsupportedLanguage
	}
	pool := models.CuratedSentences[lang]
	if len(pool) == 0 {
		return nil, apperrors.NewNotFoundError("No curated sentences found for this language")
	}
	if gender == "" {
		gender = "neutral"
	}
	if formality == "" {
		formality = models.FormalityPolite
	}

	picked := pool[rand.Intn(len(pool))]
	system, user := llm.BuildQuizPrompt(picked.Sentence, lang, gender, formality)
	content, err := s.client.Chat(ctx, llm.ChatRequest{
		Model:       s.client.ModelFor(lang),
		System:      system,
		User:        user,
		Temperature: 0.2,
		MaxTokens:   256,
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, apperrors.ErrUpstreamTimeout
		}
		logrus.WithError(err).WithField("language", lang).Error("quiz generation failed")
		return nil, apperrors.ErrBadGateway
	}

	raw, _ := llm.ExtractJSONObject(content)
	translationEN := strings.TrimSpace(gjson.Get(raw, "translation_en").String())
	translationZH := strings.TrimSpace(gjson.Get(raw, "translation_zh").String())
	if translationEN == "" && translationZH == "" {
		return nil, apperrors.NewAPIError(apperrors.ErrBadGateway, "Failed to generate quiz answer")
	}
	if translationEN == "" {
		translationEN = translationZH
	}
	if translationZH == "" {
		translationZH = translationEN
	}

	quizID := newQuizID(lang, picked.Sentence)
	answer := quizAnswer{
		Sentence: picked.Sentence,
		Language: string(lang),
		Source:   picked.Source,
		AnswerEN: translationEN,
		AnswerZH: translationZH,
	}
	if apiErr := s.storeAnswer(quizID, &answer); apiErr != nil {
		return nil, apiErr
	}

	pronunciation, _ := romanize.Romanize(picked.Sentence, lang)
	return &Quiz{
		QuizID:        quizID,
		Sentence:      picked.Sentence,
		Pronunciation: pronunciation,
		Source:        picked.Source,
		Language:      string(lang),
		Hint:          translationHint(translationEN),
	}, nil
}

// NewFromHistory builds a reverse quiz from the learner's own history: they
// see a past translation and must recall the source sentence.
func (s *QuizService) NewFromHistory(lang models.LanguageCode, history []models.QuizHistoryItem) (*Quiz, *apperrors.APIError) {
	if !lang.IsSupported() {
		return nil, apperrors.ErrUnsupportedLanguage
	}
	if len(history) == 0 {
		return nil, apperrors.NewValidationError("History is empty")
	}

	picked := history[rand.Intn(len(history))]
	quizID := newQuizID(lang, picked.Translation)
	answer := quizAnswer{
		Sentence: picked.Translation,
		Language: string(lang),
		Source:   "Your history",
		AnswerEN: picked.Sentence,
		AnswerZH: picked.Sentence,
	}
	if apiErr := s.storeAnswer(quizID, &answer); apiErr != nil {
		return nil, apiErr
	}

	hint := picked.Sentence
	if runes := []rune(hint); len(runes) > 3 {
		hint = string(runes[:3]) + "..."
	}
	return &Quiz{
		QuizID:        quizID,
		Sentence:      picked.Translation,
		Pronunciation: picked.Pronunciation,
		Source:        "Your history",
		Language:      string(lang),
		Hint:          hint,
	}, nil
}

func (s *QuizService) storeAnswer(quizID string, answer *quizAnswer) *apperrors.APIError {
	raw, err := json.Marshal(answer)
	if err != nil {
		return apperrors.ErrInternalServer
	}
	if err := s.store.Set("quiz:"+quizID, raw, quizAnswerTTL); err != nil {
		logrus.WithError(err).Error("quiz answer store failed")
		return apperrors.ErrInternalServer
	}
	return nil
}

// Check grades a learner answer against the stored reference, through the
// model's semantic-equivalence rubric.
func (s *QuizService) Check(ctx context.Context, req *models.QuizCheckRequest) (*QuizGrade, *apperrors.APIError) {
	answer := strings.TrimSpace(req.Answer)
	if answer == "" {
		return nil, apperrors.NewValidationError("Answer is required")
	}

	raw, err := s.store.Get("quiz:" + req.QuizID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("Quiz not found or expired")
		}
		logrus.WithError(err).Error("quiz answer lookup failed")
		return nil, apperrors.ErrInternalServer
	}
	var quiz quizAnswer
	if err := json.Unmarshal(raw, &quiz); err != nil {
		return nil, apperrors.ErrInternalServer
	}
	if req.TargetLanguage != quiz.Language {
		return nil, apperrors.NewValidationError("Quiz language mismatch")
	}

	lang := models.LanguageCode(quiz.Language)
	system, user := llm.BuildQuizGradePrompt(quiz.Sentence, quiz.AnswerEN, quiz.AnswerZH, answer, lang)
	content, chatErr := s.client.Chat(ctx, llm.ChatRequest{
		Model:       s.client.ModelFor(lang),
		System:      system,
		User:        user,
		Temperature: 0.1,
		MaxTokens:   196,
	})
	if chatErr != nil {
		if errors.Is(chatErr, context.DeadlineExceeded) {
			return nil, apperrors.ErrUpstreamTimeout
		}
		logrus.WithError(chatErr).Error("quiz grading failed")
		return nil, apperrors.ErrBadGateway
	}

	parsed, _ := llm.ExtractJSONObject(content)
	score := strings.ToLower(strings.TrimSpace(gjson.Get(parsed, "score").String()))
	switch score {
	case "perfect", "good", "partial", "wrong":
	default:
		score = "wrong"
	}
	feedback := strings.TrimSpace(gjson.Get(parsed, "feedback").String())
	if feedback == "" {
		feedback = "Meaning does not match closely enough."
	}

	answerEN := strings.TrimSpace(quiz.AnswerEN)
	answerZH := strings.TrimSpace(quiz.AnswerZH)
	correctAnswer := answerEN
	if answerEN != "" && answerZH != "" && answerZH != answerEN {
		correctAnswer = answerEN + " / " + answerZH
	} else if correctAnswer == "" {
		correctAnswer = answerZH
	}

	return &QuizGrade{
		Correct:       score == "perfect" || score == "good",
		Score:         score,
		CorrectAnswer: correctAnswer,
		Feedback:      feedback,
	}, nil
}

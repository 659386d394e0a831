package models

import "encoding/json"

// SentenceRequest is the /api/learn request body.
type SentenceRequest struct {
	Sentence         string `json:"sentence" binding:"required"`
	TargetLanguage   string `json:"target_language" binding:"required"`
	InputLanguage    string `json:"input_language"`
	SpeakerGender    string `json:"speaker_gender"`
	SpeakerFormality string `json:"speaker_formality"`
}

// MultiSentenceRequest is the /api/learn-multi request body: a raw paragraph
// that gets split into sentences server-side.
type MultiSentenceRequest struct {
	Sentences        string `json:"sentences" binding:"required"`
	TargetLanguage   string `json:"target_language" binding:"required"`
	InputLanguage    string `json:"input_language"`
	SpeakerGender    string `json:"speaker_gender"`
	SpeakerFormality string `json:"speaker_formality"`
}

// SentenceResult pairs one input sentence with its outcome in a multi run.
type SentenceResult struct {
	Sentence string          `json:"sentence"`
	Result   json.RawMessage `json:"result,omitempty"`
	Error    string          `json:"error,omitempty"`
}

// WordDetailRequest is the /api/word-detail request body.
type WordDetailRequest struct {
	Word            string `json:"word" binding:"required"`
	Meaning         string `json:"meaning"`
	TargetLanguage  string `json:"target_language" binding:"required"`
	SentenceContext string `json:"sentence_context"`
}

// QuizCheckRequest is the /api/quiz/check request body.
type QuizCheckRequest struct {
	QuizID         string `json:"quiz_id" binding:"required"`
	Answer         string `json:"answer" binding:"required"`
	TargetLanguage string `json:"target_language"`
}

// QuizHistoryItem is one previously learned sentence a quiz can draw from.
type QuizHistoryItem struct {
	Sentence      string `json:"sentence"`
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation,omitempty"`
}

// QuizFromHistoryRequest is the POST /api/quiz request body.
type QuizFromHistoryRequest struct {
	History []QuizHistoryItem `json:"history"`
}

// AnkiExportEntry is one flashcard in an /api/export-anki request.
type AnkiExportEntry struct {
	Sentence      string `json:"sentence"`
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation"`
	Target        string `json:"target"`
	Lang          string `json:"lang"`
	Timestamp     string `json:"timestamp"`
}

// FeedbackRequest is the /api/feedback request body.
type FeedbackRequest struct {
	Message        string `json:"message" binding:"required"`
	Sentence       string `json:"sentence"`
	Translation    string `json:"translation"`
	TargetLanguage string `json:"target_language"`
}

// SRSItem is one card in a user's spaced-repetition deck.
type SRSItem struct {
	Sentence      string  `json:"sentence"`
	Translation   string  `json:"translation"`
	Lang          string  `json:"lang"`
	Pronunciation string  `json:"pronunciation,omitempty"`
	AddedAt       float64 `json:"addedAt,omitempty"`
	NextReview    float64 `json:"nextReview,omitempty"`
	Interval      float64 `json:"interval,omitempty"`
	EaseFactor    float64 `json:"easeFactor,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

// SRSReviewRequest carries the updated scheduling fields for one card.
type SRSReviewRequest struct {
	Sentence    string  `json:"sentence" binding:"required"`
	Lang        string  `json:"lang" binding:"required"`
	Interval    float64 `json:"interval"`
	EaseFactor  float64 `json:"easeFactor"`
	NextReview  float64 `json:"nextReview"`
	ReviewCount int     `json:"reviewCount"`
}

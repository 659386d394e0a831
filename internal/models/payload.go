package models

// Difficulty levels used for breakdown words and whole sentences.
const (
	DifficultyEasy   = "easy"
	DifficultyMedium = "medium"
	DifficultyHard   = "hard"
)

// Formality registers a translation can use.
const (
	FormalityCasual = "casual"
	FormalityPolite = "polite"
	FormalityFormal = "formal"
)

// WordEntry is one word of a translation breakdown. Word must appear verbatim
// in the translation (after punctuation stripping); the repair pipeline drops
// entries that violate this.
type WordEntry struct {
	Word          string `json:"word"`
	Pronunciation string `json:"pronunciation"`
	Meaning       string `json:"meaning"`
	Difficulty    string `json:"difficulty"`
	Note          string `json:"note,omitempty"`
}

// TranslationPayload is the JSON object produced by the LLM for one sentence.
// It is untrusted as delivered and owned by the repair pipeline for the
// duration of one repair call.
type TranslationPayload struct {
	Translation      string      `json:"translation"`
	Pronunciation    string      `json:"pronunciation"`
	Literal          string      `json:"literal,omitempty"`
	Breakdown        []WordEntry `json:"breakdown"`
	GrammarNotes     []string    `json:"grammar_notes"`
	CulturalNote     string      `json:"cultural_note,omitempty"`
	Formality        string      `json:"formality,omitempty"`
	Alternative      string      `json:"alternative,omitempty"`
	NativeExpression string      `json:"native_expression,omitempty"`

	// Warning is advisory only: set by the echo/wrong-language check, never
	// blocks caching or the response.
	Warning string `json:"_warning,omitempty"`

	// SentenceDifficulty is attached by the translation service after repair.
	SentenceDifficulty *SentenceDifficulty `json:"sentence_difficulty,omitempty"`
	Difficulty         string              `json:"difficulty,omitempty"`
}

// SentenceDifficulty is the heuristic difficulty estimate for a sentence.
type SentenceDifficulty struct {
	Level   string   `json:"level"`
	Score   int      `json:"score"`
	Factors []string `json:"factors"`
}

// WordDetail is the enriched view of a single breakdown word.
type WordDetail struct {
	Meaning          string        `json:"meaning"`
	Pronunciation    string        `json:"pronunciation"`
	Definitions      []string      `json:"definitions,omitempty"`
	Examples         []WordExample `json:"examples"`
	Conjugations     []Conjugation `json:"conjugations"`
	Related          []RelatedWord `json:"related"`
	Source           string        `json:"source,omitempty"`
	DictionarySource string        `json:"dictionary_source,omitempty"`
}

// WordExample is an example sentence for a word.
type WordExample struct {
	Sentence      string `json:"sentence"`
	Pronunciation string `json:"pronunciation"`
	Meaning       string `json:"meaning"`
}

// Conjugation is one inflected form of a word.
type Conjugation struct {
	Form  string `json:"form"`
	Label string `json:"label"`
}

// RelatedWord is a word related to the one being detailed.
type RelatedWord struct {
	Word    string `json:"word"`
	Meaning string `json:"meaning"`
}

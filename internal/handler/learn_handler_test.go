package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"sentsei/internal/i18n"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func init() {
	gin.SetMode(gin.TestMode)
	// Initialize i18n for testing
	if err := i18n.Init(); err != nil {
		panic("failed to initialize i18n for tests: " + err.Error())
	}
}

func postJSON(t *testing.T, path string, body any) (*httptest.ResponseRecorder, *gin.Context) {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestLearn(t *testing.T) {
	content := `{"translation": "コーヒーをください", "pronunciation": "koohii o kudasai", "breakdown": [], "grammar_notes": []}`
	model := newStubModelServer(t, content)
	defer model.Close()
	server := setupTestServer(t, model.URL)

	w, c := postJSON(t, "/api/learn", map[string]string{
		"sentence":        "I want a coffee",
		"target_language": "ja",
	})
	server.Learn(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "コーヒーをください", gjson.Get(body, "data.translation").String())
	assert.True(t, gjson.Get(body, "data.sentence_difficulty.level").Exists())
}

func TestLearn_InvalidJSON(t *testing.T) {
	server := setupTestServer(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/learn", strings.NewReader("{not json"))
	c.Request.Header.Set("Content-Type", "application/json")
	server.Learn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_JSON", gjson.Get(w.Body.String(), "code").String())
}

func TestLearn_UnsupportedLanguage(t *testing.T) {
	server := setupTestServer(t, "http://127.0.0.1:1")

	w, c := postJSON(t, "/api/learn", map[string]string{
		"sentence":        "hello",
		"target_language": "fr",
	})
	server.Learn(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "UNSUPPORTED_LANGUAGE", gjson.Get(w.Body.String(), "code").String())
}

func TestLearnMulti(t *testing.T) {
	content := `{"translation": "你好", "pronunciation": "ni hao", "breakdown": [], "grammar_notes": []}`
	model := newStubModelServer(t, content)
	defer model.Close()
	server := setupTestServer(t, model.URL)

	w, c := postJSON(t, "/api/learn-multi", map[string]string{
		"sentences":       "Hello. How are you?",
		"target_language": "zh",
	})
	server.LearnMulti(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "multi", gjson.Get(body, "data.mode").String())
	assert.Equal(t, int64(2), gjson.Get(body, "data.results.#").Int())
	assert.Equal(t, "你好", gjson.Get(body, "data.results.0.result.translation").String())
}

func TestWordDetail(t *testing.T) {
	content := `{"word": "gracias", "meaning": "thanks", "pronunciation": "gracias", "examples": [], "conjugations": [], "related": []}`
	model := newStubModelServer(t, content)
	defer model.Close()
	server := setupTestServer(t, model.URL)

	w, c := postJSON(t, "/api/word-detail", map[string]string{
		"word":            "gracias",
		"meaning":         "thanks",
		"target_language": "es",
	})
	server.WordDetail(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "gracias", gjson.Get(body, "data.pronunciation").String())
	assert.Equal(t, "thanks", gjson.Get(body, "data.meaning").String())
	assert.Equal(t, "deterministic", gjson.Get(body, "data.source").String())
}

func TestLanguages(t *testing.T) {
	server := setupTestServer(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/languages", nil)
	server.Languages(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Equal(t, "Japanese", gjson.Get(body, "data.ja").String())
	assert.Equal(t, "Chinese", gjson.Get(body, "data.zh").String())
}

func TestSurprise(t *testing.T) {
	server := setupTestServer(t, "http://127.0.0.1:1")

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/api/surprise?lang=ja&input_lang=en", nil)
	server.Surprise(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, gjson.Get(w.Body.String(), "data.sentence").String())

	t.Run("unsupported language", func(t *testing.T) {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodGet, "/api/surprise?lang=fr", nil)
		server.Surprise(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestExportAnki(t *testing.T) {
	server := setupTestServer(t, "http://127.0.0.1:1")

	w, c := postJSON(t, "/api/export-anki", []map[string]string{
		{
			"sentence":      "I want a coffee",
			"translation":   "コーヒーをください",
			"pronunciation": "koohii o kudasai",
			"lang":          "ja",
		},
	})
	server.ExportAnki(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/tab-separated-values", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), `filename="sent-say-flashcards.txt"`)
	assert.Equal(t,
		"I want a coffee\tコーヒーをください<br>Pronunciation: koohii o kudasai<br>Language: Japanese (ja)",
		w.Body.String())
}

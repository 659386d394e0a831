package services

import (
	"context"
	"strings"
	"sync/atomic"
	"testing"

	"sentsei/internal/dictionary"
	"sentsei/internal/httpclient"
	"sentsei/internal/llm"
	"sentsei/internal/models"
	"sentsei/internal/store"
	"sentsei/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWordDetailService(t *testing.T, serverURL string) *WordDetailService {
	t.Helper()
	dict, err := dictionary.Load(strings.NewReader("咖啡 咖啡 [ka1 fei1] /coffee/\n菜單 菜单 [cai4 dan1] /menu/"))
	require.NoError(t, err)
	cfg := &stubConfig{llm: types.LLMConfig{
		URL:            serverURL,
		Model:          "qwen2.5:14b-instruct-q3_K_M",
		RequestTimeout: 10,
	}}
	client := llm.NewClient(cfg, httpclient.NewHTTPClientManager())
	return NewWordDetailService(store.NewMemoryStore(), client, dict)
}

func TestWordDetailDictionaryFirst(t *testing.T) {
	// No model behind this URL; dictionary words must never need one.
	svc := newTestWordDetailService(t, "http://127.0.0.1:1")

	t.Run("chinese word from cedict", func(t *testing.T) {
		detail, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
			Word:            "菜單",
			Meaning:         "menu",
			TargetLanguage:  "zh",
			SentenceContext: "請給我看菜單",
		})
		require.Nil(t, apiErr)
		assert.Equal(t, "menu", detail.Meaning)
		assert.Equal(t, "cai4 dan1", detail.Pronunciation)
		assert.Equal(t, "dictionary", detail.Source)
		assert.Equal(t, "cedict", detail.DictionarySource)
		require.Len(t, detail.Examples, 2)
		assert.Equal(t, "請給我看菜單", detail.Examples[0].Sentence)
		assert.Equal(t, "菜單", detail.Examples[1].Sentence)
	})

	t.Run("traditional and simplified become related words", func(t *testing.T) {
		detail, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
			Word:           "菜单",
			Meaning:        "",
			TargetLanguage: "zh",
		})
		require.Nil(t, apiErr)
		require.Len(t, detail.Related, 2)
		assert.Equal(t, "菜單", detail.Related[0].Word)
		assert.Equal(t, "traditional", detail.Related[0].Meaning)
		assert.Equal(t, "菜单", detail.Related[1].Word)
		assert.Equal(t, "simplified", detail.Related[1].Meaning)
		assert.Equal(t, "menu", detail.Meaning)
	})

	t.Run("japanese word romanized deterministically", func(t *testing.T) {
		detail, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
			Word:           "先生",
			Meaning:        "teacher",
			TargetLanguage: "ja",
		})
		require.Nil(t, apiErr)
		assert.Equal(t, "mecab", detail.DictionarySource)
		assert.NotEmpty(t, detail.Pronunciation)
	})

	t.Run("spanish word passes through", func(t *testing.T) {
		detail, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
			Word:           "gracias",
			Meaning:        "thanks",
			TargetLanguage: "es",
		})
		require.Nil(t, apiErr)
		assert.Equal(t, "deterministic", detail.DictionarySource)
		assert.Equal(t, "gracias", detail.Pronunciation)
	})
}

func TestWordDetailValidation(t *testing.T) {
	svc := newTestWordDetailService(t, "http://127.0.0.1:1")

	t.Run("unsupported language", func(t *testing.T) {
		_, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
			Word:           "bonjour",
			TargetLanguage: "fr",
		})
		require.NotNil(t, apiErr)
		assert.Equal(t, "UNSUPPORTED_LANGUAGE", apiErr.Code)
	})

	t.Run("word too long", func(t *testing.T) {
		_, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
			Word:           strings.Repeat("a", 501),
			TargetLanguage: "es",
		})
		require.NotNil(t, apiErr)
		assert.Equal(t, "VALIDATION_FAILED", apiErr.Code)
	})
}

func TestWordDetailLLMFallback(t *testing.T) {
	var calls atomic.Int64
	content := `{"examples": [{"sentence": "這款應用程式很好用", "pronunciation": "zhe kuan ying yong cheng shi hen hao yong", "meaning": "this app is easy to use"}], "conjugations": [], "related": [{"word": "程式", "meaning": "program"}]}`
	server := newModelServer(t, content, &calls)
	defer server.Close()
	svc := newTestWordDetailService(t, server.URL)

	// Not in the test dictionary, so the model answers.
	detail, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
		Word:           "應用程式",
		Meaning:        "app",
		TargetLanguage: "zh",
	})
	require.Nil(t, apiErr)
	require.Len(t, detail.Examples, 1)
	assert.Equal(t, int64(1), calls.Load())

	t.Run("second lookup is cached", func(t *testing.T) {
		detail, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
			Word:           "應用程式",
			Meaning:        "app",
			TargetLanguage: "zh",
		})
		require.Nil(t, apiErr)
		require.Len(t, detail.Examples, 1)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("malformed output degrades to empty", func(t *testing.T) {
		rambling := newModelServer(t, "no JSON, just vibes", nil)
		defer rambling.Close()
		svc := newTestWordDetailService(t, rambling.URL)
		detail, apiErr := svc.Detail(context.Background(), &models.WordDetailRequest{
			Word:           "不存在的詞",
			TargetLanguage: "zh",
		})
		require.Nil(t, apiErr)
		assert.Empty(t, detail.Examples)
		assert.NotNil(t, detail.Conjugations)
		assert.NotNil(t, detail.Related)
	})
}

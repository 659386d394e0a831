package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"sentsei/internal/httpclient"
	"sentsei/internal/llm"
	"sentsei/internal/models"
	"sentsei/internal/repair"
	"sentsei/internal/services"
	"sentsei/internal/store"
	"sentsei/internal/types"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testConfig struct {
	types.ConfigManager
	llm types.LLMConfig
}

func (s *testConfig) GetLLMConfig() types.LLMConfig {
	return s.llm
}

func (s *testConfig) GetCacheConfig() types.CacheConfig {
	return types.CacheConfig{TTLMinutes: 60, MaxEntries: 500}
}

// setupTestDB creates an in-memory SQLite database for testing (pure Go, no CGO)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.UserData{},
		&models.Feedback{},
		&models.BadTranslation{},
	)
	require.NoError(t, err)

	return db
}

// newStubModelServer returns a fake Ollama endpoint that always answers with
// the given assistant content.
func newStubModelServer(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"message": map[string]any{"role": "assistant", "content": content},
		})
	}))
}

// setupTestServer wires a Server with every service backed by the in-memory
// store, an in-memory database and the given model endpoint.
func setupTestServer(t *testing.T, llmURL string) *Server {
	t.Helper()

	db := setupTestDB(t)
	cfg := &testConfig{llm: types.LLMConfig{
		URL:            llmURL,
		Model:          "qwen2.5:14b-instruct-q3_K_M",
		RequestTimeout: 10,
	}}
	memStore := store.NewMemoryStore()
	client := llm.NewClient(cfg, httpclient.NewHTTPClientManager())
	repairer := repair.New(nil, nil)

	translation := services.NewTranslationService(cfg, memStore, db, client, repairer)

	return &Server{
		DB:                 db,
		ConfigManager:      cfg,
		TranslationService: translation,
		WordDetailService:  services.NewWordDetailService(memStore, client, nil),
		QuizService:        services.NewQuizService(memStore, client),
		SurpriseService:    services.NewSurpriseService(memStore),
		SRSService:         services.NewSRSService(db),
		FeedbackService:    services.NewFeedbackService(db, translation),
		AnkiService:        services.NewAnkiService(),
	}
}

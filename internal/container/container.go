// Package container wires application dependencies together.
package container

import (
	"sentsei/internal/app"
	"sentsei/internal/config"
	"sentsei/internal/db"
	"sentsei/internal/dictionary"
	"sentsei/internal/handler"
	"sentsei/internal/httpclient"
	"sentsei/internal/llm"
	"sentsei/internal/repair"
	"sentsei/internal/router"
	"sentsei/internal/services"
	"sentsei/internal/store"
	"sentsei/internal/types"

	"github.com/sirupsen/logrus"
	"go.uber.org/dig"
)

// BuildContainer creates and configures the dependency injection container.
func BuildContainer() (*dig.Container, error) {
	container := dig.New()

	providers := []any{
		// Infrastructure
		config.NewManager,
		store.NewStore,
		db.NewDB,
		httpclient.NewHTTPClientManager,

		// Domain plumbing
		llm.NewClient,
		newDictionary,
		newRepairer,

		// Services
		services.NewTranslationService,
		services.NewWordDetailService,
		services.NewQuizService,
		services.NewSurpriseService,
		services.NewSRSService,
		services.NewFeedbackService,
		services.NewAnkiService,

		// HTTP layer
		handler.NewServer,
		router.NewRouter,

		// Application
		app.NewApp,
	}

	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return nil, err
		}
	}

	return container, nil
}

// newDictionary loads the CC-CEDICT dictionary from the configured path,
// falling back to the embedded seed set.
func newDictionary(configManager types.ConfigManager) *dictionary.CEDICT {
	return dictionary.LoadFile(configManager.GetDictionaryConfig().CEDICTPath)
}

// newRepairer assembles the repair pipeline. A missing segmentation
// dictionary disables Chinese resegmentation but keeps the other passes.
func newRepairer(dict *dictionary.CEDICT) *repair.Repairer {
	segmenter, err := repair.NewGseSegmenter()
	if err != nil {
		logrus.WithError(err).Warn("Chinese segmenter unavailable, resegmentation disabled")
		segmenter = nil
	}
	return repair.New(dict, segmenter)
}

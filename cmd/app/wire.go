//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/surfapp/recommender/internal/bootstrap"
	"github.com/surfapp/recommender/internal/domain/recommend"
	"github.com/surfapp/recommender/internal/infra/config"
	httpiface "github.com/surfapp/recommender/internal/interface/http"
	"github.com/surfapp/recommender/pkg/logger"
)

func initializeApp() (*bootstrap.App, error) {
	wire.Build(
		config.Load,
		logger.New,
		providePredictor,
		providePredictionCache,
		provideSpotCatalog,
		provideSessionHistory,
		recommend.NewService,
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil
}

// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package main

import (
	"github.com/surfapp/recommender/internal/bootstrap"
	"github.com/surfapp/recommender/internal/domain/recommend"
	"github.com/surfapp/recommender/internal/infra/config"
	"github.com/surfapp/recommender/internal/interface/http"
	"github.com/surfapp/recommender/pkg/logger"
)

// Injectors from wire.go:

func initializeApp() (*bootstrap.App, error) {
	configConfig, err := config.Load()
	if err != nil {
		return nil, err
	}
	slogLogger := logger.New()
	predictor := providePredictor(configConfig, slogLogger)
	predictionCache := providePredictionCache(configConfig, slogLogger)
	spotCatalog := provideSpotCatalog(configConfig, slogLogger)
	sessionHistory := provideSessionHistory(configConfig, slogLogger)
	service := recommend.NewService(predictor, predictionCache, spotCatalog, sessionHistory, slogLogger)
	handler := http.NewHandler(configConfig, service, slogLogger)
	server := http.NewRouter(configConfig, handler)
	app := bootstrap.NewApp(configConfig, slogLogger, server)
	return app, nil
}

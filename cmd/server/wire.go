// File: cmd/server/wire.go
//go:build wireinject
// +build wireinject

package main

import (
	"adoptaunpana_backend/internal/app"
	"adoptaunpana_backend/internal/config"
	"adoptaunpana_backend/internal/listing"
	"adoptaunpana_backend/internal/listing/esutil"
	"adoptaunpana_backend/internal/location"
	"adoptaunpana_backend/internal/message"
	"adoptaunpana_backend/internal/platform/database"
	platformElasticsearch "adoptaunpana_backend/internal/platform/elasticsearch"
	"adoptaunpana_backend/internal/setup"
	"adoptaunpana_backend/internal/stats"

	"github.com/google/wire"
	"go.uber.org/zap"
)

// initializeServer is the main Wire injector.
func initializeServer(cfg *config.Config, logger *zap.Logger) (*app.Server, func(), error) {
	wire.Build(
		// Platform Layer
		database.NewGORM,
		database.NewServiceGORM,

		// Setup / seed
		provideSetupService,
		setup.NewHandler,
		provideReferenceDataJob,

		// Domain modules
		location.NewGORMRepository,
		location.NewService,
		location.NewHandler,
		listing.NewGORMRepository,
		listing.NewService,
		listing.NewHandler,
		message.NewGORMRepository,
		message.NewService,
		message.NewHandler,
		provideStatsService,
		stats.NewHandler,

		// Application Layer
		app.NewServer,
	)
	return nil, nil, nil
}

// initializeSetup builds only what the setup subcommand needs.
func initializeSetup(cfg *config.Config, logger *zap.Logger) (setup.Service, func(), error) {
	wire.Build(
		database.NewServiceGORM,
		provideSetupService,
	)
	return nil, nil, nil
}

// initializeSyncer builds the Elasticsearch export used by sync-listings.
func initializeSyncer(cfg *config.Config, logger *zap.Logger) (*esutil.Syncer, func(), error) {
	wire.Build(
		database.NewGORM,
		listing.NewGORMRepository,
		platformElasticsearch.NewClient,
		provideSyncer,
	)
	return nil, nil, nil
}

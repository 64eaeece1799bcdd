package main

import (
	"adoptaunpana_backend/internal/config"
	"adoptaunpana_backend/internal/jobs"
	"adoptaunpana_backend/internal/listing"
	"adoptaunpana_backend/internal/listing/esutil"
	"adoptaunpana_backend/internal/location"
	"adoptaunpana_backend/internal/message"
	"adoptaunpana_backend/internal/platform/database"
	platformElasticsearch "adoptaunpana_backend/internal/platform/elasticsearch"
	"adoptaunpana_backend/internal/setup"
	"adoptaunpana_backend/internal/stats"

	"go.uber.org/zap"
)

// provideSetupService binds both the migrator and the seeder to the privileged connection.
func provideSetupService(serviceDB *database.ServiceDB, logger *zap.Logger) setup.Service {
	return setup.NewService(
		setup.NewMigrator(serviceDB, logger),
		location.NewGORMRepository(serviceDB.DB),
		logger,
	)
}

func provideStatsService(listings listing.Repository, messages message.Repository, logger *zap.Logger) stats.Service {
	return stats.NewService(listings, messages, logger)
}

func provideReferenceDataJob(setupService setup.Service, logger *zap.Logger, cfg *config.Config) *jobs.ReferenceDataJob {
	return jobs.NewReferenceDataJob(setupService, logger, cfg)
}

func provideSyncer(repo listing.Repository, client *platformElasticsearch.ESClientWrapper, logger *zap.Logger) *esutil.Syncer {
	return esutil.NewSyncer(repo, client, logger)
}

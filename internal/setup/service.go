// File: internal/setup/service.go
package setup

import (
	"context"
	"fmt"

	"adoptaunpana_backend/internal/common"
	"adoptaunpana_backend/internal/location"

	"go.uber.org/zap"
)

// SeedResult counts the reference rows a seed run inserted. Rows that were
// already present are not counted.
type SeedResult struct {
	Provinces int64 `json:"provinces"`
	Cities    int64 `json:"cities"`
}

// Result is what a full setup run reports.
type Result struct {
	Schema *Report     `json:"schema"`
	Seeded *SeedResult `json:"seeded"`
}

// Service defines the interface for schema provisioning and reference data seeding.
type Service interface {
	// Run migrates the schema and seeds reference data. Schema failures are
	// reported in the result; only a seed failure is returned as an error.
	Run(ctx context.Context) (*Result, error)
	// EnsureReferenceData seeds provinces and cities when either table is empty.
	EnsureReferenceData(ctx context.Context) error
}

// ServiceImplementation implements setup.Service.
type ServiceImplementation struct {
	migrator  Migrator
	locations location.Repository
	logger    *zap.Logger
}

// NewService creates a new setup service. locations should be bound to the
// privileged connection.
func NewService(migrator Migrator, locations location.Repository, logger *zap.Logger) Service {
	return &ServiceImplementation{migrator: migrator, locations: locations, logger: logger.Named("SetupService")}
}

var errSetupFailed = common.ErrInternalServer.WithMessage("Database setup failed")

func (s *ServiceImplementation) Run(ctx context.Context) (*Result, error) {
	report := s.migrator.Migrate(ctx)
	if len(report.Failed) > 0 {
		s.logger.Warn("Schema migration finished with failures",
			zap.Int("applied", len(report.Applied)),
			zap.Int("skipped", len(report.Skipped)),
			zap.Int("failed", len(report.Failed)))
	} else {
		s.logger.Info("Schema migration finished",
			zap.Int("applied", len(report.Applied)),
			zap.Int("skipped", len(report.Skipped)))
	}

	seeded, err := s.seed(ctx)
	if err != nil {
		s.logger.Error("Database setup failed", zap.Error(err))
		return nil, errSetupFailed.WithDetails(err.Error())
	}
	return &Result{Schema: report, Seeded: seeded}, nil
}

func (s *ServiceImplementation) EnsureReferenceData(ctx context.Context) error {
	provinces, err := s.locations.CountProvinces(ctx)
	if err != nil {
		return fmt.Errorf("failed to count provinces: %w", err)
	}
	cities, err := s.locations.CountCities(ctx)
	if err != nil {
		return fmt.Errorf("failed to count cities: %w", err)
	}
	if provinces > 0 && cities > 0 {
		return nil
	}

	seeded, err := s.seed(ctx)
	if err != nil {
		return err
	}
	s.logger.Info("Reference data seeded", zap.Int64("provinces", seeded.Provinces), zap.Int64("cities", seeded.Cities))
	return nil
}

// seed inserts the fixed reference set; existing keys are left untouched.
// Provinces go first so the cities' foreign keys resolve.
func (s *ServiceImplementation) seed(ctx context.Context) (*SeedResult, error) {
	provinces, err := s.locations.InsertProvinces(ctx, location.ReferenceProvinces())
	if err != nil {
		return nil, fmt.Errorf("failed to seed provinces: %w", err)
	}
	cities, err := s.locations.InsertCities(ctx, location.ReferenceCities())
	if err != nil {
		return nil, fmt.Errorf("failed to seed cities: %w", err)
	}
	return &SeedResult{Provinces: provinces, Cities: cities}, nil
}

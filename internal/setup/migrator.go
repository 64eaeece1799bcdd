// File: internal/setup/migrator.go
package setup

import (
	"context"
	"errors"
	"strings"

	"adoptaunpana_backend/internal/listing"
	"adoptaunpana_backend/internal/location"
	"adoptaunpana_backend/internal/message"
	"adoptaunpana_backend/internal/platform/database"
	"adoptaunpana_backend/internal/user"

	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Outcome is the classification of one schema statement.
type Outcome string

const (
	OutcomeApplied Outcome = "applied"
	OutcomeSkipped Outcome = "skipped"
	OutcomeFailed  Outcome = "failed"
)

// Failure records a statement that could not be applied.
type Failure struct {
	Statement string `json:"statement"`
	Error     string `json:"error"`
}

// Report lists every schema statement by outcome.
type Report struct {
	Applied []string  `json:"applied"`
	Skipped []string  `json:"skipped"`
	Failed  []Failure `json:"failed"`
}

func newReport() *Report {
	return &Report{Applied: []string{}, Skipped: []string{}, Failed: []Failure{}}
}

func (r *Report) record(name string, err error) Outcome {
	outcome := classifyDDLError(err)
	switch outcome {
	case OutcomeApplied:
		r.Applied = append(r.Applied, name)
	case OutcomeSkipped:
		r.Skipped = append(r.Skipped, name)
	default:
		r.Failed = append(r.Failed, Failure{Statement: name, Error: err.Error()})
	}
	return outcome
}

// ignorableCodes are the SQLSTATEs Postgres raises for objects that already exist.
var ignorableCodes = map[pq.ErrorCode]bool{
	"42P07": true, // duplicate_table
	"42710": true, // duplicate_object
	"42P06": true, // duplicate_schema
	"42701": true, // duplicate_column
	"42723": true, // duplicate_function
}

func classifyDDLError(err error) Outcome {
	if err == nil {
		return OutcomeApplied
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if ignorableCodes[pqErr.Code] {
			return OutcomeSkipped
		}
		return OutcomeFailed
	}
	if strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return OutcomeSkipped
	}
	return OutcomeFailed
}

// Migrator provisions the schema. It never fails as a whole; per-statement
// failures are reported instead.
type Migrator interface {
	Migrate(ctx context.Context) *Report
}

type schemaMigrator struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewMigrator creates a migrator over the privileged connection.
func NewMigrator(db *database.ServiceDB, logger *zap.Logger) Migrator {
	return &schemaMigrator{db: db.DB, logger: logger.Named("SchemaMigrator")}
}

func (m *schemaMigrator) Migrate(ctx context.Context) *Report {
	if m.db.Dialector.Name() == "postgres" {
		return m.migratePostgres(ctx)
	}
	return m.autoMigrate(ctx)
}

func (m *schemaMigrator) migratePostgres(ctx context.Context) *Report {
	report := newReport()
	sqlDB, err := m.db.DB()
	if err != nil {
		report.Failed = append(report.Failed, Failure{Statement: "connection", Error: err.Error()})
		return report
	}
	for _, stmt := range postgresSchema {
		_, err := sqlDB.ExecContext(ctx, stmt.SQL)
		m.log(stmt.Name, report.record(stmt.Name, err), err)
	}
	return report
}

// autoMigrate covers the non-Postgres dialects. A table that already existed
// is reported as skipped even when AutoMigrate adds missing columns to it.
func (m *schemaMigrator) autoMigrate(ctx context.Context) *Report {
	report := newReport()
	db := m.db.WithContext(ctx)
	models := []struct {
		name  string
		model interface{}
	}{
		{"users", &user.User{}},
		{"provinces", &location.Province{}},
		{"cities", &location.City{}},
		{"dog_listings", &listing.DogListing{}},
		{"messages", &message.Message{}},
	}
	for _, t := range models {
		existed := db.Migrator().HasTable(t.model)
		err := db.AutoMigrate(t.model)
		var outcome Outcome
		if err == nil && existed {
			report.Skipped = append(report.Skipped, t.name)
			outcome = OutcomeSkipped
		} else {
			outcome = report.record(t.name, err)
		}
		m.log(t.name, outcome, err)
	}
	return report
}

func (m *schemaMigrator) log(name string, outcome Outcome, err error) {
	switch outcome {
	case OutcomeFailed:
		m.logger.Error("Schema statement failed", zap.String("statement", name), zap.Error(err))
	case OutcomeSkipped:
		m.logger.Debug("Schema statement skipped", zap.String("statement", name))
	default:
		m.logger.Info("Schema statement applied", zap.String("statement", name))
	}
}

// File: internal/platform/database/gorm.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	"adoptaunpana_backend/internal/config"

	_ "github.com/lib/pq" // registers the "postgres" database/sql driver
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// ServiceDB is the privileged connection used only for schema provisioning.
// It is a distinct type so Wire can tell it apart from the public *gorm.DB.
type ServiceDB struct {
	*gorm.DB
}

// NewGORM opens the public-role connection used by every request handler.
func NewGORM(cfg *config.Config, logger *zap.Logger) (*gorm.DB, func(), error) {
	db, err := open(cfg, cfg.DatabaseURL, logger.Named("gorm"))
	if err != nil {
		return nil, nil, err
	}
	logger.Info("Successfully connected to the database.", zap.String("driver", cfg.DBDriver))
	return db, func() { CloseGORMDB(db, logger) }, nil
}

// NewServiceGORM opens the privileged connection. When DATABASE_SERVICE_URL is
// not set it falls back to DATABASE_URL.
func NewServiceGORM(cfg *config.Config, logger *zap.Logger) (*ServiceDB, func(), error) {
	db, err := open(cfg, cfg.ServiceURL(), logger.Named("gorm_service"))
	if err != nil {
		return nil, nil, err
	}
	return &ServiceDB{DB: db}, func() { CloseGORMDB(db, logger) }, nil
}

// Dialector builds the GORM dialector for the configured driver. Postgres goes
// through lib/pq so driver errors surface as *pq.Error.
func Dialector(driver, dsn string) (gorm.Dialector, error) {
	switch driver {
	case config.DriverPostgres:
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return nil, fmt.Errorf("failed to open postgres connection: %w", err)
		}
		return postgres.New(postgres.Config{Conn: sqlDB}), nil
	case config.DriverSQLite:
		return sqlite.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}

func open(cfg *config.Config, dsn string, logger *zap.Logger) (*gorm.DB, error) {
	dialector, err := Dialector(cfg.DBDriver, dsn)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:      NewGORMLogger(logger, cfg),
		PrepareStmt: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.DBConnMaxLifetime)

	if err = sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	return db, nil
}

// NewGORMLogger routes GORM's SQL log through zap at a level derived from LOG_LEVEL.
func NewGORMLogger(logger *zap.Logger, cfg *config.Config) gormlogger.Interface {
	var level gormlogger.LogLevel
	switch cfg.LogLevel {
	case "silent", "fatal", "panic":
		level = gormlogger.Silent
	case "error":
		level = gormlogger.Error
	case "warn", "warning", "info":
		level = gormlogger.Warn
	case "debug":
		level = gormlogger.Info
	default:
		level = gormlogger.Warn
	}

	return gormlogger.New(
		zap.NewStdLog(logger),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  level,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
	)
}

// CloseGORMDB closes the underlying connection pool.
func CloseGORMDB(db *gorm.DB, logger *zap.Logger) {
	if db == nil {
		return
	}
	sqlDB, err := db.DB()
	if err != nil {
		logger.Error("Error getting underlying SQL DB for closing", zap.Error(err))
		return
	}
	if err := sqlDB.Close(); err != nil {
		logger.Error("Error closing database connection", zap.Error(err))
		return
	}
	logger.Info("Database connection closed.")
}

// Ping reports whether the store is reachable.
func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

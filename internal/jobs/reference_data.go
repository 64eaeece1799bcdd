// File: internal/jobs/reference_data.go
package jobs

import (
	"context"
	"fmt"
	"time"

	"adoptaunpana_backend/internal/config"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// ReferenceDataEnsurer is the part of setup.Service the job drives.
type ReferenceDataEnsurer interface {
	EnsureReferenceData(ctx context.Context) error
}

// ReferenceDataJob re-seeds provinces and cities if they go missing.
type ReferenceDataJob struct {
	setup         ReferenceDataEnsurer
	logger        *zap.Logger
	cfg           *config.Config
	cronScheduler *cron.Cron
	timeout       time.Duration
}

// NewReferenceDataJob creates a new ReferenceDataJob.
func NewReferenceDataJob(setup ReferenceDataEnsurer, logger *zap.Logger, cfg *config.Config) *ReferenceDataJob {
	cronLog := NewCronLogger(logger.Named("cron"))
	scheduler := cron.New(
		cron.WithLogger(cronLog),
		cron.WithChain(cron.SkipIfStillRunning(cronLog)),
	)

	return &ReferenceDataJob{
		setup:         setup,
		logger:        logger.Named("ReferenceDataJob"),
		cfg:           cfg,
		cronScheduler: scheduler,
		timeout:       time.Minute,
	}
}

// SetupAndStart schedules and starts the cron job. An empty schedule disables it.
func (j *ReferenceDataJob) SetupAndStart() error {
	jobSpec := j.cfg.ReferenceDataJobSchedule
	if jobSpec == "" {
		j.logger.Warn("Reference data job schedule not defined (REFERENCE_DATA_JOB_SCHEDULE). Job will not run.")
		return nil
	}

	jobID, err := j.cronScheduler.AddFunc(jobSpec, j.runJob)
	if err != nil {
		j.logger.Error("Failed to schedule reference data job", zap.String("spec", jobSpec), zap.Error(err))
		return fmt.Errorf("invalid reference data job schedule %q: %w", jobSpec, err)
	}

	j.logger.Info("Reference data job scheduled", zap.String("spec", jobSpec), zap.Any("jobID", jobID))
	j.cronScheduler.Start()
	return nil
}

// RunNow performs one run synchronously, outside the schedule.
func (j *ReferenceDataJob) RunNow() {
	j.runJob()
}

func (j *ReferenceDataJob) runJob() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	if err := j.setup.EnsureReferenceData(ctx); err != nil {
		j.logger.Error("Reference data job run failed", zap.Error(err))
		return
	}
	j.logger.Debug("Reference data job run completed")
}

// Stop waits up to 10 seconds for a running job to finish.
func (j *ReferenceDataJob) Stop() {
	if j.cronScheduler == nil {
		return
	}
	j.logger.Info("Stopping reference data job scheduler...")
	stopCtx := j.cronScheduler.Stop()
	select {
	case <-stopCtx.Done():
		j.logger.Info("Reference data job scheduler stopped.")
	case <-time.After(10 * time.Second):
		j.logger.Warn("Reference data job scheduler stop timed out.")
	}
}

// cronLogger adapts zap.Logger to cron.Logger interface.
type cronLogger struct {
	zl *zap.Logger
}

// NewCronLogger creates a new cronLogger.
func NewCronLogger(zl *zap.Logger) cron.Logger {
	return &cronLogger{zl: zl}
}

func (cl *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	cl.zl.Debug(msg, toFields(keysAndValues)...)
}

func (cl *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	cl.zl.Error(msg, append(toFields(keysAndValues), zap.Error(err))...)
}

func toFields(keysAndValues []interface{}) []zap.Field {
	fields := make([]zap.Field, 0, (len(keysAndValues)+1)/2)
	for i := 0; i < len(keysAndValues); i += 2 {
		key := fmt.Sprintf("%v", keysAndValues[i])
		if i+1 < len(keysAndValues) {
			fields = append(fields, zap.Any(key, keysAndValues[i+1]))
		} else {
			fields = append(fields, zap.Any(key, "MISSING_VALUE"))
		}
	}
	return fields
}

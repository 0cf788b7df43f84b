// Package jobs contains scheduled background work. Jobs are thin wrappers
// around query or command handlers driven by cron schedules.
package jobs

import (
	"context"
	"log/slog"

	"litstock/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// LowStockSweepJob periodically scans stock records and logs every record
// whose available quantity has dropped below the configured threshold. It only
// observes; replenishment stays a human decision.
type LowStockSweepJob struct {
	handler   queries.GetLowStockQueryHandler
	threshold int
	schedule  string
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewLowStockSweepJob creates a sweep job. The schedule is a standard five
// field cron expression.
func NewLowStockSweepJob(
	handler queries.GetLowStockQueryHandler,
	threshold int,
	schedule string,
	logger *slog.Logger,
) *LowStockSweepJob {
	return &LowStockSweepJob{
		handler:   handler,
		threshold: threshold,
		schedule:  schedule,
		cron:      cron.New(),
		logger:    logger.With("component", "low_stock_sweep_job"),
	}
}

// Start schedules the sweep.
func (j *LowStockSweepJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.sweep)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock sweep started",
		"schedule", j.schedule, "threshold", j.threshold)
	return nil
}

// Stop stops the sweep job.
func (j *LowStockSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Low stock sweep stopped")
}

func (j *LowStockSweepJob) sweep() {
	ctx := context.Background()

	query, err := queries.NewGetLowStockQuery(j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock sweep misconfigured", "error", err)
		return
	}

	shortages, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock sweep failed", "error", err)
		return
	}

	for _, shortage := range shortages {
		j.logger.WarnContext(ctx, "Stock below threshold",
			"organization", shortage.OrganizationName,
			"organization_id", shortage.OrganizationID.String(),
			"literature", shortage.Title,
			"literature_id", shortage.LiteratureID.String(),
			"available", shortage.Available,
			"threshold", j.threshold,
		)
	}
}

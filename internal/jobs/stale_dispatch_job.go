package jobs

import (
	"context"
	"log/slog"
	"time"

	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/leg"
	"tracking/internal/core/domain/model/tracking"

	"github.com/robfig/cron/v3"
)

// StaleDispatchReporter publishes the stale-dispatch counts per leg kind.
type StaleDispatchReporter interface {
	SetStaleDispatches(kind tracking.LegKind, count int)
}

// StaleDispatchJob periodically counts legs that have stayed DISPATCHED longer
// than a threshold. It only reads; nothing is transitioned.
type StaleDispatchJob struct {
	handler   queries.GetStaleDispatchesQueryHandler
	reporter  StaleDispatchReporter
	threshold time.Duration
	schedule  string
	now       func() time.Time
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewStaleDispatchJob creates the job. schedule is a standard five-field cron
// expression; reporter may be nil.
func NewStaleDispatchJob(
	handler queries.GetStaleDispatchesQueryHandler,
	reporter StaleDispatchReporter,
	threshold time.Duration,
	schedule string,
	logger *slog.Logger,
) *StaleDispatchJob {
	return &StaleDispatchJob{
		handler:   handler,
		reporter:  reporter,
		threshold: threshold,
		schedule:  schedule,
		now:       time.Now,
		cron:      cron.New(),
		logger:    logger.With("component", "stale_dispatch_job"),
	}
}

// Start registers the report on the schedule and starts the scheduler.
func (j *StaleDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale dispatch job started",
		"schedule", j.schedule, "threshold", j.threshold.String())
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *StaleDispatchJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Stale dispatch job stopped")
}

// Run produces one report. Failures are logged; the previous gauge values stay.
func (j *StaleDispatchJob) Run(ctx context.Context) {
	query, err := queries.NewGetStaleDispatchesQuery(j.now(), j.threshold)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale dispatch job misconfigured", "error", err)
		return
	}

	stale, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Stale dispatch job failed", "error", err)
		return
	}

	counts := map[tracking.LegKind]int{
		tracking.LegKindFabric:  0,
		tracking.LegKindGarment: 0,
	}
	for _, l := range stale {
		kind := tracking.LegKindGarment
		if l.Type == leg.Fabric {
			kind = tracking.LegKindFabric
		}
		counts[kind]++

		j.logger.WarnContext(ctx, "Leg dispatched too long ago",
			"legId", l.ID.String(),
			"orderId", l.OrderID.String(),
			"kind", string(kind),
			"courier", l.CourierName,
			"trackingId", l.TrackingID,
			"dispatchedAt", l.DispatchedAt,
		)
	}

	if j.reporter != nil {
		for kind, count := range counts {
			j.reporter.SetStaleDispatches(kind, count)
		}
	}
}

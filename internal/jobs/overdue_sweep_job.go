package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/model/status"
	"lifecycle/internal/core/domain/workflow"
	"lifecycle/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// ActionOverdueAlert is the dispatcher tag for overdue escalations raised by
// the sweep, as opposed to the transition-triggered automation tags.
const ActionOverdueAlert = "overdue_alert"

// overdueSweepSchedule runs the sweep at the top of every hour. Dwell
// expectations are measured in hours, so a finer grain buys nothing.
const overdueSweepSchedule = "0 0 * * * *"

// OverdueSweepJob periodically scans for parcels and shipments that have
// dwelt in their current status past the policy expectation and raises an
// overdue alert for each through the action dispatcher. The sweep never
// mutates entity state; escalation is the collaborator's business.
type OverdueSweepJob struct {
	parcelsHandler   queries.GetOverdueParcelsQueryHandler
	shipmentsHandler queries.GetOverdueShipmentsQueryHandler
	dispatcher       ports.ActionDispatcher
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewOverdueSweepJob creates the overdue sweep job.
func NewOverdueSweepJob(
	parcelsHandler queries.GetOverdueParcelsQueryHandler,
	shipmentsHandler queries.GetOverdueShipmentsQueryHandler,
	dispatcher ports.ActionDispatcher,
	logger *slog.Logger,
) *OverdueSweepJob {
	return &OverdueSweepJob{
		parcelsHandler:   parcelsHandler,
		shipmentsHandler: shipmentsHandler,
		dispatcher:       dispatcher,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "overdue_sweep_job"),
	}
}

// Start schedules the sweep to run hourly.
func (j *OverdueSweepJob) Start() error {
	_, err := j.cron.AddFunc(overdueSweepSchedule, func() {
		j.Sweep(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue sweep job started (running hourly)")
	return nil
}

// Stop stops the sweep job.
func (j *OverdueSweepJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue sweep job stopped")
}

// Sweep runs one pass over both entity kinds. A failed alert for one entity
// never aborts the rest of the pass.
func (j *OverdueSweepJob) Sweep(ctx context.Context) {
	now := time.Now()

	parcelQuery, err := queries.NewGetOverdueParcelsQuery(now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue sweep failed to build parcel query", "error", err)
		return
	}
	parcels, err := j.parcelsHandler.Handle(ctx, parcelQuery)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue sweep failed to query parcels", "error", err)
	} else {
		for _, entry := range parcels {
			j.alert(ctx, workflow.TransitionContext{
				EntityID:      entry.ID,
				Kind:          status.KindPackage,
				CurrentStatus: entry.Status,
				NewStatus:     entry.Status,
				Notes:         fmt.Sprintf("overdue by %s in status %s", entry.OverdueBy, entry.Status),
				Timestamp:     now,
			})
		}
	}

	shipmentQuery, err := queries.NewGetOverdueShipmentsQuery(now)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue sweep failed to build shipment query", "error", err)
		return
	}
	shipments, err := j.shipmentsHandler.Handle(ctx, shipmentQuery)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue sweep failed to query shipments", "error", err)
		return
	}
	for _, entry := range shipments {
		j.alert(ctx, workflow.TransitionContext{
			EntityID:      entry.ID,
			Kind:          status.KindShipment,
			CurrentStatus: entry.Status,
			NewStatus:     entry.Status,
			Notes:         fmt.Sprintf("overdue by %s in status %s", entry.OverdueBy, entry.Status),
			Timestamp:     now,
		})
	}
}

func (j *OverdueSweepJob) alert(ctx context.Context, transition workflow.TransitionContext) {
	if err := j.dispatcher.Dispatch(ctx, ActionOverdueAlert, transition); err != nil {
		j.logger.ErrorContext(ctx, "Overdue alert dispatch failed",
			"entity_id", transition.EntityID.String(),
			"kind", string(transition.Kind),
			"status", string(transition.CurrentStatus),
			"error", err)
	}
}

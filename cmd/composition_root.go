package cmd

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"lifecycle/internal/adapters/out/dispatch"
	"lifecycle/internal/adapters/out/postgres"
	"lifecycle/internal/core/application/automation"
	"lifecycle/internal/core/application/usecases/commands"
	"lifecycle/internal/core/application/usecases/queries"
	"lifecycle/internal/core/domain/workflow"
	"lifecycle/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     postgres.GormUnitOfWorkFactory
	validator      *workflow.Validator
	durationPolicy *workflow.DurationPolicy
	dispatcher     *dispatch.Dispatcher
	engine         *automation.Engine
	logger         *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	dispatcher := dispatch.NewDispatcher(dispatch.DefaultBreakerConfig(), logger)
	registerCollaborators(dispatcher, logger)

	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     *postgres.NewGormUnitOfWorkFactory(gormDB),
		validator:      workflow.NewValidator(),
		durationPolicy: workflow.NewDurationPolicy(),
		dispatcher:     dispatcher,
		engine:         automation.NewEngine(dispatcher, actionTimeout(config), logger),
		logger:         logger,
	}
}

// actionTimeout parses the configured automation budget, falling back to the
// engine default on absent or malformed values.
func actionTimeout(config Config) time.Duration {
	seconds, err := strconv.Atoi(config.ActionTimeoutSeconds)
	if err != nil || seconds <= 0 {
		return automation.DefaultActionTimeout
	}
	return time.Duration(seconds) * time.Second
}

// registerCollaborators binds every automation action tag the rule tables can
// emit. The collaborators log the intent; each integration replaces its own
// binding as it comes online.
func registerCollaborators(dispatcher *dispatch.Dispatcher, logger *slog.Logger) {
	actions := []string{
		workflow.ActionSendCustomerNotification,
		workflow.ActionUpdateInventory,
		workflow.ActionGenerateTracking,
		workflow.ActionUpdateCarrierSystem,
		workflow.ActionCreateAuditEntry,
		workflow.ActionAttachInspectionReport,
		workflow.ActionReleaseStorageSlot,
		workflow.ActionReserveCarrierCapacity,
		workflow.ActionScheduleFinalMile,
		workflow.ActionGenerateQuoteDocument,
		workflow.ActionGenerateInvoice,
		workflow.ActionIssueRefundRequest,
		workflow.ActionCloseStorageRecord,
		workflow.ActionRequestFeedback,
		jobs.ActionOverdueAlert,
	}
	for _, action := range actions {
		dispatcher.Register(action, func(ctx context.Context, transition workflow.TransitionContext) error {
			logger.InfoContext(ctx, "automation action executed",
				"action", action,
				"entity_id", transition.EntityID.String(),
				"kind", string(transition.Kind),
				"from", string(transition.CurrentStatus),
				"to", string(transition.NewStatus),
			)
			return nil
		})
	}
}

func (c *CompositionRoot) Validator() *workflow.Validator {
	return c.validator
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateChangeParcelStatusCommandHandler() commands.ChangeParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeParcelStatusCommandHandler(f, c.validator, c.engine)
}

func (c *CompositionRoot) CreateChangeShipmentStatusCommandHandler() commands.ChangeShipmentStatusCommandHandler {
	var f commands.ShipmentUoWFactory = FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeShipmentStatusCommandHandler(f, c.validator, c.engine)
}

func (c *CompositionRoot) CreateGetOverdueParcelsQueryHandler() queries.GetOverdueParcelsQueryHandler {
	return queries.NewGetOverdueParcelsQueryHandler(c.gormDB, c.durationPolicy)
}

func (c *CompositionRoot) CreateGetOverdueShipmentsQueryHandler() queries.GetOverdueShipmentsQueryHandler {
	return queries.NewGetOverdueShipmentsQueryHandler(c.gormDB, c.durationPolicy)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOverdueParcelsQueryHandler(),
		c.CreateGetOverdueShipmentsQueryHandler(),
		c.dispatcher,
		c.logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

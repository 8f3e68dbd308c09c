package cmd

import (
	"database/sql"
	"log/slog"

	"tracking/internal/adapters/out/legacysql"
	"tracking/internal/adapters/out/metrics"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/legrepo"
	"tracking/internal/adapters/out/postgres/orderrepo"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config           Config
	logger           *slog.Logger
	metrics          *metrics.Metrics
	cache            ports.TrackingCache
	uowFactory       *postgres.GormUnitOfWorkFactory
	legacyUoWFactory *legacysql.UnitOfWorkFactory
	legs             ports.LegReader
	legacy           ports.LegacyRecordReader
	orders           ports.OrderDirectory
}

// NewCompositionRoot wires the adapters. cache may be nil to run without the
// tracking cache.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	legacyDB *sql.DB,
	cache ports.TrackingCache,
	m *metrics.Metrics,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:           config,
		logger:           logger,
		metrics:          m,
		cache:            cache,
		uowFactory:       postgres.NewGormUnitOfWorkFactory(gormDB),
		legacyUoWFactory: legacysql.NewUnitOfWorkFactory(legacyDB),
		legs:             legrepo.NewGormLegRepository(gormDB),
		legacy:           legacysql.NewRepository(legacyDB),
		orders:           orderrepo.NewGormOrderDirectory(gormDB),
	}
}

func (c *CompositionRoot) commitHooks() commands.CommitHooks {
	var recorder ports.TransitionRecorder
	if c.metrics != nil {
		recorder = c.metrics
	}
	return commands.NewCommitHooks(c.cache, recorder, c.logger)
}

func (c *CompositionRoot) legUoWFactory() commands.LegUoWFactory {
	return FuncLegUoWFactory(func() commands.LegUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateDispatchLegCommandHandler() commands.DispatchLegCommandHandler {
	return commands.NewDispatchLegCommandHandler(c.legUoWFactory(), c.orders, c.commitHooks())
}

func (c *CompositionRoot) CreateCompleteLegCommandHandler() commands.CompleteLegCommandHandler {
	return commands.NewCompleteLegCommandHandler(c.legUoWFactory(), c.orders, c.commitHooks())
}

func (c *CompositionRoot) CreateMarkLegReadyCommandHandler() commands.MarkLegReadyCommandHandler {
	return commands.NewMarkLegReadyCommandHandler(c.legUoWFactory(), c.orders, c.commitHooks())
}

func (c *CompositionRoot) CreateProvisionLegsCommandHandler() commands.ProvisionLegsCommandHandler {
	return commands.NewProvisionLegsCommandHandler(c.legUoWFactory(), c.orders, c.commitHooks())
}

func (c *CompositionRoot) CreateAdvanceLegacyDeliveryCommandHandler() commands.AdvanceLegacyDeliveryCommandHandler {
	var f commands.LegacyUoWFactory = FuncLegacyUoWFactory(func() commands.LegacyUoW {
		return c.legacyUoWFactory.Create()
	})
	return commands.NewAdvanceLegacyDeliveryCommandHandler(f, c.orders, c.commitHooks())
}

func (c *CompositionRoot) CreateGetTrackingQueryHandler() queries.GetTrackingQueryHandler {
	return queries.NewGetTrackingQueryHandler(c.legs, c.legacy, c.orders, c.cache, c.logger)
}

func (c *CompositionRoot) CreateGetLegsForOrderQueryHandler() queries.GetLegsForOrderQueryHandler {
	return queries.NewGetLegsForOrderQueryHandler(c.legs)
}

func (c *CompositionRoot) CreateGetLegsForActorQueryHandler() queries.GetLegsForActorQueryHandler {
	return queries.NewGetLegsForActorQueryHandler(c.orders, c.legs)
}

func (c *CompositionRoot) CreateGetStaleDispatchesQueryHandler() queries.GetStaleDispatchesQueryHandler {
	return queries.NewGetStaleDispatchesQueryHandler(c.legs)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var reporter jobs.StaleDispatchReporter
	if c.metrics != nil {
		reporter = c.metrics
	}
	return jobs.NewJobManager(
		c.CreateGetStaleDispatchesQueryHandler(),
		reporter,
		jobs.StaleDispatchSettings{
			Threshold: c.config.StaleDispatchAfter,
			Schedule:  c.config.StaleDispatchSchedule,
		},
		c.logger,
	)
}

type FuncLegUoWFactory func() commands.LegUoW

func (f FuncLegUoWFactory) Create() commands.LegUoW {
	return f()
}

type FuncLegacyUoWFactory func() commands.LegacyUoW

func (f FuncLegacyUoWFactory) Create() commands.LegacyUoW {
	return f()
}

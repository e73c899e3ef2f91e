package cmd

import (
	"log/slog"

	"github.com/T0MGL/0rdefy-sub010/internal/adapters/out/labels"
	"github.com/T0MGL/0rdefy-sub010/internal/adapters/out/postgres"
	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/commands"
	"github.com/T0MGL/0rdefy-sub010/internal/core/application/usecases/queries"
	"github.com/T0MGL/0rdefy-sub010/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the application's use cases to their infrastructure.
// All handlers share one GORM connection and one unit of work factory.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

// NewCompositionRoot creates the composition root over the given database connection.
func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreateSessionCommandHandler() commands.CreateSessionCommandHandler {
	return commands.NewCreateSessionCommandHandler(c.crossAggregateFactory())
}

func (c *CompositionRoot) CreateUpdatePickingCommandHandler() commands.UpdatePickingCommandHandler {
	return commands.NewUpdatePickingCommandHandler(c.sessionFactory())
}

func (c *CompositionRoot) CreateFinishPickingCommandHandler() commands.FinishPickingCommandHandler {
	return commands.NewFinishPickingCommandHandler(c.sessionFactory())
}

func (c *CompositionRoot) CreatePackUnitCommandHandler() commands.PackUnitCommandHandler {
	return commands.NewPackUnitCommandHandler(c.sessionFactory())
}

func (c *CompositionRoot) CreatePrintLabelCommandHandler() commands.PrintLabelCommandHandler {
	return commands.NewPrintLabelCommandHandler(c.crossAggregateFactory(), labels.NewEmitter())
}

func (c *CompositionRoot) CreateCompleteSessionCommandHandler() commands.CompleteSessionCommandHandler {
	return commands.NewCompleteSessionCommandHandler(c.crossAggregateFactory())
}

func (c *CompositionRoot) CreateCancelSessionCommandHandler() commands.CancelSessionCommandHandler {
	return commands.NewCancelSessionCommandHandler(c.crossAggregateFactory())
}

func (c *CompositionRoot) CreateGetEligibleOrdersQueryHandler() queries.GetEligibleOrdersQueryHandler {
	return queries.NewGetEligibleOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveSessionsQueryHandler() queries.GetActiveSessionsQueryHandler {
	return queries.NewGetActiveSessionsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetSessionQueryHandler() queries.GetSessionQueryHandler {
	return queries.NewGetSessionQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPickingListQueryHandler() queries.GetPickingListQueryHandler {
	return queries.NewGetPickingListQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPackingListQueryHandler() queries.GetPackingListQueryHandler {
	return queries.NewGetPackingListQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled jobs.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetActiveSessionsQueryHandler(),
		c.config.StaleSessionAfter,
		logger,
	)
}

func (c *CompositionRoot) sessionFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossAggregateFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

// FuncSessionUoWFactory adapts a closure to the commands.SessionUoWFactory port.
type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

// FuncUoWFactory adapts a closure to the commands.UoWFactory port.
type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

package cmd

import (
	"log"
	"log/slog"
	"os"

	httpadapter "medlogistics/internal/adapters/in/http"
	kafkaadapter "medlogistics/internal/adapters/out/kafka"
	"medlogistics/internal/adapters/out/memqueue"
	"medlogistics/internal/adapters/out/postgres/historyrepo"
	"medlogistics/internal/adapters/out/postgres/orderrepo"
	"medlogistics/internal/core/application/usecases/commands"
	"medlogistics/internal/core/application/usecases/queries"
	"medlogistics/internal/core/domain/model/workflow"
	"medlogistics/internal/core/ports"
	"medlogistics/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires the workflow graph, the storage adapters, the
// notification channel and the use case handlers together. Everything with
// shared state (the audit queue, the Kafka writer, the validator) is built
// exactly once here.
type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger

	validator   *workflow.Validator
	orderRepo   ports.OrderRepository
	historyRepo ports.HistoryRepository
	auditQueue  ports.AuditQueue
	notifier    ports.Notifier

	closers []func() error
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) *CompositionRoot {
	graph, err := workflow.DefaultGraph(config.RequireApproval)
	if err != nil {
		log.Fatalf("invalid workflow graph: %v", err)
	}

	root := &CompositionRoot{
		config:      config,
		gormDB:      gormDB,
		logger:      slog.New(slog.NewJSONHandler(os.Stdout, nil)),
		validator:   workflow.NewValidator(graph, workflow.DefaultConditions()),
		orderRepo:   orderrepo.NewGormOrderRepository(gormDB),
		historyRepo: historyrepo.NewGormHistoryRepository(gormDB),
		auditQueue:  memqueue.NewAuditQueue(),
	}

	if config.NotifyOnTransition && config.KafkaHost != "" {
		writer := kafkaadapter.NewWriter([]string{config.KafkaHost}, config.KafkaStatusChangedTopic)
		notifier := kafkaadapter.NewNotifier(writer)
		root.notifier = notifier
		root.closers = append(root.closers, notifier.Close)
	}

	return root
}

// Close releases resources held by long-lived adapters.
func (c *CompositionRoot) Close() {
	for _, closeFn := range c.closers {
		if err := closeFn(); err != nil {
			c.logger.Error("Failed to close adapter", "error", err)
		}
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateTransitionOrderCommandHandler() commands.TransitionOrderCommandHandler {
	return commands.NewTransitionOrderCommandHandler(
		c.orderRepo,
		c.historyRepo,
		c.auditQueue,
		c.notifier,
		c.validator,
		c.config.WorkflowConfig(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateRollbackOrderCommandHandler() commands.RollbackOrderCommandHandler {
	return commands.NewRollbackOrderCommandHandler(
		c.orderRepo,
		c.historyRepo,
		c.auditQueue,
		c.notifier,
		c.config.WorkflowConfig(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateUpdateOrderReadinessCommandHandler() commands.UpdateOrderReadinessCommandHandler {
	return commands.NewUpdateOrderReadinessCommandHandler(c.orderRepo)
}

func (c *CompositionRoot) CreateGetValidTransitionsQueryHandler() queries.GetValidTransitionsQueryHandler {
	return queries.NewGetValidTransitionsQueryHandler(c.orderRepo, c.validator)
}

func (c *CompositionRoot) CreateGetOrderHistoryQueryHandler() queries.GetOrderHistoryQueryHandler {
	return queries.NewGetOrderHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWorkflowStatsQueryHandler() queries.GetWorkflowStatsQueryHandler {
	return queries.NewGetWorkflowStatsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpadapter.Server {
	return httpadapter.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateTransitionOrderCommandHandler(),
		c.CreateRollbackOrderCommandHandler(),
		c.CreateUpdateOrderReadinessCommandHandler(),
		c.CreateGetValidTransitionsQueryHandler(),
		c.CreateGetOrderHistoryQueryHandler(),
		c.CreateGetWorkflowStatsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	auditRetryJob := jobs.NewAuditRetryJob(c.auditQueue, c.historyRepo, c.logger)
	autoAdvanceJob := jobs.NewAutoAdvanceJob(
		c.CreateTransitionOrderCommandHandler(),
		c.orderRepo,
		c.validator,
		c.logger,
	)
	return jobs.NewJobManager(auditRetryJob, autoAdvanceJob)
}

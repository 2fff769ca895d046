package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/evermart/order-system/order-service/application"
	"github.com/evermart/order-system/order-service/handlers"
	"github.com/evermart/order-system/order-service/infrastructure"
	sharedinfra "github.com/evermart/order-system/shared/infrastructure"
	"github.com/evermart/order-system/shared/logging"
	"github.com/evermart/order-system/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Logging
	Logger *zap.Logger

	// Repositories
	SagaRepository    *infrastructure.PostgresSagaRepository
	ProductRepository *infrastructure.PostgresProductRepository

	// Use Cases
	CreateProduct                  *application.CreateProduct
	GetProduct                     *application.GetProduct
	GetSagaState                   *application.GetSagaState
	GetSagaHistory                 *application.GetSagaHistory
	ProcessProductCreated          *application.ProcessProductCreated
	ProcessInventoryCheckRequested *application.ProcessInventoryCheckRequested
	ProcessInventoryCheckCompleted *application.ProcessInventoryCheckCompleted

	// HTTP Handlers
	OrderHandlers *handlers.OrderHandlers

	// Event Handlers
	OrderEventHandlers *handlers.OrderEventHandlers

	// Infrastructure
	EventPublisher  *sharedinfra.SNSPublisherAdapter
	EventSubscriber *sharedinfra.SQSSubscriberAdapter

	// Telemetry
	Telemetry         *telemetry.Telemetry
	TelemetryShutdown func()
}

func BuildDependencies(ctx context.Context, config *Config) (*Dependencies, error) {
	deps := &Dependencies{}

	logger, err := logging.NewLogger(config.ServiceName, config.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	deps.Logger = logger

	// Initialize telemetry first
	if config.Telemetry.Enabled {
		telConfig := telemetry.OrderServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
		tel, telemetryShutdown, err := telemetry.InitTelemetry(ctx, telConfig)
		if err != nil {
			log.Printf("Failed to initialize telemetry: %v", err)
			// Continue without telemetry rather than failing
		} else {
			deps.Telemetry = tel
			deps.TelemetryShutdown = telemetryShutdown
		}
	}

	// Initialize database
	db, err := sqlx.Connect("postgres", config.GetDatabaseURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	deps.DB = db

	// Initialize AWS infrastructure
	eventPublisher, err := sharedinfra.NewSNSPublisherAdapter(config.AWS.SNSTopicArn, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SNS publisher: %w", err)
	}
	deps.EventPublisher = eventPublisher

	eventSubscriber, err := sharedinfra.NewSQSSubscriberAdapter(config.AWS.SQSQueueURL, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create SQS subscriber: %w", err)
	}
	deps.EventSubscriber = eventSubscriber

	// Initialize repositories
	deps.SagaRepository = infrastructure.NewPostgresSagaRepository(db)
	deps.ProductRepository = infrastructure.NewPostgresProductRepository(db)

	// Initialize use cases
	deps.CreateProduct = application.NewCreateProduct(deps.ProductRepository, eventPublisher, logger)
	deps.GetProduct = application.NewGetProduct(deps.ProductRepository)
	deps.GetSagaState = application.NewGetSagaState(deps.SagaRepository)
	deps.GetSagaHistory = application.NewGetSagaHistory(deps.SagaRepository)
	deps.ProcessProductCreated = application.NewProcessProductCreated(deps.SagaRepository, eventPublisher, logger)
	deps.ProcessInventoryCheckRequested = application.NewProcessInventoryCheckRequested(deps.SagaRepository, logger)
	deps.ProcessInventoryCheckCompleted = application.NewProcessInventoryCheckCompleted(deps.SagaRepository, logger)

	// Initialize handlers
	deps.OrderHandlers = handlers.NewOrderHandlers(
		deps.CreateProduct,
		deps.GetProduct,
		deps.GetSagaState,
		deps.GetSagaHistory,
	)
	deps.OrderEventHandlers = handlers.NewOrderEventHandlers(
		deps.ProcessProductCreated,
		deps.ProcessInventoryCheckRequested,
		deps.ProcessInventoryCheckCompleted,
	)

	return deps, nil
}

// Close closes all dependencies
func (d *Dependencies) Close() error {
	var errs []error

	if d.DB != nil {
		if err := d.DB.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	if d.EventPublisher != nil {
		if err := d.EventPublisher.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event publisher: %w", err))
		}
	}

	if d.EventSubscriber != nil {
		if err := d.EventSubscriber.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close event subscriber: %w", err))
		}
	}

	if d.TelemetryShutdown != nil {
		d.TelemetryShutdown()
	}

	if d.Logger != nil {
		_ = d.Logger.Sync()
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors closing dependencies: %v", errs)
	}

	return nil
}

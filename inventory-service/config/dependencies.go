package config

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/evermart/order-system/inventory-service/application"
	"github.com/evermart/order-system/inventory-service/handlers"
	"github.com/evermart/order-system/inventory-service/infrastructure"
	sharedinfra "github.com/evermart/order-system/shared/infrastructure"
	"github.com/evermart/order-system/shared/logging"
	"github.com/evermart/order-system/shared/saga"
	"github.com/evermart/order-system/shared/telemetry"
)

type Dependencies struct {
	// Database
	DB *sqlx.DB

	// Logging
	Logger *zap.Logger

	// Repositories
	InventoryRepository *infrastructure.PostgresInventoryRepository

	// Saga state polling
	SagaStateClient *infrastructure.SagaStateClient
	SagaWaiter      *saga.Waiter

	// Use Cases
	AddInventoryItem *application.AddInventoryItem
	CheckInventory   *application.CheckInventory
	MarkItemChecked  *application.MarkItemChecked
	GetInventory     *application.GetInventory

	// HTTP Handlers
	InventoryHandlers *handlers.InventoryHandlers

	// Event Handlers
	InventoryEventHandlers *handlers.InventoryEventHandlers

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
		telConfig := telemetry.InventoryServiceConfig.WithOTLPEndpoint(config.Telemetry.OTLPEndpoint)
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

	// Initialize repositories and saga state polling
	deps.InventoryRepository = infrastructure.NewPostgresInventoryRepository(db)
	deps.SagaStateClient = infrastructure.NewSagaStateClient(config.OrderServiceURL, logger)
	deps.SagaWaiter = saga.NewWaiter(deps.SagaStateClient, logger)

	// Initialize use cases
	deps.AddInventoryItem = application.NewAddInventoryItem(deps.InventoryRepository, eventPublisher, logger)
	deps.CheckInventory = application.NewCheckInventory(deps.InventoryRepository, eventPublisher, logger)
	deps.MarkItemChecked = application.NewMarkItemChecked(deps.InventoryRepository, eventPublisher, deps.SagaWaiter, logger)
	deps.GetInventory = application.NewGetInventory(deps.InventoryRepository)

	// Initialize handlers
	deps.InventoryHandlers = handlers.NewInventoryHandlers(deps.GetInventory)
	deps.InventoryEventHandlers = handlers.NewInventoryEventHandlers(
		deps.AddInventoryItem,
		deps.CheckInventory,
		deps.MarkItemChecked,
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

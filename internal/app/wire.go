//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"connector/internal/gateway/gls"
	"connector/internal/gateway/shopify"
	"connector/internal/handlers/rest/shipment_create_post"
	"connector/internal/handlers/rest/shipments_bulk_post"
	"connector/internal/handlers/rest/tracking_get"
	"connector/internal/handlers/tasks/tracking_update"
	"connector/internal/pkg/config"

	deliverynoteRepo "connector/internal/repository/deliverynote"
	shipmentService "connector/internal/service/shipment"
	trackingService "connector/internal/service/tracking"

	"connector/pkg/background"
	"connector/pkg/logger"
	"connector/pkg/querier"
	"connector/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	TrackingInterval time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceTracking   ServiceTracking
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_create_post.Service
	shipments_bulk_post.Service
}

type ServiceTracking interface {
	tracking_get.Service
}

// InitializeApplication wires the HTTP service (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTrackingInterval,

		provideDeliveryNoteRepository,

		provideGLSGateway,
		provideShopifyGateway,

		provideServiceShipment,
		provideServiceTracking,

		provideTrackingUpdateTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceTracking), new(*trackingService.Tracking)),

		wire.Bind(new(shipmentService.Repository), new(*deliverynoteRepo.Repository)),
		wire.Bind(new(shipmentService.CarrierGateway), new(*gls.Gateway)),
		wire.Bind(new(shipmentService.FulfillmentGateway), new(*shopify.Gateway)),

		wire.Bind(new(trackingService.Repository), new(*deliverynoteRepo.Repository)),
		wire.Bind(new(trackingService.CarrierTracker), new(*gls.Gateway)),
		wire.Bind(new(trackingService.TxManager), new(*tx.Manager)),

		wire.Bind(new(tracking_update.Service), new(*trackingService.Tracking)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	ShipmentService *shipmentService.Shipment
}

// InitializeKafkaWorkerApp wires the Kafka worker (cmd/worker-note-submitted)
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideQuerier,

		provideDeliveryNoteRepository,

		provideGLSGateway,
		provideShopifyGateway,

		provideServiceShipment,

		wire.Bind(new(shipmentService.Repository), new(*deliverynoteRepo.Repository)),
		wire.Bind(new(shipmentService.CarrierGateway), new(*gls.Gateway)),
		wire.Bind(new(shipmentService.FulfillmentGateway), new(*shopify.Gateway)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideDeliveryNoteRepository(querier *querier.Querier) *deliverynoteRepo.Repository {
	return deliverynoteRepo.New(querier)
}

func provideGLSGateway(log logger.Logger, cfg *config.Config) *gls.Gateway {
	return gls.New(log, cfg.GLS)
}

func provideShopifyGateway(log logger.Logger, cfg *config.Config) *shopify.Gateway {
	return shopify.New(log, cfg.Shopify)
}

func provideServiceShipment(
	log logger.Logger,
	repository shipmentService.Repository,
	carrier shipmentService.CarrierGateway,
	fulfillment shipmentService.FulfillmentGateway,
) *shipmentService.Shipment {
	return shipmentService.New(log, repository, carrier, fulfillment)
}

func provideServiceTracking(
	log logger.Logger,
	repository trackingService.Repository,
	glsTracker trackingService.CarrierTracker,
	txManager trackingService.TxManager,
) *trackingService.Tracking {
	return trackingService.New(log, repository, glsTracker, txManager)
}

func provideTrackingInterval(cfg *config.Config) TrackingInterval {
	return TrackingInterval(cfg.Tasks.TrackingUpdateInterval)
}

func provideTrackingUpdateTask(
	log logger.Logger,
	trackingService tracking_update.Service,
	interval TrackingInterval,
) *tracking_update.TrackingUpdate {
	return tracking_update.NewTrackingUpdate(log, trackingService, time.Duration(interval))
}

func provideTaskList(
	trackingUpdateTask *tracking_update.TrackingUpdate,
) []background.Task {
	return []background.Task{
		trackingUpdateTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

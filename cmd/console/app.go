package main

import (
	"context"

	"github.com/gin-gonic/gin"

	"threadly/console/internal/app/config"
	"threadly/console/internal/app/domains/services/svauth"
	"threadly/console/internal/app/domains/services/svdelivery"
	"threadly/console/internal/app/domains/services/svproduction"
	"threadly/console/internal/app/domains/services/svquotation"
	"threadly/console/internal/app/domains/services/svvendor"
	"threadly/console/internal/app/domains/services/svverification"
	"threadly/console/internal/app/infra/notify"
	"threadly/console/internal/app/infra/session"
	"threadly/console/internal/app/infra/upstream"
	"threadly/console/internal/app/pkg/logger"
	"threadly/console/internal/app/refresh"
	"threadly/console/internal/app/server/handlers/admin"
	"threadly/console/internal/app/server/handlers/auth"
	"threadly/console/internal/app/server/handlers/order"
	"threadly/console/internal/app/server/handlers/rider"
	"threadly/console/internal/app/server/handlers/vendor"
	"threadly/console/internal/app/server/routers"
)

// App 应用实例，聚合 HTTP 引擎与后台刷新 Worker
type App struct {
	Engine        *gin.Engine
	RefreshWorker refresh.Worker
	Logger        logger.Logger
}

// InitializeApp 初始化应用，按依赖顺序手工装配
func InitializeApp(cfg *config.Config) (*App, func(), error) {
	log, err := logger.NewZapLogger(cfg.App.LogLevel)
	if err != nil {
		return nil, nil, err
	}

	sessions, err := session.NewStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB,
		cfg.Session.KeyPrefix, cfg.Session.TTL)
	if err != nil {
		return nil, nil, err
	}

	pubsub, err := notify.NewPubSub(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		sessions.Close()
		return nil, nil, err
	}

	// 上游核心 API 客户端与各领域适配器
	client := upstream.NewClient(&cfg.Upstream, sessions, log)
	vendorAPI := upstream.NewVendorAPI(client)
	riderAPI := upstream.NewRiderAPI(client)
	orderAPI := upstream.NewOrderAPI(client)
	deliveryAPI := upstream.NewDeliveryAPI(client)
	authAPI := upstream.NewAuthAPI(client)

	// 服务层
	verification := svverification.NewVerificationService(vendorAPI, riderAPI,
		pubsub, cfg.Refresh.Channel, cfg.Upload.MaxFileSize, log)
	production := svproduction.NewProductionService(orderAPI, vendorAPI, log)
	quotation := svquotation.NewQuotationService(orderAPI, log)
	delivery := svdelivery.NewDeliveryService(deliveryAPI, cfg.Upload.MaxFileSize, log)
	vendorService := svvendor.NewVendorService(vendorAPI, sessions, log)
	authService := svauth.NewAuthService(authAPI, sessions, pubsub, cfg.Refresh.Channel, log)

	// HTTP 层
	adminHandler := admin.NewAdminHandler(verification, production, quotation)
	vendorHandler := vendor.NewVendorHandler(vendorService, verification, cfg.Upload.MaxFileSize)
	riderHandler := rider.NewRiderHandler(delivery, cfg.Upload.MaxFileSize)
	orderHandler := order.NewOrderHandler(production)
	authHandler := auth.NewAuthHandler(authService)

	engine := routers.SetupRoutes(adminHandler, vendorHandler, riderHandler,
		orderHandler, authHandler, sessions, log)

	// 后台快照刷新 Worker：订阅验证状态变更频道，外加周期兜底刷新
	refreshFunc := func(ctx context.Context, kind string) error {
		switch kind {
		case "riders":
			return verification.RefreshRiders(ctx)
		case "orders":
			return production.Refresh(ctx)
		default:
			return verification.RefreshVendors(ctx)
		}
	}

	worker, err := refresh.NewWorkerInstance(
		context.Background(),
		"snapshot-refresh",
		&refresh.SubscriberConfig{
			Channel:      cfg.Refresh.Channel,
			TickInterval: cfg.Refresh.Interval,
			ErrorBackoff: cfg.Upstream.Timeout,
		},
		&refresh.ProcessorConfig{
			Concurrency: cfg.Refresh.Threads,
			BufferSize:  cfg.Refresh.BufferSize,
			Timeout:     cfg.Refresh.Timeout,
		},
		pubsub,
		refreshFunc,
		log,
	)
	if err != nil {
		pubsub.Close()
		sessions.Close()
		return nil, nil, err
	}

	cleanup := func() {
		pubsub.Close()
		sessions.Close()
		log.Sync()
	}

	return &App{
		Engine:        engine,
		RefreshWorker: worker,
		Logger:        log,
	}, cleanup, nil
}

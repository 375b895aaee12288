package http

import (
	"context"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	admissionApp "github.com/vistream-io/vistream/internal/application/admission"
	"github.com/vistream-io/vistream/internal/application/admission/guards"
	"github.com/vistream-io/vistream/internal/application/admission/usecases"
	entitlementApp "github.com/vistream-io/vistream/internal/application/entitlement"
	"github.com/vistream-io/vistream/internal/infrastructure/audit"
	"github.com/vistream-io/vistream/internal/infrastructure/cache"
	"github.com/vistream-io/vistream/internal/infrastructure/config"
	"github.com/vistream-io/vistream/internal/infrastructure/geoip"
	"github.com/vistream-io/vistream/internal/infrastructure/repository"
	"github.com/vistream-io/vistream/internal/infrastructure/streamregistry"
	"github.com/vistream-io/vistream/internal/interfaces/http/handlers"
	"github.com/vistream-io/vistream/internal/interfaces/http/middleware"
	"github.com/vistream-io/vistream/internal/shared/biztime"
	"github.com/vistream-io/vistream/internal/shared/logger"
)

// Router assembles the admission engine: repositories, registries,
// guards, use cases, and HTTP handlers.
type Router struct {
	engine      *gin.Engine
	cfg         *config.Config
	log         logger.Interface
	redisClient *redis.Client

	admissionHandler *handlers.AdmissionHandler
	healthHandler    *handlers.HealthHandler
	rateLimiter      *middleware.RateLimiter

	geoResolver *geoip.Resolver
}

// NewRouter wires every component from configuration and the open
// database handle.
func NewRouter(cfg *config.Config, db *gorm.DB, log logger.Interface) (*Router, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	log.Infow("redis connection established")

	clk := clock.New()
	inactivityWindow := time.Duration(cfg.Admission.InactivityWindowMinutes) * time.Minute
	heartbeatWindow := time.Duration(cfg.Admission.HeartbeatWindowMinutes) * time.Minute

	// Repositories and registries
	accountRepo := repository.NewAccountRepository(db, log)
	subscriptionRepo := repository.NewSubscriptionRepository(db, log)
	planRepo := repository.NewPlanRepository(db, log)
	contentRepo := repository.NewContentRepository(db, log)
	restrictionRepo := repository.NewRestrictionRepository(db, log)
	overrideRepo := repository.NewOverrideRepository(db, log)
	deviceRegistry := repository.NewDeviceSessionRepository(db, log)
	streamRegistry := streamregistry.NewRedisStreamRegistry(redisClient)

	// Entitlement resolution with its cache in front
	entitlementCache := cache.NewRedisEntitlementCache(
		redisClient,
		time.Duration(cfg.Admission.EntitlementCacheTTLSeconds)*time.Second,
		log,
	)
	resolver := entitlementApp.NewResolver(
		accountRepo,
		subscriptionRepo,
		planRepo,
		entitlementCache,
		clk,
		entitlementApp.TrialLimits{
			MaxDevices: cfg.Admission.TrialDeviceLimit,
			MaxStreams: cfg.Admission.TrialStreamLimit,
		},
		log,
	)

	geoResolver, err := geoip.NewResolver(cfg.GeoIP.DatabasePath, log)
	if err != nil {
		return nil, err
	}

	// Guards
	slots := guards.NewSessionSlotManager(deviceRegistry, inactivityWindow, clk, log)
	streams := guards.NewStreamConcurrencyGuard(streamRegistry, heartbeatWindow, clk, log)
	minor := guards.NewMinorContentGate(overrideRepo, clk, log)
	temporal := guards.NewTemporalAccessGuard(biztime.Location(), clk, log)
	geo := guards.NewGeographicRightsGuard(geoResolver, log)
	rights := guards.NewContentRightsGuard(clk)

	auditSink := audit.NewGormAuditSink(db, log)

	checkAdmission := usecases.NewCheckAdmissionUseCase(
		accountRepo,
		contentRepo,
		restrictionRepo,
		resolver,
		slots,
		streams,
		minor,
		temporal,
		geo,
		rights,
		auditSink,
		clk,
		log,
	)
	heartbeat := usecases.NewHeartbeatUseCase(resolver, streamRegistry, heartbeatWindow, clk, log)

	service := admissionApp.NewService(checkAdmission, heartbeat)

	return &Router{
		engine:           gin.New(),
		cfg:              cfg,
		log:              log,
		redisClient:      redisClient,
		admissionHandler: handlers.NewAdmissionHandler(service, log),
		healthHandler:    handlers.NewHealthHandler(db, redisClient),
		rateLimiter:      middleware.NewRateLimiter(redisClient, 100, 1*time.Minute),
		geoResolver:      geoResolver,
	}, nil
}

// SetupRoutes installs middleware and registers all routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.log))

	r.engine.GET("/health", r.healthHandler.Health)

	api := r.engine.Group("/api")
	api.Use(r.rateLimiter.Limit())

	playback := api.Group("/playback")
	playback.POST("/admission", r.admissionHandler.CheckAdmission)
	playback.POST("/heartbeat", r.admissionHandler.Heartbeat)
}

// GetEngine returns the underlying gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Close releases long-lived resources held by the router
func (r *Router) Close() error {
	if err := r.geoResolver.Close(); err != nil {
		return err
	}
	return r.redisClient.Close()
}

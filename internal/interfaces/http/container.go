package http

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	"gorm.io/gorm"

	"github.com/avestaexchange/avesta/internal/application/dashboard"
	appExchangeRate "github.com/avestaexchange/avesta/internal/application/exchangerate"
	appFAQ "github.com/avestaexchange/avesta/internal/application/faq"
	appTestimonial "github.com/avestaexchange/avesta/internal/application/testimonial"
	"github.com/avestaexchange/avesta/internal/application/user/usecases"
	"github.com/avestaexchange/avesta/internal/domain/exchangerate"
	"github.com/avestaexchange/avesta/internal/domain/faq"
	"github.com/avestaexchange/avesta/internal/domain/testimonial"
	"github.com/avestaexchange/avesta/internal/domain/user"
	"github.com/avestaexchange/avesta/internal/infrastructure/auth"
	"github.com/avestaexchange/avesta/internal/infrastructure/cache"
	"github.com/avestaexchange/avesta/internal/infrastructure/config"
	"github.com/avestaexchange/avesta/internal/infrastructure/marketdata"
	"github.com/avestaexchange/avesta/internal/infrastructure/metrics"
	"github.com/avestaexchange/avesta/internal/infrastructure/permission"
	"github.com/avestaexchange/avesta/internal/infrastructure/repository"
	"github.com/avestaexchange/avesta/internal/infrastructure/scheduler"
	"github.com/avestaexchange/avesta/internal/interfaces/http/handlers"
	"github.com/avestaexchange/avesta/internal/interfaces/http/middleware"
	"github.com/avestaexchange/avesta/internal/shared/biztime"
	"github.com/avestaexchange/avesta/internal/shared/goroutine"
	"github.com/avestaexchange/avesta/internal/shared/logger"
	"github.com/avestaexchange/avesta/internal/shared/services/markdown"
)

const (
	redisPingTimeout = 5 * time.Second
	warmTimeout      = 30 * time.Second
)

type repositories struct {
	users        user.Repository
	markups      exchangerate.MarkupRepository
	faqs         faq.Repository
	testimonials testimonial.Repository
}

type allHandlers struct {
	exchangeRate *handlers.ExchangeRateHandler
	faq          *handlers.FAQHandler
	testimonial  *handlers.TestimonialHandler
	auth         *handlers.AuthHandler
	user         *handlers.UserHandler
	dashboard    *handlers.DashboardHandler
	health       *handlers.HealthHandler
}

// Container wires infrastructure, use cases and handlers, and owns the
// background services that Shutdown stops.
type Container struct {
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos   *repositories
	metrics *metrics.Metrics
	market  *marketdata.BrsAPIClient

	rateEngine  *appExchangeRate.RateEngine
	rateManager *appExchangeRate.RateManager

	jwtSvc               *auth.JWTService
	enforcer             *permission.Enforcer
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	loginLimiter         *limiter.Limiter
	publicLimiter        *limiter.Limiter

	schedulerManager *scheduler.SchedulerManager

	hdlrs *allHandlers
}

// NewContainer builds every dependency of the HTTP server.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		db:  db,
		cfg: cfg,
		log: log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	if err := c.initAuth(); err != nil {
		c.closeRedis()
		return nil, err
	}
	c.initRates()
	if err := c.initScheduler(); err != nil {
		c.closeRedis()
		return nil, err
	}
	c.initHandlers()

	return c, nil
}

func (c *Container) initInfrastructure() error {
	if c.cfg.Redis.Enabled {
		client, err := initRedis(c.cfg, c.log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = &repositories{
		users:        repository.NewUserRepository(c.db, c.log),
		markups:      repository.NewMarkupRepository(c.db, c.log),
		faqs:         repository.NewFAQRepository(c.db),
		testimonials: repository.NewTestimonialRepository(c.db),
	}
	c.metrics = metrics.New()
	return nil
}

func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Redis.GetAddr(), err)
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())
	return client, nil
}

func (c *Container) initAuth() error {
	c.jwtSvc = auth.NewJWTService(c.cfg.Auth.JWT.Secret, c.cfg.Auth.JWT.AccessExpMinutes, c.cfg.Auth.JWT.RefreshExpDays)
	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.log)

	enforcer, err := permission.NewEnforcer(c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.InitDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to initialize permissions: %w", err)
	}
	c.enforcer = enforcer
	c.permissionMiddleware = middleware.NewPermissionMiddleware(enforcer, c.log)

	if c.loginLimiter, err = middleware.NewLimiter(c.cfg.RateLimit.Login, "login", c.redis); err != nil {
		return fmt.Errorf("failed to create login rate limiter: %w", err)
	}
	if c.publicLimiter, err = middleware.NewLimiter(c.cfg.RateLimit.Public, "public", c.redis); err != nil {
		return fmt.Errorf("failed to create public rate limiter: %w", err)
	}
	return nil
}

func (c *Container) initRates() {
	var store appExchangeRate.SnapshotStore
	if c.redis != nil && c.cfg.Rates.CacheBackend == "redis" {
		store = cache.NewRedisSnapshotStore(c.redis, cache.DefaultSnapshotKey, cache.DefaultSnapshotRetention)
	} else {
		store = cache.NewMemorySnapshotStore()
	}
	c.log.Infow("rate snapshot store selected", "backend", storeName(store))

	rateCache := appExchangeRate.NewRateCache(store, c.cfg.Rates.CacheTTL, c.cfg.Rates.Drift, nil, nil)
	defaults := appExchangeRate.DefaultMarkups{
		Buy:  c.cfg.Rates.DefaultBuyMarkup,
		Sell: c.cfg.Rates.DefaultSellMarkup,
	}
	c.market = marketdata.NewBrsAPIClient(c.cfg.Market, c.log)
	c.rateEngine = appExchangeRate.NewRateEngine(rateCache, c.market, c.repos.markups, defaults, c.metrics, c.log)
	c.rateManager = appExchangeRate.NewRateManager(c.repos.markups, c.rateEngine, defaults, c.log)
}

func storeName(store appExchangeRate.SnapshotStore) string {
	if _, ok := store.(*cache.RedisSnapshotStore); ok {
		return "redis"
	}
	return "memory"
}

func (c *Container) initScheduler() error {
	if c.cfg.Rates.RefreshInterval <= 0 {
		return nil
	}

	manager, err := scheduler.NewSchedulerManager(c.log)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	refresh := scheduler.JobFunc(func(ctx context.Context) (int, error) {
		rates, err := c.rateEngine.Refresh(ctx)
		return len(rates), err
	})
	if err := manager.RegisterRateRefreshJob(refresh, c.cfg.Rates.RefreshInterval); err != nil {
		return fmt.Errorf("failed to register rate refresh job: %w", err)
	}
	c.schedulerManager = manager
	return nil
}

func (c *Container) initHandlers() {
	renderer := markdown.NewRenderer()
	hasher := auth.NewBcryptPasswordHasher(c.cfg.Auth.Password.BcryptCost)

	loginUC := usecases.NewLoginUseCase(c.repos.users, hasher, c.jwtSvc, c.log)
	manageUsersUC := usecases.NewManageUsersUseCase(c.repos.users, hasher, c.log)
	metricsUC := dashboard.NewMetricsUseCase(
		c.repos.users.Count,
		c.repos.markups.CountActive,
		c.repos.testimonials.Count,
		c.repos.faqs.Count,
		c.log,
	)

	synthesizer := exchangerate.NewSeriesSynthesizer(nil)
	history := appExchangeRate.NewHistoryUseCase(c.rateEngine, synthesizer, biztime.NowUTC)
	converter := appExchangeRate.NewConvertUseCase(c.rateEngine)

	c.hdlrs = &allHandlers{
		exchangeRate: handlers.NewExchangeRateHandler(c.rateEngine, history, converter, c.rateManager, c.log),
		faq:          handlers.NewFAQHandler(appFAQ.NewService(c.repos.faqs, renderer, c.log), c.log),
		testimonial:  handlers.NewTestimonialHandler(appTestimonial.NewService(c.repos.testimonials, c.log), c.log),
		auth:         handlers.NewAuthHandler(loginUC, c.jwtSvc, manageUsersUC, c.log),
		user:         handlers.NewUserHandler(manageUsersUC, c.log),
		dashboard:    handlers.NewDashboardHandler(metricsUC, c.log),
		health: handlers.NewHealthHandler(map[string]handlers.HealthCheck{
			"database": c.pingDatabase,
			"rates":    c.rateEngine.Ready,
		}, c.log),
	}
}

func (c *Container) pingDatabase(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// StartBackground warms the rate snapshot and starts scheduled jobs.
func (c *Container) StartBackground() {
	if c.cfg.Rates.WarmOnStart {
		goroutine.SafeGo(c.log, "rate-warmup", func() {
			ctx, cancel := context.WithTimeout(context.Background(), warmTimeout)
			defer cancel()
			rates, err := c.rateEngine.FetchLatestRates(ctx)
			if err != nil {
				c.log.Warnw("rate warmup failed", "error", err)
				return
			}
			c.log.Infow("rate snapshot warmed", "pairs", len(rates))
		})
	}
	if c.schedulerManager != nil {
		c.schedulerManager.Start()
	}
}

// Shutdown stops background jobs and releases the redis connection.
func (c *Container) Shutdown() {
	if c.schedulerManager != nil {
		if err := c.schedulerManager.Stop(); err != nil {
			c.log.Warnw("failed to stop scheduler", "error", err)
		}
	}
	c.closeRedis()
}

func (c *Container) closeRedis() {
	if c.redis == nil {
		return
	}
	if err := c.redis.Close(); err != nil {
		c.log.Warnw("failed to close redis client", "error", err)
	}
	c.redis = nil
}

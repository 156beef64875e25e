package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Peytose/mixer-app-sub003/internal/config"
	"github.com/Peytose/mixer-app-sub003/internal/feed"
	"github.com/Peytose/mixer-app-sub003/internal/handler"
	"github.com/Peytose/mixer-app-sub003/internal/live"
	"github.com/Peytose/mixer-app-sub003/internal/middleware"
	"github.com/Peytose/mixer-app-sub003/internal/notification"
	"github.com/Peytose/mixer-app-sub003/internal/repository"
	"github.com/Peytose/mixer-app-sub003/internal/router"
	"github.com/Peytose/mixer-app-sub003/internal/scheduler"
	"github.com/Peytose/mixer-app-sub003/internal/service"
	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/logger"
)

const (
	migrationsDir    = "migrations"
	limiterSweepTick = 10 * time.Minute
)

type App struct {
	cfg         *config.Config
	log         logger.Logger
	db          *dbpg.DB
	redis       *redis.Client
	feed        *feed.PgFeed
	live        *live.Server
	scanLimiter *middleware.RateLimiter
	httpServer  *http.Server
	scheduler   *scheduler.Scheduler
}

func New(cfg *config.Config) (*App, error) {
	app := &App{cfg: cfg}

	log, err := logger.InitLogger(
		cfg.Logger.LogEngine(),
		"mixer",
		cfg.Gin.Mode,
		logger.WithLevel(cfg.Logger.LogLevel()),
	)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	app.log = log

	if err = app.runMigrations(); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	if err = app.initDB(); err != nil {
		return nil, fmt.Errorf("init db: %w", err)
	}

	if err = app.initRedis(); err != nil {
		return nil, fmt.Errorf("init redis: %w", err)
	}

	if err = app.initFeed(); err != nil {
		return nil, fmt.Errorf("init change feed: %w", err)
	}

	if err = app.initServices(); err != nil {
		return nil, fmt.Errorf("init services: %w", err)
	}

	return app, nil
}

func (a *App) initDB() error {
	db, err := dbpg.New(
		a.cfg.Postgres.DSN(),
		nil,
		&dbpg.Options{
			MaxOpenConns: a.cfg.Postgres.MaxOpenConns,
			MaxIdleConns: a.cfg.Postgres.MaxIdleConns,
		},
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}

	db.Master.SetConnMaxLifetime(a.cfg.Postgres.ConnMaxLifetime)

	if err := db.Master.PingContext(context.Background()); err != nil {
		return fmt.Errorf("pinging database: %w", err)
	}

	a.db = db
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connected",
		logger.String("host", a.cfg.Postgres.Host),
		logger.Int("port", a.cfg.Postgres.Port),
		logger.String("database", a.cfg.Postgres.Database),
	)

	return nil
}

func (a *App) initRedis() error {
	client := redis.NewClient(&redis.Options{
		Addr:     a.cfg.Redis.Addr,
		Password: a.cfg.Redis.Password,
		DB:       a.cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return fmt.Errorf("pinging redis: %w", err)
	}

	a.redis = client
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "redis connected",
		logger.String("addr", a.cfg.Redis.Addr),
	)
	return nil
}

func (a *App) initFeed() error {
	f, err := feed.NewPgFeed(
		a.cfg.Postgres.DSN(),
		a.cfg.Sync.MinReconnect,
		a.cfg.Sync.MaxReconnect,
		a.log,
	)
	if err != nil {
		return err
	}
	a.feed = f
	return nil
}

func (a *App) initServices() error {
	eventRepo := repository.NewEventRepo(a.db)
	guestRepo := repository.NewGuestRepo(a.db, a.log)
	requestRepo := repository.NewRequestRepo(a.db)
	favoriteRepo := repository.NewFavoriteRepo(a.db)
	hostRepo := repository.NewHostRepo(a.db)
	memberRepo := repository.NewMemberRepo(a.db, a.log)
	userRepo := repository.NewUserRepo(a.db)
	searchRepo := repository.NewSearchRepo(a.db)
	confirmations := repository.NewConfirmationStore(a.redis)

	n, err := notification.NewTelegramNotifier(a.cfg.Telegram.BotToken, a.log)
	if err != nil {
		return fmt.Errorf("init notifier: %w", err)
	}

	ttl := a.cfg.Confirmation.TTL
	eventService := service.NewEventService(eventRepo, guestRepo, requestRepo, favoriteRepo, userRepo, a.log)
	guestlistService := service.NewGuestlistService(eventRepo, guestRepo, requestRepo, userRepo, confirmations, n, ttl, a.log)
	membershipService := service.NewMembershipService(hostRepo, memberRepo, userRepo, confirmations, n, ttl, a.log)
	hostService := service.NewHostService(hostRepo, userRepo, a.log)
	userService := service.NewUserService(userRepo)
	searchService := service.NewSearchService(searchRepo)

	a.scheduler = scheduler.New(
		a.feed,
		a.cfg.Sync.ResyncInterval,
		a.log,
	)

	a.live = live.NewServer(
		a.feed,
		guestlistService,
		membershipService,
		eventService,
		a.cfg.Sync.Strategy(),
		a.log,
	)

	a.scanLimiter = middleware.NewRateLimiter(a.cfg.RateLimit.ScanPerSecond, a.cfg.RateLimit.ScanBurst)

	h := handler.NewHandler(eventService, guestlistService, membershipService, hostService, userService, searchService)
	r := router.InitRouter(
		a.cfg.Gin.Mode,
		h,
		router.Extras{
			Live:      a.live.Handle,
			ScanLimit: a.scanLimiter.Middleware(),
		},
		middleware.RequestID(),
		middleware.Actor(),
		middleware.RequestLogger(a.log),
		middleware.Recovery(a.log),
	)

	a.httpServer = &http.Server{
		Addr:         a.cfg.Server.Addr,
		Handler:      r,
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
		IdleTimeout:  a.cfg.Server.IdleTimeout,
	}

	return nil
}

func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go a.feed.Run(ctx)
	go a.scheduler.Start(ctx)
	go a.scanLimiter.Cleanup(ctx, limiterSweepTick)

	errCh := make(chan error, 1)
	go func() {
		a.log.LogAttrs(ctx, logger.InfoLevel, "HTTP server starting",
			logger.String("addr", a.httpServer.Addr),
		)
		if err := a.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("http server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutdown signal received")
	case err := <-errCh:
		stop()
		_ = a.shutdown()
		return err
	}

	return a.shutdown()
}

func (a *App) shutdown() error {
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "shutting down...")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		a.cfg.Server.WriteTimeout,
	)
	defer cancel()

	// Hijacked websocket connections are not tracked by http.Server.
	a.live.Close()
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "live sessions closed")

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "HTTP server stopped")

	if err := a.feed.Close(); err != nil {
		a.log.Warn("close change feed", logger.String("error", err.Error()))
	}

	if err := a.redis.Close(); err != nil {
		a.log.Warn("close redis", logger.String("error", err.Error()))
	}

	if err := a.db.Master.Close(); err != nil {
		return fmt.Errorf("close db: %w", err)
	}
	a.log.LogAttrs(context.Background(), logger.InfoLevel, "database connection closed")

	a.log.LogAttrs(context.Background(), logger.InfoLevel, "app stopped")

	return nil
}

func (a *App) runMigrations() error {
	db, err := sql.Open("postgres", a.cfg.Postgres.DSN())
	if err != nil {
		return fmt.Errorf("open db for migrations: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	if err := goose.Up(db, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	a.log.Info("migrations applied successfully")
	return nil
}

package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sattva/config"
	"sattva/cron"
	"sattva/database"
	catalogRepo "sattva/database/repository/catalog"
	"sattva/handlers"
	"sattva/middleware"
	"sattva/routes"
	"sattva/services/booking"
	"sattva/services/filter"
	"sattva/services/newsletter"
	"sattva/services/pages"
	"sattva/services/recipe"
	"sattva/services/session"
	"sattva/services/tasks"
	"sattva/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	defer logger.Sync() //nolint:errcheck

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	rootCtx, stop := context.WithCancel(context.Background())
	defer stop()

	deps := map[string]utils.Pinger{}

	// Session store.
	var store session.Store
	switch config.AppConfig.SessionStore {
	case "redis":
		store = session.NewRedisStore(utils.GetSessionCacheClient(), config.AppConfig.SessionTTL)
		logger.Info("main: session state in Redis", zap.String("addr", config.AppConfig.RedisAddr))
	default:
		mem := session.NewMemoryStore(config.AppConfig.SessionTTL)
		go sweepSessions(rootCtx, mem, logger)
		store = mem
		logger.Info("main: session state in memory")
	}
	deps["sessionStore"] = store
	locker := session.NewLocker()

	// Catalog.
	var catalog catalogRepo.CatalogRepository
	switch config.AppConfig.CatalogSource {
	case "mongo":
		if err := database.InitDB(rootCtx); err != nil {
			logger.Sugar().Fatalf("main: %v", err)
		}
		mongoCatalog := catalogRepo.NewMongoCatalogRepo(database.Database())
		if err := mongoCatalog.EnsureIndexes(rootCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to create catalog indexes: %v", err)
		}
		if err := mongoCatalog.Seed(rootCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to seed catalog: %v", err)
		}
		catalog = mongoCatalog
		deps["mongo"] = utils.PingFunc(database.Ping)
		logger.Info("main: catalog served from MongoDB", zap.String("database", config.AppConfig.DatabaseName))
	default:
		catalog = catalogRepo.NewStaticCatalogRepo()
	}

	media, err := utils.NewMediaResolver(logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize media: %v", err)
	}

	// Delayed tasks.
	mux := tasks.NewMux()
	var scheduler tasks.Scheduler
	var worker *cron.TaskWorker
	switch config.AppConfig.TaskBackend {
	case "asynq":
		opt := asynq.RedisClientOpt{
			Addr:     config.AppConfig.RedisAddr,
			Password: config.AppConfig.RedisPassword,
			DB:       config.AppConfig.RedisTaskDB,
		}
		scheduler = tasks.NewAsynqScheduler(opt)
		worker = cron.NewTaskWorker(opt, mux, logger)
	default:
		scheduler = tasks.NewTimerScheduler(mux, logger)
	}

	// services.
	recipeService := &recipe.DefaultRecipeService{
		Catalog: catalog,
		Store:   store,
		Locker:  locker,
		Logger:  logger,
	}
	bookingService := &booking.DefaultBookingService{
		Catalog:     catalog,
		Store:       store,
		Locker:      locker,
		Scheduler:   scheduler,
		Media:       media,
		Logger:      logger,
		SubmitDelay: config.AppConfig.BookingSubmitDelay,
	}
	bookingService.RegisterTasks(mux)
	shopService := &filter.DefaultShopService{
		Catalog: catalog,
		Store:   store,
		Locker:  locker,
		Media:   media,
		Logger:  logger,
	}
	journalService := &filter.DefaultJournalService{
		Catalog: catalog,
		Store:   store,
		Locker:  locker,
		Media:   media,
		Logger:  logger,
	}
	newsletterService := newsletter.NewNewsletterService(
		store,
		locker,
		scheduler,
		logger,
		config.AppConfig.NewsletterScrollThreshold,
		config.AppConfig.NewsletterAutoDismiss,
	)
	newsletterService.RegisterTasks(mux)

	if worker != nil {
		worker.Start(rootCtx)
	}

	monitor := utils.NewHealthMonitor(deps, 30*time.Second, logger)
	monitor.Start(rootCtx)

	// Assemble the handler bundle.
	handlerBundle := handlers.NewHandlerBundle(
		&handlers.HealthHandler{Monitor: monitor},
		handlers.NewPageHandler(pages.DefaultPageService{}),
		handlers.NewCatalogHandler(shopService, journalService),
		handlers.NewRecipeHandler(recipeService),
		handlers.NewBookingHandler(bookingService),
		handlers.NewNewsletterHandler(newsletterService),
		&handlers.SessionHandler{
			Store:        store,
			Booking:      bookingService,
			Newsletter:   newsletterService,
			SecureCookie: config.IsProduction(),
		},
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(utils.ErrorHandler())
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	routes.RegisterRoutes(router, handlerBundle, routes.RouteOptions{
		AllowedOrigins: config.AppConfig.CORSAllowedOrigin,
		SessionTTL:     config.AppConfig.SessionTTL,
		SecureCookie:   config.IsProduction(),
	})

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Errorf("main: server forced to shutdown: %v", err)
	}

	stop()
	if worker != nil {
		worker.Shutdown()
	}
	if err := scheduler.Close(); err != nil {
		logger.Sugar().Errorf("main: failed to close scheduler: %v", err)
	}
	if err := database.Close(ctx); err != nil {
		logger.Sugar().Errorf("main: failed to disconnect MongoDB: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}

// sweepSessions drops expired in-memory sessions once a minute.
func sweepSessions(ctx context.Context, store *session.MemoryStore, logger *zap.Logger) {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := store.Sweep(); n > 0 {
				logger.Debug("main: expired sessions swept", zap.Int("count", n))
			}
		}
	}
}

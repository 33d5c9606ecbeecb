package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/ggtips/gg-tips-backend/internal/config"
	"github.com/ggtips/gg-tips-backend/internal/facades"
	"github.com/ggtips/gg-tips-backend/internal/handlers"
	"github.com/ggtips/gg-tips-backend/internal/jwt"
	"github.com/ggtips/gg-tips-backend/internal/logger"
	"github.com/ggtips/gg-tips-backend/internal/middlewares"
	"github.com/ggtips/gg-tips-backend/internal/repositories"
	"github.com/ggtips/gg-tips-backend/internal/services"
	"github.com/ggtips/gg-tips-backend/internal/storage"
	"github.com/ggtips/gg-tips-backend/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A"
	buildDate    = "N/A"
	buildCommit  = "N/A"
)

// @title gg-tips API
// @version 1.0.0
// @description Backend for the gg-tips esports betting information site
// @host localhost:8080
// @BasePath /v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run initializes the logger, database, redis, kafka, object storage and
// the HTTP server, applies migrations, sets up routes, and handles
// graceful shutdown.
func run(ctx context.Context, cfg *config.AppConfig) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.Postgres.User, cfg.Postgres.Password, cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.DB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.Postgres.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Postgres.MaxIdleConns)

	// Apply migrations
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	if err := goose.Up(db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.Redis.Host, cfg.Redis.Port),
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for domain events
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Kafka.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Avatar object storage; the service degrades to profiles without
	// avatars when it is not configured.
	var avatars storage.AvatarStorage
	if cfg.MinIO.AccessKey != "" {
		avatars, err = storage.NewMinIO(cfg.MinIO)
		if err != nil {
			logger.Log.Errorw("MinIO initialization failed, avatars disabled", "error", err)
			avatars = nil
		}
	}

	// Token service
	tokens := jwt.New(cfg.JWT.SecretKey, cfg.JWT.Exp)

	// Outbound facades
	steamFacade := facades.NewSteamFacade(cfg.Steam.BaseURL, cfg.Steam.APIKey)
	cmsFacade := facades.NewCMSFacade(cfg.CMS.BaseURL, cfg.CMS.Token)
	mailerFacade := facades.NewMailerFacade(cfg.Mailer.BaseURL, cfg.Mailer.APIKey, cfg.Mailer.FromAddress, cfg.Mailer.ResetURL)
	matchesFacade := facades.NewMatchesFacade(cfg.Matches.BaseURL)

	// Repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	reviewReadRepo := repositories.NewReviewReadRepository(db)
	reviewWriteRepo := repositories.NewReviewWriteRepository(db)
	predReadRepo := repositories.NewPredictionReadRepository(db)
	predWriteRepo := repositories.NewPredictionWriteRepository(db)
	contentCache := repositories.NewCacheRepository(rdb, cfg.Redis.ContentTTL)
	steamCache := repositories.NewCacheRepository(rdb, cfg.Redis.SteamTTL)

	// Services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, mailerFacade, kafkaWriter, cfg.Kafka.UserTopic, cfg.JWT.RecoveryTTL)
	steamService := services.NewSteamService(userReadRepo, userWriteRepo, tokens, steamFacade, steamCache, kafkaWriter, cfg.Kafka.UserTopic)
	userService := services.NewUserService(userReadRepo, userWriteRepo, avatars)
	contentService := services.NewContentService(cmsFacade, contentCache)
	reviewService := services.NewReviewService(reviewReadRepo, reviewWriteRepo, predReadRepo, predWriteRepo, kafkaWriter, cfg.Kafka.ReviewTopic)

	// Metrics
	metrics, err := middlewares.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		return err
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(metrics.Middleware())

	authMiddleware := middlewares.AuthMiddleware(tokens, userReadRepo)
	txMiddleware := middlewares.TxMiddleware(db)

	r.Route("/v1", func(r chi.Router) {
		// Public routes
		r.With(txMiddleware).Post("/users", handlers.NewRegisterHandler(authService))
		r.Post("/auth/basic", handlers.NewLoginHandler(authService))
		r.With(txMiddleware).Post("/auth/steam", handlers.NewSteamAuthHandler(steamService, tokens, userReadRepo))
		r.Post("/auth/forgot-password", handlers.NewForgotPasswordHandler(authService))
		r.With(txMiddleware).Post("/auth/reset-password", handlers.NewResetPasswordHandler(authService))

		r.Get("/users/{username}", handlers.NewUserProfileHandler(userService))

		r.Get("/bookmakers", handlers.NewListBookmakersHandler(contentService))
		r.Get("/bookmakers/{slug}", handlers.NewGetBookmakerHandler(contentService, reviewService))
		r.Get("/bookmakers/{slug}/reviews", handlers.NewListReviewsHandler(reviewService, contentService))
		r.Get("/games", handlers.NewListGamesHandler(contentService))
		r.Get("/guides", handlers.NewListGuidesHandler(contentService))
		r.Get("/guides/{slug}", handlers.NewGetGuideHandler(contentService))
		r.Get("/matches", handlers.NewListMatchesHandler(matchesFacade))
		r.Get("/matches/{id}", handlers.NewGetMatchHandler(matchesFacade))
		r.Get("/rankings", handlers.NewRankingsHandler(matchesFacade))
		r.Get("/predictions", handlers.NewListPredictionsHandler(reviewService))

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Delete("/auth", handlers.NewLogoutHandler(authService))
			r.Get("/users/me", handlers.NewMeHandler(userService))
			r.Put("/users/me", handlers.NewUpdateMeHandler(userService))
			r.Post("/users/me/avatar", handlers.NewAvatarHandler(userService))
			r.With(txMiddleware).Post("/bookmakers/{slug}/reviews", handlers.NewCreateReviewHandler(reviewService, contentService))
			r.With(txMiddleware).Post("/predictions", handlers.NewCreatePredictionHandler(reviewService))
		})
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.Host, cfg.Port)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.Host, cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

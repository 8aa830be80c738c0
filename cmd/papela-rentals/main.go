package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aaravmahajanofficial/papela-rentals/internal/api/handlers"
	"github.com/aaravmahajanofficial/papela-rentals/internal/api/middleware"
	"github.com/aaravmahajanofficial/papela-rentals/internal/cache"
	"github.com/aaravmahajanofficial/papela-rentals/internal/config"
	"github.com/aaravmahajanofficial/papela-rentals/internal/health"
	"github.com/aaravmahajanofficial/papela-rentals/internal/metrics"
	repository "github.com/aaravmahajanofficial/papela-rentals/internal/repositories"
	service "github.com/aaravmahajanofficial/papela-rentals/internal/services"
	"github.com/aaravmahajanofficial/papela-rentals/internal/telemetry"
	"github.com/aaravmahajanofficial/papela-rentals/pkg/sendgrid"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracer, err := telemetry.InitTracer(ctx, &cfg.Otel, cfg.Env)
	if err != nil {
		slog.Error("❌ Error initializing tracing", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Identity storage and login throttling: redis when configured, process memory otherwise
	var (
		redisClient   *redis.Client
		storage       cache.Cache
		rateLimitRepo repository.RateLimitRepository
	)

	if cfg.RedisConnect.Enabled {
		redisClient, err = repository.NewRedisClient(&cfg.RedisConnect)
		if err != nil {
			slog.Error("❌ Error accessing the redis instance", slog.String("error", err.Error()))
			os.Exit(1)
		}

		storage = cache.NewRedisCache(redisClient, &cfg.Cache)
		rateLimitRepo = repository.NewRateLimitRepo(redisClient, &cfg.RateConfig)
	} else {
		storage = cache.NewMemoryCache(&cfg.Cache)
		rateLimitRepo = repository.NewMemoryRateLimitRepo(&cfg.RateConfig)
	}

	defer closeIdentityStorage(storage, redisClient)

	// Orders and inquiries: postgres when configured, reference data otherwise
	var (
		db          *sql.DB
		orderRepo   repository.OrderRepository
		inquiryRepo repository.InquiryRepository
	)

	if cfg.Database.Enabled {
		db, err = repository.NewDB(ctx, &cfg.Database)
		if err != nil {
			slog.Error("❌ Error accessing the database", slog.String("error", err.Error()))
			os.Exit(1)
		}

		if err := repository.EnsureSchema(ctx, db); err != nil {
			slog.Error("❌ Error preparing the database schema", slog.String("error", err.Error()))
			os.Exit(1)
		}

		orderRepo = repository.NewLayeredOrderRepo(repository.NewReferenceOrderRepo(), repository.NewPostgresOrderRepo(db))
		inquiryRepo = repository.NewPostgresInquiryRepo(db)
	} else {
		orderRepo = repository.NewReferenceOrderRepo()
		inquiryRepo = repository.NewMemoryInquiryRepo()
	}

	defer func() {
		if db == nil {
			return
		}

		if err := db.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	var emailService sendgrid.EmailService
	if cfg.SendGrid.APIKey != "" {
		emailService = sendgrid.NewEmailService(cfg.SendGrid.APIKey, cfg.SendGrid.FromEmail, cfg.SendGrid.FromName)
	} else {
		emailService = sendgrid.NewLogEmailService(logger)
	}

	jwtKey := []byte(cfg.Security.JWTKey)
	productRepo := repository.NewCatalogRepo()

	registry := service.NewVisitorRegistry(
		repository.NewMockCredentialRepo(),
		orderRepo,
		storage,
		service.SessionOptions{StoragePrefix: cfg.Session.StoragePrefix, AuthLatency: cfg.Session.AuthLatency},
		cfg.Session.IdleTTL,
	)
	go registry.Run(ctx, cfg.Session.PruneInterval)

	tokenIssuer := service.NewTokenIssuer(jwtKey, cfg.Security.SessionTokenTTL)
	accountService := service.NewAccountService(rateLimitRepo)
	sessionHandler := handlers.NewSessionHandler(registry, tokenIssuer, accountService)
	cartService := service.NewCartService(productRepo)
	cartHandler := handlers.NewCartHandler(registry, cartService)
	checkoutService := service.NewCheckoutService(cfg.Session.CheckoutLatency)
	orderHandler := handlers.NewOrderHandler(registry, checkoutService)
	catalogService := service.NewCatalogService(productRepo)
	reviewService := service.NewReviewService(repository.NewMemoryReviewRepo(), productRepo)
	productHandler := handlers.NewProductHandler(registry, catalogService, reviewService)
	contactService := service.NewContactService(inquiryRepo, emailService, cfg.SendGrid.InboxEmail)
	contactHandler := handlers.NewContactHandler(contactService)
	sessionMiddleware := middleware.NewSessionMiddleware(jwtKey)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error creating health checks", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.Info("storage initialized",
		slog.String("env", cfg.Env),
		slog.String("version", health.Version),
		slog.Bool("redis", cfg.RedisConnect.Enabled),
		slog.Bool("postgres", cfg.Database.Enabled),
	)

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/sessions", sessionHandler.CreateSession())
	routerMux.HandleFunc("GET /api/v1/session", sessionMiddleware.RequireSession(sessionHandler.GetSession()))
	routerMux.HandleFunc("POST /api/v1/session/login", sessionMiddleware.RequireSession(sessionHandler.Login()))
	routerMux.HandleFunc("POST /api/v1/session/register", sessionMiddleware.RequireSession(sessionHandler.Register()))
	routerMux.HandleFunc("POST /api/v1/session/logout", sessionMiddleware.RequireSession(sessionHandler.Logout()))
	routerMux.HandleFunc("PATCH /api/v1/session/profile", sessionMiddleware.RequireSession(sessionHandler.UpdateProfile()))
	routerMux.HandleFunc("GET /api/v1/cart", sessionMiddleware.RequireSession(cartHandler.GetCart()))
	routerMux.HandleFunc("POST /api/v1/cart/items", sessionMiddleware.RequireSession(cartHandler.AddItem()))
	routerMux.HandleFunc("PUT /api/v1/cart/items/{id}", sessionMiddleware.RequireSession(cartHandler.UpdateQuantity()))
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", sessionMiddleware.RequireSession(cartHandler.RemoveItem()))
	routerMux.HandleFunc("DELETE /api/v1/cart", sessionMiddleware.RequireSession(cartHandler.ClearCart()))
	routerMux.HandleFunc("POST /api/v1/checkout", sessionMiddleware.RequireSession(orderHandler.Checkout()))
	routerMux.HandleFunc("GET /api/v1/orders", sessionMiddleware.RequireSession(orderHandler.ListOrders()))
	routerMux.HandleFunc("GET /api/v1/orders/{id}", sessionMiddleware.RequireSession(orderHandler.GetOrder()))
	routerMux.HandleFunc("GET /api/v1/products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/categories", productHandler.ListCategories())
	routerMux.HandleFunc("GET /api/v1/products/{id}/reviews", productHandler.ListReviews())
	routerMux.HandleFunc("POST /api/v1/products/{id}/reviews", sessionMiddleware.RequireSession(productHandler.CreateReview()))
	routerMux.HandleFunc("POST /api/v1/contact", contactHandler.SubmitInquiry())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining. Metrics sits directly on the mux so it can read the matched pattern.
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = middleware.CORS(&cfg.CORS)(handler)
	handler = otelhttp.NewHandler(handler, cfg.Otel.ServiceName)

	// Setup http server
	server := http.Server{
		Addr:         cfg.Addr,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	go func() {

		if err := server.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if err := shutdownTracer(shutdownCtx); err != nil {
		slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
	}
}

// closeIdentityStorage closes the storage and then the redis client, which
// the storage shares with the rate limiter. redisClient is nil in memory mode.
func closeIdentityStorage(storage cache.Cache, redisClient *redis.Client) {

	if err := storage.Close(); err != nil {
		slog.Error("⚠️ Error closing identity storage", slog.String("error", err.Error()))
	}

	if redisClient == nil {
		return
	}

	if err := redisClient.Close(); err != nil {
		slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Redis connection closed")
	}
}

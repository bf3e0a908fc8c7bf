// cmd/odyssea-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/Tsilavina4274/odyssea/internal/api/rest/v1"
	"github.com/Tsilavina4274/odyssea/internal/app"
	"github.com/Tsilavina4274/odyssea/internal/domain/documents"
	"github.com/Tsilavina4274/odyssea/internal/domain/realtime"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/connector"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/hub"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/metrics"
	"github.com/Tsilavina4274/odyssea/internal/infrastructure/persistence"
	"github.com/Tsilavina4274/odyssea/internal/pkg/config"
	"github.com/Tsilavina4274/odyssea/internal/pkg/logger"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	services   v1.Services
	hub        *hub.Hub
	collectors *metrics.Collectors
	registry   *prometheus.Registry
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := persistence.Migrate(db); err != nil {
		return nil, err
	}
	log.Info("Database migrations completed successfully")

	repos, err := initializeRepositories(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	// Initialize metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metricCollectors, err := metrics.NewCollectors(registry)
	if err != nil {
		return nil, fmt.Errorf("failed to register metrics: %w", err)
	}

	// The hub is built once the messaging service exists, the authorizer is resolved then
	authorizer := &deferredAuthorizer{}
	realtimeHub := hub.NewHub(authorizer, metricCollectors, log, hub.OptionsFromSettings(cfg.Realtime))
	publisher := v1.NewRecordPublisher(realtimeHub)

	// Initialize connectors
	ctx := context.Background()
	documentConnector, err := initializeDocumentConnector(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize connectors: %w", err)
	}

	services, err := initializeApplicationServices(cfg, repos, documentConnector, publisher, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}
	authorizer.resolve(app.NewSubscriptionAuthorizer(services.MessagingService))

	return &appDependencies{
		services:   services,
		hub:        realtimeHub,
		collectors: metricCollectors,
		registry:   registry,
	}, nil
}

// deferredAuthorizer breaks the cycle between the hub, which publishes for the
// services, and the messaging service, which authorizes hub subscriptions.
type deferredAuthorizer struct {
	next realtime.SubscriptionAuthorizer
}

func (a *deferredAuthorizer) resolve(next realtime.SubscriptionAuthorizer) {
	a.next = next
}

func (a *deferredAuthorizer) Authorize(ctx context.Context, userID, topic string) error {
	if a.next == nil {
		return errors.New("subscription authorizer not ready")
	}
	return a.next.Authorize(ctx, userID, topic)
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.New()
	r.Use(gin.Recovery(), v1.RequestLogger(log), v1.Metrics(deps.collectors))

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: !allowsAnyOrigin(cfg.CORS.AllowOrigins),
		MaxAge:           12 * time.Hour,
	}))

	// Setup API routes
	realtimeHandler := v1.NewRealtimeHandler(deps.services.AuthService, deps.hub, cfg.Realtime, log)
	v1.SetupRoutes(r, deps.services, realtimeHandler)

	r.GET("/metrics", gin.WrapH(metrics.Handler(deps.registry)))
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "realtime_connections": deps.hub.Connections()})
	})

	// Serve OpenAPI document
	r.GET(v1.BasePath+"/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/odyssea.yaml")
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	// Websocket connections are hijacked and not tracked by Shutdown
	deps.hub.Close()
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

func allowsAnyOrigin(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// initializeDocumentConnector sets up the Azure document connector. Documents are disabled without one.
func initializeDocumentConnector(ctx context.Context, cfg *config.RestConfig, log logger.Logger) (documents.DocumentConnector, error) {
	if cfg.DocumentConnector == nil {
		log.Warn("No document connector configured, document upload is disabled")
		return nil, nil
	}
	if cfg.DocumentConnector.CloudProvider != config.AzureCloudProvider {
		return nil, fmt.Errorf("unsupported cloud provider: %s (only Azure is supported)", cfg.DocumentConnector.CloudProvider)
	}

	documentConnector, err := connector.NewAzureDocumentConnector(ctx, cfg.DocumentConnector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create Azure document connector: %w", err)
	}

	log.Info("Azure document connector initialized successfully")
	return documentConnector, nil
}

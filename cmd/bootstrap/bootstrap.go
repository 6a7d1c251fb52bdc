package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hospital-portal/config"
	deliveryHttp "hospital-portal/internal/delivery/http"
	"hospital-portal/internal/delivery/http/handler"
	"hospital-portal/internal/delivery/http/middleware"
	gatewayImpl "hospital-portal/internal/gateway"
	"hospital-portal/internal/infrastructure/cache"
	"hospital-portal/internal/infrastructure/upstream"
	"hospital-portal/internal/service"
	"hospital-portal/internal/usecase"
	"hospital-portal/pkg/token"
	"hospital-portal/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	server, err := initializeServer(cfg, redisClient)
	if err != nil {
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, redisClient *redis.Client) (*http.Server, error) {
	log := logrus.StandardLogger()

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize upstream service clients
	usersClient, err := upstream.New(upstream.Config{BaseURL: cfg.Upstream.UsersURL, Timeout: cfg.Upstream.RequestTimeout, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("users service client: %w", err)
	}
	bookingsClient, err := upstream.New(upstream.Config{BaseURL: cfg.Upstream.BookingsURL, Timeout: cfg.Upstream.RequestTimeout, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("bookings service client: %w", err)
	}
	inventoryClient, err := upstream.New(upstream.Config{BaseURL: cfg.Upstream.InventoryURL, Timeout: cfg.Upstream.RequestTimeout, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("inventory service client: %w", err)
	}
	ordersClient, err := upstream.New(upstream.Config{BaseURL: cfg.Upstream.OrdersURL, Timeout: cfg.Upstream.RequestTimeout, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("orders service client: %w", err)
	}
	deliveriesClient, err := upstream.New(upstream.Config{BaseURL: cfg.Upstream.DeliveriesURL, Timeout: cfg.Upstream.RequestTimeout, Logger: log})
	if err != nil {
		return nil, fmt.Errorf("deliveries service client: %w", err)
	}

	// Initialize gateways
	authGateway := gatewayImpl.NewAuthGateway(usersClient)
	usersGateway := gatewayImpl.NewUsersGateway(usersClient)
	bookingGateway := gatewayImpl.NewBookingGateway(bookingsClient)
	inventoryGateway := gatewayImpl.NewInventoryGateway(inventoryClient)
	ordersGateway := gatewayImpl.NewOrdersGateway(ordersClient)
	deliveriesGateway := gatewayImpl.NewDeliveriesGateway(deliveriesClient)

	// Initialize per-session state stores
	wizardStore := service.NewWizardStore(redisClient, log, cfg.Session.StateTTL)
	cartStore := service.NewCartStore(redisClient, log, cfg.Session.StateTTL)
	viewCache := service.NewViewCache(redisClient, log, cfg.Session.StateTTL)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, authGateway, usersGateway)
	wizardUsecase := usecase.NewBookingWizardUsecase(log, bookingGateway, wizardStore, viewCache)
	appointmentUsecase := usecase.NewAppointmentUsecase(log, bookingGateway, viewCache)
	slotUsecase := usecase.NewSlotUsecase(log, bookingGateway, viewCache)
	productUsecase := usecase.NewProductUsecase(log, inventoryGateway)
	cartUsecase := usecase.NewCartUsecase(log, inventoryGateway, ordersGateway, cartStore)
	orderUsecase := usecase.NewOrderUsecase(log, ordersGateway, inventoryGateway, deliveriesGateway)
	addressUsecase := usecase.NewAddressUsecase(log, deliveriesGateway, viewCache)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	wizardHandler := handler.NewWizardHandler(wizardUsecase, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase)
	slotHandler := handler.NewSlotHandler(slotUsecase, customValidator)
	productHandler := handler.NewProductHandler(productUsecase)
	cartHandler := handler.NewCartHandler(cartUsecase, customValidator)
	orderHandler := handler.NewOrderHandler(orderUsecase)
	addressHandler := handler.NewAddressHandler(addressUsecase, customValidator)

	// Initialize middleware
	decoder := token.NewJWTDecoder()
	authMiddleware := middleware.NewAuthMiddleware(decoder, cfg.Session.TokenCookies)
	guardMiddleware := middleware.NewGuardMiddleware(decoder, cfg.Session.TokenCookies, cfg.Session.RoleCookie)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(
		cfg.App.StaticDir,
		authHandler,
		wizardHandler,
		appointmentHandler,
		slotHandler,
		productHandler,
		cartHandler,
		orderHandler,
		addressHandler,
		authMiddleware,
		guardMiddleware,
		corsMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, nil
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (redis, etc.)
func (app *App) Close() {
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}

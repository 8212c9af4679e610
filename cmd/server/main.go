package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/pesio-ai/be-hotel-bookings/internal/client"
	"github.com/pesio-ai/be-hotel-bookings/internal/config"
	"github.com/pesio-ai/be-hotel-bookings/internal/handler"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/auth"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/database"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/logger"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/natsclient"
	"github.com/pesio-ai/be-hotel-bookings/internal/platform/obs"
	"github.com/pesio-ai/be-hotel-bookings/internal/repository"
	"github.com/pesio-ai/be-hotel-bookings/internal/service"
	"github.com/pesio-ai/be-hotel-bookings/internal/worker"
	bookingsv1 "github.com/pesio-ai/be-hotel-bookings/proto/bookings/v1"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:       cfg.Service.LogLevel,
		Environment: cfg.Service.Environment,
		ServiceName: cfg.Service.Name,
		Version:     cfg.Service.Version,
	})

	log.Info().
		Str("service", cfg.Service.Name).
		Str("version", cfg.Service.Version).
		Str("environment", cfg.Service.Environment).
		Msg("Starting Hotel Bookings Service")

	// Create context
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize tracing
	shutdownTracer, err := obs.InitTracer(ctx, obs.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Service.Name,
		Version:     cfg.Service.Version,
		Environment: cfg.Service.Environment,
		SampleRatio: cfg.Tracing.SampleRatio,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize tracing")
	}

	// Initialize database
	db, err := database.New(ctx, database.Config{
		Host:        cfg.Database.Host,
		Port:        cfg.Database.Port,
		User:        cfg.Database.User,
		Password:    cfg.Database.Password,
		Database:    cfg.Database.Database,
		SSLMode:     cfg.Database.SSLMode,
		MaxConns:    cfg.Database.MaxConns,
		MinConns:    cfg.Database.MinConns,
		MaxConnTime: cfg.Database.MaxConnTime,
		MaxIdleTime: cfg.Database.MaxIdleTime,
		HealthCheck: cfg.Database.HealthCheck,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to database")
	}
	defer db.Close()
	log.Info().Msg("Database connection established")

	if cfg.Database.AutoMigrate {
		applied, err := repository.Migrate(ctx, db)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to apply migrations")
		}
		log.Info().Strs("applied", applied).Msg("Migrations up to date")
	}

	// Initialize repositories
	store := repository.NewPostgresStore(db)
	catalog := repository.NewRoomCatalogRepository(db)

	// Notifications (optional)
	var notifier service.NotificationPublisherInterface
	if cfg.NATS.URL != "" {
		nc, err := natsclient.Connect(natsclient.Config{
			URL:        cfg.NATS.URL,
			ClientName: cfg.Service.Name,
			JetStream:  cfg.NATS.JetStream,
		})
		if err != nil {
			log.Warn().Err(err).Msg("NATS unavailable; notifications disabled")
		} else {
			defer nc.Close()
			notifier = client.NewNotificationPublisher(nc, log.Component("notifications").Logger)
			log.Info().Str("url", cfg.NATS.URL).Msg("NATS notification publisher initialized")
		}
	}

	// Automated slip verification
	slipOK := client.NewSlipOKClient(client.SlipOKConfig{
		APIURL:        cfg.SlipOK.APIURL,
		BranchID:      cfg.SlipOK.BranchID,
		APIKey:        cfg.SlipOK.APIKey,
		PublicBaseURL: cfg.SlipOK.PublicBaseURL,
		Timeout:       cfg.SlipOK.Timeout,
	})

	var verifyWorker *worker.VerificationWorker
	handleJob := func(ctx context.Context, job client.VerificationJob) error {
		return verifyWorker.Handle(ctx, job)
	}

	var (
		dispatcher service.VerificationDispatcher
		queue      *client.VerificationQueue
		inProcess  *client.InProcessDispatcher
	)
	switch {
	case !slipOK.Configured():
		log.Warn().Msg("SlipOK not configured; slips wait for admin review")
	case cfg.RabbitMQ.URL != "":
		queue, err = client.NewVerificationQueue(client.RabbitMQConfig{
			URL:        cfg.RabbitMQ.URL,
			Exchange:   cfg.RabbitMQ.Exchange,
			Queue:      cfg.RabbitMQ.Queue,
			RoutingKey: cfg.RabbitMQ.RoutingKey,
			Prefetch:   cfg.RabbitMQ.Prefetch,
		}, log.Component("verification-queue").Logger)
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to connect to RabbitMQ")
		}
		defer queue.Close()
		dispatcher = queue
	default:
		inProcess = client.NewInProcessDispatcher(cfg.RabbitMQ.Workers, handleJob, log.Component("verification").Logger)
		dispatcher = inProcess
	}

	// Initialize services
	calculator, err := service.NewDiscountCalculator(cfg.Booking.DepositRate)
	if err != nil {
		log.Fatal().Err(err).Msg("Invalid deposit rate")
	}
	auditService := service.NewAuditService(store, time.Now, log)
	slipWorkflow := service.NewSlipWorkflow(store, auditService, dispatcher, notifier, time.Now, service.SlipWorkflowConfig{
		URLPrefix:          cfg.Booking.SlipURLPrefix,
		MaxSlipsPerBooking: cfg.Booking.MaxSlipsPerBooking,
	}, log)
	bookingService := service.NewBookingService(store, catalog, auditService, calculator, notifier, time.Now, service.BookingPolicy{
		CancellationWindowDays: cfg.Booking.CancellationWindowDays,
		Location:               cfg.Location(),
	}, log)

	verifyWorker = worker.NewVerificationWorker(slipOK, slipWorkflow, cfg.SlipOK.Timeout, log.Component("verification"))
	if queue != nil {
		go func() {
			if err := queue.Consume(ctx, handleJob); err != nil {
				log.Error().Err(err).Msg("Verification consumer stopped")
			}
		}()
		log.Info().Str("queue", cfg.RabbitMQ.Queue).Msg("Verification consumer started")
	}

	// Scheduled maintenance
	scheduler, err := worker.NewScheduler(worker.SchedulerConfig{
		PurgeSpec:         cfg.Retention.PurgeSpec,
		RetentionDays:     cfg.Retention.AuditDays,
		RedispatchSpec:    cfg.Retention.RedispatchSpec,
		StalePendingAfter: cfg.Retention.StalePendingAfter,
	}, auditService, slipWorkflow, log.Component("scheduler"))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to configure scheduler")
	}
	scheduler.Start()

	// Setup HTTP routes
	verifier := auth.NewVerifier(cfg.Auth.JWTSecret)
	if cfg.Service.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery(), handler.RequestLogger(log.Component("http")))
	router.Use(handler.CORS(cfg.Server.CORSOrigins))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	httpHandler := handler.NewHTTPHandler(bookingService, slipWorkflow, auditService, log)
	httpHandler.Register(router, verifier)

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("Starting HTTP server")
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("HTTP server failed")
		}
	}()

	// Start gRPC server
	grpcHandler := handler.NewGRPCHandler(bookingService, slipWorkflow, auditService, log.Logger)

	grpcServer := grpc.NewServer(grpc.ChainUnaryInterceptor(
		handler.LoggingInterceptor(log.Logger),
		handler.AuthInterceptor(verifier),
	))
	bookingsv1.RegisterBookingSlipServiceServer(grpcServer, grpcHandler)
	healthServer := health.NewServer()
	healthServer.SetServingStatus(bookingsv1.BookingSlipService_ServiceDesc.ServiceName, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)
	reflection.Register(grpcServer) // Enable reflection for debugging

	grpcListener, err := net.Listen("tcp", fmt.Sprintf(":%d", cfg.Server.GRPCPort))
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create gRPC listener")
	}

	go func() {
		log.Info().Int("port", cfg.Server.GRPCPort).Msg("Starting gRPC server")
		if err := grpcServer.Serve(grpcListener); err != nil {
			log.Error().Err(err).Msg("gRPC server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	healthServer.Shutdown()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown failed")
	}

	// Stop gRPC server gracefully
	grpcServer.GracefulStop()

	scheduler.Stop(shutdownCtx)
	cancel()
	if inProcess != nil {
		if err := inProcess.Shutdown(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("Verification workers did not drain")
		}
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("Tracer shutdown failed")
	}

	log.Info().Msg("Server stopped")
}

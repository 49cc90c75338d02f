package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"practice-service/config"
	"practice-service/internal/bank"
	"practice-service/internal/handlers"
	"practice-service/internal/health"
	"practice-service/internal/middleware"
	"practice-service/internal/repository"
	"practice-service/internal/service"
	"practice-service/pkg/cache"
	"practice-service/pkg/database"
	"practice-service/pkg/logger"
	"practice-service/pkg/messaging"
	"practice-service/pkg/storage"

	_ "practice-service/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Practice Quiz API
// @version 1.0
// @description Timed multiple-choice practice quizzes drawn from subject and year question banks.

// @host localhost:5000
// @BasePath /

func main() {
	cfg := config.Load()
	if err := config.ApplyFlags(cfg, os.Args[1:]); err != nil {
		os.Exit(2)
	}

	log := logger.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	log.Info("configuration loaded")

	if cfg.InsecureSecret() {
		log.Warn("SECRET_KEY is not set, session cookies are signed with the built-in development key")
	}

	source, err := bankSource(cfg)
	if err != nil {
		log.Error("failed to configure question bank source", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	questionBank := bank.Load(ctx, source, bank.DefaultCatalog(), log)
	cancel()
	if questionBank.Size() == 0 {
		log.Warn("no questions loaded, every quiz request will fail with no data")
	}

	checks := make(map[string]handlers.ReadinessCheck)

	var sessions repository.SessionStore
	redisClient, err := cache.NewRedisClient(&cfg.Redis)
	if err != nil {
		log.Warn("failed to connect to Redis, sessions are kept in memory", "error", err)
		sessions = repository.NewMemorySessionStore(cfg.Session.TTL)
	} else {
		log.Info("connected to Redis")
		defer redisClient.Close()
		sessions = repository.NewRedisSessionStore(redisClient, cfg.Session.TTL)
		checks["redis"] = redisClient.Ping
	}

	var attempts service.AttemptRepository
	var historyDB *database.Client
	if cfg.History.Driver != "none" {
		historyDB, err = database.Open(&cfg.History)
		if err != nil {
			log.Warn("failed to open history database, attempts will not be recorded", "driver", cfg.History.Driver, "error", err)
		} else {
			defer historyDB.Close()

			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if err := historyDB.InitSchema(ctx); err != nil {
				log.Warn("failed to initialize history schema", "error", err)
			} else {
				log.Info("history database ready", "driver", historyDB.Driver())
			}
			cancel()

			attempts = repository.NewAttemptRepository(historyDB.GetDB())
			checks["history"] = historyDB.GetDB().PingContext
		}
	}

	var publisher service.RabbitMQPublisher
	if cfg.RabbitMQ.Enabled {
		rabbitClient, err := messaging.NewRabbitMQClient(&cfg.RabbitMQ)
		if err != nil {
			log.Warn("failed to connect to RabbitMQ, result events are disabled", "error", err)
		} else {
			log.Info("connected to RabbitMQ")
			defer rabbitClient.Close()
			publisher = rabbitClient
			checks["rabbitmq"] = func(context.Context) error {
				if rabbitClient.IsClosed() {
					return errors.New("connection closed")
				}
				return nil
			}
		}
	}

	quizService := service.NewQuizService(questionBank, sessions, attempts, publisher, log)

	if os.Getenv("GIN_MODE") == "" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler(log))

	healthHandler := handlers.NewHealthHandler(questionBank, checks)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	quizHandler := handlers.NewQuizHandler(quizService)
	timerHandler := handlers.NewTimerHandler(quizService, log)

	app := router.Group("/")
	app.Use(middleware.Session(&cfg.Session, log))
	handlers.RegisterRoutes(app, quizHandler, timerHandler)

	httpServer := &http.Server{
		Addr:              ":" + cfg.Server.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Info("practice service HTTP server starting", "port", cfg.Server.HTTPPort)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start HTTP server", "error", err)
			os.Exit(1)
		}
	}()

	healthServer := health.NewServer()
	healthServer.SetServing(questionBank.Size() > 0)
	log.Info("practice service gRPC health server starting", "port", cfg.Server.GRPCPort)

	go func() {
		lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
		if err != nil {
			log.Error("failed to listen on gRPC port", "error", err)
			os.Exit(1)
		}

		if err := healthServer.Serve(lis); err != nil {
			log.Error("failed to serve gRPC", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	healthServer.GracefulStop()
	timerHandler.Close()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP server shutdown incomplete", "error", err)
	}

	log.Info("practice service stopped")
}

func bankSource(cfg *config.Config) (bank.Source, error) {
	switch cfg.Bank.Source {
	case "s3":
		s3Client, err := storage.NewS3Client(&cfg.S3)
		if err != nil {
			return nil, err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		exists, err := s3Client.BucketExists(ctx, cfg.Bank.Bucket)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, fmt.Errorf("bucket %q does not exist", cfg.Bank.Bucket)
		}
		return bank.NewS3Source(s3Client, cfg.Bank.Bucket), nil
	default:
		return bank.NewDirSource(cfg.Bank.DataDir), nil
	}
}

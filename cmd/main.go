package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	patientapp "github.com/muhammadheryan/patient-registry/application/patient"
	"github.com/muhammadheryan/patient-registry/cmd/config"
	redisclient "github.com/muhammadheryan/patient-registry/cmd/redis"
	_ "github.com/muhammadheryan/patient-registry/docs"
	patientRepo "github.com/muhammadheryan/patient-registry/repository/patient"
	redisRepo "github.com/muhammadheryan/patient-registry/repository/redis"
	"github.com/muhammadheryan/patient-registry/thirdparty/rabbitmq"
	"github.com/muhammadheryan/patient-registry/transport"
	"github.com/muhammadheryan/patient-registry/utils/logger"
	"go.uber.org/zap"
)

// @title PATIENT REGISTRY API
// @version 1.0
// @description Patient registration CRUD API Documentation
// @host localhost:5000
// @BasePath /
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}
	defer db.Close()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Initialize Redis client, nil when not configured
	redisClient, err := redisclient.New(ctx, cfg)
	if err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	// Change notifications are optional
	var publisher rabbitmq.EventPublisher
	if cfg.RabbitMQ.Host != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.RabbitMQ.Exchange)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer p.Close()
		publisher = p
	}

	// Initialize repositories
	PatientRepo := patientRepo.NewPatientRepository(db)
	RedisRepo := redisRepo.NewRepository(redisClient)

	// Initialize application layers
	PatientApp := patientapp.NewPatientApp(cfg, PatientRepo, RedisRepo, publisher)

	httpTransport := transport.NewTransport(PatientApp, cfg.Server.AllowedOrigins)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed server", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("err shutdown server", zap.Error(err))
	}
}

package main

import (
	"context"
	"net/http"

	accountapp "github.com/celebratehq/birthday-api/application/account"
	celebrationapp "github.com/celebratehq/birthday-api/application/celebration"
	"github.com/celebratehq/birthday-api/cmd/config"
	redisclient "github.com/celebratehq/birthday-api/cmd/redis"
	_ "github.com/celebratehq/birthday-api/docs"
	"github.com/celebratehq/birthday-api/migrations"
	accountRepo "github.com/celebratehq/birthday-api/repository/account"
	celebrationRepo "github.com/celebratehq/birthday-api/repository/celebration"
	redisRepo "github.com/celebratehq/birthday-api/repository/redis"
	txRepo "github.com/celebratehq/birthday-api/repository/tx"
	"github.com/celebratehq/birthday-api/thirdparty/cloudinary"
	"github.com/celebratehq/birthday-api/thirdparty/rabbitmq"
	"github.com/celebratehq/birthday-api/transport"
	"github.com/celebratehq/birthday-api/utils/logger"
	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"
)

// @title BIRTHDAY API
// @version 1.0
// @description Birthday memories API Documentation
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// Run schema migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("mysql"); err != nil {
		logger.Fatal("err set goose dialect", zap.Error(err))
	}
	if err := goose.UpContext(context.Background(), db.DB, "."); err != nil {
		logger.Fatal("err run migrations", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Initialize the asset-host client
	uploader, err := cloudinary.NewUploader(cfg)
	if err != nil {
		logger.Fatal("err init cloudinary", zap.Error(err))
	}

	// Celebration event publisher is optional
	var publisher *rabbitmq.Publisher
	if cfg.RabbitMQ.Enabled {
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
		if err != nil {
			logger.Fatal("err connect rabbitmq", zap.Error(err))
		}
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Initialize repositories
	TxRepo := txRepo.NewTxRepository(db)
	AccountRepo := accountRepo.NewAccountRepository(db)
	CelebrationRepo := celebrationRepo.NewCelebrationRepository(db)
	RedisRepo := redisRepo.NewRepository()

	// Initialize application layers
	AccountApp := accountapp.NewAccountApp(cfg, TxRepo, AccountRepo, CelebrationRepo, RedisRepo, uploader)
	CelebrationApp := celebrationapp.NewCelebrationApp(cfg, TxRepo, CelebrationRepo, publisher)

	httpTransport := transport.NewTransport(cfg, AccountApp, CelebrationApp)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}

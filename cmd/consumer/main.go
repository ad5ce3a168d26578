package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/celebratehq/birthday-api/cmd/config"
	"github.com/celebratehq/birthday-api/thirdparty/rabbitmq"
	"github.com/celebratehq/birthday-api/utils/logger"
	"go.uber.org/zap"
)

// Drains the celebration_recorded queue and stamps each celebration as
// processed through the internal API.
func main() {
	cfg := config.Load()

	if err := logger.Init(cfg.Environment); err != nil {
		panic(err)
	}
	defer logger.Close()

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = "http://localhost:" + cfg.Server.Port
	}

	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, apiURL, cfg.InternalAPIKey)
	if err != nil {
		logger.Fatal("err connect rabbitmq", zap.Error(err))
	}
	defer func() {
		_ = consumer.Close()
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := consumer.Start(ctx); err != nil {
		logger.Fatal("err start consumer", zap.Error(err))
	}
	logger.Info("celebration consumer running")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	logger.Info("shutting down consumer")
}

package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"go.temporal.io/sdk/client"
	"go.uber.org/zap"

	"bookstore-fulfillment/config"
	"bookstore-fulfillment/courier"
	"bookstore-fulfillment/ledger"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	cfg := config.Load()

	c, err := client.Dial(client.Options{
		HostPort: cfg.TemporalHostPort,
	})
	if err != nil {
		logger.Fatal("Unable to create Temporal client", zap.Error(err))
	}
	defer c.Close()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: []string{cfg.KafkaBroker},
		GroupID: config.DispatchGroupID,
		Topic:   config.DispatchTopic,
	})
	defer reader.Close()

	store := ledger.NewRedisStore(redis.NewClient(&redis.Options{Addr: cfg.RedisAddr}))
	inventory := ledger.NewInventoryLedger(store)
	notifier := courier.NewTemporalNotifier(c)

	worker := courier.NewWorker(reader, inventory, notifier, cfg.CourierEmail, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := worker.Run(ctx); err != nil {
		logger.Fatal("Courier worker stopped with error", zap.Error(err))
	}
	logger.Info("Courier worker shut down")
}

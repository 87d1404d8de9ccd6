package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/ariefcatur/go-shop-checkout.git/internal/checkout"
	"github.com/ariefcatur/go-shop-checkout.git/internal/config"
	kafkax "github.com/ariefcatur/go-shop-checkout.git/internal/kafka"
	"github.com/ariefcatur/go-shop-checkout.git/internal/logging"
	"github.com/ariefcatur/go-shop-checkout.git/internal/notifier"
	"github.com/ariefcatur/go-shop-checkout.git/internal/redisx"
	"github.com/joho/godotenv"
)

func mustAtoi(s, def string) int {
	if s == "" {
		s = def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 1
	}
	return i
}

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.ServiceName + "-notifier")
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Redis
	rdb := redisx.New(cfg.RedisAddr)
	defer rdb.Close()

	// Service
	svc := &notifier.Service{
		Redis:       rdb,
		Log:         log,
		ServiceName: cfg.ServiceName + "-notifier",
	}

	// Consumer
	group := getenv("NOTIFIER_GROUP", "notifier-svc")
	workers := mustAtoi(os.Getenv("NOTIFIER_WORKERS"), "4")
	cons := kafkax.NewConsumer(cfg.KafkaBrokers, group, checkout.TopicCheckoutCompleted, workers, log)

	go func() {
		log.Info("notifier consumer started",
			"group", group, "topic", checkout.TopicCheckoutCompleted, "workers", workers)
		if err := cons.Start(ctx, svc.HandleCheckoutCompleted); err != nil {
			log.Error("consumer exit", "err", err)
			cancel()
		}
	}()

	// graceful shutdown
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	log.Info("shutting down consumer...")
	cancel()
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/nugrahsdhka/job-portal-api/internal/notifier"
	"github.com/nugrahsdhka/job-portal-api/pkg/config"
	"github.com/nugrahsdhka/job-portal-api/pkg/logger"
	"github.com/nugrahsdhka/job-portal-api/pkg/mq"
	"github.com/nugrahsdhka/job-portal-api/pkg/obs"
)

func main() {
	_ = godotenv.Load()
	logger.Init()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if cfg.RabbitURL == "" {
		log.Fatal().Msg("RABBIT_URL is required for the notification worker")
	}

	shutdown := obs.InitTracer("job-portal-notify")
	defer func() { _ = shutdown(context.Background()) }()

	cons := mq.NewConsumer(cfg.RabbitURL, cfg.NotifyQueue, cfg.NotifyPrefetch)
	for {
		if err := cons.Connect(); err != nil {
			log.Warn().Err(err).Msg("connect failed, retry in 2s")
			time.Sleep(2 * time.Second)
			continue
		}
		break
	}
	defer cons.Close()

	ctx, cancel := context.WithCancel(context.Background())
	n := notifier.NewConsole()

	go func() {
		msgs, err := cons.Deliveries(ctx)
		if err != nil {
			log.Error().Err(err).Msg("consume failed")
			cancel()
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case d, ok := <-msgs:
				if !ok {
					return
				}
				if err := n.Notify(string(d.Body)); err != nil {
					log.Error().Err(err).Msg("notify failed, requeueing")
					_ = d.Nack(false, true)
					continue
				}
				_ = d.Ack(false)
			}
		}
	}()

	log.Info().Str("queue", cfg.NotifyQueue).Msg("notification worker started")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig
	cancel()
	time.Sleep(200 * time.Millisecond)
}

package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alex-emery/frontdoor/internal/config"
	"github.com/alex-emery/frontdoor/internal/service"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config: ", err)
	}

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal("failed to create logger: ", err)
	}
	defer logger.Sync()

	svc := service.New(logger, cfg)

	go func() {
		if err := svc.Start(); err != nil {
			logger.Fatal("server stopped", zap.Error(err))
		}
	}()

	// handle shutdown signal
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := svc.Stop(ctx); err != nil {
		logger.Error("failed to stop server", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

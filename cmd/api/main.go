package main

import (
	"cambio/cmd"
	"cambio/internal/logger"
	"context"
	"log"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
)

func main() {
	handler, config, err := cmd.InitializeDependencies()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logger.AddToContext(ctx, zap.S())

	handler.App.Seed(ctx)
	go handler.App.RunPoller(ctx)

	err = handler.StartApi(config.Port)
	if err != nil {
		log.Fatal(err)
	}
}

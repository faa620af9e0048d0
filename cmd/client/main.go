package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/safetytracker/tracker/internal/buildinfo"
	"github.com/safetytracker/tracker/internal/client/cli"
	"github.com/safetytracker/tracker/internal/client/config"
	"github.com/safetytracker/tracker/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}

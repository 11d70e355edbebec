package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/config"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"go.uber.org/zap"
)

func main() {
	flagParser := flag.NewFlagSet("minigrepd", flag.ExitOnError)
	cfgPath := flagParser.String("config", os.Getenv(config.EnvConfigPath), "path to YAML config (defaults to $CONFIG_PATH)")
	addr := flagParser.String("address", "", "listen address, overrides the config file")
	_ = flagParser.Parse(os.Args[1:])

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to launch minigrepd: %v\n", err)
		os.Exit(1)
	}
	if *addr != "" {
		cfg.Address = *addr
	}

	log, err := logger.New(cfg.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := appmode.RunServer(ctx, cfg, log); err != nil {
		log.Error("minigrepd stopped with error", zap.Error(err))
		stop()
		_ = log.Sync()
		os.Exit(2)
	}
}

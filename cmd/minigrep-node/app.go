package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.New(os.Stderr, os.LookupEnv, zerolog.InfoLevel)

	// инициализировать параметры запуска
	np, err := parser.InitNodeParam(os.Args[1:], os.LookupEnv)
	if err != nil {
		log.Error().Err(err).Msg("failed to launch minigrep-node")
		os.Exit(2)
	}

	// готовим слушатель прерываний - контекст для всего приложения
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := appmode.RunNode(ctx, stop, np, log); err != nil {
		stop()
		os.Exit(1)
	}
}

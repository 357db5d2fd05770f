package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnendingLoop/minigrep/internal/appmode"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/gookit/color"
)

func main() {
	// always - красим даже если gookit не распознал терминал
	if parser.ResolveColor(os.LookupEnv) == model.ColorAlways {
		color.ForceOpenColor()
	}

	// контекст для всего приложения - нужен только для удаленного поиска
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := appmode.RunCLI(ctx, os.Args, os.LookupEnv, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

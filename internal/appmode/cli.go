// Package appmode provides 2 ways to run the app: one-shot cli search and long-running search node
package appmode

import (
	"context"
	"fmt"
	"io"

	"github.com/UnendingLoop/minigrep/internal/client"
	"github.com/UnendingLoop/minigrep/internal/highlight"
	"github.com/UnendingLoop/minigrep/internal/logger"
	"github.com/UnendingLoop/minigrep/internal/matcher"
	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/UnendingLoop/minigrep/internal/reader"
	"github.com/gookit/color"
	"github.com/rs/zerolog"
)

const (
	ExitOK      = 0
	ExitFailure = 1
)

// RunCLI handles `minigrep <filename> <query>` and returns the process exit code
func RunCLI(ctx context.Context, args []string, lookup model.EnvLookup, stdout, stderr io.Writer) int {
	log := logger.New(stderr, lookup, zerolog.WarnLevel)

	cfg, err := parser.Resolve(args, lookup)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return ExitFailure
	}

	fmt.Fprintf(stdout, "Searching for '%s' in file '%s'\n", cfg.Query, cfg.Filename)

	style := highlight.StyleFor(parser.ResolveColor(lookup), stdout)
	if err := run(ctx, cfg, parser.ResolveNodeURL(lookup), stdout, style, log); err != nil {
		fmt.Fprintf(stderr, "Application error: %v\n", err)
		return ExitFailure
	}
	return ExitOK
}

func run(ctx context.Context, cfg *model.Config, nodeURL string, stdout io.Writer, style color.Style, log zerolog.Logger) error {
	contents, err := reader.ReadDocument(cfg.Filename)
	if err != nil {
		return err
	}
	log.Debug().Str("file", cfg.Filename).Int("bytes", len(contents)).Msg("file read")

	var lines []string
	switch nodeURL {
	case "": // ищем локально
		lines = matcher.Search(contents, cfg.Query, cfg.Mode())
	default: // отдаем поиск search-node
		lines, err = searchRemote(ctx, nodeURL, cfg, contents, log)
		if err != nil {
			return err
		}
	}
	log.Debug().Stringer("mode", cfg.Mode()).Int("matches", len(lines)).Msg("search done")

	return highlight.WriteMatches(stdout, lines, cfg.Query, style)
}

func searchRemote(ctx context.Context, nodeURL string, cfg *model.Config, contents string, log zerolog.Logger) ([]string, error) {
	c := client.New(nodeURL, nil, log)

	// проверяем пингом, что search-node доступна
	if err := c.Ping(ctx); err != nil {
		return nil, err
	}

	return c.Search(ctx, model.NewSearchTask(cfg.Query, cfg.Strict, contents))
}

package appmode

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 5 * time.Second

// RunNode serves until ctx is done, then shuts the server down gracefully
func RunNode(ctx context.Context, stop context.CancelFunc, np *model.NodeParam, log zerolog.Logger) error {
	// получить экземпляр сервера
	srv := transport.NewNodeServer(np.Address, processor.New(log), log)

	serveErr := make(chan error, 1)

	// запуск сервера
	go func() {
		log.Info().Str("address", srv.Addr).Msg("search node running")
		err := srv.ListenAndServe()
		switch {
		case err == nil, errors.Is(err, http.ErrServerClosed):
			log.Info().Msg("server gracefully stopping...")
			serveErr <- nil
		default:
			log.Error().Err(err).Msg("server stopped")
			serveErr <- err
			stop()
		}
	}()

	<-ctx.Done()

	// Закрытие всех соединений сервера
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Str("address", np.Address).Msg("failed to shutdown search node correctly")
		return err
	}

	err := <-serveErr
	if err == nil {
		log.Info().Str("address", np.Address).Msg("search node server is closed")
	}
	return err
}

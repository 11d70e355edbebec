package appmode

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"

	"github.com/UnendingLoop/minigrep/internal/config"
	"github.com/UnendingLoop/minigrep/internal/processor"
	"github.com/UnendingLoop/minigrep/internal/transport"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RunServer serves the search API until ctx is cancelled, then shuts the server down
// within cfg.ShutdownTimeout.
func RunServer(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	ln, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", cfg.Address, err)
	}
	return serve(ctx, ln, cfg, log)
}

func serve(ctx context.Context, ln net.Listener, cfg *config.Config, log *zap.Logger) error {
	srv := transport.NewServer(ln.Addr().String(), processor.Processor{}, log, cfg.MaxBodyBytes)

	g, gCtx := errgroup.WithContext(ctx)

	// запуск сервера
	g.Go(func() error {
		log.Info("minigrepd running", zap.String("address", srv.Addr))
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	})

	// закрытие всех соединений сервера по отмене контекста
	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown minigrepd %q correctly: %w", srv.Addr, err)
		}
		log.Info("minigrepd server is closed", zap.String("address", srv.Addr))
		return nil
	})

	return g.Wait()
}

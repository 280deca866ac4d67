package cmd

import (
	"blockvault/internal/cli"
	"blockvault/internal/config"
	"blockvault/internal/http/server"
	"blockvault/pkg/log"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
)

const (
	modeServe = "serve"
	modeMenu  = "menu"
)

// Start runs blockvault. The first argument selects the mode, serve by default.
func Start(args []string) error {
	mode := modeServe
	if len(args) > 0 {
		mode = args[0]
	}
	if mode != modeServe && mode != modeMenu {
		return fmt.Errorf("unknown mode %q, expected %q or %q", mode, modeServe, modeMenu)
	}

	cfg, err := config.NewApp()
	if err != nil {
		return fmt.Errorf("create config: %w", err)
	}

	logger := log.NewZapLogger("blockvault", log.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	a, err := newApp(ctx, logger, cfg)
	if err != nil {
		logger.Errorw("failed to start", "error", err)
		return err
	}
	defer a.Close()

	if mode == modeMenu {
		serve := func(ctx context.Context) error {
			return run(ctx, a.httpServer())
		}
		return cli.NewMenu(logger, a.explorer, os.Stdin, os.Stdout, serve).Run(ctx)
	}

	return run(ctx, a.httpServer())
}

func run(ctx context.Context, server *server.HTTPServer) error {
	errChan := server.Run()

	var err error
	select {
	case <-ctx.Done():
	case err = <-errChan:
	}

	sdErr := server.Shutdown()
	if errors.Is(err, http.ErrServerClosed) || err == nil {
		return sdErr
	}

	return err
}

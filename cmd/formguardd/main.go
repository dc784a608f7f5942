// Command formguardd is the mock intake backend the form submits to. It
// accepts JSON submission payloads, re-validates them with the shared
// schema, and answers with a receipt or a structured, optionally
// field-scoped error.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/formguard/formguard/pkg/config"
	"github.com/formguard/formguard/pkg/logger"
)

type appConfig struct {
	Addr            string        `env:"FORMGUARD_ADDR" envDefault:":8080"`
	LogLevel        string        `env:"FORMGUARD_LOG_LEVEL" envDefault:"info"`
	LogFormat       string        `env:"FORMGUARD_LOG_FORMAT" envDefault:"json"`
	ShutdownTimeout time.Duration `env:"FORMGUARD_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

func main() {
	var cfg appConfig
	config.MustLoad(&cfg)

	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
		logger.WithAttr(slog.String("app", "formguardd")),
	)

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           newServer(log).routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", slog.String("addr", cfg.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown", slog.String("error", err.Error()))
			os.Exit(1)
		}
		log.Info("stopped")
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("serve", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}
}

package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/spf13/cobra"

	httpapi "github.com/san-kum/physcalc/internal/http"
)

func serve(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	calc, closeStore := openCalculator(cfg)
	router := httpapi.SetupRouter(calc.Library(), calc, cfg)

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("physcalc api listening", "addr", srv.Addr, "history", cfg.History.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		cfg.Server.ShutdownTimeout,
		map[string]gfshutdown.Operation{
			"http-server": drainThenClose(srv, closeStore),
		},
	)

	exitCode := <-wait
	slog.Info("server exited", "code", exitCode)
	if exitCode != 0 {
		return fmt.Errorf("shutdown finished with code %d", exitCode)
	}
	return nil
}

// drainThenClose stops srv and closes the history store once in-flight
// requests have finished, so late saves still find it open.
func drainThenClose(srv *http.Server, closeStore func() error) gfshutdown.Operation {
	return func(ctx context.Context) error {
		slog.Info("graceful shutdown initiated")
		err := srv.Shutdown(ctx)
		return errors.Join(err, closeStore())
	}
}

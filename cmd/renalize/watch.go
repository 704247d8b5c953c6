package main

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"renalize/internal/platform/httpserver"
	"renalize/internal/state"
)

func watchCmd() *cobra.Command {
	var interval time.Duration

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Keep the passbook live, refreshing on an interval",
		Long: "Polls bill history until interrupted and reprints it on every " +
			"change. Serves Prometheus metrics while running.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			if interval <= 0 {
				interval = a.cfg.Watch.Interval
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			server := httpserver.New(a.cfg.Metrics.Addr)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					a.logger.Error("metrics server failed", "error", err)
				}
			}()
			defer func() {
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				_ = server.Shutdown(shutdownCtx)
			}()

			screen := state.NewPassbookHolder()
			for bills := range a.passbookService().Watch(ctx, interval) {
				screen.Apply(bills)
				fmt.Fprintf(cmd.OutOrStdout(), "--- %s ---\n", time.Now().Format(time.TimeOnly))
				printBills(cmd, bills)
			}
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", 0, "refresh interval (default from config)")
	return cmd
}

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tessro/chorus/internal/app"
	"github.com/tessro/chorus/internal/telemetry"
)

func runPlayer(cmd *cobra.Command, args []string) error {
	logger, closer, err := telemetry.Open(cfg.Log)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer closer.Close()
	slog.SetDefault(logger)

	// Handle Ctrl+C gracefully
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case sig := <-sigCh:
			logger.Debug("received signal", "signal", sig.String())
			cancel()
		case <-ctx.Done():
		}
	}()

	start := time.Now()
	a := app.New(cfg, logger)
	logger.Info("Started chorus",
		"tick", cfg.Player.Tick(),
		"track", cfg.Player.Track(),
	)

	if err := a.Run(ctx); err != nil {
		return err
	}

	logger.Info("Stopped chorus",
		"started", humanize.Time(start),
		"events", humanize.Comma(a.Bus.Dispatched()),
		"failures", a.Bus.Failures(),
	)
	return nil
}

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"memorylane/internal/album"
	"memorylane/internal/daemon"
	"memorylane/internal/logging"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the album host in the foreground",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), ctx, strings.TrimSpace(bind))
		},
	}
	cmd.Flags().StringVar(&bind, "bind", "", "Override paths.api_bind for this run")
	return cmd
}

func runServe(cmdCtx context.Context, ctx *commandContext, bind string) error {
	if cmdCtx == nil {
		cmdCtx = context.Background()
	}
	signalCtx, cancel := signal.NotifyContext(cmdCtx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := ctx.ensureConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if bind != "" {
		cfg.Paths.APIBind = bind
	}

	if _, err := logging.RotateLogFile(cfg.Paths.LogDir); err != nil {
		fmt.Fprintf(os.Stderr, "warn: unable to rotate log file: %v\n", err)
	}
	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logging.PruneOldLogs(logger, cfg.Paths.LogDir, logging.RotatedLogPattern,
		filepath.Join(cfg.Paths.LogDir, logging.LogFileName), cfg.Logging.RetentionDays)

	loader, err := album.NewFromConfig(cfg, logger)
	if err != nil {
		logger.Error("album loader", logging.Error(err))
		return err
	}

	d, err := daemon.New(cfg, loader, logger)
	if err != nil {
		return fmt.Errorf("create daemon: %w", err)
	}
	defer d.Close()

	if err := d.Start(signalCtx); err != nil {
		return fmt.Errorf("start host: %w", err)
	}
	logger.Info("memorylane listening",
		logging.String(logging.FieldEventType, "host_listening"),
		logging.String("url", "http://"+d.Addr()+"/"),
	)

	<-signalCtx.Done()
	logger.Info("memorylane host shutting down")
	d.Stop()
	return nil
}

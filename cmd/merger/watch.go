package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"configMerger/internal/config"
)

func runWatch(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadMergeConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if config.ToStdout(cfg.Out) || cfg.TokenListOut == "-" {
		return fmt.Errorf("watch needs output files, not stdout")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := newMergeRunner(cfg, logger)

	logger.Info("watch start",
		zap.String("token_list", cfg.TokenList),
		zap.String("rewards_list", cfg.RewardsList),
		zap.String("out", cfg.Out),
		zap.String("token_list_out", cfg.TokenListOut),
		zap.Duration("interval", cfg.Interval),
	)

	return r.Watch(ctx)
}

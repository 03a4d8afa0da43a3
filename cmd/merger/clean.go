package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"configMerger/internal/config"
	"configMerger/internal/merger"
	"configMerger/internal/runner"
	"configMerger/internal/storage"
)

func runClean(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.LoadClean(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.TokenList == "" {
		return fmt.Errorf("token list path is required")
	}

	m := merger.New(merger.Options{
		LegacyBaseTokenKey: cfg.LegacyBaseTokenKey,
		Logger:             logger,
	})
	sinks := runner.Sinks{TokenList: outputSink(cfg.TokenListOut)}
	if cfg.Copy {
		sinks.Copy = storage.NewClipboardSink()
	}
	r := runner.NewRunner(runner.RunConfig{
		TokenListPath: cfg.TokenList,
	}, m, sinks, logger)

	logger.Info("clean start",
		zap.String("token_list", cfg.TokenList),
		zap.String("token_list_out", cfg.TokenListOut),
		zap.Bool("legacy_base_token_key", cfg.LegacyBaseTokenKey),
	)

	if _, err := r.Clean(); err != nil {
		return err
	}
	return nil
}

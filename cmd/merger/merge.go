package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"configMerger/internal/config"
	"configMerger/internal/merger"
	"configMerger/internal/runner"
	"configMerger/internal/storage"
)

func runMerge(cmd *cobra.Command, _ []string) error {
	cfg, logger, err := loadMergeConfig(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	r := newMergeRunner(cfg, logger)

	logger.Info("merge start",
		zap.String("token_list", cfg.TokenList),
		zap.String("rewards_list", cfg.RewardsList),
		zap.String("out", cfg.Out),
		zap.String("token_list_out", cfg.TokenListOut),
		zap.Bool("copy", cfg.Copy),
	)

	if _, err := r.Merge(); err != nil {
		return err
	}
	return nil
}

func loadMergeConfig(cmd *cobra.Command) (config.Config, *zap.Logger, error) {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return config.Config{}, nil, err
	}

	if cfg.TokenList == "" {
		return config.Config{}, nil, fmt.Errorf("token list path is required")
	}
	if cfg.RewardsList == "" {
		return config.Config{}, nil, fmt.Errorf("rewards list path is required")
	}
	if cfg.TokenListOut != "" && config.ToStdout(cfg.TokenListOut) && config.ToStdout(cfg.Out) {
		return config.Config{}, nil, fmt.Errorf("pool list and token list cannot both go to stdout")
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

func newMergeRunner(cfg config.Config, logger *zap.Logger) *runner.Runner {
	m := merger.New(merger.Options{
		OmitBaseToken:      cfg.OmitBaseToken,
		LegacyBaseTokenKey: cfg.LegacyBaseTokenKey,
		Logger:             logger,
	})

	sinks := runner.Sinks{PoolList: outputSink(cfg.Out)}
	if cfg.TokenListOut != "" {
		sinks.TokenList = outputSink(cfg.TokenListOut)
	}
	if cfg.Copy {
		sinks.Copy = storage.NewClipboardSink()
	}

	return runner.NewRunner(runner.RunConfig{
		TokenListPath:   cfg.TokenList,
		RewardsListPath: cfg.RewardsList,
		Interval:        cfg.Interval,
	}, m, sinks, logger)
}

func outputSink(path string) storage.Sink {
	if config.ToStdout(path) {
		return storage.NewWriterSink(os.Stdout)
	}
	return storage.NewFileSink(path)
}

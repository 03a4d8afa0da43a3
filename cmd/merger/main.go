package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "merger",
		Short:        "Merge token_list.json with rewards_config.json into pool_list.json",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	mergeCmd := &cobra.Command{
		Use:   "merge",
		Short: "Build pool_list.json from a token list and a rewards list",
		RunE:  runMerge,
	}
	addMergeFlags(mergeCmd)
	root.AddCommand(mergeCmd)

	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Strip pool fields from a token list",
		RunE:  runClean,
	}

	cleanCmd.Flags().String("token-list", "", "input token_list.json")
	cleanCmd.Flags().String("token-list-out", "", "output token list path (empty or - for stdout)")
	cleanCmd.Flags().Bool("legacy-base-token-key", false, "write the base token under \"baseToken\"")
	cleanCmd.Flags().Bool("copy", false, "copy the output to the clipboard")
	cleanCmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(cleanCmd)

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "Rebuild pool_list.json whenever an input changes",
		RunE:  runWatch,
	}
	addMergeFlags(watchCmd)
	watchCmd.Flags().Duration("interval", time.Second, "input poll interval")
	root.AddCommand(watchCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addMergeFlags(cmd *cobra.Command) {
	cmd.Flags().String("token-list", "", "input token_list.json")
	cmd.Flags().String("rewards-list", "", "input rewards_config.json")
	cmd.Flags().String("out", "", "output pool_list.json path (empty or - for stdout)")
	cmd.Flags().String("token-list-out", "", "also write the cleaned token list to this path")
	cmd.Flags().Bool("copy", false, "copy the pool list to the clipboard")
	cmd.Flags().Bool("omit-base-token", false, "leave base_token out of the pool list")
	cmd.Flags().Bool("legacy-base-token-key", false, "write the updated token list base token under \"baseToken\"")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

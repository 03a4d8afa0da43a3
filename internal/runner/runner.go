package runner

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"configMerger/internal/document"
	"configMerger/internal/merger"
	"configMerger/internal/model"
	"configMerger/internal/storage"
)

const (
	poolListName  = "pool list"
	tokenListName = "token list"
)

// RunConfig holds runtime settings for the runner.
type RunConfig struct {
	TokenListPath   string
	RewardsListPath string
	Interval        time.Duration
}

// Sinks are the output destinations of a Runner.
type Sinks struct {
	// PoolList receives the pool list. Required by Merge.
	PoolList storage.Sink
	// TokenList receives the updated token list. Optional for Merge, required by Clean.
	TokenList storage.Sink
	// Copy receives the primary document after it has been published. Optional; a
	// failure is logged and does not fail the run.
	Copy storage.Sink
}

// Runner reads the input documents, runs the merger and hands the rendered output to sinks.
// All outputs are rendered and staged before any of them is published, so a run that fails
// while reading, merging, encoding or staging writes nothing.
type Runner struct {
	cfg    RunConfig
	merger *merger.Merger
	sinks  Sinks
	logger *zap.Logger
	last   inputState
}

// NewRunner builds a Runner with its dependencies.
func NewRunner(cfg RunConfig, m *merger.Merger, sinks Sinks, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = merger.New(merger.Options{Logger: logger})
	}
	return &Runner{
		cfg:    cfg,
		merger: m,
		sinks:  sinks,
		logger: logger,
	}
}

// Merge builds the pool list and, when a token list sink is set, the updated token list.
func (r *Runner) Merge() (*model.PoolList, error) {
	if r.sinks.PoolList == nil {
		return nil, fmt.Errorf("pool list sink is nil")
	}

	tokenList, err := r.readTokenList()
	if err != nil {
		return nil, err
	}
	rewardsList, err := r.readRewardsList()
	if err != nil {
		return nil, err
	}

	poolList, err := r.merger.Merge(tokenList, rewardsList)
	if err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}
	poolData, err := document.Encode(poolList)
	if err != nil {
		return nil, err
	}

	docs := []storage.Document{{Sink: r.sinks.PoolList, Name: poolListName, Data: poolData}}
	if r.sinks.TokenList != nil {
		tokenData, err := r.cleanAndEncode(tokenList)
		if err != nil {
			return nil, err
		}
		docs = append(docs, storage.Document{Sink: r.sinks.TokenList, Name: tokenListName, Data: tokenData})
	}

	if err := storage.Publish(docs...); err != nil {
		return nil, err
	}
	r.copyOut(poolListName, poolData)

	r.logger.Info("pool list written",
		zap.Int("pools", len(poolList.Pools)),
		zap.String("timestamp", poolList.Timestamp),
		zap.Bool("token_list_written", len(docs) > 1),
	)
	return poolList, nil
}

// Clean builds only the updated token list and writes it to the token list sink.
func (r *Runner) Clean() (model.TokenList, error) {
	if r.sinks.TokenList == nil {
		return nil, fmt.Errorf("token list sink is nil")
	}

	tokenList, err := r.readTokenList()
	if err != nil {
		return nil, err
	}
	cleaned, err := r.merger.CleanTokenList(tokenList)
	if err != nil {
		return nil, fmt.Errorf("clean token list: %w", err)
	}
	data, err := document.Encode(cleaned)
	if err != nil {
		return nil, err
	}
	if err := storage.Write(r.sinks.TokenList, tokenListName, data); err != nil {
		return nil, err
	}
	r.copyOut(tokenListName, data)

	r.logger.Info("token list written", zap.Int("bytes", len(data)))
	return cleaned, nil
}

// Watch merges once, then again whenever an input file changes, until ctx is done.
// A failed merge is logged and the previous output is left in place.
func (r *Runner) Watch(ctx context.Context) error {
	if r.cfg.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}

	ticker := time.NewTicker(r.cfg.Interval)
	defer ticker.Stop()

	for {
		r.mergeIfChanged()

		select {
		case <-ctx.Done():
			r.logger.Info("watch stopped")
			return nil
		case <-ticker.C:
		}
	}
}

// mergeIfChanged reports whether a merge was attempted.
func (r *Runner) mergeIfChanged() bool {
	state, err := r.snapshot()
	if err != nil {
		r.logger.Warn("read inputs failed", zap.Error(err))
		return false
	}
	if state == r.last {
		return false
	}
	// Remember broken inputs too so the same failure is not logged on every tick.
	r.last = state

	if _, err := r.Merge(); err != nil {
		r.logger.Warn("merge failed, keeping previous output", zap.Error(err))
	}
	return true
}

func (r *Runner) copyOut(name string, data []byte) {
	if r.sinks.Copy == nil {
		return
	}
	if err := storage.Write(r.sinks.Copy, name, data); err != nil {
		r.logger.Warn("copy failed", zap.String("document", name), zap.Error(err))
	}
}

func (r *Runner) cleanAndEncode(tokenList model.TokenList) ([]byte, error) {
	cleaned, err := r.merger.CleanTokenList(tokenList)
	if err != nil {
		return nil, fmt.Errorf("clean token list: %w", err)
	}
	return document.Encode(cleaned)
}

func (r *Runner) readTokenList() (model.TokenList, error) {
	data, err := os.ReadFile(r.cfg.TokenListPath)
	if err != nil {
		return nil, fmt.Errorf("read token list: %w", err)
	}
	return document.DecodeTokenList(data)
}

func (r *Runner) readRewardsList() (model.RewardsList, error) {
	data, err := os.ReadFile(r.cfg.RewardsListPath)
	if err != nil {
		return nil, fmt.Errorf("read rewards list: %w", err)
	}
	return document.DecodeRewardsList(data)
}

// Package merger builds pool list documents from a token list and a rewards list.
//
// Every operation is a pure function of its inputs (plus the clock for Merge): inputs are
// never mutated and each call allocates fresh output, so a Merger is safe for concurrent use.
// A failed call returns no partial output.
package merger

import (
	"time"

	"go.uber.org/zap"

	"configMerger/internal/model"
)

// Options configures a Merger.
type Options struct {
	// Now supplies the pool list timestamp. Defaults to time.Now.
	Now func() time.Time
	// OmitBaseToken drops the top-level base_token from the pool list.
	OmitBaseToken bool
	// LegacyBaseTokenKey writes the cleaned base token of an updated token list under
	// "baseToken" instead of "base_token".
	LegacyBaseTokenKey bool
	Logger             *zap.Logger
}

// Merger turns token and rewards documents into pool lists.
type Merger struct {
	now                func() time.Time
	omitBaseToken      bool
	legacyBaseTokenKey bool
	logger             *zap.Logger
}

// New builds a Merger from opts.
func New(opts Options) *Merger {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Merger{
		now:                now,
		omitBaseToken:      opts.OmitBaseToken,
		legacyBaseTokenKey: opts.LegacyBaseTokenKey,
		logger:             logger,
	}
}

var defaultMerger = New(Options{})

// Merge builds a pool list with the default options.
func Merge(tokenList model.TokenList, rewardsList model.RewardsList) (*model.PoolList, error) {
	return defaultMerger.Merge(tokenList, rewardsList)
}

// BuildPools builds the pools of a token list with the default options.
func BuildPools(tokenList model.TokenList, rewardsList model.RewardsList) ([]model.Pool, error) {
	return defaultMerger.BuildPools(tokenList, rewardsList)
}

// CleanTokenList strips pool fields from a token list with the default options.
func CleanTokenList(tokenList model.TokenList) (model.TokenList, error) {
	return defaultMerger.CleanTokenList(tokenList)
}

// Merge builds the full pool list document. The timestamp is taken at call time.
func (m *Merger) Merge(tokenList model.TokenList, rewardsList model.RewardsList) (*model.PoolList, error) {
	pools, err := m.BuildPools(tokenList, rewardsList)
	if err != nil {
		return nil, err
	}

	out := &model.PoolList{
		Name:      model.PoolListName,
		LogoURI:   tokenList.Value(model.FieldLogoURI),
		Keywords:  tokenList.Value(model.FieldKeywords),
		Tags:      tokenList.Value(model.FieldTags),
		Timestamp: m.now().Format(model.TimestampLayout),
		Pools:     pools,
		Version:   tokenList.Value(model.FieldVersion),
	}
	if !m.omitBaseToken {
		baseToken, err := tokenList.BaseToken()
		if err != nil {
			return nil, err
		}
		out.BaseToken = CleanUpTokenInfo(baseToken)
	}

	m.logger.Debug("pool list built",
		zap.Int("pools", len(pools)),
		zap.String("timestamp", out.Timestamp),
	)
	return out, nil
}

// BuildPools pairs the base token with every other token of the list, in list order,
// and attaches the first rewards entry sharing the token's swap address.
func (m *Merger) BuildPools(tokenList model.TokenList, rewardsList model.RewardsList) ([]model.Pool, error) {
	baseToken, err := tokenList.BaseToken()
	if err != nil {
		return nil, err
	}
	tokens, err := tokenList.Tokens()
	if err != nil {
		return nil, err
	}
	entries, err := rewardsList.Entries()
	if err != nil {
		return nil, err
	}

	baseSymbol, _ := baseToken.Symbol()
	cleanedBase := CleanUpTokenInfo(baseToken)

	pools := make([]model.Pool, 0, len(tokens))
	for _, token := range tokens {
		symbol, _ := token.Symbol()
		if strictEqual(symbol, true, baseSymbol, true) {
			continue
		}

		reward := findReward(entries, token)
		pool := buildPool(cleanedBase, token, reward)

		m.logger.Debug("pool resolved",
			zap.Any("symbol", symbol),
			zap.String("swap_address", pool.SwapAddress),
			zap.String("staking_address", pool.StakingAddress),
			zap.Bool("rewards_matched", reward != nil),
		)
		pools = append(pools, pool)
	}

	return pools, nil
}

// CleanTokenList returns a copy of the token list with the base token and every token
// cleaned. Tokens are not filtered; other top-level fields are copied as is.
func (m *Merger) CleanTokenList(tokenList model.TokenList) (model.TokenList, error) {
	baseToken, err := tokenList.BaseToken()
	if err != nil {
		return nil, err
	}
	tokens, err := tokenList.Tokens()
	if err != nil {
		return nil, err
	}

	out := make(model.TokenList, len(tokenList))
	for key, value := range tokenList {
		if key == model.FieldBaseToken || key == model.FieldTokens {
			continue
		}
		out[key] = model.Clone(value)
	}

	cleaned := make([]interface{}, 0, len(tokens))
	for _, token := range tokens {
		cleaned = append(cleaned, CleanUpTokenInfo(token))
	}

	baseKey := model.FieldBaseToken
	if m.legacyBaseTokenKey {
		baseKey = model.FieldLegacyBaseToken
	}
	out[baseKey] = CleanUpTokenInfo(baseToken)
	out[model.FieldTokens] = cleaned

	m.logger.Debug("token list cleaned", zap.Int("tokens", len(cleaned)), zap.String("base_key", baseKey))
	return out, nil
}

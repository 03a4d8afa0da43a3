package merger

import "configMerger/internal/model"

// strippedFields only make sense on a token list entry and never reach a pool list.
var strippedFields = []string{
	model.FieldStakingAddress,
	model.FieldRewardsAddresses,
	model.FieldSwapAddress,
	model.FieldPoolID,
}

// CleanUpTokenInfo returns a deep copy of token without its pool-specific fields.
func CleanUpTokenInfo(token model.TokenInfo) model.TokenInfo {
	cleaned := token.Clone()
	if cleaned == nil {
		return model.TokenInfo{}
	}
	for _, key := range strippedFields {
		delete(cleaned, key)
	}
	return cleaned
}

func findReward(entries []model.RewardEntry, token model.TokenInfo) model.RewardEntry {
	swap, ok := token.Lookup(model.FieldSwapAddress)
	for _, entry := range entries {
		entrySwap, entryOK := entry.SwapAddress()
		if strictEqual(entrySwap, entryOK, swap, ok) {
			return entry
		}
	}
	return nil
}

// buildPool resolves the staking address as reward entry, then token, then "".
func buildPool(cleanedBase, token model.TokenInfo, reward model.RewardEntry) model.Pool {
	pool := model.Pool{
		PoolID:         token.Value(model.FieldPoolID),
		PoolAssets:     [2]model.TokenInfo{cleanedBase.Clone(), CleanUpTokenInfo(token)},
		SwapAddress:    token.String(model.FieldSwapAddress),
		StakingAddress: token.String(model.FieldStakingAddress),
		RewardsTokens:  []interface{}{},
	}
	if reward == nil {
		return pool
	}

	if staking := reward.StakingAddress(); staking != "" {
		pool.StakingAddress = staking
	}
	if rewards := reward.RewardsTokens(); rewards != nil {
		pool.RewardsTokens = model.Clone(rewards)
	}
	return pool
}

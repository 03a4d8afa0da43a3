package merger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"configMerger/internal/model"
)

func TestCleanUpTokenInfo(t *testing.T) {
	token := model.TokenInfo{
		"symbol":            "ATOM",
		"name":              "Atom",
		"decimals":          float64(6),
		"pool_id":           float64(1),
		"swap_address":      "juno1swap",
		"staking_address":   "juno1stake",
		"rewards_addresses": []interface{}{"juno1r"},
		"chain":             map[string]interface{}{"id": "cosmoshub-4", "rpc": []interface{}{"https://rpc"}},
	}
	before := token.Clone()

	cleaned := CleanUpTokenInfo(token)

	for _, key := range []string{"staking_address", "rewards_addresses", "swap_address", "pool_id"} {
		assert.NotContains(t, cleaned, key)
	}
	assert.Len(t, cleaned, len(token)-4)
	for key, value := range token {
		if key == "staking_address" || key == "rewards_addresses" || key == "swap_address" || key == "pool_id" {
			continue
		}
		assert.Equal(t, value, cleaned[key], key)
	}
	assert.Equal(t, before, token)

	cleaned["chain"].(map[string]interface{})["id"] = "changed"
	assert.Equal(t, "cosmoshub-4", token["chain"].(map[string]interface{})["id"])
}

func TestCleanUpTokenInfoNil(t *testing.T) {
	cleaned := CleanUpTokenInfo(nil)
	require.NotNil(t, cleaned)
	assert.Empty(t, cleaned)
}

func TestBuildPoolsFiltersBaseSymbol(t *testing.T) {
	tokenList := tokenListFromJSON(t, `{
		"base_token": {"symbol": "JUNO"},
		"tokens": [
			{"symbol": "ATOM"},
			{"symbol": "JUNO"},
			{"symbol": "juno"},
			{"symbol": "OSMO"},
			{"symbol": "JUNO", "pool_id": 9}
		]
	}`)

	pools, err := BuildPools(tokenList, rewardsListFromJSON(t, `{"list": []}`))
	require.NoError(t, err)

	tokens, err := tokenList.Tokens()
	require.NoError(t, err)
	expected := 0
	for _, token := range tokens {
		if token["symbol"] != "JUNO" {
			expected++
		}
	}
	require.Len(t, pools, expected)

	symbols := make([]interface{}, 0, len(pools))
	for _, pool := range pools {
		symbols = append(symbols, pool.PoolAssets[1]["symbol"])
		assert.Equal(t, model.TokenInfo{"symbol": "JUNO"}, pool.PoolAssets[0])
	}
	assert.Equal(t, []interface{}{"ATOM", "juno", "OSMO"}, symbols)
}

func TestBuildPoolsStakingAddressResolution(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		rewards string
		staking string
		rewardz string
	}{
		{
			name:    "reward overrides token",
			token:   `{"symbol": "B", "swap_address": "A", "staking_address": "token"}`,
			rewards: `{"list": [{"swap_address": "A", "staking_address": "reward", "rewards_tokens": ["R"]}]}`,
			staking: "reward",
			rewardz: `["R"]`,
		},
		{
			name:    "reward without staking falls back to token",
			token:   `{"symbol": "B", "swap_address": "A", "staking_address": "token"}`,
			rewards: `{"list": [{"swap_address": "A", "rewards_tokens": ["R"]}]}`,
			staking: "token",
			rewardz: `["R"]`,
		},
		{
			name:    "empty reward staking falls back to token",
			token:   `{"symbol": "B", "swap_address": "A", "staking_address": "token"}`,
			rewards: `{"list": [{"swap_address": "A", "staking_address": ""}]}`,
			staking: "token",
			rewardz: `[]`,
		},
		{
			name:    "non-string reward staking falls back to token",
			token:   `{"symbol": "B", "swap_address": "A", "staking_address": "token"}`,
			rewards: `{"list": [{"swap_address": "A", "staking_address": 7}]}`,
			staking: "token",
			rewardz: `[]`,
		},
		{
			name:    "no match uses token",
			token:   `{"symbol": "B", "swap_address": "A", "staking_address": "token"}`,
			rewards: `{"list": [{"swap_address": "Z", "staking_address": "reward", "rewards_tokens": ["R"]}]}`,
			staking: "token",
			rewardz: `[]`,
		},
		{
			name:    "no match and no token staking",
			token:   `{"symbol": "B", "swap_address": "A"}`,
			rewards: `{"list": []}`,
			staking: "",
			rewardz: `[]`,
		},
		{
			name:    "first match wins",
			token:   `{"symbol": "B", "swap_address": "A"}`,
			rewards: `{"list": [{"swap_address": "A", "staking_address": "first", "rewards_tokens": ["R1"]}, {"swap_address": "A", "staking_address": "second", "rewards_tokens": ["R2"]}]}`,
			staking: "first",
			rewardz: `["R1"]`,
		},
		{
			name:    "swap address match is case sensitive",
			token:   `{"symbol": "B", "swap_address": "a"}`,
			rewards: `{"list": [{"swap_address": "A", "staking_address": "reward"}]}`,
			staking: "",
			rewardz: `[]`,
		},
		{
			name:    "absent swap address matches absent",
			token:   `{"symbol": "B"}`,
			rewards: `{"list": [{"swap_address": "A", "staking_address": "other"}, {"staking_address": "unkeyed", "rewards_tokens": ["U"]}]}`,
			staking: "unkeyed",
			rewardz: `["U"]`,
		},
		{
			name:    "absent swap address does not match null",
			token:   `{"symbol": "B"}`,
			rewards: `{"list": [{"swap_address": null, "staking_address": "null"}]}`,
			staking: "",
			rewardz: `[]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenList := tokenListFromJSON(t, `{"base_token": {"symbol": "BASE"}, "tokens": [`+tt.token+`]}`)

			pools, err := BuildPools(tokenList, rewardsListFromJSON(t, tt.rewards))
			require.NoError(t, err)
			require.Len(t, pools, 1)

			assert.Equal(t, tt.staking, pools[0].StakingAddress)
			assert.JSONEq(t, tt.rewardz, encode(t, pools[0].RewardsTokens))
		})
	}
}

func TestBuildPoolsKeepsPoolIDAsIs(t *testing.T) {
	pools, err := BuildPools(
		tokenListFromJSON(t, `{"base_token": {"symbol": "A"}, "tokens": [{"symbol": "B", "pool_id": 0}, {"symbol": "C", "pool_id": "pool-c"}]}`),
		rewardsListFromJSON(t, `{"list": []}`),
	)
	require.NoError(t, err)
	require.Len(t, pools, 2)

	assert.Contains(t, encode(t, pools[0]), `"pool_id": 0`)
	assert.Equal(t, "pool-c", pools[1].PoolID.Get())
}

func TestCleanTokenList(t *testing.T) {
	tokenList := tokenListFromJSON(t, sampleTokenList)

	cleaned, err := CleanTokenList(tokenList)
	require.NoError(t, err)

	tokens, ok := cleaned["tokens"].([]interface{})
	require.True(t, ok)
	assert.Len(t, tokens, 4)
	for _, token := range tokens {
		info := token.(model.TokenInfo)
		assert.NotContains(t, info, "pool_id")
		assert.NotContains(t, info, "swap_address")
		assert.NotContains(t, info, "staking_address")
		assert.NotContains(t, info, "rewards_addresses")
	}

	assert.Equal(t, model.TokenInfo{
		"symbol":   "JUNO",
		"name":     "Juno",
		"decimals": tokenList["base_token"].(map[string]interface{})["decimals"],
		"logoURI":  "https://example.com/juno.png",
	}, cleaned["base_token"])
	assert.NotContains(t, cleaned, "baseToken")

	for _, key := range []string{"logoURI", "keywords", "tags", "version"} {
		assert.Equal(t, tokenList[key], cleaned[key], key)
	}
}

func TestCleanTokenListLegacyBaseTokenKey(t *testing.T) {
	m := New(Options{LegacyBaseTokenKey: true})

	cleaned, err := m.CleanTokenList(tokenListFromJSON(t, `{"name": "list", "base_token": {"symbol": "A", "pool_id": 1}, "tokens": []}`))
	require.NoError(t, err)

	assert.JSONEq(t, `{"name": "list", "baseToken": {"symbol": "A"}, "tokens": []}`, encode(t, cleaned))
}

func TestCleanTokenListErrors(t *testing.T) {
	_, err := CleanTokenList(tokenListFromJSON(t, `{"tokens": []}`))
	require.ErrorIs(t, err, model.ErrMissingField)

	_, err = CleanTokenList(tokenListFromJSON(t, `{"base_token": {"symbol": "A"}}`))
	require.ErrorIs(t, err, model.ErrMissingField)
}

package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireMissingField(t *testing.T, err error, path string) *MissingFieldError {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, ErrMissingField)

	var fieldErr *MissingFieldError
	require.True(t, errors.As(err, &fieldErr))
	assert.Equal(t, path, fieldErr.Path)
	return fieldErr
}

func TestTokenListBaseToken(t *testing.T) {
	list := TokenList{"base_token": map[string]interface{}{"symbol": "JUNO", "pool_id": "x"}}

	base, err := list.BaseToken()
	require.NoError(t, err)
	symbol, ok := base.Symbol()
	assert.True(t, ok)
	assert.Equal(t, "JUNO", symbol)
}

func TestTokenListBaseTokenErrors(t *testing.T) {
	_, err := TokenList{}.BaseToken()
	requireMissingField(t, err, "base_token")

	_, err = TokenList{"base_token": nil}.BaseToken()
	requireMissingField(t, err, "base_token")

	_, err = TokenList{"base_token": "JUNO"}.BaseToken()
	fieldErr := requireMissingField(t, err, "base_token")
	assert.Equal(t, "not an object", fieldErr.Reason)

	_, err = TokenList{"base_token": map[string]interface{}{"name": "Juno"}}.BaseToken()
	requireMissingField(t, err, "base_token.symbol")
}

func TestTokenListTokens(t *testing.T) {
	list := TokenList{"tokens": []interface{}{
		map[string]interface{}{"symbol": "A"},
		map[string]interface{}{"symbol": "B", "swap_address": "sw"},
	}}

	tokens, err := list.Tokens()
	require.NoError(t, err)
	require.Len(t, tokens, 2)
	assert.Equal(t, "sw", tokens[1].String("swap_address"))
	assert.Equal(t, "", tokens[0].String("swap_address"))
}

func TestTokenListTokensErrors(t *testing.T) {
	_, err := TokenList{}.Tokens()
	requireMissingField(t, err, "tokens")

	_, err = TokenList{"tokens": map[string]interface{}{}}.Tokens()
	fieldErr := requireMissingField(t, err, "tokens")
	assert.Equal(t, "not an array", fieldErr.Reason)

	_, err = TokenList{"tokens": []interface{}{map[string]interface{}{"symbol": "A"}, "B"}}.Tokens()
	requireMissingField(t, err, "tokens[1]")

	_, err = TokenList{"tokens": []interface{}{map[string]interface{}{"symbol": "A"}, map[string]interface{}{}}}.Tokens()
	requireMissingField(t, err, "tokens[1].symbol")
}

func TestRewardsListEntries(t *testing.T) {
	list := RewardsList{"list": []interface{}{
		map[string]interface{}{"swap_address": "sw", "staking_address": "st", "rewards_tokens": []interface{}{"R"}},
		map[string]interface{}{"staking_address": 42},
	}}

	entries, err := list.Entries()
	require.NoError(t, err)
	require.Len(t, entries, 2)

	swap, ok := entries[0].SwapAddress()
	assert.True(t, ok)
	assert.Equal(t, "sw", swap)
	assert.Equal(t, "st", entries[0].StakingAddress())
	assert.Equal(t, []interface{}{"R"}, entries[0].RewardsTokens())

	_, ok = entries[1].SwapAddress()
	assert.False(t, ok)
	assert.Equal(t, "", entries[1].StakingAddress())
	assert.Nil(t, entries[1].RewardsTokens())
}

func TestRewardsListEntriesErrors(t *testing.T) {
	_, err := RewardsList{}.Entries()
	requireMissingField(t, err, "list")

	_, err = RewardsList{"list": "nope"}.Entries()
	requireMissingField(t, err, "list")

	_, err = RewardsList{"list": []interface{}{nil}}.Entries()
	requireMissingField(t, err, "list[0]")
}

func TestMissingFieldErrorMessage(t *testing.T) {
	assert.Equal(t, `missing field "tokens"`, (&MissingFieldError{Path: "tokens"}).Error())
	assert.Equal(t, `field "tokens": not an array`, (&MissingFieldError{Path: "tokens", Reason: "not an array"}).Error())
}

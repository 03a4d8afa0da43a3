package model

import "fmt"

// TokenList is a decoded token_list.json document.
type TokenList map[string]interface{}

// BaseToken returns the base_token object. The token must carry a symbol.
func (l TokenList) BaseToken() (TokenInfo, error) {
	raw, ok := l[FieldBaseToken]
	if !ok || raw == nil {
		return nil, missingField(FieldBaseToken)
	}
	obj, ok := asObject(raw)
	if !ok {
		return nil, invalidField(FieldBaseToken, "not an object")
	}
	if _, ok := obj[FieldSymbol]; !ok {
		return nil, missingField(FieldBaseToken + "." + FieldSymbol)
	}
	return TokenInfo(obj), nil
}

// Tokens returns the tokens array in document order.
func (l TokenList) Tokens() ([]TokenInfo, error) {
	raw, ok := l[FieldTokens]
	if !ok || raw == nil {
		return nil, missingField(FieldTokens)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, invalidField(FieldTokens, "not an array")
	}

	tokens := make([]TokenInfo, 0, len(items))
	for i, item := range items {
		path := fmt.Sprintf("%s[%d]", FieldTokens, i)
		obj, ok := asObject(item)
		if !ok {
			return nil, invalidField(path, "not an object")
		}
		if _, ok := obj[FieldSymbol]; !ok {
			return nil, missingField(path + "." + FieldSymbol)
		}
		tokens = append(tokens, TokenInfo(obj))
	}
	return tokens, nil
}

// Value returns a copy of an opaque top-level value such as logoURI or version,
// nil when the key is absent.
func (l TokenList) Value(key string) *Value {
	return lookupValue(l, key)
}

// RewardsList is a decoded rewards_config.json document.
type RewardsList map[string]interface{}

// Entries returns the list array in document order.
func (l RewardsList) Entries() ([]RewardEntry, error) {
	raw, ok := l[FieldList]
	if !ok || raw == nil {
		return nil, missingField(FieldList)
	}
	items, ok := raw.([]interface{})
	if !ok {
		return nil, invalidField(FieldList, "not an array")
	}

	entries := make([]RewardEntry, 0, len(items))
	for i, item := range items {
		obj, ok := asObject(item)
		if !ok {
			return nil, invalidField(fmt.Sprintf("%s[%d]", FieldList, i), "not an object")
		}
		entries = append(entries, RewardEntry(obj))
	}
	return entries, nil
}

// RewardEntry is one element of a rewards list, keyed by swap_address.
type RewardEntry map[string]interface{}

// SwapAddress returns the raw join key and whether it is present.
func (e RewardEntry) SwapAddress() (interface{}, bool) {
	v, ok := e[FieldSwapAddress]
	return v, ok
}

// StakingAddress returns the staking address override, "" when absent or not a string.
func (e RewardEntry) StakingAddress() string {
	s, _ := e[FieldStakingAddress].(string)
	return s
}

// RewardsTokens returns the rewards_tokens value, nil when absent or null.
func (e RewardEntry) RewardsTokens() interface{} {
	return e[FieldRewardsTokens]
}

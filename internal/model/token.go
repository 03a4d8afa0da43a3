package model

// Well-known keys of token, token list and rewards documents.
const (
	FieldSymbol           = "symbol"
	FieldPoolID           = "pool_id"
	FieldSwapAddress      = "swap_address"
	FieldStakingAddress   = "staking_address"
	FieldRewardsAddresses = "rewards_addresses"
	FieldRewardsTokens    = "rewards_tokens"

	FieldBaseToken       = "base_token"
	FieldLegacyBaseToken = "baseToken"
	FieldTokens          = "tokens"
	FieldLogoURI         = "logoURI"
	FieldKeywords        = "keywords"
	FieldTags            = "tags"
	FieldVersion         = "version"

	FieldList = "list"
)

// TokenInfo is a token object from a token list. Only a handful of keys carry meaning
// for pool building; everything else is passed through untouched.
type TokenInfo map[string]interface{}

// Lookup returns the raw value stored under key and whether the key is present.
func (t TokenInfo) Lookup(key string) (interface{}, bool) {
	v, ok := t[key]
	return v, ok
}

// Value returns a copy of the value under key, nil when the key is absent.
func (t TokenInfo) Value(key string) *Value {
	return lookupValue(t, key)
}

// String returns the value under key when it is a string, otherwise "".
func (t TokenInfo) String(key string) string {
	s, _ := t[key].(string)
	return s
}

// Symbol returns the raw symbol value.
func (t TokenInfo) Symbol() (interface{}, bool) {
	return t.Lookup(FieldSymbol)
}

// Clone returns a deep copy of the token.
func (t TokenInfo) Clone() TokenInfo {
	if t == nil {
		return nil
	}
	out := make(TokenInfo, len(t))
	for k, v := range t {
		out[k] = Clone(v)
	}
	return out
}

func asObject(value interface{}) (map[string]interface{}, bool) {
	switch typed := value.(type) {
	case map[string]interface{}:
		return typed, typed != nil
	case TokenInfo:
		return typed, typed != nil
	case RewardEntry:
		return typed, typed != nil
	default:
		return nil, false
	}
}

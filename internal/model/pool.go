package model

// PoolListName is the fixed name of every generated pool list.
const PoolListName = "Pool list"

// TimestampLayout renders a date the way pool lists have always carried it, e.g. "Fri Oct 16 2026".
const TimestampLayout = "Mon Jan 02 2006"

// Pool is a trading pool of the base token against one counterparty token.
type Pool struct {
	PoolID         *Value       `json:"pool_id,omitempty"`
	PoolAssets     [2]TokenInfo `json:"pool_assets"`
	SwapAddress    string       `json:"swap_address"`
	StakingAddress string       `json:"staking_address"`
	RewardsTokens  interface{}  `json:"rewards_tokens"`
}

// PoolList is the pool_list.json document.
type PoolList struct {
	Name      string    `json:"name"`
	BaseToken TokenInfo `json:"base_token,omitempty"`
	LogoURI   *Value    `json:"logoURI,omitempty"`
	Keywords  *Value    `json:"keywords,omitempty"`
	Tags      *Value    `json:"tags,omitempty"`
	Timestamp string    `json:"timestamp"`
	Pools     []Pool    `json:"pools"`
	Version   *Value    `json:"version,omitempty"`
}

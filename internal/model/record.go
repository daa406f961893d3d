package model

import "time"

// RaoPerTAO is the number of rao (the chain's smallest unit) in one TAO.
const RaoPerTAO = 1e9

// StakingRecord is one daily network-wide staking snapshot.
// Amounts are in TAO. Shared by transform, chart and saver packages.
type StakingRecord struct {
	Date           time.Time `json:"date"`
	BlockNumber    int64     `json:"block_number"`
	TotalStaked    float64   `json:"staked_tao"`
	CurrentSupply  float64   `json:"issued_tao"`
	Circulating    float64   `json:"circulating_tao"`
	TotalAccounts  int64     `json:"accounts"`
	BalanceHolders int64     `json:"balance_holders"`

	// Derived by transform.Enrich. The moving averages are nil until the
	// trailing window is full.
	StakedPercentage float64  `json:"staked_percentage"`
	StakedPctMA7     *float64 `json:"staked_pct_ma7,omitempty"`
	StakedPctMA30    *float64 `json:"staked_pct_ma30,omitempty"`
}

// Summary aggregates one full enriched sequence.
type Summary struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	DataPoints  int

	// Latest snapshot.
	CurrentSupply    float64
	TotalStaked      float64
	Circulating      float64
	StakedPercentage float64
	TotalAccounts    int64
	BalanceHolders   int64

	// First snapshot of the period, kept for growth context.
	FirstTotalAccounts int64

	// Over the whole period.
	MeanStakedPct   float64
	MinStakedPct    float64
	MaxStakedPct    float64
	StdDevStakedPct float64

	// Growth (last vs first), in percent.
	SupplyGrowthPct   float64
	StakedGrowthPct   float64
	AccountsGrowthPct float64
}

package taostats

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"taostats/internal/model"
)

// RawRecord is one daily snapshot as returned by the stats history endpoint.
// Amounts are decimal strings in rao.
type RawRecord struct {
	Timestamp      string        `json:"timestamp"`
	BlockNumber    FlexibleInt64 `json:"block_number"`
	Issued         RaoAmount     `json:"issued"`
	Staked         RaoAmount     `json:"staked"`
	Accounts       FlexibleInt64 `json:"accounts"`
	BalanceHolders FlexibleInt64 `json:"balance_holders"`
}

// ToRecord converts a RawRecord to a model.StakingRecord with amounts in TAO.
// Derived fields are left for the transformer.
func (r RawRecord) ToRecord() (model.StakingRecord, error) {
	ts, err := time.Parse(time.RFC3339, r.Timestamp)
	if err != nil {
		return model.StakingRecord{}, fmt.Errorf("parse timestamp %q: %w", r.Timestamp, err)
	}
	issued := float64(r.Issued) / model.RaoPerTAO
	staked := float64(r.Staked) / model.RaoPerTAO
	return model.StakingRecord{
		Date:           ts.UTC(),
		BlockNumber:    r.BlockNumber.Int64(),
		TotalStaked:    staked,
		CurrentSupply:  issued,
		Circulating:    issued - staked,
		TotalAccounts:  r.Accounts.Int64(),
		BalanceHolders: r.BalanceHolders.Int64(),
	}, nil
}

// HistoryResponse is the stats history endpoint envelope.
type HistoryResponse struct {
	Data       []RawRecord `json:"data"`
	Pagination Pagination  `json:"pagination"`
}

// Pagination metadata accompanying each page.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	TotalItems  int   `json:"total_items"`
	TotalPages  int   `json:"total_pages"`
	NextPage    *int  `json:"next_page"`
	PrevPage    *int  `json:"prev_page"`
}

// FlexibleInt64 parses a string, float (scientific notation) or int to int64.
type FlexibleInt64 int64

// UnmarshalJSON parses string, float or int.
func (f *FlexibleInt64) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		val, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return err
		}
		*f = FlexibleInt64(int64(val))
		return nil
	}

	var floatVal float64
	if err := json.Unmarshal(data, &floatVal); err == nil {
		*f = FlexibleInt64(int64(floatVal))
		return nil
	}

	return fmt.Errorf("cannot parse as int64: %s", string(data))
}

// Int64 returns the int64 value.
func (f FlexibleInt64) Int64() int64 {
	return int64(f)
}

// RaoAmount parses a rao amount given as a decimal string or a bare number.
// Held as float64 because supply-scale amounts exceed int64 precision needs
// only after the TAO conversion anyway.
type RaoAmount float64

// UnmarshalJSON parses string or number.
func (a *RaoAmount) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		val, err := strconv.ParseFloat(str, 64)
		if err != nil {
			return fmt.Errorf("cannot parse amount %q: %w", str, err)
		}
		*a = RaoAmount(val)
		return nil
	}

	var floatVal float64
	if err := json.Unmarshal(data, &floatVal); err == nil {
		*a = RaoAmount(floatVal)
		return nil
	}

	return fmt.Errorf("cannot parse as amount: %s", string(data))
}

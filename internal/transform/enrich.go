// Package transform derives staking metrics from raw daily records and
// aggregates them into a run summary. All functions are pure: inputs are
// never mutated.
package transform

import (
	"sort"

	"taostats/internal/model"
)

// Moving-average window sizes, in days.
const (
	MA7Window  = 7
	MA30Window = 30
)

// Enrich sorts records by date ascending and computes the derived columns:
// staked percentage and its 7- and 30-day trailing moving averages. The
// moving average at index i exists only when i >= W-1; earlier positions
// stay nil rather than averaging a short window. A record with zero current
// supply yields a DataError naming its date.
func Enrich(records []model.StakingRecord) ([]model.StakingRecord, error) {
	out := make([]model.StakingRecord, len(records))
	copy(out, records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})

	pcts := make([]float64, len(out))
	for i := range out {
		if out[i].CurrentSupply == 0 {
			return nil, &model.DataError{Date: out[i].Date, Reason: "current supply is zero"}
		}
		out[i].Circulating = out[i].CurrentSupply - out[i].TotalStaked
		out[i].StakedPercentage = out[i].TotalStaked / out[i].CurrentSupply * 100
		pcts[i] = out[i].StakedPercentage
		out[i].StakedPctMA7 = trailingMean(pcts, i, MA7Window)
		out[i].StakedPctMA30 = trailingMean(pcts, i, MA30Window)
	}
	return out, nil
}

// trailingMean returns the mean of the window of size w ending at index i,
// or nil while fewer than w samples exist.
func trailingMean(vals []float64, i, w int) *float64 {
	if i < w-1 {
		return nil
	}
	var sum float64
	for _, v := range vals[i-w+1 : i+1] {
		sum += v
	}
	m := sum / float64(w)
	return &m
}

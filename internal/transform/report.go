package transform

import (
	"fmt"
	"io"
	"math"

	"taostats/internal/model"
)

// Summarize aggregates an enriched sequence in a single pass. The sequence
// must be non-empty and sorted by date ascending (Enrich guarantees both).
func Summarize(records []model.StakingRecord) (model.Summary, error) {
	if len(records) == 0 {
		return model.Summary{}, &model.DataError{Reason: "empty dataset"}
	}

	first, last := records[0], records[len(records)-1]

	minPct, maxPct := records[0].StakedPercentage, records[0].StakedPercentage
	var sum, sumSq float64
	for _, r := range records {
		p := r.StakedPercentage
		if p < minPct {
			minPct = p
		}
		if p > maxPct {
			maxPct = p
		}
		sum += p
		sumSq += p * p
	}
	n := float64(len(records))
	mean := sum / n
	variance := sumSq/n - mean*mean
	if variance < 0 {
		variance = 0 // float rounding near zero spread
	}

	supplyGrowth, err := growth(first.CurrentSupply, last.CurrentSupply, first, "current supply")
	if err != nil {
		return model.Summary{}, err
	}
	stakedGrowth, err := growth(first.TotalStaked, last.TotalStaked, first, "total staked")
	if err != nil {
		return model.Summary{}, err
	}
	accountsGrowth, err := growth(float64(first.TotalAccounts), float64(last.TotalAccounts), first, "total accounts")
	if err != nil {
		return model.Summary{}, err
	}

	return model.Summary{
		PeriodStart:        first.Date,
		PeriodEnd:          last.Date,
		DataPoints:         len(records),
		CurrentSupply:      last.CurrentSupply,
		TotalStaked:        last.TotalStaked,
		Circulating:        last.Circulating,
		StakedPercentage:   last.StakedPercentage,
		TotalAccounts:      last.TotalAccounts,
		BalanceHolders:     last.BalanceHolders,
		FirstTotalAccounts: first.TotalAccounts,
		MeanStakedPct:      mean,
		MinStakedPct:       minPct,
		MaxStakedPct:       maxPct,
		StdDevStakedPct:    math.Sqrt(variance),
		SupplyGrowthPct:    supplyGrowth,
		StakedGrowthPct:    stakedGrowth,
		AccountsGrowthPct:  accountsGrowth,
	}, nil
}

// growth is (last-first)/first*100. A zero baseline is an explicit data
// error, never an infinity.
func growth(first, last float64, rec model.StakingRecord, field string) (float64, error) {
	if first == 0 {
		return 0, &model.DataError{Date: rec.Date, Reason: "zero baseline for " + field + " growth"}
	}
	return (last - first) / first * 100, nil
}

// Print writes the human-readable summary block.
func Print(w io.Writer, s model.Summary) {
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintln(w, "TAO STAKING ANALYSIS SUMMARY")
	fmt.Fprintln(w, "============================================================")
	fmt.Fprintf(w, "Data Period: %s to %s (%d points)\n\n",
		s.PeriodStart.Format("2006-01-02"), s.PeriodEnd.Format("2006-01-02"), s.DataPoints)

	fmt.Fprintln(w, "CURRENT STATUS:")
	fmt.Fprintf(w, "  Current Supply:     %14.0f TAO\n", s.CurrentSupply)
	fmt.Fprintf(w, "  Total Staked:       %14.0f TAO\n", s.TotalStaked)
	fmt.Fprintf(w, "  Circulating Supply: %14.0f TAO\n", s.Circulating)
	fmt.Fprintf(w, "  Staking Percentage: %14.2f %%\n", s.StakedPercentage)
	fmt.Fprintf(w, "  Total Accounts:     %14d\n", s.TotalAccounts)
	fmt.Fprintf(w, "  Balance Holders:    %14d\n\n", s.BalanceHolders)

	fmt.Fprintln(w, "STAKING STATISTICS:")
	fmt.Fprintf(w, "  Average Staked %%:   %14.2f\n", s.MeanStakedPct)
	fmt.Fprintf(w, "  Minimum Staked %%:   %14.2f\n", s.MinStakedPct)
	fmt.Fprintf(w, "  Maximum Staked %%:   %14.2f\n", s.MaxStakedPct)
	fmt.Fprintf(w, "  Std Deviation:      %14.2f\n\n", s.StdDevStakedPct)

	fmt.Fprintln(w, "GROWTH METRICS:")
	fmt.Fprintf(w, "  Accounts:           %14d -> %d\n", s.FirstTotalAccounts, s.TotalAccounts)
	fmt.Fprintf(w, "  Supply Growth:      %14.1f %%\n", s.SupplyGrowthPct)
	fmt.Fprintf(w, "  Staked Growth:      %14.1f %%\n", s.StakedGrowthPct)
	fmt.Fprintf(w, "  Accounts Growth:    %14.1f %%\n", s.AccountsGrowthPct)
}

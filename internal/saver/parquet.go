package saver

import (
	"github.com/parquet-go/parquet-go"

	"taostats/internal/model"
)

// ParquetSaver writes the table as Parquet. Dates are stored as Unix
// milliseconds; the moving-average columns are optional.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

// parquetRow flattens a StakingRecord for the parquet schema.
type parquetRow struct {
	Date             int64    `parquet:"date"`
	BlockNumber      int64    `parquet:"block_number"`
	IssuedTAO        float64  `parquet:"issued_tao"`
	StakedTAO        float64  `parquet:"staked_tao"`
	CirculatingTAO   float64  `parquet:"circulating_tao"`
	StakedPercentage float64  `parquet:"staked_percentage"`
	StakedPctMA7     *float64 `parquet:"staked_pct_ma7,optional"`
	StakedPctMA30    *float64 `parquet:"staked_pct_ma30,optional"`
	Accounts         int64    `parquet:"accounts"`
	BalanceHolders   int64    `parquet:"balance_holders"`
}

func (ParquetSaver) Save(records []model.StakingRecord, path string) error {
	rows := make([]parquetRow, len(records))
	for i, r := range records {
		rows[i] = parquetRow{
			Date:             r.Date.UnixMilli(),
			BlockNumber:      r.BlockNumber,
			IssuedTAO:        r.CurrentSupply,
			StakedTAO:        r.TotalStaked,
			CirculatingTAO:   r.Circulating,
			StakedPercentage: r.StakedPercentage,
			StakedPctMA7:     r.StakedPctMA7,
			StakedPctMA30:    r.StakedPctMA30,
			Accounts:         r.TotalAccounts,
			BalanceHolders:   r.BalanceHolders,
		}
	}
	return parquet.WriteFile(path, rows)
}

// Package saver serializes the enriched staking table to disk in one of
// several formats behind a common interface.
package saver

import (
	"strings"

	"taostats/internal/model"
)

// TableSaver writes the full enriched table to path. High-level code injects
// the implementation; the pipeline depends only on the interface.
type TableSaver interface {
	Save(records []model.StakingRecord, path string) error
	Extension() string
}

// Header columns shared by the row-oriented formats (csv, xlsx), raw fields
// first, derived last-but-ordered as the analysis reads them.
var columns = []string{
	"date",
	"block_number",
	"issued_tao",
	"staked_tao",
	"circulating_tao",
	"staked_percentage",
	"staked_pct_ma7",
	"staked_pct_ma30",
	"accounts",
	"balance_holders",
}

// NewTableSaver creates an implementation by format (csv, json, parquet,
// xlsx). Returns nil if the format is not supported.
func NewTableSaver(format string) TableSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "json":
		return JSONSaver{}
	case "parquet":
		return ParquetSaver{}
	case "xlsx":
		return XLSXSaver{}
	default:
		return nil
	}
}

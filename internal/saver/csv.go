package saver

import (
	"encoding/csv"
	"os"
	"strconv"

	"taostats/internal/model"
)

// CSVSaver writes the table as CSV, one header row plus one row per record.
// Moving averages that do not exist yet are written as empty fields, not 0.
type CSVSaver struct{}

func (CSVSaver) Extension() string { return "csv" }

func (CSVSaver) Save(records []model.StakingRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)

	if err := w.Write(columns); err != nil {
		return err
	}
	for _, r := range records {
		if err := w.Write([]string{
			r.Date.Format("2006-01-02"),
			strconv.FormatInt(r.BlockNumber, 10),
			floatStr(r.CurrentSupply),
			floatStr(r.TotalStaked),
			floatStr(r.Circulating),
			floatStr(r.StakedPercentage),
			optFloatStr(r.StakedPctMA7),
			optFloatStr(r.StakedPctMA30),
			strconv.FormatInt(r.TotalAccounts, 10),
			strconv.FormatInt(r.BalanceHolders, 10),
		}); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func floatStr(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func optFloatStr(f *float64) string {
	if f == nil {
		return ""
	}
	return floatStr(*f)
}

package saver

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"taostats/internal/model"
)

// XLSXSaver writes the table as a single-sheet workbook. Missing moving
// averages become empty cells.
type XLSXSaver struct{}

func (XLSXSaver) Extension() string { return "xlsx" }

const sheetName = "Staking History"

func (XLSXSaver) Save(records []model.StakingRecord, path string) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return err
	}

	header := make([]interface{}, len(columns))
	for i, c := range columns {
		header[i] = c
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return err
	}

	for i, r := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := []interface{}{
			r.Date.Format("2006-01-02"),
			r.BlockNumber,
			r.CurrentSupply,
			r.TotalStaked,
			r.Circulating,
			r.StakedPercentage,
			optCell(r.StakedPctMA7),
			optCell(r.StakedPctMA30),
			r.TotalAccounts,
			r.BalanceHolders,
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
	}

	return f.SaveAs(path)
}

func optCell(f *float64) interface{} {
	if f == nil {
		return nil
	}
	return *f
}

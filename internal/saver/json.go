package saver

import (
	"encoding/json"
	"os"

	"taostats/internal/model"
)

// JSONSaver writes the table as an indented JSON array. Missing moving
// averages are omitted via the model's omitempty tags.
type JSONSaver struct{}

func (JSONSaver) Extension() string { return "json" }

func (JSONSaver) Save(records []model.StakingRecord, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(records)
}

package chart

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"taostats/internal/model"
	"taostats/internal/transform"
)

func fixture(t *testing.T, n int) ([]model.StakingRecord, model.Summary) {
	t.Helper()
	raw := make([]model.StakingRecord, n)
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := range raw {
		raw[i] = model.StakingRecord{
			Date:           start.AddDate(0, 0, i),
			BlockNumber:    int64(1000 + i),
			TotalStaked:    5_000_000 + float64(i)*1_500,
			CurrentSupply:  9_000_000 + float64(i)*2_000,
			TotalAccounts:  int64(300_000 + i*120),
			BalanceHolders: int64(100_000 + i*60),
		}
	}
	enriched, err := transform.Enrich(raw)
	require.NoError(t, err)
	summary, err := transform.Summarize(enriched)
	require.NoError(t, err)
	return enriched, summary
}

func TestRenderFile_SixPanelGrid(t *testing.T) {
	records, summary := fixture(t, 45)
	path := filepath.Join(t.TempDir(), "analysis.png")

	require.NoError(t, NewRenderer().RenderFile(records, summary, path))

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, gridCols*panelWidth, img.Bounds().Dx())
	assert.Equal(t, gridRows*panelHeight, img.Bounds().Dy())
}

func TestRenderFile_ShortSeriesWithoutMAs(t *testing.T) {
	// 5 records: neither moving-average window fills; panel 6 must still render.
	records, summary := fixture(t, 5)
	path := filepath.Join(t.TempDir(), "analysis.png")
	require.NoError(t, NewRenderer().RenderFile(records, summary, path))
}

func TestRenderFile_TooFewRecords(t *testing.T) {
	records, _ := fixture(t, 2)
	path := filepath.Join(t.TempDir(), "analysis.png")

	err := NewRenderer().RenderFile(records[:1], model.Summary{}, path)
	var derr *model.DataError
	require.ErrorAs(t, err, &derr)

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "no file on failure")
}

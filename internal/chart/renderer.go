// Package chart renders the staking analysis as a fixed grid of six PNG
// panels composited into a single image.
package chart

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"os"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"taostats/internal/model"
)

// Panel geometry: 2 columns x 3 rows.
const (
	panelWidth  = 900
	panelHeight = 420
	gridCols    = 2
	gridRows    = 3
)

// Matplotlib-era palette carried over from the original analysis.
var (
	colorSupply   = drawing.ColorFromHex("2E86AB")
	colorStaked   = drawing.ColorFromHex("F18F01")
	colorCirc     = drawing.ColorFromHex("00BF63")
	colorMA7      = drawing.ColorFromHex("FF6B35")
	colorMA30     = drawing.ColorFromHex("004E89")
	colorAccounts = drawing.ColorFromHex("7209B7")
	colorMeanLine = chart.ColorRed
	colorDaily    = drawing.Color{R: 0xB0, G: 0xB0, B: 0xB0, A: 255}
)

// Renderer draws the six-panel staking overview.
type Renderer struct{}

// NewRenderer returns a Renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// RenderFile renders the grid for the enriched sequence and writes a single
// PNG to path. On failure the partial file is removed. At least two records
// are required to draw a line.
func (r *Renderer) RenderFile(records []model.StakingRecord, summary model.Summary, path string) error {
	img, err := r.render(records, summary)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return err
	}
	return nil
}

func (r *Renderer) render(records []model.StakingRecord, summary model.Summary) (image.Image, error) {
	if len(records) < 2 {
		return nil, &model.DataError{Reason: "need at least two records to chart"}
	}

	dates := make([]time.Time, len(records))
	supply := make([]float64, len(records))
	staked := make([]float64, len(records))
	pct := make([]float64, len(records))
	accounts := make([]float64, len(records))
	holders := make([]float64, len(records))
	for i, rec := range records {
		dates[i] = rec.Date
		supply[i] = rec.CurrentSupply
		staked[i] = rec.TotalStaked
		pct[i] = rec.StakedPercentage
		accounts[i] = float64(rec.TotalAccounts)
		holders[i] = float64(rec.BalanceHolders)
	}

	panels := []func() ([]byte, error){
		func() ([]byte, error) { return r.panelPctVsSupply(dates, pct, supply) },
		func() ([]byte, error) { return r.panelTotalStaked(dates, staked) },
		func() ([]byte, error) { return r.panelPctWithMean(dates, pct, summary.MeanStakedPct) },
		func() ([]byte, error) { return r.panelSupplyGrowth(dates, supply) },
		func() ([]byte, error) { return r.panelAccounts(dates, accounts, holders) },
		func() ([]byte, error) { return r.panelMovingAverages(records, dates, pct) },
	}

	grid := image.NewRGBA(image.Rect(0, 0, gridCols*panelWidth, gridRows*panelHeight))
	draw.Draw(grid, grid.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	for i, renderPanel := range panels {
		buf, err := renderPanel()
		if err != nil {
			return nil, fmt.Errorf("panel %d: %w", i+1, err)
		}
		img, err := png.Decode(bytes.NewReader(buf))
		if err != nil {
			return nil, fmt.Errorf("panel %d: decode: %w", i+1, err)
		}
		x := (i % gridCols) * panelWidth
		y := (i / gridCols) * panelHeight
		rect := image.Rect(x, y, x+panelWidth, y+panelHeight)
		draw.Draw(grid, rect, img, image.Point{}, draw.Over)
	}
	return grid, nil
}

func lineStyle(c drawing.Color) chart.Style {
	return chart.Style{StrokeColor: c, StrokeWidth: 2.0}
}

func (r *Renderer) newChart(title string) chart.Chart {
	return chart.Chart{
		Title:      title,
		Width:      panelWidth,
		Height:     panelHeight,
		Background: chart.Style{Padding: chart.Box{Top: 36, Left: 16, Right: 16, Bottom: 12}},
		XAxis: chart.XAxis{
			ValueFormatter: chart.TimeValueFormatterWithFormat("2006-01-02"),
		},
	}
}

func renderPNG(ch chart.Chart, legend bool) ([]byte, error) {
	if legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Panel 1: staked percentage on the primary axis, current supply on the
// secondary axis.
func (r *Renderer) panelPctVsSupply(dates []time.Time, pct, supply []float64) ([]byte, error) {
	ch := r.newChart("Staked % vs Current Supply")
	ch.YAxis = chart.YAxis{Name: "Staked %"}
	ch.YAxisSecondary = chart.YAxis{Name: "Supply (TAO)"}
	ch.Series = []chart.Series{
		chart.TimeSeries{
			Name:    "Staked %",
			XValues: dates,
			YValues: pct,
			Style:   lineStyle(colorMA7),
		},
		chart.TimeSeries{
			Name:    "Current Supply",
			XValues: dates,
			YValues: supply,
			Style:   lineStyle(colorSupply),
			YAxis:   chart.YAxisSecondary,
		},
	}
	return renderPNG(ch, true)
}

// Panel 2: total staked TAO.
func (r *Renderer) panelTotalStaked(dates []time.Time, staked []float64) ([]byte, error) {
	ch := r.newChart("Total TAO Staked")
	ch.YAxis = chart.YAxis{Name: "Staked (TAO)"}
	ch.Series = []chart.Series{
		chart.TimeSeries{Name: "Total Staked", XValues: dates, YValues: staked, Style: lineStyle(colorStaked)},
	}
	return renderPNG(ch, false)
}

// Panel 3: staked percentage with a horizontal line at its period mean.
func (r *Renderer) panelPctWithMean(dates []time.Time, pct []float64, mean float64) ([]byte, error) {
	ch := r.newChart("Staking Percentage vs Period Mean")
	ch.YAxis = chart.YAxis{Name: "Staked %"}
	meanLine := make([]float64, len(dates))
	for i := range meanLine {
		meanLine[i] = mean
	}
	ch.Series = []chart.Series{
		chart.TimeSeries{Name: "Staked %", XValues: dates, YValues: pct, Style: lineStyle(colorMA7)},
		chart.TimeSeries{
			Name:    fmt.Sprintf("Mean %.1f%%", mean),
			XValues: dates,
			YValues: meanLine,
			Style: chart.Style{
				StrokeColor:     colorMeanLine,
				StrokeWidth:     1.5,
				StrokeDashArray: []float64{5.0, 5.0},
			},
		},
	}
	return renderPNG(ch, true)
}

// Panel 4: current supply alone (growth view).
func (r *Renderer) panelSupplyGrowth(dates []time.Time, supply []float64) ([]byte, error) {
	ch := r.newChart("Current Supply Growth")
	ch.YAxis = chart.YAxis{Name: "Supply (TAO)"}
	ch.Series = []chart.Series{
		chart.TimeSeries{Name: "Current Supply", XValues: dates, YValues: supply, Style: lineStyle(colorCirc)},
	}
	return renderPNG(ch, false)
}

// Panel 5: total accounts and balance holders.
func (r *Renderer) panelAccounts(dates []time.Time, accounts, holders []float64) ([]byte, error) {
	ch := r.newChart("Network Growth: Accounts")
	ch.YAxis = chart.YAxis{Name: "Accounts"}
	ch.Series = []chart.Series{
		chart.TimeSeries{Name: "Total Accounts", XValues: dates, YValues: accounts, Style: lineStyle(colorAccounts)},
		chart.TimeSeries{Name: "Balance Holders", XValues: dates, YValues: holders, Style: lineStyle(colorSupply)},
	}
	return renderPNG(ch, true)
}

// Panel 6: daily staked percentage overlaid with MA7 and MA30. The MA series
// start where their windows fill.
func (r *Renderer) panelMovingAverages(records []model.StakingRecord, dates []time.Time, pct []float64) ([]byte, error) {
	ch := r.newChart("Staking Percentage Moving Averages")
	ch.YAxis = chart.YAxis{Name: "Staked %"}

	ma7Dates, ma7 := maSeries(records, func(r model.StakingRecord) *float64 { return r.StakedPctMA7 })
	ma30Dates, ma30 := maSeries(records, func(r model.StakingRecord) *float64 { return r.StakedPctMA30 })

	series := []chart.Series{
		chart.TimeSeries{Name: "Daily", XValues: dates, YValues: pct, Style: chart.Style{StrokeColor: colorDaily, StrokeWidth: 1.0}},
	}
	if len(ma7) >= 2 {
		series = append(series, chart.TimeSeries{Name: "7-day MA", XValues: ma7Dates, YValues: ma7, Style: lineStyle(colorMA7)})
	}
	if len(ma30) >= 2 {
		series = append(series, chart.TimeSeries{Name: "30-day MA", XValues: ma30Dates, YValues: ma30, Style: lineStyle(colorMA30)})
	}
	ch.Series = series
	return renderPNG(ch, true)
}

func maSeries(records []model.StakingRecord, pick func(model.StakingRecord) *float64) ([]time.Time, []float64) {
	var dates []time.Time
	var vals []float64
	for _, r := range records {
		if v := pick(r); v != nil {
			dates = append(dates, r.Date)
			vals = append(vals, *v)
		}
	}
	return dates, vals
}

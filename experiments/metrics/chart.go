package metrics

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// WriteChart renders the rolling outcome rates as an HTML line chart.
func (w *Writer) WriteChart(title string, rates []Rate) (string, error) {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	steps := make([]string, 0, len(rates))
	p1 := make([]opts.LineData, 0, len(rates))
	p2 := make([]opts.LineData, 0, len(rates))
	draws := make([]opts.LineData, 0, len(rates))
	for _, rate := range rates {
		steps = append(steps, strconv.Itoa(rate.Games))
		p1 = append(p1, opts.LineData{Value: rate.P1})
		p2 = append(p2, opts.LineData{Value: rate.P2})
		draws = append(draws, opts.LineData{Value: rate.Draw})
	}

	line = line.SetXAxis(steps).
		AddSeries("player 1 wins", p1).
		AddSeries("player 2 wins", p2).
		AddSeries("draws", draws)

	page := components.NewPage()
	page.AddCharts(line)

	path := filepath.Join(w.baseDir, "rates.html")
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	err = page.Render(f)
	if err != nil {
		return "", fmt.Errorf("failed to render chart: %w", err)
	}
	return path, nil
}

// Package report renders simulation histories as images.
package report

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
)

// ErrEmptyHistory indicates there is nothing to plot.
var ErrEmptyHistory = errors.New("report: flash history is empty")

// FlashChart plots flashes per step. cells bounds the y axis and marks the
// synchronization level.
func FlashChart(history []int, cells int) (chart.Chart, error) {
	if len(history) == 0 {
		return chart.Chart{}, ErrEmptyHistory
	}
	xs := make([]float64, len(history))
	ys := make([]float64, len(history))
	for i, n := range history {
		xs[i] = float64(i + 1)
		ys[i] = float64(n)
	}
	xMax := float64(len(history))
	if xMax < 2 {
		xMax = 2
	}
	yMax := float64(cells)
	if yMax < 1 {
		yMax = 1
	}

	return chart.Chart{
		Width:  1024,
		Height: 320,
		XAxis: chart.XAxis{
			Name:  "step",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 1, Max: xMax},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "flashes",
			Style: chart.Style{FontSize: 10.0},
			Range: &chart.ContinuousRange{Min: 0, Max: yMax},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "flashes per step",
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: chart.ColorBlue, StrokeWidth: 2.0},
			},
		},
	}, nil
}

// WriteFlashChart renders the flash history as a PNG.
func WriteFlashChart(w io.Writer, history []int, cells int) error {
	graph, err := FlashChart(history, cells)
	if err != nil {
		return err
	}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("report: render flash chart: %w", err)
	}
	return nil
}

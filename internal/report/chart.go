package report

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/SUBOMI123/Simple-Scheduling-Simulator/internal/scheduler"
)

var ErrNoResults = errors.New("no results to chart")

const barWidth = vg.Length(18)

// newChart builds a grouped bar chart of average waiting and turnaround time,
// one group per result.
func newChart(results []scheduler.Result) (*plot.Plot, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	var (
		waiting    = make(plotter.Values, len(results))
		turnaround = make(plotter.Values, len(results))
		names      = make([]string, len(results))
	)
	for i, r := range results {
		s := Summarize(r)
		waiting[i] = s.AverageWaiting
		turnaround[i] = s.AverageTurnaround
		names[i] = string(r.Algorithm)
	}

	p := plot.New()
	p.Title.Text = "Average times by algorithm"
	p.Y.Label.Text = "Time (ticks)"
	p.X.Label.Text = "Algorithm"

	waitBars, err := plotter.NewBarChart(waiting, barWidth)
	if err != nil {
		return nil, fmt.Errorf("waiting bars: %w", err)
	}
	waitBars.LineStyle.Width = vg.Length(0)
	waitBars.Color = plotutil.Color(0)
	waitBars.Offset = -barWidth / 2

	turnaroundBars, err := plotter.NewBarChart(turnaround, barWidth)
	if err != nil {
		return nil, fmt.Errorf("turnaround bars: %w", err)
	}
	turnaroundBars.LineStyle.Width = vg.Length(0)
	turnaroundBars.Color = plotutil.Color(1)
	turnaroundBars.Offset = barWidth / 2

	p.Add(waitBars, turnaroundBars)
	p.Legend.Add("waiting", waitBars)
	p.Legend.Add("turnaround", turnaroundBars)
	p.Legend.Top = true
	p.NominalX(names...)
	return p, nil
}

// WriteChart encodes the chart for results to w as PNG.
func WriteChart(w io.Writer, results []scheduler.Result) error {
	p, err := newChart(results)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(6*vg.Inch, 4*vg.Inch, "png")
	if err != nil {
		return fmt.Errorf("encoding chart: %w", err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// SaveChart writes the PNG chart for results to path.
func SaveChart(path string, results []scheduler.Result) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: error creating chart file", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return WriteChart(f, results)
}

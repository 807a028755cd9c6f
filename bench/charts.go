package bench

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// RenderHTML writes the session as a self-contained HTML page of four
// charts: execution time by size, speedup and efficiency against worker
// count, and speedup grouped by size. Layout and content mirror the classic
// performance-visualization views for this benchmark.
func (r *Report) RenderHTML(w io.Writer) error {
	page := components.NewPage()
	page.AddCharts(
		r.timeChart(),
		r.speedupChart(),
		r.efficiencyChart(),
		r.speedupBySizeChart(),
	)
	return page.Render(w)
}

// sizeLabels renders the size grid as category-axis labels.
func (r *Report) sizeLabels() []string {
	labels := make([]string, 0, len(r.Config.Sizes))
	for _, n := range r.Config.Sizes {
		labels = append(labels, fmt.Sprintf("%d", n))
	}
	return labels
}

// workerLabels renders the worker grid as category-axis labels.
func (r *Report) workerLabels() []string {
	labels := make([]string, 0, len(r.Config.Workers))
	for _, w := range r.Config.Workers {
		labels = append(labels, fmt.Sprintf("%d", w))
	}
	return labels
}

// timeChart: execution time per size, one bar series per configuration,
// log-scaled so multi-magnitude sweeps stay readable.
func (r *Report) timeChart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Execution Time Comparison",
			Subtitle: "milliseconds per solve, log scale",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "log", Name: "ms"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "size"}),
	)

	bar.SetXAxis(r.sizeLabels())

	seqData := make([]opts.BarData, 0, len(r.Config.Sizes))
	for _, n := range r.Config.Sizes {
		if s := r.seq(n); s != nil {
			seqData = append(seqData, opts.BarData{Value: ms(s)})
		}
	}
	bar.AddSeries("sequential", seqData)

	for _, w := range r.Config.Workers {
		data := make([]opts.BarData, 0, len(r.Config.Sizes))
		for _, n := range r.Config.Sizes {
			if p := r.par(n, w); p != nil {
				data = append(data, opts.BarData{Value: ms(p)})
			}
		}
		bar.AddSeries(fmt.Sprintf("parallel w=%d", w), data)
	}

	return bar
}

// speedupChart: speedup against worker count, one line per size, plus the
// ideal linear-speedup reference.
func (r *Report) speedupChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Speedup vs Workers",
			Subtitle: "sequential time / parallel time",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "speedup"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "workers"}),
	)

	line.SetXAxis(r.workerLabels())

	for _, n := range r.Config.Sizes {
		data := make([]opts.LineData, 0, len(r.Config.Workers))
		for _, w := range r.Config.Workers {
			if p := r.par(n, w); p != nil {
				data = append(data, opts.LineData{Value: p.Speedup})
			}
		}
		line.AddSeries(fmt.Sprintf("n=%d", n), data)
	}

	ideal := make([]opts.LineData, 0, len(r.Config.Workers))
	for _, w := range r.Config.Workers {
		ideal = append(ideal, opts.LineData{Value: float64(w)})
	}
	line.AddSeries("ideal", ideal,
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))

	return line
}

// efficiencyChart: parallel efficiency against worker count, one line per
// size, plus the 100% reference.
func (r *Report) efficiencyChart() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Parallel Efficiency vs Workers",
			Subtitle: "speedup / workers, percent",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "%"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "workers"}),
	)

	line.SetXAxis(r.workerLabels())

	for _, n := range r.Config.Sizes {
		data := make([]opts.LineData, 0, len(r.Config.Workers))
		for _, w := range r.Config.Workers {
			if p := r.par(n, w); p != nil {
				data = append(data, opts.LineData{Value: p.Efficiency})
			}
		}
		line.AddSeries(fmt.Sprintf("n=%d", n), data)
	}

	full := make([]opts.LineData, 0, len(r.Config.Workers))
	for range r.Config.Workers {
		full = append(full, opts.LineData{Value: 100.0})
	}
	line.AddSeries("100%", full,
		charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}))

	return line
}

// speedupBySizeChart: speedup per size grouped by worker count, the tabular
// heat view flattened into grouped bars.
func (r *Report) speedupBySizeChart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: types.ThemeWesteros}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Speedup by Matrix Size",
			Subtitle: "grouped by worker count",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "speedup"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "size"}),
	)

	bar.SetXAxis(r.sizeLabels())

	for _, w := range r.Config.Workers {
		data := make([]opts.BarData, 0, len(r.Config.Sizes))
		for _, n := range r.Config.Sizes {
			if p := r.par(n, w); p != nil {
				data = append(data, opts.BarData{Value: p.Speedup})
			}
		}
		bar.AddSeries(fmt.Sprintf("w=%d", w), data)
	}

	return bar
}

package render

import (
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/montanaflynn/stats"

	"fairviz/domain/core"
	"fairviz/domain/figure"
)

// Config holds presentation settings for the ECharts renderer.
type Config struct {
	Title  string
	Width  string // CSS length, e.g. "900px"
	Height string
}

// ECharts renders figures to self-contained HTML with go-echarts. Box
// figures become boxplot series, scatter figures become line series.
// It implements ports.Renderer.
type ECharts struct {
	cfg Config
}

func NewECharts(cfg Config) *ECharts {
	if cfg.Width == "" {
		cfg.Width = "900px"
	}
	if cfg.Height == "" {
		cfg.Height = "500px"
	}
	return &ECharts{cfg: cfg}
}

func (r *ECharts) Render(fig figure.Figure, w io.Writer) error {
	kind := figure.KindScatter
	for i, t := range fig.Data {
		if i == 0 {
			kind = t.Kind()
			continue
		}
		if t.Kind() != kind {
			return core.ErrMixedTraceKinds
		}
	}
	if kind == figure.KindBox {
		return r.renderBox(fig, w)
	}
	return r.renderScatter(fig, w)
}

// renderBox draws one boxplot series per trace over the union of the
// traces' categories. ECharts box series take precomputed five-number
// summaries, so the raw trace points are reduced here, on the
// presentation side.
func (r *ECharts) renderBox(fig figure.Figure, w io.Writer) error {
	box := charts.NewBoxPlot()
	box.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: r.cfg.Width, Height: r.cfg.Height}),
		charts.WithTitleOpts(opts.Title{Title: r.cfg.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: fig.Layout.XAxis.Title}),
		charts.WithYAxisOpts(opts.YAxis{Name: fig.Layout.YAxis.Title}),
	)

	categories := boxCategories(fig)
	box.SetXAxis(categories)

	for _, t := range fig.Data {
		bt, ok := t.(figure.BoxTrace)
		if !ok {
			return core.NewUnsupportedTraceError("echarts", string(t.Kind()))
		}
		byCategory := make(map[string][]float64)
		for i, c := range bt.X {
			byCategory[c] = append(byCategory[c], bt.Y[i])
		}

		data := make([]opts.BoxPlotData, 0, len(categories))
		for _, c := range categories {
			vals := byCategory[c]
			if len(vals) == 0 {
				data = append(data, opts.BoxPlotData{Name: bt.Name})
				continue
			}
			summary, err := fiveNumberSummary(vals)
			if err != nil {
				return err
			}
			data = append(data, opts.BoxPlotData{Name: bt.Name, Value: summary})
		}
		box.AddSeries(bt.Name, data)
	}
	return box.Render(w)
}

// renderScatter draws each trace as a line over a numeric x axis.
func (r *ECharts) renderScatter(fig figure.Figure, w io.Writer) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: r.cfg.Width, Height: r.cfg.Height}),
		charts.WithTitleOpts(opts.Title{Title: r.cfg.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: fig.Layout.XAxis.Title, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: fig.Layout.YAxis.Title, Type: "value"}),
	)

	for _, t := range fig.Data {
		st, ok := t.(figure.ScatterTrace)
		if !ok {
			return core.NewUnsupportedTraceError("echarts", string(t.Kind()))
		}
		data := make([]opts.LineData, len(st.X))
		for i := range st.X {
			data[i] = opts.LineData{Value: []interface{}{st.X[i], st.Y[i]}}
		}
		line.AddSeries(st.Name, data)
	}
	return line.Render(w)
}

// boxCategories collects the distinct category labels across all box
// traces in first-seen order, so every series shares one axis and
// same-category boxes land side by side.
func boxCategories(fig figure.Figure) []string {
	seen := make(map[string]bool)
	var categories []string
	for _, t := range fig.Data {
		bt, ok := t.(figure.BoxTrace)
		if !ok {
			continue
		}
		for _, c := range bt.X {
			if !seen[c] {
				seen[c] = true
				categories = append(categories, c)
			}
		}
	}
	return categories
}

// fiveNumberSummary reduces raw values to [min, q1, median, q3, max].
// A single value yields a degenerate box with all five equal.
func fiveNumberSummary(vals []float64) ([]float64, error) {
	min, err := stats.Min(vals)
	if err != nil {
		return nil, err
	}
	max, err := stats.Max(vals)
	if err != nil {
		return nil, err
	}
	if len(vals) == 1 {
		return []float64{min, min, min, min, max}, nil
	}
	median, err := stats.Median(vals)
	if err != nil {
		return nil, err
	}
	q, err := stats.Quartile(vals)
	if err != nil {
		return nil, err
	}
	return []float64{min, q.Q1, median, q.Q3, max}, nil
}

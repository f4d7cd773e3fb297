package render

import (
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"fairviz/domain/core"
	"fairviz/domain/figure"
)

// GoChart renders scatter figures to PNG with go-chart. Box traces are
// rejected: go-chart has no box series type. It implements
// ports.Renderer.
type GoChart struct{}

func NewGoChart() *GoChart {
	return &GoChart{}
}

func (r *GoChart) Render(fig figure.Figure, w io.Writer) error {
	series := make([]chart.Series, 0, len(fig.Data))
	for _, t := range fig.Data {
		st, ok := t.(figure.ScatterTrace)
		if !ok {
			return core.NewUnsupportedTraceError("go-chart", string(t.Kind()))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    st.Name,
			XValues: st.X,
			YValues: st.Y,
		})
	}

	ch := chart.Chart{
		XAxis:  chart.XAxis{Name: fig.Layout.XAxis.Title},
		YAxis:  chart.YAxis{Name: fig.Layout.YAxis.Title},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(chart.PNG, w)
}

package ports

import (
	"io"

	"fairviz/domain/figure"
)

// Renderer hands a chart specification to an external charting library
// and writes the rendered chart to w. Figures are never drawn by this
// module's own code.
type Renderer interface {
	Render(fig figure.Figure, w io.Writer) error
}

package figure

// TraceKind discriminates the renderable series types a Figure can carry.
type TraceKind string

const (
	KindBox     TraceKind = "box"
	KindScatter TraceKind = "scatter"
)

// BoxMode values understood by Layout.
const (
	// BoxModeGroup places boxes that share a category side by side
	// instead of overlaying them.
	BoxModeGroup = "group"
)

// Trace is a single renderable data series within a Figure.
type Trace interface {
	Kind() TraceKind
	TraceName() string
	// Len is the number of data points carried by the trace.
	Len() int
}

// BoxTrace holds the raw points of one box series. Each point is a
// (category, value) pair; the consuming renderer derives the box
// statistics from the raw values.
type BoxTrace struct {
	Name string    `json:"name"`
	X    []string  `json:"x"`
	Y    []float64 `json:"y"`
}

func (t BoxTrace) Kind() TraceKind   { return KindBox }
func (t BoxTrace) TraceName() string { return t.Name }
func (t BoxTrace) Len() int          { return len(t.Y) }

// ScatterTrace holds one line series as paired x/y coordinates.
type ScatterTrace struct {
	Name string    `json:"name"`
	X    []float64 `json:"x"`
	Y    []float64 `json:"y"`
}

func (t ScatterTrace) Kind() TraceKind   { return KindScatter }
func (t ScatterTrace) TraceName() string { return t.Name }
func (t ScatterTrace) Len() int          { return len(t.Y) }

// Axis configures one chart axis.
type Axis struct {
	Title string `json:"title,omitempty"`
}

// Layout holds the figure-level display configuration.
type Layout struct {
	BoxMode string `json:"boxmode,omitempty"`
	XAxis   Axis   `json:"xaxis"`
	YAxis   Axis   `json:"yaxis"`
}

// Figure is a chart specification: an ordered list of traces plus a
// layout. It carries no rendering behavior; renderers consume it.
type Figure struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// TraceByName returns the first trace with the given name, or nil.
// Trace order within a Figure is not meaningful unless the caller
// sorted it, so lookups go by name.
func (f Figure) TraceByName(name string) Trace {
	for _, t := range f.Data {
		if t.TraceName() == name {
			return t
		}
	}
	return nil
}

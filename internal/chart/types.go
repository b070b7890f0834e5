// Package chart turns numeric series into drawable geometry for the
// dashboard charts: progress bars, pie charts and bar charts.
//
// Every function here is a pure mapping from its inputs to plain values.
// Nothing is cached and nothing is shared, so callers may render from any
// number of goroutines.
package chart

// Kind selects one of the three visualizations.
type Kind string

const (
	KindPie      Kind = "pie"
	KindBar      Kind = "bar"
	KindProgress Kind = "progress"
)

// Input is the value object accepted at the package boundary.
// Max is only read by progress bars, one entry per value.
type Input struct {
	Values []float64 `json:"values" validate:"max=500,nonnegative_series"`
	Labels []string  `json:"labels,omitempty"`
	Colors []string  `json:"colors,omitempty" validate:"dive,chart_color"`
	Max    []float64 `json:"max,omitempty"`
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Rect is an axis aligned rectangle with (X, Y) at its top-left corner.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Color  string  `json:"color"`
}

// Slice is one circular sector of a pie chart. Angles are in degrees,
// measured clockwise from 12 o'clock.
type Slice struct {
	Index      int     `json:"index"`
	Value      float64 `json:"value"`
	Label      string  `json:"label,omitempty"`
	Color      string  `json:"color"`
	StartAngle float64 `json:"start_angle"`
	EndAngle   float64 `json:"end_angle"`
	Sweep      float64 `json:"sweep"`
	Percent    float64 `json:"percent"`
	Center     Point   `json:"center"`
	Radius     float64 `json:"radius"`
	Start      Point   `json:"start"`
	End        Point   `json:"end"`
	LargeArc   bool    `json:"large_arc"`
}

// Bar is one column of a bar chart.
type Bar struct {
	Index  int     `json:"index"`
	Value  float64 `json:"value"`
	Label  string  `json:"label,omitempty"`
	Color  string  `json:"color"`
	Height float64 `json:"height"`
	Rect   Rect    `json:"rect"`
}

// ProgressBar is a track rectangle with a proportional fill on top of it.
type ProgressBar struct {
	Label              string  `json:"label,omitempty"`
	Value              float64 `json:"value"`
	Max                float64 `json:"max"`
	FilledWidthPercent float64 `json:"filled_width_percent"`
	Percent            int     `json:"percent"` // rounded, for display
	Track              Rect    `json:"track"`
	Fill               Rect    `json:"fill"`
}

type ShapeKind string

const (
	ShapeRect ShapeKind = "rect"
	ShapeArc  ShapeKind = "arc"
)

// LegendEntry is one row under a pie chart: a color swatch followed by
// the slice value.
type LegendEntry struct {
	Index  int     `json:"index"`
	Label  string  `json:"label,omitempty"`
	Value  float64 `json:"value"`
	Swatch Rect    `json:"swatch"`
	Text   Point   `json:"text"`
}

// Caption is the text drawn next to the swatch.
func (e LegendEntry) Caption() string {
	if e.Label == "" {
		return num(e.Value)
	}
	return e.Label + ": " + num(e.Value)
}

// Shape is the union of everything an encoder has to draw.
// Exactly one of Rect and Arc is set, according to Kind. Index is the
// series position, used to pick a palette color when none is set.
type Shape struct {
	Kind  ShapeKind `json:"kind"`
	Index int       `json:"index"`
	Rect  *Rect     `json:"rect,omitempty"`
	Arc   *Slice    `json:"arc,omitempty"`
}

// Geometry holds the layout constants used when placing shapes.
type Geometry struct {
	Width   float64 `json:"width"`
	Height  float64 `json:"height"`
	CenterX float64 `json:"center_x"`
	CenterY float64 `json:"center_y"`
	Radius  float64 `json:"radius"`

	BarMaxHeight float64 `json:"bar_max_height"`
	BarWidth     float64 `json:"bar_width"`
	BarGap       float64 `json:"bar_gap"`

	TrackWidth  float64 `json:"track_width"`
	TrackHeight float64 `json:"track_height"`
}

const (
	TrackColor   = "#ecf0f1"
	labelSpacing = 24
	legendRow    = 20
	swatchSize   = 12
)

// DefaultGeometry matches the 200x200 dashboard widgets.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:        200,
		Height:       200,
		CenterX:      100,
		CenterY:      100,
		Radius:       80,
		BarMaxHeight: 200,
		BarWidth:     40,
		BarGap:       16,
		TrackWidth:   300,
		TrackHeight:  20,
	}
}

func colorAt(colors []string, i int) string {
	if len(colors) == 0 {
		return ""
	}
	return colors[i%len(colors)]
}

func labelAt(labels []string, i int) string {
	if i < len(labels) {
		return labels[i]
	}
	return ""
}

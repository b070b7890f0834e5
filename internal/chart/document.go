package chart

import (
	"fmt"
	"math"
	"strconv"
)

// DefaultColors is the dashboard palette, used when a request carries no colors.
var DefaultColors = []string{"#3498db", "#2ecc71", "#e74c3c", "#f39c12", "#9b59b6", "#1abc9c"}

// Document is a rendered chart ready for an encoder. Only the field
// matching Kind is populated.
type Document struct {
	Kind     Kind          `json:"kind"`
	Title    string        `json:"title,omitempty"`
	Width    float64       `json:"width"`
	Height   float64       `json:"height"`
	Slices   []Slice       `json:"slices,omitempty"`
	Bars     []Bar         `json:"bars,omitempty"`
	Progress []ProgressBar `json:"progress,omitempty"`
	Legend   []LegendEntry `json:"legend,omitempty"`
}

// Render lays out in as a chart of the given kind. It does not validate
// in; see Validate.
func Render(kind Kind, title string, in Input, g Geometry) (Document, error) {
	if len(in.Colors) == 0 {
		in.Colors = DefaultColors
	}
	doc := Document{Kind: kind, Title: title}

	switch kind {
	case KindPie:
		doc.Slices = g.Pie(in)
		doc.Legend = g.Legend(in)
		doc.Width = g.Width
		doc.Height = g.Height + float64(len(doc.Legend))*legendRow
	case KindBar:
		doc.Bars = g.Bars(in)
		n := float64(len(in.Values))
		doc.Width = g.BarGap + n*(g.BarWidth+g.BarGap)
		doc.Height = g.BarMaxHeight + 2*labelSpacing
	case KindProgress:
		doc.Progress = g.ProgressBars(in)
		n := float64(len(in.Values))
		doc.Width = g.TrackWidth
		doc.Height = n * (g.TrackHeight + g.BarGap + labelSpacing)
	default:
		return Document{}, fmt.Errorf("unknown chart kind %q", kind)
	}
	return doc, nil
}

// Shapes flattens the document into draw order.
func (d Document) Shapes() []Shape {
	var shapes []Shape
	for i := range d.Slices {
		shapes = append(shapes, Shape{Kind: ShapeArc, Index: d.Slices[i].Index, Arc: &d.Slices[i]})
	}
	for i := range d.Legend {
		shapes = append(shapes, Shape{Kind: ShapeRect, Index: d.Legend[i].Index, Rect: &d.Legend[i].Swatch})
	}
	for i := range d.Bars {
		shapes = append(shapes, Shape{Kind: ShapeRect, Index: d.Bars[i].Index, Rect: &d.Bars[i].Rect})
	}
	for i := range d.Progress {
		shapes = append(shapes,
			Shape{Kind: ShapeRect, Index: i, Rect: &d.Progress[i].Track},
			Shape{Kind: ShapeRect, Index: i, Rect: &d.Progress[i].Fill},
		)
	}
	return shapes
}

// ParseKind accepts the kind names used in query strings.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindPie, KindBar, KindProgress:
		return k, nil
	case "doughnut":
		return KindPie, nil
	}
	return "", fmt.Errorf("unknown chart kind %q", s)
}

// num formats coordinates compactly for SVG output.
func num(v float64) string {
	v = math.Round(v*1e4) / 1e4
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

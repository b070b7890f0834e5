package chart

import (
	"fmt"
	"math"
)

// RenderPie splits the default 200x200 circle into one slice per value.
func RenderPie(values []float64, colors []string) []Slice {
	return DefaultGeometry().Pie(Input{Values: values, Colors: colors})
}

// Pie lays out slices clockwise from 12 o'clock in input order. A zero
// total collapses every slice to a zero sweep.
func (g Geometry) Pie(in Input) []Slice {
	var total float64
	for _, v := range in.Values {
		total += v
	}

	slices := make([]Slice, len(in.Values))
	center := Point{X: g.CenterX, Y: g.CenterY}
	current := 0.0
	for i, v := range in.Values {
		var sweep, percent float64
		if total > 0 {
			sweep = v / total * 360
			percent = v / total * 100
		}
		start, end := current, current+sweep

		slices[i] = Slice{
			Index:      i,
			Value:      v,
			Label:      labelAt(in.Labels, i),
			Color:      colorAt(in.Colors, i),
			StartAngle: start,
			EndAngle:   end,
			Sweep:      sweep,
			Percent:    percent,
			Center:     center,
			Radius:     g.Radius,
			Start:      polar(center, g.Radius, start),
			End:        polar(center, g.Radius, end),
			LargeArc:   sweep > 180,
		}
		current = end
	}
	return slices
}

// Legend places one swatch row per value below the pie, left aligned
// with the circle.
func (g Geometry) Legend(in Input) []LegendEntry {
	entries := make([]LegendEntry, len(in.Values))
	x := g.CenterX - g.Radius
	for i, v := range in.Values {
		y := g.Height + float64(i)*legendRow + (legendRow-swatchSize)/2
		entries[i] = LegendEntry{
			Index:  i,
			Label:  labelAt(in.Labels, i),
			Value:  v,
			Swatch: Rect{X: x, Y: y, Width: swatchSize, Height: swatchSize, Color: colorAt(in.Colors, i)},
			Text:   Point{X: x + swatchSize + 6, Y: y + swatchSize - 1},
		}
	}
	return entries
}

// polar converts a clockwise-from-top angle in degrees to a point on the circle.
func polar(c Point, r, deg float64) Point {
	rad := (deg - 90) * math.Pi / 180
	return Point{
		X: c.X + r*math.Cos(rad),
		Y: c.Y + r*math.Sin(rad),
	}
}

// Path returns the SVG path data of the sector.
func (s Slice) Path() string {
	large := 0
	if s.LargeArc {
		large = 1
	}
	return fmt.Sprintf("M %s %s L %s %s A %s %s 0 %d 1 %s %s Z",
		num(s.Center.X), num(s.Center.Y),
		num(s.Start.X), num(s.Start.Y),
		num(s.Radius), num(s.Radius), large,
		num(s.End.X), num(s.End.Y),
	)
}

// IsFullCircle reports whether the slice covers the whole pie. SVG cannot
// draw an arc whose endpoints coincide, so encoders draw a circle instead.
func (s Slice) IsFullCircle() bool {
	return s.Sweep >= 360-1e-9
}

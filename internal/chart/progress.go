package chart

import "math"

// FilledWidthPercent returns value/max as a percentage capped at 100.
// A non-positive max yields 0. Negative values are passed through
// unclamped; callers clip them when drawing.
func FilledWidthPercent(value, max float64) float64 {
	if max <= 0 {
		return 0
	}
	return math.Min(value/max*100, 100)
}

// RenderProgressBar lays out a progress bar with the default geometry.
func RenderProgressBar(value, max float64) ProgressBar {
	return DefaultGeometry().ProgressBar(value, max)
}

func (g Geometry) ProgressBar(value, max float64) ProgressBar {
	pct := FilledWidthPercent(value, max)
	return ProgressBar{
		Value:              value,
		Max:                max,
		FilledWidthPercent: pct,
		Percent:            int(math.Round(pct)),
		Track:              Rect{Width: g.TrackWidth, Height: g.TrackHeight, Color: TrackColor},
		Fill:               Rect{Width: g.TrackWidth * pct / 100, Height: g.TrackHeight},
	}
}

// ProgressBars stacks one bar per value. Max, Labels and Colors are read
// positionally; a missing max renders as an empty bar.
func (g Geometry) ProgressBars(in Input) []ProgressBar {
	bars := make([]ProgressBar, len(in.Values))
	rowHeight := g.TrackHeight + g.BarGap + labelSpacing
	for i, v := range in.Values {
		var max float64
		if i < len(in.Max) {
			max = in.Max[i]
		}
		pb := g.ProgressBar(v, max)
		pb.Label = labelAt(in.Labels, i)

		y := float64(i)*rowHeight + labelSpacing
		pb.Track.Y = y
		pb.Fill.Y = y
		pb.Fill.Color = colorAt(in.Colors, i)
		bars[i] = pb
	}
	return bars
}

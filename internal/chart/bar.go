package chart

// RenderBars scales values against the largest one so that it reaches
// maxHeightPx exactly.
func RenderBars(values []float64, labels, colors []string, maxHeightPx float64) []Bar {
	g := DefaultGeometry()
	g.BarMaxHeight = maxHeightPx
	return g.Bars(Input{Values: values, Labels: labels, Colors: colors})
}

// Bars keeps input order left to right. Bars stand on a baseline at
// y = BarMaxHeight + labelSpacing, leaving room for the value labels above.
func (g Geometry) Bars(in Input) []Bar {
	maxValue := 0.0
	for i, v := range in.Values {
		if i == 0 || v > maxValue {
			maxValue = v
		}
	}

	baseline := g.BarMaxHeight + labelSpacing
	bars := make([]Bar, len(in.Values))
	for i, v := range in.Values {
		var h float64
		if maxValue > 0 {
			h = v / maxValue * g.BarMaxHeight
		}
		color := colorAt(in.Colors, i)
		bars[i] = Bar{
			Index:  i,
			Value:  v,
			Label:  labelAt(in.Labels, i),
			Color:  color,
			Height: h,
			Rect: Rect{
				X:      g.BarGap + float64(i)*(g.BarWidth+g.BarGap),
				Y:      baseline - h,
				Width:  g.BarWidth,
				Height: h,
				Color:  color,
			},
		}
	}
	return bars
}

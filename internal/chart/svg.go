package chart

import (
	"bufio"
	"encoding/xml"
	"fmt"
	"io"
	"math"
	"strings"
)

// EncodeSVG writes d as a standalone SVG document.
func EncodeSVG(w io.Writer, d Document) error {
	bw := bufio.NewWriter(w)
	width, height := num(d.Width), num(d.Height)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s">`, width, height, width, height)
	if d.Title != "" {
		fmt.Fprintf(bw, "<title>%s</title>", escape(d.Title))
	}

	for _, s := range d.Slices {
		color := fillColor(s.Color, s.Index)
		if s.IsFullCircle() {
			fmt.Fprintf(bw, `<circle cx="%s" cy="%s" r="%s" fill="%s" stroke="white" stroke-width="2"/>`,
				num(s.Center.X), num(s.Center.Y), num(s.Radius), escape(color))
			continue
		}
		fmt.Fprintf(bw, `<path d="%s" fill="%s" stroke="white" stroke-width="2"/>`, s.Path(), escape(color))
	}
	for _, e := range d.Legend {
		r := e.Swatch
		fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(r.X), num(r.Y), num(r.Width), num(r.Height), escape(fillColor(r.Color, e.Index)))
		fmt.Fprintf(bw, `<text x="%s" y="%s" font-size="12">%s</text>`,
			num(e.Text.X), num(e.Text.Y), escape(e.Caption()))
	}

	for _, b := range d.Bars {
		r := b.Rect
		fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(r.X), num(r.Y), num(r.Width), num(math.Max(r.Height, 0)), escape(fillColor(r.Color, b.Index)))
		cx := num(r.X + r.Width/2)
		fmt.Fprintf(bw, `<text x="%s" y="%s" text-anchor="middle" font-size="12">%s</text>`,
			cx, num(r.Y-6), num(b.Value))
		if b.Label != "" {
			fmt.Fprintf(bw, `<text x="%s" y="%s" text-anchor="middle" font-size="12">%s</text>`,
				cx, num(r.Y+r.Height+labelSpacing-6), escape(b.Label))
		}
	}

	for i, p := range d.Progress {
		if p.Label != "" {
			fmt.Fprintf(bw, `<text x="0" y="%s" font-size="12">%s %s/%s</text>`,
				num(p.Track.Y-6), escape(p.Label), num(p.Value), num(p.Max))
		}
		fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(p.Track.X), num(p.Track.Y), num(p.Track.Width), num(p.Track.Height), p.Track.Color)
		// negative fills are clipped here, the geometry keeps the raw width
		fmt.Fprintf(bw, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`,
			num(p.Fill.X), num(p.Fill.Y), num(math.Max(p.Fill.Width, 0)), num(p.Fill.Height), escape(fillColor(p.Fill.Color, i)))
		fmt.Fprintf(bw, `<text x="%s" y="%s" text-anchor="end" font-size="12">%d%%</text>`,
			num(p.Track.Width), num(p.Track.Y-6), p.Percent)
	}

	bw.WriteString("</svg>")
	return bw.Flush()
}

func fillColor(c string, i int) string {
	if c == "" {
		return colorAt(DefaultColors, i)
	}
	return c
}

func escape(s string) string {
	var sb strings.Builder
	xml.EscapeText(&sb, []byte(s))
	return sb.String()
}

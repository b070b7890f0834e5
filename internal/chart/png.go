package chart

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/gogpu/gg"
)

// MaxCanvasPixels caps the raster size of one PNG, 64 MiB of RGBA.
const MaxCanvasPixels = 16 << 20

var ErrCanvasTooLarge = errors.New("chart canvas too large")

// EncodePNG rasterizes the shapes of d with the software renderer.
// Text labels are left to the SVG encoder.
func EncodePNG(w io.Writer, d Document) error {
	fw := math.Max(math.Ceil(d.Width), 1)
	fh := math.Max(math.Ceil(d.Height), 1)
	if math.IsNaN(fw) || math.IsNaN(fh) || fw*fh > MaxCanvasPixels {
		return fmt.Errorf("%w: %vx%v exceeds %d pixels", ErrCanvasTooLarge, fw, fh, MaxCanvasPixels)
	}

	dc := gg.NewContext(int(fw), int(fh))
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	for _, s := range d.Shapes() {
		switch s.Kind {
		case ShapeRect:
			r := s.Rect
			if r.Width <= 0 || r.Height <= 0 {
				continue
			}
			if err := setFill(dc, r.Color, s.Index); err != nil {
				return err
			}
			dc.DrawRectangle(r.X, r.Y, r.Width, r.Height)
		case ShapeArc:
			a := s.Arc
			if a.Sweep <= 0 {
				continue
			}
			if err := setFill(dc, a.Color, s.Index); err != nil {
				return err
			}
			if a.IsFullCircle() {
				dc.DrawCircle(a.Center.X, a.Center.Y, a.Radius)
			} else {
				dc.MoveTo(a.Center.X, a.Center.Y)
				dc.LineTo(a.Start.X, a.Start.Y)
				dc.DrawArc(a.Center.X, a.Center.Y, a.Radius, radians(a.StartAngle-90), radians(a.EndAngle-90))
				dc.ClosePath()
			}
		}
		if err := dc.Fill(); err != nil {
			return err
		}
	}
	return dc.EncodePNG(w)
}

func setFill(dc *gg.Context, token string, i int) error {
	c, err := ResolveColor(fillColor(token, i))
	if err != nil {
		return err
	}
	dc.SetColor(c)
	return nil
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

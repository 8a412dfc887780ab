package signature

import (
	"bytes"
	"encoding/base64"
	"errors"
	"image/color"
	"image/png"
	"math"

	"github.com/disintegration/imaging"
)

var ErrSurfaceNotReady = errors.New("signature surface not ready")

const strokeRadius = 1.4

// ExportPNG rasterizes the recorded strokes into a PNG. The canvas is
// rendered at device resolution (logical size x pixel ratio) so ink stays
// crisp, then resized back to the logical size for a stable artifact.
func (p *Pad) ExportPNG() ([]byte, error) {
	width, height, ratio, strokes, ready := p.snapshot()
	if !ready {
		return nil, ErrSurfaceNotReady
	}

	pw := int(math.Round(float64(width) * ratio))
	ph := int(math.Round(float64(height) * ratio))
	canvas := imaging.New(pw, ph, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	ink := color.NRGBA{R: 26, G: 26, B: 46, A: 255}
	radius := strokeRadius * ratio
	for _, stroke := range strokes {
		if len(stroke) == 1 {
			stamp(canvas.Pix, pw, ph, stroke[0].X*ratio, stroke[0].Y*ratio, radius, ink)
			continue
		}
		for i := 1; i < len(stroke); i++ {
			drawSegment(canvas.Pix, pw, ph,
				stroke[i-1].X*ratio, stroke[i-1].Y*ratio,
				stroke[i].X*ratio, stroke[i].Y*ratio,
				radius, ink)
		}
	}

	out := canvas
	if pw != width || ph != height {
		out = imaging.Resize(canvas, width, height, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, out); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ExportDataURL encodes the rendered signature as a self-contained data URL,
// the format the portal expects in the signed payload.
func (p *Pad) ExportDataURL() (string, error) {
	raw, err := p.ExportPNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// drawSegment stamps a round brush along the segment so joined strokes have
// no gaps or square caps.
func drawSegment(pix []uint8, w, h int, x0, y0, x1, y1, radius float64, c color.NRGBA) {
	dx, dy := x1-x0, y1-y0
	dist := math.Hypot(dx, dy)
	steps := int(dist) + 1
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		stamp(pix, w, h, x0+dx*t, y0+dy*t, radius, c)
	}
}

func stamp(pix []uint8, w, h int, cx, cy, radius float64, c color.NRGBA) {
	minX := int(math.Floor(cx - radius))
	maxX := int(math.Ceil(cx + radius))
	minY := int(math.Floor(cy - radius))
	maxY := int(math.Ceil(cy + radius))
	for y := minY; y <= maxY; y++ {
		if y < 0 || y >= h {
			continue
		}
		for x := minX; x <= maxX; x++ {
			if x < 0 || x >= w {
				continue
			}
			ddx := float64(x) + 0.5 - cx
			ddy := float64(y) + 0.5 - cy
			if ddx*ddx+ddy*ddy > radius*radius {
				continue
			}
			off := (y*w + x) * 4
			pix[off] = c.R
			pix[off+1] = c.G
			pix[off+2] = c.B
			pix[off+3] = c.A
		}
	}
}

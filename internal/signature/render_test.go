package signature

import (
	"bytes"
	"errors"
	"image/png"
	"strings"
	"testing"
)

func inked(t *testing.T, ratio float64) *Pad {
	t.Helper()
	p := NewPad()
	if !p.TryInit(300, 150, ratio) {
		t.Fatal("init failed")
	}
	p.Begin(Point{X: 20, Y: 40})
	p.Extend(Point{X: 120, Y: 80})
	p.Extend(Point{X: 250, Y: 60})
	p.End()
	return p
}

func TestPad_ExportPNG(t *testing.T) {
	t.Run("unready surface cannot export", func(t *testing.T) {
		p := NewPad()
		if _, err := p.ExportPNG(); !errors.Is(err, ErrSurfaceNotReady) {
			t.Fatalf("expected ErrSurfaceNotReady, got %v", err)
		}
	})

	t.Run("exports at the logical size", func(t *testing.T) {
		raw, err := inked(t, 1).ExportPNG()
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != 300 || b.Dy() != 150 {
			t.Fatalf("expected 300x150, got %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("dense screens still export the logical size", func(t *testing.T) {
		raw, err := inked(t, 2).ExportPNG()
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		b := img.Bounds()
		if b.Dx() != 300 || b.Dy() != 150 {
			t.Fatalf("expected 300x150, got %dx%d", b.Dx(), b.Dy())
		}
	})

	t.Run("ink leaves non white pixels", func(t *testing.T) {
		raw, err := inked(t, 1).ExportPNG()
		if err != nil {
			t.Fatalf("export failed: %v", err)
		}
		img, err := png.Decode(bytes.NewReader(raw))
		if err != nil {
			t.Fatalf("decode failed: %v", err)
		}
		found := false
		b := img.Bounds()
		for y := b.Min.Y; y < b.Max.Y && !found; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				r, g, bl, _ := img.At(x, y).RGBA()
				if r != 0xffff || g != 0xffff || bl != 0xffff {
					found = true
					break
				}
			}
		}
		if !found {
			t.Fatal("expected at least one inked pixel")
		}
	})
}

func TestPad_ExportDataURL(t *testing.T) {
	url, err := inked(t, 1).ExportDataURL()
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Fatalf("expected png data url, got %.40q", url)
	}
}

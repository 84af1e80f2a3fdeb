package view

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"os"
	"sync/atomic"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// Icon is a parsed SVG drawn scaled to the bounds of the view that holds it.
type Icon struct {
	key string
	svg *oksvg.SvgIcon
}

var iconSeq atomic.Int64

// ParseIcon reads an SVG document.
func ParseIcon(r io.Reader) (*Icon, error) {
	svg, err := oksvg.ReadIconStream(r, oksvg.WarnErrorMode)
	if err != nil {
		return nil, fmt.Errorf("view: parse icon: %w", err)
	}
	return &Icon{
		key: fmt.Sprintf("icon-%d", iconSeq.Add(1)),
		svg: svg,
	}, nil
}

// ParseIconBytes reads an SVG document from memory.
func ParseIconBytes(data []byte) (*Icon, error) {
	return ParseIcon(bytes.NewReader(data))
}

// LoadIcon reads an SVG file.
func LoadIcon(path string) (*Icon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("view: load icon: %w", err)
	}
	defer f.Close()

	icon, err := ParseIcon(f)
	if err != nil {
		return nil, err
	}
	icon.key = path
	return icon, nil
}

// Rasterize renders the icon into a w by h image, reusing a cached raster when
// the same icon was drawn at the same size recently.
func (i *Icon) Rasterize(w, h int) *image.RGBA {
	if w <= 0 || h <= 0 {
		return nil
	}
	key := fmt.Sprintf("%s@%dx%d", i.key, w, h)
	if img := icons.Get(key); img != nil {
		return img
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	i.svg.SetTarget(0, 0, float64(w), float64(h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	i.svg.Draw(rasterx.NewDasher(w, h, scanner), 1.0)

	icons.Set(key, img)
	return img
}

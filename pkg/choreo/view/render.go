package view

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/srwiley/rasterx"
)

// Render draws the view tree into dst using the presented values, with the
// view's window origin at the destination origin.
func (v *View) Render(dst *image.RGBA) {
	v.renderAt(dst, Point{}, 1)
}

func (v *View) renderAt(dst *image.RGBA, origin Point, parentAlpha float64) {
	if v.hidden {
		return
	}
	alpha := parentAlpha * v.PresentedAlpha()
	if alpha <= 0 {
		return
	}

	frame := v.PresentedFrame()
	rect := frame.Offset(origin.X, origin.Y)

	if v.hasBackground && !rect.IsEmpty() {
		fillRect(dst, rect, v.PresentedBackground().RGB255, alpha)
	}

	w, h := int(math.Round(rect.W)), int(math.Round(rect.H))
	if v.icon != nil {
		if img := v.icon.Rasterize(w, h); img != nil {
			blit(dst, img, rect, alpha)
		}
	}
	if v.content != nil {
		blit(dst, v.content, rect, alpha)
	}

	for _, child := range v.subviews {
		child.renderAt(dst, rect.Origin(), alpha)
	}
}

func fillRect(dst *image.RGBA, r Rect, rgb func() (uint8, uint8, uint8), alpha float64) {
	bounds := dst.Bounds()
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), dst, bounds)
	filler := rasterx.NewFiller(bounds.Dx(), bounds.Dy(), scanner)
	rasterx.AddRect(r.X, r.Y, r.X+r.W, r.Y+r.H, 0, filler)

	red, green, blue := rgb()
	filler.SetColor(color.NRGBA{R: red, G: green, B: blue, A: uint8(math.Round(alpha * 255))})
	filler.Draw()
}

func blit(dst *image.RGBA, src *image.RGBA, r Rect, alpha float64) {
	target := image.Rect(
		int(math.Round(r.X)),
		int(math.Round(r.Y)),
		int(math.Round(r.X+r.W)),
		int(math.Round(r.Y+r.H)),
	)
	mask := image.NewUniform(color.Alpha{A: uint8(math.Round(alpha * 255))})
	draw.DrawMask(dst, target, src, src.Bounds().Min, mask, image.Point{}, draw.Over)
}

// Snapshot renders the view and its subviews, as currently presented, into a
// new view holding the raster. The snapshot's frame is the view's frame in
// window coordinates. When there is nothing to render an empty placeholder is
// returned in its place, still carrying the window frame.
func (v *View) Snapshot() *View {
	windowFrame := v.WindowFrame()
	w, h := int(math.Round(windowFrame.W)), int(math.Round(windowFrame.H))
	if w <= 0 || h <= 0 {
		placeholder := NewPlaceholder()
		placeholder.frame = windowFrame
		return placeholder
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	frame := v.PresentedFrame()
	// Render relative to the view's own origin.
	v.renderAt(img, Point{X: -frame.X, Y: -frame.Y}, 1)

	snapshot := New(v.Name+"-snapshot", windowFrame)
	snapshot.content = img
	return snapshot
}

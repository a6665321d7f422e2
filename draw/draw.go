// Package draw blits image.Image values onto a display by encoding them into the
// controller's wire format first.
package draw

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/BeatGlow/n70display/pixel"
)

// Blitter is a display that accepts pre-encoded window fills.
type Blitter interface {
	// Format is the active wire format.
	Format() pixel.Format

	// FillFromBuffer streams data into the window (x0,y0)-(x1,y1).
	FillFromBuffer(x0, y0, x1, y1 int, data []byte) error
}

// Scaler is an alias for [golang.org/x/image/draw.Scaler].
type Scaler = xdraw.Scaler

// Scalers usable with [FitWith].
var (
	NearestNeighbor Scaler = xdraw.NearestNeighbor
	ApproxBiLinear  Scaler = xdraw.ApproxBiLinear
	CatmullRom      Scaler = xdraw.CatmullRom
)

// Encode returns the pixels of src within r, in raster order, encoded as f.
func Encode(f pixel.Format, src image.Image, r image.Rectangle) []byte {
	r = r.Intersect(src.Bounds())
	if r.Empty() {
		return nil
	}

	n := r.Dx() * r.Dy()
	if raw, ok := src.(*pixel.Raw); ok && raw.Format == f && r == raw.Rect && len(raw.Pix) >= f.Size(n) {
		return append([]byte(nil), raw.Pix[:f.Size(n)]...)
	}

	colors := make([]pixel.RGB, 0, n)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			colors = append(colors, pixel.FromColor(src.At(x, y)))
		}
	}
	return f.AppendPixels(make([]byte, 0, f.Size(n)), colors)
}

// Image draws src unscaled with its top left corner at pt.
func Image(b Blitter, pt image.Point, src image.Image) error {
	r := src.Bounds()
	if r.Empty() {
		return nil
	}
	return b.FillFromBuffer(pt.X, pt.Y, pt.X+r.Dx()-1, pt.Y+r.Dy()-1, Encode(b.Format(), src, r))
}

// Fit scales src to fit inside r, keeping its aspect ratio, and draws it centered.
func Fit(b Blitter, r image.Rectangle, src image.Image) error {
	return FitWith(b, r, src, ApproxBiLinear)
}

// FitWith is like Fit with a custom scaler.
func FitWith(b Blitter, r image.Rectangle, src image.Image, s Scaler) error {
	sr := src.Bounds()
	if r.Empty() || sr.Empty() {
		return nil
	}

	w, h := r.Dx(), r.Dy()
	if sr.Dx()*h > sr.Dy()*w {
		h = max(1, sr.Dy()*w/sr.Dx())
	} else {
		w = max(1, sr.Dx()*h/sr.Dy())
	}

	dst := pixel.NewRaw(w, h, b.Format())
	s.Scale(dst, dst.Rect, src, sr, xdraw.Src, nil)

	x0 := r.Min.X + (r.Dx()-w)/2
	y0 := r.Min.Y + (r.Dy()-h)/2
	return b.FillFromBuffer(x0, y0, x0+w-1, y0+h-1, dst.Pix)
}

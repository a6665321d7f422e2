package font

import (
	"image"
	"image/color"

	"github.com/golang/freetype/truetype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

// FromFace rasterises a [xfont.Face] into a cols by rows table. Glyphs are centered
// horizontally and sit on a baseline at the face's ascent; anything outside the cell
// is clipped.
func FromFace(face xfont.Face, cols, rows int) (Table, error) {
	var (
		m        = face.Metrics()
		baseline = m.Ascent.Ceil()
	)
	if baseline > rows {
		baseline = rows
	}

	mask := image.NewAlpha(image.Rect(0, 0, cols, rows))
	return build(cols, rows, func(c *cell, code byte) {
		for i := range mask.Pix {
			mask.Pix[i] = 0
		}

		x := 0
		if advance, ok := face.GlyphAdvance(rune(code)); ok {
			if x = (cols - advance.Round()) / 2; x < 0 {
				x = 0
			}
		}
		d := &xfont.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(x, baseline),
		}
		d.DrawString(string(rune(code)))

		for py := 0; py < rows; py++ {
			for px := 0; px < cols; px++ {
				if mask.AlphaAt(px, py).A >= 0x60 {
					c.SetPixel(int16(px), int16(py), color.RGBA{A: 0xff})
				}
			}
		}
	})
}

// FromTrueType parses a TrueType font and rasterises it at size pixels per em.
func FromTrueType(ttf []byte, size float64, cols, rows int) (Table, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	face := truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: xfont.HintingFull,
	})
	defer face.Close()
	return FromFace(face, cols, rows)
}

func mediumTable() (Table, error) {
	return FromTrueType(gomono.TTF, 8, 8, 8)
}

func largeTable() (Table, error) {
	return FromFace(basicfont.Face7x13, 8, 14)
}

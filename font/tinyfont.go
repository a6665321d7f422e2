package font

import (
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

// FromTinyFont renders a TinyGo font into a cols by rows table with the baseline on
// the given row.
func FromTinyFont(f tinyfont.Fonter, cols, rows, baseline int) (Table, error) {
	return build(cols, rows, func(c *cell, code byte) {
		x := (cols - int(f.GetGlyph(rune(code)).Info().XAdvance)) / 2
		if x < 0 {
			x = 0
		}
		tinyfont.DrawChar(c, f, int16(x), int16(baseline), rune(code), color.RGBA{A: 0xff})
	})
}

func smallTable() (Table, error) {
	return FromTinyFont(&proggy.TinySZ8pt7b, 6, 8, 7)
}

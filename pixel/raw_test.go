package pixel

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestRaw(t *testing.T) {
	for _, f := range []Format{RGB444, RGB565, RGB666} {
		t.Run(f.String(), func(it *testing.T) {
			testRaw(it, f)
		})
	}
}

func testRaw(t *testing.T, f Format) {
	t.Helper()
	testCases := []image.Point{
		{},
		image.Pt(2, 1),
		image.Pt(2, 2),
		image.Pt(6, 8),
		image.Pt(176, 4),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := NewRaw(test.X, test.Y, f)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}
			if v := len(i.Pix); v != f.Size(test.X*test.Y) {
				it.Errorf("expected %d bytes, got %d", f.Size(test.X*test.Y), v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						i.Set(x, y, c)
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						}
					}
				}
			})

			it.Run("neighbours", func(itt *testing.T) {
				if test.X < 2 {
					itt.Skip("too narrow")
				}
				i.Set(0, 0, White)
				i.Set(1, 0, Black)
				if v := FromColor(i.At(0, 0)); v != White {
					itt.Errorf("pixel (0,0) lost its value after writing (1,0): %#06x", v)
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				for y := -1; y <= test.Y; y++ {
					for x := -1; x <= test.X; x++ {
						i.Set(x, y, testRandomColor())
						if x < 0 || y < 0 || x >= test.X || y >= test.Y {
							if v := i.At(x, y); v != color.Transparent {
								itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", x, y, v)
							}
						}
					}
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := i.ColorModel().Convert(c); i.At(x, y) != v {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				if test.X > 0 && test.Y > 0 {
					x := rand.Intn(test.X)
					y := rand.Intn(test.Y)
					if v := FromColor(i.At(x, y)); v != Black {
						itt.Fatalf("pixel (%d,%d) is not black", x, y)
					}
				}
			})
		})
	}
}

func TestRawFrom(t *testing.T) {
	i := RawFrom(2, 1, RGB444, []byte{0xF8, 0x24, 0xCA})
	if v := i.RGBAt(0); v != 0xF08020 {
		t.Errorf("expected first pixel 0xf08020, got %#06x", v)
	}
	if v := i.RGBAt(1); v != 0x40C0A0 {
		t.Errorf("expected second pixel 0x40c0a0, got %#06x", v)
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}

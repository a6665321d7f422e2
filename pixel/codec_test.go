package pixel

import (
	"bytes"
	"testing"
)

func TestFormatSize(t *testing.T) {
	tests := []struct {
		Format Format
		Pixels int
		Want   int
	}{
		{RGB444, 2, 3},
		{RGB444, 176 * 208, 176 * 208 / 2 * 3},
		{RGB444, 3, 6},
		{RGB565, 1, 2},
		{RGB565, 176 * 208, 176 * 208 * 2},
		{RGB666, 1, 3},
		{RGB666, 10, 30},
	}
	for _, test := range tests {
		t.Run(test.Format.String(), func(it *testing.T) {
			if v := test.Format.Size(test.Pixels); v != test.Want {
				it.Errorf("expected %d bytes for %d pixels, got %d", test.Want, test.Pixels, v)
			}
		})
	}
}

func TestRGB444Pair(t *testing.T) {
	// byte0 = R0 hi | G0 hi, byte1 = B0 hi | R1 hi, byte2 = G1 hi | B1 hi
	want := []byte{0xF8, 0x24, 0xCA}
	if v := RGB444.AppendPair(nil, 0xF08020, 0x40C0A0); !bytes.Equal(v, want) {
		t.Fatalf("expected % x, got % x", want, v)
	}

	c0, c1 := Decode444(want[0], want[1], want[2])
	if c0 != 0xF08020 || c1 != 0x40C0A0 {
		t.Errorf("expected decoded pair 0xf08020 0x40c0a0, got %#06x %#06x", c0, c1)
	}
}

func TestRGB444Single(t *testing.T) {
	want := []byte{0xF8, 0x2F, 0x82}
	if v := RGB444.Append(nil, 0xF08020); !bytes.Equal(v, want) {
		t.Errorf("expected % x, got % x", want, v)
	}
}

func TestRGB565RoundTrip(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b += 5 {
				c := RGB(r<<16 | g<<8 | b)
				p := RGB565.Append(nil, c)
				if len(p) != 2 {
					t.Fatalf("expected 2 bytes, got %d", len(p))
				}
				want := c & 0xF8FCF8
				if v := Decode565(p[0], p[1]); v != want {
					t.Fatalf("color %#06x: expected %#06x after round trip, got %#06x", c, want, v)
				}
			}
		}
	}
}

func TestRGB565Bytes(t *testing.T) {
	tests := []struct {
		In   RGB
		Want []byte
	}{
		{White, []byte{0xFF, 0xFF}},
		{Red, []byte{0xF8, 0x00}},
		{Green, []byte{0x07, 0xE0}},
		{Blue, []byte{0x00, 0x1F}},
	}
	for _, test := range tests {
		if v := RGB565.Append(nil, test.In); !bytes.Equal(v, test.Want) {
			t.Errorf("%#06x: expected % x, got % x", test.In, test.Want, v)
		}
	}
}

func TestRGB666(t *testing.T) {
	for _, c := range []RGB{Black, White, 0x123456, 0xFF8103, 0x03FE7F} {
		p := RGB666.Append(nil, c)
		r, g, b := c.Channels()
		want := []byte{r & 0xFC, g & 0xFC, b & 0xFC}
		if !bytes.Equal(p, want) {
			t.Errorf("%#06x: expected % x, got % x", c, want, p)
		}
		if v := Decode666(p[0], p[1], p[2]); v != c&0xFCFCFC {
			t.Errorf("%#06x: expected %#06x after round trip, got %#06x", c, c&0xFCFCFC, v)
		}
	}
}

func TestAppendPixels(t *testing.T) {
	colors := []RGB{0xF08020, 0x40C0A0, White, Black}
	tests := []struct {
		Format Format
		Want   []byte
	}{
		{RGB444, []byte{0xF8, 0x24, 0xCA, 0xFF, 0xF0, 0x00}},
		{RGB565, []byte{0xF4, 0x04, 0x46, 0x14, 0xFF, 0xFF, 0x00, 0x00}},
		{RGB666, []byte{0xF0, 0x80, 0x20, 0x40, 0xC0, 0xA0, 0xFC, 0xFC, 0xFC, 0x00, 0x00, 0x00}},
	}
	for _, test := range tests {
		t.Run(test.Format.String(), func(it *testing.T) {
			if v := test.Format.AppendPixels(nil, colors); !bytes.Equal(v, test.Want) {
				it.Errorf("expected % x, got % x", test.Want, v)
			}
			if v := test.Format.Decode(test.Want); len(v) != len(colors) {
				it.Errorf("expected %d decoded pixels, got %d", len(colors), len(v))
			}
		})
	}
}

func TestPattern(t *testing.T) {
	for _, f := range []Format{RGB444, RGB565, RGB666} {
		_, n := f.Unit()
		if v := f.Pattern(Orange); len(v) != n {
			t.Errorf("%s: expected pattern of %d bytes, got %d", f, n, len(v))
		}
	}
}

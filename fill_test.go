package display

import (
	"bytes"
	"testing"

	"github.com/BeatGlow/n70display/pixel"
)

func TestFillPixelCount(t *testing.T) {
	tests := []struct {
		Mode  ColorMode
		Bytes int
	}{
		{Color12Bit, 10 * 20 / 2 * 3},
		{Color16Bit, 10 * 20 * 2},
		{Color18Bit, 10 * 20 * 3},
	}
	for _, test := range tests {
		t.Run(test.Mode.String(), func(it *testing.T) {
			d, bus := testDriver(it, test.Mode, Portrait)
			if err := d.Fill(5, 5, 14, 24, pixel.Orange); err != nil {
				it.Fatal(err)
			}
			ramwr, ok := bus.Last(n70RAMWR)
			if !ok {
				it.Fatal("expected memory write")
			}
			if len(ramwr.Data) != test.Bytes {
				it.Fatalf("expected %d bytes, got %d", test.Bytes, len(ramwr.Data))
			}
			pattern := d.Format().Pattern(pixel.Orange)
			for i := 0; i < len(ramwr.Data); i += len(pattern) {
				if !bytes.Equal(ramwr.Data[i:i+len(pattern)], pattern) {
					it.Fatalf("byte %d: expected pattern % x, got % x", i, pattern, ramwr.Data[i:i+len(pattern)])
				}
			}
		})
	}
}

func TestClearScreen(t *testing.T) {
	d, bus := testDriver(t, Color16Bit, Portrait)
	if err := d.ClearScreen(pixel.Blue); err != nil {
		t.Fatal(err)
	}

	if v := bus.Commands(); !bytes.Equal(v, []byte{n70CASET, n70PASET, n70RAMWR}) {
		t.Fatalf("expected CASET PASET RAMWR, got % x", v)
	}
	if v := bus.Transfers[0].Data; !bytes.Equal(v, []byte{0x00, 0x00, 0x00, 175}) {
		t.Errorf("expected columns 0-175, got % x", v)
	}
	if v := bus.Transfers[1].Data; !bytes.Equal(v, []byte{0x00, 0x00, 0x00, 207}) {
		t.Errorf("expected pages 0-207, got % x", v)
	}
	data := bus.Transfers[2].Data
	if len(data) != 176*208*2 {
		t.Fatalf("expected %d bytes, got %d", 176*208*2, len(data))
	}
	for i := 0; i < len(data); i += 2 {
		if data[i] != 0x00 || data[i+1] != 0x1F {
			t.Fatalf("pixel %d: expected 00 1f, got %02x %02x", i/2, data[i], data[i+1])
		}
	}
}

func TestClearScreenLandscape(t *testing.T) {
	d, bus := testDriver(t, Color18Bit, Landscape)
	if err := d.ClearScreen(pixel.White); err != nil {
		t.Fatal(err)
	}
	if v := bus.Transfers[0].Data; !bytes.Equal(v, []byte{0x00, 0x00, 0x00, 207}) {
		t.Errorf("expected columns 0-207, got % x", v)
	}
	if v := bus.Transfers[1].Data; !bytes.Equal(v, []byte{0x00, 0x00, 0x00, 175}) {
		t.Errorf("expected pages 0-175, got % x", v)
	}
	if v := len(bus.Transfers[2].Data); v != 208*176*3 {
		t.Errorf("expected %d bytes, got %d", 208*176*3, v)
	}
}

func TestFillPixels(t *testing.T) {
	colors := []pixel.RGB{0xF08020, 0x40C0A0, pixel.White, pixel.Black}
	tests := []struct {
		Mode ColorMode
		Want []byte
	}{
		{Color12Bit, []byte{0xF8, 0x24, 0xCA, 0xFF, 0xF0, 0x00}},
		{Color16Bit, []byte{0xF4, 0x04, 0x46, 0x14, 0xFF, 0xFF, 0x00, 0x00}},
		{Color18Bit, []byte{0xF0, 0x80, 0x20, 0x40, 0xC0, 0xA0, 0xFC, 0xFC, 0xFC, 0x00, 0x00, 0x00}},
	}
	for _, test := range tests {
		t.Run(test.Mode.String(), func(it *testing.T) {
			d, bus := testDriver(it, test.Mode, Portrait)
			if err := d.FillPixels(0, 0, 1, 1, colors); err != nil {
				it.Fatal(err)
			}
			ramwr, _ := bus.Last(n70RAMWR)
			if !bytes.Equal(ramwr.Data, test.Want) {
				it.Errorf("expected % x, got % x", test.Want, ramwr.Data)
			}
		})
	}
}

func TestFillPixelsLarge(t *testing.T) {
	d, bus := testDriver(t, Color12Bit, Portrait)
	colors := make([]pixel.RGB, 176*208)
	for i := range colors {
		colors[i] = pixel.RGB(i)
	}
	if err := d.FillPixels(0, 0, 175, 207, colors); err != nil {
		t.Fatal(err)
	}
	ramwr, _ := bus.Last(n70RAMWR)
	if want := pixel.RGB444.AppendPixels(nil, colors); !bytes.Equal(ramwr.Data, want) {
		t.Errorf("expected %d bytes matching the codec, got %d bytes", len(want), len(ramwr.Data))
	}
}

func TestFillFromBuffer(t *testing.T) {
	d, bus := testDriver(t, Color12Bit, Portrait)
	raw := []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0xFF}
	if err := d.FillFromBuffer(0, 0, 1, 1, raw); err != nil {
		t.Fatal(err)
	}
	ramwr, _ := bus.Last(n70RAMWR)
	if !bytes.Equal(ramwr.Data, raw[:6]) {
		t.Errorf("expected bytes streamed verbatim, got % x", ramwr.Data)
	}
}

func TestSetPixel(t *testing.T) {
	tests := []struct {
		Mode ColorMode
		Want []byte
	}{
		{Color12Bit, []byte{0xF8, 0x2F, 0x82}},
		{Color16Bit, []byte{0xF4, 0x04}},
		{Color18Bit, []byte{0xF0, 0x80, 0x20}},
	}
	for _, test := range tests {
		t.Run(test.Mode.String(), func(it *testing.T) {
			d, bus := testDriver(it, test.Mode, Portrait)
			if err := d.SetPixel(3, 4, 0xF08020); err != nil {
				it.Fatal(err)
			}
			caset, _ := bus.Last(n70CASET)
			if !bytes.Equal(caset.Data, []byte{0, 3, 0, 3}) {
				it.Errorf("expected 1x1 window at column 3, got % x", caset.Data)
			}
			ramwr, _ := bus.Last(n70RAMWR)
			if !bytes.Equal(ramwr.Data, test.Want) {
				it.Errorf("expected % x, got % x", test.Want, ramwr.Data)
			}
		})
	}
}

func TestSetPixel16(t *testing.T) {
	d, bus := testDriver(t, Color16Bit, Portrait)
	if err := d.SetPixel16(0, 0, 0xF81F); err != nil {
		t.Fatal(err)
	}
	ramwr, _ := bus.Last(n70RAMWR)
	if !bytes.Equal(ramwr.Data, []byte{0xF8, 0x1F}) {
		t.Errorf("expected f8 1f, got % x", ramwr.Data)
	}
}

func TestReadMemory(t *testing.T) {
	d, bus := testDriver(t, Color16Bit, Portrait)
	bus.Input = []byte{0xEE, 0xF8, 0x00, 0x07, 0xE0}
	data, err := d.ReadMemory(0, 0, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, []byte{0xF8, 0x00, 0x07, 0xE0}) {
		t.Errorf("expected raw bytes without the dummy, got % x", data)
	}
	ramrd, _ := bus.Last(n70RAMRD)
	if ramrd.Read != 5 {
		t.Errorf("expected 5 reads including the dummy, got %d", ramrd.Read)
	}
	if v := d.Format().Decode(data); len(v) != 2 || v[0] != 0xF80000 || v[1] != 0x00FC00 {
		t.Errorf("expected red and green pixels, got %06x", v)
	}
}

func TestReadMemory12Bit(t *testing.T) {
	d, bus := testDriver(t, Color12Bit, Portrait)
	bus.Input = []byte{0x00, 0xF8, 0x24, 0xCA, 0x11, 0x22, 0x33}
	data, err := d.ReadMemory(0, 0, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) != 6 {
		t.Errorf("expected 6 bytes for 4 pixels, got %d", len(data))
	}
}

func TestReadDisplayID(t *testing.T) {
	d, bus := testDriver(t, Color16Bit, Portrait)
	bus.Input = []byte{0xFF, 0x45, 0x83, 0x02}
	id, err := d.ReadDisplayID()
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(id, []byte{0x45, 0x83, 0x02}) {
		t.Errorf("expected 45 83 02, got % x", id)
	}
	if rddid, _ := bus.Last(n70RDDID); rddid.Read != 4 {
		t.Errorf("expected dummy plus 3 reads, got %d", rddid.Read)
	}
}

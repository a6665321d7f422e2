package font

import (
	"errors"
	"fmt"
	"image/color"
	"sync"
)

// Character range covered by generated tables.
const (
	FirstChar = 0x20
	LastChar  = 0x7E

	// Offset is subtracted from a character code to find its glyph slot.
	Offset = 0x1F
)

// ErrCellSize is returned when a table is requested with a cell the format cannot hold.
var ErrCellSize = errors.New("font: glyph cell must be 2, 4, 6 or 8 columns and 3 to 255 rows")

// Size selects one of the built-in tables.
type Size uint8

// Built-in sizes.
const (
	Small  Size = iota // 6x8
	Medium             // 8x8
	Large              // 8x14
)

func (s Size) String() string {
	switch s {
	case Small:
		return "6x8"
	case Medium:
		return "8x8"
	case Large:
		return "8x14"
	default:
		return fmt.Sprintf("Size(%d)", uint8(s))
	}
}

// Table is a font resource. Tables are never modified after construction.
type Table []byte

// Width is the glyph width in columns.
func (t Table) Width() int { return int(t[0]) }

// Height is the glyph height in rows.
func (t Table) Height() int { return int(t[1]) }

// BytesPerGlyph is the size of one glyph slot.
func (t Table) BytesPerGlyph() int { return int(t[2]) }

// Glyph returns the bitmap rows of character c.
//
// The character must have a slot in the table; codes below 0x1F or past the end of
// the table are not checked.
func (t Table) Glyph(c byte) []byte {
	n := t.BytesPerGlyph()
	o := (int(c) - Offset) * n
	return t[o : o+n]
}

var builtin struct {
	once   [3]sync.Once
	tables [3]Table
}

// Table returns the built-in table for the size. Unknown sizes return the small table.
func (s Size) Table() Table {
	if s > Large {
		s = Small
	}
	builtin.once[s].Do(func() {
		var (
			t   Table
			err error
		)
		switch s {
		case Small:
			t, err = smallTable()
		case Medium:
			t, err = mediumTable()
		case Large:
			t, err = largeTable()
		}
		if err != nil {
			panic(fmt.Sprintf("font: building %s table: %v", s, err))
		}
		builtin.tables[s] = t
	})
	return builtin.tables[s]
}

// cell is a single glyph canvas; it implements drivers.Displayer so TinyGo fonts can
// draw into it.
type cell struct {
	cols, rows int
	bits       []byte
}

func (c *cell) Size() (x, y int16) {
	return int16(c.cols), int16(c.rows)
}

func (c *cell) SetPixel(x, y int16, col color.RGBA) {
	if x < 0 || y < 0 || int(x) >= c.cols || int(y) >= c.rows || col.A == 0 {
		return
	}
	c.bits[y] |= 0x80 >> uint(x)
}

func (c *cell) Display() error {
	return nil
}

func (c *cell) reset() {
	for i := range c.bits {
		c.bits[i] = 0
	}
}

// build lays out a table of cols by rows glyphs, calling render once per character.
func build(cols, rows int, render func(c *cell, code byte)) (Table, error) {
	if cols < 2 || cols > 8 || cols&1 != 0 || rows < 3 || rows > 0xFF {
		return nil, ErrCellSize
	}
	const slots = LastChar - Offset + 1
	t := make(Table, slots*rows)
	t[0], t[1], t[2] = byte(cols), byte(rows), byte(rows)

	c := &cell{cols: cols, rows: rows, bits: make([]byte, rows)}
	for code := FirstChar; code <= LastChar; code++ {
		c.reset()
		render(c, byte(code))
		copy(t[(code-Offset)*rows:], c.bits)
	}
	return t, nil
}

// Package font provides fixed-cell bitmap font tables for the text renderer.
//
// A table starts with three header bytes: glyph width in columns, glyph height in
// rows and bytes per glyph. The header occupies the first glyph slot, so the glyph
// for character code c starts at (c-0x1F) * bytes per glyph and the first real
// glyph is the space character (0x20). Every glyph row is one byte, most
// significant bit leftmost, so glyphs are at most 8 columns wide.
//
// The built-in tables are rasterised on first use from fonts shipped with the Go
// and TinyGo ecosystems; custom tables can be built from any [font.Face],
// TrueType file or [tinyfont.Fonter].
package font

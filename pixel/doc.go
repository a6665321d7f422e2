// Package pixel implements the color codec for the display controller wire formats.
//
// Colors enter the codec as 24-bit [RGB] values and leave as the byte sequences the
// controller expects at 12, 16 or 18 bits per pixel. The package also provides
// [color.Model] implementations for each depth, compatible with Go's native
// [color.Color] and [image.Image] / [draw.Image] interfaces.
package pixel

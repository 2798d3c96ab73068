// Package image1bit provides a 1-bit monochrome frame for 8x8 LED dot-matrix panels.
//
// A Frame stores one byte per row. The most significant bit of each byte is the
// leftmost column, which matches the digit registers of MAX7219-style drivers.
//
// Memory layout example for one row:
//
//	Columns: 0 1 2 3 4 5 6 7
//	Pixels:  # # # . . # . #
//	Byte:    0xE5
//
// This package provides:
//
// - Bit: A color type that is either lit or dark
// - BitModel: A color model for converting standard Go colors to Bit
// - Frame: An image.Image and draw.Image implementation for an 8x8 panel
//
// Example usage:
//
//	var f image1bit.Frame
//
//	// Light the top-left pixel
//	f.SetBit(0, 0, image1bit.On)
//
//	// Use with standard Go image operations
//	draw.Draw(&f, f.Bounds(), image.NewUniform(image1bit.On), image.Point{}, draw.Src)
package image1bit

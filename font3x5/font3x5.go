// Package font3x5 holds the 3x5 pixel glyphs used to draw signed numbers on
// small LED matrices.
//
// Each glyph row keeps its three pixels in the low bits of a byte, bit 2 being
// the left column. Shifting a row left by n moves the glyph n columns towards
// the left edge of an 8-column panel.
package font3x5

// Glyph dimensions in pixels.
const (
	Width  = 3
	Height = 5
)

// Glyph is a 3x5 bitmap, one row per element, top row first.
type Glyph [Height]byte

var digits = [10]Glyph{
	{0b111, 0b101, 0b101, 0b101, 0b111}, // 0
	{0b010, 0b110, 0b010, 0b010, 0b111}, // 1
	{0b111, 0b001, 0b111, 0b100, 0b111}, // 2
	{0b111, 0b001, 0b111, 0b001, 0b111}, // 3
	{0b101, 0b101, 0b111, 0b001, 0b001}, // 4
	{0b111, 0b100, 0b111, 0b001, 0b111}, // 5
	{0b111, 0b100, 0b111, 0b101, 0b111}, // 6
	{0b111, 0b001, 0b001, 0b001, 0b001}, // 7
	{0b111, 0b101, 0b111, 0b101, 0b111}, // 8
	{0b111, 0b101, 0b111, 0b001, 0b111}, // 9
}

// Minus is the sign glyph: a bar across the middle row.
var Minus = Glyph{0b000, 0b000, 0b111, 0b000, 0b000}

// Digit returns the glyph for d. It panics if d is not in 0..9.
func Digit(d int) Glyph {
	return digits[d]
}

// Lookup returns the digit drawn by g.
func Lookup(g Glyph) (int, bool) {
	for d := range digits {
		if digits[d] == g {
			return d, true
		}
	}
	return 0, false
}

// Row returns row i shifted left by shift columns.
func (g Glyph) Row(i int, shift uint) byte {
	return g[i] << shift
}

// Empty reports whether no pixel of g is lit.
func (g Glyph) Empty() bool {
	return g == Glyph{}
}

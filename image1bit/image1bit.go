package image1bit

import (
	"image"
	"image/color"
	"strings"
)

// Frame dimensions in pixels.
const (
	Width  = 8
	Height = 8
)

// Bit represents a monochrome pixel.
type Bit bool

const (
	On  Bit = true
	Off Bit = false
)

// RGBA converts the Bit to fully white or fully black.
func (b Bit) RGBA() (r, g, bl, a uint32) {
	if b {
		return 0xFFFF, 0xFFFF, 0xFFFF, 0xFFFF
	}
	return 0, 0, 0, 0xFFFF
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// toBit converts any color.Color to Bit using a luminance threshold at half intensity.
func toBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Bit(y >= 0x8000)
}

// BitModel converts colors to Bit.
var BitModel = color.ModelFunc(toBit)

// Frame is the full state of an 8x8 LED matrix, one byte per row.
// Bit 7 of a row is column 0.
type Frame [Height]byte

// ColorModel returns the color model of the frame.
func (f *Frame) ColorModel() color.Model {
	return BitModel
}

// Bounds returns the frame bounds, always 8x8 at the origin.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// At returns the color of the pixel at (x, y).
// It implements the image.Image interface.
func (f *Frame) At(x, y int) color.Color {
	return f.BitAt(x, y)
}

// BitAt returns the pixel at (x, y). Pixels outside the frame are Off.
func (f *Frame) BitAt(x, y int) Bit {
	if !inside(x, y) {
		return Off
	}
	return f[y]&mask(x) != 0
}

// Set sets the color of the pixel at (x, y).
func (f *Frame) Set(x, y int, c color.Color) {
	f.SetBit(x, y, BitModel.Convert(c).(Bit))
}

// SetBit sets the pixel at (x, y). Writes outside the frame are ignored.
func (f *Frame) SetBit(x, y int, b Bit) {
	if !inside(x, y) {
		return
	}
	if b {
		f[y] |= mask(x)
	} else {
		f[y] &^= mask(x)
	}
}

// Clear switches every pixel off.
func (f *Frame) Clear() {
	*f = Frame{}
}

// String renders the frame as 8 lines of '#' and '.'.
func (f Frame) String() string {
	var sb strings.Builder
	sb.Grow(Height * (Width + 1))
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if f[y]&mask(x) != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func inside(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// mask returns the row bit for column x.
func mask(x int) byte {
	return 0x80 >> uint(x)
}

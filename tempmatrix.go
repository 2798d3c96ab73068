package tempmatrix

import (
	"errors"

	"github.com/flavioheleno/tempmatrix/font3x5"
	"github.com/flavioheleno/tempmatrix/image1bit"
)

// Limit is the largest magnitude the 8-column layout can draw. Encode
// saturates values beyond ±Limit.
const Limit = 99

// Glyph placement, as left shifts of the 3-bit glyph rows.
const (
	signShift        = 5 // columns 0-2
	negTensShift     = 1 // columns 4-6
	posTensShift     = 4 // columns 1-3
	unitsShift       = 0 // columns 5-7
	topRow           = 1 // first frame row carrying glyph row 0
	negTensColumnBit = 1 << 3
)

// ErrMalformed is returned by Decode for frames Encode never produces.
var ErrMalformed = errors.New("tempmatrix: frame does not hold an encoded value")

// Encode renders v as a sign and digit glyphs on an 8x8 frame.
//
// Glyphs occupy rows 1 to 5. Non-negative values draw the tens digit (when
// non-zero) next to the units digit. Negative values draw the minus sign on
// the left and a single digit: the tens digit when the magnitude is 10 or more,
// otherwise the units digit. Values beyond ±Limit are drawn as ±Limit.
func Encode(v int) image1bit.Frame {
	if v > Limit {
		v = Limit
	} else if v < -Limit {
		v = -Limit
	}

	negative := v < 0
	magnitude := v
	if negative {
		magnitude = -v
	}
	tens, units := magnitude/10, magnitude%10

	var f image1bit.Frame
	for i := 0; i < font3x5.Height; i++ {
		var row byte
		if negative {
			row |= font3x5.Minus.Row(i, signShift)
			if tens > 0 {
				row |= font3x5.Digit(tens).Row(i, negTensShift)
			} else {
				row |= font3x5.Digit(units).Row(i, unitsShift)
			}
		} else {
			if tens > 0 {
				row |= font3x5.Digit(tens).Row(i, posTensShift)
			}
			row |= font3x5.Digit(units).Row(i, unitsShift)
		}
		f[topRow+i] = row
	}
	return f
}

// Readout is what a frame shows: a sign and up to two digits.
type Readout struct {
	Negative bool
	Tens     int
	HasTens  bool
	Units    int
	HasUnits bool
}

// Value returns the number shown. Negative two-digit readouts only carry the
// tens digit, so -23 reads back as -20.
func (r Readout) Value() int {
	v := r.Tens*10 + r.Units
	if r.Negative {
		return -v
	}
	return v
}

// Decode recovers the sign and digits drawn by Encode.
func Decode(f image1bit.Frame) (Readout, error) {
	if f[0]|f[6]|f[7] != 0 {
		return Readout{}, ErrMalformed
	}

	var r Readout
	var want image1bit.Frame
	place := func(g font3x5.Glyph, shift uint) {
		for i := range g {
			want[topRow+i] |= g.Row(i, shift)
		}
	}

	if glyphAt(f, signShift) == font3x5.Minus {
		r.Negative = true
		place(font3x5.Minus, signShift)

		var d int
		var ok bool
		if usesColumn(f, negTensColumnBit) {
			d, ok = font3x5.Lookup(glyphAt(f, negTensShift))
			r.Tens, r.HasTens = d, ok
			place(font3x5.Digit(d), negTensShift)
		} else {
			d, ok = font3x5.Lookup(glyphAt(f, unitsShift))
			r.Units, r.HasUnits = d, ok
			place(font3x5.Digit(d), unitsShift)
		}
		if !ok {
			return Readout{}, ErrMalformed
		}
	} else {
		d, ok := font3x5.Lookup(glyphAt(f, unitsShift))
		if !ok {
			return Readout{}, ErrMalformed
		}
		r.Units, r.HasUnits = d, true
		place(font3x5.Digit(d), unitsShift)

		if g := glyphAt(f, posTensShift); !g.Empty() {
			d, ok := font3x5.Lookup(g)
			if !ok || d == 0 {
				return Readout{}, ErrMalformed
			}
			r.Tens, r.HasTens = d, true
			place(g, posTensShift)
		}
	}

	// Stray pixels outside the recognised glyphs.
	if want != f {
		return Readout{}, ErrMalformed
	}
	return r, nil
}

// glyphAt extracts the 3x5 block whose right column sits at bit shift.
func glyphAt(f image1bit.Frame, shift uint) font3x5.Glyph {
	var g font3x5.Glyph
	for i := range g {
		g[i] = (f[topRow+i] >> shift) & 0b111
	}
	return g
}

func usesColumn(f image1bit.Frame, bit byte) bool {
	for i := 0; i < font3x5.Height; i++ {
		if f[topRow+i]&bit != 0 {
			return true
		}
	}
	return false
}

package max7219

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math/bits"

	"github.com/flavioheleno/tempmatrix/image1bit"
	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// Register addresses.
const (
	regDigit0      = 0x01 // Row 0, rows 1-7 follow
	regDecodeMode  = 0x09
	regIntensity   = 0x0A
	regScanLimit   = 0x0B
	regShutdown    = 0x0C
	regDisplayTest = 0x0F
)

// MaxIntensity is the brightest duty cycle (31/32).
const MaxIntensity = 15

var errHalted = errors.New("max7219: halted")

// Opts is the configuration for the MAX7219 matrix.
type Opts struct {
	Intensity byte // Brightness 0-15 (default: 8 when Opts is nil)
	Rotated   bool // 180° rotation
}

// Dev is the device handle for a MAX7219 8x8 matrix.
type Dev struct {
	c conn.Conn

	rect      image.Rectangle
	rotated   bool
	intensity byte

	buffer image1bit.Frame // Last frame sent
	next   image1bit.Frame // Scratch frame for Draw

	halted bool
}

var _ display.Drawer = (*Dev)(nil)

// NewSPI creates a new MAX7219 device connected via SPI.
//
// The SPI port is configured for 10MHz, Mode0, 8-bit transfers. opts can be
// nil to use defaults.
func NewSPI(p spi.Port, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &Opts{Intensity: 8}
	}
	if opts.Intensity > MaxIntensity {
		return nil, errors.New("max7219: intensity must be between 0 and 15")
	}

	c, err := p.Connect(10*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		return nil, fmt.Errorf("max7219: %w", err)
	}

	d := &Dev{
		c:         c,
		rect:      image.Rect(0, 0, image1bit.Width, image1bit.Height),
		rotated:   opts.Rotated,
		intensity: opts.Intensity,
	}
	if err := d.init(); err != nil {
		return nil, err
	}
	return d, nil
}

// init leaves display test mode, enables all 8 rows, disables BCD decoding,
// clears the rows and takes the chip out of shutdown.
func (d *Dev) init() error {
	regs := [][2]byte{
		{regDisplayTest, 0x00},
		{regScanLimit, 0x07},
		{regDecodeMode, 0x00},
	}
	for r := 0; r < image1bit.Height; r++ {
		regs = append(regs, [2]byte{regDigit0 + byte(r), 0x00})
	}
	regs = append(regs,
		[2]byte{regIntensity, d.intensity},
		[2]byte{regShutdown, 0x01},
	)

	for _, r := range regs {
		if err := d.sendRegister(r[0], r[1]); err != nil {
			return fmt.Errorf("max7219: init failed: %w", err)
		}
	}
	return nil
}

// sendRegister writes one register in its own transaction.
func (d *Dev) sendRegister(reg, value byte) error {
	return d.c.Tx([]byte{reg, value}, nil)
}

// writeRows sends rows minRow to maxRow of f.
func (d *Dev) writeRows(f *image1bit.Frame, minRow, maxRow int) error {
	out := d.orient(f)
	if d.rotated {
		minRow, maxRow = image1bit.Height-1-maxRow, image1bit.Height-1-minRow
	}
	for r := minRow; r <= maxRow; r++ {
		if err := d.sendRegister(regDigit0+byte(r), out[r]); err != nil {
			return err
		}
	}
	return nil
}

// orient maps a frame to register order, applying rotation.
func (d *Dev) orient(f *image1bit.Frame) image1bit.Frame {
	if !d.rotated {
		return *f
	}
	var out image1bit.Frame
	for r, row := range f {
		out[image1bit.Height-1-r] = bits.Reverse8(row)
	}
	return out
}

// ColorModel returns the color model of the display.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds returns the image bounds of the display.
func (d *Dev) Bounds() image.Rectangle {
	return d.rect
}

// Show writes every row of f to the display. The previous content is fully
// replaced.
func (d *Dev) Show(f image1bit.Frame) error {
	if d.halted {
		return errHalted
	}
	if err := d.writeRows(&f, 0, image1bit.Height-1); err != nil {
		return err
	}
	d.buffer = f
	return nil
}

// Write writes raw row data to the display, one byte per row.
// The data must be exactly 8 bytes.
func (d *Dev) Write(rows []byte) (int, error) {
	if d.halted {
		return 0, errHalted
	}
	if len(rows) != image1bit.Height {
		return 0, errors.New("max7219: invalid buffer size")
	}
	var f image1bit.Frame
	copy(f[:], rows)
	if err := d.Show(f); err != nil {
		return 0, err
	}
	return len(rows), nil
}

// Draw draws an image onto the display, sending only the rows that changed.
func (d *Dev) Draw(dst image.Rectangle, src image.Image, sp image.Point) error {
	if d.halted {
		return errHalted
	}

	dst = dst.Intersect(d.rect)
	if dst.Empty() {
		return nil
	}

	// Fast path: a full frame replaces everything.
	if f, ok := src.(*image1bit.Frame); ok && dst == d.rect && sp == (image.Point{}) {
		return d.Show(*f)
	}

	d.next = d.buffer
	draw.Draw(&d.next, dst, src, sp, draw.Src)

	minRow, maxRow := d.calculateDiff()
	if minRow > maxRow {
		return nil
	}
	if err := d.writeRows(&d.next, minRow, maxRow); err != nil {
		return err
	}
	d.buffer = d.next
	return nil
}

// calculateDiff returns the range of rows that differ between the last sent
// frame and the next one, or (Height, -1) when nothing changed.
func (d *Dev) calculateDiff() (minRow, maxRow int) {
	minRow, maxRow = image1bit.Height, -1
	for y := 0; y < image1bit.Height; y++ {
		if d.buffer[y] != d.next[y] {
			if y < minRow {
				minRow = y
			}
			maxRow = y
		}
	}
	return
}

// Frame returns the last frame sent to the display.
func (d *Dev) Frame() image1bit.Frame {
	return d.buffer
}

// SetIntensity sets the LED brightness (0-15).
func (d *Dev) SetIntensity(intensity byte) error {
	if d.halted {
		return errHalted
	}
	if intensity > MaxIntensity {
		return errors.New("max7219: intensity must be between 0 and 15")
	}
	if err := d.sendRegister(regIntensity, intensity); err != nil {
		return err
	}
	d.intensity = intensity
	return nil
}

// DisplayTest lights every LED at full brightness while on is true,
// independently of the row registers.
func (d *Dev) DisplayTest(on bool) error {
	if d.halted {
		return errHalted
	}
	var v byte
	if on {
		v = 0x01
	}
	return d.sendRegister(regDisplayTest, v)
}

// Halt puts the chip in shutdown mode, blanking the display.
// After calling Halt, the display will not respond to further commands
// until the device is re-initialized.
func (d *Dev) Halt() error {
	d.halted = true
	return d.sendRegister(regShutdown, 0x00)
}

// String returns a string representation of the device.
func (d *Dev) String() string {
	return fmt.Sprintf("max7219.Dev{%dx%d}", d.rect.Dx(), d.rect.Dy())
}

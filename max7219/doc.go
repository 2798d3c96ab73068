// Package max7219 controls an 8x8 LED dot-matrix driven by a MAX7219 via SPI.
//
// The MAX7219 scans up to 8 digit registers; on matrix modules each digit
// register is one row of 8 LEDs, bit 7 being the leftmost column. This driver
// uses the chip without BCD decoding and implements the display.Drawer
// interface from periph.io.
//
// # Hardware Connection
//
//	Module Pin → System Pin
//	VCC        → 5V
//	GND        → GND
//	DIN        → SPI Data (MOSI)
//	CS/LOAD    → SPI Chip Select
//	CLK        → SPI Clock (SCLK)
//
// The chip latches a register on the rising edge of CS, so every register
// write is its own 2-byte SPI transaction.
//
// # Basic Usage
//
//	spiPort, _ := spireg.Open("")
//	dev, _ := max7219.NewSPI(spiPort, &max7219.Opts{Intensity: 4})
//	defer dev.Halt()
//
//	dev.Show(tempmatrix.Encode(21))
//
// Any image can also be drawn; pixels are thresholded to on/off and only rows
// that changed since the previous frame are sent:
//
//	dev.Draw(dev.Bounds(), img, image.Point{})
//
// # Datasheet
//
// https://www.analog.com/media/en/technical-documentation/data-sheets/MAX7219-MAX7221.pdf
package max7219

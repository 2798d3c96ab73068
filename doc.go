// Package tempmatrix draws a signed temperature on an 8x8 LED dot-matrix.
//
// The package turns an integer in -99..99 into an image1bit.Frame using the
// 3x5 glyphs of package font3x5. Subpackages provide the collaborators of a
// small thermostat-style device: a MAX7219 matrix driver, a DS18B20 probe,
// active-low push-buttons, the serial TEMP: line protocol and the polling loop
// that ties them together.
//
// # Layout
//
// Glyphs sit on rows 1 to 5 of the frame; rows 0, 6 and 7 stay dark. Columns
// are numbered from the left, column 0 being the most significant bit of a
// row:
//
//	 value   columns 0-2   columns 1-3   columns 4-6   columns 5-7
//	  7                                                 units
//	  42                   tens                         units
//	 -5      minus                                      units
//	 -23     minus                       tens
//
// Negative values with two digits only show the tens digit: there is no room
// left for the units. Magnitudes above 99 are drawn as 99.
//
// # Basic Usage
//
//	frame := tempmatrix.Encode(-5)
//	fmt.Print(frame)
//
//	// Output:
//	// ........
//	// .....###
//	// .....#..
//	// ###..###
//	// .......#
//	// .....###
//	// ........
//	// ........
//
// # Hardware
//
// See examples/tempmatrix for a complete program running on a Raspberry Pi
// with a MAX7219 module on SPI, a DS18B20 on the 1-Wire bus and two buttons
// wired to ground.
package tempmatrix

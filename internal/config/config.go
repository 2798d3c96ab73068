// Package config resolves the example program's settings from command-line
// flags, with TEMPMATRIX_* environment variables taking precedence over flag
// defaults. No configuration file is read.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/flavioheleno/tempmatrix/max7219"
	"github.com/flavioheleno/tempmatrix/monitor"
)

// EnvPrefix prefixes environment variable names, e.g. TEMPMATRIX_SERIAL.
const EnvPrefix = "TEMPMATRIX"

// Config holds the resolved settings.
type Config struct {
	SPI       string        // SPI bus name, empty for the default
	Intensity int           // matrix brightness 0-15
	Rotated   bool          // matrix mounted upside down
	NoDisplay bool          // serial-only variant
	Up        string        // increment button GPIO
	Down      string        // decrement button GPIO
	OneWire   string        // 1-Wire bus name, empty for the default
	Bits      int           // DS18B20 resolution
	Serial    string        // serial port, empty for stdout
	Baud      int           // serial baud rate
	Interval  time.Duration // poll interval and debounce
	LogLevel  string
}

// Load parses args and returns the configuration.
func Load(args []string) (Config, error) {
	fs := pflag.NewFlagSet("tempmatrix", pflag.ContinueOnError)
	fs.String("spi", "", "SPI bus name (empty for default)")
	fs.Int("intensity", 8, "Matrix intensity (0-15)")
	fs.Bool("rotated", false, "Rotate the matrix by 180°")
	fs.Bool("no-display", false, "Run without the LED matrix")
	fs.String("up", "GPIO17", "Increment button pin name")
	fs.String("down", "GPIO27", "Decrement button pin name")
	fs.String("onewire", "", "1-Wire bus name (empty for default)")
	fs.Int("resolution", 12, "DS18B20 resolution in bits (9-12)")
	fs.String("serial", "", "Serial port for TEMP: lines (empty for stdout)")
	fs.Int("baud", 9600, "Serial baud rate")
	fs.Duration("interval", monitor.DefaultInterval, "Poll interval, also the button debounce")
	fs.String("log-level", "info", "Log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	c := Config{
		SPI:       v.GetString("spi"),
		Intensity: v.GetInt("intensity"),
		Rotated:   v.GetBool("rotated"),
		NoDisplay: v.GetBool("no-display"),
		Up:        v.GetString("up"),
		Down:      v.GetString("down"),
		OneWire:   v.GetString("onewire"),
		Bits:      v.GetInt("resolution"),
		Serial:    v.GetString("serial"),
		Baud:      v.GetInt("baud"),
		Interval:  v.GetDuration("interval"),
		LogLevel:  v.GetString("log-level"),
	}
	return c, c.validate()
}

func (c Config) validate() error {
	var errs []error
	if c.Intensity < 0 || c.Intensity > max7219.MaxIntensity {
		errs = append(errs, fmt.Errorf("config: intensity %d out of range 0-%d", c.Intensity, max7219.MaxIntensity))
	}
	if c.Bits < 9 || c.Bits > 12 {
		errs = append(errs, fmt.Errorf("config: resolution %d out of range 9-12", c.Bits))
	}
	if c.Interval <= 0 {
		errs = append(errs, fmt.Errorf("config: interval must be positive, got %s", c.Interval))
	}
	if c.Baud <= 0 {
		errs = append(errs, fmt.Errorf("config: baud must be positive, got %d", c.Baud))
	}
	if c.Up == "" || c.Down == "" {
		errs = append(errs, errors.New("config: both button pins are required"))
	}
	return errors.Join(errs...)
}

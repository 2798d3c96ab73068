// Package probe reads the startup temperature from a DS18B20 on a 1-Wire bus.
//
// Only the first device found on the bus is used. A missing device or a
// failed conversion is reported as the setpoint.Disconnected sentinel, the
// same value the Dallas bus libraries return, so callers can fall back to a
// default.
package probe

import (
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"
	"periph.io/x/conn/v3/onewire"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ds18b20"

	"github.com/flavioheleno/tempmatrix/setpoint"
)

// ErrNoDevice is returned by Open when the bus search finds nothing.
var ErrNoDevice = errors.New("probe: no device found on the 1-Wire bus")

// Thermometer is a single temperature reading source, the temperature part
// of physic.SenseEnv. *ds18b20.Dev implements it.
type Thermometer interface {
	Sense(e *physic.Env) error
}

var _ Thermometer = (*ds18b20.Dev)(nil)

// Open searches bus and opens the first device with the given resolution (9
// to 12 bits). The number of devices found is logged.
func Open(bus onewire.Bus, resolutionBits int, log *zap.SugaredLogger) (*ds18b20.Dev, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	addrs, err := bus.Search(false)
	if err != nil {
		return nil, fmt.Errorf("probe: search on %s failed: %w", bus, err)
	}
	log.Infow("sensors found", "count", len(addrs))
	if len(addrs) == 0 {
		log.Warnw("no sensor detected, check the data wire and the 4.7k pull-up resistor")
		return nil, ErrNoDevice
	}

	dev, err := ds18b20.New(bus, addrs[0], resolutionBits)
	if err != nil {
		return nil, fmt.Errorf("probe: failed to open %#016x: %w", uint64(addrs[0]), err)
	}
	return dev, nil
}

// Celsius converts t to degrees Celsius.
func Celsius(t physic.Temperature) float64 {
	return float64(t-physic.ZeroCelsius) / float64(physic.Kelvin)
}

// Read takes one reading. ok is false when t is nil, the conversion fails, or
// the device reports the disconnected sentinel.
func Read(t Thermometer) (celsius float64, ok bool) {
	if t == nil {
		return setpoint.Disconnected, false
	}
	var env physic.Env
	if err := t.Sense(&env); err != nil {
		return setpoint.Disconnected, false
	}
	c := Celsius(env.Temperature)
	if c == setpoint.Disconnected || math.IsNaN(c) {
		return c, false
	}
	return c, true
}

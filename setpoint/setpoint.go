// Package setpoint holds the temperature value adjusted by the push-buttons.
package setpoint

import "math"

const (
	// Fallback is used when no valid sensor reading is available at startup.
	Fallback = 25

	// Disconnected is the reading a DS18B20 bus reports for a missing or
	// unreadable probe.
	Disconnected = -127.0
)

// Initial returns the starting value for a sensor reading. The reading is
// rounded to the nearest integer, halves away from zero. Fallback is returned
// when ok is false or the reading is the Disconnected sentinel, NaN or
// infinite.
func Initial(celsius float64, ok bool) int {
	if !ok || celsius == Disconnected || math.IsNaN(celsius) || math.IsInf(celsius, 0) {
		return Fallback
	}
	return int(math.Round(celsius))
}

// Store is the current temperature in degrees Celsius.
//
// The value is unbounded: callers that render it must handle magnitudes the
// display cannot show.
type Store struct {
	value int
}

// New returns a Store initialised from a sensor reading, see Initial.
func New(celsius float64, ok bool) *Store {
	return &Store{value: Initial(celsius, ok)}
}

// Value returns the current value.
func (s *Store) Value() int {
	return s.value
}

// Increment adds one and returns the new value.
func (s *Store) Increment() int {
	s.value++
	return s.value
}

// Decrement subtracts one and returns the new value.
func (s *Store) Decrement() int {
	s.value--
	return s.value
}

// Package button detects presses on active-low momentary push-buttons.
//
// A button wired between a GPIO and ground reads High while released and Low
// while held. Edge reports a press once, on the first poll that sees the
// High to Low transition. Polling at a fixed interval (50ms is typical) acts
// as the debounce.
package button

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
)

// Edge tracks the last level seen on one button.
type Edge struct {
	pin  gpio.PinIn
	prev gpio.Level
}

// New configures p as an input with the internal pull-up enabled.
func New(p gpio.PinIn) (*Edge, error) {
	if p == nil {
		return nil, errors.New("button: nil pin")
	}
	if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("button: failed to configure %s: %w", p, err)
	}
	return &Edge{pin: p, prev: gpio.High}, nil
}

// Pressed samples the pin and reports whether it went from High to Low since
// the previous call.
func (e *Edge) Pressed() bool {
	cur := e.pin.Read()
	pressed := e.prev == gpio.High && cur == gpio.Low
	e.prev = cur
	return pressed
}

func (e *Edge) String() string {
	return fmt.Sprintf("button.Edge{%s}", e.pin)
}

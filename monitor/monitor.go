// Package monitor runs the device's polling loop.
//
// Each iteration reads both buttons, applies the resulting increments and
// decrements to the setpoint, and for every change sends a TEMP: line and
// redraws the matrix. All mutable state lives in State and is owned by the
// loop; nothing is shared with other goroutines.
package monitor

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/flavioheleno/tempmatrix"
	"github.com/flavioheleno/tempmatrix/image1bit"
	"github.com/flavioheleno/tempmatrix/probe"
	"github.com/flavioheleno/tempmatrix/setpoint"
)

// DefaultInterval is the poll period, which doubles as the button debounce.
const DefaultInterval = 50 * time.Millisecond

// Button reports a press since the previous poll. *button.Edge implements it.
type Button interface {
	Pressed() bool
}

// Display shows a full frame. *max7219.Dev implements it.
type Display interface {
	Show(f image1bit.Frame) error
}

// Reporter publishes a value. *report.Writer implements it.
type Reporter interface {
	Send(v int) error
}

// State is everything the loop mutates.
type State struct {
	Store *setpoint.Store
	Up    Button
	Down  Button
}

// NewState reads the sensor once and builds the initial state. A missing or
// failing sensor leaves the store at setpoint.Fallback.
func NewState(t probe.Thermometer, up, down Button, log *zap.SugaredLogger) State {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	celsius, ok := probe.Read(t)
	if ok {
		log.Infow("initial temperature detected", "celsius", celsius)
	} else {
		log.Errorw("sensor disconnected or invalid reading, using fallback",
			"reading", celsius, "fallback", setpoint.Fallback)
	}
	return State{
		Store: setpoint.New(celsius, ok),
		Up:    up,
		Down:  down,
	}
}

// Opts configures a Monitor. Display may be nil for a serial-only device.
type Opts struct {
	Display  Display
	Reporter Reporter
	Interval time.Duration
	Logger   *zap.SugaredLogger
}

// Monitor is the polling loop.
type Monitor struct {
	state    State
	display  Display
	reporter Reporter
	interval time.Duration
	log      *zap.SugaredLogger
}

// New returns a Monitor owning state.
func New(state State, opts Opts) *Monitor {
	m := &Monitor{
		state:    state,
		display:  opts.Display,
		reporter: opts.Reporter,
		interval: opts.Interval,
		log:      opts.Logger,
	}
	if m.interval <= 0 {
		m.interval = DefaultInterval
	}
	if m.log == nil {
		m.log = zap.NewNop().Sugar()
	}
	return m
}

// Value returns the current setpoint.
func (m *Monitor) Value() int {
	return m.state.Store.Value()
}

// Start publishes the initial value.
func (m *Monitor) Start() {
	v := m.state.Store.Value()
	m.emit(v)
	m.log.Infow("monitor started, use the buttons to adjust the temperature", "initial", v)
}

// Step runs one iteration and reports whether the value changed. Pressing
// both buttons in the same poll applies the increment, then the decrement,
// and publishes both values.
func (m *Monitor) Step() bool {
	changed := false
	if m.state.Up != nil && m.state.Up.Pressed() {
		v := m.state.Store.Increment()
		m.log.Infow("temperature increased", "value", v)
		m.emit(v)
		changed = true
	}
	if m.state.Down != nil && m.state.Down.Pressed() {
		v := m.state.Store.Decrement()
		m.log.Infow("temperature decreased", "value", v)
		m.emit(v)
		changed = true
	}
	return changed
}

// Run calls Start and then Step once per interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) error {
	m.Start()

	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			m.Step()
		}
	}
}

// emit sends v over serial and redraws the display. Output errors are
// logged; the loop keeps going.
func (m *Monitor) emit(v int) {
	if m.reporter != nil {
		if err := m.reporter.Send(v); err != nil {
			m.log.Warnw("failed to send value", "value", v, "err", err)
		}
	}
	if m.display != nil {
		if v > tempmatrix.Limit || v < -tempmatrix.Limit {
			m.log.Debugw("value exceeds display range, showing the limit", "value", v)
		}
		if err := m.display.Show(tempmatrix.Encode(v)); err != nil {
			m.log.Warnw("failed to update display", "value", v, "err", err)
		}
	}
}

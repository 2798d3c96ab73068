package probe

import (
	"errors"
	"math"
	"reflect"
	"testing"

	"periph.io/x/conn/v3/onewire"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ds18b20"

	"github.com/flavioheleno/tempmatrix/setpoint"
)

func celsius(c float64) physic.Temperature {
	return physic.ZeroCelsius + physic.Temperature(math.Round(c*float64(physic.Kelvin)))
}

type fakeThermometer struct {
	t   physic.Temperature
	err error
}

func (f *fakeThermometer) Sense(e *physic.Env) error {
	if f.err != nil {
		return f.err
	}
	e.Temperature = f.t
	return nil
}

func TestCelsius(t *testing.T) {
	tests := []struct {
		in   physic.Temperature
		want float64
	}{
		{physic.ZeroCelsius, 0},
		{celsius(21.5), 21.5},
		{celsius(-127), -127},
		{physic.ZeroCelsius + 100*physic.Kelvin, 100},
	}
	for _, tt := range tests {
		if got := Celsius(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("Celsius(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name   string
		th     Thermometer
		want   float64
		wantOK bool
	}{
		{"valid", &fakeThermometer{t: celsius(21.6)}, 21.6, true},
		{"below zero", &fakeThermometer{t: celsius(-3.25)}, -3.25, true},
		{"sentinel", &fakeThermometer{t: celsius(setpoint.Disconnected)}, setpoint.Disconnected, false},
		{"driver error", &fakeThermometer{err: errors.New("crc mismatch")}, setpoint.Disconnected, false},
		{"nil", nil, setpoint.Disconnected, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Read(tt.th)
			if ok != tt.wantOK {
				t.Fatalf("Read() ok = %v, want %v", ok, tt.wantOK)
			}
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("Read() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDS18B20IsThermometer(t *testing.T) {
	dev := reflect.TypeOf((*ds18b20.Dev)(nil))
	iface := reflect.TypeOf((*Thermometer)(nil)).Elem()
	if !dev.Implements(iface) {
		t.Errorf("%v does not implement %v", dev, iface)
	}
}

func TestReadFeedsSetpoint(t *testing.T) {
	if got := setpoint.Initial(Read(&fakeThermometer{t: celsius(21.6)})); got != 22 {
		t.Errorf("Initial(Read(21.6)) = %d, want 22", got)
	}
	if got := setpoint.Initial(Read(&fakeThermometer{err: errors.New("no presence pulse")})); got != setpoint.Fallback {
		t.Errorf("Initial(Read(error)) = %d, want %d", got, setpoint.Fallback)
	}
}

// searchBus is a 1-Wire bus that only answers searches.
type searchBus struct {
	addrs []onewire.Address
	err   error
}

func (b *searchBus) String() string { return "searchBus" }

func (b *searchBus) Tx(w, r []byte, power onewire.Pullup) error {
	return errors.New("searchBus: Tx not supported")
}

func (b *searchBus) Search(alarmOnly bool) ([]onewire.Address, error) {
	return b.addrs, b.err
}

func TestOpenEmptyBus(t *testing.T) {
	if _, err := Open(&searchBus{}, 12, nil); !errors.Is(err, ErrNoDevice) {
		t.Errorf("Open() error = %v, want ErrNoDevice", err)
	}
}

func TestOpenSearchError(t *testing.T) {
	errShort := errors.New("bus shorted")
	_, err := Open(&searchBus{err: errShort}, 12, nil)
	if !errors.Is(err, errShort) {
		t.Errorf("Open() error = %v, want wrapped %v", err, errShort)
	}
}

func TestOpenDeviceError(t *testing.T) {
	bus := &searchBus{addrs: []onewire.Address{0x28000005dd4a3b28}}
	if _, err := Open(bus, 12, nil); err == nil {
		t.Error("Open() should fail when the device does not answer")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	c, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Interval != 50*time.Millisecond {
		t.Errorf("Interval = %v, want 50ms", c.Interval)
	}
	if c.Baud != 9600 {
		t.Errorf("Baud = %d, want 9600", c.Baud)
	}
	if c.Intensity != 8 || c.Bits != 12 {
		t.Errorf("Intensity, Bits = %d, %d; want 8, 12", c.Intensity, c.Bits)
	}
	if c.Up != "GPIO17" || c.Down != "GPIO27" {
		t.Errorf("buttons = %s, %s; want GPIO17, GPIO27", c.Up, c.Down)
	}
	if c.NoDisplay || c.Rotated {
		t.Error("display flags should default to false")
	}
}

func TestLoadFlags(t *testing.T) {
	c, err := Load([]string{"--serial", "/dev/ttyUSB0", "--interval", "20ms", "--no-display", "--intensity=2"})
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Serial != "/dev/ttyUSB0" {
		t.Errorf("Serial = %q", c.Serial)
	}
	if c.Interval != 20*time.Millisecond {
		t.Errorf("Interval = %v, want 20ms", c.Interval)
	}
	if !c.NoDisplay {
		t.Error("NoDisplay = false, want true")
	}
	if c.Intensity != 2 {
		t.Errorf("Intensity = %d, want 2", c.Intensity)
	}
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("TEMPMATRIX_BAUD", "115200")
	t.Setenv("TEMPMATRIX_LOG_LEVEL", "debug")

	c, err := Load(nil)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if c.Baud != 115200 {
		t.Errorf("Baud = %d, want 115200", c.Baud)
	}
	if c.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", c.LogLevel)
	}
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"intensity too high", []string{"--intensity", "16"}},
		{"resolution too low", []string{"--resolution", "8"}},
		{"zero interval", []string{"--interval", "0s"}},
		{"missing button", []string{"--up", ""}},
		{"unknown flag", []string{"--bogus"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(tt.args); err == nil {
				t.Errorf("Load(%q) should fail", tt.args)
			}
		})
	}
}

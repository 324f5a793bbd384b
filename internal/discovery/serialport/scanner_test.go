package serialport

import (
	"testing"

	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"
)

func TestMatchesPortPatterns(t *testing.T) {
	scanner := NewScanner(zap.NewNop(), &Config{
		PortPatterns: []string{"ttyUSB", "ttyACM"},
	})

	cases := []struct {
		name string
		want bool
	}{
		{"/dev/ttyUSB0", true},
		{"/dev/ttyACM1", true},
		{"/dev/ttyS0", false},
		{"COM2", false},
	}

	for _, tc := range cases {
		got := scanner.matches(&enumerator.PortDetails{Name: tc.name})
		if got != tc.want {
			t.Errorf("matches(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestMatchesUSBOnly(t *testing.T) {
	scanner := NewScanner(zap.NewNop(), &Config{USBOnly: true})

	if scanner.matches(&enumerator.PortDetails{Name: "/dev/ttyS0", IsUSB: false}) {
		t.Error("matches accepted a non-USB port with USBOnly set")
	}
	if !scanner.matches(&enumerator.PortDetails{Name: "/dev/ttyUSB0", IsUSB: true}) {
		t.Error("matches rejected a USB port with USBOnly set")
	}
}

func TestMatchesNoFilters(t *testing.T) {
	scanner := NewScanner(zap.NewNop(), nil)

	if !scanner.matches(&enumerator.PortDetails{Name: "COM2"}) {
		t.Error("matches rejected a port with no filters configured")
	}
}

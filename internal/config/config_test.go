package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/foone/serial-vcr/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Serial.BaudRate != 9600 {
		t.Errorf("serial.baud_rate = %d, want 9600", cfg.Serial.BaudRate)
	}
	if cfg.Serial.DataBits != 8 {
		t.Errorf("serial.data_bits = %d, want 8", cfg.Serial.DataBits)
	}
	if cfg.Serial.StopBits != 1 {
		t.Errorf("serial.stop_bits = %d, want 1", cfg.Serial.StopBits)
	}
	if cfg.Serial.Parity != "none" {
		t.Errorf("serial.parity = %q, want %q", cfg.Serial.Parity, "none")
	}
	if cfg.Serial.CommandGap != 5*time.Millisecond {
		t.Errorf("serial.command_gap = %v, want 5ms", cfg.Serial.CommandGap)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("logging.level = %q, want %q", cfg.Logging.Level, "info")
	}
}

func TestLoadFromFile(t *testing.T) {
	path := writeConfig(t, `
serial:
  port: /dev/ttyUSB1
  baud_rate: 19200
logging:
  level: debug
`)

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Serial.Port != "/dev/ttyUSB1" {
		t.Errorf("serial.port = %q, want %q", cfg.Serial.Port, "/dev/ttyUSB1")
	}
	if cfg.Serial.BaudRate != 19200 {
		t.Errorf("serial.baud_rate = %d, want 19200", cfg.Serial.BaudRate)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want %q", cfg.Logging.Level, "debug")
	}

	// Unset keys still get defaults
	if cfg.Serial.DataBits != 8 {
		t.Errorf("serial.data_bits = %d, want 8", cfg.Serial.DataBits)
	}
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load: expected error for explicit missing config file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"bad parity", "serial:\n  parity: mark\n"},
		{"bad level", "logging:\n  level: loud\n"},
		{"bad data bits", "serial:\n  data_bits: 7\n"},
		{"bad stop bits", "serial:\n  stop_bits: 3\n"},
		{"zero baud", "serial:\n  baud_rate: 0\n"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := config.Load(writeConfig(t, tc.yaml)); err == nil {
				t.Errorf("Load: expected validation error")
			}
		})
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "vcrctl.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

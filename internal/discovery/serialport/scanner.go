// internal/discovery/serialport/scanner.go
package serialport

import (
	"context"
	"fmt"
	"strings"

	"go.bug.st/serial/enumerator"
	"go.uber.org/zap"

	"github.com/foone/serial-vcr/internal/discovery"
)

// Scanner enumerates the host's serial ports.
type Scanner struct {
	logger *zap.Logger
	config *Config
}

// Config for the serial port scanner.
type Config struct {
	// PortPatterns restricts results to ports whose name contains one
	// of the patterns. Empty means no filtering.
	PortPatterns []string `json:"port_patterns"`

	// USBOnly drops ports without USB metadata. Useful when the control
	// cable is known to be a USB adapter.
	USBOnly bool `json:"usb_only"`
}

// NewScanner creates a new serial port scanner
func NewScanner(logger *zap.Logger, config *Config) *Scanner {
	if config == nil {
		config = &Config{}
	}

	return &Scanner{
		logger: logger.With(zap.String("scanner", "serialport")),
		config: config,
	}
}

// GetScannerType returns scanner type
func (s *Scanner) GetScannerType() string {
	return "serialport"
}

// IsAvailable checks if serial enumeration is available
func (s *Scanner) IsAvailable() bool {
	return true
}

// Scan enumerates serial ports with their USB metadata.
func (s *Scanner) Scan(ctx context.Context) ([]*discovery.DiscoveredPort, error) {
	s.logger.Debug("Starting serial port enumeration")

	ports, err := enumerator.GetDetailedPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate serial ports: %w", err)
	}

	var found []*discovery.DiscoveredPort
	for _, port := range ports {
		select {
		case <-ctx.Done():
			return found, ctx.Err()
		default:
		}

		if !s.matches(port) {
			continue
		}

		found = append(found, &discovery.DiscoveredPort{
			Name:         port.Name,
			IsUSB:        port.IsUSB,
			VendorID:     port.VID,
			ProductID:    port.PID,
			SerialNumber: port.SerialNumber,
			Product:      port.Product,
		})
	}

	s.logger.Info("Serial port enumeration completed", zap.Int("ports_found", len(found)))
	return found, nil
}

// matches applies the configured filters to one port.
func (s *Scanner) matches(port *enumerator.PortDetails) bool {
	if s.config.USBOnly && !port.IsUSB {
		return false
	}

	if len(s.config.PortPatterns) == 0 {
		return true
	}
	for _, pattern := range s.config.PortPatterns {
		if strings.Contains(port.Name, pattern) {
			return true
		}
	}
	return false
}

// internal/discovery/usb/scanner.go
package usb

import (
	"context"
	"fmt"
	"runtime"

	"github.com/google/gousb"
	"go.uber.org/zap"

	"github.com/foone/serial-vcr/internal/discovery"
)

// Scanner walks the USB bus looking for known serial adapter chips.
type Scanner struct {
	logger        *zap.Logger
	knownAdapters *AdapterDatabase
	config        *Config
}

// Config for USB scanner
type Config struct {
	EnableDebug bool `json:"enable_debug"`
}

// NewScanner creates a new USB scanner
func NewScanner(logger *zap.Logger, config *Config) *Scanner {
	if config == nil {
		config = &Config{}
	}

	return &Scanner{
		logger:        logger.With(zap.String("scanner", "usb")),
		knownAdapters: NewAdapterDatabase(),
		config:        config,
	}
}

// GetScannerType returns scanner type identifier
func (s *Scanner) GetScannerType() string {
	return "usb"
}

// IsAvailable checks if USB scanning is available on this system
func (s *Scanner) IsAvailable() bool {
	switch runtime.GOOS {
	case "linux", "darwin", "windows":
		return true
	default:
		return false
	}
}

// Scan enumerates USB devices and reports the ones matching a known
// serial adapter chip. Devices are never opened, only their descriptors
// are read.
func (s *Scanner) Scan(ctx context.Context) ([]*discovery.DiscoveredPort, error) {
	s.logger.Debug("Starting USB adapter scan")

	usbCtx := gousb.NewContext()
	defer usbCtx.Close()

	if s.config.EnableDebug {
		usbCtx.Debug(3)
	}

	var found []*discovery.DiscoveredPort

	// The visitor returns false for every device so nothing is opened.
	_, err := usbCtx.OpenDevices(func(desc *gousb.DeviceDesc) bool {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		vendor, product := s.knownAdapters.Identify(desc.Vendor, desc.Product)
		if vendor == nil || product == nil {
			return false
		}

		s.logger.Debug("Found known serial adapter",
			zap.String("vendor", vendor.Name),
			zap.String("model", product.Model),
		)

		found = append(found, &discovery.DiscoveredPort{
			IsUSB:       true,
			VendorID:    fmt.Sprintf("%04x", uint16(desc.Vendor)),
			ProductID:   fmt.Sprintf("%04x", uint16(desc.Product)),
			AdapterName: fmt.Sprintf("%s %s", vendor.Name, product.Model),
		})
		return false
	})
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate USB devices: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return found, err
	}

	s.logger.Info("USB adapter scan completed", zap.Int("adapters_found", len(found)))
	return found, nil
}

// internal/discovery/discovery.go
package discovery

import "context"

// DiscoveredPort describes a candidate serial port for the control cable.
type DiscoveredPort struct {
	Name         string `json:"name"`
	IsUSB        bool   `json:"is_usb"`
	VendorID     string `json:"vendor_id,omitempty"`
	ProductID    string `json:"product_id,omitempty"`
	SerialNumber string `json:"serial_number,omitempty"`
	Product      string `json:"product,omitempty"`
	AdapterName  string `json:"adapter_name,omitempty"`
}

// PortScanner discovers candidate ports or adapters. Scanners never
// write to a port: an unsolicited opcode could start the deck.
type PortScanner interface {
	Scan(ctx context.Context) ([]*DiscoveredPort, error)
	GetScannerType() string
	IsAvailable() bool
}

// internal/protocol/protocol.go
package protocol

import "context"

// Connection represents a transmit-only link to the deck's control port.
// The remote protocol is fire-and-forget, so there is deliberately no
// Read: nothing in this program parses responses.
type Connection interface {
	// Connection lifecycle
	Open(ctx context.Context) error
	Close() error
	IsOpen() bool

	// Data transmission
	Write(ctx context.Context, data []byte) error
}

// Stats provides connection-level statistics.
type Stats struct {
	BytesWritten int64 `json:"bytes_written"`
	WriteCount   int64 `json:"write_count"`
	ErrorCount   int64 `json:"error_count"`
	IsConnected  bool  `json:"is_connected"`
}

// internal/vcr/controller.go
package vcr

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/foone/serial-vcr/internal/protocol"
	"github.com/foone/serial-vcr/internal/utils"
)

const (
	// DefaultBaudRate is the rate the deck's remote port runs at.
	DefaultBaudRate = 9600

	// DefaultCommandGap is the minimum spacing between commands. The
	// service manual requires at least 5 ms between commands.
	DefaultCommandGap = 5 * time.Millisecond

	// DefaultOpenTimeout bounds how long construction waits for the port.
	DefaultOpenTimeout = 15 * time.Second
)

// Config represents controller configuration.
type Config struct {
	Port       string        `json:"port"`
	BaudRate   int           `json:"baud_rate"`
	CommandGap time.Duration `json:"command_gap"`
}

// DefaultConfig returns a Config for the given port with the deck's
// standard parameters.
func DefaultConfig(port string) *Config {
	return &Config{
		Port:       port,
		BaudRate:   DefaultBaudRate,
		CommandGap: DefaultCommandGap,
	}
}

// VCR dispatches remote-control commands to the deck. It owns the
// underlying connection: the port is opened at construction and released
// by Close. One logical writer per port; the physical port cannot be
// opened twice.
type VCR struct {
	config *Config
	conn   protocol.Connection
	logger *zap.Logger
	mutex  sync.Mutex
	closed bool
}

// New creates a controller and opens the serial port immediately.
// Construction fails with a ConnectionError if the port cannot be opened.
func New(cfg *Config, logger *zap.Logger) (*VCR, error) {
	if cfg.BaudRate == 0 {
		cfg.BaudRate = DefaultBaudRate
	}
	if cfg.CommandGap == 0 {
		cfg.CommandGap = DefaultCommandGap
	}

	conn := protocol.NewSerialConnection(&protocol.SerialConfig{
		Port:     cfg.Port,
		BaudRate: cfg.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   "none",
	}, logger)

	return NewWithConnection(conn, cfg, logger)
}

// NewWithConnection creates a controller over an existing connection.
// The connection is opened if it is not already.
func NewWithConnection(conn protocol.Connection, cfg *Config, logger *zap.Logger) (*VCR, error) {
	if cfg.CommandGap == 0 {
		cfg.CommandGap = DefaultCommandGap
	}

	v := &VCR{
		config: cfg,
		conn:   conn,
		logger: logger.With(
			zap.String("component", "vcr"),
			zap.String("port", cfg.Port),
		),
	}

	ctx, cancel := context.WithTimeout(context.Background(), DefaultOpenTimeout)
	defer cancel()

	if err := conn.Open(ctx); err != nil {
		return nil, &ConnectionError{Op: "open", Port: cfg.Port, Err: err}
	}

	// Some decks ignore transport commands while command table 2 is
	// selected, so force table 1 before anything else. Fire-and-forget
	// like every other command: a write failure here means the port is
	// unusable, so fail construction.
	if err := v.writeCommand(ctx, CommandSelectTable1); err != nil {
		conn.Close()
		return nil, err
	}

	v.logger.Info("Controller ready",
		zap.Int("baud_rate", cfg.BaudRate),
		zap.Duration("command_gap", cfg.CommandGap),
	)
	return v, nil
}

// Send writes the opcode for cmd to the deck. Fire-and-forget: nothing
// is read back, a failed write is surfaced immediately and never retried.
func (v *VCR) Send(ctx context.Context, cmd Command) error {
	if !cmd.IsValid() {
		return &InvalidCommandError{Command: cmd}
	}

	opLogger := utils.NewOperationLogger(v.logger, "send", uuid.New().String())
	opLogger.Start(
		zap.String("command", cmd.String()),
		zap.Int("bytes", len(cmd.Bytes())),
	)

	if err := v.writeCommand(ctx, cmd); err != nil {
		opLogger.Error(err)
		return err
	}

	opLogger.Success()
	return nil
}

// writeCommand writes one opcode and then holds the inter-command gap.
func (v *VCR) writeCommand(ctx context.Context, cmd Command) error {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if v.closed {
		return &ConnectionError{Op: "write", Port: v.config.Port, Err: errClosed}
	}

	if err := v.conn.Write(ctx, cmd.Bytes()); err != nil {
		return &ConnectionError{Op: "write", Port: v.config.Port, Err: err}
	}

	// The deck needs a gap before the next command or it drops it.
	time.Sleep(v.config.CommandGap)
	return nil
}

// Close releases the serial port. Safe to call multiple times; only the
// first call does anything.
func (v *VCR) Close() error {
	v.mutex.Lock()
	defer v.mutex.Unlock()

	if v.closed {
		return nil
	}
	v.closed = true

	if err := v.conn.Close(); err != nil {
		return &ConnectionError{Op: "close", Port: v.config.Port, Err: err}
	}

	v.logger.Info("Controller closed")
	return nil
}

// internal/vcr/errors.go
package vcr

import (
	"errors"
	"fmt"
)

// errClosed is the cause carried by ConnectionErrors from a closed
// controller.
var errClosed = errors.New("controller closed")

// ConnectionError reports that the serial port could not be opened or a
// write to it failed. The protocol offers no acknowledgement, so a failed
// command is never retried.
type ConnectionError struct {
	Op   string // "open", "write", "close"
	Port string
	Err  error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("vcr: %s %s: %v", e.Op, e.Port, e.Err)
}

func (e *ConnectionError) Unwrap() error {
	return e.Err
}

// InvalidCommandError reports a command outside the deck's command set.
// Either Command or Name is set, depending on whether the bad value came
// from code or from the CLI.
type InvalidCommandError struct {
	Command Command
	Name    string
}

func (e *InvalidCommandError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("vcr: unknown command %q", e.Name)
	}
	return fmt.Sprintf("vcr: invalid command %d", int(e.Command))
}

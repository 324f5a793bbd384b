// internal/vcr/command.go
package vcr

import (
	"fmt"
	"strings"
)

// Command identifies one remote-control action from the deck's RS-232
// command set.
type Command int

const (
	CommandUnknown Command = iota
	CommandPlay
	CommandStill
	CommandStop
	CommandFastForward
	CommandRewind
	CommandEject
	CommandPowerOn
	CommandPowerOff
	CommandClear
	CommandClearError
	CommandSelectTable1
	CommandSelectTable2
)

// COMMAND_CODES contains the wire opcodes for every supported command,
// from pages 38-39 of the service manual.
var COMMAND_CODES = struct {
	PLAY           []byte
	STILL          []byte
	STOP           []byte
	FF             []byte
	REW            []byte
	EJECT          []byte
	POWER_ON       []byte
	POWER_OFF      []byte
	CLEAR          []byte
	CLEAR_ERROR    []byte
	SELECT_TABLE_1 []byte
	SELECT_TABLE_2 []byte
}{
	PLAY:        []byte{0x3A},
	STILL:       []byte{0x4F}, // pause with picture
	STOP:        []byte{0x3F},
	FF:          []byte{0xAB},
	REW:         []byte{0xAC},
	EJECT:       []byte{0xA3},
	POWER_ON:    []byte{0x7B},
	POWER_OFF:   []byte{0x7C},
	CLEAR:       []byte{0x56},
	CLEAR_ERROR: []byte{0x41}, // clears the deck's command-error latch

	// Some decks ignore transport commands while command table 2 is
	// selected, so the controller forces table 1 when it connects.
	SELECT_TABLE_1: []byte{0xF6},
	SELECT_TABLE_2: []byte{0xF7},
}

// commandCodes maps every Command to its wire sequence. Built once at
// init, never mutated.
var commandCodes = map[Command][]byte{
	CommandPlay:         COMMAND_CODES.PLAY,
	CommandStill:        COMMAND_CODES.STILL,
	CommandStop:         COMMAND_CODES.STOP,
	CommandFastForward:  COMMAND_CODES.FF,
	CommandRewind:       COMMAND_CODES.REW,
	CommandEject:        COMMAND_CODES.EJECT,
	CommandPowerOn:      COMMAND_CODES.POWER_ON,
	CommandPowerOff:     COMMAND_CODES.POWER_OFF,
	CommandClear:        COMMAND_CODES.CLEAR,
	CommandClearError:   COMMAND_CODES.CLEAR_ERROR,
	CommandSelectTable1: COMMAND_CODES.SELECT_TABLE_1,
	CommandSelectTable2: COMMAND_CODES.SELECT_TABLE_2,
}

var commandNames = map[Command]string{
	CommandPlay:         "play",
	CommandStill:        "still",
	CommandStop:         "stop",
	CommandFastForward:  "ff",
	CommandRewind:       "rew",
	CommandEject:        "eject",
	CommandPowerOn:      "power-on",
	CommandPowerOff:     "power-off",
	CommandClear:        "clear",
	CommandClearError:   "clear-error",
	CommandSelectTable1: "select-table-1",
	CommandSelectTable2: "select-table-2",
}

var commandsByName map[string]Command

func init() {
	commandsByName = make(map[string]Command, len(commandNames))
	for cmd, name := range commandNames {
		commandsByName[name] = cmd
	}
}

// String returns the CLI/log name of the command.
func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("unknown(%d)", int(c))
}

// Bytes returns the wire sequence for the command, or nil if the command
// is not part of the enumeration.
func (c Command) Bytes() []byte {
	return commandCodes[c]
}

// IsValid reports whether the command is a member of the enumeration.
func (c Command) IsValid() bool {
	_, ok := commandCodes[c]
	return ok
}

// Commands returns all defined commands in a stable order.
func Commands() []Command {
	return []Command{
		CommandPlay,
		CommandStill,
		CommandStop,
		CommandFastForward,
		CommandRewind,
		CommandEject,
		CommandPowerOn,
		CommandPowerOff,
		CommandClear,
		CommandClearError,
		CommandSelectTable1,
		CommandSelectTable2,
	}
}

// ParseCommand resolves a CLI name (case-insensitive) to a Command.
func ParseCommand(name string) (Command, error) {
	cmd, ok := commandsByName[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return CommandUnknown, &InvalidCommandError{Name: name}
	}
	return cmd, nil
}

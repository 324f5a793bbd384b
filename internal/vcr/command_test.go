package vcr_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/foone/serial-vcr/internal/vcr"
)

func TestCommandTableIsTotal(t *testing.T) {
	for _, cmd := range vcr.Commands() {
		if !cmd.IsValid() {
			t.Errorf("%s: IsValid() = false, want true", cmd)
		}
		if len(cmd.Bytes()) == 0 {
			t.Errorf("%s: empty byte sequence", cmd)
		}
	}
}

func TestCommandOpcodes(t *testing.T) {
	cases := []struct {
		cmd  vcr.Command
		want []byte
	}{
		{vcr.CommandPlay, []byte{0x3A}},
		{vcr.CommandStill, []byte{0x4F}},
		{vcr.CommandStop, []byte{0x3F}},
		{vcr.CommandFastForward, []byte{0xAB}},
		{vcr.CommandRewind, []byte{0xAC}},
		{vcr.CommandEject, []byte{0xA3}},
		{vcr.CommandPowerOn, []byte{0x7B}},
		{vcr.CommandPowerOff, []byte{0x7C}},
		{vcr.CommandClear, []byte{0x56}},
		{vcr.CommandClearError, []byte{0x41}},
		{vcr.CommandSelectTable1, []byte{0xF6}},
		{vcr.CommandSelectTable2, []byte{0xF7}},
	}

	for _, tc := range cases {
		if got := tc.cmd.Bytes(); !bytes.Equal(got, tc.want) {
			t.Errorf("%s: Bytes() = %#v, want %#v", tc.cmd, got, tc.want)
		}
	}
}

func TestParseCommandRoundTrip(t *testing.T) {
	for _, cmd := range vcr.Commands() {
		parsed, err := vcr.ParseCommand(cmd.String())
		if err != nil {
			t.Fatalf("ParseCommand(%q) error: %v", cmd.String(), err)
		}
		if parsed != cmd {
			t.Errorf("ParseCommand(%q) = %v, want %v", cmd.String(), parsed, cmd)
		}
	}
}

func TestParseCommandIsCaseInsensitive(t *testing.T) {
	cmd, err := vcr.ParseCommand("  PLAY ")
	if err != nil {
		t.Fatalf("ParseCommand error: %v", err)
	}
	if cmd != vcr.CommandPlay {
		t.Errorf("ParseCommand = %v, want %v", cmd, vcr.CommandPlay)
	}
}

func TestParseCommandUnknown(t *testing.T) {
	_, err := vcr.ParseCommand("self-destruct")
	if err == nil {
		t.Fatal("ParseCommand: expected error for unknown name")
	}

	var invalidErr *vcr.InvalidCommandError
	if !errors.As(err, &invalidErr) {
		t.Fatalf("ParseCommand error = %T, want *InvalidCommandError", err)
	}
	if invalidErr.Name != "self-destruct" {
		t.Errorf("InvalidCommandError.Name = %q, want %q", invalidErr.Name, "self-destruct")
	}
}

func TestUnknownCommandIsNotValid(t *testing.T) {
	if vcr.CommandUnknown.IsValid() {
		t.Error("CommandUnknown.IsValid() = true, want false")
	}
	if vcr.Command(999).IsValid() {
		t.Error("Command(999).IsValid() = true, want false")
	}
}

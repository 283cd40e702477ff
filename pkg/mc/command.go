// Package mc implements the command/response marshaling layer for talking to
// a DPAA2 Management Complex (MC) — the out-of-band firmware controller that
// owns all data-path objects. The host never touches object registers
// directly; every operation is encoded into a fixed 64-byte command buffer,
// submitted through a portal, and the firmware's in-place reply decoded back.
//
// Command buffer layout (all fields little-endian):
//
//	Offset  Size  Description
//	------  ----  -----------
//	0       8     Header word (see below)
//	8       56    Parameter area, seven 64-bit words; interpretation is
//	              command-id specific, fixed offsets, no tags or lengths
//
// Header word bit layout (within the little-endian u64):
//
//	[63:48]  command id (includes the 4-bit command version in its low nibble)
//	[47:32]  session token (0 for open / api-version)
//	[31:24]  flags, high byte
//	[23:16]  completion status, written by the firmware
//	[15:8]   flags, low byte
//	[7:0]    reserved
//
// The payload layout is never self-describing: codec and command id must
// match exactly or decoded fields are garbage. This package performs no
// validation and no I/O of its own — it is a pure, re-entrant codec over
// caller-supplied buffers.
package mc

import "fmt"

// CommandID identifies a firmware operation. The low 4 bits carry the
// command version.
type CommandID uint16

// Token is the opaque 16-bit session handle returned by an object's open
// command. Any value is legal wire-format; validity is enforced by the
// firmware, not here.
type Token uint16

// Flags modify command submission behavior. Only the bits covered by
// FlagsMask reach the wire.
type Flags uint32

const (
	// FlagPriority requests high-priority queue placement for the command.
	FlagPriority Flags = 0x00008000
	// FlagIntrDis disables the completion interrupt for the command.
	FlagIntrDis Flags = 0x01000000

	// FlagsMask covers the header bits reserved for flags.
	FlagsMask Flags = 0xFF00FF00
)

// Header word field positions.
const (
	hdrCmdIDShift  = 48
	hdrCmdIDWidth  = 16
	hdrTokenShift  = 32
	hdrTokenWidth  = 16
	hdrStatusShift = 16
	hdrStatusWidth = 8
)

// NumParamWords is the number of 64-bit parameter words in a command buffer.
const NumParamWords = 7

// ParamsSize is the size of the parameter area in bytes.
const ParamsSize = NumParamWords * 8

// Params is the parameter area of a command buffer. Byte 0 is the first byte
// of the first parameter word on the wire.
type Params [ParamsSize]byte

// Command is one 64-byte command buffer. The zero value is ready to use:
// an all-zero parameter area encodes "unset" for every command, matching
// firmware expectations.
type Command struct {
	Header uint64
	Params Params
}

// NewCommand returns a command buffer with an encoded header and zeroed
// parameter area.
func NewCommand(id CommandID, flags Flags, token Token) *Command {
	return &Command{Header: EncodeHeader(id, flags, token)}
}

// EncodeHeader packs a command id, flag set and session token into a header
// word. Purely positional; malformed command ids are the caller's problem.
func EncodeHeader(id CommandID, flags Flags, token Token) uint64 {
	return uint64(id)<<hdrCmdIDShift |
		uint64(flags&FlagsMask) |
		uint64(token)<<hdrTokenShift
}

// CommandID extracts the command id from the header word.
func (c *Command) CommandID() CommandID {
	return CommandID(GetBits(c.Header, hdrCmdIDShift, hdrCmdIDWidth))
}

// Token extracts the session token from the header word. Meaningful on a
// response only for the open operation, where the firmware writes the newly
// assigned token back into the header.
func (c *Command) Token() Token {
	return Token(GetBits(c.Header, hdrTokenShift, hdrTokenWidth))
}

// Status extracts the completion status written by the firmware.
func (c *Command) Status() Status {
	return Status(GetBits(c.Header, hdrStatusShift, hdrStatusWidth))
}

// SetStatus writes a completion status into the header word. Used by portal
// implementations when completing a command.
func (c *Command) SetStatus(s Status) {
	c.Header = SetBits(c.Header, hdrStatusShift, hdrStatusWidth, uint64(s))
}

// Status is the firmware completion status byte. Zero means success; this
// layer surfaces every other value verbatim and never interprets, retries,
// or translates it.
type Status uint8

// Firmware completion codes.
const (
	StatusOK            Status = 0x0
	StatusReady         Status = 0x1
	StatusAuthErr       Status = 0x3
	StatusNoPrivilege   Status = 0x4
	StatusDMAErr        Status = 0x5
	StatusConfigErr     Status = 0x6
	StatusTimeout       Status = 0x7
	StatusNoResource    Status = 0x8
	StatusNoMemory      Status = 0x9
	StatusBusy          Status = 0xA
	StatusUnsupportedOp Status = 0xB
	StatusInvalidState  Status = 0xC
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusReady:
		return "READY"
	case StatusAuthErr:
		return "AUTH_ERR"
	case StatusNoPrivilege:
		return "NO_PRIVILEGE"
	case StatusDMAErr:
		return "DMA_ERR"
	case StatusConfigErr:
		return "CONFIG_ERR"
	case StatusTimeout:
		return "TIMEOUT"
	case StatusNoResource:
		return "NO_RESOURCE"
	case StatusNoMemory:
		return "NO_MEMORY"
	case StatusBusy:
		return "BUSY"
	case StatusUnsupportedOp:
		return "UNSUPPORTED_OP"
	case StatusInvalidState:
		return "INVALID_STATE"
	}
	return fmt.Sprintf("status 0x%02x", uint8(s))
}

// Err returns nil for StatusOK and a *StatusError otherwise.
func (s Status) Err() error {
	if s == StatusOK {
		return nil
	}
	return &StatusError{Status: s}
}

// StatusError wraps a nonzero firmware completion status. The taxonomy of
// these codes is owned by the firmware; callers that care can unwrap it with
// errors.As.
type StatusError struct {
	Status Status
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("mc: command failed: %s", e.Status)
}

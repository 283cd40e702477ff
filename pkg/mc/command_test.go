package mc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeHeader(t *testing.T) {
	h := EncodeHeader(0x8021, FlagPriority|FlagIntrDis, 0xBEEF)

	assert.Equal(t, uint64(0x8021), h>>48)
	assert.Equal(t, uint64(0xBEEF), h>>32&0xFFFF)
	assert.Equal(t, uint64(0x01008000), h&uint64(FlagsMask))
	assert.Zero(t, h>>16&0xFF, "status bits must start clear")
}

func TestFlagsInsideMask(t *testing.T) {
	// Every defined flag must sit inside the masked header bytes, or
	// EncodeHeader would silently drop it on the way to the wire.
	assert.Equal(t, FlagPriority, FlagPriority&FlagsMask)
	assert.Equal(t, FlagIntrDis, FlagIntrDis&FlagsMask)
}

func TestEncodeHeaderMasksFlags(t *testing.T) {
	// Bits outside the flag mask must never leak into the header, or they
	// would corrupt the status and reserved fields.
	h := EncodeHeader(0, 0xFFFFFFFF, 0)
	assert.Equal(t, uint64(FlagsMask), h)
}

func TestCommandHeaderRoundTrip(t *testing.T) {
	cmd := NewCommand(0x0A21, FlagPriority, 0x1234)

	assert.Equal(t, CommandID(0x0A21), cmd.CommandID())
	assert.Equal(t, Token(0x1234), cmd.Token())
	assert.Equal(t, StatusOK, cmd.Status())

	cmd.SetStatus(StatusBusy)
	assert.Equal(t, StatusBusy, cmd.Status())
	assert.Equal(t, CommandID(0x0A21), cmd.CommandID(), "status write must not disturb the id")
	assert.Equal(t, Token(0x1234), cmd.Token(), "status write must not disturb the token")
}

func TestStatusErr(t *testing.T) {
	require.NoError(t, StatusOK.Err())

	err := StatusNoMemory.Err()
	require.Error(t, err)

	var st *StatusError
	require.True(t, errors.As(err, &st))
	assert.Equal(t, StatusNoMemory, st.Status)
	assert.Contains(t, err.Error(), "NO_MEMORY")
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "OK", StatusOK.String())
	assert.Equal(t, "TIMEOUT", StatusTimeout.String())
	assert.Equal(t, "status 0xf0", Status(0xF0).String())
}

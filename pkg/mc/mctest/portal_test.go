package mctest

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/dpsw/pkg/mc"
)

func TestEchoRecordsAndCompletes(t *testing.T) {
	var e Echo
	cmd := mc.NewCommand(0x0021, 0, 7)
	cmd.Params.SetU16(0, 42)

	require.NoError(t, e.Submit(context.Background(), cmd))
	assert.Equal(t, mc.StatusOK, cmd.Status())
	assert.Equal(t, uint16(42), cmd.Params.U16(0), "payload must come back untouched")

	require.Len(t, e.Submitted(), 1)
	assert.Equal(t, mc.CommandID(0x0021), e.Last().CommandID())
}

func TestReplayServesCannedResponse(t *testing.T) {
	r, err := NewReplay(Response{
		Command: 0x8021,
		Token:   0xCAFE,
		Params:  "01000000",
	})
	require.NoError(t, err)

	cmd := mc.NewCommand(0x8021, 0, 0)
	require.NoError(t, r.Submit(context.Background(), cmd))
	assert.Equal(t, mc.Token(0xCAFE), cmd.Token())
	assert.Equal(t, uint32(1), cmd.Params.U32(0))
}

func TestReplayReportsStatus(t *testing.T) {
	r, err := NewReplay(Response{Command: 0x0021, Status: uint8(mc.StatusBusy)})
	require.NoError(t, err)

	cmd := mc.NewCommand(0x0021, 0, 3)
	err = r.Submit(context.Background(), cmd)
	require.Error(t, err)
	assert.Equal(t, mc.StatusBusy, cmd.Status())
}

func TestReplayUnknownCommandIsOK(t *testing.T) {
	r, err := NewReplay()
	require.NoError(t, err)

	cmd := mc.NewCommand(0x0031, 0, 3)
	cmd.Params.SetU64(0, 99)
	require.NoError(t, r.Submit(context.Background(), cmd))
	assert.Equal(t, uint64(99), cmd.Params.U64(0))
}

func TestNewReplayRejectsBadHex(t *testing.T) {
	_, err := NewReplay(Response{Command: 1, Params: "zz"})
	assert.Error(t, err)
}

func TestLoadReplay(t *testing.T) {
	r, err := LoadReplay("testdata/replay.yaml")
	require.NoError(t, err)

	cmd := mc.NewCommand(0xA021, 0, 0)
	require.NoError(t, r.Submit(context.Background(), cmd))
	assert.Equal(t, uint16(8), cmd.Params.U16(0))
	assert.Equal(t, uint16(1), cmd.Params.U16(2))
}

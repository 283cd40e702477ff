package dpsw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/dpsw/pkg/mc/mctest"
)

func TestSetIRQEnable(t *testing.T) {
	sw, portal := openEcho(t)

	require.NoError(t, sw.SetIRQEnable(context.Background(), IRQIndexIf, true))
	last := portal.Last()
	assert.Equal(t, cmdSetIRQEnable, last.CommandID())
	assert.Equal(t, uint8(1), last.Params.U8(0))
	assert.Equal(t, uint8(IRQIndexIf), last.Params.U8(4))

	require.NoError(t, sw.SetIRQEnable(context.Background(), IRQIndexIf, false))
	assert.Equal(t, uint8(0), portal.Last().Params.U8(0))
}

func TestSetIRQMask(t *testing.T) {
	sw, portal := openEcho(t)

	require.NoError(t, sw.SetIRQMask(context.Background(), IRQIndexIf, IRQEventLinkChanged))
	last := portal.Last()
	assert.Equal(t, uint32(IRQEventLinkChanged), last.Params.U32(0))
	assert.Equal(t, uint8(IRQIndexIf), last.Params.U8(4))
}

func TestGetIRQStatus(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdGetIRQStatus),
		Params:  "00000000 01000000",
	})
	require.NoError(t, err)

	sw, err := Open(context.Background(), portal, 0, 0)
	require.NoError(t, err)

	status, err := sw.GetIRQStatus(context.Background(), IRQIndexIf, IRQEventLinkChanged)
	require.NoError(t, err)
	assert.Equal(t, uint32(IRQEventLinkChanged), status)

	// The request seeds the status word with the mask of interest.
	last := portal.Last()
	assert.Equal(t, uint32(IRQEventLinkChanged), last.Params.U32(0))
	assert.Equal(t, uint8(IRQIndexIf), last.Params.U8(4))
}

func TestClearIRQStatus(t *testing.T) {
	sw, portal := openEcho(t)

	require.NoError(t, sw.ClearIRQStatus(context.Background(), IRQIndexIf, IRQEventLinkChanged))
	last := portal.Last()
	assert.Equal(t, cmdClearIRQStatus, last.CommandID())
	assert.Equal(t, uint32(IRQEventLinkChanged), last.Params.U32(0))
	assert.Equal(t, uint8(IRQIndexIf), last.Params.U8(4))
}

package dpsw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/dpsw/pkg/mc"
	"firestige.xyz/dpsw/pkg/mc/mctest"
)

func TestIfEnableDisable(t *testing.T) {
	sw, portal := openEcho(t)
	ctx := context.Background()

	require.NoError(t, sw.IfEnable(ctx, 3))
	assert.Equal(t, cmdIfEnable, portal.Last().CommandID())
	assert.Equal(t, uint16(3), portal.Last().Params.U16(0))

	require.NoError(t, sw.IfDisable(ctx, 3))
	assert.Equal(t, cmdIfDisable, portal.Last().CommandID())
}

func TestIfSetTCIPacking(t *testing.T) {
	sw, portal := openEcho(t)

	require.NoError(t, sw.IfSetTCI(context.Background(), 2, TCI{
		PCP:    7,
		DEI:    1,
		VLANID: 0xABC,
	}))

	last := portal.Last()
	assert.Equal(t, cmdIfSetTCI, last.CommandID())
	assert.Equal(t, uint16(2), last.Params.U16(0))
	// pcp[13:16]=7, dei[12]=1, vlan_id[0:12]=0xABC
	assert.Equal(t, uint16(0xFABC), last.Params.U16(2))
}

func TestIfGetTCI(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdIfGetTCI),
		Params:  "0000 BC0A 01 05",
	})
	require.NoError(t, err)

	sw, err := Open(context.Background(), portal, 0, 0)
	require.NoError(t, err)

	tci, err := sw.IfGetTCI(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, &TCI{VLANID: 0xABC, DEI: 1, PCP: 5}, tci)
	assert.Equal(t, uint16(4), portal.Last().Params.U16(0))
}

func TestIfSetSTP(t *testing.T) {
	sw, portal := openEcho(t)

	require.NoError(t, sw.IfSetSTP(context.Background(), 1, STPCfg{
		VLANID: 100,
		State:  STPStateForwarding,
	}))

	last := portal.Last()
	assert.Equal(t, uint16(1), last.Params.U16(0))
	assert.Equal(t, uint16(100), last.Params.U16(2))
	assert.Equal(t, uint8(STPStateForwarding), last.Params.U8(4))
}

func TestIfSetFloodingBroadcast(t *testing.T) {
	sw, portal := openEcho(t)
	ctx := context.Background()

	require.NoError(t, sw.IfSetFlooding(ctx, 6, true))
	assert.Equal(t, uint8(1), portal.Last().Params.U8(2))

	require.NoError(t, sw.IfSetFlooding(ctx, 6, false))
	assert.Equal(t, uint8(0), portal.Last().Params.U8(2))

	require.NoError(t, sw.IfSetBroadcast(ctx, 6, true))
	assert.Equal(t, cmdIfSetBroadcast, portal.Last().CommandID())
	assert.Equal(t, uint8(1), portal.Last().Params.U8(2))
}

func TestIfGetCounter(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdIfGetCounter),
		Params:  "0000000000000000 39300000 00000000",
	})
	require.NoError(t, err)

	sw, err := Open(context.Background(), portal, 0, 0)
	require.NoError(t, err)

	v, err := sw.IfGetCounter(context.Background(), 2, CntEgrFrame)
	require.NoError(t, err)
	assert.Equal(t, uint64(12345), v)

	last := portal.Last()
	assert.Equal(t, uint16(2), last.Params.U16(0))
	assert.Equal(t, uint8(CntEgrFrame), last.Params.Field8(2, fldCounterTypeShift, fldCounterTypeWidth))
}

func TestIfGetLinkState(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdIfGetLinkState),
		// up bit at byte 4, rate 1000000000 at byte 8, autoneg|pause at 16
		Params: "00000000 01 000000 00CA9A3B 00000000 0500000000000000",
	})
	require.NoError(t, err)

	sw, err := Open(context.Background(), portal, 0, 0)
	require.NoError(t, err)

	state, err := sw.IfGetLinkState(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, &LinkState{
		Up:      true,
		Rate:    1000000000,
		Options: LinkOptAutoneg | LinkOptPause,
	}, state)
}

func TestIfSetLinkCfg(t *testing.T) {
	sw, portal := openEcho(t)

	require.NoError(t, sw.IfSetLinkCfg(context.Background(), 1, LinkCfg{
		Rate:    100000000,
		Options: LinkOptHalfDuplex,
	}))

	last := portal.Last()
	assert.Equal(t, uint16(1), last.Params.U16(0))
	assert.Equal(t, uint32(100000000), last.Params.U32(8))
	assert.Equal(t, uint64(LinkOptHalfDuplex), last.Params.U64(16))
}

func TestIfGetAttributes(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdIfGetAttr),
		// conf: admit_all(1) | enabled(bit5), num_tcs 8, qdid 0x321,
		// options 2, rate 1G
		Params: "21 00 08 00 2103 0000 02000000 00000000 00CA9A3B",
	})
	require.NoError(t, err)

	sw, err := Open(context.Background(), portal, 0, 0)
	require.NoError(t, err)

	attr, err := sw.IfGetAttributes(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, &IfAttr{
		AdmitUntagged: AdmitAll,
		Enabled:       true,
		AcceptAllVLAN: false,
		NumTCs:        8,
		QDID:          0x321,
		Options:       2,
		Rate:          1000000000,
	}, attr)
}

func TestIfSetMaxFrameLength(t *testing.T) {
	sw, portal := openEcho(t)

	require.NoError(t, sw.IfSetMaxFrameLength(context.Background(), 4, 9000))
	assert.Equal(t, uint16(4), portal.Last().Params.U16(0))
	assert.Equal(t, uint16(9000), portal.Last().Params.U16(2))
}

func TestIfMACAddr(t *testing.T) {
	addr := MACAddr{0x02, 0x00, 0xC0, 0xA8, 0x45, 0x30}

	t.Run("set primary", func(t *testing.T) {
		sw, portal := openEcho(t)
		require.NoError(t, sw.IfSetPrimaryMACAddr(context.Background(), 1, addr))

		last := portal.Last()
		assert.Equal(t, cmdIfSetPrimaryMACAddr, last.CommandID())
		assert.Equal(t, uint16(1), last.Params.U16(0))
		assert.Equal(t, []byte{0x30, 0x45, 0xA8, 0xC0, 0x00, 0x02}, last.Params.Bytes(2, 6))
	})

	t.Run("get primary", func(t *testing.T) {
		portal, err := mctest.NewReplay(mctest.Response{
			Command: uint16(cmdIfGetPrimaryMACAddr),
			Params:  "0000 3045A8C00002",
		})
		require.NoError(t, err)

		sw, err := Open(context.Background(), portal, 0, 0)
		require.NoError(t, err)

		got, err := sw.IfGetPrimaryMACAddr(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, addr, got)
	})

	t.Run("get port", func(t *testing.T) {
		sw, portal := openEcho(t)
		got, err := sw.IfGetPortMACAddr(context.Background(), 2)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
		assert.Equal(t, cmdIfGetPortMACAddr, portal.Last().CommandID())
	})
}

func TestIfGetCounterError(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdIfGetCounter),
		Status:  uint8(mc.StatusUnsupportedOp),
	})
	require.NoError(t, err)

	sw, err := Open(context.Background(), portal, 0, 0)
	require.NoError(t, err)

	_, err = sw.IfGetCounter(context.Background(), 0, CntIngFrame)
	var st *mc.StatusError
	require.ErrorAs(t, err, &st)
	assert.Equal(t, mc.StatusUnsupportedOp, st.Status)
}

package dpsw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/dpsw/pkg/mc"
)

func TestVLANAddRemove(t *testing.T) {
	sw, portal := openEcho(t)
	ctx := context.Background()

	require.NoError(t, sw.VLANAdd(ctx, 100, VLANCfg{FDBID: 3}))
	last := portal.Last()
	assert.Equal(t, cmdVLANAdd, last.CommandID())
	assert.Equal(t, uint16(3), last.Params.U16(0))
	assert.Equal(t, uint16(100), last.Params.U16(2))

	require.NoError(t, sw.VLANRemove(ctx, 100))
	last = portal.Last()
	assert.Equal(t, cmdVLANRemove, last.CommandID())
	assert.Equal(t, uint16(100), last.Params.U16(2))
}

func TestVLANMembership(t *testing.T) {
	tests := []struct {
		name string
		call func(*Switch, context.Context, uint16, []uint16) error
		want mc.CommandID
	}{
		{"add if", (*Switch).VLANAddIf, cmdVLANAddIf},
		{"add if untagged", (*Switch).VLANAddIfUntagged, cmdVLANAddIfUntagged},
		{"remove if", (*Switch).VLANRemoveIf, cmdVLANRemoveIf},
		{"remove if untagged", (*Switch).VLANRemoveIfUntagged, cmdVLANRemoveIfUntagged},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, portal := openEcho(t)
			require.NoError(t, tt.call(sw, context.Background(), 42, []uint16{0, 2, 63}))

			last := portal.Last()
			assert.Equal(t, tt.want, last.CommandID())
			assert.Equal(t, uint16(42), last.Params.U16(2))
			assert.Equal(t, uint64(1<<0|1<<2|1<<63), last.Params.U64(8))
		})
	}
}

func TestVLANAddIfDropsOutOfRange(t *testing.T) {
	sw, portal := openEcho(t)

	require.NoError(t, sw.VLANAddIf(context.Background(), 1, []uint16{5, 70, 5}))
	assert.Equal(t, uint64(1<<5), portal.Last().Params.U64(8))
}

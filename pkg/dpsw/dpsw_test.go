package dpsw

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/dpsw/pkg/mc"
	"firestige.xyz/dpsw/pkg/mc/mctest"
)

// openEcho opens a session against a fresh echo portal. The token comes
// back as submitted (zero), which is fine for encode-side assertions.
func openEcho(t *testing.T) (*Switch, *mctest.Echo) {
	t.Helper()
	portal := &mctest.Echo{}
	sw, err := Open(context.Background(), portal, 0, 0)
	require.NoError(t, err)
	return sw, portal
}

func TestOpen(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdOpen),
		Token:   0x0042,
	})
	require.NoError(t, err)

	sw, err := Open(context.Background(), portal, mc.FlagPriority, 7)
	require.NoError(t, err)
	assert.Equal(t, mc.Token(0x0042), sw.Token())

	open := portal.Last()
	assert.Equal(t, cmdOpen, open.CommandID())
	assert.Equal(t, uint32(7), open.Params.U32(0))

	// The assigned token must ride on every subsequent command.
	require.NoError(t, sw.Enable(context.Background()))
	assert.Equal(t, mc.Token(0x0042), portal.Last().Token())
	assert.Equal(t, cmdEnable, portal.Last().CommandID())
}

func TestOpenStatusError(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdOpen),
		Status:  uint8(mc.StatusAuthErr),
	})
	require.NoError(t, err)

	_, err = Open(context.Background(), portal, 0, 7)
	require.Error(t, err)

	var st *mc.StatusError
	require.ErrorAs(t, err, &st)
	assert.Equal(t, mc.StatusAuthErr, st.Status)
}

func TestSessionCommands(t *testing.T) {
	tests := []struct {
		name string
		call func(context.Context, *Switch) error
		want mc.CommandID
	}{
		{"close", func(ctx context.Context, sw *Switch) error { return sw.Close(ctx) }, cmdClose},
		{"enable", func(ctx context.Context, sw *Switch) error { return sw.Enable(ctx) }, cmdEnable},
		{"disable", func(ctx context.Context, sw *Switch) error { return sw.Disable(ctx) }, cmdDisable},
		{"reset", func(ctx context.Context, sw *Switch) error { return sw.Reset(ctx) }, cmdReset},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sw, portal := openEcho(t)
			require.NoError(t, tt.call(context.Background(), sw))
			last := portal.Last()
			assert.Equal(t, tt.want, last.CommandID())
			assert.Equal(t, mc.Params{}, last.Params, "payload must stay empty")
		})
	}
}

func TestGetAttributes(t *testing.T) {
	portal, err := mctest.NewReplay(mctest.Response{
		Command: uint16(cmdGetAttr),
		Params: "1000 01 01 1000 0200 0004 2c01 05000000" +
			"0040 2000 06 01 0000 2100000000000000",
	})
	require.NoError(t, err)

	sw, err := Open(context.Background(), portal, 0, 5)
	require.NoError(t, err)

	attr, err := sw.GetAttributes(context.Background())
	require.NoError(t, err)

	assert.Equal(t, &Attr{
		NumIfs:         16,
		MaxFDBs:        1,
		NumFDBs:        1,
		MaxVLANs:       16,
		NumVLANs:       2,
		MaxFDBEntries:  1024,
		FDBAgingTime:   300,
		ID:             5,
		MemSize:        0x4000,
		MaxFDBMcGroups: 32,
		MaxMetersPerIf: 6,
		ComponentType:  ComponentTypeSVLAN,
		Options:        OptFloodingDis | OptFloodingMeteringDis,
	}, attr)
}

func TestAPIVersion(t *testing.T) {
	portal, err := mctest.LoadReplay("testdata/api_version.yaml")
	require.NoError(t, err)

	major, minor, err := APIVersion(context.Background(), portal, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(8), major)
	assert.Equal(t, uint16(1), minor)

	// Versioning needs no session, so the token field must be zero.
	assert.Equal(t, mc.Token(0), portal.Last().Token())
	assert.Equal(t, cmdGetAPIVersion, portal.Last().CommandID())
}

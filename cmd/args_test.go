package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/dpsw/pkg/dpsw"
)

func TestParseIfList(t *testing.T) {
	ids, err := parseIfList([]string{"1", "2,3", "4"})
	require.NoError(t, err)
	assert.Equal(t, []uint16{1, 2, 3, 4}, ids)

	_, err = parseIfList([]string{"x"})
	assert.Error(t, err)

	_, err = parseIfList(nil)
	assert.Error(t, err)
}

func TestParseMAC(t *testing.T) {
	addr, err := parseMAC("00:11:22:33:44:55")
	require.NoError(t, err)
	assert.Equal(t, dpsw.MACAddr{0x00, 0x11, 0x22, 0x33, 0x44, 0x55}, addr)

	_, err = parseMAC("not-a-mac")
	assert.Error(t, err)

	// EUI-64 addresses are valid to net.ParseMAC but not on this wire.
	_, err = parseMAC("00:11:22:33:44:55:66:77")
	assert.Error(t, err)
}

func TestParseOnOff(t *testing.T) {
	for _, s := range []string{"on", "true", "1"} {
		v, err := parseOnOff(s)
		require.NoError(t, err)
		assert.True(t, v)
	}
	v, err := parseOnOff("off")
	require.NoError(t, err)
	assert.False(t, v)

	_, err = parseOnOff("maybe")
	assert.Error(t, err)
}

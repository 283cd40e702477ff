package dpsw

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIfBitmap(t *testing.T) {
	var buf [MaxIfs / 8]byte
	putIfBitmap(buf[:], []uint16{0, 5, 9, 63})

	assert.Equal(t, byte(0x21), buf[0]) // bits 0 and 5
	assert.Equal(t, byte(0x02), buf[1]) // bit 9
	assert.Equal(t, byte(0x80), buf[7]) // bit 63
}

func TestIfBitmapDropsOutOfRange(t *testing.T) {
	// Ids at or beyond the interface limit never reach the buffer, and
	// duplicates OR together without effect.
	var buf [MaxIfs / 8]byte
	putIfBitmap(buf[:], []uint16{5, 70, 5, MaxIfs})

	assert.Equal(t, byte(1<<5), buf[0])
	for i := 1; i < len(buf); i++ {
		assert.Zero(t, buf[i], "byte %d", i)
	}
}

func TestIfBitmapConsumesAtMostMaxIfs(t *testing.T) {
	ids := make([]uint16, MaxIfs+1)
	for i := range ids {
		ids[i] = 0 // all duplicates of id 0
	}
	ids[MaxIfs] = 1 // beyond the consumption cap, must be ignored

	var buf [MaxIfs / 8]byte
	putIfBitmap(buf[:], ids)
	assert.Equal(t, byte(0x01), buf[0])
}

func TestIfBitmapEmpty(t *testing.T) {
	var buf [MaxIfs / 8]byte
	putIfBitmap(buf[:], nil)
	assert.Equal(t, [MaxIfs / 8]byte{}, buf)
}

package mc

import "encoding/binary"

// Scalar field accessors over the parameter area. Every multi-byte field on
// the MC wire is little-endian; offsets are bytes from the start of the
// parameter area. Reads and writes are bounds-checked by the slice runtime
// only — offsets come from per-command schema tables, not from user input.

// U8 reads the byte at off.
func (p *Params) U8(off int) uint8 { return p[off] }

// SetU8 writes the byte at off.
func (p *Params) SetU8(off int, v uint8) { p[off] = v }

// U16 reads a little-endian 16-bit field at off.
func (p *Params) U16(off int) uint16 { return binary.LittleEndian.Uint16(p[off:]) }

// SetU16 writes a little-endian 16-bit field at off.
func (p *Params) SetU16(off int, v uint16) { binary.LittleEndian.PutUint16(p[off:], v) }

// U32 reads a little-endian 32-bit field at off.
func (p *Params) U32(off int) uint32 { return binary.LittleEndian.Uint32(p[off:]) }

// SetU32 writes a little-endian 32-bit field at off.
func (p *Params) SetU32(off int, v uint32) { binary.LittleEndian.PutUint32(p[off:], v) }

// U64 reads a little-endian 64-bit field at off.
func (p *Params) U64(off int) uint64 { return binary.LittleEndian.Uint64(p[off:]) }

// SetU64 writes a little-endian 64-bit field at off.
func (p *Params) SetU64(off int, v uint64) { binary.LittleEndian.PutUint64(p[off:], v) }

// Bytes returns the n bytes at off. The returned slice aliases the buffer.
func (p *Params) Bytes(off, n int) []byte { return p[off : off+n] }

// SetBits writes an N-bit unsigned value at the given bit offset within a
// host-order integer slot, leaving all other bits untouched. Values wider
// than width are silently truncated — the firmware expects callers to supply
// in-range values, and on-wire parity requires preserving that policy.
func SetBits(slot uint64, shift, width uint, v uint64) uint64 {
	mask := (uint64(1)<<width - 1) << shift
	return (slot &^ mask) | (v << shift & mask)
}

// GetBits reads an N-bit unsigned value at the given bit offset, masking
// exactly the declared width.
func GetBits(slot uint64, shift, width uint) uint64 {
	return slot >> shift & (uint64(1)<<width - 1)
}

// SetField8 is SetBits over a one-byte slot in the parameter area.
func (p *Params) SetField8(off int, shift, width uint, v uint8) {
	p[off] = uint8(SetBits(uint64(p[off]), shift, width, uint64(v)))
}

// Field8 is GetBits over a one-byte slot in the parameter area.
func (p *Params) Field8(off int, shift, width uint) uint8 {
	return uint8(GetBits(uint64(p[off]), shift, width))
}

// SetField16 is SetBits over a little-endian 16-bit slot in the parameter
// area.
func (p *Params) SetField16(off int, shift, width uint, v uint16) {
	p.SetU16(off, uint16(SetBits(uint64(p.U16(off)), shift, width, uint64(v))))
}

// Field16 is GetBits over a little-endian 16-bit slot in the parameter area.
func (p *Params) Field16(off int, shift, width uint) uint16 {
	return uint16(GetBits(uint64(p.U16(off)), shift, width))
}

package dpsw

// putIfBitmap encodes a list of interface ids as a bitmap of little-endian
// 64-bit words at the start of dst: bit id%64 of word id/64, OR-ed in so
// duplicates collapse harmlessly. At most MaxIfs ids are consumed, and any
// id >= MaxIfs is silently dropped — never an error at this layer, matching
// the firmware's own permissive behavior.
func putIfBitmap(dst []byte, ids []uint16) {
	for i := 0; i < len(ids) && i < MaxIfs; i++ {
		id := ids[i]
		if id >= MaxIfs {
			continue
		}
		dst[int(id)/8] |= 1 << (id % 8)
	}
}

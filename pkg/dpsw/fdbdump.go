package dpsw

// FDB dump entries are written by the firmware as a packed array of
// 16-byte records:
//
//	0  [6]u8  mac, wire order
//	6  u8     type flags
//	7  u8     if_info
//	8  [8]u8  interface mask
//
// The array ends at the first record with an all-zero MAC, or at the end
// of the dump memory, whichever comes first.

const fdbDumpEntrySize = 16

// Entry type flags as reported in a dump record.
const (
	fdbEntryTypeDynamic = 1 << 0
	fdbEntryTypeUnicast = 1 << 1
)

// FDBDumpEntry is one record of an FDB table dump.
type FDBDumpEntry struct {
	MACAddr MACAddr
	Type    uint8
	IfInfo  uint8
	IfMask  [8]byte
}

// IsDynamic reports whether the entry was auto-learned rather than
// configured statically.
func (e FDBDumpEntry) IsDynamic() bool { return e.Type&fdbEntryTypeDynamic != 0 }

// IsUnicast reports whether the entry is a unicast entry.
func (e FDBDumpEntry) IsUnicast() bool { return e.Type&fdbEntryTypeUnicast != 0 }

// ParseFDBDump decodes the DMA memory filled by FDBDump into entries.
// Trailing partial records are ignored.
func ParseFDBDump(buf []byte) []FDBDumpEntry {
	var entries []FDBDumpEntry
	for off := 0; off+fdbDumpEntrySize <= len(buf); off += fdbDumpEntrySize {
		rec := buf[off : off+fdbDumpEntrySize]
		mac := getMAC(rec[0:6])
		if mac.IsZero() {
			break
		}
		e := FDBDumpEntry{
			MACAddr: mac,
			Type:    rec[6],
			IfInfo:  rec[7],
		}
		copy(e.IfMask[:], rec[8:16])
		entries = append(entries, e)
	}
	return entries
}

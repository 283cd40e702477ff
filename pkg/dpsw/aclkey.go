package dpsw

import "encoding/binary"

// ACLEntrySize is the size of the DMA buffer PrepareACLEntry fills. The
// firmware reads exactly this much memory per entry.
const ACLEntrySize = 256

const aclMaskBlockOff = 0x40

// Field offsets within a match or mask block.
const (
	aclOffDestMAC    = 0x00
	aclOffTPID       = 0x06
	aclOffSourceMAC  = 0x08
	aclOffVLANID     = 0x0E
	aclOffDestIP     = 0x10
	aclOffSourceIP   = 0x14
	aclOffDestPort   = 0x18
	aclOffSourcePort = 0x1A
	aclOffEtherType  = 0x1C
	aclOffPCPDEI     = 0x1E
	aclOffDSCP       = 0x1F
	aclOffProtocol   = 0x20
	aclOffFrameFlags = 0x21
)

// PrepareACLEntry flattens an ACL key into the layout the firmware expects
// in DMA memory: the match fields at offset 0x00 and the mask fields at
// offset 0x40, multi-byte fields little-endian, MACs in wire order. buf
// must be at least ACLEntrySize bytes; bytes beyond the mask block are
// zeroed.
func PrepareACLEntry(key *ACLKey, buf []byte) {
	for i := range buf[:ACLEntrySize] {
		buf[i] = 0
	}
	putACLFields(buf[0:aclMaskBlockOff], &key.Match)
	putACLFields(buf[aclMaskBlockOff:2*aclMaskBlockOff], &key.Mask)
}

func putACLFields(dst []byte, f *ACLFields) {
	putMAC(dst[aclOffDestMAC:aclOffDestMAC+6], f.L2DestMAC)
	binary.LittleEndian.PutUint16(dst[aclOffTPID:], f.L2TPID)
	putMAC(dst[aclOffSourceMAC:aclOffSourceMAC+6], f.L2SourceMAC)
	binary.LittleEndian.PutUint16(dst[aclOffVLANID:], f.L2VLANID)
	binary.LittleEndian.PutUint32(dst[aclOffDestIP:], f.L3DestIP)
	binary.LittleEndian.PutUint32(dst[aclOffSourceIP:], f.L3SourceIP)
	binary.LittleEndian.PutUint16(dst[aclOffDestPort:], f.L4DestPort)
	binary.LittleEndian.PutUint16(dst[aclOffSourcePort:], f.L4SourcePort)
	binary.LittleEndian.PutUint16(dst[aclOffEtherType:], f.L2EtherType)
	dst[aclOffPCPDEI] = f.L2PCPDEI
	dst[aclOffDSCP] = f.L3DSCP
	dst[aclOffProtocol] = f.L3Protocol
	dst[aclOffFrameFlags] = f.FrameFlags
}

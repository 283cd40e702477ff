package dpsw

import (
	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
)

// ACLKeyFromPacket builds an exact-match ACL key from a decoded packet,
// typically one captured from the traffic that should be matched. Every
// header field present in the packet becomes a match value with a fully
// set mask; absent layers are left as don't-care.
func ACLKeyFromPacket(pkt gopacket.Packet) ACLKey {
	var key ACLKey

	if l := pkt.Layer(layers.LayerTypeEthernet); l != nil {
		eth := l.(*layers.Ethernet)
		copy(key.Match.L2DestMAC[:], eth.DstMAC)
		copy(key.Match.L2SourceMAC[:], eth.SrcMAC)
		key.Match.L2EtherType = uint16(eth.EthernetType)
		key.Mask.L2DestMAC = MACAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
		key.Mask.L2SourceMAC = MACAddr{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
		key.Mask.L2EtherType = 0xFFFF
	}

	if l := pkt.Layer(layers.LayerTypeDot1Q); l != nil {
		vlan := l.(*layers.Dot1Q)
		key.Match.L2VLANID = vlan.VLANIdentifier
		key.Match.L2PCPDEI = vlan.Priority << 1
		if vlan.DropEligible {
			key.Match.L2PCPDEI |= 1
		}
		key.Match.L2TPID = uint16(layers.EthernetTypeDot1Q)
		key.Match.L2EtherType = uint16(vlan.Type)
		key.Mask.L2VLANID = 0x0FFF
		key.Mask.L2PCPDEI = 0x0F
		key.Mask.L2TPID = 0xFFFF
		key.Mask.L2EtherType = 0xFFFF
	}

	if l := pkt.Layer(layers.LayerTypeIPv4); l != nil {
		ip := l.(*layers.IPv4)
		key.Match.L3SourceIP = ipv4ToUint32(ip.SrcIP)
		key.Match.L3DestIP = ipv4ToUint32(ip.DstIP)
		key.Match.L3Protocol = uint8(ip.Protocol)
		key.Match.L3DSCP = ip.TOS >> 2
		key.Mask.L3SourceIP = 0xFFFFFFFF
		key.Mask.L3DestIP = 0xFFFFFFFF
		key.Mask.L3Protocol = 0xFF
		key.Mask.L3DSCP = 0x3F
	}

	switch {
	case pkt.Layer(layers.LayerTypeTCP) != nil:
		tcp := pkt.Layer(layers.LayerTypeTCP).(*layers.TCP)
		key.Match.L4SourcePort = uint16(tcp.SrcPort)
		key.Match.L4DestPort = uint16(tcp.DstPort)
		key.Mask.L4SourcePort = 0xFFFF
		key.Mask.L4DestPort = 0xFFFF
	case pkt.Layer(layers.LayerTypeUDP) != nil:
		udp := pkt.Layer(layers.LayerTypeUDP).(*layers.UDP)
		key.Match.L4SourcePort = uint16(udp.SrcPort)
		key.Match.L4DestPort = uint16(udp.DstPort)
		key.Mask.L4SourcePort = 0xFFFF
		key.Mask.L4DestPort = 0xFFFF
	}

	return key
}

func ipv4ToUint32(ip []byte) uint32 {
	if len(ip) == 16 {
		ip = ip[12:16]
	}
	if len(ip) != 4 {
		return 0
	}
	return uint32(ip[0])<<24 | uint32(ip[1])<<16 | uint32(ip[2])<<8 | uint32(ip[3])
}

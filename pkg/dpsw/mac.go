package dpsw

import "fmt"

// MACAddr is a hardware address in host representation: index 0 is the most
// significant octet, as printed. The MC wire carries the bytes reversed;
// putMAC and getMAC convert, and composing the two is the identity.
type MACAddr [6]byte

func (a MACAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		a[0], a[1], a[2], a[3], a[4], a[5])
}

// IsZero reports whether every octet is zero. A zero MAC terminates an FDB
// dump.
func (a MACAddr) IsZero() bool {
	return a == MACAddr{}
}

// putMAC writes a host-order MAC into dst in wire order (dst[i] = a[5-i]).
func putMAC(dst []byte, a MACAddr) {
	for i := 0; i < 6; i++ {
		dst[i] = a[5-i]
	}
}

// getMAC reads a wire-order MAC from src back into host order.
func getMAC(src []byte) (a MACAddr) {
	for i := 0; i < 6; i++ {
		a[5-i] = src[i]
	}
	return a
}

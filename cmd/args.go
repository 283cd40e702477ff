package cmd

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"firestige.xyz/dpsw/pkg/dpsw"
)

func parseIfID(s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, fmt.Errorf("bad interface id %q: %w", s, err)
	}
	return uint16(v), nil
}

func parseU16(name, s string) (uint16, error) {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return 0, fmt.Errorf("bad %s %q: %w", name, s, err)
	}
	return uint16(v), nil
}

// parseIfList parses interface ids from the remaining positional arguments,
// accepting both space- and comma-separated lists.
func parseIfList(args []string) ([]uint16, error) {
	var ids []uint16
	for _, arg := range args {
		for _, part := range strings.Split(arg, ",") {
			if part == "" {
				continue
			}
			id, err := parseIfID(part)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no interface ids given")
	}
	return ids, nil
}

func parseMAC(s string) (dpsw.MACAddr, error) {
	hw, err := net.ParseMAC(s)
	if err != nil {
		return dpsw.MACAddr{}, err
	}
	if len(hw) != 6 {
		return dpsw.MACAddr{}, fmt.Errorf("%q is not a 48-bit MAC", s)
	}
	var addr dpsw.MACAddr
	copy(addr[:], hw)
	return addr, nil
}

func parseOnOff(s string) (bool, error) {
	switch s {
	case "on", "true", "1":
		return true, nil
	case "off", "false", "0":
		return false, nil
	}
	return false, fmt.Errorf("expected on or off, got %q", s)
}

package dpsw

import (
	"context"

	"firestige.xyz/dpsw/pkg/mc"
)

// VLAN membership commands share a payload shape: the VLAN id as a
// little-endian u16 at byte 2 and the interface-set bitmap starting at the
// second parameter word (byte 8).

// VLANAdd adds a VLAN to the switch. The 12-bit VLAN id follows IEEE 802.1Q
// semantics; adding a duplicate id is refused by the firmware, not here.
func (sw *Switch) VLANAdd(ctx context.Context, vlanID uint16, cfg VLANCfg) error {
	cmd := mc.NewCommand(cmdVLANAdd, sw.flags, sw.token)
	cmd.Params.SetU16(0, cfg.FDBID)
	cmd.Params.SetU16(2, vlanID)
	return sw.portal.Submit(ctx, cmd)
}

// VLANAddIf adds a set of interfaces to the egress list of an existing
// VLAN. Only interfaces not yet belonging to the VLAN may be listed,
// otherwise the firmware rejects the entire command; the call can be
// repeated with deltas.
func (sw *Switch) VLANAddIf(ctx context.Context, vlanID uint16, ifs []uint16) error {
	return sw.vlanManageIf(ctx, cmdVLANAddIf, vlanID, ifs)
}

// VLANAddIfUntagged marks a set of interfaces of the VLAN to transmit
// untagged. The interfaces must already belong to the VLAN; by default all
// interfaces transmit tagged.
func (sw *Switch) VLANAddIfUntagged(ctx context.Context, vlanID uint16, ifs []uint16) error {
	return sw.vlanManageIf(ctx, cmdVLANAddIfUntagged, vlanID, ifs)
}

// VLANRemoveIf removes interfaces from an existing VLAN. The interfaces
// must belong to the VLAN or the firmware ignores the whole command.
func (sw *Switch) VLANRemoveIf(ctx context.Context, vlanID uint16, ifs []uint16) error {
	return sw.vlanManageIf(ctx, cmdVLANRemoveIf, vlanID, ifs)
}

// VLANRemoveIfUntagged converts interfaces of the VLAN from transmitting
// untagged back to tagged.
func (sw *Switch) VLANRemoveIfUntagged(ctx context.Context, vlanID uint16, ifs []uint16) error {
	return sw.vlanManageIf(ctx, cmdVLANRemoveIfUntagged, vlanID, ifs)
}

// VLANRemove removes an entire VLAN.
func (sw *Switch) VLANRemove(ctx context.Context, vlanID uint16) error {
	cmd := mc.NewCommand(cmdVLANRemove, sw.flags, sw.token)
	cmd.Params.SetU16(2, vlanID)
	return sw.portal.Submit(ctx, cmd)
}

func (sw *Switch) vlanManageIf(ctx context.Context, id mc.CommandID, vlanID uint16, ifs []uint16) error {
	cmd := mc.NewCommand(id, sw.flags, sw.token)
	cmd.Params.SetU16(2, vlanID)
	putIfBitmap(cmd.Params.Bytes(8, MaxIfs/8), ifs)
	return sw.portal.Submit(ctx, cmd)
}

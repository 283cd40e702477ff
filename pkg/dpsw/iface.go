package dpsw

import (
	"context"

	"firestige.xyz/dpsw/pkg/mc"
)

// Per-interface operations. Every command in this file carries the
// interface id as a little-endian u16 in the first payload bytes.

// IfEnable enables an interface.
func (sw *Switch) IfEnable(ctx context.Context, ifID uint16) error {
	cmd := mc.NewCommand(cmdIfEnable, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	return sw.portal.Submit(ctx, cmd)
}

// IfDisable disables an interface.
func (sw *Switch) IfDisable(ctx context.Context, ifID uint16) error {
	cmd := mc.NewCommand(cmdIfDisable, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	return sw.portal.Submit(ctx, cmd)
}

// IfGetAttributes obtains the attributes of an interface.
//
// Response layout:
//
//	0   u8   conf: admit_untagged[0:4] enabled[5] accept_all_vlan[6]
//	2   u8   num_tcs
//	4   u16  qdid
//	8   u32  options
//	16  u32  rate
func (sw *Switch) IfGetAttributes(ctx context.Context, ifID uint16) (*IfAttr, error) {
	cmd := mc.NewCommand(cmdIfGetAttr, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return nil, err
	}

	p := &cmd.Params
	return &IfAttr{
		AdmitUntagged: AcceptedFrames(p.Field8(0, fldAdmitUntaggedShift, fldAdmitUntaggedWidth)),
		Enabled:       p.Field8(0, fldEnabledShift, fldEnabledWidth) != 0,
		AcceptAllVLAN: p.Field8(0, fldAcceptAllVLANShift, fldAcceptAllVLANWidth) != 0,
		NumTCs:        p.U8(2),
		QDID:          p.U16(4),
		Options:       p.U32(8),
		Rate:          p.U32(16),
	}, nil
}

// IfSetLinkCfg sets the link rate and options of an interface.
func (sw *Switch) IfSetLinkCfg(ctx context.Context, ifID uint16, cfg LinkCfg) error {
	cmd := mc.NewCommand(cmdIfSetLinkCfg, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	cmd.Params.SetU32(8, cfg.Rate)
	cmd.Params.SetU64(16, uint64(cfg.Options))
	return sw.portal.Submit(ctx, cmd)
}

// IfGetLinkState returns the link state of an interface.
func (sw *Switch) IfGetLinkState(ctx context.Context, ifID uint16) (*LinkState, error) {
	cmd := mc.NewCommand(cmdIfGetLinkState, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return nil, err
	}

	p := &cmd.Params
	return &LinkState{
		Up:      p.Field8(4, fldLinkUpShift, fldLinkUpWidth) != 0,
		Rate:    p.U32(8),
		Options: LinkOpt(p.U64(16)),
	}, nil
}

// IfSetFlooding enables or disables flooding for an interface.
func (sw *Switch) IfSetFlooding(ctx context.Context, ifID uint16, en bool) error {
	cmd := mc.NewCommand(cmdIfSetFlooding, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	if en {
		cmd.Params.SetField8(2, fldEnableShift, fldEnableWidth, 1)
	}
	return sw.portal.Submit(ctx, cmd)
}

// IfSetBroadcast enables or disables broadcast for an interface.
func (sw *Switch) IfSetBroadcast(ctx context.Context, ifID uint16, en bool) error {
	cmd := mc.NewCommand(cmdIfSetBroadcast, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	if en {
		cmd.Params.SetField8(2, fldEnableShift, fldEnableWidth, 1)
	}
	return sw.portal.Submit(ctx, cmd)
}

// IfSetTCI sets the default VLAN Tag Control Information of an interface.
// The three fields pack into one little-endian u16:
// vlan_id[0:12] dei[12] pcp[13:16].
func (sw *Switch) IfSetTCI(ctx context.Context, ifID uint16, cfg TCI) error {
	cmd := mc.NewCommand(cmdIfSetTCI, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	cmd.Params.SetField16(2, fldVLANIDShift, fldVLANIDWidth, cfg.VLANID)
	cmd.Params.SetField16(2, fldDEIShift, fldDEIWidth, uint16(cfg.DEI))
	cmd.Params.SetField16(2, fldPCPShift, fldPCPWidth, uint16(cfg.PCP))
	return sw.portal.Submit(ctx, cmd)
}

// IfGetTCI returns the default VLAN Tag Control Information of an
// interface. The response carries the fields unpacked: vlan_id as a u16 at
// byte 2, dei and pcp as single bytes.
func (sw *Switch) IfGetTCI(ctx context.Context, ifID uint16) (*TCI, error) {
	cmd := mc.NewCommand(cmdIfGetTCI, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return nil, err
	}

	p := &cmd.Params
	return &TCI{
		VLANID: p.U16(2),
		DEI:    p.U8(4),
		PCP:    p.U8(5),
	}, nil
}

// IfSetSTP sets the Spanning Tree Protocol state of an interface for one
// VLAN. Supported states: blocking, listening, learning, forwarding and
// disabled.
func (sw *Switch) IfSetSTP(ctx context.Context, ifID uint16, cfg STPCfg) error {
	cmd := mc.NewCommand(cmdIfSetSTP, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	cmd.Params.SetU16(2, cfg.VLANID)
	cmd.Params.SetField8(4, fldSTPStateShift, fldSTPStateWidth, uint8(cfg.State))
	return sw.portal.Submit(ctx, cmd)
}

// IfGetCounter reads one counter of an interface.
func (sw *Switch) IfGetCounter(ctx context.Context, ifID uint16, typ Counter) (uint64, error) {
	cmd := mc.NewCommand(cmdIfGetCounter, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	cmd.Params.SetField8(2, fldCounterTypeShift, fldCounterTypeWidth, uint8(typ))

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return 0, err
	}

	return cmd.Params.U64(8), nil
}

// IfSetMaxFrameLength sets the maximum receive frame length of an
// interface.
func (sw *Switch) IfSetMaxFrameLength(ctx context.Context, ifID uint16, frameLength uint16) error {
	cmd := mc.NewCommand(cmdIfSetMaxFrameLength, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	cmd.Params.SetU16(2, frameLength)
	return sw.portal.Submit(ctx, cmd)
}

// IfGetPortMACAddr returns the MAC address of the physical port backing an
// interface, or the zero address if it has none.
func (sw *Switch) IfGetPortMACAddr(ctx context.Context, ifID uint16) (MACAddr, error) {
	return sw.ifGetMAC(ctx, cmdIfGetPortMACAddr, ifID)
}

// IfGetPrimaryMACAddr returns the primary MAC address of an interface.
func (sw *Switch) IfGetPrimaryMACAddr(ctx context.Context, ifID uint16) (MACAddr, error) {
	return sw.ifGetMAC(ctx, cmdIfGetPrimaryMACAddr, ifID)
}

// IfSetPrimaryMACAddr sets the primary MAC address of an interface.
func (sw *Switch) IfSetPrimaryMACAddr(ctx context.Context, ifID uint16, addr MACAddr) error {
	cmd := mc.NewCommand(cmdIfSetPrimaryMACAddr, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)
	putMAC(cmd.Params.Bytes(2, 6), addr)
	return sw.portal.Submit(ctx, cmd)
}

func (sw *Switch) ifGetMAC(ctx context.Context, id mc.CommandID, ifID uint16) (MACAddr, error) {
	cmd := mc.NewCommand(id, sw.flags, sw.token)
	cmd.Params.SetU16(0, ifID)

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return MACAddr{}, err
	}

	return getMAC(cmd.Params.Bytes(2, 6)), nil
}

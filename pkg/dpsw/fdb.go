package dpsw

import (
	"context"

	"firestige.xyz/dpsw/pkg/mc"
)

// FDBAddUnicast adds a unicast entry to the MAC lookup table.
//
// Payload layout:
//
//	0  u16    fdb_id
//	2  [6]u8  mac, wire order
//	8  u16    if_egress
//	11 u8     entry_type[0:4]
func (sw *Switch) FDBAddUnicast(ctx context.Context, fdbID uint16, cfg FDBUnicastCfg) error {
	return sw.fdbUnicastOp(ctx, cmdFDBAddUnicast, fdbID, cfg)
}

// FDBRemoveUnicast removes a unicast entry from the MAC lookup table.
func (sw *Switch) FDBRemoveUnicast(ctx context.Context, fdbID uint16, cfg FDBUnicastCfg) error {
	return sw.fdbUnicastOp(ctx, cmdFDBRemoveUnicast, fdbID, cfg)
}

func (sw *Switch) fdbUnicastOp(ctx context.Context, id mc.CommandID, fdbID uint16, cfg FDBUnicastCfg) error {
	cmd := mc.NewCommand(id, sw.flags, sw.token)
	cmd.Params.SetU16(0, fdbID)
	putMAC(cmd.Params.Bytes(2, 6), cfg.MACAddr)
	cmd.Params.SetU16(8, cfg.IfEgress)
	cmd.Params.SetField8(11, fldEntryTypeShift, fldEntryTypeWidth, uint8(cfg.Type))
	return sw.portal.Submit(ctx, cmd)
}

// FDBAddMulticast adds a set of egress interfaces to a multicast group,
// creating the group if it does not exist. Only interfaces not yet in the
// group may be listed; the call can be repeated with deltas.
//
// Payload layout:
//
//	0  u16    fdb_id
//	2  u16    num_ifs
//	4  u8     entry_type[0:4]
//	8  [6]u8  mac, wire order
//	16 [4]u64 interface-set bitmap
func (sw *Switch) FDBAddMulticast(ctx context.Context, fdbID uint16, cfg FDBMulticastCfg) error {
	return sw.fdbMulticastOp(ctx, cmdFDBAddMulticast, fdbID, cfg)
}

// FDBRemoveMulticast removes interfaces from an existing multicast group.
// All listed interfaces must be in the group; when the last interface
// leaves, the group is deleted.
func (sw *Switch) FDBRemoveMulticast(ctx context.Context, fdbID uint16, cfg FDBMulticastCfg) error {
	return sw.fdbMulticastOp(ctx, cmdFDBRemoveMulticast, fdbID, cfg)
}

func (sw *Switch) fdbMulticastOp(ctx context.Context, id mc.CommandID, fdbID uint16, cfg FDBMulticastCfg) error {
	cmd := mc.NewCommand(id, sw.flags, sw.token)
	cmd.Params.SetU16(0, fdbID)
	cmd.Params.SetU16(2, uint16(len(cfg.Ifs)))
	cmd.Params.SetField8(4, fldEntryTypeShift, fldEntryTypeWidth, uint8(cfg.Type))
	putMAC(cmd.Params.Bytes(8, 6), cfg.MACAddr)
	putIfBitmap(cmd.Params.Bytes(16, MaxIfs/8), cfg.Ifs)
	return sw.portal.Submit(ctx, cmd)
}

// FDBSetLearningMode sets the auto-learning mode of an FDB table.
func (sw *Switch) FDBSetLearningMode(ctx context.Context, fdbID uint16, mode LearningMode) error {
	cmd := mc.NewCommand(cmdFDBSetLearningMode, sw.flags, sw.token)
	cmd.Params.SetU16(0, fdbID)
	cmd.Params.SetField8(2, fldLearningModeShift, fldLearningModeWidth, uint8(mode))
	return sw.portal.Submit(ctx, cmd)
}

// FDBDump asks the firmware to write the FDB table as an array of dump
// entries into caller-provided DMA memory and returns the number of entries
// written. The memory at iovaAddr must be zeroed before the call; if the
// table does not fit, the firmware stops when the memory fills up. Parse
// the memory afterwards with ParseFDBDump.
func (sw *Switch) FDBDump(ctx context.Context, fdbID uint16, iovaAddr uint64, iovaSize uint32) (uint16, error) {
	cmd := mc.NewCommand(cmdFDBDump, sw.flags, sw.token)
	cmd.Params.SetU16(0, fdbID)
	cmd.Params.SetU64(8, iovaAddr)
	cmd.Params.SetU32(16, iovaSize)

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return 0, err
	}

	return cmd.Params.U16(0), nil
}

package dpsw

import (
	"context"

	"firestige.xyz/dpsw/pkg/mc"
)

// ACLAdd creates an ACL table sized for cfg.MaxEntries and returns the
// firmware-assigned table id.
func (sw *Switch) ACLAdd(ctx context.Context, cfg ACLCfg) (uint16, error) {
	cmd := mc.NewCommand(cmdACLAdd, sw.flags, sw.token)
	cmd.Params.SetU16(2, cfg.MaxEntries)

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return 0, err
	}

	return cmd.Params.U16(0), nil
}

// ACLRemove deletes an ACL table.
func (sw *Switch) ACLRemove(ctx context.Context, aclID uint16) error {
	cmd := mc.NewCommand(cmdACLRemove, sw.flags, sw.token)
	cmd.Params.SetU16(0, aclID)
	return sw.portal.Submit(ctx, cmd)
}

// ACLAddIf binds interfaces to an ACL table so their ingress traffic is
// matched against it.
func (sw *Switch) ACLAddIf(ctx context.Context, aclID uint16, ifs []uint16) error {
	return sw.aclManageIf(ctx, cmdACLAddIf, aclID, ifs)
}

// ACLRemoveIf unbinds interfaces from an ACL table.
func (sw *Switch) ACLRemoveIf(ctx context.Context, aclID uint16, ifs []uint16) error {
	return sw.aclManageIf(ctx, cmdACLRemoveIf, aclID, ifs)
}

func (sw *Switch) aclManageIf(ctx context.Context, id mc.CommandID, aclID uint16, ifs []uint16) error {
	cmd := mc.NewCommand(id, sw.flags, sw.token)
	cmd.Params.SetU16(0, aclID)
	cmd.Params.SetU16(2, uint16(len(ifs)))
	putIfBitmap(cmd.Params.Bytes(8, MaxIfs/8), ifs)
	return sw.portal.Submit(ctx, cmd)
}

// ACLAddEntry installs a rule into an ACL table. The match key must be
// flattened with PrepareACLEntry into DMA memory beforehand; cfg.KeyIOVA
// points at that memory and must stay valid until the call returns.
// Lower precedence values win when several rules match.
//
// Payload layout:
//
//	0  u16  acl_id
//	2  u16  result_if_id
//	4  s32  precedence
//	8  u8   result_action[0:4]
//	16 u64  key_iova
func (sw *Switch) ACLAddEntry(ctx context.Context, aclID uint16, cfg ACLEntryCfg) error {
	cmd := mc.NewCommand(cmdACLAddEntry, sw.flags, sw.token)
	cmd.Params.SetU16(0, aclID)
	cmd.Params.SetU16(2, cfg.Result.IfID)
	cmd.Params.SetU32(4, uint32(cfg.Precedence))
	cmd.Params.SetField8(8, fldResultActionShift, fldResultActionWidth, uint8(cfg.Result.Action))
	cmd.Params.SetU64(16, cfg.KeyIOVA)
	return sw.portal.Submit(ctx, cmd)
}

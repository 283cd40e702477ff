package dpsw

import (
	"context"

	"firestige.xyz/dpsw/pkg/mc"
)

// IRQ commands share a payload shape: a 32-bit value in the first word and
// the interrupt index at byte 4. Each interrupt can have up to 32 causes;
// the enable switch gates the whole index, the mask gates causes
// individually.

// SetIRQEnable sets the overall interrupt state for an interrupt index:
// enabled when en is true, else no cause raises the interrupt.
func (sw *Switch) SetIRQEnable(ctx context.Context, irqIndex uint8, en bool) error {
	cmd := mc.NewCommand(cmdSetIRQEnable, sw.flags, sw.token)
	if en {
		cmd.Params.SetField8(0, fldEnableShift, fldEnableWidth, 1)
	}
	cmd.Params.SetU8(4, irqIndex)
	return sw.portal.Submit(ctx, cmd)
}

// SetIRQMask sets the per-cause event mask for an interrupt index: bit set
// means the event is considered for asserting the IRQ.
func (sw *Switch) SetIRQMask(ctx context.Context, irqIndex uint8, mask uint32) error {
	cmd := mc.NewCommand(cmdSetIRQMask, sw.flags, sw.token)
	cmd.Params.SetU32(0, mask)
	cmd.Params.SetU8(4, irqIndex)
	return sw.portal.Submit(ctx, cmd)
}

// GetIRQStatus returns the pending interrupt causes for an interrupt index,
// one bit per cause. status seeds the request word with the causes of
// interest; pass 0 to read all causes.
func (sw *Switch) GetIRQStatus(ctx context.Context, irqIndex uint8, status uint32) (uint32, error) {
	cmd := mc.NewCommand(cmdGetIRQStatus, sw.flags, sw.token)
	cmd.Params.SetU32(0, status)
	cmd.Params.SetU8(4, irqIndex)

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return 0, err
	}

	return cmd.Params.U32(4), nil
}

// ClearIRQStatus clears pending interrupt causes, write-one-to-clear: set
// bits are cleared, zero bits left unchanged.
func (sw *Switch) ClearIRQStatus(ctx context.Context, irqIndex uint8, status uint32) error {
	cmd := mc.NewCommand(cmdClearIRQStatus, sw.flags, sw.token)
	cmd.Params.SetU32(0, status)
	cmd.Params.SetU8(4, irqIndex)
	return sw.portal.Submit(ctx, cmd)
}

// Package dpsw is the control API for a DPAA2 data-path L2 switch (DPSW)
// object managed by the Management Complex firmware. It encodes each
// operation into an MC command buffer, submits it through an mc.Portal, and
// decodes the firmware's in-place reply.
//
// A Switch is a control session: Open exchanges the object id for a session
// token, every subsequent operation carries that token, Close invalidates
// it. The package is a pure synchronous codec — no shared mutable state, no
// retries, no timeouts. Concurrency is delegated entirely to the portal;
// using one Switch from multiple goroutines is only as defined as the
// firmware's ordering semantics for its token.
//
// By design, several encode paths lose data silently instead of failing:
// interface ids beyond MaxIfs are dropped from bitmaps and over-wide
// bit-field values are truncated. This mirrors the firmware's own permissive
// behavior and preserving it is part of the wire contract.
package dpsw

import (
	"context"

	"firestige.xyz/dpsw/pkg/mc"
)

// Switch is an open control session for a DPSW object.
type Switch struct {
	portal mc.Portal
	flags  mc.Flags
	token  mc.Token
}

// Open opens a control session for an already created DPSW object and
// returns a Switch carrying the authentication token the firmware assigned.
// The token binds the session to this object id on this portal; all methods
// of the returned Switch submit with it.
func Open(ctx context.Context, portal mc.Portal, flags mc.Flags, dpswID int32) (*Switch, error) {
	cmd := mc.NewCommand(cmdOpen, flags, 0)
	cmd.Params.SetU32(0, uint32(dpswID))

	if err := portal.Submit(ctx, cmd); err != nil {
		return nil, err
	}

	return &Switch{
		portal: portal,
		flags:  flags,
		token:  cmd.Token(),
	}, nil
}

// Token returns the session token. Exposed for logging and diagnostics; the
// value is opaque.
func (sw *Switch) Token() mc.Token {
	return sw.token
}

// Close closes the control session. No further operations are allowed on
// the object without opening a new session.
func (sw *Switch) Close(ctx context.Context) error {
	cmd := mc.NewCommand(cmdClose, sw.flags, sw.token)
	return sw.portal.Submit(ctx, cmd)
}

// Enable enables the switch.
func (sw *Switch) Enable(ctx context.Context) error {
	cmd := mc.NewCommand(cmdEnable, sw.flags, sw.token)
	return sw.portal.Submit(ctx, cmd)
}

// Disable disables the switch.
func (sw *Switch) Disable(ctx context.Context) error {
	cmd := mc.NewCommand(cmdDisable, sw.flags, sw.token)
	return sw.portal.Submit(ctx, cmd)
}

// Reset returns the switch to its initial state.
func (sw *Switch) Reset(ctx context.Context) error {
	cmd := mc.NewCommand(cmdReset, sw.flags, sw.token)
	return sw.portal.Submit(ctx, cmd)
}

// GetAttributes retrieves the switch attributes.
//
// Response layout:
//
//	0   u16  num_ifs        8   u16  max_fdb_entries   16  u16  mem_size
//	2   u8   max_fdbs       10  u16  fdb_aging_time    18  u16  max_fdb_mc_groups
//	3   u8   num_fdbs       12  u32  dpsw_id           20  u8   max_meters_per_if
//	4   u16  max_vlans                                 21  u8   component_type[0:4]
//	6   u16  num_vlans                                 24  u64  options
func (sw *Switch) GetAttributes(ctx context.Context) (*Attr, error) {
	cmd := mc.NewCommand(cmdGetAttr, sw.flags, sw.token)

	if err := sw.portal.Submit(ctx, cmd); err != nil {
		return nil, err
	}

	p := &cmd.Params
	return &Attr{
		NumIfs:         p.U16(0),
		MaxFDBs:        p.U8(2),
		NumFDBs:        p.U8(3),
		MaxVLANs:       p.U16(4),
		NumVLANs:       p.U16(6),
		MaxFDBEntries:  p.U16(8),
		FDBAgingTime:   p.U16(10),
		ID:             int32(p.U32(12)),
		MemSize:        p.U16(16),
		MaxFDBMcGroups: p.U16(18),
		MaxMetersPerIf: p.U8(20),
		ComponentType:  ComponentType(p.Field8(21, fldComponentTypeShift, fldComponentTypeWidth)),
		Options:        Option(p.U64(24)),
	}, nil
}

// APIVersion reports the data-path switch API version implemented by the
// firmware behind the portal. It needs no session.
func APIVersion(ctx context.Context, portal mc.Portal, flags mc.Flags) (major, minor uint16, err error) {
	cmd := mc.NewCommand(cmdGetAPIVersion, flags, 0)

	if err := portal.Submit(ctx, cmd); err != nil {
		return 0, 0, err
	}

	return cmd.Params.U16(0), cmd.Params.U16(2), nil
}

package dpsw

// General limits of the DPSW object.
const (
	// MaxIfs is the maximum number of switch interfaces.
	MaxIfs = 64
	// MaxPriorities is the maximum number of traffic class priorities.
	MaxPriorities = 8
)

// Option is the DPSW feature enable/disable bitmap.
type Option uint64

// DPSW options.
const (
	OptFloodingDis         Option = 0x0000000000000001
	OptMulticastDis        Option = 0x0000000000000004
	OptCtrlIfDis           Option = 0x0000000000000010
	OptFloodingMeteringDis Option = 0x0000000000000020
	OptMeteringEn          Option = 0x0000000000000040
)

// ComponentType is the bridge component type of the switch.
type ComponentType uint8

const (
	// ComponentTypeCVLAN is a C-VLAN component of an enterprise VLAN bridge
	// or of a Provider Bridge, processing C-tagged frames.
	ComponentTypeCVLAN ComponentType = 0
	// ComponentTypeSVLAN is an S-VLAN component of a Provider Bridge.
	ComponentTypeSVLAN ComponentType = 1
)

// Attr describes a DPSW object as reported by GetAttributes.
type Attr struct {
	// ID is the DPSW object id.
	ID int32
	// Options is the feature bitmap the object was created with.
	Options Option
	// MaxVLANs is the maximum number of VLANs.
	MaxVLANs uint16
	// MaxMetersPerIf is the number of meters per interface.
	MaxMetersPerIf uint8
	// MaxFDBs is the maximum number of FDBs.
	MaxFDBs uint8
	// MaxFDBEntries is the capacity of the default FDB table; 0 means the
	// default of 1024 entries.
	MaxFDBEntries uint16
	// FDBAgingTime is the default FDB aging time in seconds; 0 means the
	// default of 300.
	FDBAgingTime uint16
	// MaxFDBMcGroups is the number of multicast groups per FDB table; 0
	// means the default of 32.
	MaxFDBMcGroups uint16
	// MemSize is the frame storage memory size.
	MemSize uint16
	// NumIfs is the number of interfaces.
	NumIfs uint16
	// NumVLANs is the current number of VLANs.
	NumVLANs uint16
	// NumFDBs is the current number of FDBs.
	NumFDBs uint8
	// ComponentType is the bridge component type.
	ComponentType ComponentType
}

// IRQ indices of the DPSW object.
const (
	IRQIndexIf   = 0x0000
	IRQIndexL2Sw = 0x0001
)

// IRQEventLinkChanged indicates that an interface link state changed.
const IRQEventLinkChanged = 0x0001

// LinkOpt is the interface link options bitmap.
type LinkOpt uint64

// Link options.
const (
	LinkOptAutoneg    LinkOpt = 0x0000000000000001
	LinkOptHalfDuplex LinkOpt = 0x0000000000000002
	LinkOptPause      LinkOpt = 0x0000000000000004
	LinkOptAsymPause  LinkOpt = 0x0000000000000008
)

// LinkCfg is an interface link configuration.
type LinkCfg struct {
	// Rate is the link rate.
	Rate uint32
	// Options is a mask of LinkOpt values.
	Options LinkOpt
}

// LinkState is an interface link state snapshot. Up covers two down cases:
// link down and disconnected.
type LinkState struct {
	Rate    uint32
	Options LinkOpt
	Up      bool
}

// TCI is the 802.1Q Tag Control Information of an interface: a 3-bit
// priority code point, a 1-bit drop eligible indicator and a 12-bit VLAN id.
// The values 0x000 and 0xFFF are reserved by convention but not rejected
// here; out-of-range PCP/DEI bits are truncated on encode, never rejected.
type TCI struct {
	PCP    uint8
	DEI    uint8
	VLANID uint16
}

// STPState is a Spanning Tree Protocol interface state.
type STPState uint8

// STP states. Disabled and Blocking share an encoding.
const (
	STPStateDisabled   STPState = 0
	STPStateListening  STPState = 1
	STPStateLearning   STPState = 2
	STPStateForwarding STPState = 3
	STPStateBlocking   STPState = 0
)

// STPCfg is a per-VLAN STP state assignment for an interface.
type STPCfg struct {
	VLANID uint16
	State  STPState
}

// AcceptedFrames selects which frame types an interface admits.
type AcceptedFrames uint8

const (
	// AdmitAll accepts VLAN tagged, untagged and priority tagged frames.
	AdmitAll AcceptedFrames = 1
	// AdmitOnlyVLANTagged discards untagged and priority-tagged frames.
	AdmitOnlyVLANTagged AcceptedFrames = 3
)

// IfAttr describes a switch interface as reported by IfGetAttributes.
type IfAttr struct {
	// NumTCs is the number of traffic classes.
	NumTCs uint8
	// Rate is the transmit rate in bits per second.
	Rate uint32
	// Options is the interface configuration bitmap.
	Options uint32
	// Enabled indicates whether the interface is enabled.
	Enabled bool
	// AcceptAllVLAN indicates whether frames for VLANs that do not include
	// this interface are accepted.
	AcceptAllVLAN bool
	// AdmitUntagged reports the accepted-frames policy.
	AdmitUntagged AcceptedFrames
	// QDID is the control frames transmit qdid.
	QDID uint16
}

// Counter identifies a per-interface counter.
type Counter uint8

// Counter types.
const (
	CntIngFrame           Counter = 0x0
	CntIngByte            Counter = 0x1
	CntIngFltrFrame       Counter = 0x2
	CntIngFrameDiscard    Counter = 0x3
	CntIngMcastFrame      Counter = 0x4
	CntIngMcastByte       Counter = 0x5
	CntIngBcastFrame      Counter = 0x6
	CntIngBcastBytes      Counter = 0x7
	CntEgrFrame           Counter = 0x8
	CntEgrByte            Counter = 0x9
	CntEgrFrameDiscard    Counter = 0xa
	CntEgrSTPFrameDiscard Counter = 0xb
	// CntIngNoBufferDiscard is inherited from the demux object's counter
	// space and keeps the id assigned there.
	CntIngNoBufferDiscard Counter = 0xc
)

// VLANCfg is the configuration for adding a VLAN. The FDB id may be shared
// across VLANs; shared learning is obtained by adding multiple VLAN ids with
// the same FDB id.
type VLANCfg struct {
	FDBID uint16
}

// FDBEntryType selects a static or dynamic forwarding database entry.
type FDBEntryType uint8

const (
	FDBEntryStatic  FDBEntryType = 0
	FDBEntryDynamic FDBEntryType = 1
)

// FDBUnicastCfg is a unicast FDB entry.
type FDBUnicastCfg struct {
	Type     FDBEntryType
	MACAddr  MACAddr
	IfEgress uint16
}

// FDBMulticastCfg is a multicast FDB group entry. Ifs lists the egress
// interfaces; ids >= MaxIfs are silently dropped from the encoded bitmap.
type FDBMulticastCfg struct {
	Type    FDBEntryType
	MACAddr MACAddr
	Ifs     []uint16
}

// LearningMode is the FDB auto-learning mode.
type LearningMode uint8

// Learning modes.
const (
	LearningModeDis       LearningMode = 0
	LearningModeHW        LearningMode = 1
	LearningModeNonSecure LearningMode = 2
	LearningModeSecure    LearningMode = 3
)

// ACLCfg is the configuration for creating an ACL.
type ACLCfg struct {
	MaxEntries uint16
}

// ACLFields are the frame header fields an ACL entry can match. As a match
// it carries values, as a mask it carries per-bit validity (1 = compare,
// 0 = don't care).
type ACLFields struct {
	L2DestMAC    MACAddr
	L2SourceMAC  MACAddr
	L2TPID       uint16
	L2PCPDEI     uint8
	L2VLANID     uint16
	L2EtherType  uint16
	L3DSCP       uint8
	L3Protocol   uint8
	L3SourceIP   uint32
	L3DestIP     uint32
	L4SourcePort uint16
	L4DestPort   uint16
	FrameFlags   uint8
}

// FrameFlagMatchOnFDBMiss matches frames whose destination lookup missed
// the FDB.
const FrameFlagMatchOnFDBMiss = 0x80

// ACLKey is a match/mask pair of ACL fields.
type ACLKey struct {
	Match ACLFields
	Mask  ACLFields
}

// ACLAction is what happens on an ACL entry hit.
type ACLAction uint8

// ACL actions.
const (
	ACLActionDrop ACLAction = iota
	ACLActionRedirect
	ACLActionAccept
	ACLActionRedirectToCtrlIf
	ACLActionLookup
)

// ACLLookupTable selects the table consulted by ACLActionLookup.
type ACLLookupTable uint8

const (
	ACLLookupTblBcast ACLLookupTable = iota
	ACLLookupTblMcast
	ACLLookupTblUcast
)

// ACLResult is the action attached to an ACL entry. IfID is only meaningful
// for redirect actions, LookupTable only for lookup.
type ACLResult struct {
	Action      ACLAction
	IfID        uint16
	LookupTable ACLLookupTable
}

// ACLEntryCfg references a flattened ACL key by I/O virtual address and
// attaches a result and precedence to it. Precedence 0 is lowest and cannot
// change during the lifetime of a policy.
type ACLEntryCfg struct {
	KeyIOVA    uint64
	Result     ACLResult
	Precedence int32
}

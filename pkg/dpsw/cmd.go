package dpsw

import "firestige.xyz/dpsw/pkg/mc"

// Command id layout: (base << 4) | command version. The version nibble lets
// the firmware dispatch revised payload layouts per command; every command
// here is at base version 1.
const cmdVer = 1

// Command ids.
const (
	cmdClose         mc.CommandID = 0x800<<4 | cmdVer
	cmdOpen          mc.CommandID = 0x802<<4 | cmdVer
	cmdGetAPIVersion mc.CommandID = 0xa02<<4 | cmdVer

	cmdEnable  mc.CommandID = 0x002<<4 | cmdVer
	cmdDisable mc.CommandID = 0x003<<4 | cmdVer
	cmdGetAttr mc.CommandID = 0x004<<4 | cmdVer
	cmdReset   mc.CommandID = 0x005<<4 | cmdVer

	cmdSetIRQEnable   mc.CommandID = 0x012<<4 | cmdVer
	cmdSetIRQMask     mc.CommandID = 0x014<<4 | cmdVer
	cmdGetIRQStatus   mc.CommandID = 0x016<<4 | cmdVer
	cmdClearIRQStatus mc.CommandID = 0x017<<4 | cmdVer

	cmdIfSetTCI            mc.CommandID = 0x030<<4 | cmdVer
	cmdIfSetSTP            mc.CommandID = 0x031<<4 | cmdVer
	cmdIfGetCounter        mc.CommandID = 0x034<<4 | cmdVer
	cmdIfEnable            mc.CommandID = 0x03D<<4 | cmdVer
	cmdIfDisable           mc.CommandID = 0x03E<<4 | cmdVer
	cmdIfGetAttr           mc.CommandID = 0x042<<4 | cmdVer
	cmdIfSetMaxFrameLength mc.CommandID = 0x044<<4 | cmdVer
	cmdIfGetLinkState      mc.CommandID = 0x046<<4 | cmdVer
	cmdIfSetFlooding       mc.CommandID = 0x047<<4 | cmdVer
	cmdIfSetBroadcast      mc.CommandID = 0x048<<4 | cmdVer
	cmdIfGetTCI            mc.CommandID = 0x04A<<4 | cmdVer
	cmdIfSetLinkCfg        mc.CommandID = 0x04C<<4 | cmdVer

	cmdVLANAdd              mc.CommandID = 0x060<<4 | cmdVer
	cmdVLANAddIf            mc.CommandID = 0x061<<4 | cmdVer
	cmdVLANAddIfUntagged    mc.CommandID = 0x062<<4 | cmdVer
	cmdVLANRemoveIf         mc.CommandID = 0x064<<4 | cmdVer
	cmdVLANRemoveIfUntagged mc.CommandID = 0x065<<4 | cmdVer
	cmdVLANRemove           mc.CommandID = 0x066<<4 | cmdVer

	cmdFDBAddUnicast      mc.CommandID = 0x084<<4 | cmdVer
	cmdFDBRemoveUnicast   mc.CommandID = 0x085<<4 | cmdVer
	cmdFDBAddMulticast    mc.CommandID = 0x086<<4 | cmdVer
	cmdFDBRemoveMulticast mc.CommandID = 0x087<<4 | cmdVer
	cmdFDBSetLearningMode mc.CommandID = 0x088<<4 | cmdVer
	cmdFDBDump            mc.CommandID = 0x08A<<4 | cmdVer

	cmdACLAdd      mc.CommandID = 0x090<<4 | cmdVer
	cmdACLRemove   mc.CommandID = 0x091<<4 | cmdVer
	cmdACLAddEntry mc.CommandID = 0x092<<4 | cmdVer
	cmdACLAddIf    mc.CommandID = 0x094<<4 | cmdVer
	cmdACLRemoveIf mc.CommandID = 0x095<<4 | cmdVer

	cmdIfGetPortMACAddr    mc.CommandID = 0x0A7<<4 | cmdVer
	cmdIfGetPrimaryMACAddr mc.CommandID = 0x0A8<<4 | cmdVer
	cmdIfSetPrimaryMACAddr mc.CommandID = 0x0A9<<4 | cmdVer
)

// Packed sub-byte field positions within their payload slots.
const (
	fldEnableShift = 0
	fldEnableWidth = 1

	fldComponentTypeShift = 0
	fldComponentTypeWidth = 4

	fldVLANIDShift = 0
	fldVLANIDWidth = 12
	fldDEIShift    = 12
	fldDEIWidth    = 1
	fldPCPShift    = 13
	fldPCPWidth    = 3

	fldSTPStateShift = 0
	fldSTPStateWidth = 4

	fldCounterTypeShift = 0
	fldCounterTypeWidth = 5

	fldAdmitUntaggedShift = 0
	fldAdmitUntaggedWidth = 4
	fldEnabledShift       = 5
	fldEnabledWidth       = 1
	fldAcceptAllVLANShift = 6
	fldAcceptAllVLANWidth = 1

	fldLinkUpShift = 0
	fldLinkUpWidth = 1

	fldEntryTypeShift = 0
	fldEntryTypeWidth = 4

	fldLearningModeShift = 0
	fldLearningModeWidth = 4

	fldResultActionShift = 0
	fldResultActionWidth = 4
)

package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/dpsw/pkg/dpsw"
)

var ifCmd = &cobra.Command{
	Use:   "if",
	Short: "Per-interface operations",
}

var (
	ifLinkRate    uint32
	ifLinkAutoneg bool
	ifLinkHalf    bool
	ifLinkPause   bool

	ifTCIPCP  uint8
	ifTCIDEI  uint8
	ifTCIVLAN uint16

	ifSTPVLAN  uint16
	ifSTPState string
)

func init() {
	ifSetLinkCmd.Flags().Uint32Var(&ifLinkRate, "rate", 0, "link rate")
	ifSetLinkCmd.Flags().BoolVar(&ifLinkAutoneg, "autoneg", false, "enable auto-negotiation")
	ifSetLinkCmd.Flags().BoolVar(&ifLinkHalf, "half-duplex", false, "half duplex")
	ifSetLinkCmd.Flags().BoolVar(&ifLinkPause, "pause", false, "pause frames")

	ifSetTCICmd.Flags().Uint8Var(&ifTCIPCP, "pcp", 0, "priority code point")
	ifSetTCICmd.Flags().Uint8Var(&ifTCIDEI, "dei", 0, "drop eligible indicator")
	ifSetTCICmd.Flags().Uint16Var(&ifTCIVLAN, "vlan", 0, "VLAN id")

	ifSTPCmd.Flags().Uint16Var(&ifSTPVLAN, "vlan", 0, "VLAN id")
	ifSTPCmd.Flags().StringVar(&ifSTPState, "state", "forwarding",
		"STP state: disabled|listening|learning|forwarding|blocking")

	ifCmd.AddCommand(ifEnableCmd, ifDisableCmd, ifAttrCmd,
		ifLinkCmd, ifSetLinkCmd, ifTCICmd, ifSetTCICmd, ifSTPCmd,
		ifCounterCmd, ifFloodCmd, ifBcastCmd, ifMaxFrameCmd,
		ifMACCmd, ifSetMACCmd, ifPortMACCmd)
}

var ifEnableCmd = &cobra.Command{
	Use:   "enable <if-id>",
	Short: "Enable an interface",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if enable", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfEnable(ctx, ifID)
		}); err != nil {
			exitWithError("if enable", err)
		}
	},
}

var ifDisableCmd = &cobra.Command{
	Use:   "disable <if-id>",
	Short: "Disable an interface",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if disable", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfDisable(ctx, ifID)
		}); err != nil {
			exitWithError("if disable", err)
		}
	},
}

var ifAttrCmd = &cobra.Command{
	Use:   "attr <if-id>",
	Short: "Show interface attributes",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if attr", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			attr, err := sw.IfGetAttributes(ctx, ifID)
			if err != nil {
				return err
			}
			fmt.Printf("if %d: enabled=%v tcs=%d qdid=0x%x rate=%d accept_all_vlan=%v admit=%d options=0x%x\n",
				ifID, attr.Enabled, attr.NumTCs, attr.QDID, attr.Rate,
				attr.AcceptAllVLAN, attr.AdmitUntagged, attr.Options)
			return nil
		}); err != nil {
			exitWithError("if attr", err)
		}
	},
}

var ifLinkCmd = &cobra.Command{
	Use:   "link <if-id>",
	Short: "Show interface link state",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if link", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			state, err := sw.IfGetLinkState(ctx, ifID)
			if err != nil {
				return err
			}
			up := "down"
			if state.Up {
				up = "up"
			}
			fmt.Printf("if %d: link %s rate=%d options=0x%x\n", ifID, up, state.Rate, uint64(state.Options))
			return nil
		}); err != nil {
			exitWithError("if link", err)
		}
	},
}

var ifSetLinkCmd = &cobra.Command{
	Use:   "set-link <if-id>",
	Short: "Configure interface link rate and options",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if set-link", err)
		}
		var opts dpsw.LinkOpt
		if ifLinkAutoneg {
			opts |= dpsw.LinkOptAutoneg
		}
		if ifLinkHalf {
			opts |= dpsw.LinkOptHalfDuplex
		}
		if ifLinkPause {
			opts |= dpsw.LinkOptPause
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfSetLinkCfg(ctx, ifID, dpsw.LinkCfg{Rate: ifLinkRate, Options: opts})
		}); err != nil {
			exitWithError("if set-link", err)
		}
	},
}

var ifTCICmd = &cobra.Command{
	Use:   "tci <if-id>",
	Short: "Show the default VLAN tag of an interface",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if tci", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			tci, err := sw.IfGetTCI(ctx, ifID)
			if err != nil {
				return err
			}
			fmt.Printf("if %d: vlan=%d pcp=%d dei=%d\n", ifID, tci.VLANID, tci.PCP, tci.DEI)
			return nil
		}); err != nil {
			exitWithError("if tci", err)
		}
	},
}

var ifSetTCICmd = &cobra.Command{
	Use:   "set-tci <if-id>",
	Short: "Set the default VLAN tag of an interface",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if set-tci", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfSetTCI(ctx, ifID, dpsw.TCI{PCP: ifTCIPCP, DEI: ifTCIDEI, VLANID: ifTCIVLAN})
		}); err != nil {
			exitWithError("if set-tci", err)
		}
	},
}

var stpStates = map[string]dpsw.STPState{
	"disabled":   dpsw.STPStateDisabled,
	"listening":  dpsw.STPStateListening,
	"learning":   dpsw.STPStateLearning,
	"forwarding": dpsw.STPStateForwarding,
	"blocking":   dpsw.STPStateBlocking,
}

var ifSTPCmd = &cobra.Command{
	Use:   "stp <if-id>",
	Short: "Set the STP state of an interface for a VLAN",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if stp", err)
		}
		state, ok := stpStates[ifSTPState]
		if !ok {
			exitWithError("if stp", fmt.Errorf("unknown state %q", ifSTPState))
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfSetSTP(ctx, ifID, dpsw.STPCfg{VLANID: ifSTPVLAN, State: state})
		}); err != nil {
			exitWithError("if stp", err)
		}
	},
}

var counterNames = map[string]dpsw.Counter{
	"ing-frame":          dpsw.CntIngFrame,
	"ing-byte":           dpsw.CntIngByte,
	"ing-filtered":       dpsw.CntIngFltrFrame,
	"ing-discard":        dpsw.CntIngFrameDiscard,
	"ing-mcast-frame":    dpsw.CntIngMcastFrame,
	"ing-mcast-byte":     dpsw.CntIngMcastByte,
	"ing-bcast-frame":    dpsw.CntIngBcastFrame,
	"ing-bcast-byte":     dpsw.CntIngBcastBytes,
	"egr-frame":          dpsw.CntEgrFrame,
	"egr-byte":           dpsw.CntEgrByte,
	"egr-discard":        dpsw.CntEgrFrameDiscard,
	"egr-stp-discard":    dpsw.CntEgrSTPFrameDiscard,
	"ing-nobuff-discard": dpsw.CntIngNoBufferDiscard,
}

var ifCounterCmd = &cobra.Command{
	Use:   "counter <if-id> <name>",
	Short: "Read one interface counter",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if counter", err)
		}
		typ, ok := counterNames[args[1]]
		if !ok {
			exitWithError("if counter", fmt.Errorf("unknown counter %q", args[1]))
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			v, err := sw.IfGetCounter(ctx, ifID, typ)
			if err != nil {
				return err
			}
			fmt.Printf("if %d: %s = %d\n", ifID, args[1], v)
			return nil
		}); err != nil {
			exitWithError("if counter", err)
		}
	},
}

var ifFloodCmd = &cobra.Command{
	Use:   "flood <if-id> on|off",
	Short: "Enable or disable flooding for an interface",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if flood", err)
		}
		en, err := parseOnOff(args[1])
		if err != nil {
			exitWithError("if flood", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfSetFlooding(ctx, ifID, en)
		}); err != nil {
			exitWithError("if flood", err)
		}
	},
}

var ifBcastCmd = &cobra.Command{
	Use:   "bcast <if-id> on|off",
	Short: "Enable or disable broadcast for an interface",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if bcast", err)
		}
		en, err := parseOnOff(args[1])
		if err != nil {
			exitWithError("if bcast", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfSetBroadcast(ctx, ifID, en)
		}); err != nil {
			exitWithError("if bcast", err)
		}
	},
}

var ifMaxFrameCmd = &cobra.Command{
	Use:   "max-frame <if-id> <length>",
	Short: "Set the maximum receive frame length of an interface",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if max-frame", err)
		}
		length, err := parseU16("frame length", args[1])
		if err != nil {
			exitWithError("if max-frame", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfSetMaxFrameLength(ctx, ifID, length)
		}); err != nil {
			exitWithError("if max-frame", err)
		}
	},
}

var ifMACCmd = &cobra.Command{
	Use:   "mac <if-id>",
	Short: "Show the primary MAC address of an interface",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if mac", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			addr, err := sw.IfGetPrimaryMACAddr(ctx, ifID)
			if err != nil {
				return err
			}
			fmt.Printf("if %d: %s\n", ifID, addr)
			return nil
		}); err != nil {
			exitWithError("if mac", err)
		}
	},
}

var ifSetMACCmd = &cobra.Command{
	Use:   "set-mac <if-id> <mac>",
	Short: "Set the primary MAC address of an interface",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if set-mac", err)
		}
		addr, err := parseMAC(args[1])
		if err != nil {
			exitWithError("if set-mac", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.IfSetPrimaryMACAddr(ctx, ifID, addr)
		}); err != nil {
			exitWithError("if set-mac", err)
		}
	},
}

var ifPortMACCmd = &cobra.Command{
	Use:   "port-mac <if-id>",
	Short: "Show the MAC address of the physical port behind an interface",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifID, err := parseIfID(args[0])
		if err != nil {
			exitWithError("if port-mac", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			addr, err := sw.IfGetPortMACAddr(ctx, ifID)
			if err != nil {
				return err
			}
			fmt.Printf("if %d: %s\n", ifID, addr)
			return nil
		}); err != nil {
			exitWithError("if port-mac", err)
		}
	},
}

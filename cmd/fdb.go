package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"firestige.xyz/dpsw/pkg/dpsw"
)

var fdbCmd = &cobra.Command{
	Use:   "fdb",
	Short: "Forwarding database operations",
}

var (
	fdbID      uint16
	fdbDynamic bool
)

func init() {
	for _, c := range []*cobra.Command{
		fdbAddUniCmd, fdbRemoveUniCmd, fdbAddMultiCmd, fdbRemoveMultiCmd, fdbLearningCmd,
	} {
		c.Flags().Uint16Var(&fdbID, "fdb", 0, "FDB table id")
	}
	fdbAddUniCmd.Flags().BoolVar(&fdbDynamic, "dynamic", false, "mark the entry dynamic")
	fdbAddMultiCmd.Flags().BoolVar(&fdbDynamic, "dynamic", false, "mark the entry dynamic")

	fdbCmd.AddCommand(fdbAddUniCmd, fdbRemoveUniCmd,
		fdbAddMultiCmd, fdbRemoveMultiCmd, fdbLearningCmd, fdbParseDumpCmd)
}

func fdbEntryType() dpsw.FDBEntryType {
	if fdbDynamic {
		return dpsw.FDBEntryDynamic
	}
	return dpsw.FDBEntryStatic
}

var fdbAddUniCmd = &cobra.Command{
	Use:   "add-unicast <mac> <egress-if>",
	Short: "Add a unicast FDB entry",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := parseMAC(args[0])
		if err != nil {
			exitWithError("fdb add-unicast", err)
		}
		egress, err := parseIfID(args[1])
		if err != nil {
			exitWithError("fdb add-unicast", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.FDBAddUnicast(ctx, fdbID, dpsw.FDBUnicastCfg{
				Type:     fdbEntryType(),
				MACAddr:  addr,
				IfEgress: egress,
			})
		}); err != nil {
			exitWithError("fdb add-unicast", err)
		}
	},
}

var fdbRemoveUniCmd = &cobra.Command{
	Use:   "remove-unicast <mac> <egress-if>",
	Short: "Remove a unicast FDB entry",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := parseMAC(args[0])
		if err != nil {
			exitWithError("fdb remove-unicast", err)
		}
		egress, err := parseIfID(args[1])
		if err != nil {
			exitWithError("fdb remove-unicast", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.FDBRemoveUnicast(ctx, fdbID, dpsw.FDBUnicastCfg{
				Type:     fdbEntryType(),
				MACAddr:  addr,
				IfEgress: egress,
			})
		}); err != nil {
			exitWithError("fdb remove-unicast", err)
		}
	},
}

var fdbAddMultiCmd = &cobra.Command{
	Use:   "add-multicast <mac> <if-id>...",
	Short: "Add interfaces to a multicast group",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := parseMAC(args[0])
		if err != nil {
			exitWithError("fdb add-multicast", err)
		}
		ifs, err := parseIfList(args[1:])
		if err != nil {
			exitWithError("fdb add-multicast", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.FDBAddMulticast(ctx, fdbID, dpsw.FDBMulticastCfg{
				Type:    fdbEntryType(),
				MACAddr: addr,
				Ifs:     ifs,
			})
		}); err != nil {
			exitWithError("fdb add-multicast", err)
		}
	},
}

var fdbRemoveMultiCmd = &cobra.Command{
	Use:   "remove-multicast <mac> <if-id>...",
	Short: "Remove interfaces from a multicast group",
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		addr, err := parseMAC(args[0])
		if err != nil {
			exitWithError("fdb remove-multicast", err)
		}
		ifs, err := parseIfList(args[1:])
		if err != nil {
			exitWithError("fdb remove-multicast", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.FDBRemoveMulticast(ctx, fdbID, dpsw.FDBMulticastCfg{
				Type:    fdbEntryType(),
				MACAddr: addr,
				Ifs:     ifs,
			})
		}); err != nil {
			exitWithError("fdb remove-multicast", err)
		}
	},
}

var learningModes = map[string]dpsw.LearningMode{
	"disable":    dpsw.LearningModeDis,
	"hw":         dpsw.LearningModeHW,
	"non-secure": dpsw.LearningModeNonSecure,
	"secure":     dpsw.LearningModeSecure,
}

var fdbLearningCmd = &cobra.Command{
	Use:   "learning <mode>",
	Short: "Set the FDB learning mode: disable|hw|non-secure|secure",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		mode, ok := learningModes[args[0]]
		if !ok {
			exitWithError("fdb learning", fmt.Errorf("unknown mode %q", args[0]))
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.FDBSetLearningMode(ctx, fdbID, mode)
		}); err != nil {
			exitWithError("fdb learning", err)
		}
	},
}

var fdbParseDumpCmd = &cobra.Command{
	Use:   "parse-dump <file>",
	Short: "Decode a binary FDB dump captured from DMA memory",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		buf, err := os.ReadFile(args[0])
		if err != nil {
			exitWithError("fdb parse-dump", err)
		}
		entries := dpsw.ParseFDBDump(buf)
		for _, e := range entries {
			kind := "static"
			if e.IsDynamic() {
				kind = "dynamic"
			}
			cast := "multicast"
			if e.IsUnicast() {
				cast = "unicast"
			}
			fmt.Printf("%s  %-7s %-9s if_info=%d if_mask=%x\n",
				e.MACAddr, kind, cast, e.IfInfo, e.IfMask)
		}
		fmt.Printf("%d entries\n", len(entries))
	},
}

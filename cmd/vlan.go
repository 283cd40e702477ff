package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"firestige.xyz/dpsw/pkg/dpsw"
)

var vlanCmd = &cobra.Command{
	Use:   "vlan",
	Short: "VLAN table operations",
}

var vlanFDBID uint16

func init() {
	vlanAddCmd.Flags().Uint16Var(&vlanFDBID, "fdb", 0, "FDB id the VLAN forwards with")

	vlanCmd.AddCommand(vlanAddCmd, vlanRemoveCmd,
		vlanAddIfCmd, vlanAddUntaggedCmd, vlanRemoveIfCmd, vlanRemoveUntaggedCmd)
}

var vlanAddCmd = &cobra.Command{
	Use:   "add <vlan-id>",
	Short: "Add a VLAN",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		vlanID, err := parseU16("vlan id", args[0])
		if err != nil {
			exitWithError("vlan add", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.VLANAdd(ctx, vlanID, dpsw.VLANCfg{FDBID: vlanFDBID})
		}); err != nil {
			exitWithError("vlan add", err)
		}
	},
}

var vlanRemoveCmd = &cobra.Command{
	Use:   "remove <vlan-id>",
	Short: "Remove a VLAN",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		vlanID, err := parseU16("vlan id", args[0])
		if err != nil {
			exitWithError("vlan remove", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.VLANRemove(ctx, vlanID)
		}); err != nil {
			exitWithError("vlan remove", err)
		}
	},
}

// vlanMembership builds the four membership subcommands, which differ only
// in the session method they call.
func vlanMembership(use, short string, op func(*dpsw.Switch, context.Context, uint16, []uint16) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <vlan-id> <if-id>...",
		Short: short,
		Args:  cobra.MinimumNArgs(2),
		Run: func(cmd *cobra.Command, args []string) {
			vlanID, err := parseU16("vlan id", args[0])
			if err != nil {
				exitWithError("vlan "+use, err)
			}
			ifs, err := parseIfList(args[1:])
			if err != nil {
				exitWithError("vlan "+use, err)
			}
			if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
				return op(sw, ctx, vlanID, ifs)
			}); err != nil {
				exitWithError("vlan "+use, err)
			}
		},
	}
}

var (
	vlanAddIfCmd = vlanMembership("add-if", "Add interfaces to a VLAN",
		func(sw *dpsw.Switch, ctx context.Context, id uint16, ifs []uint16) error {
			return sw.VLANAddIf(ctx, id, ifs)
		})
	vlanAddUntaggedCmd = vlanMembership("add-untagged", "Transmit untagged on interfaces of a VLAN",
		func(sw *dpsw.Switch, ctx context.Context, id uint16, ifs []uint16) error {
			return sw.VLANAddIfUntagged(ctx, id, ifs)
		})
	vlanRemoveIfCmd = vlanMembership("remove-if", "Remove interfaces from a VLAN",
		func(sw *dpsw.Switch, ctx context.Context, id uint16, ifs []uint16) error {
			return sw.VLANRemoveIf(ctx, id, ifs)
		})
	vlanRemoveUntaggedCmd = vlanMembership("remove-untagged", "Transmit tagged again on interfaces of a VLAN",
		func(sw *dpsw.Switch, ctx context.Context, id uint16, ifs []uint16) error {
			return sw.VLANRemoveIfUntagged(ctx, id, ifs)
		})
)

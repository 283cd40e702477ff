package cmd

import (
	"context"
	"encoding/hex"
	"fmt"
	"os"

	"github.com/google/gopacket"
	"github.com/google/gopacket/layers"
	"github.com/google/gopacket/pcapgo"
	"github.com/spf13/cobra"

	"firestige.xyz/dpsw/pkg/dpsw"
)

var aclCmd = &cobra.Command{
	Use:   "acl",
	Short: "ACL table operations",
}

var (
	aclID         uint16
	aclMaxEntries uint16

	aclKeyIOVA    uint64
	aclPrecedence int32
	aclAction     string
	aclResultIf   uint16

	aclKeyOut string
)

func init() {
	aclAddCmd.Flags().Uint16Var(&aclMaxEntries, "max-entries", 16, "table capacity")

	for _, c := range []*cobra.Command{aclRemoveCmd, aclAddIfCmd, aclRemoveIfCmd, aclAddEntryCmd} {
		c.Flags().Uint16Var(&aclID, "acl", 0, "ACL table id")
	}

	aclAddEntryCmd.Flags().Uint64Var(&aclKeyIOVA, "key-iova", 0, "I/O virtual address of the flattened key")
	aclAddEntryCmd.Flags().Int32Var(&aclPrecedence, "precedence", 0, "rule precedence, lower wins")
	aclAddEntryCmd.Flags().StringVar(&aclAction, "action", "drop", "hit action: drop|redirect|accept|redirect-ctrl")
	aclAddEntryCmd.Flags().Uint16Var(&aclResultIf, "result-if", 0, "redirect target interface")

	aclKeyCmd.Flags().StringVarP(&aclKeyOut, "out", "o", "", "write the flattened key to a file")

	aclCmd.AddCommand(aclAddCmd, aclRemoveCmd, aclAddIfCmd, aclRemoveIfCmd, aclAddEntryCmd, aclKeyCmd)
}

var aclAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Create an ACL table",
	Run: func(cmd *cobra.Command, args []string) {
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			id, err := sw.ACLAdd(ctx, dpsw.ACLCfg{MaxEntries: aclMaxEntries})
			if err != nil {
				return err
			}
			fmt.Printf("acl %d\n", id)
			return nil
		}); err != nil {
			exitWithError("acl add", err)
		}
	},
}

var aclRemoveCmd = &cobra.Command{
	Use:   "remove",
	Short: "Delete an ACL table",
	Run: func(cmd *cobra.Command, args []string) {
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.ACLRemove(ctx, aclID)
		}); err != nil {
			exitWithError("acl remove", err)
		}
	},
}

var aclAddIfCmd = &cobra.Command{
	Use:   "add-if <if-id>...",
	Short: "Bind interfaces to an ACL table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifs, err := parseIfList(args)
		if err != nil {
			exitWithError("acl add-if", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.ACLAddIf(ctx, aclID, ifs)
		}); err != nil {
			exitWithError("acl add-if", err)
		}
	},
}

var aclRemoveIfCmd = &cobra.Command{
	Use:   "remove-if <if-id>...",
	Short: "Unbind interfaces from an ACL table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ifs, err := parseIfList(args)
		if err != nil {
			exitWithError("acl remove-if", err)
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.ACLRemoveIf(ctx, aclID, ifs)
		}); err != nil {
			exitWithError("acl remove-if", err)
		}
	},
}

var aclActions = map[string]dpsw.ACLAction{
	"drop":          dpsw.ACLActionDrop,
	"redirect":      dpsw.ACLActionRedirect,
	"accept":        dpsw.ACLActionAccept,
	"redirect-ctrl": dpsw.ACLActionRedirectToCtrlIf,
}

var aclAddEntryCmd = &cobra.Command{
	Use:   "add-entry",
	Short: "Install a rule into an ACL table",
	Run: func(cmd *cobra.Command, args []string) {
		action, ok := aclActions[aclAction]
		if !ok {
			exitWithError("acl add-entry", fmt.Errorf("unknown action %q", aclAction))
		}
		if err := withSwitch(cmd, func(ctx context.Context, sw *dpsw.Switch) error {
			return sw.ACLAddEntry(ctx, aclID, dpsw.ACLEntryCfg{
				KeyIOVA:    aclKeyIOVA,
				Precedence: aclPrecedence,
				Result: dpsw.ACLResult{
					Action: action,
					IfID:   aclResultIf,
				},
			})
		}); err != nil {
			exitWithError("acl add-entry", err)
		}
	},
}

var aclKeyCmd = &cobra.Command{
	Use:   "key <pcap-file>",
	Short: "Flatten an exact-match ACL key from the first packet of a capture",
	Long: `Reads the first packet of a pcap file, derives an exact-match ACL key
from its headers and flattens it into the firmware layout. The result is
hex-dumped, or written raw with --out for later use as DMA key memory.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		key, err := keyFromPcap(args[0])
		if err != nil {
			exitWithError("acl key", err)
		}

		buf := make([]byte, dpsw.ACLEntrySize)
		dpsw.PrepareACLEntry(key, buf)

		if aclKeyOut != "" {
			if err := os.WriteFile(aclKeyOut, buf, 0o644); err != nil {
				exitWithError("acl key", err)
			}
			fmt.Printf("wrote %d bytes to %s\n", len(buf), aclKeyOut)
			return
		}
		fmt.Print(hex.Dump(buf))
	},
}

func keyFromPcap(path string) (*dpsw.ACLKey, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := pcapgo.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("read pcap %s: %w", path, err)
	}
	data, _, err := r.ReadPacketData()
	if err != nil {
		return nil, fmt.Errorf("read first packet: %w", err)
	}

	pkt := gopacket.NewPacket(data, layers.LayerTypeEthernet, gopacket.Default)
	key := dpsw.ACLKeyFromPacket(pkt)
	return &key, nil
}

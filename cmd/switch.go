package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/dpsw/pkg/dpsw"
)

var versionCmd = &cobra.Command{
	Use:   "api-version",
	Short: "Report the DPSW API version of the firmware",
	Run: func(cmd *cobra.Command, args []string) {
		portal, err := newPortal()
		if err != nil {
			exitWithError("api-version", err)
		}
		defer dumpTranscript(portal)

		major, minor, err := dpsw.APIVersion(cmd.Context(), portal, cfg.Portal.Flags())
		if err != nil {
			exitWithError("api-version", err)
		}
		fmt.Printf("dpsw api version %d.%d\n", major, minor)
	},
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Enable the switch",
	Run: run(func(ctx context.Context, sw *dpsw.Switch) error {
		return sw.Enable(ctx)
	}),
}

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Disable the switch",
	Run: run(func(ctx context.Context, sw *dpsw.Switch) error {
		return sw.Disable(ctx)
	}),
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the switch to its initial state",
	Run: run(func(ctx context.Context, sw *dpsw.Switch) error {
		return sw.Reset(ctx)
	}),
}

var attrCmd = &cobra.Command{
	Use:   "attr",
	Short: "Show switch attributes",
	Run: run(func(ctx context.Context, sw *dpsw.Switch) error {
		attr, err := sw.GetAttributes(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("dpsw.%d:\n", attr.ID)
		fmt.Printf("  interfaces:        %d\n", attr.NumIfs)
		fmt.Printf("  vlans:             %d/%d\n", attr.NumVLANs, attr.MaxVLANs)
		fmt.Printf("  fdbs:              %d/%d\n", attr.NumFDBs, attr.MaxFDBs)
		fmt.Printf("  fdb entries:       %d\n", attr.MaxFDBEntries)
		fmt.Printf("  fdb aging time:    %ds\n", attr.FDBAgingTime)
		fmt.Printf("  fdb mcast groups:  %d\n", attr.MaxFDBMcGroups)
		fmt.Printf("  meters per if:     %d\n", attr.MaxMetersPerIf)
		fmt.Printf("  mem size:          %d\n", attr.MemSize)
		fmt.Printf("  component type:    %d\n", attr.ComponentType)
		fmt.Printf("  options:           0x%016x\n", uint64(attr.Options))
		return nil
	}),
}

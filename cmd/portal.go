package cmd

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"firestige.xyz/dpsw/internal/log"
	"firestige.xyz/dpsw/pkg/dpsw"
	"firestige.xyz/dpsw/pkg/mc"
	"firestige.xyz/dpsw/pkg/mc/mctest"
)

// recorder is the portal surface the CLI needs: submission plus the
// transcript for --dump.
type recorder interface {
	mc.Portal
	Submitted() []mc.Command
}

func newPortal() (recorder, error) {
	switch cfg.Portal.Type {
	case "echo":
		return &mctest.Echo{}, nil
	case "replay":
		return mctest.LoadReplay(cfg.Portal.Fixture)
	}
	return nil, fmt.Errorf("unknown portal type %q", cfg.Portal.Type)
}

func resolveObjectID(cmd *cobra.Command) int32 {
	if cmd.Flags().Changed("id") {
		return objectID
	}
	return cfg.Object.ID
}

// withSwitch opens a session, runs fn, closes the session and optionally
// dumps the wire transcript.
func withSwitch(cmd *cobra.Command, fn func(ctx context.Context, sw *dpsw.Switch) error) error {
	portal, err := newPortal()
	if err != nil {
		return err
	}
	defer dumpTranscript(portal)

	ctx := cmd.Context()
	id := resolveObjectID(cmd)

	sw, err := dpsw.Open(ctx, portal, cfg.Portal.Flags(), id)
	if err != nil {
		return fmt.Errorf("open dpsw.%d: %w", id, err)
	}
	log.GetLogger().WithField("object", id).WithField("token", fmt.Sprintf("0x%04x", uint16(sw.Token()))).
		Debug("session open")
	defer func() {
		if err := sw.Close(ctx); err != nil {
			log.GetLogger().WithError(err).Warn("close session")
		}
	}()

	return fn(ctx, sw)
}

func dumpTranscript(portal recorder) {
	if !dumpWire {
		return
	}
	for i, c := range portal.Submitted() {
		var buf [8 + mc.ParamsSize]byte
		binary.LittleEndian.PutUint64(buf[0:8], c.Header)
		copy(buf[8:], c.Params[:])
		fmt.Printf("cmd[%d] id=0x%04x\n%s", i, uint16(c.CommandID()), hex.Dump(buf[:]))
	}
}

// run wraps a session body into a cobra Run func.
func run(fn func(ctx context.Context, sw *dpsw.Switch) error) func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := withSwitch(cmd, fn); err != nil {
			exitWithError(cmd.Name(), err)
		}
	}
}

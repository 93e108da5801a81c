package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Write the current state as JSON (stdout by default)",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		pf, err := loadPlatform(ctx, cmd, st)
		if err != nil {
			return err
		}

		data := store.SnapshotData{
			Version: store.SnapshotVersion,
			State:   pf.Snapshot(),
		}
		raw, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return fmt.Errorf("encode state: %w", err)
		}
		raw = append(raw, '\n')

		if len(args) == 0 {
			_, err = os.Stdout.Write(raw)
			return err
		}
		if err := os.WriteFile(args[0], raw, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", args[0], err)
		}
		state := data.State
		fmt.Printf("Exported %d modules, %d scenarios, %d users, %d records to %s\n",
			len(state.Modules), len(state.Scenarios), len(state.Users), len(state.Records), args[0])
		return nil
	},
}

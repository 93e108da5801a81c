package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Replace the current state from an exported JSON file",
	Long: `Replaces the whole platform state — content, roster, and progress —
with the contents of a file written by 'pathwise export'. The file is
validated before anything is replaced; on any error the current state
is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}
		var data store.SnapshotData
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("parse %s: %w", args[0], err)
		}
		if data.Version != store.SnapshotVersion {
			return fmt.Errorf("%s: unsupported snapshot version %d (want %d)", args[0], data.Version, store.SnapshotVersion)
		}

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
		if err := pf.Restore(data.State); err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		if err := savePlatform(ctx, st, pf); err != nil {
			return err
		}

		state := data.State
		fmt.Printf("Imported %d modules, %d scenarios, %d users, %d records\n",
			len(state.Modules), len(state.Scenarios), len(state.Users), len(state.Records))
		return nil
	},
}

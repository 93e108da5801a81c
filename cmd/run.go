package cmd

import (
	"github.com/abhisek/pathwise/internal/app"
	"github.com/spf13/cobra"
)

// runApp opens the store, restores the platform, and launches the TUI.
func runApp(cmd *cobra.Command) error {
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

	return app.Run(app.Options{
		Platform:  pf,
		EventRepo: st.EventRepo(),
		SnapRepo:  st.SnapshotRepo(),
	})
}

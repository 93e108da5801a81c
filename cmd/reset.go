package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset <user> [module...]",
	Short: "Clear a user's progress records (admin only)",
	Long: `Clears the user's progress for the named modules, or for every
module when none are given. The event log is untouched, so the history
stays auditable. Requires an admin account; pass --as to pick one.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		asRef, _ := cmd.Flags().GetString("as")

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

		admin, err := actingUser(pf, asRef, roster.Role.CanResetProgress)
		if err != nil {
			return err
		}
		target, ok := findUser(pf, args[0])
		if !ok {
			return fmt.Errorf("no account matches %q", args[0])
		}

		moduleIDs := args[1:]
		if err := pf.ResetProgress(admin.ID, target.ID, moduleIDs...); err != nil {
			return err
		}
		_ = st.EventRepo().AppendRosterChange(ctx, store.RosterEventData{
			UserID:   target.ID,
			Username: target.Username,
			Role:     string(target.Role),
			Action:   store.RosterActionProgressReset,
		})
		if err := savePlatform(ctx, st, pf); err != nil {
			return err
		}

		if len(moduleIDs) == 0 {
			fmt.Printf("Cleared all progress for %s (as %s)\n", target.Username, admin.Username)
		} else {
			fmt.Printf("Cleared %s for %s (as %s)\n", strings.Join(moduleIDs, ", "), target.Username, admin.Username)
		}
		return nil
	},
}

func init() {
	resetCmd.Flags().String("as", "", "Act as this user (id or username); defaults to the first admin account")
}

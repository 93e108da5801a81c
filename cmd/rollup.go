package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/abhisek/pathwise/internal/roster"
	"github.com/spf13/cobra"
)

var rollupCmd = &cobra.Command{
	Use:   "rollup [user...]",
	Short: "Class-wide progress report (teacher or admin)",
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

		requester, err := actingUser(pf, asRef, roster.Role.CanViewRollup)
		if err != nil {
			return err
		}

		var userIDs []string
		for _, ref := range args {
			u, ok := findUser(pf, ref)
			if !ok {
				return fmt.Errorf("no account matches %q", ref)
			}
			userIDs = append(userIDs, u.ID)
		}

		entries, err := pf.ClassRollup(requester.ID, userIDs)
		if err != nil {
			return err
		}

		fmt.Printf("Class rollup (as %s)\n\n", requester.Username)
		fmt.Printf("%-16s  %-8s  %9s  %5s  %4s  %4s  %s\n",
			"USERNAME", "ROLE", "COMPLETE", "AVG", "DONE", "WIP", "LAST ACTIVE")
		fmt.Println(strings.Repeat("─", 80))
		for _, e := range entries {
			avg := "—"
			if e.Summary.ScoreCount > 0 {
				avg = fmt.Sprintf("%.0f%%", e.Summary.AvgQuizScore)
			}
			fmt.Printf("%-16s  %-8s  %8.0f%%  %5s  %4d  %4d  %s\n",
				e.User.Username, e.User.Role, e.Summary.OverallCompletion, avg,
				e.Summary.ModulesCompleted, e.Summary.ModulesInProgress, lastActive(e.LastActive))
		}

		rates, err := pf.ModuleCompletionRates(requester.ID, userIDs)
		if err != nil {
			return err
		}
		fmt.Printf("\n%-34s  %9s  %s\n", "MODULE", "CLASS AVG", "COMPLETED")
		fmt.Println(strings.Repeat("─", 60))
		for _, r := range rates {
			fmt.Printf("%-34s  %8.0f%%  %d/%d\n", r.Module.Title, r.AvgCompletion, r.Completions, r.Population)
		}
		return nil
	},
}

func lastActive(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}

func init() {
	rollupCmd.Flags().String("as", "", "Act as this user (id or username); defaults to the first staff account")
}

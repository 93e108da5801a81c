package cmd

import (
	"fmt"
	"sort"

	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Platform activity and feedback statistics",
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

		events := st.EventRepo()
		total, err := events.InteractionCount(ctx, "")
		if err != nil {
			return err
		}
		seq, err := events.LastSequence(ctx)
		if err != nil {
			return err
		}
		fb, err := events.FeedbackStats(ctx)
		if err != nil {
			return err
		}

		students := len(pf.Roster().ByRole(roster.RoleStudent))
		staff := len(pf.Roster().Users()) - students
		fmt.Printf("Roster:   %d students, %d staff\n", students, staff)
		fmt.Printf("Catalog:  %d modules, %d scenarios\n", pf.Catalog().Len(), len(pf.Catalog().Scenarios()))
		fmt.Printf("Events:   %d interactions logged (sequence %d)\n\n", total, seq)

		if fb.Total == 0 {
			fmt.Println("No answers recorded yet.")
			return nil
		}

		fmt.Printf("Answers:  %d total, %d correct (%.0f%%), %d rushed\n",
			fb.Total, fb.Correct, 100*float64(fb.Correct)/float64(fb.Total), fb.Rushed)

		fmt.Println("\nBy classification:")
		for _, k := range sortedKeys(fb.ByClass) {
			fmt.Printf("  %-14s %d\n", k, fb.ByClass[k])
		}
		fmt.Println("\nBy difficulty adjustment:")
		for _, k := range sortedKeys(fb.ByAdjustment) {
			fmt.Printf("  %-14s %d\n", k, fb.ByAdjustment[k])
		}

		recent, err := events.RecentInteractions(ctx, store.QueryOpts{Limit: 5})
		if err != nil {
			return err
		}
		if len(recent) > 0 {
			fmt.Println("\nRecent activity:")
			for _, ev := range recent {
				who := ev.UserID
				if u, ok := pf.Roster().User(ev.UserID); ok {
					who = u.Username
				}
				line := fmt.Sprintf("  %s  %s · %s · %.0f%%",
					ev.Timestamp.Format("Jan 02 15:04"), who, ev.ModuleID, ev.CompletionPct)
				if ev.QuizScore != nil {
					line += fmt.Sprintf(" · scored %.0f%%", *ev.QuizScore)
				}
				fmt.Println(line)
			}
		}
		return nil
	},
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package cmd

import (
	"fmt"

	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var recordCmd = &cobra.Command{
	Use:   "record <user> <module>",
	Short: "Record a learning interaction",
	Long: `Record one interaction for a user on a module: an absolute completion
percent, minutes spent, and optionally a quiz score. Completion merges
by max, so reporting less than the stored percent never loses progress.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		completion, _ := cmd.Flags().GetFloat64("completion")
		minutes, _ := cmd.Flags().GetInt("minutes")
		scoreVal, _ := cmd.Flags().GetFloat64("score")

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

		u, ok := findUser(pf, args[0])
		if !ok {
			return fmt.Errorf("no account matches %q", args[0])
		}
		m, ok := pf.Catalog().Module(args[1])
		if !ok {
			return fmt.Errorf("no module with id %q", args[1])
		}

		in := platform.Interaction{
			UserID:        u.ID,
			ModuleID:      m.ID,
			CompletionPct: completion,
			TimeSpentMins: minutes,
		}
		if cmd.Flags().Changed("score") {
			in.QuizScore = &scoreVal
		}

		res, err := pf.RecordInteraction(in)
		if err != nil {
			return err
		}

		_ = st.EventRepo().AppendInteraction(ctx, store.InteractionEventData{
			UserID:             u.ID,
			ModuleID:           m.ID,
			CompletionPct:      completion,
			TimeSpentMins:      minutes,
			QuizScore:          in.QuizScore,
			Created:            res.Update.Created,
			CompletionAdvanced: res.Update.CompletionAdvanced,
		})
		if err := savePlatform(ctx, st, pf); err != nil {
			return err
		}

		after := res.Update.After
		fmt.Printf("%s · %s: %.0f%% → %.0f%% complete, %d min total\n",
			u.Username, m.Title, res.Update.Before.CompletionPct, after.CompletionPct, after.TimeSpentMins)
		if !res.Update.CompletionAdvanced && !res.Update.Created {
			fmt.Println("Completion did not advance; time and score were still recorded.")
		}
		if avg, n := after.AverageScore(); n > 0 {
			fmt.Printf("Rolling quiz average: %.0f%% over %d scores\n", avg, n)
		}
		return nil
	},
}

func init() {
	recordCmd.Flags().Float64("completion", 0, "Absolute completion percent (0-100)")
	recordCmd.Flags().Int("minutes", 0, "Minutes spent in this interaction")
	recordCmd.Flags().Float64("score", 0, "Quiz score (0-100) to append to the record")
}

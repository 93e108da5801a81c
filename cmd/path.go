package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <user>",
	Short: "Show a user's personalized learning path",
	Args:  cobra.ExactArgs(1),
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

		u, ok := findUser(pf, args[0])
		if !ok {
			return fmt.Errorf("no account matches %q", args[0])
		}

		target, err := pf.TargetDifficulty(u.ID)
		if err != nil {
			return err
		}
		path, err := pf.PersonalizedPath(u.ID)
		if err != nil {
			return err
		}

		fmt.Printf("Path for %s (suggested difficulty: %s)\n\n", u.Username, target.DisplayName())
		if len(path) == 0 {
			fmt.Println("Every unlocked module is complete. Nice work!")
			return nil
		}

		for i, m := range path {
			marker := "  "
			if i == 0 {
				marker = "▸ "
			}
			rec := pf.Progress().Get(u.ID, m.ID)
			state := ""
			if rec.CompletionPct > 0 {
				state = fmt.Sprintf("  (%.0f%% done)", rec.CompletionPct)
			}
			fmt.Printf("%s%2d. %-34s %-18s %s%s\n",
				marker, i+1, m.Title, m.Category, strings.ToUpper(m.Difficulty.String()[:3]), state)
		}

		if cat, rate, ok := pf.StrongestCategory(u.ID); ok {
			fmt.Printf("\nStrongest category: %s (%.0f%%)\n", catalog.CategoryDisplayName(cat), rate)
		}
		return nil
	},
}

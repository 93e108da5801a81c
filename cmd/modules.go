package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/spf13/cobra"
)

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "Browse the module catalog",
}

var modulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all modules (optionally filtered by category or difficulty)",
	RunE: func(cmd *cobra.Command, args []string) error {
		categoryVal, _ := cmd.Flags().GetString("category")
		difficultyVal, _ := cmd.Flags().GetString("difficulty")

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
		cat := pf.Catalog()

		var modules []catalog.Module
		switch {
		case categoryVal != "" && difficultyVal != "":
			return fmt.Errorf("use --category or --difficulty, not both")
		case categoryVal != "":
			c := catalog.Category(categoryVal)
			if !catalog.KnownCategory(c) {
				return fmt.Errorf("unknown category %q", categoryVal)
			}
			modules = cat.ByCategory(c)
			if len(modules) == 0 {
				return fmt.Errorf("no modules in category %q", categoryVal)
			}
		case difficultyVal != "":
			d, ok := catalog.ParseDifficulty(difficultyVal)
			if !ok {
				return fmt.Errorf("unknown difficulty %q (want beginner, intermediate, or advanced)", difficultyVal)
			}
			modules = cat.ByDifficulty(d)
			if len(modules) == 0 {
				return fmt.Errorf("no modules at difficulty %q", difficultyVal)
			}
		default:
			modules = cat.Modules()
		}

		fmt.Printf("%-24s  %-34s  %-18s  %-12s  %2s  %s\n",
			"ID", "Title", "Category", "Difficulty", "Qs", "Prerequisites")
		fmt.Println(strings.Repeat("─", 110))
		for _, m := range modules {
			title := m.Title
			if len(title) > 34 {
				title = title[:31] + "..."
			}
			prereqs := "—"
			if len(m.Prerequisites) > 0 {
				prereqs = strings.Join(m.Prerequisites, ", ")
			}
			fmt.Printf("%-24s  %-34s  %-18s  %-12s  %2d  %s\n",
				m.ID, title, m.Category, m.Difficulty, len(m.Questions), prereqs)
		}
		fmt.Printf("\n%d modules\n", len(modules))
		return nil
	},
}

var modulesShowCmd = &cobra.Command{
	Use:   "show <module>",
	Short: "Show one module in full",
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

		m, ok := pf.Catalog().Module(args[0])
		if !ok {
			return fmt.Errorf("no module with id %q", args[0])
		}

		fmt.Printf("%s — %s\n", m.ID, m.Title)
		fmt.Printf("  category    %s\n", catalog.CategoryDisplayName(m.Category))
		fmt.Printf("  difficulty  %s\n", m.Difficulty.DisplayName())
		if m.EstimatedMins > 0 {
			fmt.Printf("  estimated   %d min\n", m.EstimatedMins)
		}
		if m.Description != "" {
			fmt.Printf("\n%s\n", m.Description)
		}

		if len(m.Prerequisites) > 0 {
			fmt.Printf("\nPrerequisites: %s\n", strings.Join(m.Prerequisites, ", "))
		}
		if deps := pf.Catalog().Dependents(m.ID); len(deps) > 0 {
			ids := make([]string, len(deps))
			for i, d := range deps {
				ids[i] = d.ID
			}
			fmt.Printf("Unlocks: %s\n", strings.Join(ids, ", "))
		}

		if len(m.Blocks) > 0 {
			fmt.Println("\nContent:")
			for _, b := range m.Blocks {
				fmt.Printf("  [%s] %s\n", b.Kind, b.Title)
			}
		}
		if n := len(m.Questions); n > 0 {
			fmt.Printf("\nAssessment: %d questions\n", n)
		}
		return nil
	},
}

func init() {
	modulesListCmd.Flags().String("category", "", "Filter by category (e.g. ethics-bias)")
	modulesListCmd.Flags().String("difficulty", "", "Filter by difficulty band")

	modulesCmd.AddCommand(modulesListCmd)
	modulesCmd.AddCommand(modulesShowCmd)
}

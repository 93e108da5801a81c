package cmd

import (
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "pathwise",
	Short: "AI literacy tracker for classrooms",
	Long:  "Pathwise — terminal companion that tracks AI-literacy progress and keeps every learner on the right path.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PATHWISE_DB env var)")
	rootCmd.PersistentFlags().String("content", "", "Directory of content packs (used on first run and by 'content' commands)")

	rootCmd.AddCommand(usersCmd)
	rootCmd.AddCommand(modulesCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(rollupCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(demoCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(contentCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then PATHWISE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage the roster",
}

var usersAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Enroll a new account",
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		roleVal, _ := cmd.Flags().GetString("role")

		role, ok := roster.ParseRole(roleVal)
		if !ok {
			return fmt.Errorf("unknown role %q (want student, teacher, or admin)", roleVal)
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

		u, err := pf.Roster().Create(name, email, role)
		if err != nil {
			return err
		}
		_ = st.EventRepo().AppendRosterChange(ctx, store.RosterEventData{
			UserID:   u.ID,
			Username: u.Username,
			Role:     string(u.Role),
			Action:   store.RosterActionCreated,
		})
		if err := savePlatform(ctx, st, pf); err != nil {
			return err
		}

		fmt.Printf("Enrolled %s (%s) with id %s\n", u.Username, u.Role, u.ID)
		return nil
	},
}

var usersListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
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

		users := pf.Roster().Users()
		if len(users) == 0 {
			fmt.Println("No accounts yet. Enroll one with 'pathwise users add --name <name>'.")
			return nil
		}

		fmt.Printf("%-16s  %-8s  %-26s  %9s  %s\n", "USERNAME", "ROLE", "EMAIL", "COMPLETE", "ID")
		fmt.Println(strings.Repeat("─", 100))
		for _, u := range users {
			complete := "—"
			if sum, err := pf.AggregateProgress(u.ID); err == nil && sum.ModulesCompleted+sum.ModulesInProgress > 0 {
				complete = fmt.Sprintf("%.0f%%", sum.OverallCompletion)
			}
			fmt.Printf("%-16s  %-8s  %-26s  %9s  %s\n", u.Username, u.Role, u.Email, complete, u.ID)
		}
		fmt.Printf("\n%d accounts\n", len(users))
		return nil
	},
}

func init() {
	usersAddCmd.Flags().String("name", "", "Username (required)")
	usersAddCmd.Flags().String("email", "", "Email address")
	usersAddCmd.Flags().String("role", "student", "Role: student, teacher, or admin")
	_ = usersAddCmd.MarkFlagRequired("name")

	usersCmd.AddCommand(usersAddCmd)
	usersCmd.AddCommand(usersListCmd)
}

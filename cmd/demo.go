package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/content"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Scripted walkthrough on an in-memory database",
	Long: `Runs a short scripted class against the starter content pack:
enrolls a teacher and two students, answers an assessment, and prints
the feedback, recommendations, and rollup that result. Nothing touches
your real database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		st, err := store.Open("file::memory:?cache=shared")
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		cat, err := content.Build(content.StarterPack())
		if err != nil {
			return err
		}
		pf := platform.New(cat, roster.New(), platform.DefaultConfig())
		events := st.EventRepo()

		fmt.Println("── Enrolling ──")
		teacher := mustEnroll(ctx, pf, events, "moore", "moore@school.example", roster.RoleTeacher)
		ava := mustEnroll(ctx, pf, events, "ava", "ava@school.example", roster.RoleStudent)
		ben := mustEnroll(ctx, pf, events, "ben", "ben@school.example", roster.RoleStudent)
		fmt.Printf("  %s (teacher), %s and %s (students)\n\n", teacher.Username, ava.Username, ben.Username)

		mod, ok := firstAssessable(pf, ava.ID)
		if !ok {
			return fmt.Errorf("starter pack has no module with an assessment")
		}

		fmt.Printf("── %s takes %q ──\n", ava.Username, mod.Title)
		sessionID := uuid.New().String()
		correct := 0
		for i, q := range mod.Questions {
			// Second answer is wrong and fast, to show the rushed path.
			chosen, elapsed := q.Correct, 9*time.Second
			if i == 1 {
				chosen, elapsed = (q.Correct+1)%len(q.Options), 2*time.Second
			}

			res, err := pf.RecordInteraction(platform.Interaction{
				UserID:   ava.ID,
				ModuleID: mod.ID,
				Question: &q,
				Chosen:   chosen,
				Elapsed:  elapsed,
			})
			if err != nil {
				return err
			}
			fb := res.Feedback
			if fb.Correct {
				correct++
				fmt.Printf("  Q%d \033[32m✓\033[0m %s\n", i+1, fb.Message)
			} else {
				fmt.Printf("  Q%d \033[31m✗\033[0m %s\n", i+1, fb.Message)
				if fb.Rushed {
					fmt.Println("     (answered in 2s — flagged as rushed)")
				}
			}

			_ = events.AppendInteraction(ctx, store.InteractionEventData{
				UserID: ava.ID, ModuleID: mod.ID,
			})
			_ = events.AppendFeedback(ctx, store.FeedbackEventData{
				SessionID:  sessionID,
				UserID:     ava.ID,
				ModuleID:   mod.ID,
				Prompt:     q.Prompt,
				Chosen:     chosen,
				Correct:    fb.Correct,
				Tier:       string(fb.Tier),
				Class:      string(fb.Class),
				Adjustment: string(fb.Adjustment),
				Rushed:     fb.Rushed,
				ElapsedMs:  elapsed.Milliseconds(),
			})
		}

		score := 100 * float64(correct) / float64(len(mod.Questions))
		mins := 9 // scripted study time
		res, err := pf.RecordInteraction(platform.Interaction{
			UserID:        ava.ID,
			ModuleID:      mod.ID,
			CompletionPct: 100,
			TimeSpentMins: mins,
			QuizScore:     &score,
		})
		if err != nil {
			return err
		}
		_ = events.AppendInteraction(ctx, store.InteractionEventData{
			UserID:             ava.ID,
			ModuleID:           mod.ID,
			CompletionPct:      100,
			TimeSpentMins:      mins,
			QuizScore:          &score,
			Created:            res.Update.Created,
			CompletionAdvanced: res.Update.CompletionAdvanced,
		})
		avg, n := res.Update.After.AverageScore()
		fmt.Printf("  Completed with %.0f%% (%d/%d). Rolling average %.0f%% over %d quiz(es).\n\n",
			score, correct, len(mod.Questions), avg, n)

		if _, err := pf.RecordInteraction(platform.Interaction{
			UserID: ben.ID, ModuleID: mod.ID, CompletionPct: 40, TimeSpentMins: 12,
		}); err != nil {
			return err
		}
		_ = events.AppendInteraction(ctx, store.InteractionEventData{
			UserID: ben.ID, ModuleID: mod.ID, CompletionPct: 40, TimeSpentMins: 12, Created: true, CompletionAdvanced: true,
		})
		fmt.Printf("── %s gets partway through %q (40%%, 12 min) ──\n\n", ben.Username, mod.Title)

		if scs := pf.Catalog().Scenarios(); len(scs) > 0 {
			sc := scs[0]
			out, err := pf.PracticeScenario(sc.ID, 0)
			if err != nil {
				return err
			}
			fmt.Printf("── %s weighs a scenario: %q ──\n", ben.Username, sc.Title)
			fmt.Printf("  Choice: %s\n", out.Option.Text)
			fmt.Printf("  %s\n", out.Option.Consequence)
			fmt.Printf("  Ethics: %s (%d/10)\n\n", out.Band.DisplayName(), out.Score)
		}

		fmt.Printf("── Recommended path for %s ──\n", ava.Username)
		path, err := pf.PersonalizedPath(ava.ID)
		if err != nil {
			return err
		}
		for i, m := range path {
			if i >= 3 {
				fmt.Printf("  … and %d more\n", len(path)-3)
				break
			}
			fmt.Printf("  %d. %s (%s, %s)\n", i+1, m.Title, catalog.CategoryDisplayName(m.Category), m.Difficulty.DisplayName())
		}

		fmt.Printf("\n── Class rollup (as %s) ──\n", teacher.Username)
		entries, err := pf.ClassRollup(teacher.ID, nil)
		if err != nil {
			return err
		}
		for _, e := range entries {
			fmt.Printf("  %-8s %-8s %3.0f%% complete, %d done\n",
				e.User.Username, e.User.Role, e.Summary.OverallCompletion, e.Summary.ModulesCompleted)
		}

		if err := store.SaveSnapshot(ctx, st.SnapshotRepo(), events, pf.Snapshot()); err != nil {
			return err
		}
		fb, err := events.FeedbackStats(ctx)
		if err != nil {
			return err
		}
		seq, _ := events.LastSequence(ctx)
		fmt.Printf("\n── Event log ──\n")
		fmt.Printf("  %d events, %d answers (%d correct, %d rushed), snapshot saved\n",
			seq, fb.Total, fb.Correct, fb.Rushed)
		return nil
	},
}

func mustEnroll(ctx context.Context, pf *platform.Platform, events store.EventRepo, username, email string, role roster.Role) roster.User {
	u, err := pf.Roster().Create(username, email, role)
	if err != nil {
		panic(err) // fixed inputs, cannot collide
	}
	_ = events.AppendRosterChange(ctx, store.RosterEventData{
		UserID:   u.ID,
		Username: u.Username,
		Role:     string(u.Role),
		Action:   store.RosterActionCreated,
	})
	return u
}

// firstAssessable picks the first recommended module that has questions.
func firstAssessable(pf *platform.Platform, userID string) (catalog.Module, bool) {
	path, err := pf.PersonalizedPath(userID)
	if err != nil {
		return catalog.Module{}, false
	}
	for _, m := range path {
		if len(m.Questions) > 0 {
			return m, true
		}
	}
	return catalog.Module{}, false
}

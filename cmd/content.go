package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/pathwise/internal/content"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate and load content packs",
}

var contentValidateCmd = &cobra.Command{
	Use:   "validate <file-or-dir>",
	Short: "Check content packs without touching the database",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packs, err := loadPacks(args[0])
		if err != nil {
			return err
		}
		// Build runs the referential checks a single pack can't see.
		cat, err := content.Build(packs...)
		if err != nil {
			return err
		}
		for _, p := range packs {
			fmt.Printf("%s v%d: %d modules, %d scenarios\n", p.Name, p.Version, len(p.Modules), len(p.Scenarios))
		}
		fmt.Printf("OK — %d modules, %d scenarios total\n", cat.Len(), len(cat.Scenarios()))
		return nil
	},
}

var contentLoadCmd = &cobra.Command{
	Use:   "load <file-or-dir>",
	Short: "Merge content packs into the current state",
	Long: `Adds the packs' modules and scenarios to the catalog, replacing any
with matching ids. Roster and progress records are kept; nothing is
removed, so existing records stay valid. The merged state is validated
before it replaces the current one.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		packs, err := loadPacks(args[0])
		if err != nil {
			return err
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

		snap := pf.Snapshot()
		added, replaced := mergePacks(&snap, packs)
		if err := pf.Restore(snap); err != nil {
			return fmt.Errorf("merge content: %w", err)
		}
		if err := savePlatform(ctx, st, pf); err != nil {
			return err
		}
		fmt.Printf("Loaded %d pack(s): %d added, %d replaced. Catalog now has %d modules, %d scenarios.\n",
			len(packs), added, replaced, pf.Catalog().Len(), len(pf.Catalog().Scenarios()))
		return nil
	},
}

// loadPacks reads one pack file or every pack in a directory.
func loadPacks(path string) ([]content.Pack, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return content.LoadDir(path)
	}
	p, err := content.LoadFile(path)
	if err != nil {
		return nil, err
	}
	return []content.Pack{p}, nil
}

// mergePacks folds pack content into the snapshot, id-keyed, newest
// definition winning.
func mergePacks(snap *platform.Snapshot, packs []content.Pack) (added, replaced int) {
	modIdx := make(map[string]int, len(snap.Modules))
	for i, m := range snap.Modules {
		modIdx[m.ID] = i
	}
	scIdx := make(map[string]int, len(snap.Scenarios))
	for i, s := range snap.Scenarios {
		scIdx[s.ID] = i
	}
	for _, p := range packs {
		for _, m := range p.Modules {
			if i, ok := modIdx[m.ID]; ok {
				snap.Modules[i] = m
				replaced++
				continue
			}
			modIdx[m.ID] = len(snap.Modules)
			snap.Modules = append(snap.Modules, m)
			added++
		}
		for _, s := range p.Scenarios {
			if i, ok := scIdx[s.ID]; ok {
				snap.Scenarios[i] = s
				replaced++
				continue
			}
			scIdx[s.ID] = len(snap.Scenarios)
			snap.Scenarios = append(snap.Scenarios, s)
			added++
		}
	}
	return added, replaced
}

func init() {
	contentCmd.AddCommand(contentValidateCmd, contentLoadCmd)
}

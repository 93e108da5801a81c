package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/content"
	"github.com/abhisek/pathwise/internal/platform"
	"github.com/abhisek/pathwise/internal/roster"
	"github.com/abhisek/pathwise/internal/store"
	"github.com/spf13/cobra"
)

// openStore opens the SQLite store at the resolved path.
func openStore(cmd *cobra.Command) (*store.Store, error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return st, nil
}

// buildCatalog assembles the catalog from the --content directory, or
// from the compiled-in starter pack when none is given.
func buildCatalog(cmd *cobra.Command) (*catalog.Catalog, error) {
	dir, _ := cmd.Flags().GetString("content")
	if dir == "" {
		return content.Build(content.StarterPack())
	}
	packs, err := content.LoadDir(dir)
	if err != nil {
		return nil, err
	}
	return content.Build(packs...)
}

// loadPlatform restores the platform from the latest snapshot. On a
// fresh database it seeds from the content packs (or starter pack) and
// writes the first snapshot, so later runs always restore.
func loadPlatform(ctx context.Context, cmd *cobra.Command, st *store.Store) (*platform.Platform, error) {
	cat, err := buildCatalog(cmd)
	if err != nil {
		return nil, err
	}
	pf := platform.New(cat, roster.New(), platform.DefaultConfig())

	snap, err := st.SnapshotRepo().Latest(ctx)
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}
	if snap != nil {
		if err := pf.Restore(snap.Data.State); err != nil {
			return nil, fmt.Errorf("restore snapshot: %w", err)
		}
		return pf, nil
	}

	if err := savePlatform(ctx, st, pf); err != nil {
		return nil, err
	}
	return pf, nil
}

// savePlatform snapshots the platform state into the store.
func savePlatform(ctx context.Context, st *store.Store, pf *platform.Platform) error {
	if err := store.SaveSnapshot(ctx, st.SnapshotRepo(), st.EventRepo(), pf.Snapshot()); err != nil {
		return fmt.Errorf("save snapshot: %w", err)
	}
	return nil
}

// findUser resolves a user reference: exact id first, then username.
func findUser(pf *platform.Platform, ref string) (roster.User, bool) {
	if u, ok := pf.Roster().User(ref); ok {
		return u, true
	}
	for _, u := range pf.Roster().Users() {
		if u.Username == ref {
			return u, true
		}
	}
	return roster.User{}, false
}

// actingUser resolves who a privileged command runs as: the --as
// reference when given, otherwise the first account whose role is
// allowed.
func actingUser(pf *platform.Platform, ref string, allowed func(roster.Role) bool) (roster.User, error) {
	if ref != "" {
		u, ok := findUser(pf, ref)
		if !ok {
			return roster.User{}, fmt.Errorf("no account matches %q", ref)
		}
		if !allowed(u.Role) {
			return roster.User{}, fmt.Errorf("account %q has role %s, which is not permitted here", u.Username, u.Role)
		}
		return u, nil
	}
	for _, u := range pf.Roster().Users() {
		if allowed(u.Role) {
			return u, nil
		}
	}
	return roster.User{}, errors.New("no account with a permitted role; create one with 'pathwise users add' or pass --as")
}

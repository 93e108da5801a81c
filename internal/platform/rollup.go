package platform

import (
	"fmt"
	"sort"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/roster"
)

// RollupEntry is one row of the class report.
type RollupEntry struct {
	User       roster.User
	Summary    progress.Summary
	LastActive time.Time // zero when the user has no records
}

// ClassRollup aggregates progress for the given users, most complete
// first and user id ascending on ties. An empty id list means the whole
// roster. Unknown ids are skipped. The requester needs the teacher or
// admin role.
func (p *Platform) ClassRollup(requesterID string, userIDs []string) ([]RollupEntry, error) {
	req, ok := p.roster.User(requesterID)
	if !ok {
		return nil, fmt.Errorf("requester %q: %w", requesterID, progress.ErrInvalidUser)
	}
	if !req.Role.CanViewRollup() {
		return nil, fmt.Errorf("role %s: %w", req.Role, ErrNotPermitted)
	}

	if len(userIDs) == 0 {
		for _, u := range p.roster.Users() {
			userIDs = append(userIDs, u.ID)
		}
	}

	entries := make([]RollupEntry, 0, len(userIDs))
	seen := make(map[string]bool, len(userIDs))
	for _, id := range userIDs {
		if seen[id] {
			continue
		}
		seen[id] = true
		u, ok := p.roster.User(id)
		if !ok {
			continue
		}
		last, _ := p.store.LastActive(id)
		entries = append(entries, RollupEntry{
			User:       u,
			Summary:    p.store.Aggregate(id),
			LastActive: last,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Summary.OverallCompletion != entries[j].Summary.OverallCompletion {
			return entries[i].Summary.OverallCompletion > entries[j].Summary.OverallCompletion
		}
		return entries[i].User.ID < entries[j].User.ID
	})
	return entries, nil
}

// ModuleRate is class-wide uptake of one module.
type ModuleRate struct {
	Module        catalog.Module
	AvgCompletion float64 // mean over the population, absent records count as zero
	Completions   int     // users at 100%
	Population    int     // users the rate was computed over
}

// ModuleCompletionRates reports per-module uptake across the given
// users, in catalog order. An empty id list means every student on the
// roster; staff accounts are never counted by default. Unknown ids are
// skipped. Gated like ClassRollup.
func (p *Platform) ModuleCompletionRates(requesterID string, userIDs []string) ([]ModuleRate, error) {
	req, ok := p.roster.User(requesterID)
	if !ok {
		return nil, fmt.Errorf("requester %q: %w", requesterID, progress.ErrInvalidUser)
	}
	if !req.Role.CanViewRollup() {
		return nil, fmt.Errorf("role %s: %w", req.Role, ErrNotPermitted)
	}

	var users []roster.User
	if len(userIDs) == 0 {
		users = p.roster.ByRole(roster.RoleStudent)
	} else {
		seen := make(map[string]bool, len(userIDs))
		for _, id := range userIDs {
			if seen[id] {
				continue
			}
			seen[id] = true
			if u, ok := p.roster.User(id); ok {
				users = append(users, u)
			}
		}
	}

	rates := make([]ModuleRate, 0, p.cat.Len())
	for _, m := range p.cat.Modules() {
		rate := ModuleRate{Module: m, Population: len(users)}
		for _, u := range users {
			rec := p.store.Get(u.ID, m.ID)
			rate.AvgCompletion += rec.CompletionPct
			if rec.Completed() {
				rate.Completions++
			}
		}
		if len(users) > 0 {
			rate.AvgCompletion /= float64(len(users))
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// ResetProgress clears the user's records for the given modules, or all
// of them when none are named. The requester needs the admin role. All
// module ids are checked before anything is cleared.
func (p *Platform) ResetProgress(requesterID, userID string, moduleIDs ...string) error {
	req, ok := p.roster.User(requesterID)
	if !ok {
		return fmt.Errorf("requester %q: %w", requesterID, progress.ErrInvalidUser)
	}
	if !req.Role.CanResetProgress() {
		return fmt.Errorf("role %s: %w", req.Role, ErrNotPermitted)
	}
	if !p.roster.HasUser(userID) {
		return fmt.Errorf("user %q: %w", userID, progress.ErrInvalidUser)
	}

	if len(moduleIDs) == 0 {
		for _, rec := range p.store.Records(userID) {
			moduleIDs = append(moduleIDs, rec.ModuleID)
		}
	}
	for _, id := range moduleIDs {
		if !p.cat.HasModule(id) {
			return fmt.Errorf("module %q: %w", id, progress.ErrInvalidModule)
		}
	}
	for _, id := range moduleIDs {
		if err := p.store.Reset(userID, id); err != nil {
			return err
		}
	}
	return nil
}

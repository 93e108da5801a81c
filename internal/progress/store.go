package progress

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"
)

var (
	// ErrInvalidUser is returned when a user id is not registered.
	ErrInvalidUser = errors.New("unknown user")
	// ErrInvalidModule is returned when a module id is not registered.
	ErrInvalidModule = errors.New("unknown module")
	// ErrOutOfRange is returned for a score outside [0, 100] or a
	// negative time delta.
	ErrOutOfRange = errors.New("value out of range")
)

// UserDirectory reports whether a user id exists.
type UserDirectory interface {
	HasUser(id string) bool
}

// ModuleDirectory reports whether a module id exists.
type ModuleDirectory interface {
	HasModule(id string) bool
}

// Store holds per-(user, module) progress records. Single writer: the
// embedding process serializes mutations per user; reads are pure.
type Store struct {
	users   UserDirectory
	modules ModuleDirectory
	records map[string]map[string]*Record // user id -> module id -> record
}

// NewStore returns an empty store that checks id existence against the
// given directories.
func NewStore(users UserDirectory, modules ModuleDirectory) *Store {
	return &Store{
		users:   users,
		modules: modules,
		records: make(map[string]map[string]*Record),
	}
}

// UpdateResult reports what a single update changed.
type UpdateResult struct {
	Before             Record
	After              Record
	Created            bool
	CompletionAdvanced bool // false when the event reported a regression or no change
}

// Update merges one interaction into the (user, module) record, creating
// it on first touch. Completion merges by max and clamps into [0, 100];
// a lower reported value leaves the percentage unchanged but still
// accumulates time and appends the score, so history is never lost.
// All validation happens before any write.
func (s *Store) Update(userID, moduleID string, completionPct float64, timeSpentMins int, quizScore *float64) (UpdateResult, error) {
	if !s.users.HasUser(userID) {
		return UpdateResult{}, fmt.Errorf("update progress for %q: %w", userID, ErrInvalidUser)
	}
	if !s.modules.HasModule(moduleID) {
		return UpdateResult{}, fmt.Errorf("update progress for module %q: %w", moduleID, ErrInvalidModule)
	}
	if timeSpentMins < 0 {
		return UpdateResult{}, fmt.Errorf("time delta %d: %w", timeSpentMins, ErrOutOfRange)
	}
	if quizScore != nil && (*quizScore < 0 || *quizScore > 100) {
		return UpdateResult{}, fmt.Errorf("quiz score %.1f: %w", *quizScore, ErrOutOfRange)
	}

	byModule := s.records[userID]
	if byModule == nil {
		byModule = make(map[string]*Record)
		s.records[userID] = byModule
	}

	rec, ok := byModule[moduleID]
	created := false
	if !ok {
		rec = &Record{UserID: userID, ModuleID: moduleID}
		byModule[moduleID] = rec
		created = true
	}
	before := snapshotRecord(rec)

	incoming := clampPct(completionPct)
	advanced := incoming > rec.CompletionPct
	if advanced {
		rec.CompletionPct = incoming
	}
	rec.TimeSpentMins += timeSpentMins
	if quizScore != nil {
		rec.QuizScores = append(rec.QuizScores, *quizScore)
	}
	rec.LastUpdated = time.Now()

	return UpdateResult{
		Before:             before,
		After:              snapshotRecord(rec),
		Created:            created,
		CompletionAdvanced: advanced,
	}, nil
}

// Get returns the record for (user, module), or a zero-progress record
// when none exists. Reads never fail.
func (s *Store) Get(userID, moduleID string) Record {
	if rec, ok := s.records[userID][moduleID]; ok {
		return snapshotRecord(rec)
	}
	return Record{UserID: userID, ModuleID: moduleID}
}

// CompletedModules returns the set of module ids the user has fully
// completed.
func (s *Store) CompletedModules(userID string) map[string]bool {
	out := make(map[string]bool)
	for id, rec := range s.records[userID] {
		if rec.Completed() {
			out[id] = true
		}
	}
	return out
}

// Records returns all of a user's records ordered by module id.
func (s *Store) Records(userID string) []Record {
	byModule := s.records[userID]
	ids := make([]string, 0, len(byModule))
	for id := range byModule {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Record, 0, len(ids))
	for _, id := range ids {
		out = append(out, snapshotRecord(byModule[id]))
	}
	return out
}

// AllRecords returns every record ordered by user id then module id.
func (s *Store) AllRecords() []Record {
	users := make([]string, 0, len(s.records))
	for id := range s.records {
		users = append(users, id)
	}
	sort.Strings(users)

	var out []Record
	for _, u := range users {
		out = append(out, s.Records(u)...)
	}
	return out
}

// Aggregate computes a user's summary. It iterates records in module-id
// order so repeated calls over unchanged state are bit-identical.
func (s *Store) Aggregate(userID string) Summary {
	recs := s.Records(userID)
	if len(recs) == 0 {
		return Summary{}
	}

	var sum Summary
	var completionTotal, scoreTotal float64
	for _, rec := range recs {
		completionTotal += rec.CompletionPct
		sum.TotalTimeMins += rec.TimeSpentMins
		for _, score := range rec.QuizScores {
			scoreTotal += score
			sum.ScoreCount++
		}
		switch {
		case rec.Completed():
			sum.ModulesCompleted++
		case rec.Started():
			sum.ModulesInProgress++
		}
	}
	sum.OverallCompletion = completionTotal / float64(len(recs))
	if sum.ScoreCount > 0 {
		sum.AvgQuizScore = scoreTotal / float64(sum.ScoreCount)
	}
	return sum
}

// LastActive returns the most recent update time across a user's
// records.
func (s *Store) LastActive(userID string) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, rec := range s.records[userID] {
		if rec.LastUpdated.After(latest) {
			latest = rec.LastUpdated
			found = true
		}
	}
	return latest, found
}

// Reset clears the (user, module) record. This is the only way a record
// is ever removed. Clearing an absent record is a no-op.
func (s *Store) Reset(userID, moduleID string) error {
	if !s.users.HasUser(userID) {
		return fmt.Errorf("reset progress for %q: %w", userID, ErrInvalidUser)
	}
	if !s.modules.HasModule(moduleID) {
		return fmt.Errorf("reset progress for module %q: %w", moduleID, ErrInvalidModule)
	}
	delete(s.records[userID], moduleID)
	return nil
}

// Put installs a record wholesale, preserving its timestamp. Used when
// restoring a snapshot; unlike Update it rejects out-of-range completion
// instead of clamping, since a snapshot should never contain one.
func (s *Store) Put(rec Record) error {
	if !s.users.HasUser(rec.UserID) {
		return fmt.Errorf("restore record for %q: %w", rec.UserID, ErrInvalidUser)
	}
	if !s.modules.HasModule(rec.ModuleID) {
		return fmt.Errorf("restore record for module %q: %w", rec.ModuleID, ErrInvalidModule)
	}
	if rec.CompletionPct < 0 || rec.CompletionPct > 100 {
		return fmt.Errorf("restore completion %.1f: %w", rec.CompletionPct, ErrOutOfRange)
	}
	if rec.TimeSpentMins < 0 {
		return fmt.Errorf("restore time %d: %w", rec.TimeSpentMins, ErrOutOfRange)
	}
	for _, score := range rec.QuizScores {
		if score < 0 || score > 100 {
			return fmt.Errorf("restore quiz score %.1f: %w", score, ErrOutOfRange)
		}
	}

	byModule := s.records[rec.UserID]
	if byModule == nil {
		byModule = make(map[string]*Record)
		s.records[rec.UserID] = byModule
	}
	stored := rec
	stored.QuizScores = slices.Clone(rec.QuizScores)
	byModule[rec.ModuleID] = &stored
	return nil
}

// Count returns the total number of records across all users.
func (s *Store) Count() int {
	n := 0
	for _, byModule := range s.records {
		n += len(byModule)
	}
	return n
}

// snapshotRecord copies a record so callers cannot reach store state.
func snapshotRecord(rec *Record) Record {
	out := *rec
	out.QuizScores = slices.Clone(rec.QuizScores)
	return out
}

func clampPct(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

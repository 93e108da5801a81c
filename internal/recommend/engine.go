package recommend

import (
	"sort"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/progress"
)

// Config holds the score thresholds for difficulty-band targeting.
// Shared defaults with the feedback tiers.
type Config struct {
	AdvanceScore float64 // rolling average at or above targets a harder band
	EaseScore    float64 // rolling average below targets an easier band
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		AdvanceScore: 80,
		EaseScore:    50,
	}
}

// ProgressSource is the read-only view of progress the engine consumes.
// *progress.Store satisfies it.
type ProgressSource interface {
	CompletedModules(userID string) map[string]bool
	Records(userID string) []progress.Record
	Aggregate(userID string) progress.Summary
}

// Engine produces ordered personalized learning paths from the catalog
// and a user's measured performance. It never mutates either.
type Engine struct {
	catalog *catalog.Catalog
	source  ProgressSource
	cfg     Config
}

// NewEngine creates an Engine over the given catalog and progress view.
func NewEngine(cat *catalog.Catalog, source ProgressSource, cfg Config) *Engine {
	return &Engine{catalog: cat, source: source, cfg: cfg}
}

// Path returns the recommended module order for a user: unlocked,
// incomplete modules ranked by distance to the target difficulty band,
// then by the user's category completion rate ascending (least-covered
// categories first), then by id. An empty result is the valid terminal
// state, not an error.
func (e *Engine) Path(userID string) []catalog.Module {
	completed := e.source.CompletedModules(userID)

	var candidates []catalog.Module
	for _, m := range e.catalog.Modules() {
		if completed[m.ID] {
			continue
		}
		if !e.catalog.IsUnlocked(m.ID, completed) {
			continue
		}
		candidates = append(candidates, m)
	}

	target := e.TargetDifficulty(userID)
	rates := e.CategoryRates(userID)

	sort.Slice(candidates, func(i, j int) bool {
		di := bandDistance(candidates[i].Difficulty, target)
		dj := bandDistance(candidates[j].Difficulty, target)
		if di != dj {
			return di < dj
		}
		ri := rates[candidates[i].Category]
		rj := rates[candidates[j].Category]
		if ri != rj {
			return ri < rj
		}
		return candidates[i].ID < candidates[j].ID
	})

	return candidates
}

// Next returns the single top recommendation.
func (e *Engine) Next(userID string) (catalog.Module, bool) {
	path := e.Path(userID)
	if len(path) == 0 {
		return catalog.Module{}, false
	}
	return path[0], true
}

// TargetDifficulty computes the band recommendations aim for: one band
// above the hardest difficulty the user has attempted when their rolling
// average is at or above AdvanceScore, one band below when it is under
// EaseScore, the attempted band otherwise. A user with no quiz history
// averages 0 and eases down (to Beginner for a fresh user).
func (e *Engine) TargetDifficulty(userID string) catalog.Difficulty {
	sum := e.source.Aggregate(userID)
	base := e.maxAttempted(userID)

	switch {
	case sum.ScoreCount > 0 && sum.AvgQuizScore >= e.cfg.AdvanceScore:
		if base < catalog.Advanced {
			return base + 1
		}
		return base
	case sum.AvgQuizScore < e.cfg.EaseScore:
		if base > catalog.Beginner {
			return base - 1
		}
		return base
	default:
		return base
	}
}

// maxAttempted returns the hardest difficulty band among modules the
// user has any record for, Beginner when there are none.
func (e *Engine) maxAttempted(userID string) catalog.Difficulty {
	max := catalog.Beginner
	for _, rec := range e.source.Records(userID) {
		m, ok := e.catalog.Module(rec.ModuleID)
		if !ok {
			continue
		}
		if m.Difficulty > max {
			max = m.Difficulty
		}
	}
	return max
}

// CategoryRates returns, per category, the share of that category's
// catalog modules the user has completed, weighted by completion
// percent. Untouched categories rate 0 and therefore rank first.
func (e *Engine) CategoryRates(userID string) map[catalog.Category]float64 {
	counts := make(map[catalog.Category]int)
	for _, m := range e.catalog.Modules() {
		counts[m.Category]++
	}

	sums := make(map[catalog.Category]float64)
	for _, rec := range e.source.Records(userID) {
		m, ok := e.catalog.Module(rec.ModuleID)
		if !ok {
			continue
		}
		sums[m.Category] += rec.CompletionPct
	}

	rates := make(map[catalog.Category]float64, len(sums))
	for cat, sum := range sums {
		if n := counts[cat]; n > 0 {
			rates[cat] = sum / float64(n)
		}
	}
	return rates
}

func bandDistance(a, b catalog.Difficulty) int {
	d := int(a) - int(b)
	if d < 0 {
		return -d
	}
	return d
}

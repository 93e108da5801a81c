package feedback

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/progress"
)

// ErrInvalidOption is returned when a chosen index falls outside the
// option set.
var ErrInvalidOption = errors.New("option index outside the option set")

// Tier classifies a rolling average quiz score.
type Tier string

const (
	TierStruggling  Tier = "struggling"
	TierProgressing Tier = "progressing"
	TierProficient  Tier = "proficient"
)

// DisplayName returns a human-readable name for a tier.
func (t Tier) DisplayName() string {
	switch t {
	case TierStruggling:
		return "Struggling"
	case TierProgressing:
		return "Progressing"
	case TierProficient:
		return "Proficient"
	default:
		return string(t)
	}
}

// Adjustment is the difficulty signal attached to a feedback result.
type Adjustment string

const (
	AdjustDecrease Adjustment = "decrease"
	AdjustHold     Adjustment = "hold"
	AdjustIncrease Adjustment = "increase"
)

// Config holds the tier boundaries and the rush heuristic.
type Config struct {
	ProficientScore float64       // rolling average at or above is Proficient
	StrugglingScore float64       // rolling average below is Struggling
	RushUnder       time.Duration // incorrect answers faster than this look rushed
}

// DefaultConfig returns the standard thresholds.
func DefaultConfig() Config {
	return Config{
		ProficientScore: 80,
		StrugglingScore: 50,
		RushUnder:       5 * time.Second,
	}
}

// TierFor maps a rolling average onto a performance tier.
func (c Config) TierFor(avg float64) Tier {
	switch {
	case avg >= c.ProficientScore:
		return TierProficient
	case avg < c.StrugglingScore:
		return TierStruggling
	default:
		return TierProgressing
	}
}

// Result is the classification of one answered question.
type Result struct {
	Correct     bool
	Tier        Tier
	Class       Class
	Message     string
	Suggestions []string
	Adjustment  Adjustment
	Rushed      bool    // incorrect and answered implausibly fast
	RollingAvg  float64 // the average the tier was derived from
	Samples     int
}

// ProgressSource is the read-only record lookup the engine needs.
// *progress.Store satisfies it.
type ProgressSource interface {
	Get(userID, moduleID string) progress.Record
}

// Engine classifies assessment interactions. It is pure: it reads the
// catalog and progress, writes nothing, and the caller decides whether
// to record the interaction.
type Engine struct {
	catalog *catalog.Catalog
	source  ProgressSource
	cfg     Config
}

// NewEngine creates an Engine over the given catalog and progress view.
func NewEngine(cat *catalog.Catalog, source ProgressSource, cfg Config) *Engine {
	return &Engine{catalog: cat, source: source, cfg: cfg}
}

// Assess classifies a single answered question: correctness against the
// question's key, tier from the user's rolling average on this module,
// one of the six fixed message classes, and a difficulty signal.
func (e *Engine) Assess(userID, moduleID string, q catalog.Question, chosen int, elapsed time.Duration) (Result, error) {
	if chosen < 0 || chosen >= len(q.Options) {
		return Result{}, fmt.Errorf("chose option %d of %d: %w", chosen, len(q.Options), ErrInvalidOption)
	}

	correct := chosen == q.Correct
	avg, samples := e.source.Get(userID, moduleID).AverageScore()
	tier := e.cfg.TierFor(avg)
	class := ClassFor(correct, tier)

	return Result{
		Correct:     correct,
		Tier:        tier,
		Class:       class,
		Message:     class.Message(),
		Suggestions: class.Suggestions(),
		Adjustment:  e.adjustment(correct, tier, moduleID),
		Rushed:      !correct && elapsed > 0 && elapsed < e.cfg.RushUnder,
		RollingAvg:  avg,
		Samples:     samples,
	}, nil
}

// adjustment derives the difficulty signal: ease off when a struggling
// user misses, push up when a proficient user answers correctly on
// anything below the hardest difficulty the catalog offers.
func (e *Engine) adjustment(correct bool, tier Tier, moduleID string) Adjustment {
	switch {
	case tier == TierStruggling && !correct:
		return AdjustDecrease
	case tier == TierProficient && correct:
		m, ok := e.catalog.Module(moduleID)
		if ok && m.Difficulty < e.catalog.MaxDifficulty() {
			return AdjustIncrease
		}
		return AdjustHold
	default:
		return AdjustHold
	}
}

// Package platform wires the catalog, roster, progress store, and the
// two engines into a single explicit context object. Callers construct
// one Platform and pass it around; nothing in here is a singleton.
package platform

import (
	"errors"
	"fmt"
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/recommend"
	"github.com/abhisek/pathwise/internal/roster"
)

var (
	ErrNotPermitted    = errors.New("role not permitted for this operation")
	ErrUnknownScenario = errors.New("unknown scenario")
)

// Config bundles the tunables of the underlying engines.
type Config struct {
	Recommend recommend.Config
	Feedback  feedback.Config
}

func DefaultConfig() Config {
	return Config{
		Recommend: recommend.DefaultConfig(),
		Feedback:  feedback.DefaultConfig(),
	}
}

// Platform owns the in-memory core state for one installation: module
// definitions, the user roster, and every progress record.
type Platform struct {
	cfg Config

	cat    *catalog.Catalog
	roster *roster.Roster
	store  *progress.Store

	recommend *recommend.Engine
	feedback  *feedback.Engine
}

func New(cat *catalog.Catalog, ros *roster.Roster, cfg Config) *Platform {
	st := progress.NewStore(ros, cat)
	return &Platform{
		cfg:       cfg,
		cat:       cat,
		roster:    ros,
		store:     st,
		recommend: recommend.NewEngine(cat, st, cfg.Recommend),
		feedback:  feedback.NewEngine(cat, st, cfg.Feedback),
	}
}

func (p *Platform) Catalog() *catalog.Catalog { return p.cat }
func (p *Platform) Roster() *roster.Roster    { return p.roster }
func (p *Platform) Progress() *progress.Store { return p.store }
func (p *Platform) Config() Config            { return p.cfg }

// PersonalizedPath returns the ordered list of unlocked, incomplete
// modules for the user, nearest to their target difficulty first.
func (p *Platform) PersonalizedPath(userID string) ([]catalog.Module, error) {
	if !p.roster.HasUser(userID) {
		return nil, fmt.Errorf("user %q: %w", userID, progress.ErrInvalidUser)
	}
	return p.recommend.Path(userID), nil
}

// NextModule returns the single best recommendation, if any.
func (p *Platform) NextModule(userID string) (catalog.Module, bool, error) {
	if !p.roster.HasUser(userID) {
		return catalog.Module{}, false, fmt.Errorf("user %q: %w", userID, progress.ErrInvalidUser)
	}
	m, ok := p.recommend.Next(userID)
	return m, ok, nil
}

// TargetDifficulty reports the band the recommender is currently
// steering the user toward.
func (p *Platform) TargetDifficulty(userID string) (catalog.Difficulty, error) {
	if !p.roster.HasUser(userID) {
		return 0, fmt.Errorf("user %q: %w", userID, progress.ErrInvalidUser)
	}
	return p.recommend.TargetDifficulty(userID), nil
}

// AggregateProgress summarizes all of a user's records.
func (p *Platform) AggregateProgress(userID string) (progress.Summary, error) {
	if !p.roster.HasUser(userID) {
		return progress.Summary{}, fmt.Errorf("user %q: %w", userID, progress.ErrInvalidUser)
	}
	return p.store.Aggregate(userID), nil
}

// StrongestCategory returns the category the user has covered best,
// with its completion rate. ok is false when nothing has been touched.
func (p *Platform) StrongestCategory(userID string) (catalog.Category, float64, bool) {
	var best catalog.Category
	bestRate := -1.0
	for cat, rate := range p.recommend.CategoryRates(userID) {
		if rate > bestRate || (rate == bestRate && cat < best) {
			best, bestRate = cat, rate
		}
	}
	if bestRate <= 0 {
		return "", 0, false
	}
	return best, bestRate, true
}

// UserRecords returns the user's per-module records sorted by module id.
func (p *Platform) UserRecords(userID string) ([]progress.Record, error) {
	if !p.roster.HasUser(userID) {
		return nil, fmt.Errorf("user %q: %w", userID, progress.ErrInvalidUser)
	}
	return p.store.Records(userID), nil
}

// Assess classifies a single answered question without recording
// anything. Use RecordInteraction to classify and record in one step.
func (p *Platform) Assess(userID, moduleID string, q catalog.Question, chosen int, elapsed time.Duration) (feedback.Result, error) {
	if !p.roster.HasUser(userID) {
		return feedback.Result{}, fmt.Errorf("user %q: %w", userID, progress.ErrInvalidUser)
	}
	if !p.cat.HasModule(moduleID) {
		return feedback.Result{}, fmt.Errorf("module %q: %w", moduleID, progress.ErrInvalidModule)
	}
	return p.feedback.Assess(userID, moduleID, q, chosen, elapsed)
}

// PracticeScenario scores a chosen option of a decision scenario. Pure;
// scenario outcomes are never stored.
func (p *Platform) PracticeScenario(scenarioID string, chosen int) (feedback.ScenarioOutcome, error) {
	sc, ok := p.cat.Scenario(scenarioID)
	if !ok {
		return feedback.ScenarioOutcome{}, fmt.Errorf("scenario %q: %w", scenarioID, ErrUnknownScenario)
	}
	return feedback.ScoreScenario(sc, chosen)
}

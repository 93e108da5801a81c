package platform

import (
	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/progress"
	"github.com/abhisek/pathwise/internal/recommend"
	"github.com/abhisek/pathwise/internal/roster"
)

// Snapshot is the platform's entire state in flat, serializable form:
// content definitions, the roster, and every progress record. It knows
// nothing about ranking or feedback.
type Snapshot struct {
	Modules   []catalog.Module   `json:"modules"`
	Scenarios []catalog.Scenario `json:"scenarios"`
	Users     []roster.User      `json:"users"`
	Records   []progress.Record  `json:"records"`
}

// Snapshot exports the current state. Slices are ordered so that two
// exports of the same state are identical.
func (p *Platform) Snapshot() Snapshot {
	return Snapshot{
		Modules:   p.cat.Modules(),
		Scenarios: p.cat.Scenarios(),
		Users:     p.roster.Users(),
		Records:   p.store.AllRecords(),
	}
}

// Restore replaces the platform's state with the snapshot's. The whole
// snapshot is validated first: duplicate or dangling ids and values
// outside their ranges are rejected, and the current state is kept
// untouched on any failure.
func (p *Platform) Restore(snap Snapshot) error {
	cat, err := catalog.Load(snap.Modules, snap.Scenarios)
	if err != nil {
		return err
	}

	ros := roster.New()
	for _, u := range snap.Users {
		if err := ros.Add(u); err != nil {
			return err
		}
	}

	st := progress.NewStore(ros, cat)
	for _, rec := range snap.Records {
		if err := st.Put(rec); err != nil {
			return err
		}
	}

	p.cat = cat
	p.roster = ros
	p.store = st
	p.recommend = recommend.NewEngine(cat, st, p.cfg.Recommend)
	p.feedback = feedback.NewEngine(cat, st, p.cfg.Feedback)
	return nil
}

package platform

import (
	"time"

	"github.com/abhisek/pathwise/internal/catalog"
	"github.com/abhisek/pathwise/internal/feedback"
	"github.com/abhisek/pathwise/internal/progress"
)

// Interaction is one learning event: a progress report, optionally
// paired with the question that produced it.
type Interaction struct {
	UserID        string
	ModuleID      string
	CompletionPct float64
	TimeSpentMins int
	QuizScore     *float64 // nil when the event carries no score

	// When Question is set the result also carries the feedback
	// classification for this answer.
	Question *catalog.Question
	Chosen   int
	Elapsed  time.Duration
}

type InteractionResult struct {
	Update   progress.UpdateResult
	Feedback *feedback.Result // nil when the interaction had no question
}

// RecordInteraction classifies the event (when it carries a question)
// and merges it into the user's progress record. Classification runs
// against the history before this event, so the feedback reflects the
// standing the user brought into the answer. Either both steps apply
// or neither does.
func (p *Platform) RecordInteraction(in Interaction) (InteractionResult, error) {
	var res InteractionResult

	if in.Question != nil {
		fb, err := p.Assess(in.UserID, in.ModuleID, *in.Question, in.Chosen, in.Elapsed)
		if err != nil {
			return InteractionResult{}, err
		}
		res.Feedback = &fb
	}

	upd, err := p.store.Update(in.UserID, in.ModuleID, in.CompletionPct, in.TimeSpentMins, in.QuizScore)
	if err != nil {
		return InteractionResult{}, err
	}
	res.Update = upd
	return res, nil
}

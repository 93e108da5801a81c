package progress

import "time"

// Record tracks one user's progress through one module. Completion only
// ever rises; time accumulates; quiz scores are append-only history.
type Record struct {
	UserID        string    `json:"user_id"`
	ModuleID      string    `json:"module_id"`
	CompletionPct float64   `json:"completion_pct"`
	TimeSpentMins int       `json:"time_spent_mins"`
	QuizScores    []float64 `json:"quiz_scores,omitempty"`
	LastUpdated   time.Time `json:"last_updated"`
}

// Completed reports whether the module is fully complete. Exactly 100.0
// counts; 99.9 does not.
func (r Record) Completed() bool {
	return r.CompletionPct == 100.0
}

// Started reports whether the record carries any progress at all.
func (r Record) Started() bool {
	return r.CompletionPct > 0 || r.TimeSpentMins > 0 || len(r.QuizScores) > 0
}

// AverageScore returns the mean quiz score and the number of samples.
// With zero samples the mean is 0; callers check the count first.
func (r Record) AverageScore() (float64, int) {
	if len(r.QuizScores) == 0 {
		return 0, 0
	}
	var sum float64
	for _, s := range r.QuizScores {
		sum += s
	}
	return sum / float64(len(r.QuizScores)), len(r.QuizScores)
}

// Summary aggregates a user's progress across every module they have
// touched.
type Summary struct {
	OverallCompletion float64 // mean completion over the user's records
	TotalTimeMins     int
	AvgQuizScore      float64 // 0 when ScoreCount is 0
	ScoreCount        int
	ModulesCompleted  int
	ModulesInProgress int
}

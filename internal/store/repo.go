package store

import (
	"context"
	"time"

	"github.com/abhisek/pathwise/internal/platform"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// SnapshotData is the persisted form of the platform state.
type SnapshotData struct {
	Version int               `json:"version"`
	State   platform.Snapshot `json:"state"`
}

// SnapshotVersion is written into every new snapshot.
const SnapshotVersion = 1

// Snapshot represents a point-in-time capture of platform state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages platform state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// InteractionEventData captures one progress update.
type InteractionEventData struct {
	UserID             string
	ModuleID           string
	CompletionPct      float64
	TimeSpentMins      int
	QuizScore          *float64
	Created            bool
	CompletionAdvanced bool
}

// InteractionEvent is a stored interaction read back from the log.
type InteractionEvent struct {
	Sequence      int64
	Timestamp     time.Time
	UserID        string
	ModuleID      string
	CompletionPct float64
	TimeSpentMins int
	QuizScore     *float64
}

// FeedbackEventData captures the classification of one answer.
type FeedbackEventData struct {
	SessionID  string // groups the answers of one assessment run, may be empty
	UserID     string
	ModuleID   string
	Prompt     string
	Chosen     int
	Correct    bool
	Tier       string
	Class      string
	Adjustment string
	Rushed     bool
	ElapsedMs  int64
}

// RosterEventData captures a roster change.
type RosterEventData struct {
	UserID   string
	Username string
	Role     string
	Action   string
}

// Roster event actions.
const (
	RosterActionCreated       = "created"
	RosterActionProgressReset = "progress_reset"
)

// FeedbackBreakdown summarizes the feedback log.
type FeedbackBreakdown struct {
	Total        int
	Correct      int
	Rushed       int
	ByClass      map[string]int
	ByAdjustment map[string]int
}

// EventRepo provides append and query access to the event log.
type EventRepo interface {
	// AppendInteraction records a progress update event.
	AppendInteraction(ctx context.Context, data InteractionEventData) error

	// AppendFeedback records an answer classification event.
	AppendFeedback(ctx context.Context, data FeedbackEventData) error

	// AppendRosterChange records a roster change event.
	AppendRosterChange(ctx context.Context, data RosterEventData) error

	// LastSequence returns the highest sequence assigned so far, 0 when
	// the log is empty.
	LastSequence(ctx context.Context) (int64, error)

	// InteractionCount returns the number of interaction events, for one
	// user or (with an empty id) overall.
	InteractionCount(ctx context.Context, userID string) (int, error)

	// LatestInteractionTime returns the timestamp of the user's most
	// recent interaction, zero if none exist.
	LatestInteractionTime(ctx context.Context, userID string) (time.Time, error)

	// RecentInteractions returns interaction events newest first.
	RecentInteractions(ctx context.Context, opts QueryOpts) ([]InteractionEvent, error)

	// FeedbackStats summarizes all feedback events.
	FeedbackStats(ctx context.Context) (FeedbackBreakdown, error)
}

// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// FeedbackEvent is the predicate function for feedbackevent builders.
type FeedbackEvent func(*sql.Selector)

// InteractionEvent is the predicate function for interactionevent builders.
type InteractionEvent func(*sql.Selector)

// RosterEvent is the predicate function for rosterevent builders.
type RosterEvent func(*sql.Selector)

// Snapshot is the predicate function for snapshot builders.
type Snapshot func(*sql.Selector)

// Code generated by ent, DO NOT EDIT.

package interactionevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interactionevent type in the database.
	Label = "interaction_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldModuleID holds the string denoting the module_id field in the database.
	FieldModuleID = "module_id"
	// FieldCompletionPct holds the string denoting the completion_pct field in the database.
	FieldCompletionPct = "completion_pct"
	// FieldTimeSpentMins holds the string denoting the time_spent_mins field in the database.
	FieldTimeSpentMins = "time_spent_mins"
	// FieldQuizScore holds the string denoting the quiz_score field in the database.
	FieldQuizScore = "quiz_score"
	// FieldCreated holds the string denoting the created field in the database.
	FieldCreated = "created"
	// FieldCompletionAdvanced holds the string denoting the completion_advanced field in the database.
	FieldCompletionAdvanced = "completion_advanced"
	// Table holds the table name of the interactionevent in the database.
	Table = "interaction_events"
)

// Columns holds all SQL columns for interactionevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldUserID,
	FieldModuleID,
	FieldCompletionPct,
	FieldTimeSpentMins,
	FieldQuizScore,
	FieldCreated,
	FieldCompletionAdvanced,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	ModuleIDValidator func(string) error
)

// OrderOption defines the ordering options for the InteractionEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByModuleID orders the results by the module_id field.
func ByModuleID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModuleID, opts...).ToFunc()
}

// ByCompletionPct orders the results by the completion_pct field.
func ByCompletionPct(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionPct, opts...).ToFunc()
}

// ByTimeSpentMins orders the results by the time_spent_mins field.
func ByTimeSpentMins(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeSpentMins, opts...).ToFunc()
}

// ByQuizScore orders the results by the quiz_score field.
func ByQuizScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQuizScore, opts...).ToFunc()
}

// ByCreated orders the results by the created field.
func ByCreated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreated, opts...).ToFunc()
}

// ByCompletionAdvanced orders the results by the completion_advanced field.
func ByCompletionAdvanced(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletionAdvanced, opts...).ToFunc()
}

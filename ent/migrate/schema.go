// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// FeedbackEventsColumns holds the columns for the "feedback_events" table.
	FeedbackEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "session_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "prompt", Type: field.TypeString},
		{Name: "chosen", Type: field.TypeInt},
		{Name: "correct", Type: field.TypeBool},
		{Name: "tier", Type: field.TypeString},
		{Name: "class", Type: field.TypeString},
		{Name: "adjustment", Type: field.TypeString},
		{Name: "rushed", Type: field.TypeBool},
		{Name: "elapsed_ms", Type: field.TypeInt64},
	}
	// FeedbackEventsTable holds the schema information for the "feedback_events" table.
	FeedbackEventsTable = &schema.Table{
		Name:       "feedback_events",
		Columns:    FeedbackEventsColumns,
		PrimaryKey: []*schema.Column{FeedbackEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "feedbackevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[1]},
			},
			{
				Name:    "feedbackevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[2]},
			},
			{
				Name:    "feedbackevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[4]},
			},
			{
				Name:    "feedbackevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[5]},
			},
			{
				Name:    "feedbackevent_correct",
				Unique:  false,
				Columns: []*schema.Column{FeedbackEventsColumns[8]},
			},
		},
	}
	// InteractionEventsColumns holds the columns for the "interaction_events" table.
	InteractionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "module_id", Type: field.TypeString},
		{Name: "completion_pct", Type: field.TypeFloat64},
		{Name: "time_spent_mins", Type: field.TypeInt},
		{Name: "quiz_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "created", Type: field.TypeBool},
		{Name: "completion_advanced", Type: field.TypeBool},
	}
	// InteractionEventsTable holds the schema information for the "interaction_events" table.
	InteractionEventsTable = &schema.Table{
		Name:       "interaction_events",
		Columns:    InteractionEventsColumns,
		PrimaryKey: []*schema.Column{InteractionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interactionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[1]},
			},
			{
				Name:    "interactionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[2]},
			},
			{
				Name:    "interactionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[3]},
			},
			{
				Name:    "interactionevent_module_id",
				Unique:  false,
				Columns: []*schema.Column{InteractionEventsColumns[4]},
			},
		},
	}
	// RosterEventsColumns holds the columns for the "roster_events" table.
	RosterEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "username", Type: field.TypeString},
		{Name: "role", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
	}
	// RosterEventsTable holds the schema information for the "roster_events" table.
	RosterEventsTable = &schema.Table{
		Name:       "roster_events",
		Columns:    RosterEventsColumns,
		PrimaryKey: []*schema.Column{RosterEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rosterevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{RosterEventsColumns[1]},
			},
			{
				Name:    "rosterevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{RosterEventsColumns[2]},
			},
			{
				Name:    "rosterevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{RosterEventsColumns[3]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		FeedbackEventsTable,
		InteractionEventsTable,
		RosterEventsTable,
		SnapshotsTable,
	}
)

func init() {
}

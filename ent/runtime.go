// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/pathwise/ent/feedbackevent"
	"github.com/abhisek/pathwise/ent/interactionevent"
	"github.com/abhisek/pathwise/ent/rosterevent"
	"github.com/abhisek/pathwise/ent/schema"
	"github.com/abhisek/pathwise/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	feedbackeventMixin := schema.FeedbackEvent{}.Mixin()
	feedbackeventMixinFields0 := feedbackeventMixin[0].Fields()
	_ = feedbackeventMixinFields0
	feedbackeventFields := schema.FeedbackEvent{}.Fields()
	_ = feedbackeventFields
	// feedbackeventDescTimestamp is the schema descriptor for timestamp field.
	feedbackeventDescTimestamp := feedbackeventMixinFields0[1].Descriptor()
	// feedbackevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	feedbackevent.DefaultTimestamp = feedbackeventDescTimestamp.Default.(func() time.Time)
	// feedbackeventDescUserID is the schema descriptor for user_id field.
	feedbackeventDescUserID := feedbackeventFields[1].Descriptor()
	// feedbackevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	feedbackevent.UserIDValidator = feedbackeventDescUserID.Validators[0].(func(string) error)
	// feedbackeventDescModuleID is the schema descriptor for module_id field.
	feedbackeventDescModuleID := feedbackeventFields[2].Descriptor()
	// feedbackevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	feedbackevent.ModuleIDValidator = feedbackeventDescModuleID.Validators[0].(func(string) error)
	// feedbackeventDescPrompt is the schema descriptor for prompt field.
	feedbackeventDescPrompt := feedbackeventFields[3].Descriptor()
	// feedbackevent.PromptValidator is a validator for the "prompt" field. It is called by the builders before save.
	feedbackevent.PromptValidator = feedbackeventDescPrompt.Validators[0].(func(string) error)
	// feedbackeventDescTier is the schema descriptor for tier field.
	feedbackeventDescTier := feedbackeventFields[6].Descriptor()
	// feedbackevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	feedbackevent.TierValidator = feedbackeventDescTier.Validators[0].(func(string) error)
	// feedbackeventDescClass is the schema descriptor for class field.
	feedbackeventDescClass := feedbackeventFields[7].Descriptor()
	// feedbackevent.ClassValidator is a validator for the "class" field. It is called by the builders before save.
	feedbackevent.ClassValidator = feedbackeventDescClass.Validators[0].(func(string) error)
	// feedbackeventDescAdjustment is the schema descriptor for adjustment field.
	feedbackeventDescAdjustment := feedbackeventFields[8].Descriptor()
	// feedbackevent.AdjustmentValidator is a validator for the "adjustment" field. It is called by the builders before save.
	feedbackevent.AdjustmentValidator = feedbackeventDescAdjustment.Validators[0].(func(string) error)
	interactioneventMixin := schema.InteractionEvent{}.Mixin()
	interactioneventMixinFields0 := interactioneventMixin[0].Fields()
	_ = interactioneventMixinFields0
	interactioneventFields := schema.InteractionEvent{}.Fields()
	_ = interactioneventFields
	// interactioneventDescTimestamp is the schema descriptor for timestamp field.
	interactioneventDescTimestamp := interactioneventMixinFields0[1].Descriptor()
	// interactionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	interactionevent.DefaultTimestamp = interactioneventDescTimestamp.Default.(func() time.Time)
	// interactioneventDescUserID is the schema descriptor for user_id field.
	interactioneventDescUserID := interactioneventFields[0].Descriptor()
	// interactionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	interactionevent.UserIDValidator = interactioneventDescUserID.Validators[0].(func(string) error)
	// interactioneventDescModuleID is the schema descriptor for module_id field.
	interactioneventDescModuleID := interactioneventFields[1].Descriptor()
	// interactionevent.ModuleIDValidator is a validator for the "module_id" field. It is called by the builders before save.
	interactionevent.ModuleIDValidator = interactioneventDescModuleID.Validators[0].(func(string) error)
	rostereventMixin := schema.RosterEvent{}.Mixin()
	rostereventMixinFields0 := rostereventMixin[0].Fields()
	_ = rostereventMixinFields0
	rostereventFields := schema.RosterEvent{}.Fields()
	_ = rostereventFields
	// rostereventDescTimestamp is the schema descriptor for timestamp field.
	rostereventDescTimestamp := rostereventMixinFields0[1].Descriptor()
	// rosterevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	rosterevent.DefaultTimestamp = rostereventDescTimestamp.Default.(func() time.Time)
	// rostereventDescUserID is the schema descriptor for user_id field.
	rostereventDescUserID := rostereventFields[0].Descriptor()
	// rosterevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	rosterevent.UserIDValidator = rostereventDescUserID.Validators[0].(func(string) error)
	// rostereventDescUsername is the schema descriptor for username field.
	rostereventDescUsername := rostereventFields[1].Descriptor()
	// rosterevent.UsernameValidator is a validator for the "username" field. It is called by the builders before save.
	rosterevent.UsernameValidator = rostereventDescUsername.Validators[0].(func(string) error)
	// rostereventDescRole is the schema descriptor for role field.
	rostereventDescRole := rostereventFields[2].Descriptor()
	// rosterevent.RoleValidator is a validator for the "role" field. It is called by the builders before save.
	rosterevent.RoleValidator = rostereventDescRole.Validators[0].(func(string) error)
	// rostereventDescAction is the schema descriptor for action field.
	rostereventDescAction := rostereventFields[3].Descriptor()
	// rosterevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	rosterevent.ActionValidator = rostereventDescAction.Validators[0].(func(string) error)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}

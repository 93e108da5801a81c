// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/feedbackevent"
	"github.com/abhisek/pathwise/ent/predicate"
)

// FeedbackEventUpdate is the builder for updating FeedbackEvent entities.
type FeedbackEventUpdate struct {
	config
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdate) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *FeedbackEventUpdate) SetSessionID(v string) *FeedbackEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableSessionID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *FeedbackEventUpdate) ClearSessionID() *FeedbackEventUpdate {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FeedbackEventUpdate) SetUserID(v string) *FeedbackEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableUserID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *FeedbackEventUpdate) SetModuleID(v string) *FeedbackEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableModuleID(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *FeedbackEventUpdate) SetPrompt(v string) *FeedbackEventUpdate {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillablePrompt(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetChosen sets the "chosen" field.
func (_u *FeedbackEventUpdate) SetChosen(v int) *FeedbackEventUpdate {
	_u.mutation.ResetChosen()
	_u.mutation.SetChosen(v)
	return _u
}

// SetNillableChosen sets the "chosen" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableChosen(v *int) *FeedbackEventUpdate {
	if v != nil {
		_u.SetChosen(*v)
	}
	return _u
}

// AddChosen adds value to the "chosen" field.
func (_u *FeedbackEventUpdate) AddChosen(v int) *FeedbackEventUpdate {
	_u.mutation.AddChosen(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *FeedbackEventUpdate) SetCorrect(v bool) *FeedbackEventUpdate {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableCorrect(v *bool) *FeedbackEventUpdate {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *FeedbackEventUpdate) SetTier(v string) *FeedbackEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableTier(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetClass sets the "class" field.
func (_u *FeedbackEventUpdate) SetClass(v string) *FeedbackEventUpdate {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableClass(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetAdjustment sets the "adjustment" field.
func (_u *FeedbackEventUpdate) SetAdjustment(v string) *FeedbackEventUpdate {
	_u.mutation.SetAdjustment(v)
	return _u
}

// SetNillableAdjustment sets the "adjustment" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableAdjustment(v *string) *FeedbackEventUpdate {
	if v != nil {
		_u.SetAdjustment(*v)
	}
	return _u
}

// SetRushed sets the "rushed" field.
func (_u *FeedbackEventUpdate) SetRushed(v bool) *FeedbackEventUpdate {
	_u.mutation.SetRushed(v)
	return _u
}

// SetNillableRushed sets the "rushed" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableRushed(v *bool) *FeedbackEventUpdate {
	if v != nil {
		_u.SetRushed(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *FeedbackEventUpdate) SetElapsedMs(v int64) *FeedbackEventUpdate {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *FeedbackEventUpdate) SetNillableElapsedMs(v *int64) *FeedbackEventUpdate {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *FeedbackEventUpdate) AddElapsedMs(v int64) *FeedbackEventUpdate {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdate) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *FeedbackEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *FeedbackEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := feedbackevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := feedbackevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := feedbackevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := feedbackevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Class(); ok {
		if err := feedbackevent.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.class": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Adjustment(); ok {
		if err := feedbackevent.AdjustmentValidator(v); err != nil {
			return &ValidationError{Name: "adjustment", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.adjustment": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(feedbackevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(feedbackevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(feedbackevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(feedbackevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(feedbackevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chosen(); ok {
		_spec.SetField(feedbackevent.FieldChosen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChosen(); ok {
		_spec.AddField(feedbackevent.FieldChosen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(feedbackevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(feedbackevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(feedbackevent.FieldClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adjustment(); ok {
		_spec.SetField(feedbackevent.FieldAdjustment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rushed(); ok {
		_spec.SetField(feedbackevent.FieldRushed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(feedbackevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(feedbackevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// FeedbackEventUpdateOne is the builder for updating a single FeedbackEvent entity.
type FeedbackEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *FeedbackEventMutation
}

// SetSessionID sets the "session_id" field.
func (_u *FeedbackEventUpdateOne) SetSessionID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableSessionID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// ClearSessionID clears the value of the "session_id" field.
func (_u *FeedbackEventUpdateOne) ClearSessionID() *FeedbackEventUpdateOne {
	_u.mutation.ClearSessionID()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *FeedbackEventUpdateOne) SetUserID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableUserID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *FeedbackEventUpdateOne) SetModuleID(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableModuleID(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetPrompt sets the "prompt" field.
func (_u *FeedbackEventUpdateOne) SetPrompt(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetPrompt(v)
	return _u
}

// SetNillablePrompt sets the "prompt" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillablePrompt(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetPrompt(*v)
	}
	return _u
}

// SetChosen sets the "chosen" field.
func (_u *FeedbackEventUpdateOne) SetChosen(v int) *FeedbackEventUpdateOne {
	_u.mutation.ResetChosen()
	_u.mutation.SetChosen(v)
	return _u
}

// SetNillableChosen sets the "chosen" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableChosen(v *int) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetChosen(*v)
	}
	return _u
}

// AddChosen adds value to the "chosen" field.
func (_u *FeedbackEventUpdateOne) AddChosen(v int) *FeedbackEventUpdateOne {
	_u.mutation.AddChosen(v)
	return _u
}

// SetCorrect sets the "correct" field.
func (_u *FeedbackEventUpdateOne) SetCorrect(v bool) *FeedbackEventUpdateOne {
	_u.mutation.SetCorrect(v)
	return _u
}

// SetNillableCorrect sets the "correct" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableCorrect(v *bool) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetCorrect(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *FeedbackEventUpdateOne) SetTier(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableTier(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetClass sets the "class" field.
func (_u *FeedbackEventUpdateOne) SetClass(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetClass(v)
	return _u
}

// SetNillableClass sets the "class" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableClass(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetClass(*v)
	}
	return _u
}

// SetAdjustment sets the "adjustment" field.
func (_u *FeedbackEventUpdateOne) SetAdjustment(v string) *FeedbackEventUpdateOne {
	_u.mutation.SetAdjustment(v)
	return _u
}

// SetNillableAdjustment sets the "adjustment" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableAdjustment(v *string) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetAdjustment(*v)
	}
	return _u
}

// SetRushed sets the "rushed" field.
func (_u *FeedbackEventUpdateOne) SetRushed(v bool) *FeedbackEventUpdateOne {
	_u.mutation.SetRushed(v)
	return _u
}

// SetNillableRushed sets the "rushed" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableRushed(v *bool) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetRushed(*v)
	}
	return _u
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_u *FeedbackEventUpdateOne) SetElapsedMs(v int64) *FeedbackEventUpdateOne {
	_u.mutation.ResetElapsedMs()
	_u.mutation.SetElapsedMs(v)
	return _u
}

// SetNillableElapsedMs sets the "elapsed_ms" field if the given value is not nil.
func (_u *FeedbackEventUpdateOne) SetNillableElapsedMs(v *int64) *FeedbackEventUpdateOne {
	if v != nil {
		_u.SetElapsedMs(*v)
	}
	return _u
}

// AddElapsedMs adds value to the "elapsed_ms" field.
func (_u *FeedbackEventUpdateOne) AddElapsedMs(v int64) *FeedbackEventUpdateOne {
	_u.mutation.AddElapsedMs(v)
	return _u
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_u *FeedbackEventUpdateOne) Mutation() *FeedbackEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the FeedbackEventUpdate builder.
func (_u *FeedbackEventUpdateOne) Where(ps ...predicate.FeedbackEvent) *FeedbackEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *FeedbackEventUpdateOne) Select(field string, fields ...string) *FeedbackEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated FeedbackEvent entity.
func (_u *FeedbackEventUpdateOne) Save(ctx context.Context) (*FeedbackEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) SaveX(ctx context.Context) *FeedbackEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *FeedbackEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *FeedbackEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *FeedbackEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := feedbackevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := feedbackevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.module_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Prompt(); ok {
		if err := feedbackevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.prompt": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := feedbackevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Class(); ok {
		if err := feedbackevent.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.class": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Adjustment(); ok {
		if err := feedbackevent.AdjustmentValidator(v); err != nil {
			return &ValidationError{Name: "adjustment", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.adjustment": %w`, err)}
		}
	}
	return nil
}

func (_u *FeedbackEventUpdateOne) sqlSave(ctx context.Context) (_node *FeedbackEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(feedbackevent.Table, feedbackevent.Columns, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "FeedbackEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, feedbackevent.FieldID)
		for _, f := range fields {
			if !feedbackevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != feedbackevent.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(feedbackevent.FieldSessionID, field.TypeString, value)
	}
	if _u.mutation.SessionIDCleared() {
		_spec.ClearField(feedbackevent.FieldSessionID, field.TypeString)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(feedbackevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(feedbackevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Prompt(); ok {
		_spec.SetField(feedbackevent.FieldPrompt, field.TypeString, value)
	}
	if value, ok := _u.mutation.Chosen(); ok {
		_spec.SetField(feedbackevent.FieldChosen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedChosen(); ok {
		_spec.AddField(feedbackevent.FieldChosen, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Correct(); ok {
		_spec.SetField(feedbackevent.FieldCorrect, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(feedbackevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Class(); ok {
		_spec.SetField(feedbackevent.FieldClass, field.TypeString, value)
	}
	if value, ok := _u.mutation.Adjustment(); ok {
		_spec.SetField(feedbackevent.FieldAdjustment, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rushed(); ok {
		_spec.SetField(feedbackevent.FieldRushed, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ElapsedMs(); ok {
		_spec.SetField(feedbackevent.FieldElapsedMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedElapsedMs(); ok {
		_spec.AddField(feedbackevent.FieldElapsedMs, field.TypeInt64, value)
	}
	_node = &FeedbackEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{feedbackevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/interactionevent"
	"github.com/abhisek/pathwise/ent/predicate"
)

// InteractionEventUpdate is the builder for updating InteractionEvent entities.
type InteractionEventUpdate struct {
	config
	hooks    []Hook
	mutation *InteractionEventMutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdate) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *InteractionEventUpdate) SetUserID(v string) *InteractionEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableUserID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *InteractionEventUpdate) SetModuleID(v string) *InteractionEventUpdate {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableModuleID(v *string) *InteractionEventUpdate {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetCompletionPct sets the "completion_pct" field.
func (_u *InteractionEventUpdate) SetCompletionPct(v float64) *InteractionEventUpdate {
	_u.mutation.ResetCompletionPct()
	_u.mutation.SetCompletionPct(v)
	return _u
}

// SetNillableCompletionPct sets the "completion_pct" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableCompletionPct(v *float64) *InteractionEventUpdate {
	if v != nil {
		_u.SetCompletionPct(*v)
	}
	return _u
}

// AddCompletionPct adds value to the "completion_pct" field.
func (_u *InteractionEventUpdate) AddCompletionPct(v float64) *InteractionEventUpdate {
	_u.mutation.AddCompletionPct(v)
	return _u
}

// SetTimeSpentMins sets the "time_spent_mins" field.
func (_u *InteractionEventUpdate) SetTimeSpentMins(v int) *InteractionEventUpdate {
	_u.mutation.ResetTimeSpentMins()
	_u.mutation.SetTimeSpentMins(v)
	return _u
}

// SetNillableTimeSpentMins sets the "time_spent_mins" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableTimeSpentMins(v *int) *InteractionEventUpdate {
	if v != nil {
		_u.SetTimeSpentMins(*v)
	}
	return _u
}

// AddTimeSpentMins adds value to the "time_spent_mins" field.
func (_u *InteractionEventUpdate) AddTimeSpentMins(v int) *InteractionEventUpdate {
	_u.mutation.AddTimeSpentMins(v)
	return _u
}

// SetQuizScore sets the "quiz_score" field.
func (_u *InteractionEventUpdate) SetQuizScore(v float64) *InteractionEventUpdate {
	_u.mutation.ResetQuizScore()
	_u.mutation.SetQuizScore(v)
	return _u
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableQuizScore(v *float64) *InteractionEventUpdate {
	if v != nil {
		_u.SetQuizScore(*v)
	}
	return _u
}

// AddQuizScore adds value to the "quiz_score" field.
func (_u *InteractionEventUpdate) AddQuizScore(v float64) *InteractionEventUpdate {
	_u.mutation.AddQuizScore(v)
	return _u
}

// ClearQuizScore clears the value of the "quiz_score" field.
func (_u *InteractionEventUpdate) ClearQuizScore() *InteractionEventUpdate {
	_u.mutation.ClearQuizScore()
	return _u
}

// SetCreated sets the "created" field.
func (_u *InteractionEventUpdate) SetCreated(v bool) *InteractionEventUpdate {
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableCreated(v *bool) *InteractionEventUpdate {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// SetCompletionAdvanced sets the "completion_advanced" field.
func (_u *InteractionEventUpdate) SetCompletionAdvanced(v bool) *InteractionEventUpdate {
	_u.mutation.SetCompletionAdvanced(v)
	return _u
}

// SetNillableCompletionAdvanced sets the "completion_advanced" field if the given value is not nil.
func (_u *InteractionEventUpdate) SetNillableCompletionAdvanced(v *bool) *InteractionEventUpdate {
	if v != nil {
		_u.SetCompletionAdvanced(*v)
	}
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdate) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InteractionEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InteractionEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interactionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := interactionevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.module_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(interactionevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletionPct(); ok {
		_spec.SetField(interactionevent.FieldCompletionPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionPct(); ok {
		_spec.AddField(interactionevent.FieldCompletionPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentMins(); ok {
		_spec.SetField(interactionevent.FieldTimeSpentMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMins(); ok {
		_spec.AddField(interactionevent.FieldTimeSpentMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizScore(); ok {
		_spec.SetField(interactionevent.FieldQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuizScore(); ok {
		_spec.AddField(interactionevent.FieldQuizScore, field.TypeFloat64, value)
	}
	if _u.mutation.QuizScoreCleared() {
		_spec.ClearField(interactionevent.FieldQuizScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(interactionevent.FieldCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletionAdvanced(); ok {
		_spec.SetField(interactionevent.FieldCompletionAdvanced, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InteractionEventUpdateOne is the builder for updating a single InteractionEvent entity.
type InteractionEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InteractionEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *InteractionEventUpdateOne) SetUserID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableUserID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetModuleID sets the "module_id" field.
func (_u *InteractionEventUpdateOne) SetModuleID(v string) *InteractionEventUpdateOne {
	_u.mutation.SetModuleID(v)
	return _u
}

// SetNillableModuleID sets the "module_id" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableModuleID(v *string) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetModuleID(*v)
	}
	return _u
}

// SetCompletionPct sets the "completion_pct" field.
func (_u *InteractionEventUpdateOne) SetCompletionPct(v float64) *InteractionEventUpdateOne {
	_u.mutation.ResetCompletionPct()
	_u.mutation.SetCompletionPct(v)
	return _u
}

// SetNillableCompletionPct sets the "completion_pct" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableCompletionPct(v *float64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetCompletionPct(*v)
	}
	return _u
}

// AddCompletionPct adds value to the "completion_pct" field.
func (_u *InteractionEventUpdateOne) AddCompletionPct(v float64) *InteractionEventUpdateOne {
	_u.mutation.AddCompletionPct(v)
	return _u
}

// SetTimeSpentMins sets the "time_spent_mins" field.
func (_u *InteractionEventUpdateOne) SetTimeSpentMins(v int) *InteractionEventUpdateOne {
	_u.mutation.ResetTimeSpentMins()
	_u.mutation.SetTimeSpentMins(v)
	return _u
}

// SetNillableTimeSpentMins sets the "time_spent_mins" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableTimeSpentMins(v *int) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetTimeSpentMins(*v)
	}
	return _u
}

// AddTimeSpentMins adds value to the "time_spent_mins" field.
func (_u *InteractionEventUpdateOne) AddTimeSpentMins(v int) *InteractionEventUpdateOne {
	_u.mutation.AddTimeSpentMins(v)
	return _u
}

// SetQuizScore sets the "quiz_score" field.
func (_u *InteractionEventUpdateOne) SetQuizScore(v float64) *InteractionEventUpdateOne {
	_u.mutation.ResetQuizScore()
	_u.mutation.SetQuizScore(v)
	return _u
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableQuizScore(v *float64) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetQuizScore(*v)
	}
	return _u
}

// AddQuizScore adds value to the "quiz_score" field.
func (_u *InteractionEventUpdateOne) AddQuizScore(v float64) *InteractionEventUpdateOne {
	_u.mutation.AddQuizScore(v)
	return _u
}

// ClearQuizScore clears the value of the "quiz_score" field.
func (_u *InteractionEventUpdateOne) ClearQuizScore() *InteractionEventUpdateOne {
	_u.mutation.ClearQuizScore()
	return _u
}

// SetCreated sets the "created" field.
func (_u *InteractionEventUpdateOne) SetCreated(v bool) *InteractionEventUpdateOne {
	_u.mutation.SetCreated(v)
	return _u
}

// SetNillableCreated sets the "created" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableCreated(v *bool) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetCreated(*v)
	}
	return _u
}

// SetCompletionAdvanced sets the "completion_advanced" field.
func (_u *InteractionEventUpdateOne) SetCompletionAdvanced(v bool) *InteractionEventUpdateOne {
	_u.mutation.SetCompletionAdvanced(v)
	return _u
}

// SetNillableCompletionAdvanced sets the "completion_advanced" field if the given value is not nil.
func (_u *InteractionEventUpdateOne) SetNillableCompletionAdvanced(v *bool) *InteractionEventUpdateOne {
	if v != nil {
		_u.SetCompletionAdvanced(*v)
	}
	return _u
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_u *InteractionEventUpdateOne) Mutation() *InteractionEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the InteractionEventUpdate builder.
func (_u *InteractionEventUpdateOne) Where(ps ...predicate.InteractionEvent) *InteractionEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InteractionEventUpdateOne) Select(field string, fields ...string) *InteractionEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InteractionEvent entity.
func (_u *InteractionEventUpdateOne) Save(ctx context.Context) (*InteractionEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) SaveX(ctx context.Context) *InteractionEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InteractionEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InteractionEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InteractionEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := interactionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleID(); ok {
		if err := interactionevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.module_id": %w`, err)}
		}
	}
	return nil
}

func (_u *InteractionEventUpdateOne) sqlSave(ctx context.Context) (_node *InteractionEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(interactionevent.Table, interactionevent.Columns, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "InteractionEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interactionevent.FieldID)
		for _, f := range fields {
			if !interactionevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interactionevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleID(); ok {
		_spec.SetField(interactionevent.FieldModuleID, field.TypeString, value)
	}
	if value, ok := _u.mutation.CompletionPct(); ok {
		_spec.SetField(interactionevent.FieldCompletionPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCompletionPct(); ok {
		_spec.AddField(interactionevent.FieldCompletionPct, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TimeSpentMins(); ok {
		_spec.SetField(interactionevent.FieldTimeSpentMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTimeSpentMins(); ok {
		_spec.AddField(interactionevent.FieldTimeSpentMins, field.TypeInt, value)
	}
	if value, ok := _u.mutation.QuizScore(); ok {
		_spec.SetField(interactionevent.FieldQuizScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQuizScore(); ok {
		_spec.AddField(interactionevent.FieldQuizScore, field.TypeFloat64, value)
	}
	if _u.mutation.QuizScoreCleared() {
		_spec.ClearField(interactionevent.FieldQuizScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Created(); ok {
		_spec.SetField(interactionevent.FieldCreated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.CompletionAdvanced(); ok {
		_spec.SetField(interactionevent.FieldCompletionAdvanced, field.TypeBool, value)
	}
	_node = &InteractionEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interactionevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/interactionevent"
)

// InteractionEventCreate is the builder for creating a InteractionEvent entity.
type InteractionEventCreate struct {
	config
	mutation *InteractionEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *InteractionEventCreate) SetSequence(v int64) *InteractionEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *InteractionEventCreate) SetTimestamp(v time.Time) *InteractionEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableTimestamp(v *time.Time) *InteractionEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *InteractionEventCreate) SetUserID(v string) *InteractionEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *InteractionEventCreate) SetModuleID(v string) *InteractionEventCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetCompletionPct sets the "completion_pct" field.
func (_c *InteractionEventCreate) SetCompletionPct(v float64) *InteractionEventCreate {
	_c.mutation.SetCompletionPct(v)
	return _c
}

// SetTimeSpentMins sets the "time_spent_mins" field.
func (_c *InteractionEventCreate) SetTimeSpentMins(v int) *InteractionEventCreate {
	_c.mutation.SetTimeSpentMins(v)
	return _c
}

// SetQuizScore sets the "quiz_score" field.
func (_c *InteractionEventCreate) SetQuizScore(v float64) *InteractionEventCreate {
	_c.mutation.SetQuizScore(v)
	return _c
}

// SetNillableQuizScore sets the "quiz_score" field if the given value is not nil.
func (_c *InteractionEventCreate) SetNillableQuizScore(v *float64) *InteractionEventCreate {
	if v != nil {
		_c.SetQuizScore(*v)
	}
	return _c
}

// SetCreated sets the "created" field.
func (_c *InteractionEventCreate) SetCreated(v bool) *InteractionEventCreate {
	_c.mutation.SetCreated(v)
	return _c
}

// SetCompletionAdvanced sets the "completion_advanced" field.
func (_c *InteractionEventCreate) SetCompletionAdvanced(v bool) *InteractionEventCreate {
	_c.mutation.SetCompletionAdvanced(v)
	return _c
}

// Mutation returns the InteractionEventMutation object of the builder.
func (_c *InteractionEventCreate) Mutation() *InteractionEventMutation {
	return _c.mutation
}

// Save creates the InteractionEvent in the database.
func (_c *InteractionEventCreate) Save(ctx context.Context) (*InteractionEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InteractionEventCreate) SaveX(ctx context.Context) *InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InteractionEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := interactionevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InteractionEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "InteractionEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "InteractionEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "InteractionEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := interactionevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "InteractionEvent.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := interactionevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "InteractionEvent.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CompletionPct(); !ok {
		return &ValidationError{Name: "completion_pct", err: errors.New(`ent: missing required field "InteractionEvent.completion_pct"`)}
	}
	if _, ok := _c.mutation.TimeSpentMins(); !ok {
		return &ValidationError{Name: "time_spent_mins", err: errors.New(`ent: missing required field "InteractionEvent.time_spent_mins"`)}
	}
	if _, ok := _c.mutation.Created(); !ok {
		return &ValidationError{Name: "created", err: errors.New(`ent: missing required field "InteractionEvent.created"`)}
	}
	if _, ok := _c.mutation.CompletionAdvanced(); !ok {
		return &ValidationError{Name: "completion_advanced", err: errors.New(`ent: missing required field "InteractionEvent.completion_advanced"`)}
	}
	return nil
}

func (_c *InteractionEventCreate) sqlSave(ctx context.Context) (*InteractionEvent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InteractionEventCreate) createSpec() (*InteractionEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &InteractionEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interactionevent.Table, sqlgraph.NewFieldSpec(interactionevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(interactionevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(interactionevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(interactionevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(interactionevent.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.CompletionPct(); ok {
		_spec.SetField(interactionevent.FieldCompletionPct, field.TypeFloat64, value)
		_node.CompletionPct = value
	}
	if value, ok := _c.mutation.TimeSpentMins(); ok {
		_spec.SetField(interactionevent.FieldTimeSpentMins, field.TypeInt, value)
		_node.TimeSpentMins = value
	}
	if value, ok := _c.mutation.QuizScore(); ok {
		_spec.SetField(interactionevent.FieldQuizScore, field.TypeFloat64, value)
		_node.QuizScore = &value
	}
	if value, ok := _c.mutation.Created(); ok {
		_spec.SetField(interactionevent.FieldCreated, field.TypeBool, value)
		_node.Created = value
	}
	if value, ok := _c.mutation.CompletionAdvanced(); ok {
		_spec.SetField(interactionevent.FieldCompletionAdvanced, field.TypeBool, value)
		_node.CompletionAdvanced = value
	}
	return _node, _spec
}

// InteractionEventCreateBulk is the builder for creating many InteractionEvent entities in bulk.
type InteractionEventCreateBulk struct {
	config
	err      error
	builders []*InteractionEventCreate
}

// Save creates the InteractionEvent entities in the database.
func (_c *InteractionEventCreateBulk) Save(ctx context.Context) ([]*InteractionEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InteractionEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InteractionEventMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InteractionEventCreateBulk) SaveX(ctx context.Context) []*InteractionEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InteractionEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InteractionEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

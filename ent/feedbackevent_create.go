// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/feedbackevent"
)

// FeedbackEventCreate is the builder for creating a FeedbackEvent entity.
type FeedbackEventCreate struct {
	config
	mutation *FeedbackEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *FeedbackEventCreate) SetSequence(v int64) *FeedbackEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *FeedbackEventCreate) SetTimestamp(v time.Time) *FeedbackEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableTimestamp(v *time.Time) *FeedbackEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *FeedbackEventCreate) SetSessionID(v string) *FeedbackEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *FeedbackEventCreate) SetNillableSessionID(v *string) *FeedbackEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *FeedbackEventCreate) SetUserID(v string) *FeedbackEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetModuleID sets the "module_id" field.
func (_c *FeedbackEventCreate) SetModuleID(v string) *FeedbackEventCreate {
	_c.mutation.SetModuleID(v)
	return _c
}

// SetPrompt sets the "prompt" field.
func (_c *FeedbackEventCreate) SetPrompt(v string) *FeedbackEventCreate {
	_c.mutation.SetPrompt(v)
	return _c
}

// SetChosen sets the "chosen" field.
func (_c *FeedbackEventCreate) SetChosen(v int) *FeedbackEventCreate {
	_c.mutation.SetChosen(v)
	return _c
}

// SetCorrect sets the "correct" field.
func (_c *FeedbackEventCreate) SetCorrect(v bool) *FeedbackEventCreate {
	_c.mutation.SetCorrect(v)
	return _c
}

// SetTier sets the "tier" field.
func (_c *FeedbackEventCreate) SetTier(v string) *FeedbackEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetClass sets the "class" field.
func (_c *FeedbackEventCreate) SetClass(v string) *FeedbackEventCreate {
	_c.mutation.SetClass(v)
	return _c
}

// SetAdjustment sets the "adjustment" field.
func (_c *FeedbackEventCreate) SetAdjustment(v string) *FeedbackEventCreate {
	_c.mutation.SetAdjustment(v)
	return _c
}

// SetRushed sets the "rushed" field.
func (_c *FeedbackEventCreate) SetRushed(v bool) *FeedbackEventCreate {
	_c.mutation.SetRushed(v)
	return _c
}

// SetElapsedMs sets the "elapsed_ms" field.
func (_c *FeedbackEventCreate) SetElapsedMs(v int64) *FeedbackEventCreate {
	_c.mutation.SetElapsedMs(v)
	return _c
}

// Mutation returns the FeedbackEventMutation object of the builder.
func (_c *FeedbackEventCreate) Mutation() *FeedbackEventMutation {
	return _c.mutation
}

// Save creates the FeedbackEvent in the database.
func (_c *FeedbackEventCreate) Save(ctx context.Context) (*FeedbackEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *FeedbackEventCreate) SaveX(ctx context.Context) *FeedbackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *FeedbackEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := feedbackevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *FeedbackEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "FeedbackEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "FeedbackEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "FeedbackEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := feedbackevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleID(); !ok {
		return &ValidationError{Name: "module_id", err: errors.New(`ent: missing required field "FeedbackEvent.module_id"`)}
	}
	if v, ok := _c.mutation.ModuleID(); ok {
		if err := feedbackevent.ModuleIDValidator(v); err != nil {
			return &ValidationError{Name: "module_id", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.module_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Prompt(); !ok {
		return &ValidationError{Name: "prompt", err: errors.New(`ent: missing required field "FeedbackEvent.prompt"`)}
	}
	if v, ok := _c.mutation.Prompt(); ok {
		if err := feedbackevent.PromptValidator(v); err != nil {
			return &ValidationError{Name: "prompt", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.prompt": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Chosen(); !ok {
		return &ValidationError{Name: "chosen", err: errors.New(`ent: missing required field "FeedbackEvent.chosen"`)}
	}
	if _, ok := _c.mutation.Correct(); !ok {
		return &ValidationError{Name: "correct", err: errors.New(`ent: missing required field "FeedbackEvent.correct"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "FeedbackEvent.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := feedbackevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Class(); !ok {
		return &ValidationError{Name: "class", err: errors.New(`ent: missing required field "FeedbackEvent.class"`)}
	}
	if v, ok := _c.mutation.Class(); ok {
		if err := feedbackevent.ClassValidator(v); err != nil {
			return &ValidationError{Name: "class", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.class": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Adjustment(); !ok {
		return &ValidationError{Name: "adjustment", err: errors.New(`ent: missing required field "FeedbackEvent.adjustment"`)}
	}
	if v, ok := _c.mutation.Adjustment(); ok {
		if err := feedbackevent.AdjustmentValidator(v); err != nil {
			return &ValidationError{Name: "adjustment", err: fmt.Errorf(`ent: validator failed for field "FeedbackEvent.adjustment": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rushed(); !ok {
		return &ValidationError{Name: "rushed", err: errors.New(`ent: missing required field "FeedbackEvent.rushed"`)}
	}
	if _, ok := _c.mutation.ElapsedMs(); !ok {
		return &ValidationError{Name: "elapsed_ms", err: errors.New(`ent: missing required field "FeedbackEvent.elapsed_ms"`)}
	}
	return nil
}

func (_c *FeedbackEventCreate) sqlSave(ctx context.Context) (*FeedbackEvent, error) {
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

func (_c *FeedbackEventCreate) createSpec() (*FeedbackEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &FeedbackEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(feedbackevent.Table, sqlgraph.NewFieldSpec(feedbackevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(feedbackevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(feedbackevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(feedbackevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(feedbackevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.ModuleID(); ok {
		_spec.SetField(feedbackevent.FieldModuleID, field.TypeString, value)
		_node.ModuleID = value
	}
	if value, ok := _c.mutation.Prompt(); ok {
		_spec.SetField(feedbackevent.FieldPrompt, field.TypeString, value)
		_node.Prompt = value
	}
	if value, ok := _c.mutation.Chosen(); ok {
		_spec.SetField(feedbackevent.FieldChosen, field.TypeInt, value)
		_node.Chosen = value
	}
	if value, ok := _c.mutation.Correct(); ok {
		_spec.SetField(feedbackevent.FieldCorrect, field.TypeBool, value)
		_node.Correct = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(feedbackevent.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Class(); ok {
		_spec.SetField(feedbackevent.FieldClass, field.TypeString, value)
		_node.Class = value
	}
	if value, ok := _c.mutation.Adjustment(); ok {
		_spec.SetField(feedbackevent.FieldAdjustment, field.TypeString, value)
		_node.Adjustment = value
	}
	if value, ok := _c.mutation.Rushed(); ok {
		_spec.SetField(feedbackevent.FieldRushed, field.TypeBool, value)
		_node.Rushed = value
	}
	if value, ok := _c.mutation.ElapsedMs(); ok {
		_spec.SetField(feedbackevent.FieldElapsedMs, field.TypeInt64, value)
		_node.ElapsedMs = value
	}
	return _node, _spec
}

// FeedbackEventCreateBulk is the builder for creating many FeedbackEvent entities in bulk.
type FeedbackEventCreateBulk struct {
	config
	err      error
	builders []*FeedbackEventCreate
}

// Save creates the FeedbackEvent entities in the database.
func (_c *FeedbackEventCreateBulk) Save(ctx context.Context) ([]*FeedbackEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*FeedbackEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*FeedbackEventMutation)
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
func (_c *FeedbackEventCreateBulk) SaveX(ctx context.Context) []*FeedbackEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *FeedbackEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *FeedbackEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

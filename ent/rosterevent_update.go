// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/pathwise/ent/predicate"
	"github.com/abhisek/pathwise/ent/rosterevent"
)

// RosterEventUpdate is the builder for updating RosterEvent entities.
type RosterEventUpdate struct {
	config
	hooks    []Hook
	mutation *RosterEventMutation
}

// Where appends a list predicates to the RosterEventUpdate builder.
func (_u *RosterEventUpdate) Where(ps ...predicate.RosterEvent) *RosterEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RosterEventUpdate) SetUserID(v string) *RosterEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RosterEventUpdate) SetNillableUserID(v *string) *RosterEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *RosterEventUpdate) SetUsername(v string) *RosterEventUpdate {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *RosterEventUpdate) SetNillableUsername(v *string) *RosterEventUpdate {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *RosterEventUpdate) SetRole(v string) *RosterEventUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *RosterEventUpdate) SetNillableRole(v *string) *RosterEventUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RosterEventUpdate) SetAction(v string) *RosterEventUpdate {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RosterEventUpdate) SetNillableAction(v *string) *RosterEventUpdate {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the RosterEventMutation object of the builder.
func (_u *RosterEventUpdate) Mutation() *RosterEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RosterEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RosterEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RosterEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RosterEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RosterEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := rosterevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RosterEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := rosterevent.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "RosterEvent.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := rosterevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "RosterEvent.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := rosterevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RosterEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RosterEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rosterevent.Table, rosterevent.Columns, sqlgraph.NewFieldSpec(rosterevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(rosterevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(rosterevent.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(rosterevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(rosterevent.FieldAction, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rosterevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RosterEventUpdateOne is the builder for updating a single RosterEvent entity.
type RosterEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RosterEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *RosterEventUpdateOne) SetUserID(v string) *RosterEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RosterEventUpdateOne) SetNillableUserID(v *string) *RosterEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetUsername sets the "username" field.
func (_u *RosterEventUpdateOne) SetUsername(v string) *RosterEventUpdateOne {
	_u.mutation.SetUsername(v)
	return _u
}

// SetNillableUsername sets the "username" field if the given value is not nil.
func (_u *RosterEventUpdateOne) SetNillableUsername(v *string) *RosterEventUpdateOne {
	if v != nil {
		_u.SetUsername(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *RosterEventUpdateOne) SetRole(v string) *RosterEventUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *RosterEventUpdateOne) SetNillableRole(v *string) *RosterEventUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetAction sets the "action" field.
func (_u *RosterEventUpdateOne) SetAction(v string) *RosterEventUpdateOne {
	_u.mutation.SetAction(v)
	return _u
}

// SetNillableAction sets the "action" field if the given value is not nil.
func (_u *RosterEventUpdateOne) SetNillableAction(v *string) *RosterEventUpdateOne {
	if v != nil {
		_u.SetAction(*v)
	}
	return _u
}

// Mutation returns the RosterEventMutation object of the builder.
func (_u *RosterEventUpdateOne) Mutation() *RosterEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the RosterEventUpdate builder.
func (_u *RosterEventUpdateOne) Where(ps ...predicate.RosterEvent) *RosterEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RosterEventUpdateOne) Select(field string, fields ...string) *RosterEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RosterEvent entity.
func (_u *RosterEventUpdateOne) Save(ctx context.Context) (*RosterEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RosterEventUpdateOne) SaveX(ctx context.Context) *RosterEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RosterEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RosterEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RosterEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := rosterevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "RosterEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Username(); ok {
		if err := rosterevent.UsernameValidator(v); err != nil {
			return &ValidationError{Name: "username", err: fmt.Errorf(`ent: validator failed for field "RosterEvent.username": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Role(); ok {
		if err := rosterevent.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`ent: validator failed for field "RosterEvent.role": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Action(); ok {
		if err := rosterevent.ActionValidator(v); err != nil {
			return &ValidationError{Name: "action", err: fmt.Errorf(`ent: validator failed for field "RosterEvent.action": %w`, err)}
		}
	}
	return nil
}

func (_u *RosterEventUpdateOne) sqlSave(ctx context.Context) (_node *RosterEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(rosterevent.Table, rosterevent.Columns, sqlgraph.NewFieldSpec(rosterevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RosterEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rosterevent.FieldID)
		for _, f := range fields {
			if !rosterevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rosterevent.FieldID {
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
		_spec.SetField(rosterevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Username(); ok {
		_spec.SetField(rosterevent.FieldUsername, field.TypeString, value)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(rosterevent.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Action(); ok {
		_spec.SetField(rosterevent.FieldAction, field.TypeString, value)
	}
	_node = &RosterEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rosterevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

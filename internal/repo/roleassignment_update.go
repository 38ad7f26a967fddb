// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/roleassignment"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
)

// RoleAssignmentUpdate is the builder for updating RoleAssignment entities.
type RoleAssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *RoleAssignmentMutation
}

// Where appends a list predicates to the RoleAssignmentUpdate builder.
func (_u *RoleAssignmentUpdate) Where(ps ...predicate.RoleAssignment) *RoleAssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *RoleAssignmentUpdate) SetUserID(v uuid.UUID) *RoleAssignmentUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RoleAssignmentUpdate) SetNillableUserID(v *uuid.UUID) *RoleAssignmentUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *RoleAssignmentUpdate) SetRole(v roleassignment.Role) *RoleAssignmentUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *RoleAssignmentUpdate) SetNillableRole(v *roleassignment.Role) *RoleAssignmentUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetGrantedBy sets the "granted_by" field.
func (_u *RoleAssignmentUpdate) SetGrantedBy(v uuid.UUID) *RoleAssignmentUpdate {
	_u.mutation.SetGrantedBy(v)
	return _u
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_u *RoleAssignmentUpdate) SetNillableGrantedBy(v *uuid.UUID) *RoleAssignmentUpdate {
	if v != nil {
		_u.SetGrantedBy(*v)
	}
	return _u
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (_u *RoleAssignmentUpdate) ClearGrantedBy() *RoleAssignmentUpdate {
	_u.mutation.ClearGrantedBy()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *RoleAssignmentUpdate) SetUser(v *User) *RoleAssignmentUpdate {
	return _u.SetUserID(v.ID)
}

// Mutation returns the RoleAssignmentMutation object of the builder.
func (_u *RoleAssignmentUpdate) Mutation() *RoleAssignmentMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *RoleAssignmentUpdate) ClearUser() *RoleAssignmentUpdate {
	_u.mutation.ClearUser()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RoleAssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoleAssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RoleAssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoleAssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoleAssignmentUpdate) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := roleassignment.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "RoleAssignment.role": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "RoleAssignment.user"`)
	}
	return nil
}

func (_u *RoleAssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roleassignment.Table, roleassignment.Columns, sqlgraph.NewFieldSpec(roleassignment.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(roleassignment.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GrantedBy(); ok {
		_spec.SetField(roleassignment.FieldGrantedBy, field.TypeUUID, value)
	}
	if _u.mutation.GrantedByCleared() {
		_spec.ClearField(roleassignment.FieldGrantedBy, field.TypeUUID)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roleassignment.UserTable,
			Columns: []string{roleassignment.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roleassignment.UserTable,
			Columns: []string{roleassignment.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roleassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RoleAssignmentUpdateOne is the builder for updating a single RoleAssignment entity.
type RoleAssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RoleAssignmentMutation
}

// SetUserID sets the "user_id" field.
func (_u *RoleAssignmentUpdateOne) SetUserID(v uuid.UUID) *RoleAssignmentUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *RoleAssignmentUpdateOne) SetNillableUserID(v *uuid.UUID) *RoleAssignmentUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetRole sets the "role" field.
func (_u *RoleAssignmentUpdateOne) SetRole(v roleassignment.Role) *RoleAssignmentUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *RoleAssignmentUpdateOne) SetNillableRole(v *roleassignment.Role) *RoleAssignmentUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetGrantedBy sets the "granted_by" field.
func (_u *RoleAssignmentUpdateOne) SetGrantedBy(v uuid.UUID) *RoleAssignmentUpdateOne {
	_u.mutation.SetGrantedBy(v)
	return _u
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_u *RoleAssignmentUpdateOne) SetNillableGrantedBy(v *uuid.UUID) *RoleAssignmentUpdateOne {
	if v != nil {
		_u.SetGrantedBy(*v)
	}
	return _u
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (_u *RoleAssignmentUpdateOne) ClearGrantedBy() *RoleAssignmentUpdateOne {
	_u.mutation.ClearGrantedBy()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *RoleAssignmentUpdateOne) SetUser(v *User) *RoleAssignmentUpdateOne {
	return _u.SetUserID(v.ID)
}

// Mutation returns the RoleAssignmentMutation object of the builder.
func (_u *RoleAssignmentUpdateOne) Mutation() *RoleAssignmentMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *RoleAssignmentUpdateOne) ClearUser() *RoleAssignmentUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// Where appends a list predicates to the RoleAssignmentUpdate builder.
func (_u *RoleAssignmentUpdateOne) Where(ps ...predicate.RoleAssignment) *RoleAssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RoleAssignmentUpdateOne) Select(field string, fields ...string) *RoleAssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RoleAssignment entity.
func (_u *RoleAssignmentUpdateOne) Save(ctx context.Context) (*RoleAssignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RoleAssignmentUpdateOne) SaveX(ctx context.Context) *RoleAssignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RoleAssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RoleAssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *RoleAssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.Role(); ok {
		if err := roleassignment.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "RoleAssignment.role": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "RoleAssignment.user"`)
	}
	return nil
}

func (_u *RoleAssignmentUpdateOne) sqlSave(ctx context.Context) (_node *RoleAssignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(roleassignment.Table, roleassignment.Columns, sqlgraph.NewFieldSpec(roleassignment.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "RoleAssignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, roleassignment.FieldID)
		for _, f := range fields {
			if !roleassignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != roleassignment.FieldID {
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
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(roleassignment.FieldRole, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.GrantedBy(); ok {
		_spec.SetField(roleassignment.FieldGrantedBy, field.TypeUUID, value)
	}
	if _u.mutation.GrantedByCleared() {
		_spec.ClearField(roleassignment.FieldGrantedBy, field.TypeUUID)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roleassignment.UserTable,
			Columns: []string{roleassignment.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   roleassignment.UserTable,
			Columns: []string{roleassignment.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RoleAssignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{roleassignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

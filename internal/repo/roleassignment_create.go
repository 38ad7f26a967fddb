// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/roleassignment"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
)

// RoleAssignmentCreate is the builder for creating a RoleAssignment entity.
type RoleAssignmentCreate struct {
	config
	mutation *RoleAssignmentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *RoleAssignmentCreate) SetCreatedAt(v time.Time) *RoleAssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RoleAssignmentCreate) SetNillableCreatedAt(v *time.Time) *RoleAssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *RoleAssignmentCreate) SetUserID(v uuid.UUID) *RoleAssignmentCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetRole sets the "role" field.
func (_c *RoleAssignmentCreate) SetRole(v roleassignment.Role) *RoleAssignmentCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetGrantedBy sets the "granted_by" field.
func (_c *RoleAssignmentCreate) SetGrantedBy(v uuid.UUID) *RoleAssignmentCreate {
	_c.mutation.SetGrantedBy(v)
	return _c
}

// SetNillableGrantedBy sets the "granted_by" field if the given value is not nil.
func (_c *RoleAssignmentCreate) SetNillableGrantedBy(v *uuid.UUID) *RoleAssignmentCreate {
	if v != nil {
		_c.SetGrantedBy(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RoleAssignmentCreate) SetID(v uuid.UUID) *RoleAssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *RoleAssignmentCreate) SetNillableID(v *uuid.UUID) *RoleAssignmentCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetUser sets the "user" edge to the User entity.
func (_c *RoleAssignmentCreate) SetUser(v *User) *RoleAssignmentCreate {
	return _c.SetUserID(v.ID)
}

// Mutation returns the RoleAssignmentMutation object of the builder.
func (_c *RoleAssignmentCreate) Mutation() *RoleAssignmentMutation {
	return _c.mutation
}

// Save creates the RoleAssignment in the database.
func (_c *RoleAssignmentCreate) Save(ctx context.Context) (*RoleAssignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RoleAssignmentCreate) SaveX(ctx context.Context) *RoleAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoleAssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoleAssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RoleAssignmentCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := roleassignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := roleassignment.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RoleAssignmentCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "RoleAssignment.created_at"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`repo: missing required field "RoleAssignment.user_id"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`repo: missing required field "RoleAssignment.role"`)}
	}
	if v, ok := _c.mutation.Role(); ok {
		if err := roleassignment.RoleValidator(v); err != nil {
			return &ValidationError{Name: "role", err: fmt.Errorf(`repo: validator failed for field "RoleAssignment.role": %w`, err)}
		}
	}
	if len(_c.mutation.UserIDs()) == 0 {
		return &ValidationError{Name: "user", err: errors.New(`repo: missing required edge "RoleAssignment.user"`)}
	}
	return nil
}

func (_c *RoleAssignmentCreate) sqlSave(ctx context.Context) (*RoleAssignment, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RoleAssignmentCreate) createSpec() (*RoleAssignment, *sqlgraph.CreateSpec) {
	var (
		_node = &RoleAssignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(roleassignment.Table, sqlgraph.NewFieldSpec(roleassignment.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(roleassignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(roleassignment.FieldRole, field.TypeEnum, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.GrantedBy(); ok {
		_spec.SetField(roleassignment.FieldGrantedBy, field.TypeUUID, value)
		_node.GrantedBy = &value
	}
	if nodes := _c.mutation.UserIDs(); len(nodes) > 0 {
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
		_node.UserID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoleAssignment.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoleAssignmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RoleAssignmentCreate) OnConflict(opts ...sql.ConflictOption) *RoleAssignmentUpsertOne {
	_c.conflict = opts
	return &RoleAssignmentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoleAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoleAssignmentCreate) OnConflictColumns(columns ...string) *RoleAssignmentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoleAssignmentUpsertOne{
		create: _c,
	}
}

type (
	// RoleAssignmentUpsertOne is the builder for "upsert"-ing
	//  one RoleAssignment node.
	RoleAssignmentUpsertOne struct {
		create *RoleAssignmentCreate
	}

	// RoleAssignmentUpsert is the "OnConflict" setter.
	RoleAssignmentUpsert struct {
		*sql.UpdateSet
	}
)

// SetUserID sets the "user_id" field.
func (u *RoleAssignmentUpsert) SetUserID(v uuid.UUID) *RoleAssignmentUpsert {
	u.Set(roleassignment.FieldUserID, v)
	return u
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RoleAssignmentUpsert) UpdateUserID() *RoleAssignmentUpsert {
	u.SetExcluded(roleassignment.FieldUserID)
	return u
}

// SetRole sets the "role" field.
func (u *RoleAssignmentUpsert) SetRole(v roleassignment.Role) *RoleAssignmentUpsert {
	u.Set(roleassignment.FieldRole, v)
	return u
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *RoleAssignmentUpsert) UpdateRole() *RoleAssignmentUpsert {
	u.SetExcluded(roleassignment.FieldRole)
	return u
}

// SetGrantedBy sets the "granted_by" field.
func (u *RoleAssignmentUpsert) SetGrantedBy(v uuid.UUID) *RoleAssignmentUpsert {
	u.Set(roleassignment.FieldGrantedBy, v)
	return u
}

// UpdateGrantedBy sets the "granted_by" field to the value that was provided on create.
func (u *RoleAssignmentUpsert) UpdateGrantedBy() *RoleAssignmentUpsert {
	u.SetExcluded(roleassignment.FieldGrantedBy)
	return u
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (u *RoleAssignmentUpsert) ClearGrantedBy() *RoleAssignmentUpsert {
	u.SetNull(roleassignment.FieldGrantedBy)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RoleAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(roleassignment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoleAssignmentUpsertOne) UpdateNewValues() *RoleAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(roleassignment.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(roleassignment.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoleAssignment.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RoleAssignmentUpsertOne) Ignore() *RoleAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoleAssignmentUpsertOne) DoNothing() *RoleAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoleAssignmentCreate.OnConflict
// documentation for more info.
func (u *RoleAssignmentUpsertOne) Update(set func(*RoleAssignmentUpsert)) *RoleAssignmentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoleAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *RoleAssignmentUpsertOne) SetUserID(v uuid.UUID) *RoleAssignmentUpsertOne {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RoleAssignmentUpsertOne) UpdateUserID() *RoleAssignmentUpsertOne {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.UpdateUserID()
	})
}

// SetRole sets the "role" field.
func (u *RoleAssignmentUpsertOne) SetRole(v roleassignment.Role) *RoleAssignmentUpsertOne {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *RoleAssignmentUpsertOne) UpdateRole() *RoleAssignmentUpsertOne {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.UpdateRole()
	})
}

// SetGrantedBy sets the "granted_by" field.
func (u *RoleAssignmentUpsertOne) SetGrantedBy(v uuid.UUID) *RoleAssignmentUpsertOne {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.SetGrantedBy(v)
	})
}

// UpdateGrantedBy sets the "granted_by" field to the value that was provided on create.
func (u *RoleAssignmentUpsertOne) UpdateGrantedBy() *RoleAssignmentUpsertOne {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.UpdateGrantedBy()
	})
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (u *RoleAssignmentUpsertOne) ClearGrantedBy() *RoleAssignmentUpsertOne {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.ClearGrantedBy()
	})
}

// Exec executes the query.
func (u *RoleAssignmentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RoleAssignmentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoleAssignmentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RoleAssignmentUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: RoleAssignmentUpsertOne.ID is not supported by MySQL driver. Use RoleAssignmentUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RoleAssignmentUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RoleAssignmentCreateBulk is the builder for creating many RoleAssignment entities in bulk.
type RoleAssignmentCreateBulk struct {
	config
	err      error
	builders []*RoleAssignmentCreate
	conflict []sql.ConflictOption
}

// Save creates the RoleAssignment entities in the database.
func (_c *RoleAssignmentCreateBulk) Save(ctx context.Context) ([]*RoleAssignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RoleAssignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RoleAssignmentMutation)
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
					spec.OnConflict = _c.conflict
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
func (_c *RoleAssignmentCreateBulk) SaveX(ctx context.Context) []*RoleAssignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RoleAssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RoleAssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RoleAssignment.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RoleAssignmentUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *RoleAssignmentCreateBulk) OnConflict(opts ...sql.ConflictOption) *RoleAssignmentUpsertBulk {
	_c.conflict = opts
	return &RoleAssignmentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RoleAssignment.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *RoleAssignmentCreateBulk) OnConflictColumns(columns ...string) *RoleAssignmentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &RoleAssignmentUpsertBulk{
		create: _c,
	}
}

// RoleAssignmentUpsertBulk is the builder for "upsert"-ing
// a bulk of RoleAssignment nodes.
type RoleAssignmentUpsertBulk struct {
	create *RoleAssignmentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RoleAssignment.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(roleassignment.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RoleAssignmentUpsertBulk) UpdateNewValues() *RoleAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(roleassignment.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(roleassignment.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RoleAssignment.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RoleAssignmentUpsertBulk) Ignore() *RoleAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RoleAssignmentUpsertBulk) DoNothing() *RoleAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RoleAssignmentCreateBulk.OnConflict
// documentation for more info.
func (u *RoleAssignmentUpsertBulk) Update(set func(*RoleAssignmentUpsert)) *RoleAssignmentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RoleAssignmentUpsert{UpdateSet: update})
	}))
	return u
}

// SetUserID sets the "user_id" field.
func (u *RoleAssignmentUpsertBulk) SetUserID(v uuid.UUID) *RoleAssignmentUpsertBulk {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.SetUserID(v)
	})
}

// UpdateUserID sets the "user_id" field to the value that was provided on create.
func (u *RoleAssignmentUpsertBulk) UpdateUserID() *RoleAssignmentUpsertBulk {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.UpdateUserID()
	})
}

// SetRole sets the "role" field.
func (u *RoleAssignmentUpsertBulk) SetRole(v roleassignment.Role) *RoleAssignmentUpsertBulk {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.SetRole(v)
	})
}

// UpdateRole sets the "role" field to the value that was provided on create.
func (u *RoleAssignmentUpsertBulk) UpdateRole() *RoleAssignmentUpsertBulk {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.UpdateRole()
	})
}

// SetGrantedBy sets the "granted_by" field.
func (u *RoleAssignmentUpsertBulk) SetGrantedBy(v uuid.UUID) *RoleAssignmentUpsertBulk {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.SetGrantedBy(v)
	})
}

// UpdateGrantedBy sets the "granted_by" field to the value that was provided on create.
func (u *RoleAssignmentUpsertBulk) UpdateGrantedBy() *RoleAssignmentUpsertBulk {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.UpdateGrantedBy()
	})
}

// ClearGrantedBy clears the value of the "granted_by" field.
func (u *RoleAssignmentUpsertBulk) ClearGrantedBy() *RoleAssignmentUpsertBulk {
	return u.Update(func(s *RoleAssignmentUpsert) {
		s.ClearGrantedBy()
	})
}

// Exec executes the query.
func (u *RoleAssignmentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the RoleAssignmentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for RoleAssignmentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RoleAssignmentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

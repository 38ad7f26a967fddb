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
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
)

// MedicationCreate is the builder for creating a Medication entity.
type MedicationCreate struct {
	config
	mutation *MedicationMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *MedicationCreate) SetCreatedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableCreatedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *MedicationCreate) SetUpdatedAt(v time.Time) *MedicationCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableUpdatedAt(v *time.Time) *MedicationCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetName sets the "name" field.
func (_c *MedicationCreate) SetName(v string) *MedicationCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetDescription sets the "description" field.
func (_c *MedicationCreate) SetDescription(v string) *MedicationCreate {
	_c.mutation.SetDescription(v)
	return _c
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableDescription(v *string) *MedicationCreate {
	if v != nil {
		_c.SetDescription(*v)
	}
	return _c
}

// SetDosageForm sets the "dosage_form" field.
func (_c *MedicationCreate) SetDosageForm(v string) *MedicationCreate {
	_c.mutation.SetDosageForm(v)
	return _c
}

// SetNillableDosageForm sets the "dosage_form" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableDosageForm(v *string) *MedicationCreate {
	if v != nil {
		_c.SetDosageForm(*v)
	}
	return _c
}

// SetManufacturer sets the "manufacturer" field.
func (_c *MedicationCreate) SetManufacturer(v string) *MedicationCreate {
	_c.mutation.SetManufacturer(v)
	return _c
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableManufacturer(v *string) *MedicationCreate {
	if v != nil {
		_c.SetManufacturer(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *MedicationCreate) SetID(v uuid.UUID) *MedicationCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *MedicationCreate) SetNillableID(v *uuid.UUID) *MedicationCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_c *MedicationCreate) AddPrescriptionIDs(ids ...uuid.UUID) *MedicationCreate {
	_c.mutation.AddPrescriptionIDs(ids...)
	return _c
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_c *MedicationCreate) AddPrescriptions(v ...*Prescription) *MedicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPrescriptionIDs(ids...)
}

// SetInventoryItemID sets the "inventory_item" edge to the InventoryItem entity by ID.
func (_c *MedicationCreate) SetInventoryItemID(id uuid.UUID) *MedicationCreate {
	_c.mutation.SetInventoryItemID(id)
	return _c
}

// SetNillableInventoryItemID sets the "inventory_item" edge to the InventoryItem entity by ID if the given value is not nil.
func (_c *MedicationCreate) SetNillableInventoryItemID(id *uuid.UUID) *MedicationCreate {
	if id != nil {
		_c = _c.SetInventoryItemID(*id)
	}
	return _c
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_c *MedicationCreate) SetInventoryItem(v *InventoryItem) *MedicationCreate {
	return _c.SetInventoryItemID(v.ID)
}

// AddOrderIDs adds the "orders" edge to the HospitalOrder entity by IDs.
func (_c *MedicationCreate) AddOrderIDs(ids ...uuid.UUID) *MedicationCreate {
	_c.mutation.AddOrderIDs(ids...)
	return _c
}

// AddOrders adds the "orders" edges to the HospitalOrder entity.
func (_c *MedicationCreate) AddOrders(v ...*HospitalOrder) *MedicationCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOrderIDs(ids...)
}

// Mutation returns the MedicationMutation object of the builder.
func (_c *MedicationCreate) Mutation() *MedicationMutation {
	return _c.mutation
}

// Save creates the Medication in the database.
func (_c *MedicationCreate) Save(ctx context.Context) (*Medication, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MedicationCreate) SaveX(ctx context.Context) *Medication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MedicationCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := medication.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := medication.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := medication.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MedicationCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "Medication.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "Medication.updated_at"`)}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`repo: missing required field "Medication.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if v, ok := _c.mutation.DosageForm(); ok {
		if err := medication.DosageFormValidator(v); err != nil {
			return &ValidationError{Name: "dosage_form", err: fmt.Errorf(`repo: validator failed for field "Medication.dosage_form": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Manufacturer(); ok {
		if err := medication.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "Medication.manufacturer": %w`, err)}
		}
	}
	return nil
}

func (_c *MedicationCreate) sqlSave(ctx context.Context) (*Medication, error) {
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

func (_c *MedicationCreate) createSpec() (*Medication, *sqlgraph.CreateSpec) {
	var (
		_node = &Medication{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(medication.Table, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(medication.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Description(); ok {
		_spec.SetField(medication.FieldDescription, field.TypeString, value)
		_node.Description = &value
	}
	if value, ok := _c.mutation.DosageForm(); ok {
		_spec.SetField(medication.FieldDosageForm, field.TypeString, value)
		_node.DosageForm = &value
	}
	if value, ok := _c.mutation.Manufacturer(); ok {
		_spec.SetField(medication.FieldManufacturer, field.TypeString, value)
		_node.Manufacturer = &value
	}
	if nodes := _c.mutation.PrescriptionsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medication.PrescriptionsTable,
			Columns: []string{medication.PrescriptionsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.InventoryItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   medication.InventoryItemTable,
			Columns: []string{medication.InventoryItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.OrdersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   medication.OrdersTable,
			Columns: []string{medication.OrdersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hospitalorder.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Medication.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicationCreate) OnConflict(opts ...sql.ConflictOption) *MedicationUpsertOne {
	_c.conflict = opts
	return &MedicationUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicationCreate) OnConflictColumns(columns ...string) *MedicationUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicationUpsertOne{
		create: _c,
	}
}

type (
	// MedicationUpsertOne is the builder for "upsert"-ing
	//  one Medication node.
	MedicationUpsertOne struct {
		create *MedicationCreate
	}

	// MedicationUpsert is the "OnConflict" setter.
	MedicationUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsert) SetUpdatedAt(v time.Time) *MedicationUpsert {
	u.Set(medication.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateUpdatedAt() *MedicationUpsert {
	u.SetExcluded(medication.FieldUpdatedAt)
	return u
}

// SetName sets the "name" field.
func (u *MedicationUpsert) SetName(v string) *MedicationUpsert {
	u.Set(medication.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateName() *MedicationUpsert {
	u.SetExcluded(medication.FieldName)
	return u
}

// SetDescription sets the "description" field.
func (u *MedicationUpsert) SetDescription(v string) *MedicationUpsert {
	u.Set(medication.FieldDescription, v)
	return u
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateDescription() *MedicationUpsert {
	u.SetExcluded(medication.FieldDescription)
	return u
}

// ClearDescription clears the value of the "description" field.
func (u *MedicationUpsert) ClearDescription() *MedicationUpsert {
	u.SetNull(medication.FieldDescription)
	return u
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicationUpsert) SetDosageForm(v string) *MedicationUpsert {
	u.Set(medication.FieldDosageForm, v)
	return u
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateDosageForm() *MedicationUpsert {
	u.SetExcluded(medication.FieldDosageForm)
	return u
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (u *MedicationUpsert) ClearDosageForm() *MedicationUpsert {
	u.SetNull(medication.FieldDosageForm)
	return u
}

// SetManufacturer sets the "manufacturer" field.
func (u *MedicationUpsert) SetManufacturer(v string) *MedicationUpsert {
	u.Set(medication.FieldManufacturer, v)
	return u
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *MedicationUpsert) UpdateManufacturer() *MedicationUpsert {
	u.SetExcluded(medication.FieldManufacturer)
	return u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *MedicationUpsert) ClearManufacturer() *MedicationUpsert {
	u.SetNull(medication.FieldManufacturer)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medication.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicationUpsertOne) UpdateNewValues() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(medication.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(medication.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *MedicationUpsertOne) Ignore() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicationUpsertOne) DoNothing() *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicationCreate.OnConflict
// documentation for more info.
func (u *MedicationUpsertOne) Update(set func(*MedicationUpsert)) *MedicationUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsertOne) SetUpdatedAt(v time.Time) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateUpdatedAt() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *MedicationUpsertOne) SetName(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateName() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *MedicationUpsertOne) SetDescription(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateDescription() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MedicationUpsertOne) ClearDescription() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearDescription()
	})
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicationUpsertOne) SetDosageForm(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDosageForm(v)
	})
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateDosageForm() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDosageForm()
	})
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (u *MedicationUpsertOne) ClearDosageForm() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearDosageForm()
	})
}

// SetManufacturer sets the "manufacturer" field.
func (u *MedicationUpsertOne) SetManufacturer(v string) *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.SetManufacturer(v)
	})
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *MedicationUpsertOne) UpdateManufacturer() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateManufacturer()
	})
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *MedicationUpsertOne) ClearManufacturer() *MedicationUpsertOne {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearManufacturer()
	})
}

// Exec executes the query.
func (u *MedicationUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicationCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicationUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *MedicationUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: MedicationUpsertOne.ID is not supported by MySQL driver. Use MedicationUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *MedicationUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// MedicationCreateBulk is the builder for creating many Medication entities in bulk.
type MedicationCreateBulk struct {
	config
	err      error
	builders []*MedicationCreate
	conflict []sql.ConflictOption
}

// Save creates the Medication entities in the database.
func (_c *MedicationCreateBulk) Save(ctx context.Context) ([]*Medication, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Medication, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MedicationMutation)
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
func (_c *MedicationCreateBulk) SaveX(ctx context.Context) []*Medication {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MedicationCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MedicationCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Medication.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.MedicationUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *MedicationCreateBulk) OnConflict(opts ...sql.ConflictOption) *MedicationUpsertBulk {
	_c.conflict = opts
	return &MedicationUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *MedicationCreateBulk) OnConflictColumns(columns ...string) *MedicationUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &MedicationUpsertBulk{
		create: _c,
	}
}

// MedicationUpsertBulk is the builder for "upsert"-ing
// a bulk of Medication nodes.
type MedicationUpsertBulk struct {
	create *MedicationCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(medication.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *MedicationUpsertBulk) UpdateNewValues() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(medication.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(medication.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Medication.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *MedicationUpsertBulk) Ignore() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *MedicationUpsertBulk) DoNothing() *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the MedicationCreateBulk.OnConflict
// documentation for more info.
func (u *MedicationUpsertBulk) Update(set func(*MedicationUpsert)) *MedicationUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&MedicationUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *MedicationUpsertBulk) SetUpdatedAt(v time.Time) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateUpdatedAt() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetName sets the "name" field.
func (u *MedicationUpsertBulk) SetName(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateName() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateName()
	})
}

// SetDescription sets the "description" field.
func (u *MedicationUpsertBulk) SetDescription(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDescription(v)
	})
}

// UpdateDescription sets the "description" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateDescription() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDescription()
	})
}

// ClearDescription clears the value of the "description" field.
func (u *MedicationUpsertBulk) ClearDescription() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearDescription()
	})
}

// SetDosageForm sets the "dosage_form" field.
func (u *MedicationUpsertBulk) SetDosageForm(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetDosageForm(v)
	})
}

// UpdateDosageForm sets the "dosage_form" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateDosageForm() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateDosageForm()
	})
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (u *MedicationUpsertBulk) ClearDosageForm() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearDosageForm()
	})
}

// SetManufacturer sets the "manufacturer" field.
func (u *MedicationUpsertBulk) SetManufacturer(v string) *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.SetManufacturer(v)
	})
}

// UpdateManufacturer sets the "manufacturer" field to the value that was provided on create.
func (u *MedicationUpsertBulk) UpdateManufacturer() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.UpdateManufacturer()
	})
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (u *MedicationUpsertBulk) ClearManufacturer() *MedicationUpsertBulk {
	return u.Update(func(s *MedicationUpsert) {
		s.ClearManufacturer()
	})
}

// Exec executes the query.
func (u *MedicationUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the MedicationCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for MedicationCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *MedicationUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

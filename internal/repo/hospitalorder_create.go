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
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
)

// HospitalOrderCreate is the builder for creating a HospitalOrder entity.
type HospitalOrderCreate struct {
	config
	mutation *HospitalOrderMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *HospitalOrderCreate) SetCreatedAt(v time.Time) *HospitalOrderCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableCreatedAt(v *time.Time) *HospitalOrderCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *HospitalOrderCreate) SetUpdatedAt(v time.Time) *HospitalOrderCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableUpdatedAt(v *time.Time) *HospitalOrderCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMedicationID sets the "medication_id" field.
func (_c *HospitalOrderCreate) SetMedicationID(v uuid.UUID) *HospitalOrderCreate {
	_c.mutation.SetMedicationID(v)
	return _c
}

// SetOrderedBy sets the "ordered_by" field.
func (_c *HospitalOrderCreate) SetOrderedBy(v uuid.UUID) *HospitalOrderCreate {
	_c.mutation.SetOrderedBy(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *HospitalOrderCreate) SetQuantity(v int) *HospitalOrderCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetUrgency sets the "urgency" field.
func (_c *HospitalOrderCreate) SetUrgency(v hospitalorder.Urgency) *HospitalOrderCreate {
	_c.mutation.SetUrgency(v)
	return _c
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableUrgency(v *hospitalorder.Urgency) *HospitalOrderCreate {
	if v != nil {
		_c.SetUrgency(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *HospitalOrderCreate) SetStatus(v hospitalorder.Status) *HospitalOrderCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableStatus(v *hospitalorder.Status) *HospitalOrderCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetApprovedBy sets the "approved_by" field.
func (_c *HospitalOrderCreate) SetApprovedBy(v uuid.UUID) *HospitalOrderCreate {
	_c.mutation.SetApprovedBy(v)
	return _c
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableApprovedBy(v *uuid.UUID) *HospitalOrderCreate {
	if v != nil {
		_c.SetApprovedBy(*v)
	}
	return _c
}

// SetFulfilledBy sets the "fulfilled_by" field.
func (_c *HospitalOrderCreate) SetFulfilledBy(v uuid.UUID) *HospitalOrderCreate {
	_c.mutation.SetFulfilledBy(v)
	return _c
}

// SetNillableFulfilledBy sets the "fulfilled_by" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableFulfilledBy(v *uuid.UUID) *HospitalOrderCreate {
	if v != nil {
		_c.SetFulfilledBy(*v)
	}
	return _c
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (_c *HospitalOrderCreate) SetFulfilledAt(v time.Time) *HospitalOrderCreate {
	_c.mutation.SetFulfilledAt(v)
	return _c
}

// SetNillableFulfilledAt sets the "fulfilled_at" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableFulfilledAt(v *time.Time) *HospitalOrderCreate {
	if v != nil {
		_c.SetFulfilledAt(*v)
	}
	return _c
}

// SetNotes sets the "notes" field.
func (_c *HospitalOrderCreate) SetNotes(v string) *HospitalOrderCreate {
	_c.mutation.SetNotes(v)
	return _c
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableNotes(v *string) *HospitalOrderCreate {
	if v != nil {
		_c.SetNotes(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *HospitalOrderCreate) SetID(v uuid.UUID) *HospitalOrderCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *HospitalOrderCreate) SetNillableID(v *uuid.UUID) *HospitalOrderCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMedication sets the "medication" edge to the Medication entity.
func (_c *HospitalOrderCreate) SetMedication(v *Medication) *HospitalOrderCreate {
	return _c.SetMedicationID(v.ID)
}

// Mutation returns the HospitalOrderMutation object of the builder.
func (_c *HospitalOrderCreate) Mutation() *HospitalOrderMutation {
	return _c.mutation
}

// Save creates the HospitalOrder in the database.
func (_c *HospitalOrderCreate) Save(ctx context.Context) (*HospitalOrder, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HospitalOrderCreate) SaveX(ctx context.Context) *HospitalOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HospitalOrderCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HospitalOrderCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HospitalOrderCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hospitalorder.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := hospitalorder.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		v := hospitalorder.DefaultUrgency
		_c.mutation.SetUrgency(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := hospitalorder.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := hospitalorder.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HospitalOrderCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "HospitalOrder.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "HospitalOrder.updated_at"`)}
	}
	if _, ok := _c.mutation.MedicationID(); !ok {
		return &ValidationError{Name: "medication_id", err: errors.New(`repo: missing required field "HospitalOrder.medication_id"`)}
	}
	if _, ok := _c.mutation.OrderedBy(); !ok {
		return &ValidationError{Name: "ordered_by", err: errors.New(`repo: missing required field "HospitalOrder.ordered_by"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`repo: missing required field "HospitalOrder.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := hospitalorder.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Urgency(); !ok {
		return &ValidationError{Name: "urgency", err: errors.New(`repo: missing required field "HospitalOrder.urgency"`)}
	}
	if v, ok := _c.mutation.Urgency(); ok {
		if err := hospitalorder.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.urgency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`repo: missing required field "HospitalOrder.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := hospitalorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.status": %w`, err)}
		}
	}
	if len(_c.mutation.MedicationIDs()) == 0 {
		return &ValidationError{Name: "medication", err: errors.New(`repo: missing required edge "HospitalOrder.medication"`)}
	}
	return nil
}

func (_c *HospitalOrderCreate) sqlSave(ctx context.Context) (*HospitalOrder, error) {
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

func (_c *HospitalOrderCreate) createSpec() (*HospitalOrder, *sqlgraph.CreateSpec) {
	var (
		_node = &HospitalOrder{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hospitalorder.Table, sqlgraph.NewFieldSpec(hospitalorder.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hospitalorder.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(hospitalorder.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.OrderedBy(); ok {
		_spec.SetField(hospitalorder.FieldOrderedBy, field.TypeUUID, value)
		_node.OrderedBy = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(hospitalorder.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.Urgency(); ok {
		_spec.SetField(hospitalorder.FieldUrgency, field.TypeEnum, value)
		_node.Urgency = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(hospitalorder.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.ApprovedBy(); ok {
		_spec.SetField(hospitalorder.FieldApprovedBy, field.TypeUUID, value)
		_node.ApprovedBy = &value
	}
	if value, ok := _c.mutation.FulfilledBy(); ok {
		_spec.SetField(hospitalorder.FieldFulfilledBy, field.TypeUUID, value)
		_node.FulfilledBy = &value
	}
	if value, ok := _c.mutation.FulfilledAt(); ok {
		_spec.SetField(hospitalorder.FieldFulfilledAt, field.TypeTime, value)
		_node.FulfilledAt = &value
	}
	if value, ok := _c.mutation.Notes(); ok {
		_spec.SetField(hospitalorder.FieldNotes, field.TypeString, value)
		_node.Notes = &value
	}
	if nodes := _c.mutation.MedicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hospitalorder.MedicationTable,
			Columns: []string{hospitalorder.MedicationColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.MedicationID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HospitalOrder.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HospitalOrderUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HospitalOrderCreate) OnConflict(opts ...sql.ConflictOption) *HospitalOrderUpsertOne {
	_c.conflict = opts
	return &HospitalOrderUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HospitalOrder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HospitalOrderCreate) OnConflictColumns(columns ...string) *HospitalOrderUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HospitalOrderUpsertOne{
		create: _c,
	}
}

type (
	// HospitalOrderUpsertOne is the builder for "upsert"-ing
	//  one HospitalOrder node.
	HospitalOrderUpsertOne struct {
		create *HospitalOrderCreate
	}

	// HospitalOrderUpsert is the "OnConflict" setter.
	HospitalOrderUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *HospitalOrderUpsert) SetUpdatedAt(v time.Time) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateUpdatedAt() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldUpdatedAt)
	return u
}

// SetMedicationID sets the "medication_id" field.
func (u *HospitalOrderUpsert) SetMedicationID(v uuid.UUID) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldMedicationID, v)
	return u
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateMedicationID() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldMedicationID)
	return u
}

// SetOrderedBy sets the "ordered_by" field.
func (u *HospitalOrderUpsert) SetOrderedBy(v uuid.UUID) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldOrderedBy, v)
	return u
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateOrderedBy() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldOrderedBy)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *HospitalOrderUpsert) SetQuantity(v int) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateQuantity() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *HospitalOrderUpsert) AddQuantity(v int) *HospitalOrderUpsert {
	u.Add(hospitalorder.FieldQuantity, v)
	return u
}

// SetUrgency sets the "urgency" field.
func (u *HospitalOrderUpsert) SetUrgency(v hospitalorder.Urgency) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldUrgency, v)
	return u
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateUrgency() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldUrgency)
	return u
}

// SetStatus sets the "status" field.
func (u *HospitalOrderUpsert) SetStatus(v hospitalorder.Status) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldStatus, v)
	return u
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateStatus() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldStatus)
	return u
}

// SetApprovedBy sets the "approved_by" field.
func (u *HospitalOrderUpsert) SetApprovedBy(v uuid.UUID) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldApprovedBy, v)
	return u
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateApprovedBy() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldApprovedBy)
	return u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *HospitalOrderUpsert) ClearApprovedBy() *HospitalOrderUpsert {
	u.SetNull(hospitalorder.FieldApprovedBy)
	return u
}

// SetFulfilledBy sets the "fulfilled_by" field.
func (u *HospitalOrderUpsert) SetFulfilledBy(v uuid.UUID) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldFulfilledBy, v)
	return u
}

// UpdateFulfilledBy sets the "fulfilled_by" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateFulfilledBy() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldFulfilledBy)
	return u
}

// ClearFulfilledBy clears the value of the "fulfilled_by" field.
func (u *HospitalOrderUpsert) ClearFulfilledBy() *HospitalOrderUpsert {
	u.SetNull(hospitalorder.FieldFulfilledBy)
	return u
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (u *HospitalOrderUpsert) SetFulfilledAt(v time.Time) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldFulfilledAt, v)
	return u
}

// UpdateFulfilledAt sets the "fulfilled_at" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateFulfilledAt() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldFulfilledAt)
	return u
}

// ClearFulfilledAt clears the value of the "fulfilled_at" field.
func (u *HospitalOrderUpsert) ClearFulfilledAt() *HospitalOrderUpsert {
	u.SetNull(hospitalorder.FieldFulfilledAt)
	return u
}

// SetNotes sets the "notes" field.
func (u *HospitalOrderUpsert) SetNotes(v string) *HospitalOrderUpsert {
	u.Set(hospitalorder.FieldNotes, v)
	return u
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *HospitalOrderUpsert) UpdateNotes() *HospitalOrderUpsert {
	u.SetExcluded(hospitalorder.FieldNotes)
	return u
}

// ClearNotes clears the value of the "notes" field.
func (u *HospitalOrderUpsert) ClearNotes() *HospitalOrderUpsert {
	u.SetNull(hospitalorder.FieldNotes)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.HospitalOrder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hospitalorder.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HospitalOrderUpsertOne) UpdateNewValues() *HospitalOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(hospitalorder.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(hospitalorder.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HospitalOrder.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HospitalOrderUpsertOne) Ignore() *HospitalOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HospitalOrderUpsertOne) DoNothing() *HospitalOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HospitalOrderCreate.OnConflict
// documentation for more info.
func (u *HospitalOrderUpsertOne) Update(set func(*HospitalOrderUpsert)) *HospitalOrderUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HospitalOrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HospitalOrderUpsertOne) SetUpdatedAt(v time.Time) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateUpdatedAt() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMedicationID sets the "medication_id" field.
func (u *HospitalOrderUpsertOne) SetMedicationID(v uuid.UUID) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetMedicationID(v)
	})
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateMedicationID() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateMedicationID()
	})
}

// SetOrderedBy sets the "ordered_by" field.
func (u *HospitalOrderUpsertOne) SetOrderedBy(v uuid.UUID) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetOrderedBy(v)
	})
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateOrderedBy() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateOrderedBy()
	})
}

// SetQuantity sets the "quantity" field.
func (u *HospitalOrderUpsertOne) SetQuantity(v int) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *HospitalOrderUpsertOne) AddQuantity(v int) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateQuantity() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateQuantity()
	})
}

// SetUrgency sets the "urgency" field.
func (u *HospitalOrderUpsertOne) SetUrgency(v hospitalorder.Urgency) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetUrgency(v)
	})
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateUrgency() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateUrgency()
	})
}

// SetStatus sets the "status" field.
func (u *HospitalOrderUpsertOne) SetStatus(v hospitalorder.Status) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateStatus() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateStatus()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *HospitalOrderUpsertOne) SetApprovedBy(v uuid.UUID) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateApprovedBy() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *HospitalOrderUpsertOne) ClearApprovedBy() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.ClearApprovedBy()
	})
}

// SetFulfilledBy sets the "fulfilled_by" field.
func (u *HospitalOrderUpsertOne) SetFulfilledBy(v uuid.UUID) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetFulfilledBy(v)
	})
}

// UpdateFulfilledBy sets the "fulfilled_by" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateFulfilledBy() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateFulfilledBy()
	})
}

// ClearFulfilledBy clears the value of the "fulfilled_by" field.
func (u *HospitalOrderUpsertOne) ClearFulfilledBy() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.ClearFulfilledBy()
	})
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (u *HospitalOrderUpsertOne) SetFulfilledAt(v time.Time) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetFulfilledAt(v)
	})
}

// UpdateFulfilledAt sets the "fulfilled_at" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateFulfilledAt() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateFulfilledAt()
	})
}

// ClearFulfilledAt clears the value of the "fulfilled_at" field.
func (u *HospitalOrderUpsertOne) ClearFulfilledAt() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.ClearFulfilledAt()
	})
}

// SetNotes sets the "notes" field.
func (u *HospitalOrderUpsertOne) SetNotes(v string) *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *HospitalOrderUpsertOne) UpdateNotes() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *HospitalOrderUpsertOne) ClearNotes() *HospitalOrderUpsertOne {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *HospitalOrderUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HospitalOrderCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HospitalOrderUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HospitalOrderUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: HospitalOrderUpsertOne.ID is not supported by MySQL driver. Use HospitalOrderUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HospitalOrderUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HospitalOrderCreateBulk is the builder for creating many HospitalOrder entities in bulk.
type HospitalOrderCreateBulk struct {
	config
	err      error
	builders []*HospitalOrderCreate
	conflict []sql.ConflictOption
}

// Save creates the HospitalOrder entities in the database.
func (_c *HospitalOrderCreateBulk) Save(ctx context.Context) ([]*HospitalOrder, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HospitalOrder, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HospitalOrderMutation)
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
func (_c *HospitalOrderCreateBulk) SaveX(ctx context.Context) []*HospitalOrder {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HospitalOrderCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HospitalOrderCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HospitalOrder.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HospitalOrderUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HospitalOrderCreateBulk) OnConflict(opts ...sql.ConflictOption) *HospitalOrderUpsertBulk {
	_c.conflict = opts
	return &HospitalOrderUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HospitalOrder.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HospitalOrderCreateBulk) OnConflictColumns(columns ...string) *HospitalOrderUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HospitalOrderUpsertBulk{
		create: _c,
	}
}

// HospitalOrderUpsertBulk is the builder for "upsert"-ing
// a bulk of HospitalOrder nodes.
type HospitalOrderUpsertBulk struct {
	create *HospitalOrderCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HospitalOrder.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(hospitalorder.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *HospitalOrderUpsertBulk) UpdateNewValues() *HospitalOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(hospitalorder.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(hospitalorder.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HospitalOrder.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HospitalOrderUpsertBulk) Ignore() *HospitalOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HospitalOrderUpsertBulk) DoNothing() *HospitalOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HospitalOrderCreateBulk.OnConflict
// documentation for more info.
func (u *HospitalOrderUpsertBulk) Update(set func(*HospitalOrderUpsert)) *HospitalOrderUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HospitalOrderUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *HospitalOrderUpsertBulk) SetUpdatedAt(v time.Time) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateUpdatedAt() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMedicationID sets the "medication_id" field.
func (u *HospitalOrderUpsertBulk) SetMedicationID(v uuid.UUID) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetMedicationID(v)
	})
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateMedicationID() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateMedicationID()
	})
}

// SetOrderedBy sets the "ordered_by" field.
func (u *HospitalOrderUpsertBulk) SetOrderedBy(v uuid.UUID) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetOrderedBy(v)
	})
}

// UpdateOrderedBy sets the "ordered_by" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateOrderedBy() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateOrderedBy()
	})
}

// SetQuantity sets the "quantity" field.
func (u *HospitalOrderUpsertBulk) SetQuantity(v int) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *HospitalOrderUpsertBulk) AddQuantity(v int) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateQuantity() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateQuantity()
	})
}

// SetUrgency sets the "urgency" field.
func (u *HospitalOrderUpsertBulk) SetUrgency(v hospitalorder.Urgency) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetUrgency(v)
	})
}

// UpdateUrgency sets the "urgency" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateUrgency() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateUrgency()
	})
}

// SetStatus sets the "status" field.
func (u *HospitalOrderUpsertBulk) SetStatus(v hospitalorder.Status) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetStatus(v)
	})
}

// UpdateStatus sets the "status" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateStatus() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateStatus()
	})
}

// SetApprovedBy sets the "approved_by" field.
func (u *HospitalOrderUpsertBulk) SetApprovedBy(v uuid.UUID) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetApprovedBy(v)
	})
}

// UpdateApprovedBy sets the "approved_by" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateApprovedBy() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateApprovedBy()
	})
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (u *HospitalOrderUpsertBulk) ClearApprovedBy() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.ClearApprovedBy()
	})
}

// SetFulfilledBy sets the "fulfilled_by" field.
func (u *HospitalOrderUpsertBulk) SetFulfilledBy(v uuid.UUID) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetFulfilledBy(v)
	})
}

// UpdateFulfilledBy sets the "fulfilled_by" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateFulfilledBy() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateFulfilledBy()
	})
}

// ClearFulfilledBy clears the value of the "fulfilled_by" field.
func (u *HospitalOrderUpsertBulk) ClearFulfilledBy() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.ClearFulfilledBy()
	})
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (u *HospitalOrderUpsertBulk) SetFulfilledAt(v time.Time) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetFulfilledAt(v)
	})
}

// UpdateFulfilledAt sets the "fulfilled_at" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateFulfilledAt() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateFulfilledAt()
	})
}

// ClearFulfilledAt clears the value of the "fulfilled_at" field.
func (u *HospitalOrderUpsertBulk) ClearFulfilledAt() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.ClearFulfilledAt()
	})
}

// SetNotes sets the "notes" field.
func (u *HospitalOrderUpsertBulk) SetNotes(v string) *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.SetNotes(v)
	})
}

// UpdateNotes sets the "notes" field to the value that was provided on create.
func (u *HospitalOrderUpsertBulk) UpdateNotes() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.UpdateNotes()
	})
}

// ClearNotes clears the value of the "notes" field.
func (u *HospitalOrderUpsertBulk) ClearNotes() *HospitalOrderUpsertBulk {
	return u.Update(func(s *HospitalOrderUpsert) {
		s.ClearNotes()
	})
}

// Exec executes the query.
func (u *HospitalOrderUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the HospitalOrderCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for HospitalOrderCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HospitalOrderUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

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
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
)

// InventoryItemCreate is the builder for creating a InventoryItem entity.
type InventoryItemCreate struct {
	config
	mutation *InventoryItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetCreatedAt sets the "created_at" field.
func (_c *InventoryItemCreate) SetCreatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableCreatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *InventoryItemCreate) SetUpdatedAt(v time.Time) *InventoryItemCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableUpdatedAt(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetMedicationID sets the "medication_id" field.
func (_c *InventoryItemCreate) SetMedicationID(v uuid.UUID) *InventoryItemCreate {
	_c.mutation.SetMedicationID(v)
	return _c
}

// SetQuantity sets the "quantity" field.
func (_c *InventoryItemCreate) SetQuantity(v int) *InventoryItemCreate {
	_c.mutation.SetQuantity(v)
	return _c
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableQuantity(v *int) *InventoryItemCreate {
	if v != nil {
		_c.SetQuantity(*v)
	}
	return _c
}

// SetReorderLevel sets the "reorder_level" field.
func (_c *InventoryItemCreate) SetReorderLevel(v int) *InventoryItemCreate {
	_c.mutation.SetReorderLevel(v)
	return _c
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableReorderLevel(v *int) *InventoryItemCreate {
	if v != nil {
		_c.SetReorderLevel(*v)
	}
	return _c
}

// SetUnitPrice sets the "unit_price" field.
func (_c *InventoryItemCreate) SetUnitPrice(v float64) *InventoryItemCreate {
	_c.mutation.SetUnitPrice(v)
	return _c
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableUnitPrice(v *float64) *InventoryItemCreate {
	if v != nil {
		_c.SetUnitPrice(*v)
	}
	return _c
}

// SetExpiryDate sets the "expiry_date" field.
func (_c *InventoryItemCreate) SetExpiryDate(v time.Time) *InventoryItemCreate {
	_c.mutation.SetExpiryDate(v)
	return _c
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableExpiryDate(v *time.Time) *InventoryItemCreate {
	if v != nil {
		_c.SetExpiryDate(*v)
	}
	return _c
}

// SetBatchNumber sets the "batch_number" field.
func (_c *InventoryItemCreate) SetBatchNumber(v string) *InventoryItemCreate {
	_c.mutation.SetBatchNumber(v)
	return _c
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableBatchNumber(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetBatchNumber(*v)
	}
	return _c
}

// SetLocation sets the "location" field.
func (_c *InventoryItemCreate) SetLocation(v string) *InventoryItemCreate {
	_c.mutation.SetLocation(v)
	return _c
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableLocation(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetLocation(*v)
	}
	return _c
}

// SetSupplier sets the "supplier" field.
func (_c *InventoryItemCreate) SetSupplier(v string) *InventoryItemCreate {
	_c.mutation.SetSupplier(v)
	return _c
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableSupplier(v *string) *InventoryItemCreate {
	if v != nil {
		_c.SetSupplier(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *InventoryItemCreate) SetID(v uuid.UUID) *InventoryItemCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *InventoryItemCreate) SetNillableID(v *uuid.UUID) *InventoryItemCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetMedication sets the "medication" edge to the Medication entity.
func (_c *InventoryItemCreate) SetMedication(v *Medication) *InventoryItemCreate {
	return _c.SetMedicationID(v.ID)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_c *InventoryItemCreate) Mutation() *InventoryItemMutation {
	return _c.mutation
}

// Save creates the InventoryItem in the database.
func (_c *InventoryItemCreate) Save(ctx context.Context) (*InventoryItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InventoryItemCreate) SaveX(ctx context.Context) *InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InventoryItemCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := inventoryitem.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := inventoryitem.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		v := inventoryitem.DefaultQuantity
		_c.mutation.SetQuantity(v)
	}
	if _, ok := _c.mutation.ReorderLevel(); !ok {
		v := inventoryitem.DefaultReorderLevel
		_c.mutation.SetReorderLevel(v)
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		v := inventoryitem.DefaultUnitPrice
		_c.mutation.SetUnitPrice(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := inventoryitem.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InventoryItemCreate) check() error {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`repo: missing required field "InventoryItem.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`repo: missing required field "InventoryItem.updated_at"`)}
	}
	if _, ok := _c.mutation.MedicationID(); !ok {
		return &ValidationError{Name: "medication_id", err: errors.New(`repo: missing required field "InventoryItem.medication_id"`)}
	}
	if _, ok := _c.mutation.Quantity(); !ok {
		return &ValidationError{Name: "quantity", err: errors.New(`repo: missing required field "InventoryItem.quantity"`)}
	}
	if v, ok := _c.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ReorderLevel(); !ok {
		return &ValidationError{Name: "reorder_level", err: errors.New(`repo: missing required field "InventoryItem.reorder_level"`)}
	}
	if v, ok := _c.mutation.ReorderLevel(); ok {
		if err := inventoryitem.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.reorder_level": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UnitPrice(); !ok {
		return &ValidationError{Name: "unit_price", err: errors.New(`repo: missing required field "InventoryItem.unit_price"`)}
	}
	if v, ok := _c.mutation.UnitPrice(); ok {
		if err := inventoryitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _c.mutation.BatchNumber(); ok {
		if err := inventoryitem.BatchNumberValidator(v); err != nil {
			return &ValidationError{Name: "batch_number", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.batch_number": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Location(); ok {
		if err := inventoryitem.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.location": %w`, err)}
		}
	}
	if v, ok := _c.mutation.Supplier(); ok {
		if err := inventoryitem.SupplierValidator(v); err != nil {
			return &ValidationError{Name: "supplier", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.supplier": %w`, err)}
		}
	}
	if len(_c.mutation.MedicationIDs()) == 0 {
		return &ValidationError{Name: "medication", err: errors.New(`repo: missing required edge "InventoryItem.medication"`)}
	}
	return nil
}

func (_c *InventoryItemCreate) sqlSave(ctx context.Context) (*InventoryItem, error) {
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

func (_c *InventoryItemCreate) createSpec() (*InventoryItem, *sqlgraph.CreateSpec) {
	var (
		_node = &InventoryItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(inventoryitem.Table, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	)
	_spec.OnConflict = _c.conflict
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(inventoryitem.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if value, ok := _c.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeInt, value)
		_node.Quantity = value
	}
	if value, ok := _c.mutation.ReorderLevel(); ok {
		_spec.SetField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
		_node.ReorderLevel = value
	}
	if value, ok := _c.mutation.UnitPrice(); ok {
		_spec.SetField(inventoryitem.FieldUnitPrice, field.TypeFloat64, value)
		_node.UnitPrice = value
	}
	if value, ok := _c.mutation.ExpiryDate(); ok {
		_spec.SetField(inventoryitem.FieldExpiryDate, field.TypeTime, value)
		_node.ExpiryDate = &value
	}
	if value, ok := _c.mutation.BatchNumber(); ok {
		_spec.SetField(inventoryitem.FieldBatchNumber, field.TypeString, value)
		_node.BatchNumber = &value
	}
	if value, ok := _c.mutation.Location(); ok {
		_spec.SetField(inventoryitem.FieldLocation, field.TypeString, value)
		_node.Location = &value
	}
	if value, ok := _c.mutation.Supplier(); ok {
		_spec.SetField(inventoryitem.FieldSupplier, field.TypeString, value)
		_node.Supplier = &value
	}
	if nodes := _c.mutation.MedicationIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   inventoryitem.MedicationTable,
			Columns: []string{inventoryitem.MedicationColumn},
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
//	client.InventoryItem.Create().
//		SetCreatedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InventoryItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InventoryItemCreate) OnConflict(opts ...sql.ConflictOption) *InventoryItemUpsertOne {
	_c.conflict = opts
	return &InventoryItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InventoryItemCreate) OnConflictColumns(columns ...string) *InventoryItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InventoryItemUpsertOne{
		create: _c,
	}
}

type (
	// InventoryItemUpsertOne is the builder for "upsert"-ing
	//  one InventoryItem node.
	InventoryItemUpsertOne struct {
		create *InventoryItemCreate
	}

	// InventoryItemUpsert is the "OnConflict" setter.
	InventoryItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsert) SetUpdatedAt(v time.Time) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateUpdatedAt() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldUpdatedAt)
	return u
}

// SetMedicationID sets the "medication_id" field.
func (u *InventoryItemUpsert) SetMedicationID(v uuid.UUID) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldMedicationID, v)
	return u
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateMedicationID() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldMedicationID)
	return u
}

// SetQuantity sets the "quantity" field.
func (u *InventoryItemUpsert) SetQuantity(v int) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldQuantity, v)
	return u
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateQuantity() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldQuantity)
	return u
}

// AddQuantity adds v to the "quantity" field.
func (u *InventoryItemUpsert) AddQuantity(v int) *InventoryItemUpsert {
	u.Add(inventoryitem.FieldQuantity, v)
	return u
}

// SetReorderLevel sets the "reorder_level" field.
func (u *InventoryItemUpsert) SetReorderLevel(v int) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldReorderLevel, v)
	return u
}

// UpdateReorderLevel sets the "reorder_level" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateReorderLevel() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldReorderLevel)
	return u
}

// AddReorderLevel adds v to the "reorder_level" field.
func (u *InventoryItemUpsert) AddReorderLevel(v int) *InventoryItemUpsert {
	u.Add(inventoryitem.FieldReorderLevel, v)
	return u
}

// SetUnitPrice sets the "unit_price" field.
func (u *InventoryItemUpsert) SetUnitPrice(v float64) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldUnitPrice, v)
	return u
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateUnitPrice() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldUnitPrice)
	return u
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *InventoryItemUpsert) AddUnitPrice(v float64) *InventoryItemUpsert {
	u.Add(inventoryitem.FieldUnitPrice, v)
	return u
}

// SetExpiryDate sets the "expiry_date" field.
func (u *InventoryItemUpsert) SetExpiryDate(v time.Time) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldExpiryDate, v)
	return u
}

// UpdateExpiryDate sets the "expiry_date" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateExpiryDate() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldExpiryDate)
	return u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (u *InventoryItemUpsert) ClearExpiryDate() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldExpiryDate)
	return u
}

// SetBatchNumber sets the "batch_number" field.
func (u *InventoryItemUpsert) SetBatchNumber(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldBatchNumber, v)
	return u
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateBatchNumber() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldBatchNumber)
	return u
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (u *InventoryItemUpsert) ClearBatchNumber() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldBatchNumber)
	return u
}

// SetLocation sets the "location" field.
func (u *InventoryItemUpsert) SetLocation(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateLocation() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldLocation)
	return u
}

// ClearLocation clears the value of the "location" field.
func (u *InventoryItemUpsert) ClearLocation() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldLocation)
	return u
}

// SetSupplier sets the "supplier" field.
func (u *InventoryItemUpsert) SetSupplier(v string) *InventoryItemUpsert {
	u.Set(inventoryitem.FieldSupplier, v)
	return u
}

// UpdateSupplier sets the "supplier" field to the value that was provided on create.
func (u *InventoryItemUpsert) UpdateSupplier() *InventoryItemUpsert {
	u.SetExcluded(inventoryitem.FieldSupplier)
	return u
}

// ClearSupplier clears the value of the "supplier" field.
func (u *InventoryItemUpsert) ClearSupplier() *InventoryItemUpsert {
	u.SetNull(inventoryitem.FieldSupplier)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inventoryitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InventoryItemUpsertOne) UpdateNewValues() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(inventoryitem.FieldID)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(inventoryitem.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *InventoryItemUpsertOne) Ignore() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InventoryItemUpsertOne) DoNothing() *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InventoryItemCreate.OnConflict
// documentation for more info.
func (u *InventoryItemUpsertOne) Update(set func(*InventoryItemUpsert)) *InventoryItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InventoryItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsertOne) SetUpdatedAt(v time.Time) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateUpdatedAt() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMedicationID sets the "medication_id" field.
func (u *InventoryItemUpsertOne) SetMedicationID(v uuid.UUID) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetMedicationID(v)
	})
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateMedicationID() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateMedicationID()
	})
}

// SetQuantity sets the "quantity" field.
func (u *InventoryItemUpsertOne) SetQuantity(v int) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *InventoryItemUpsertOne) AddQuantity(v int) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateQuantity() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetReorderLevel sets the "reorder_level" field.
func (u *InventoryItemUpsertOne) SetReorderLevel(v int) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetReorderLevel(v)
	})
}

// AddReorderLevel adds v to the "reorder_level" field.
func (u *InventoryItemUpsertOne) AddReorderLevel(v int) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddReorderLevel(v)
	})
}

// UpdateReorderLevel sets the "reorder_level" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateReorderLevel() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateReorderLevel()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *InventoryItemUpsertOne) SetUnitPrice(v float64) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *InventoryItemUpsertOne) AddUnitPrice(v float64) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateUnitPrice() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetExpiryDate sets the "expiry_date" field.
func (u *InventoryItemUpsertOne) SetExpiryDate(v time.Time) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetExpiryDate(v)
	})
}

// UpdateExpiryDate sets the "expiry_date" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateExpiryDate() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateExpiryDate()
	})
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (u *InventoryItemUpsertOne) ClearExpiryDate() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearExpiryDate()
	})
}

// SetBatchNumber sets the "batch_number" field.
func (u *InventoryItemUpsertOne) SetBatchNumber(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetBatchNumber(v)
	})
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateBatchNumber() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateBatchNumber()
	})
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (u *InventoryItemUpsertOne) ClearBatchNumber() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearBatchNumber()
	})
}

// SetLocation sets the "location" field.
func (u *InventoryItemUpsertOne) SetLocation(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateLocation() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *InventoryItemUpsertOne) ClearLocation() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearLocation()
	})
}

// SetSupplier sets the "supplier" field.
func (u *InventoryItemUpsertOne) SetSupplier(v string) *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetSupplier(v)
	})
}

// UpdateSupplier sets the "supplier" field to the value that was provided on create.
func (u *InventoryItemUpsertOne) UpdateSupplier() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateSupplier()
	})
}

// ClearSupplier clears the value of the "supplier" field.
func (u *InventoryItemUpsertOne) ClearSupplier() *InventoryItemUpsertOne {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearSupplier()
	})
}

// Exec executes the query.
func (u *InventoryItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InventoryItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InventoryItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *InventoryItemUpsertOne) ID(ctx context.Context) (id uuid.UUID, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("repo: InventoryItemUpsertOne.ID is not supported by MySQL driver. Use InventoryItemUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *InventoryItemUpsertOne) IDX(ctx context.Context) uuid.UUID {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// InventoryItemCreateBulk is the builder for creating many InventoryItem entities in bulk.
type InventoryItemCreateBulk struct {
	config
	err      error
	builders []*InventoryItemCreate
	conflict []sql.ConflictOption
}

// Save creates the InventoryItem entities in the database.
func (_c *InventoryItemCreateBulk) Save(ctx context.Context) ([]*InventoryItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*InventoryItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InventoryItemMutation)
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
func (_c *InventoryItemCreateBulk) SaveX(ctx context.Context) []*InventoryItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InventoryItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InventoryItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.InventoryItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.InventoryItemUpsert) {
//			SetCreatedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *InventoryItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *InventoryItemUpsertBulk {
	_c.conflict = opts
	return &InventoryItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *InventoryItemCreateBulk) OnConflictColumns(columns ...string) *InventoryItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &InventoryItemUpsertBulk{
		create: _c,
	}
}

// InventoryItemUpsertBulk is the builder for "upsert"-ing
// a bulk of InventoryItem nodes.
type InventoryItemUpsertBulk struct {
	create *InventoryItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(inventoryitem.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *InventoryItemUpsertBulk) UpdateNewValues() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(inventoryitem.FieldID)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(inventoryitem.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.InventoryItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *InventoryItemUpsertBulk) Ignore() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *InventoryItemUpsertBulk) DoNothing() *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the InventoryItemCreateBulk.OnConflict
// documentation for more info.
func (u *InventoryItemUpsertBulk) Update(set func(*InventoryItemUpsert)) *InventoryItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&InventoryItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *InventoryItemUpsertBulk) SetUpdatedAt(v time.Time) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateUpdatedAt() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUpdatedAt()
	})
}

// SetMedicationID sets the "medication_id" field.
func (u *InventoryItemUpsertBulk) SetMedicationID(v uuid.UUID) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetMedicationID(v)
	})
}

// UpdateMedicationID sets the "medication_id" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateMedicationID() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateMedicationID()
	})
}

// SetQuantity sets the "quantity" field.
func (u *InventoryItemUpsertBulk) SetQuantity(v int) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetQuantity(v)
	})
}

// AddQuantity adds v to the "quantity" field.
func (u *InventoryItemUpsertBulk) AddQuantity(v int) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddQuantity(v)
	})
}

// UpdateQuantity sets the "quantity" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateQuantity() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateQuantity()
	})
}

// SetReorderLevel sets the "reorder_level" field.
func (u *InventoryItemUpsertBulk) SetReorderLevel(v int) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetReorderLevel(v)
	})
}

// AddReorderLevel adds v to the "reorder_level" field.
func (u *InventoryItemUpsertBulk) AddReorderLevel(v int) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddReorderLevel(v)
	})
}

// UpdateReorderLevel sets the "reorder_level" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateReorderLevel() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateReorderLevel()
	})
}

// SetUnitPrice sets the "unit_price" field.
func (u *InventoryItemUpsertBulk) SetUnitPrice(v float64) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetUnitPrice(v)
	})
}

// AddUnitPrice adds v to the "unit_price" field.
func (u *InventoryItemUpsertBulk) AddUnitPrice(v float64) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.AddUnitPrice(v)
	})
}

// UpdateUnitPrice sets the "unit_price" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateUnitPrice() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateUnitPrice()
	})
}

// SetExpiryDate sets the "expiry_date" field.
func (u *InventoryItemUpsertBulk) SetExpiryDate(v time.Time) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetExpiryDate(v)
	})
}

// UpdateExpiryDate sets the "expiry_date" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateExpiryDate() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateExpiryDate()
	})
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (u *InventoryItemUpsertBulk) ClearExpiryDate() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearExpiryDate()
	})
}

// SetBatchNumber sets the "batch_number" field.
func (u *InventoryItemUpsertBulk) SetBatchNumber(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetBatchNumber(v)
	})
}

// UpdateBatchNumber sets the "batch_number" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateBatchNumber() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateBatchNumber()
	})
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (u *InventoryItemUpsertBulk) ClearBatchNumber() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearBatchNumber()
	})
}

// SetLocation sets the "location" field.
func (u *InventoryItemUpsertBulk) SetLocation(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateLocation() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateLocation()
	})
}

// ClearLocation clears the value of the "location" field.
func (u *InventoryItemUpsertBulk) ClearLocation() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearLocation()
	})
}

// SetSupplier sets the "supplier" field.
func (u *InventoryItemUpsertBulk) SetSupplier(v string) *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.SetSupplier(v)
	})
}

// UpdateSupplier sets the "supplier" field to the value that was provided on create.
func (u *InventoryItemUpsertBulk) UpdateSupplier() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.UpdateSupplier()
	})
}

// ClearSupplier clears the value of the "supplier" field.
func (u *InventoryItemUpsertBulk) ClearSupplier() *InventoryItemUpsertBulk {
	return u.Update(func(s *InventoryItemUpsert) {
		s.ClearSupplier()
	})
}

// Exec executes the query.
func (u *InventoryItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("repo: OnConflict was set for builder %d. Set it on the InventoryItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("repo: missing options for InventoryItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *InventoryItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

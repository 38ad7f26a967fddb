// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// InventoryItemUpdate is the builder for updating InventoryItem entities.
type InventoryItemUpdate struct {
	config
	hooks    []Hook
	mutation *InventoryItemMutation
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdate) Where(ps ...predicate.InventoryItem) *InventoryItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdate) SetUpdatedAt(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *InventoryItemUpdate) SetMedicationID(v uuid.UUID) *InventoryItemUpdate {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableMedicationID(v *uuid.UUID) *InventoryItemUpdate {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InventoryItemUpdate) SetQuantity(v int) *InventoryItemUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableQuantity(v *int) *InventoryItemUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InventoryItemUpdate) AddQuantity(v int) *InventoryItemUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetReorderLevel sets the "reorder_level" field.
func (_u *InventoryItemUpdate) SetReorderLevel(v int) *InventoryItemUpdate {
	_u.mutation.ResetReorderLevel()
	_u.mutation.SetReorderLevel(v)
	return _u
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableReorderLevel(v *int) *InventoryItemUpdate {
	if v != nil {
		_u.SetReorderLevel(*v)
	}
	return _u
}

// AddReorderLevel adds value to the "reorder_level" field.
func (_u *InventoryItemUpdate) AddReorderLevel(v int) *InventoryItemUpdate {
	_u.mutation.AddReorderLevel(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InventoryItemUpdate) SetUnitPrice(v float64) *InventoryItemUpdate {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableUnitPrice(v *float64) *InventoryItemUpdate {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InventoryItemUpdate) AddUnitPrice(v float64) *InventoryItemUpdate {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *InventoryItemUpdate) SetExpiryDate(v time.Time) *InventoryItemUpdate {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableExpiryDate(v *time.Time) *InventoryItemUpdate {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *InventoryItemUpdate) ClearExpiryDate() *InventoryItemUpdate {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetBatchNumber sets the "batch_number" field.
func (_u *InventoryItemUpdate) SetBatchNumber(v string) *InventoryItemUpdate {
	_u.mutation.SetBatchNumber(v)
	return _u
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableBatchNumber(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetBatchNumber(*v)
	}
	return _u
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (_u *InventoryItemUpdate) ClearBatchNumber() *InventoryItemUpdate {
	_u.mutation.ClearBatchNumber()
	return _u
}

// SetLocation sets the "location" field.
func (_u *InventoryItemUpdate) SetLocation(v string) *InventoryItemUpdate {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableLocation(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *InventoryItemUpdate) ClearLocation() *InventoryItemUpdate {
	_u.mutation.ClearLocation()
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *InventoryItemUpdate) SetSupplier(v string) *InventoryItemUpdate {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *InventoryItemUpdate) SetNillableSupplier(v *string) *InventoryItemUpdate {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *InventoryItemUpdate) ClearSupplier() *InventoryItemUpdate {
	_u.mutation.ClearSupplier()
	return _u
}

// SetMedication sets the "medication" edge to the Medication entity.
func (_u *InventoryItemUpdate) SetMedication(v *Medication) *InventoryItemUpdate {
	return _u.SetMedicationID(v.ID)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdate) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// ClearMedication clears the "medication" edge to the Medication entity.
func (_u *InventoryItemUpdate) ClearMedication() *InventoryItemUpdate {
	_u.mutation.ClearMedication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InventoryItemUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InventoryItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdate) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReorderLevel(); ok {
		if err := inventoryitem.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.reorder_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := inventoryitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchNumber(); ok {
		if err := inventoryitem.BatchNumberValidator(v); err != nil {
			return &ValidationError{Name: "batch_number", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.batch_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := inventoryitem.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Supplier(); ok {
		if err := inventoryitem.SupplierValidator(v); err != nil {
			return &ValidationError{Name: "supplier", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.supplier": %w`, err)}
		}
	}
	if _u.mutation.MedicationCleared() && len(_u.mutation.MedicationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InventoryItem.medication"`)
	}
	return nil
}

func (_u *InventoryItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReorderLevel(); ok {
		_spec.SetField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReorderLevel(); ok {
		_spec.AddField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(inventoryitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(inventoryitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(inventoryitem.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(inventoryitem.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.BatchNumber(); ok {
		_spec.SetField(inventoryitem.FieldBatchNumber, field.TypeString, value)
	}
	if _u.mutation.BatchNumberCleared() {
		_spec.ClearField(inventoryitem.FieldBatchNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(inventoryitem.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(inventoryitem.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(inventoryitem.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(inventoryitem.FieldSupplier, field.TypeString)
	}
	if _u.mutation.MedicationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InventoryItemUpdateOne is the builder for updating a single InventoryItem entity.
type InventoryItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InventoryItemMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InventoryItemUpdateOne) SetUpdatedAt(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *InventoryItemUpdateOne) SetMedicationID(v uuid.UUID) *InventoryItemUpdateOne {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableMedicationID(v *uuid.UUID) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *InventoryItemUpdateOne) SetQuantity(v int) *InventoryItemUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableQuantity(v *int) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *InventoryItemUpdateOne) AddQuantity(v int) *InventoryItemUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetReorderLevel sets the "reorder_level" field.
func (_u *InventoryItemUpdateOne) SetReorderLevel(v int) *InventoryItemUpdateOne {
	_u.mutation.ResetReorderLevel()
	_u.mutation.SetReorderLevel(v)
	return _u
}

// SetNillableReorderLevel sets the "reorder_level" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableReorderLevel(v *int) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetReorderLevel(*v)
	}
	return _u
}

// AddReorderLevel adds value to the "reorder_level" field.
func (_u *InventoryItemUpdateOne) AddReorderLevel(v int) *InventoryItemUpdateOne {
	_u.mutation.AddReorderLevel(v)
	return _u
}

// SetUnitPrice sets the "unit_price" field.
func (_u *InventoryItemUpdateOne) SetUnitPrice(v float64) *InventoryItemUpdateOne {
	_u.mutation.ResetUnitPrice()
	_u.mutation.SetUnitPrice(v)
	return _u
}

// SetNillableUnitPrice sets the "unit_price" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableUnitPrice(v *float64) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetUnitPrice(*v)
	}
	return _u
}

// AddUnitPrice adds value to the "unit_price" field.
func (_u *InventoryItemUpdateOne) AddUnitPrice(v float64) *InventoryItemUpdateOne {
	_u.mutation.AddUnitPrice(v)
	return _u
}

// SetExpiryDate sets the "expiry_date" field.
func (_u *InventoryItemUpdateOne) SetExpiryDate(v time.Time) *InventoryItemUpdateOne {
	_u.mutation.SetExpiryDate(v)
	return _u
}

// SetNillableExpiryDate sets the "expiry_date" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableExpiryDate(v *time.Time) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetExpiryDate(*v)
	}
	return _u
}

// ClearExpiryDate clears the value of the "expiry_date" field.
func (_u *InventoryItemUpdateOne) ClearExpiryDate() *InventoryItemUpdateOne {
	_u.mutation.ClearExpiryDate()
	return _u
}

// SetBatchNumber sets the "batch_number" field.
func (_u *InventoryItemUpdateOne) SetBatchNumber(v string) *InventoryItemUpdateOne {
	_u.mutation.SetBatchNumber(v)
	return _u
}

// SetNillableBatchNumber sets the "batch_number" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableBatchNumber(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetBatchNumber(*v)
	}
	return _u
}

// ClearBatchNumber clears the value of the "batch_number" field.
func (_u *InventoryItemUpdateOne) ClearBatchNumber() *InventoryItemUpdateOne {
	_u.mutation.ClearBatchNumber()
	return _u
}

// SetLocation sets the "location" field.
func (_u *InventoryItemUpdateOne) SetLocation(v string) *InventoryItemUpdateOne {
	_u.mutation.SetLocation(v)
	return _u
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableLocation(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetLocation(*v)
	}
	return _u
}

// ClearLocation clears the value of the "location" field.
func (_u *InventoryItemUpdateOne) ClearLocation() *InventoryItemUpdateOne {
	_u.mutation.ClearLocation()
	return _u
}

// SetSupplier sets the "supplier" field.
func (_u *InventoryItemUpdateOne) SetSupplier(v string) *InventoryItemUpdateOne {
	_u.mutation.SetSupplier(v)
	return _u
}

// SetNillableSupplier sets the "supplier" field if the given value is not nil.
func (_u *InventoryItemUpdateOne) SetNillableSupplier(v *string) *InventoryItemUpdateOne {
	if v != nil {
		_u.SetSupplier(*v)
	}
	return _u
}

// ClearSupplier clears the value of the "supplier" field.
func (_u *InventoryItemUpdateOne) ClearSupplier() *InventoryItemUpdateOne {
	_u.mutation.ClearSupplier()
	return _u
}

// SetMedication sets the "medication" edge to the Medication entity.
func (_u *InventoryItemUpdateOne) SetMedication(v *Medication) *InventoryItemUpdateOne {
	return _u.SetMedicationID(v.ID)
}

// Mutation returns the InventoryItemMutation object of the builder.
func (_u *InventoryItemUpdateOne) Mutation() *InventoryItemMutation {
	return _u.mutation
}

// ClearMedication clears the "medication" edge to the Medication entity.
func (_u *InventoryItemUpdateOne) ClearMedication() *InventoryItemUpdateOne {
	_u.mutation.ClearMedication()
	return _u
}

// Where appends a list predicates to the InventoryItemUpdate builder.
func (_u *InventoryItemUpdateOne) Where(ps ...predicate.InventoryItem) *InventoryItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InventoryItemUpdateOne) Select(field string, fields ...string) *InventoryItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated InventoryItem entity.
func (_u *InventoryItemUpdateOne) Save(ctx context.Context) (*InventoryItem, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) SaveX(ctx context.Context) *InventoryItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InventoryItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InventoryItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InventoryItemUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := inventoryitem.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InventoryItemUpdateOne) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := inventoryitem.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ReorderLevel(); ok {
		if err := inventoryitem.ReorderLevelValidator(v); err != nil {
			return &ValidationError{Name: "reorder_level", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.reorder_level": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UnitPrice(); ok {
		if err := inventoryitem.UnitPriceValidator(v); err != nil {
			return &ValidationError{Name: "unit_price", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.unit_price": %w`, err)}
		}
	}
	if v, ok := _u.mutation.BatchNumber(); ok {
		if err := inventoryitem.BatchNumberValidator(v); err != nil {
			return &ValidationError{Name: "batch_number", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.batch_number": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Location(); ok {
		if err := inventoryitem.LocationValidator(v); err != nil {
			return &ValidationError{Name: "location", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.location": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Supplier(); ok {
		if err := inventoryitem.SupplierValidator(v); err != nil {
			return &ValidationError{Name: "supplier", err: fmt.Errorf(`repo: validator failed for field "InventoryItem.supplier": %w`, err)}
		}
	}
	if _u.mutation.MedicationCleared() && len(_u.mutation.MedicationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "InventoryItem.medication"`)
	}
	return nil
}

func (_u *InventoryItemUpdateOne) sqlSave(ctx context.Context) (_node *InventoryItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(inventoryitem.Table, inventoryitem.Columns, sqlgraph.NewFieldSpec(inventoryitem.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "InventoryItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, inventoryitem.FieldID)
		for _, f := range fields {
			if !inventoryitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != inventoryitem.FieldID {
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
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(inventoryitem.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(inventoryitem.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ReorderLevel(); ok {
		_spec.SetField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReorderLevel(); ok {
		_spec.AddField(inventoryitem.FieldReorderLevel, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UnitPrice(); ok {
		_spec.SetField(inventoryitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedUnitPrice(); ok {
		_spec.AddField(inventoryitem.FieldUnitPrice, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ExpiryDate(); ok {
		_spec.SetField(inventoryitem.FieldExpiryDate, field.TypeTime, value)
	}
	if _u.mutation.ExpiryDateCleared() {
		_spec.ClearField(inventoryitem.FieldExpiryDate, field.TypeTime)
	}
	if value, ok := _u.mutation.BatchNumber(); ok {
		_spec.SetField(inventoryitem.FieldBatchNumber, field.TypeString, value)
	}
	if _u.mutation.BatchNumberCleared() {
		_spec.ClearField(inventoryitem.FieldBatchNumber, field.TypeString)
	}
	if value, ok := _u.mutation.Location(); ok {
		_spec.SetField(inventoryitem.FieldLocation, field.TypeString, value)
	}
	if _u.mutation.LocationCleared() {
		_spec.ClearField(inventoryitem.FieldLocation, field.TypeString)
	}
	if value, ok := _u.mutation.Supplier(); ok {
		_spec.SetField(inventoryitem.FieldSupplier, field.TypeString, value)
	}
	if _u.mutation.SupplierCleared() {
		_spec.ClearField(inventoryitem.FieldSupplier, field.TypeString)
	}
	if _u.mutation.MedicationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &InventoryItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{inventoryitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/hospitalorder"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/inventoryitem"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
)

// MedicationUpdate is the builder for updating Medication entities.
type MedicationUpdate struct {
	config
	hooks    []Hook
	mutation *MedicationMutation
}

// Where appends a list predicates to the MedicationUpdate builder.
func (_u *MedicationUpdate) Where(ps ...predicate.Medication) *MedicationUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicationUpdate) SetUpdatedAt(v time.Time) *MedicationUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *MedicationUpdate) SetName(v string) *MedicationUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableName(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicationUpdate) SetDescription(v string) *MedicationUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableDescription(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MedicationUpdate) ClearDescription() *MedicationUpdate {
	_u.mutation.ClearDescription()
	return _u
}

// SetDosageForm sets the "dosage_form" field.
func (_u *MedicationUpdate) SetDosageForm(v string) *MedicationUpdate {
	_u.mutation.SetDosageForm(v)
	return _u
}

// SetNillableDosageForm sets the "dosage_form" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableDosageForm(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetDosageForm(*v)
	}
	return _u
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (_u *MedicationUpdate) ClearDosageForm() *MedicationUpdate {
	_u.mutation.ClearDosageForm()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *MedicationUpdate) SetManufacturer(v string) *MedicationUpdate {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *MedicationUpdate) SetNillableManufacturer(v *string) *MedicationUpdate {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *MedicationUpdate) ClearManufacturer() *MedicationUpdate {
	_u.mutation.ClearManufacturer()
	return _u
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *MedicationUpdate) AddPrescriptionIDs(ids ...uuid.UUID) *MedicationUpdate {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *MedicationUpdate) AddPrescriptions(v ...*Prescription) *MedicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// SetInventoryItemID sets the "inventory_item" edge to the InventoryItem entity by ID.
func (_u *MedicationUpdate) SetInventoryItemID(id uuid.UUID) *MedicationUpdate {
	_u.mutation.SetInventoryItemID(id)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item" edge to the InventoryItem entity by ID if the given value is not nil.
func (_u *MedicationUpdate) SetNillableInventoryItemID(id *uuid.UUID) *MedicationUpdate {
	if id != nil {
		_u = _u.SetInventoryItemID(*id)
	}
	return _u
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_u *MedicationUpdate) SetInventoryItem(v *InventoryItem) *MedicationUpdate {
	return _u.SetInventoryItemID(v.ID)
}

// AddOrderIDs adds the "orders" edge to the HospitalOrder entity by IDs.
func (_u *MedicationUpdate) AddOrderIDs(ids ...uuid.UUID) *MedicationUpdate {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the HospitalOrder entity.
func (_u *MedicationUpdate) AddOrders(v ...*HospitalOrder) *MedicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// Mutation returns the MedicationMutation object of the builder.
func (_u *MedicationUpdate) Mutation() *MedicationMutation {
	return _u.mutation
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *MedicationUpdate) ClearPrescriptions() *MedicationUpdate {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *MedicationUpdate) RemovePrescriptionIDs(ids ...uuid.UUID) *MedicationUpdate {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *MedicationUpdate) RemovePrescriptions(v ...*Prescription) *MedicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// ClearInventoryItem clears the "inventory_item" edge to the InventoryItem entity.
func (_u *MedicationUpdate) ClearInventoryItem() *MedicationUpdate {
	_u.mutation.ClearInventoryItem()
	return _u
}

// ClearOrders clears all "orders" edges to the HospitalOrder entity.
func (_u *MedicationUpdate) ClearOrders() *MedicationUpdate {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to HospitalOrder entities by IDs.
func (_u *MedicationUpdate) RemoveOrderIDs(ids ...uuid.UUID) *MedicationUpdate {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to HospitalOrder entities.
func (_u *MedicationUpdate) RemoveOrders(v ...*HospitalOrder) *MedicationUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MedicationUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MedicationUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicationUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicationUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DosageForm(); ok {
		if err := medication.DosageFormValidator(v); err != nil {
			return &ValidationError{Name: "dosage_form", err: fmt.Errorf(`repo: validator failed for field "Medication.dosage_form": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Manufacturer(); ok {
		if err := medication.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "Medication.manufacturer": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicationUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medication.Table, medication.Columns, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medication.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(medication.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DosageForm(); ok {
		_spec.SetField(medication.FieldDosageForm, field.TypeString, value)
	}
	if _u.mutation.DosageFormCleared() {
		_spec.ClearField(medication.FieldDosageForm, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(medication.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(medication.FieldManufacturer, field.TypeString)
	}
	if _u.mutation.PrescriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrescriptionsIDs(); len(nodes) > 0 && !_u.mutation.PrescriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InventoryItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MedicationUpdateOne is the builder for updating a single Medication entity.
type MedicationUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MedicationMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *MedicationUpdateOne) SetUpdatedAt(v time.Time) *MedicationUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetName sets the "name" field.
func (_u *MedicationUpdateOne) SetName(v string) *MedicationUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableName(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *MedicationUpdateOne) SetDescription(v string) *MedicationUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableDescription(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// ClearDescription clears the value of the "description" field.
func (_u *MedicationUpdateOne) ClearDescription() *MedicationUpdateOne {
	_u.mutation.ClearDescription()
	return _u
}

// SetDosageForm sets the "dosage_form" field.
func (_u *MedicationUpdateOne) SetDosageForm(v string) *MedicationUpdateOne {
	_u.mutation.SetDosageForm(v)
	return _u
}

// SetNillableDosageForm sets the "dosage_form" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableDosageForm(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetDosageForm(*v)
	}
	return _u
}

// ClearDosageForm clears the value of the "dosage_form" field.
func (_u *MedicationUpdateOne) ClearDosageForm() *MedicationUpdateOne {
	_u.mutation.ClearDosageForm()
	return _u
}

// SetManufacturer sets the "manufacturer" field.
func (_u *MedicationUpdateOne) SetManufacturer(v string) *MedicationUpdateOne {
	_u.mutation.SetManufacturer(v)
	return _u
}

// SetNillableManufacturer sets the "manufacturer" field if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableManufacturer(v *string) *MedicationUpdateOne {
	if v != nil {
		_u.SetManufacturer(*v)
	}
	return _u
}

// ClearManufacturer clears the value of the "manufacturer" field.
func (_u *MedicationUpdateOne) ClearManufacturer() *MedicationUpdateOne {
	_u.mutation.ClearManufacturer()
	return _u
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *MedicationUpdateOne) AddPrescriptionIDs(ids ...uuid.UUID) *MedicationUpdateOne {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *MedicationUpdateOne) AddPrescriptions(v ...*Prescription) *MedicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// SetInventoryItemID sets the "inventory_item" edge to the InventoryItem entity by ID.
func (_u *MedicationUpdateOne) SetInventoryItemID(id uuid.UUID) *MedicationUpdateOne {
	_u.mutation.SetInventoryItemID(id)
	return _u
}

// SetNillableInventoryItemID sets the "inventory_item" edge to the InventoryItem entity by ID if the given value is not nil.
func (_u *MedicationUpdateOne) SetNillableInventoryItemID(id *uuid.UUID) *MedicationUpdateOne {
	if id != nil {
		_u = _u.SetInventoryItemID(*id)
	}
	return _u
}

// SetInventoryItem sets the "inventory_item" edge to the InventoryItem entity.
func (_u *MedicationUpdateOne) SetInventoryItem(v *InventoryItem) *MedicationUpdateOne {
	return _u.SetInventoryItemID(v.ID)
}

// AddOrderIDs adds the "orders" edge to the HospitalOrder entity by IDs.
func (_u *MedicationUpdateOne) AddOrderIDs(ids ...uuid.UUID) *MedicationUpdateOne {
	_u.mutation.AddOrderIDs(ids...)
	return _u
}

// AddOrders adds the "orders" edges to the HospitalOrder entity.
func (_u *MedicationUpdateOne) AddOrders(v ...*HospitalOrder) *MedicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOrderIDs(ids...)
}

// Mutation returns the MedicationMutation object of the builder.
func (_u *MedicationUpdateOne) Mutation() *MedicationMutation {
	return _u.mutation
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *MedicationUpdateOne) ClearPrescriptions() *MedicationUpdateOne {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *MedicationUpdateOne) RemovePrescriptionIDs(ids ...uuid.UUID) *MedicationUpdateOne {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *MedicationUpdateOne) RemovePrescriptions(v ...*Prescription) *MedicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// ClearInventoryItem clears the "inventory_item" edge to the InventoryItem entity.
func (_u *MedicationUpdateOne) ClearInventoryItem() *MedicationUpdateOne {
	_u.mutation.ClearInventoryItem()
	return _u
}

// ClearOrders clears all "orders" edges to the HospitalOrder entity.
func (_u *MedicationUpdateOne) ClearOrders() *MedicationUpdateOne {
	_u.mutation.ClearOrders()
	return _u
}

// RemoveOrderIDs removes the "orders" edge to HospitalOrder entities by IDs.
func (_u *MedicationUpdateOne) RemoveOrderIDs(ids ...uuid.UUID) *MedicationUpdateOne {
	_u.mutation.RemoveOrderIDs(ids...)
	return _u
}

// RemoveOrders removes "orders" edges to HospitalOrder entities.
func (_u *MedicationUpdateOne) RemoveOrders(v ...*HospitalOrder) *MedicationUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOrderIDs(ids...)
}

// Where appends a list predicates to the MedicationUpdate builder.
func (_u *MedicationUpdateOne) Where(ps ...predicate.Medication) *MedicationUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MedicationUpdateOne) Select(field string, fields ...string) *MedicationUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Medication entity.
func (_u *MedicationUpdateOne) Save(ctx context.Context) (*Medication, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MedicationUpdateOne) SaveX(ctx context.Context) *Medication {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MedicationUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MedicationUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MedicationUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := medication.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *MedicationUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := medication.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`repo: validator failed for field "Medication.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.DosageForm(); ok {
		if err := medication.DosageFormValidator(v); err != nil {
			return &ValidationError{Name: "dosage_form", err: fmt.Errorf(`repo: validator failed for field "Medication.dosage_form": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Manufacturer(); ok {
		if err := medication.ManufacturerValidator(v); err != nil {
			return &ValidationError{Name: "manufacturer", err: fmt.Errorf(`repo: validator failed for field "Medication.manufacturer": %w`, err)}
		}
	}
	return nil
}

func (_u *MedicationUpdateOne) sqlSave(ctx context.Context) (_node *Medication, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(medication.Table, medication.Columns, sqlgraph.NewFieldSpec(medication.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Medication.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, medication.FieldID)
		for _, f := range fields {
			if !medication.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != medication.FieldID {
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
		_spec.SetField(medication.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(medication.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(medication.FieldDescription, field.TypeString, value)
	}
	if _u.mutation.DescriptionCleared() {
		_spec.ClearField(medication.FieldDescription, field.TypeString)
	}
	if value, ok := _u.mutation.DosageForm(); ok {
		_spec.SetField(medication.FieldDosageForm, field.TypeString, value)
	}
	if _u.mutation.DosageFormCleared() {
		_spec.ClearField(medication.FieldDosageForm, field.TypeString)
	}
	if value, ok := _u.mutation.Manufacturer(); ok {
		_spec.SetField(medication.FieldManufacturer, field.TypeString, value)
	}
	if _u.mutation.ManufacturerCleared() {
		_spec.ClearField(medication.FieldManufacturer, field.TypeString)
	}
	if _u.mutation.PrescriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPrescriptionsIDs(); len(nodes) > 0 && !_u.mutation.PrescriptionsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PrescriptionsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.InventoryItemCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InventoryItemIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOrdersIDs(); len(nodes) > 0 && !_u.mutation.OrdersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OrdersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Medication{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{medication.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
)

// HospitalOrderUpdate is the builder for updating HospitalOrder entities.
type HospitalOrderUpdate struct {
	config
	hooks    []Hook
	mutation *HospitalOrderMutation
}

// Where appends a list predicates to the HospitalOrderUpdate builder.
func (_u *HospitalOrderUpdate) Where(ps ...predicate.HospitalOrder) *HospitalOrderUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HospitalOrderUpdate) SetUpdatedAt(v time.Time) *HospitalOrderUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *HospitalOrderUpdate) SetMedicationID(v uuid.UUID) *HospitalOrderUpdate {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableMedicationID(v *uuid.UUID) *HospitalOrderUpdate {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetOrderedBy sets the "ordered_by" field.
func (_u *HospitalOrderUpdate) SetOrderedBy(v uuid.UUID) *HospitalOrderUpdate {
	_u.mutation.SetOrderedBy(v)
	return _u
}

// SetNillableOrderedBy sets the "ordered_by" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableOrderedBy(v *uuid.UUID) *HospitalOrderUpdate {
	if v != nil {
		_u.SetOrderedBy(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *HospitalOrderUpdate) SetQuantity(v int) *HospitalOrderUpdate {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableQuantity(v *int) *HospitalOrderUpdate {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *HospitalOrderUpdate) AddQuantity(v int) *HospitalOrderUpdate {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *HospitalOrderUpdate) SetUrgency(v hospitalorder.Urgency) *HospitalOrderUpdate {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableUrgency(v *hospitalorder.Urgency) *HospitalOrderUpdate {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HospitalOrderUpdate) SetStatus(v hospitalorder.Status) *HospitalOrderUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableStatus(v *hospitalorder.Status) *HospitalOrderUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *HospitalOrderUpdate) SetApprovedBy(v uuid.UUID) *HospitalOrderUpdate {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableApprovedBy(v *uuid.UUID) *HospitalOrderUpdate {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *HospitalOrderUpdate) ClearApprovedBy() *HospitalOrderUpdate {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetFulfilledBy sets the "fulfilled_by" field.
func (_u *HospitalOrderUpdate) SetFulfilledBy(v uuid.UUID) *HospitalOrderUpdate {
	_u.mutation.SetFulfilledBy(v)
	return _u
}

// SetNillableFulfilledBy sets the "fulfilled_by" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableFulfilledBy(v *uuid.UUID) *HospitalOrderUpdate {
	if v != nil {
		_u.SetFulfilledBy(*v)
	}
	return _u
}

// ClearFulfilledBy clears the value of the "fulfilled_by" field.
func (_u *HospitalOrderUpdate) ClearFulfilledBy() *HospitalOrderUpdate {
	_u.mutation.ClearFulfilledBy()
	return _u
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (_u *HospitalOrderUpdate) SetFulfilledAt(v time.Time) *HospitalOrderUpdate {
	_u.mutation.SetFulfilledAt(v)
	return _u
}

// SetNillableFulfilledAt sets the "fulfilled_at" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableFulfilledAt(v *time.Time) *HospitalOrderUpdate {
	if v != nil {
		_u.SetFulfilledAt(*v)
	}
	return _u
}

// ClearFulfilledAt clears the value of the "fulfilled_at" field.
func (_u *HospitalOrderUpdate) ClearFulfilledAt() *HospitalOrderUpdate {
	_u.mutation.ClearFulfilledAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *HospitalOrderUpdate) SetNotes(v string) *HospitalOrderUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *HospitalOrderUpdate) SetNillableNotes(v *string) *HospitalOrderUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *HospitalOrderUpdate) ClearNotes() *HospitalOrderUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetMedication sets the "medication" edge to the Medication entity.
func (_u *HospitalOrderUpdate) SetMedication(v *Medication) *HospitalOrderUpdate {
	return _u.SetMedicationID(v.ID)
}

// Mutation returns the HospitalOrderMutation object of the builder.
func (_u *HospitalOrderUpdate) Mutation() *HospitalOrderMutation {
	return _u.mutation
}

// ClearMedication clears the "medication" edge to the Medication entity.
func (_u *HospitalOrderUpdate) ClearMedication() *HospitalOrderUpdate {
	_u.mutation.ClearMedication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HospitalOrderUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HospitalOrderUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HospitalOrderUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HospitalOrderUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HospitalOrderUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hospitalorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HospitalOrderUpdate) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := hospitalorder.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := hospitalorder.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := hospitalorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.status": %w`, err)}
		}
	}
	if _u.mutation.MedicationCleared() && len(_u.mutation.MedicationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "HospitalOrder.medication"`)
	}
	return nil
}

func (_u *HospitalOrderUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hospitalorder.Table, hospitalorder.Columns, sqlgraph.NewFieldSpec(hospitalorder.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(hospitalorder.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderedBy(); ok {
		_spec.SetField(hospitalorder.FieldOrderedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(hospitalorder.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(hospitalorder.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(hospitalorder.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(hospitalorder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(hospitalorder.FieldApprovedBy, field.TypeUUID, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(hospitalorder.FieldApprovedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.FulfilledBy(); ok {
		_spec.SetField(hospitalorder.FieldFulfilledBy, field.TypeUUID, value)
	}
	if _u.mutation.FulfilledByCleared() {
		_spec.ClearField(hospitalorder.FieldFulfilledBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.FulfilledAt(); ok {
		_spec.SetField(hospitalorder.FieldFulfilledAt, field.TypeTime, value)
	}
	if _u.mutation.FulfilledAtCleared() {
		_spec.ClearField(hospitalorder.FieldFulfilledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(hospitalorder.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(hospitalorder.FieldNotes, field.TypeString)
	}
	if _u.mutation.MedicationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hospitalorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HospitalOrderUpdateOne is the builder for updating a single HospitalOrder entity.
type HospitalOrderUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HospitalOrderMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *HospitalOrderUpdateOne) SetUpdatedAt(v time.Time) *HospitalOrderUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *HospitalOrderUpdateOne) SetMedicationID(v uuid.UUID) *HospitalOrderUpdateOne {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableMedicationID(v *uuid.UUID) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetOrderedBy sets the "ordered_by" field.
func (_u *HospitalOrderUpdateOne) SetOrderedBy(v uuid.UUID) *HospitalOrderUpdateOne {
	_u.mutation.SetOrderedBy(v)
	return _u
}

// SetNillableOrderedBy sets the "ordered_by" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableOrderedBy(v *uuid.UUID) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetOrderedBy(*v)
	}
	return _u
}

// SetQuantity sets the "quantity" field.
func (_u *HospitalOrderUpdateOne) SetQuantity(v int) *HospitalOrderUpdateOne {
	_u.mutation.ResetQuantity()
	_u.mutation.SetQuantity(v)
	return _u
}

// SetNillableQuantity sets the "quantity" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableQuantity(v *int) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetQuantity(*v)
	}
	return _u
}

// AddQuantity adds value to the "quantity" field.
func (_u *HospitalOrderUpdateOne) AddQuantity(v int) *HospitalOrderUpdateOne {
	_u.mutation.AddQuantity(v)
	return _u
}

// SetUrgency sets the "urgency" field.
func (_u *HospitalOrderUpdateOne) SetUrgency(v hospitalorder.Urgency) *HospitalOrderUpdateOne {
	_u.mutation.SetUrgency(v)
	return _u
}

// SetNillableUrgency sets the "urgency" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableUrgency(v *hospitalorder.Urgency) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetUrgency(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *HospitalOrderUpdateOne) SetStatus(v hospitalorder.Status) *HospitalOrderUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableStatus(v *hospitalorder.Status) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetApprovedBy sets the "approved_by" field.
func (_u *HospitalOrderUpdateOne) SetApprovedBy(v uuid.UUID) *HospitalOrderUpdateOne {
	_u.mutation.SetApprovedBy(v)
	return _u
}

// SetNillableApprovedBy sets the "approved_by" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableApprovedBy(v *uuid.UUID) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetApprovedBy(*v)
	}
	return _u
}

// ClearApprovedBy clears the value of the "approved_by" field.
func (_u *HospitalOrderUpdateOne) ClearApprovedBy() *HospitalOrderUpdateOne {
	_u.mutation.ClearApprovedBy()
	return _u
}

// SetFulfilledBy sets the "fulfilled_by" field.
func (_u *HospitalOrderUpdateOne) SetFulfilledBy(v uuid.UUID) *HospitalOrderUpdateOne {
	_u.mutation.SetFulfilledBy(v)
	return _u
}

// SetNillableFulfilledBy sets the "fulfilled_by" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableFulfilledBy(v *uuid.UUID) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetFulfilledBy(*v)
	}
	return _u
}

// ClearFulfilledBy clears the value of the "fulfilled_by" field.
func (_u *HospitalOrderUpdateOne) ClearFulfilledBy() *HospitalOrderUpdateOne {
	_u.mutation.ClearFulfilledBy()
	return _u
}

// SetFulfilledAt sets the "fulfilled_at" field.
func (_u *HospitalOrderUpdateOne) SetFulfilledAt(v time.Time) *HospitalOrderUpdateOne {
	_u.mutation.SetFulfilledAt(v)
	return _u
}

// SetNillableFulfilledAt sets the "fulfilled_at" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableFulfilledAt(v *time.Time) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetFulfilledAt(*v)
	}
	return _u
}

// ClearFulfilledAt clears the value of the "fulfilled_at" field.
func (_u *HospitalOrderUpdateOne) ClearFulfilledAt() *HospitalOrderUpdateOne {
	_u.mutation.ClearFulfilledAt()
	return _u
}

// SetNotes sets the "notes" field.
func (_u *HospitalOrderUpdateOne) SetNotes(v string) *HospitalOrderUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *HospitalOrderUpdateOne) SetNillableNotes(v *string) *HospitalOrderUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *HospitalOrderUpdateOne) ClearNotes() *HospitalOrderUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetMedication sets the "medication" edge to the Medication entity.
func (_u *HospitalOrderUpdateOne) SetMedication(v *Medication) *HospitalOrderUpdateOne {
	return _u.SetMedicationID(v.ID)
}

// Mutation returns the HospitalOrderMutation object of the builder.
func (_u *HospitalOrderUpdateOne) Mutation() *HospitalOrderMutation {
	return _u.mutation
}

// ClearMedication clears the "medication" edge to the Medication entity.
func (_u *HospitalOrderUpdateOne) ClearMedication() *HospitalOrderUpdateOne {
	_u.mutation.ClearMedication()
	return _u
}

// Where appends a list predicates to the HospitalOrderUpdate builder.
func (_u *HospitalOrderUpdateOne) Where(ps ...predicate.HospitalOrder) *HospitalOrderUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HospitalOrderUpdateOne) Select(field string, fields ...string) *HospitalOrderUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HospitalOrder entity.
func (_u *HospitalOrderUpdateOne) Save(ctx context.Context) (*HospitalOrder, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HospitalOrderUpdateOne) SaveX(ctx context.Context) *HospitalOrder {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HospitalOrderUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HospitalOrderUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *HospitalOrderUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := hospitalorder.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HospitalOrderUpdateOne) check() error {
	if v, ok := _u.mutation.Quantity(); ok {
		if err := hospitalorder.QuantityValidator(v); err != nil {
			return &ValidationError{Name: "quantity", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.quantity": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Urgency(); ok {
		if err := hospitalorder.UrgencyValidator(v); err != nil {
			return &ValidationError{Name: "urgency", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.urgency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := hospitalorder.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "HospitalOrder.status": %w`, err)}
		}
	}
	if _u.mutation.MedicationCleared() && len(_u.mutation.MedicationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "HospitalOrder.medication"`)
	}
	return nil
}

func (_u *HospitalOrderUpdateOne) sqlSave(ctx context.Context) (_node *HospitalOrder, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hospitalorder.Table, hospitalorder.Columns, sqlgraph.NewFieldSpec(hospitalorder.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "HospitalOrder.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hospitalorder.FieldID)
		for _, f := range fields {
			if !hospitalorder.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != hospitalorder.FieldID {
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
		_spec.SetField(hospitalorder.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.OrderedBy(); ok {
		_spec.SetField(hospitalorder.FieldOrderedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Quantity(); ok {
		_spec.SetField(hospitalorder.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedQuantity(); ok {
		_spec.AddField(hospitalorder.FieldQuantity, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Urgency(); ok {
		_spec.SetField(hospitalorder.FieldUrgency, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(hospitalorder.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ApprovedBy(); ok {
		_spec.SetField(hospitalorder.FieldApprovedBy, field.TypeUUID, value)
	}
	if _u.mutation.ApprovedByCleared() {
		_spec.ClearField(hospitalorder.FieldApprovedBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.FulfilledBy(); ok {
		_spec.SetField(hospitalorder.FieldFulfilledBy, field.TypeUUID, value)
	}
	if _u.mutation.FulfilledByCleared() {
		_spec.ClearField(hospitalorder.FieldFulfilledBy, field.TypeUUID)
	}
	if value, ok := _u.mutation.FulfilledAt(); ok {
		_spec.SetField(hospitalorder.FieldFulfilledAt, field.TypeTime, value)
	}
	if _u.mutation.FulfilledAtCleared() {
		_spec.ClearField(hospitalorder.FieldFulfilledAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(hospitalorder.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(hospitalorder.FieldNotes, field.TypeString)
	}
	if _u.mutation.MedicationCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MedicationIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HospitalOrder{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hospitalorder.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

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
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/medication"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
)

// PrescriptionUpdate is the builder for updating Prescription entities.
type PrescriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PrescriptionMutation
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdate) Where(ps ...predicate.Prescription) *PrescriptionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdate) SetUpdatedAt(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdate) SetPatientID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *PrescriptionUpdate) SetMedicationID(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableMedicationID(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetPrescribedBy sets the "prescribed_by" field.
func (_u *PrescriptionUpdate) SetPrescribedBy(v uuid.UUID) *PrescriptionUpdate {
	_u.mutation.SetPrescribedBy(v)
	return _u
}

// SetNillablePrescribedBy sets the "prescribed_by" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillablePrescribedBy(v *uuid.UUID) *PrescriptionUpdate {
	if v != nil {
		_u.SetPrescribedBy(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionUpdate) SetDosage(v string) *PrescriptionUpdate {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableDosage(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PrescriptionUpdate) SetFrequency(v string) *PrescriptionUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableFrequency(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PrescriptionUpdate) SetStartDate(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableStartDate(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *PrescriptionUpdate) SetEndDate(v time.Time) *PrescriptionUpdate {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableEndDate(v *time.Time) *PrescriptionUpdate {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *PrescriptionUpdate) ClearEndDate() *PrescriptionUpdate {
	_u.mutation.ClearEndDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PrescriptionUpdate) SetStatus(v prescription.Status) *PrescriptionUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableStatus(v *prescription.Status) *PrescriptionUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PrescriptionUpdate) SetNotes(v string) *PrescriptionUpdate {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PrescriptionUpdate) SetNillableNotes(v *string) *PrescriptionUpdate {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PrescriptionUpdate) ClearNotes() *PrescriptionUpdate {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdate) SetPatient(v *Patient) *PrescriptionUpdate {
	return _u.SetPatientID(v.ID)
}

// SetMedication sets the "medication" edge to the Medication entity.
func (_u *PrescriptionUpdate) SetMedication(v *Medication) *PrescriptionUpdate {
	return _u.SetMedicationID(v.ID)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdate) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdate) ClearPatient() *PrescriptionUpdate {
	_u.mutation.ClearPatient()
	return _u
}

// ClearMedication clears the "medication" edge to the Medication entity.
func (_u *PrescriptionUpdate) ClearMedication() *PrescriptionUpdate {
	_u.mutation.ClearMedication()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PrescriptionUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PrescriptionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdate) check() error {
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := prescription.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Prescription.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := prescription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Prescription.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.patient"`)
	}
	if _u.mutation.MedicationCleared() && len(_u.mutation.MedicationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.medication"`)
	}
	return nil
}

func (_u *PrescriptionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PrescribedBy(); ok {
		_spec.SetField(prescription.FieldPrescribedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(prescription.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(prescription.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(prescription.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(prescription.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prescription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(prescription.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.PatientTable,
			Columns: []string{prescription.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.PatientTable,
			Columns: []string{prescription.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.MedicationTable,
			Columns: []string{prescription.MedicationColumn},
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
			Table:   prescription.MedicationTable,
			Columns: []string{prescription.MedicationColumn},
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
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PrescriptionUpdateOne is the builder for updating a single Prescription entity.
type PrescriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PrescriptionMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PrescriptionUpdateOne) SetUpdatedAt(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetPatientID sets the "patient_id" field.
func (_u *PrescriptionUpdateOne) SetPatientID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPatientID(v)
	return _u
}

// SetNillablePatientID sets the "patient_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePatientID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPatientID(*v)
	}
	return _u
}

// SetMedicationID sets the "medication_id" field.
func (_u *PrescriptionUpdateOne) SetMedicationID(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetMedicationID(v)
	return _u
}

// SetNillableMedicationID sets the "medication_id" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableMedicationID(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetMedicationID(*v)
	}
	return _u
}

// SetPrescribedBy sets the "prescribed_by" field.
func (_u *PrescriptionUpdateOne) SetPrescribedBy(v uuid.UUID) *PrescriptionUpdateOne {
	_u.mutation.SetPrescribedBy(v)
	return _u
}

// SetNillablePrescribedBy sets the "prescribed_by" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillablePrescribedBy(v *uuid.UUID) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetPrescribedBy(*v)
	}
	return _u
}

// SetDosage sets the "dosage" field.
func (_u *PrescriptionUpdateOne) SetDosage(v string) *PrescriptionUpdateOne {
	_u.mutation.SetDosage(v)
	return _u
}

// SetNillableDosage sets the "dosage" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableDosage(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetDosage(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *PrescriptionUpdateOne) SetFrequency(v string) *PrescriptionUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableFrequency(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *PrescriptionUpdateOne) SetStartDate(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableStartDate(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// SetEndDate sets the "end_date" field.
func (_u *PrescriptionUpdateOne) SetEndDate(v time.Time) *PrescriptionUpdateOne {
	_u.mutation.SetEndDate(v)
	return _u
}

// SetNillableEndDate sets the "end_date" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableEndDate(v *time.Time) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetEndDate(*v)
	}
	return _u
}

// ClearEndDate clears the value of the "end_date" field.
func (_u *PrescriptionUpdateOne) ClearEndDate() *PrescriptionUpdateOne {
	_u.mutation.ClearEndDate()
	return _u
}

// SetStatus sets the "status" field.
func (_u *PrescriptionUpdateOne) SetStatus(v prescription.Status) *PrescriptionUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableStatus(v *prescription.Status) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetNotes sets the "notes" field.
func (_u *PrescriptionUpdateOne) SetNotes(v string) *PrescriptionUpdateOne {
	_u.mutation.SetNotes(v)
	return _u
}

// SetNillableNotes sets the "notes" field if the given value is not nil.
func (_u *PrescriptionUpdateOne) SetNillableNotes(v *string) *PrescriptionUpdateOne {
	if v != nil {
		_u.SetNotes(*v)
	}
	return _u
}

// ClearNotes clears the value of the "notes" field.
func (_u *PrescriptionUpdateOne) ClearNotes() *PrescriptionUpdateOne {
	_u.mutation.ClearNotes()
	return _u
}

// SetPatient sets the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdateOne) SetPatient(v *Patient) *PrescriptionUpdateOne {
	return _u.SetPatientID(v.ID)
}

// SetMedication sets the "medication" edge to the Medication entity.
func (_u *PrescriptionUpdateOne) SetMedication(v *Medication) *PrescriptionUpdateOne {
	return _u.SetMedicationID(v.ID)
}

// Mutation returns the PrescriptionMutation object of the builder.
func (_u *PrescriptionUpdateOne) Mutation() *PrescriptionMutation {
	return _u.mutation
}

// ClearPatient clears the "patient" edge to the Patient entity.
func (_u *PrescriptionUpdateOne) ClearPatient() *PrescriptionUpdateOne {
	_u.mutation.ClearPatient()
	return _u
}

// ClearMedication clears the "medication" edge to the Medication entity.
func (_u *PrescriptionUpdateOne) ClearMedication() *PrescriptionUpdateOne {
	_u.mutation.ClearMedication()
	return _u
}

// Where appends a list predicates to the PrescriptionUpdate builder.
func (_u *PrescriptionUpdateOne) Where(ps ...predicate.Prescription) *PrescriptionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PrescriptionUpdateOne) Select(field string, fields ...string) *PrescriptionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Prescription entity.
func (_u *PrescriptionUpdateOne) Save(ctx context.Context) (*Prescription, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) SaveX(ctx context.Context) *Prescription {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PrescriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PrescriptionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PrescriptionUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := prescription.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PrescriptionUpdateOne) check() error {
	if v, ok := _u.mutation.Dosage(); ok {
		if err := prescription.DosageValidator(v); err != nil {
			return &ValidationError{Name: "dosage", err: fmt.Errorf(`repo: validator failed for field "Prescription.dosage": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Frequency(); ok {
		if err := prescription.FrequencyValidator(v); err != nil {
			return &ValidationError{Name: "frequency", err: fmt.Errorf(`repo: validator failed for field "Prescription.frequency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := prescription.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`repo: validator failed for field "Prescription.status": %w`, err)}
		}
	}
	if _u.mutation.PatientCleared() && len(_u.mutation.PatientIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.patient"`)
	}
	if _u.mutation.MedicationCleared() && len(_u.mutation.MedicationIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Prescription.medication"`)
	}
	return nil
}

func (_u *PrescriptionUpdateOne) sqlSave(ctx context.Context) (_node *Prescription, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(prescription.Table, prescription.Columns, sqlgraph.NewFieldSpec(prescription.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Prescription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, prescription.FieldID)
		for _, f := range fields {
			if !prescription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != prescription.FieldID {
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
		_spec.SetField(prescription.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.PrescribedBy(); ok {
		_spec.SetField(prescription.FieldPrescribedBy, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Dosage(); ok {
		_spec.SetField(prescription.FieldDosage, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(prescription.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(prescription.FieldStartDate, field.TypeTime, value)
	}
	if value, ok := _u.mutation.EndDate(); ok {
		_spec.SetField(prescription.FieldEndDate, field.TypeTime, value)
	}
	if _u.mutation.EndDateCleared() {
		_spec.ClearField(prescription.FieldEndDate, field.TypeTime)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(prescription.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Notes(); ok {
		_spec.SetField(prescription.FieldNotes, field.TypeString, value)
	}
	if _u.mutation.NotesCleared() {
		_spec.ClearField(prescription.FieldNotes, field.TypeString)
	}
	if _u.mutation.PatientCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.PatientTable,
			Columns: []string{prescription.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PatientIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.PatientTable,
			Columns: []string{prescription.PatientColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MedicationCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   prescription.MedicationTable,
			Columns: []string{prescription.MedicationColumn},
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
			Table:   prescription.MedicationTable,
			Columns: []string{prescription.MedicationColumn},
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
	_node = &Prescription{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{prescription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}

// Code generated by ent, DO NOT EDIT.

package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/appointment"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/labreport"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/patient"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/predicate"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/prescription"
	"github.com/vaenkat/health-ecosystem-hub/internal/repo/user"
)

// PatientUpdate is the builder for updating Patient entities.
type PatientUpdate struct {
	config
	hooks    []Hook
	mutation *PatientMutation
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdate) Where(ps ...predicate.Patient) *PatientUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdate) SetUpdatedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdate) SetDeletedAt(v time.Time) *PatientUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDeletedAt(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdate) ClearDeletedAt() *PatientUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdate) SetUserID(v uuid.UUID) *PatientUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableUserID(v *uuid.UUID) *PatientUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientUpdate) SetDateOfBirth(v time.Time) *PatientUpdate {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableDateOfBirth(v *time.Time) *PatientUpdate {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientUpdate) ClearDateOfBirth() *PatientUpdate {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *PatientUpdate) SetBloodType(v string) *PatientUpdate {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableBloodType(v *string) *PatientUpdate {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *PatientUpdate) ClearBloodType() *PatientUpdate {
	_u.mutation.ClearBloodType()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdate) SetAllergies(v []string) *PatientUpdate {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdate) AppendAllergies(v []string) *PatientUpdate {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdate) ClearAllergies() *PatientUpdate {
	_u.mutation.ClearAllergies()
	return _u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_u *PatientUpdate) SetEmergencyContact(v string) *PatientUpdate {
	_u.mutation.SetEmergencyContact(v)
	return _u
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmergencyContact(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmergencyContact(*v)
	}
	return _u
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (_u *PatientUpdate) ClearEmergencyContact() *PatientUpdate {
	_u.mutation.ClearEmergencyContact()
	return _u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_u *PatientUpdate) SetEmergencyPhone(v string) *PatientUpdate {
	_u.mutation.SetEmergencyPhone(v)
	return _u
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableEmergencyPhone(v *string) *PatientUpdate {
	if v != nil {
		_u.SetEmergencyPhone(*v)
	}
	return _u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (_u *PatientUpdate) ClearEmergencyPhone() *PatientUpdate {
	_u.mutation.ClearEmergencyPhone()
	return _u
}

// SetMedicalHistory sets the "medical_history" field.
func (_u *PatientUpdate) SetMedicalHistory(v []string) *PatientUpdate {
	_u.mutation.SetMedicalHistory(v)
	return _u
}

// AppendMedicalHistory appends value to the "medical_history" field.
func (_u *PatientUpdate) AppendMedicalHistory(v []string) *PatientUpdate {
	_u.mutation.AppendMedicalHistory(v)
	return _u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (_u *PatientUpdate) ClearMedicalHistory() *PatientUpdate {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_u *PatientUpdate) SetChronicConditions(v []string) *PatientUpdate {
	_u.mutation.SetChronicConditions(v)
	return _u
}

// AppendChronicConditions appends value to the "chronic_conditions" field.
func (_u *PatientUpdate) AppendChronicConditions(v []string) *PatientUpdate {
	_u.mutation.AppendChronicConditions(v)
	return _u
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (_u *PatientUpdate) ClearChronicConditions() *PatientUpdate {
	_u.mutation.ClearChronicConditions()
	return _u
}

// SetInsuranceNumber sets the "insurance_number" field.
func (_u *PatientUpdate) SetInsuranceNumber(v string) *PatientUpdate {
	_u.mutation.SetInsuranceNumber(v)
	return _u
}

// SetNillableInsuranceNumber sets the "insurance_number" field if the given value is not nil.
func (_u *PatientUpdate) SetNillableInsuranceNumber(v *string) *PatientUpdate {
	if v != nil {
		_u.SetInsuranceNumber(*v)
	}
	return _u
}

// ClearInsuranceNumber clears the value of the "insurance_number" field.
func (_u *PatientUpdate) ClearInsuranceNumber() *PatientUpdate {
	_u.mutation.ClearInsuranceNumber()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdate) SetUser(v *User) *PatientUpdate {
	return _u.SetUserID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *PatientUpdate) AddPrescriptionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdate) AddPrescriptions(v ...*Prescription) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *PatientUpdate) AddAppointmentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *PatientUpdate) AddAppointments(v ...*Appointment) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// AddLabReportIDs adds the "lab_reports" edge to the LabReport entity by IDs.
func (_u *PatientUpdate) AddLabReportIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.AddLabReportIDs(ids...)
	return _u
}

// AddLabReports adds the "lab_reports" edges to the LabReport entity.
func (_u *PatientUpdate) AddLabReports(v ...*LabReport) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLabReportIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdate) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdate) ClearUser() *PatientUpdate {
	_u.mutation.ClearUser()
	return _u
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdate) ClearPrescriptions() *PatientUpdate {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *PatientUpdate) RemovePrescriptionIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *PatientUpdate) RemovePrescriptions(v ...*Prescription) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *PatientUpdate) ClearAppointments() *PatientUpdate {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *PatientUpdate) RemoveAppointmentIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *PatientUpdate) RemoveAppointments(v ...*Appointment) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// ClearLabReports clears all "lab_reports" edges to the LabReport entity.
func (_u *PatientUpdate) ClearLabReports() *PatientUpdate {
	_u.mutation.ClearLabReports()
	return _u
}

// RemoveLabReportIDs removes the "lab_reports" edge to LabReport entities by IDs.
func (_u *PatientUpdate) RemoveLabReportIDs(ids ...uuid.UUID) *PatientUpdate {
	_u.mutation.RemoveLabReportIDs(ids...)
	return _u
}

// RemoveLabReports removes "lab_reports" edges to LabReport entities.
func (_u *PatientUpdate) RemoveLabReports(v ...*LabReport) *PatientUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLabReportIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PatientUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PatientUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdate) check() error {
	if v, ok := _u.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContact(); ok {
		if err := patient.EmergencyContactValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyPhone(); ok {
		if err := patient.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_phone": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.user"`)
	}
	return nil
}

func (_u *PatientUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patient.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeString, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(patient.FieldBloodType, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmergencyContact(); ok {
		_spec.SetField(patient.FieldEmergencyContact, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactCleared() {
		_spec.ClearField(patient.FieldEmergencyContact, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyPhone(); ok {
		_spec.SetField(patient.FieldEmergencyPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyPhoneCleared() {
		_spec.ClearField(patient.FieldEmergencyPhone, field.TypeString)
	}
	if value, ok := _u.mutation.MedicalHistory(); ok {
		_spec.SetField(patient.FieldMedicalHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedicalHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldMedicalHistory, value)
		})
	}
	if _u.mutation.MedicalHistoryCleared() {
		_spec.ClearField(patient.FieldMedicalHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChronicConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldChronicConditions, value)
		})
	}
	if _u.mutation.ChronicConditionsCleared() {
		_spec.ClearField(patient.FieldChronicConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.InsuranceNumber(); ok {
		_spec.SetField(patient.FieldInsuranceNumber, field.TypeString, value)
	}
	if _u.mutation.InsuranceNumberCleared() {
		_spec.ClearField(patient.FieldInsuranceNumber, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
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
	if _u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AppointmentsTable,
			Columns: []string{patient.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AppointmentsTable,
			Columns: []string{patient.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AppointmentsTable,
			Columns: []string{patient.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LabReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.LabReportsTable,
			Columns: []string{patient.LabReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLabReportsIDs(); len(nodes) > 0 && !_u.mutation.LabReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.LabReportsTable,
			Columns: []string{patient.LabReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.LabReportsTable,
			Columns: []string{patient.LabReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PatientUpdateOne is the builder for updating a single Patient entity.
type PatientUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PatientMutation
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *PatientUpdateOne) SetUpdatedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *PatientUpdateOne) SetDeletedAt(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDeletedAt(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *PatientUpdateOne) ClearDeletedAt() *PatientUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *PatientUpdateOne) SetUserID(v uuid.UUID) *PatientUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableUserID(v *uuid.UUID) *PatientUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetDateOfBirth sets the "date_of_birth" field.
func (_u *PatientUpdateOne) SetDateOfBirth(v time.Time) *PatientUpdateOne {
	_u.mutation.SetDateOfBirth(v)
	return _u
}

// SetNillableDateOfBirth sets the "date_of_birth" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableDateOfBirth(v *time.Time) *PatientUpdateOne {
	if v != nil {
		_u.SetDateOfBirth(*v)
	}
	return _u
}

// ClearDateOfBirth clears the value of the "date_of_birth" field.
func (_u *PatientUpdateOne) ClearDateOfBirth() *PatientUpdateOne {
	_u.mutation.ClearDateOfBirth()
	return _u
}

// SetBloodType sets the "blood_type" field.
func (_u *PatientUpdateOne) SetBloodType(v string) *PatientUpdateOne {
	_u.mutation.SetBloodType(v)
	return _u
}

// SetNillableBloodType sets the "blood_type" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableBloodType(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetBloodType(*v)
	}
	return _u
}

// ClearBloodType clears the value of the "blood_type" field.
func (_u *PatientUpdateOne) ClearBloodType() *PatientUpdateOne {
	_u.mutation.ClearBloodType()
	return _u
}

// SetAllergies sets the "allergies" field.
func (_u *PatientUpdateOne) SetAllergies(v []string) *PatientUpdateOne {
	_u.mutation.SetAllergies(v)
	return _u
}

// AppendAllergies appends value to the "allergies" field.
func (_u *PatientUpdateOne) AppendAllergies(v []string) *PatientUpdateOne {
	_u.mutation.AppendAllergies(v)
	return _u
}

// ClearAllergies clears the value of the "allergies" field.
func (_u *PatientUpdateOne) ClearAllergies() *PatientUpdateOne {
	_u.mutation.ClearAllergies()
	return _u
}

// SetEmergencyContact sets the "emergency_contact" field.
func (_u *PatientUpdateOne) SetEmergencyContact(v string) *PatientUpdateOne {
	_u.mutation.SetEmergencyContact(v)
	return _u
}

// SetNillableEmergencyContact sets the "emergency_contact" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmergencyContact(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmergencyContact(*v)
	}
	return _u
}

// ClearEmergencyContact clears the value of the "emergency_contact" field.
func (_u *PatientUpdateOne) ClearEmergencyContact() *PatientUpdateOne {
	_u.mutation.ClearEmergencyContact()
	return _u
}

// SetEmergencyPhone sets the "emergency_phone" field.
func (_u *PatientUpdateOne) SetEmergencyPhone(v string) *PatientUpdateOne {
	_u.mutation.SetEmergencyPhone(v)
	return _u
}

// SetNillableEmergencyPhone sets the "emergency_phone" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableEmergencyPhone(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetEmergencyPhone(*v)
	}
	return _u
}

// ClearEmergencyPhone clears the value of the "emergency_phone" field.
func (_u *PatientUpdateOne) ClearEmergencyPhone() *PatientUpdateOne {
	_u.mutation.ClearEmergencyPhone()
	return _u
}

// SetMedicalHistory sets the "medical_history" field.
func (_u *PatientUpdateOne) SetMedicalHistory(v []string) *PatientUpdateOne {
	_u.mutation.SetMedicalHistory(v)
	return _u
}

// AppendMedicalHistory appends value to the "medical_history" field.
func (_u *PatientUpdateOne) AppendMedicalHistory(v []string) *PatientUpdateOne {
	_u.mutation.AppendMedicalHistory(v)
	return _u
}

// ClearMedicalHistory clears the value of the "medical_history" field.
func (_u *PatientUpdateOne) ClearMedicalHistory() *PatientUpdateOne {
	_u.mutation.ClearMedicalHistory()
	return _u
}

// SetChronicConditions sets the "chronic_conditions" field.
func (_u *PatientUpdateOne) SetChronicConditions(v []string) *PatientUpdateOne {
	_u.mutation.SetChronicConditions(v)
	return _u
}

// AppendChronicConditions appends value to the "chronic_conditions" field.
func (_u *PatientUpdateOne) AppendChronicConditions(v []string) *PatientUpdateOne {
	_u.mutation.AppendChronicConditions(v)
	return _u
}

// ClearChronicConditions clears the value of the "chronic_conditions" field.
func (_u *PatientUpdateOne) ClearChronicConditions() *PatientUpdateOne {
	_u.mutation.ClearChronicConditions()
	return _u
}

// SetInsuranceNumber sets the "insurance_number" field.
func (_u *PatientUpdateOne) SetInsuranceNumber(v string) *PatientUpdateOne {
	_u.mutation.SetInsuranceNumber(v)
	return _u
}

// SetNillableInsuranceNumber sets the "insurance_number" field if the given value is not nil.
func (_u *PatientUpdateOne) SetNillableInsuranceNumber(v *string) *PatientUpdateOne {
	if v != nil {
		_u.SetInsuranceNumber(*v)
	}
	return _u
}

// ClearInsuranceNumber clears the value of the "insurance_number" field.
func (_u *PatientUpdateOne) ClearInsuranceNumber() *PatientUpdateOne {
	_u.mutation.ClearInsuranceNumber()
	return _u
}

// SetUser sets the "user" edge to the User entity.
func (_u *PatientUpdateOne) SetUser(v *User) *PatientUpdateOne {
	return _u.SetUserID(v.ID)
}

// AddPrescriptionIDs adds the "prescriptions" edge to the Prescription entity by IDs.
func (_u *PatientUpdateOne) AddPrescriptionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddPrescriptionIDs(ids...)
	return _u
}

// AddPrescriptions adds the "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdateOne) AddPrescriptions(v ...*Prescription) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPrescriptionIDs(ids...)
}

// AddAppointmentIDs adds the "appointments" edge to the Appointment entity by IDs.
func (_u *PatientUpdateOne) AddAppointmentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddAppointmentIDs(ids...)
	return _u
}

// AddAppointments adds the "appointments" edges to the Appointment entity.
func (_u *PatientUpdateOne) AddAppointments(v ...*Appointment) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddAppointmentIDs(ids...)
}

// AddLabReportIDs adds the "lab_reports" edge to the LabReport entity by IDs.
func (_u *PatientUpdateOne) AddLabReportIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.AddLabReportIDs(ids...)
	return _u
}

// AddLabReports adds the "lab_reports" edges to the LabReport entity.
func (_u *PatientUpdateOne) AddLabReports(v ...*LabReport) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddLabReportIDs(ids...)
}

// Mutation returns the PatientMutation object of the builder.
func (_u *PatientUpdateOne) Mutation() *PatientMutation {
	return _u.mutation
}

// ClearUser clears the "user" edge to the User entity.
func (_u *PatientUpdateOne) ClearUser() *PatientUpdateOne {
	_u.mutation.ClearUser()
	return _u
}

// ClearPrescriptions clears all "prescriptions" edges to the Prescription entity.
func (_u *PatientUpdateOne) ClearPrescriptions() *PatientUpdateOne {
	_u.mutation.ClearPrescriptions()
	return _u
}

// RemovePrescriptionIDs removes the "prescriptions" edge to Prescription entities by IDs.
func (_u *PatientUpdateOne) RemovePrescriptionIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemovePrescriptionIDs(ids...)
	return _u
}

// RemovePrescriptions removes "prescriptions" edges to Prescription entities.
func (_u *PatientUpdateOne) RemovePrescriptions(v ...*Prescription) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePrescriptionIDs(ids...)
}

// ClearAppointments clears all "appointments" edges to the Appointment entity.
func (_u *PatientUpdateOne) ClearAppointments() *PatientUpdateOne {
	_u.mutation.ClearAppointments()
	return _u
}

// RemoveAppointmentIDs removes the "appointments" edge to Appointment entities by IDs.
func (_u *PatientUpdateOne) RemoveAppointmentIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveAppointmentIDs(ids...)
	return _u
}

// RemoveAppointments removes "appointments" edges to Appointment entities.
func (_u *PatientUpdateOne) RemoveAppointments(v ...*Appointment) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveAppointmentIDs(ids...)
}

// ClearLabReports clears all "lab_reports" edges to the LabReport entity.
func (_u *PatientUpdateOne) ClearLabReports() *PatientUpdateOne {
	_u.mutation.ClearLabReports()
	return _u
}

// RemoveLabReportIDs removes the "lab_reports" edge to LabReport entities by IDs.
func (_u *PatientUpdateOne) RemoveLabReportIDs(ids ...uuid.UUID) *PatientUpdateOne {
	_u.mutation.RemoveLabReportIDs(ids...)
	return _u
}

// RemoveLabReports removes "lab_reports" edges to LabReport entities.
func (_u *PatientUpdateOne) RemoveLabReports(v ...*LabReport) *PatientUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveLabReportIDs(ids...)
}

// Where appends a list predicates to the PatientUpdate builder.
func (_u *PatientUpdateOne) Where(ps ...predicate.Patient) *PatientUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PatientUpdateOne) Select(field string, fields ...string) *PatientUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Patient entity.
func (_u *PatientUpdateOne) Save(ctx context.Context) (*Patient, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PatientUpdateOne) SaveX(ctx context.Context) *Patient {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PatientUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PatientUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *PatientUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := patient.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PatientUpdateOne) check() error {
	if v, ok := _u.mutation.BloodType(); ok {
		if err := patient.BloodTypeValidator(v); err != nil {
			return &ValidationError{Name: "blood_type", err: fmt.Errorf(`repo: validator failed for field "Patient.blood_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyContact(); ok {
		if err := patient.EmergencyContactValidator(v); err != nil {
			return &ValidationError{Name: "emergency_contact", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_contact": %w`, err)}
		}
	}
	if v, ok := _u.mutation.EmergencyPhone(); ok {
		if err := patient.EmergencyPhoneValidator(v); err != nil {
			return &ValidationError{Name: "emergency_phone", err: fmt.Errorf(`repo: validator failed for field "Patient.emergency_phone": %w`, err)}
		}
	}
	if _u.mutation.UserCleared() && len(_u.mutation.UserIDs()) > 0 {
		return errors.New(`repo: clearing a required unique edge "Patient.user"`)
	}
	return nil
}

func (_u *PatientUpdateOne) sqlSave(ctx context.Context) (_node *Patient, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(patient.Table, patient.Columns, sqlgraph.NewFieldSpec(patient.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`repo: missing "Patient.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, patient.FieldID)
		for _, f := range fields {
			if !patient.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("repo: invalid field %q for query", f)}
			}
			if f != patient.FieldID {
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
		_spec.SetField(patient.FieldUpdatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(patient.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(patient.FieldDeletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.DateOfBirth(); ok {
		_spec.SetField(patient.FieldDateOfBirth, field.TypeTime, value)
	}
	if _u.mutation.DateOfBirthCleared() {
		_spec.ClearField(patient.FieldDateOfBirth, field.TypeTime)
	}
	if value, ok := _u.mutation.BloodType(); ok {
		_spec.SetField(patient.FieldBloodType, field.TypeString, value)
	}
	if _u.mutation.BloodTypeCleared() {
		_spec.ClearField(patient.FieldBloodType, field.TypeString)
	}
	if value, ok := _u.mutation.Allergies(); ok {
		_spec.SetField(patient.FieldAllergies, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAllergies(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldAllergies, value)
		})
	}
	if _u.mutation.AllergiesCleared() {
		_spec.ClearField(patient.FieldAllergies, field.TypeJSON)
	}
	if value, ok := _u.mutation.EmergencyContact(); ok {
		_spec.SetField(patient.FieldEmergencyContact, field.TypeString, value)
	}
	if _u.mutation.EmergencyContactCleared() {
		_spec.ClearField(patient.FieldEmergencyContact, field.TypeString)
	}
	if value, ok := _u.mutation.EmergencyPhone(); ok {
		_spec.SetField(patient.FieldEmergencyPhone, field.TypeString, value)
	}
	if _u.mutation.EmergencyPhoneCleared() {
		_spec.ClearField(patient.FieldEmergencyPhone, field.TypeString)
	}
	if value, ok := _u.mutation.MedicalHistory(); ok {
		_spec.SetField(patient.FieldMedicalHistory, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedMedicalHistory(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldMedicalHistory, value)
		})
	}
	if _u.mutation.MedicalHistoryCleared() {
		_spec.ClearField(patient.FieldMedicalHistory, field.TypeJSON)
	}
	if value, ok := _u.mutation.ChronicConditions(); ok {
		_spec.SetField(patient.FieldChronicConditions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedChronicConditions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, patient.FieldChronicConditions, value)
		})
	}
	if _u.mutation.ChronicConditionsCleared() {
		_spec.ClearField(patient.FieldChronicConditions, field.TypeJSON)
	}
	if value, ok := _u.mutation.InsuranceNumber(); ok {
		_spec.SetField(patient.FieldInsuranceNumber, field.TypeString, value)
	}
	if _u.mutation.InsuranceNumberCleared() {
		_spec.ClearField(patient.FieldInsuranceNumber, field.TypeString)
	}
	if _u.mutation.UserCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(user.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.UserIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   patient.UserTable,
			Columns: []string{patient.UserColumn},
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
	if _u.mutation.PrescriptionsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
			Table:   patient.PrescriptionsTable,
			Columns: []string{patient.PrescriptionsColumn},
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
	if _u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AppointmentsTable,
			Columns: []string{patient.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedAppointmentsIDs(); len(nodes) > 0 && !_u.mutation.AppointmentsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AppointmentsTable,
			Columns: []string{patient.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.AppointmentsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.AppointmentsTable,
			Columns: []string{patient.AppointmentsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(appointment.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.LabReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.LabReportsTable,
			Columns: []string{patient.LabReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedLabReportsIDs(); len(nodes) > 0 && !_u.mutation.LabReportsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.LabReportsTable,
			Columns: []string{patient.LabReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.LabReportsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   patient.LabReportsTable,
			Columns: []string{patient.LabReportsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(labreport.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Patient{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{patient.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
